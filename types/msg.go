package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// InstantiateMsg creates the singleton contract state. NameToBind, when set,
// additionally requests a restricted name binding for the contract address.
type InstantiateMsg struct {
	ContractName               string   `json:"contract_name"`
	DepositMarker              Denom    `json:"deposit_marker"`
	TradingMarker              Denom    `json:"trading_marker"`
	RequiredDepositAttributes  []string `json:"required_deposit_attributes"`
	RequiredWithdrawAttributes []string `json:"required_withdraw_attributes"`
	NameToBind                 *string  `json:"name_to_bind,omitempty"`
}

func (m InstantiateMsg) Validate() error {
	if m.ContractName == "" {
		return fmt.Errorf("%w: contract name cannot be empty", ErrValidation)
	}
	if err := m.DepositMarker.Validate(); err != nil {
		return fmt.Errorf("%w: deposit marker: %v", ErrValidation, err)
	}
	if err := m.TradingMarker.Validate(); err != nil {
		return fmt.Errorf("%w: trading marker: %v", ErrValidation, err)
	}
	if anyBlank(m.RequiredDepositAttributes) {
		return fmt.Errorf("%w: all required deposit attributes must be non-empty values", ErrValidation)
	}
	if anyBlank(m.RequiredWithdrawAttributes) {
		return fmt.Errorf("%w: all required withdraw attributes must be non-empty values", ErrValidation)
	}
	if m.NameToBind != nil && *m.NameToBind == "" {
		return fmt.Errorf("%w: contract name cannot be specified as empty string", ErrValidation)
	}
	return nil
}

// UpdateAdminMsg replaces the contract admin with a new address.
type UpdateAdminMsg struct {
	NewAdminAddress string `json:"new_admin_address"`
}

func (m UpdateAdminMsg) Validate() error {
	if m.NewAdminAddress == "" {
		return fmt.Errorf("%w: new_admin_address param must be supplied", ErrValidation)
	}
	return nil
}

// UpdateDepositAttributesMsg wholesale-replaces the attribute names an
// account must hold to fund the trading denom.
type UpdateDepositAttributesMsg struct {
	Attributes []string `json:"attributes"`
}

func (m UpdateDepositAttributesMsg) Validate() error {
	if anyBlank(m.Attributes) {
		return fmt.Errorf("%w: all specified attributes must be non-empty values", ErrValidation)
	}
	return nil
}

// UpdateWithdrawAttributesMsg wholesale-replaces the attribute names an
// account must hold to withdraw back to the deposit denom.
type UpdateWithdrawAttributesMsg struct {
	Attributes []string `json:"attributes"`
}

func (m UpdateWithdrawAttributesMsg) Validate() error {
	if anyBlank(m.Attributes) {
		return fmt.Errorf("%w: all specified attributes must be non-empty values", ErrValidation)
	}
	return nil
}

// FundTradingMsg exchanges trade_amount of the deposit denom for the
// equivalent trading denom amount.
type FundTradingMsg struct {
	TradeAmount math.Int `json:"trade_amount"`
}

func (m FundTradingMsg) Validate() error {
	return validateTradeAmount(m.TradeAmount)
}

// WithdrawTradingMsg exchanges trade_amount of the trading denom back into
// the deposit denom.
type WithdrawTradingMsg struct {
	TradeAmount math.Int `json:"trade_amount"`
}

func (m WithdrawTradingMsg) Validate() error {
	return validateTradeAmount(m.TradeAmount)
}

// MigrateMsg requests a contract upgrade to the compiled version.
type MigrateMsg struct{}

func validateTradeAmount(amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return fmt.Errorf("%w: trade amount must be greater than zero", ErrValidation)
	}
	if amount.BigInt().BitLen() > 128 {
		return fmt.Errorf("%w: trade amount must fit within an unsigned 128-bit integer", ErrValidation)
	}
	return nil
}

func anyBlank(values []string) bool {
	for _, v := range values {
		if v == "" {
			return true
		}
	}
	return false
}
