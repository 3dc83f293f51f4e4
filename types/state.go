package types

const (
	// ContractType identifies this bridge implementation. Migrations against
	// state recorded with a different type are always rejected.
	ContractType = "funding_trading_bridge"
	// ContractVersion is the version stamped into newly instantiated state
	// and the target version applied by a migration.
	ContractVersion = "1.1.0"
)

// ContractState is the singleton configuration record for a deployed bridge
// instance. It is created once at instantiation, mutated in place by the
// admin routes and the migration gate, and never deleted.
type ContractState struct {
	Admin                      string   `json:"admin"`
	ContractName               string   `json:"contract_name"`
	ContractType               string   `json:"contract_type"`
	ContractVersion            string   `json:"contract_version"`
	DepositMarker              Denom    `json:"deposit_marker"`
	TradingMarker              Denom    `json:"trading_marker"`
	RequiredDepositAttributes  []string `json:"required_deposit_attributes"`
	RequiredWithdrawAttributes []string `json:"required_withdraw_attributes"`
}

// NewContractState builds state for a fresh instantiation, stamping in the
// compiled contract type and version.
func NewContractState(
	admin string,
	contractName string,
	depositMarker Denom,
	tradingMarker Denom,
	requiredDepositAttributes []string,
	requiredWithdrawAttributes []string,
) *ContractState {
	return &ContractState{
		Admin:                      admin,
		ContractName:               contractName,
		ContractType:               ContractType,
		ContractVersion:            ContractVersion,
		DepositMarker:              depositMarker,
		TradingMarker:              tradingMarker,
		RequiredDepositAttributes:  copyStrings(requiredDepositAttributes),
		RequiredWithdrawAttributes: copyStrings(requiredWithdrawAttributes),
	}
}

// Copy returns a deep copy so callers never share attribute slices with the
// stored record.
func (s *ContractState) Copy() *ContractState {
	if s == nil {
		return nil
	}
	dup := *s
	dup.RequiredDepositAttributes = copyStrings(s.RequiredDepositAttributes)
	dup.RequiredWithdrawAttributes = copyStrings(s.RequiredWithdrawAttributes)
	return &dup
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
