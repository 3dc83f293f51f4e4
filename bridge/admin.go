package bridge

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/provlabs/funding-trading-bridge/config"
	"github.com/provlabs/funding-trading-bridge/types"
)

// UpdateAdmin swaps the stored admin for a new address. Only the current
// admin may invoke it.
func (c *Contract) UpdateAdmin(ctx context.Context, sender string, funds sdk.Coins, msg types.UpdateAdminMsg) (*types.Result, error) {
	if err := checkFundsEmpty(funds); err != nil {
		return nil, err
	}
	if err := requireSender(sender); err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	state, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if sender != state.Admin {
		return nil, fmt.Errorf("%w: only the contract admin may change the admin", types.ErrNotAuthorized)
	}
	if err := c.validateAddress(msg.NewAdminAddress); err != nil {
		return nil, err
	}
	previousAdmin := state.Admin
	state.Admin = msg.NewAdminAddress
	if err := c.store.Save(ctx, state); err != nil {
		return nil, err
	}

	config.Log.Infof("contract admin changed from [%s] to [%s]", previousAdmin, msg.NewAdminAddress)
	return types.NewResult().
		AddAttribute("action", "admin_update_admin").
		AddAttribute("contract_address", c.address).
		AddAttribute("contract_type", state.ContractType).
		AddAttribute("contract_name", state.ContractName).
		AddAttribute("previous_admin", previousAdmin).
		AddAttribute("new_admin", msg.NewAdminAddress), nil
}

// UpdateDepositRequiredAttributes wholesale-replaces the attribute names an
// account must hold before funding the trading denom.
func (c *Contract) UpdateDepositRequiredAttributes(ctx context.Context, sender string, funds sdk.Coins, msg types.UpdateDepositAttributesMsg) (*types.Result, error) {
	if err := checkFundsEmpty(funds); err != nil {
		return nil, err
	}
	if err := requireSender(sender); err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	state, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if sender != state.Admin {
		return nil, fmt.Errorf("%w: only the contract admin may update attributes", types.ErrNotAuthorized)
	}
	previousAttributes := state.RequiredDepositAttributes
	state.RequiredDepositAttributes = msg.Attributes
	if err := c.store.Save(ctx, state); err != nil {
		return nil, err
	}

	return types.NewResult().
		AddAttribute("action", "admin_update_deposit_required_attributes").
		AddAttribute("contract_address", c.address).
		AddAttribute("contract_type", state.ContractType).
		AddAttribute("contract_name", state.ContractName).
		AddAttribute("previous_attributes", strings.Join(previousAttributes, ",")).
		AddAttribute("new_attributes", strings.Join(msg.Attributes, ",")), nil
}

// UpdateWithdrawRequiredAttributes wholesale-replaces the attribute names an
// account must hold before withdrawing back to the deposit denom.
func (c *Contract) UpdateWithdrawRequiredAttributes(ctx context.Context, sender string, funds sdk.Coins, msg types.UpdateWithdrawAttributesMsg) (*types.Result, error) {
	if err := checkFundsEmpty(funds); err != nil {
		return nil, err
	}
	if err := requireSender(sender); err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	state, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if sender != state.Admin {
		return nil, fmt.Errorf("%w: only the contract admin may update attributes", types.ErrNotAuthorized)
	}
	previousAttributes := state.RequiredWithdrawAttributes
	state.RequiredWithdrawAttributes = msg.Attributes
	if err := c.store.Save(ctx, state); err != nil {
		return nil, err
	}

	return types.NewResult().
		AddAttribute("action", "admin_update_withdraw_required_attributes").
		AddAttribute("contract_address", c.address).
		AddAttribute("contract_type", state.ContractType).
		AddAttribute("contract_name", state.ContractName).
		AddAttribute("previous_attributes", strings.Join(previousAttributes, ",")).
		AddAttribute("new_attributes", strings.Join(msg.Attributes, ",")), nil
}
