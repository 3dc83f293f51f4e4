package bridge

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/provlabs/funding-trading-bridge/config"
	"github.com/provlabs/funding-trading-bridge/types"
)

// Instantiate creates the singleton contract state, recording the sender as
// admin and stamping in the compiled contract type and version. When the
// request names a name to bind, the result additionally carries a
// restricted name-binding instruction for the contract address.
func (c *Contract) Instantiate(ctx context.Context, sender string, funds sdk.Coins, msg types.InstantiateMsg) (*types.Result, error) {
	if err := checkFundsEmpty(funds); err != nil {
		return nil, err
	}
	if err := requireSender(sender); err != nil {
		return nil, err
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	if _, err := c.store.Load(ctx); err == nil {
		return nil, fmt.Errorf("%w: contract state has already been stored", types.ErrValidation)
	}

	// Build the binding before persisting anything so a malformed name
	// cannot leave state behind.
	var bindInstruction *types.Instruction
	if msg.NameToBind != nil {
		instruction, err := types.NewBindNameInstruction(*msg.NameToBind, c.address)
		if err != nil {
			return nil, err
		}
		bindInstruction = &instruction
	}

	state := types.NewContractState(
		sender,
		msg.ContractName,
		msg.DepositMarker,
		msg.TradingMarker,
		msg.RequiredDepositAttributes,
		msg.RequiredWithdrawAttributes,
	)
	if err := c.store.Save(ctx, state); err != nil {
		return nil, err
	}

	result := types.NewResult().
		AddAttribute("action", "instantiate").
		AddAttribute("contract_name", msg.ContractName).
		AddAttribute("deposit_marker_name", msg.DepositMarker.Name).
		AddAttribute("trading_marker_name", msg.TradingMarker.Name)
	if bindInstruction != nil {
		result.AddInstruction(*bindInstruction).
			AddAttribute("contract_bound_with_name", *msg.NameToBind)
	}

	config.Log.Infof(
		"instantiated contract [%s] bridging [%s] and [%s] with admin [%s]",
		msg.ContractName, msg.DepositMarker.Name, msg.TradingMarker.Name, sender,
	)
	return result, nil
}
