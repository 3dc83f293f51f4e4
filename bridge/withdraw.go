package bridge

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/provlabs/funding-trading-bridge/config"
	"github.com/provlabs/funding-trading-bridge/conversion"
	"github.com/provlabs/funding-trading-bridge/types"
)

// WithdrawTrading exchanges trade_amount of the sender's trading denom back
// into the deposit denom. The returned instructions stage the convertible
// trading amount at the marker's administrative address, release the
// converted deposit amount from the contract to the sender, and finally burn
// the staged trading coin: the burn executes against the staged balance, so
// staging must precede it, and nothing is released before collection is
// committed within the same call.
func (c *Contract) WithdrawTrading(ctx context.Context, sender string, funds sdk.Coins, msg types.WithdrawTradingMsg) (*types.Result, error) {
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
	if err := c.checkHasEnoughBalance(ctx, sender, state.TradingMarker.Name, msg.TradeAmount); err != nil {
		return nil, err
	}
	if err := c.checkHasAllAttributes(ctx, sender, state.RequiredWithdrawAttributes); err != nil {
		return nil, err
	}
	conv, err := conversion.Convert(msg.TradeAmount, state.TradingMarker, state.DepositMarker)
	if err != nil {
		return nil, err
	}
	if conv.TargetAmount.IsZero() {
		return nil, fmt.Errorf(
			"%w: sent [%s%s], but that is not enough to convert to at least one [%s]",
			types.ErrInvalidFunds, msg.TradeAmount, state.TradingMarker.Name, state.DepositMarker.Name,
		)
	}
	collectedAmount := msg.TradeAmount.Sub(conv.Remainder)

	markerAddress, err := c.markers.GetMarkerAdminAddress(ctx, state.TradingMarker.Name)
	if err != nil {
		return nil, fmt.Errorf("marker lookup for denom [%s]: %w", state.TradingMarker.Name, err)
	}
	if markerAddress == "" {
		return nil, fmt.Errorf("%w: unable to resolve marker account for denom [%s]", types.ErrNotFound, state.TradingMarker.Name)
	}

	result := types.NewResult().
		AddInstruction(types.NewTransferInstruction(state.TradingMarker.Name, collectedAmount, sender, markerAddress)).
		AddInstruction(types.NewTransferInstruction(state.DepositMarker.Name, conv.TargetAmount, c.address, sender)).
		AddInstruction(types.NewBurnInstruction(state.TradingMarker.Name, collectedAmount, c.address)).
		AddAttribute("action", "withdraw_trading").
		AddAttribute("contract_address", c.address).
		AddAttribute("contract_type", state.ContractType).
		AddAttribute("contract_name", state.ContractName).
		AddAttribute("withdraw_input_denom", state.TradingMarker.Name).
		AddAttribute("withdraw_requested_amount", msg.TradeAmount.String()).
		AddAttribute("withdraw_actual_amount", collectedAmount.String()).
		AddAttribute("received_denom", state.DepositMarker.Name).
		AddAttribute("received_amount", conv.TargetAmount.String())
	if conv.Remainder.IsPositive() {
		result.AddAttribute("remainder_denom", state.TradingMarker.Name).
			AddAttribute("remainder_amount", conv.Remainder.String())
	}

	config.Log.Infof(
		"withdrew trading: [%s] converted [%s%s] to [%s%s] with remainder [%s]",
		sender, collectedAmount, state.TradingMarker.Name,
		conv.TargetAmount, state.DepositMarker.Name, conv.Remainder,
	)
	return result, nil
}
