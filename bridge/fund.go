package bridge

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/provlabs/funding-trading-bridge/config"
	"github.com/provlabs/funding-trading-bridge/conversion"
	"github.com/provlabs/funding-trading-bridge/types"
)

// FundTrading exchanges trade_amount of the sender's deposit denom for the
// equivalent trading denom amount. The returned instructions transfer the
// convertible portion of the deposit denom to the contract, mint the
// converted trading amount, and release the minted coin to the sender, in
// that order: collection must never follow release, or minted supply could
// be claimed before its backing funds are secured. Any remainder below the
// conversion factor stays with the sender untouched.
func (c *Contract) FundTrading(ctx context.Context, sender string, funds sdk.Coins, msg types.FundTradingMsg) (*types.Result, error) {
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
	if err := c.checkHasEnoughBalance(ctx, sender, state.DepositMarker.Name, msg.TradeAmount); err != nil {
		return nil, err
	}
	if err := c.checkHasAllAttributes(ctx, sender, state.RequiredDepositAttributes); err != nil {
		return nil, err
	}
	conv, err := conversion.Convert(msg.TradeAmount, state.DepositMarker, state.TradingMarker)
	if err != nil {
		return nil, err
	}
	if conv.TargetAmount.IsZero() {
		return nil, fmt.Errorf(
			"%w: sent [%s%s], but that is not enough to convert to at least one [%s]",
			types.ErrInvalidFunds, msg.TradeAmount, state.DepositMarker.Name, state.TradingMarker.Name,
		)
	}
	transferredAmount := msg.TradeAmount.Sub(conv.Remainder)

	result := types.NewResult().
		AddInstruction(types.NewTransferInstruction(state.DepositMarker.Name, transferredAmount, sender, c.address)).
		AddInstruction(types.NewMintInstruction(state.TradingMarker.Name, conv.TargetAmount, c.address)).
		AddInstruction(types.NewWithdrawInstruction(state.TradingMarker.Name, conv.TargetAmount, c.address, sender)).
		AddAttribute("action", "fund_trading").
		AddAttribute("contract_address", c.address).
		AddAttribute("contract_type", state.ContractType).
		AddAttribute("contract_name", state.ContractName).
		AddAttribute("deposit_input_denom", state.DepositMarker.Name).
		AddAttribute("deposit_requested_amount", msg.TradeAmount.String()).
		AddAttribute("deposit_actual_amount", transferredAmount.String()).
		AddAttribute("received_denom", state.TradingMarker.Name).
		AddAttribute("received_amount", conv.TargetAmount.String())
	if conv.Remainder.IsPositive() {
		result.AddAttribute("remainder_denom", state.DepositMarker.Name).
			AddAttribute("remainder_amount", conv.Remainder.String())
	}

	config.Log.Infof(
		"funded trading: [%s] converted [%s%s] to [%s%s] with remainder [%s]",
		sender, transferredAmount, state.DepositMarker.Name,
		conv.TargetAmount, state.TradingMarker.Name, conv.Remainder,
	)
	return result, nil
}
