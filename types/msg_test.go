package types_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/provlabs/funding-trading-bridge/types"
	"github.com/stretchr/testify/require"
)

func TestTradeAmountValidation(t *testing.T) {
	maxUint128 := math.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))
	tooBig := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 129))

	tests := []struct {
		name    string
		amount  math.Int
		wantMsg string
	}{
		{name: "one is the smallest valid amount", amount: math.NewInt(1)},
		{name: "max uint128 is accepted", amount: maxUint128},
		{name: "nil amount", amount: math.Int{}, wantMsg: "trade amount must be greater than zero"},
		{name: "zero amount", amount: math.NewInt(0), wantMsg: "trade amount must be greater than zero"},
		{name: "negative amount", amount: math.NewInt(-3), wantMsg: "trade amount must be greater than zero"},
		{name: "amount over 128 bits", amount: tooBig, wantMsg: "trade amount must fit within an unsigned 128-bit integer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fundErr := types.FundTradingMsg{TradeAmount: tt.amount}.Validate()
			withdrawErr := types.WithdrawTradingMsg{TradeAmount: tt.amount}.Validate()
			if tt.wantMsg == "" {
				require.NoError(t, fundErr)
				require.NoError(t, withdrawErr)
				return
			}
			require.ErrorIs(t, fundErr, types.ErrValidation)
			require.ErrorContains(t, fundErr, tt.wantMsg)
			require.ErrorIs(t, withdrawErr, types.ErrValidation)
			require.ErrorContains(t, withdrawErr, tt.wantMsg)
		})
	}
}

func TestInstantiateMsgValidateAllowsEmptyAttributeLists(t *testing.T) {
	msg := types.InstantiateMsg{
		ContractName:  "Bridge",
		DepositMarker: types.NewDenom("depositcoin", 2),
		TradingMarker: types.NewDenom("tradingcoin", 1),
	}
	require.NoError(t, msg.Validate())
}

func TestInstantiateMsgValidateNameToBind(t *testing.T) {
	name := "fundbridge.pb"
	msg := types.InstantiateMsg{
		ContractName:  "Bridge",
		DepositMarker: types.NewDenom("depositcoin", 2),
		TradingMarker: types.NewDenom("tradingcoin", 1),
		NameToBind:    &name,
	}
	require.NoError(t, msg.Validate())

	empty := ""
	msg.NameToBind = &empty
	err := msg.Validate()
	require.ErrorIs(t, err, types.ErrValidation)
	require.ErrorContains(t, err, "contract name cannot be specified as empty string")
}

func TestUpdateAdminMsgValidate(t *testing.T) {
	require.NoError(t, types.UpdateAdminMsg{NewAdminAddress: "cosmos130mdu9a0etmeuw52qfxk73pn0ga6gawkryh2z6"}.Validate())

	err := types.UpdateAdminMsg{}.Validate()
	require.ErrorIs(t, err, types.ErrValidation)
	require.ErrorContains(t, err, "new_admin_address param must be supplied")
}

func TestUpdateAttributeMsgsValidate(t *testing.T) {
	require.NoError(t, types.UpdateDepositAttributesMsg{Attributes: []string{"kyc.pb"}}.Validate())
	require.NoError(t, types.UpdateWithdrawAttributesMsg{}.Validate(), "an empty list clears the requirement")

	err := types.UpdateDepositAttributesMsg{Attributes: []string{"kyc.pb", ""}}.Validate()
	require.ErrorIs(t, err, types.ErrValidation)
	require.ErrorContains(t, err, "all specified attributes must be non-empty values")

	err = types.UpdateWithdrawAttributesMsg{Attributes: []string{""}}.Validate()
	require.ErrorIs(t, err, types.ErrValidation)
	require.ErrorContains(t, err, "all specified attributes must be non-empty values")
}
