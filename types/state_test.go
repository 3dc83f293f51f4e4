package types_test

import (
	"testing"

	"github.com/provlabs/funding-trading-bridge/types"
	"github.com/stretchr/testify/require"
)

func TestNewContractStateStampsTypeAndVersion(t *testing.T) {
	state := types.NewContractState(
		"admin", "Test Bridge",
		types.NewDenom("depositcoin", 2),
		types.NewDenom("tradingcoin", 1),
		[]string{"deposit.kyc.pb"},
		[]string{"withdraw.kyc.pb"},
	)
	require.Equal(t, types.ContractType, state.ContractType)
	require.Equal(t, types.ContractVersion, state.ContractVersion)
	require.Equal(t, []string{"deposit.kyc.pb"}, state.RequiredDepositAttributes)
	require.Equal(t, []string{"withdraw.kyc.pb"}, state.RequiredWithdrawAttributes)
}

func TestNewContractStateCopiesAttributeSlices(t *testing.T) {
	depositAttrs := []string{"deposit.kyc.pb"}
	state := types.NewContractState(
		"admin", "Test Bridge",
		types.NewDenom("depositcoin", 2),
		types.NewDenom("tradingcoin", 1),
		depositAttrs, nil,
	)

	depositAttrs[0] = "mutated"
	require.Equal(t, []string{"deposit.kyc.pb"}, state.RequiredDepositAttributes,
		"state must not share the caller's slice")
}

func TestContractStateCopyIsIndependent(t *testing.T) {
	state := types.NewContractState(
		"admin", "Test Bridge",
		types.NewDenom("depositcoin", 2),
		types.NewDenom("tradingcoin", 1),
		[]string{"deposit.kyc.pb"},
		[]string{"withdraw.kyc.pb"},
	)

	dup := state.Copy()
	dup.Admin = "other"
	dup.RequiredDepositAttributes[0] = "mutated"

	require.Equal(t, "admin", state.Admin)
	require.Equal(t, []string{"deposit.kyc.pb"}, state.RequiredDepositAttributes)
}

func TestContractStateCopyNil(t *testing.T) {
	var state *types.ContractState
	require.Nil(t, state.Copy())
}
