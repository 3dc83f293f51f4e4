package bridge_test

import (
	"context"
	"testing"

	"github.com/provlabs/funding-trading-bridge/bridge"
	"github.com/provlabs/funding-trading-bridge/store"
	"github.com/provlabs/funding-trading-bridge/testutil"
	"github.com/provlabs/funding-trading-bridge/types"
	"github.com/stretchr/testify/require"
)

// testContract bundles a contract with its fakes so each test can arrange
// balances, attributes, and marker addresses directly.
type testContract struct {
	contract *bridge.Contract
	store    *store.MemoryStore
	bank     *testutil.FakeBankQuerier
	attrs    *testutil.FakeAttributeQuerier
	markers  *testutil.FakeMarkerQuerier
}

func newTestContract() *testContract {
	bank := testutil.NewFakeBankQuerier()
	attrs := testutil.NewFakeAttributeQuerier()
	markers := testutil.NewFakeMarkerQuerier()
	memStore := store.NewMemoryStore()
	return &testContract{
		contract: bridge.NewContract(memStore, bank, attrs, markers, testutil.DefaultContractAddress, testutil.Bech32Prefix),
		store:    memStore,
		bank:     bank,
		attrs:    attrs,
		markers:  markers,
	}
}

func (tc *testContract) instantiate(t *testing.T) {
	t.Helper()
	tc.instantiateWithMsg(t, testutil.DefaultInstantiateMsg())
}

func (tc *testContract) instantiateWithMsg(t *testing.T, msg types.InstantiateMsg) {
	t.Helper()
	_, err := tc.contract.Instantiate(context.Background(), testutil.DefaultAdmin, nil, msg)
	require.NoError(t, err, "expected default instantiation to succeed")
}

func (tc *testContract) loadState(t *testing.T) *types.ContractState {
	t.Helper()
	state, err := tc.store.Load(context.Background())
	require.NoError(t, err)
	return state
}

func requireAttribute(t *testing.T, result *types.Result, key, expected string) {
	t.Helper()
	value, ok := result.Attribute(key)
	require.True(t, ok, "expected attribute [%s] to be present", key)
	require.Equal(t, expected, value, "unexpected value for attribute [%s]", key)
}

func requireNoAttribute(t *testing.T, result *types.Result, key string) {
	t.Helper()
	_, ok := result.Attribute(key)
	require.False(t, ok, "expected attribute [%s] to be absent", key)
}

func TestQueryContractStateReturnsStoredRecord(t *testing.T) {
	tc := newTestContract()
	tc.instantiate(t)

	state, err := tc.contract.QueryContractState(context.Background())
	require.NoError(t, err)
	require.Equal(t, testutil.DefaultAdmin, state.Admin)
	require.Equal(t, testutil.DefaultContractName, state.ContractName)
	require.Equal(t, types.ContractType, state.ContractType)
	require.Equal(t, types.ContractVersion, state.ContractVersion)
}

func TestQueryContractStateBeforeInstantiation(t *testing.T) {
	tc := newTestContract()

	_, err := tc.contract.QueryContractState(context.Background())
	require.ErrorIs(t, err, types.ErrNotFound)
}
