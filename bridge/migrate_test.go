package bridge_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/provlabs/funding-trading-bridge/bridge"
	"github.com/provlabs/funding-trading-bridge/testutil"
	"github.com/provlabs/funding-trading-bridge/types"
	"github.com/stretchr/testify/require"
)

func TestValidateMigration(t *testing.T) {
	tests := []struct {
		name          string
		storedType    string
		storedVersion string
		targetType    string
		targetVersion string
		wantErr       error
		wantMsg       string
	}{
		{
			name:          "older stored version upgrades",
			storedType:    types.ContractType,
			storedVersion: "0.0.1",
			targetType:    types.ContractType,
			targetVersion: "1.0.0",
		},
		{
			name:          "contract type mismatch",
			storedType:    "some_other_contract",
			storedVersion: "0.0.1",
			targetType:    types.ContractType,
			targetVersion: "1.0.0",
			wantErr:       types.ErrMigration,
			wantMsg:       "target migration contract type [funding_trading_bridge] does not match stored contract type [some_other_contract]",
		},
		{
			name:          "stored version too high",
			storedType:    types.ContractType,
			storedVersion: "999.999.999",
			targetType:    types.ContractType,
			targetVersion: "1.0.0",
			wantErr:       types.ErrMigration,
			wantMsg:       "target migration contract version [1.0.0] is too low to use. stored contract version is [999.999.999]",
		},
		{
			name:          "equal versions rejected",
			storedType:    types.ContractType,
			storedVersion: "1.0.0",
			targetType:    types.ContractType,
			targetVersion: "1.0.0",
			wantErr:       types.ErrMigration,
			wantMsg:       "is too low to use",
		},
		{
			name:          "stored version not semver",
			storedType:    types.ContractType,
			storedVersion: "not-a-version",
			targetType:    types.ContractType,
			targetVersion: "1.0.0",
			wantErr:       types.ErrValidation,
			wantMsg:       "stored contract version [not-a-version] is not valid semver",
		},
		{
			name:          "target version not semver",
			storedType:    types.ContractType,
			storedVersion: "0.0.1",
			targetType:    types.ContractType,
			targetVersion: "bogus",
			wantErr:       types.ErrValidation,
			wantMsg:       "target contract version [bogus] is not valid semver",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := testutil.DefaultContractState()
			state.ContractType = tt.storedType
			state.ContractVersion = tt.storedVersion

			err := bridge.ValidateMigration(state, tt.targetType, tt.targetVersion)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorContains(t, err, tt.wantMsg)
		})
	}
}

func TestMigrateUpgradesStoredVersion(t *testing.T) {
	tc := newTestContract()
	tc.instantiate(t)

	// Wind the stored version back so the compiled version is an upgrade.
	state := tc.loadState(t)
	state.ContractVersion = "0.0.1"
	require.NoError(t, tc.store.Save(context.Background(), state))

	result, err := tc.contract.Migrate(context.Background(), types.MigrateMsg{})
	require.NoError(t, err)

	requireAttribute(t, result, "action", "migrate")
	requireAttribute(t, result, "new_version", types.ContractVersion)

	migrated := tc.loadState(t)
	require.Equal(t, types.ContractVersion, migrated.ContractVersion)

	var payload types.ContractState
	require.NoError(t, json.Unmarshal(result.Data, &payload))
	require.Equal(t, types.ContractVersion, payload.ContractVersion)
	require.Equal(t, testutil.DefaultContractName, payload.ContractName)
}

func TestMigrateRejectsFreshlyInstantiatedContract(t *testing.T) {
	tc := newTestContract()
	tc.instantiate(t)

	// A fresh instantiation already carries the compiled version, so an
	// immediate migration has nowhere to go.
	_, err := tc.contract.Migrate(context.Background(), types.MigrateMsg{})
	require.ErrorIs(t, err, types.ErrMigration)
	require.ErrorContains(t, err, "is too low to use")
}

func TestMigrateRequiresStoredState(t *testing.T) {
	tc := newTestContract()

	_, err := tc.contract.Migrate(context.Background(), types.MigrateMsg{})
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestMigrateRejectsForeignContractType(t *testing.T) {
	tc := newTestContract()
	tc.instantiate(t)

	state := tc.loadState(t)
	state.ContractType = "some_other_contract"
	state.ContractVersion = "0.0.1"
	require.NoError(t, tc.store.Save(context.Background(), state))

	_, err := tc.contract.Migrate(context.Background(), types.MigrateMsg{})
	require.ErrorIs(t, err, types.ErrMigration)
	require.ErrorContains(t, err, "does not match stored contract type [some_other_contract]")

	unchanged := tc.loadState(t)
	require.Equal(t, "0.0.1", unchanged.ContractVersion, "a rejected migration must not touch state")
}
