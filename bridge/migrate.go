package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver"
	"github.com/provlabs/funding-trading-bridge/config"
	"github.com/provlabs/funding-trading-bridge/types"
)

// Migrate upgrades the stored state to the compiled contract version. The
// version bump is the only structural change a migration performs; the
// result's data payload carries the serialized post-migration state.
func (c *Contract) Migrate(ctx context.Context, _ types.MigrateMsg) (*types.Result, error) {
	state, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := ValidateMigration(state, types.ContractType, types.ContractVersion); err != nil {
		return nil, err
	}
	previousVersion := state.ContractVersion
	state.ContractVersion = types.ContractVersion
	if err := c.store.Save(ctx, state); err != nil {
		return nil, err
	}
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize migrated contract state: %v", types.ErrStorage, err)
	}

	config.Log.Infof("migrated contract from version [%s] to [%s]", previousVersion, state.ContractVersion)
	result := types.NewResult().
		AddAttribute("action", "migrate").
		AddAttribute("new_version", state.ContractVersion)
	result.Data = data
	return result, nil
}

// ValidateMigration gates an upgrade of the stored state to targetVersion.
// The contract type must match exactly and the version must strictly
// increase; downgrades and same-version re-migrations are rejected.
func ValidateMigration(state *types.ContractState, targetType, targetVersion string) error {
	if state.ContractType != targetType {
		return fmt.Errorf(
			"%w: target migration contract type [%s] does not match stored contract type [%s]",
			types.ErrMigration, targetType, state.ContractType,
		)
	}
	storedVersion, err := semver.NewVersion(state.ContractVersion)
	if err != nil {
		return fmt.Errorf("%w: stored contract version [%s] is not valid semver: %v", types.ErrValidation, state.ContractVersion, err)
	}
	newVersion, err := semver.NewVersion(targetVersion)
	if err != nil {
		return fmt.Errorf("%w: target contract version [%s] is not valid semver: %v", types.ErrValidation, targetVersion, err)
	}
	if !storedVersion.LessThan(newVersion) {
		return fmt.Errorf(
			"%w: target migration contract version [%s] is too low to use. stored contract version is [%s]",
			types.ErrMigration, targetVersion, storedVersion,
		)
	}
	return nil
}
