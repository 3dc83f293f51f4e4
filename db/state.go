package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/provlabs/funding-trading-bridge/db/models"
	"github.com/provlabs/funding-trading-bridge/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// contractStateRowID pins the singleton row. A deployment has exactly one
// contract state record.
const contractStateRowID = 1

// PostgresStateStore persists the contract state in Postgres. It implements
// store.ContractStateStore.
type PostgresStateStore struct {
	db *gorm.DB
}

func NewPostgresStateStore(db *gorm.DB) *PostgresStateStore {
	return &PostgresStateStore{db: db}
}

func (s *PostgresStateStore) Load(ctx context.Context) (*types.ContractState, error) {
	var record models.ContractState
	err := s.db.WithContext(ctx).First(&record, contractStateRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: contract state has not been stored", types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: loading contract state: %v", types.ErrStorage, err)
	}
	return stateFromRecord(record), nil
}

func (s *PostgresStateStore) Save(ctx context.Context, state *types.ContractState) error {
	if state == nil {
		return fmt.Errorf("%w: cannot store nil contract state", types.ErrStorage)
	}
	record := recordFromState(state)
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("%w: saving contract state: %v", types.ErrStorage, err)
	}
	return nil
}

func recordFromState(state *types.ContractState) models.ContractState {
	return models.ContractState{
		ID:                         contractStateRowID,
		Admin:                      state.Admin,
		ContractName:               state.ContractName,
		ContractType:               state.ContractType,
		ContractVersion:            state.ContractVersion,
		DepositMarkerName:          state.DepositMarker.Name,
		DepositMarkerPrecision:     state.DepositMarker.Precision,
		TradingMarkerName:          state.TradingMarker.Name,
		TradingMarkerPrecision:     state.TradingMarker.Precision,
		RequiredDepositAttributes:  joinAttributes(state.RequiredDepositAttributes),
		RequiredWithdrawAttributes: joinAttributes(state.RequiredWithdrawAttributes),
	}
}

func stateFromRecord(record models.ContractState) *types.ContractState {
	return &types.ContractState{
		Admin:                      record.Admin,
		ContractName:               record.ContractName,
		ContractType:               record.ContractType,
		ContractVersion:            record.ContractVersion,
		DepositMarker:              types.NewDenom(record.DepositMarkerName, record.DepositMarkerPrecision),
		TradingMarker:              types.NewDenom(record.TradingMarkerName, record.TradingMarkerPrecision),
		RequiredDepositAttributes:  splitAttributes(record.RequiredDepositAttributes),
		RequiredWithdrawAttributes: splitAttributes(record.RequiredWithdrawAttributes),
	}
}

func joinAttributes(attributes []string) string {
	return strings.Join(attributes, ",")
}

// splitAttributes undoes joinAttributes. An empty column means no attributes
// are required, not a single empty name.
func splitAttributes(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}
