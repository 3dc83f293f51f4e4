// Package store defines the persistence boundary for the singleton contract
// state record and provides an in-memory implementation. The Postgres-backed
// implementation lives in the db package.
package store

import (
	"context"

	"github.com/provlabs/funding-trading-bridge/types"
)

// ContractStateStore persists the singleton contract state. Load returns an
// error wrapping types.ErrNotFound when no state has been stored yet and
// types.ErrStorage when the backend fails; Save replaces the record wholesale.
type ContractStateStore interface {
	Load(ctx context.Context) (*types.ContractState, error)
	Save(ctx context.Context, state *types.ContractState) error
}
