package bridge

import (
	"context"

	"github.com/provlabs/funding-trading-bridge/types"
)

// QueryContractState returns the current configuration record.
func (c *Contract) QueryContractState(ctx context.Context) (*types.ContractState, error) {
	return c.store.Load(ctx)
}
