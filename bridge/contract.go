// Package bridge implements the value-bridge contract: precision-converting
// exchange between a deposit denom and a trading denom, admin-gated
// configuration updates, and version-gated migration. Handlers validate
// fully before mutating anything, then return an ordered instruction list
// and attribute trail; executing the instructions is the caller's concern.
package bridge

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/provlabs/funding-trading-bridge/store"
	"github.com/provlabs/funding-trading-bridge/types"
)

// BalanceQuerier looks up a single account balance. A nil coin means the
// account has no balance entry for the denom at all, which is distinct from
// holding a zero amount.
type BalanceQuerier interface {
	GetBalance(ctx context.Context, address, denom string) (*sdk.Coin, error)
}

// AttributeQuerier fetches account attribute names one page at a time.
// nextKey carries the opaque pagination cursor of the following page and is
// empty once the final page has been returned.
type AttributeQuerier interface {
	GetAttributesPage(ctx context.Context, address, pageKey string) (names []string, nextKey string, err error)
}

// MarkerQuerier resolves the administrative account address of a marker
// denom. An empty address with a nil error means the marker is unknown.
type MarkerQuerier interface {
	GetMarkerAdminAddress(ctx context.Context, denom string) (string, error)
}

// Contract wires the handlers to their injected capabilities. The zero
// value is not usable; construct with NewContract.
type Contract struct {
	store   store.ContractStateStore
	bank    BalanceQuerier
	attrs   AttributeQuerier
	markers MarkerQuerier

	// address is the contract's own account: the collection target for
	// deposits and the administrator on mint/withdraw/burn instructions.
	address string
	// prefix is the bech32 human readable part expected on admin addresses.
	prefix string
}

func NewContract(
	stateStore store.ContractStateStore,
	bank BalanceQuerier,
	attrs AttributeQuerier,
	markers MarkerQuerier,
	contractAddress string,
	accountPrefix string,
) *Contract {
	return &Contract{
		store:   stateStore,
		bank:    bank,
		attrs:   attrs,
		markers: markers,
		address: contractAddress,
		prefix:  accountPrefix,
	}
}

// Address returns the contract's own account address.
func (c *Contract) Address() string {
	return c.address
}

func (c *Contract) validateAddress(address string) error {
	prefix, _, err := bech32.DecodeAndConvert(address)
	if err != nil {
		return fmt.Errorf("%w: invalid address [%s]: %v", types.ErrValidation, address, err)
	}
	if c.prefix != "" && prefix != c.prefix {
		return fmt.Errorf("%w: address [%s] has prefix [%s], expected [%s]", types.ErrValidation, address, prefix, c.prefix)
	}
	return nil
}

func requireSender(sender string) error {
	if sender == "" {
		return fmt.Errorf("%w: sender address must be supplied", types.ErrValidation)
	}
	return nil
}
