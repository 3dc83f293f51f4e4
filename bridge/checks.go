package bridge

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/provlabs/funding-trading-bridge/types"
)

// maxAttributePages caps pagination so a host that keeps reporting a next
// page cannot stall the check forever.
const maxAttributePages = 40

// checkFundsEmpty rejects any call that arrived carrying funds. Value moves
// through marker transfer/mint/burn instructions only, never through
// attached payment.
func checkFundsEmpty(funds sdk.Coins) error {
	if !funds.Empty() {
		return fmt.Errorf("%w: funds provided but empty funds required", types.ErrInvalidFunds)
	}
	return nil
}

// checkHasAllAttributes verifies the account holds every required attribute
// by name. Attribute values are never inspected.
func (c *Contract) checkHasAllAttributes(ctx context.Context, account string, required []string) error {
	if len(required) == 0 {
		return nil
	}
	remaining := make(map[string]struct{}, len(required))
	for _, name := range required {
		remaining[name] = struct{}{}
	}

	pageKey := ""
	for page := 0; page < maxAttributePages; page++ {
		names, nextKey, err := c.attrs.GetAttributesPage(ctx, account, pageKey)
		if err != nil {
			return fmt.Errorf("attribute lookup for account [%s]: %w", account, err)
		}
		for _, name := range names {
			delete(remaining, name)
		}
		if len(remaining) == 0 {
			return nil
		}
		if nextKey == "" {
			return fmt.Errorf("%w: account does not have all required attributes", types.ErrInvalidAccount)
		}
		pageKey = nextKey
	}
	return fmt.Errorf(
		"%w: account [%s] attribute lookup exhausted [%d] pages with requirements unmet",
		types.ErrInvalidAccount, account, maxAttributePages,
	)
}

// checkHasEnoughBalance verifies the account holds at least requiredAmount
// of denom. A missing balance entry and an insufficient balance fail
// differently: the former is an invalid-funds condition, the latter an
// invalid-account condition.
func (c *Contract) checkHasEnoughBalance(ctx context.Context, account, denom string, requiredAmount math.Int) error {
	coin, err := c.bank.GetBalance(ctx, account, denom)
	if err != nil {
		return fmt.Errorf("balance lookup for account [%s]: %w", account, err)
	}
	if coin == nil {
		return fmt.Errorf("%w: account [%s] has no [%s] balance", types.ErrInvalidFunds, account, denom)
	}
	if coin.Amount.LT(requiredAmount) {
		return fmt.Errorf("%w: required [%s], but account only holds [%s]", types.ErrInvalidAccount, requiredAmount, coin.Amount)
	}
	return nil
}
