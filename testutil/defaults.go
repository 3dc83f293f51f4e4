// Package testutil provides shared fixtures and in-memory fakes for the
// bridge's injected capabilities so handler tests run deterministically
// without a live ledger.
package testutil

import (
	"github.com/provlabs/funding-trading-bridge/types"
)

const (
	DefaultAdmin           = "admin"
	DefaultSender          = "sender"
	DefaultContractAddress = "bridge-contract"
	DefaultContractName    = "Test Funding Bridge"

	DefaultDepositDenomName      = "depositcoin"
	DefaultDepositDenomPrecision = uint64(2)
	DefaultTradingDenomName      = "tradingcoin"
	DefaultTradingDenomPrecision = uint64(1)

	DefaultRequiredDepositAttribute  = "deposit.kyc.pb"
	DefaultRequiredWithdrawAttribute = "withdraw.kyc.pb"
	DefaultBoundName                 = "fundbridge.pb"

	// ValidBech32Address carries a correct checksum, so it survives address
	// validation when the configured prefix is "cosmos".
	ValidBech32Address = "cosmos130mdu9a0etmeuw52qfxk73pn0ga6gawkryh2z6"
	Bech32Prefix       = "cosmos"
)

// DefaultInstantiateMsg mirrors the fixture every handler test starts from:
// deposit precision 2, trading precision 1, one required attribute per
// direction, and a bound name.
func DefaultInstantiateMsg() types.InstantiateMsg {
	boundName := DefaultBoundName
	return types.InstantiateMsg{
		ContractName:               DefaultContractName,
		DepositMarker:              types.NewDenom(DefaultDepositDenomName, DefaultDepositDenomPrecision),
		TradingMarker:              types.NewDenom(DefaultTradingDenomName, DefaultTradingDenomPrecision),
		RequiredDepositAttributes:  []string{DefaultRequiredDepositAttribute},
		RequiredWithdrawAttributes: []string{DefaultRequiredWithdrawAttribute},
		NameToBind:                 &boundName,
	}
}

// DefaultContractState is the state DefaultInstantiateMsg produces.
func DefaultContractState() *types.ContractState {
	msg := DefaultInstantiateMsg()
	return types.NewContractState(
		DefaultAdmin,
		msg.ContractName,
		msg.DepositMarker,
		msg.TradingMarker,
		msg.RequiredDepositAttributes,
		msg.RequiredWithdrawAttributes,
	)
}
