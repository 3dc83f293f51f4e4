// Package conversion implements the precision-shifting arithmetic between
// the deposit and trading denominations. All amounts are unsigned 128-bit
// values; arithmetic is checked and surfaces conversion failures rather than
// wrapping.
package conversion

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	"github.com/provlabs/funding-trading-bridge/types"
)

// maxPrecisionDiff bounds the exponent used to build the conversion factor.
// 10^39 no longer fits in 128 bits, so no larger delta can ever produce a
// representable result.
const maxPrecisionDiff = 38

const maxAmountBits = 128

// DenomConversion describes one precision conversion. TargetAmount and
// Remainder are jointly derived from SourceAmount and the precision delta:
// when the source precision is higher, TargetAmount*factor + Remainder ==
// SourceAmount with Remainder < factor; otherwise Remainder is zero.
type DenomConversion struct {
	SourceAmount math.Int `json:"source_amount"`
	TargetAmount math.Int `json:"target_amount"`
	Remainder    math.Int `json:"remainder"`
}

// Convert translates amount from the source denom's precision into the
// target denom's precision. The function is referentially transparent: it
// performs no lookups and emits no side effects.
func Convert(amount math.Int, source, target types.Denom) (DenomConversion, error) {
	if amount.IsNil() || amount.IsNegative() {
		return DenomConversion{}, fmt.Errorf("%w: conversion amount must be a non-negative integer", types.ErrValidation)
	}
	if amount.BigInt().BitLen() > maxAmountBits {
		return DenomConversion{}, fmt.Errorf("%w: amount [%s] exceeds 128 bits", types.ErrConversion, amount)
	}

	diff := precisionDiff(source.Precision, target.Precision)
	if diff > maxPrecisionDiff {
		return DenomConversion{}, fmt.Errorf(
			"%w: source precision [%d] and target precision [%d] have too large a difference to convert",
			types.ErrConversion, source.Precision, target.Precision,
		)
	}
	factor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(diff)), nil)

	var targetAmount, remainder *big.Int
	switch {
	// Source precision is greater: trim digits off for the target amount and
	// keep what cannot be represented as the remainder.
	case source.Precision > target.Precision:
		targetAmount, remainder = new(big.Int).QuoRem(amount.BigInt(), factor, new(big.Int))
	// Source precision is lesser: the value gains zeroes, so there is never
	// a remainder, but the product must still fit in 128 bits.
	case source.Precision < target.Precision:
		targetAmount = new(big.Int).Mul(amount.BigInt(), factor)
		if targetAmount.BitLen() > maxAmountBits {
			return DenomConversion{}, fmt.Errorf(
				"%w: converting [%s%s] to [%s] overflows 128 bits",
				types.ErrConversion, amount, source.Name, target.Name,
			)
		}
		remainder = big.NewInt(0)
	// Equal precisions convert one to one.
	default:
		targetAmount = amount.BigInt()
		remainder = big.NewInt(0)
	}

	return DenomConversion{
		SourceAmount: amount,
		TargetAmount: math.NewIntFromBigInt(targetAmount),
		Remainder:    math.NewIntFromBigInt(remainder),
	}, nil
}

func precisionDiff(source, target uint64) uint64 {
	if source > target {
		return source - target
	}
	return target - source
}
