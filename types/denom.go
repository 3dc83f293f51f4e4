package types

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/provlabs/funding-trading-bridge/util"
	"github.com/shopspring/decimal"
)

// Denom pairs a marker denomination with the decimal precision its integer
// amounts imply. A deposit marker with precision 2 treats an amount of 100
// as 1.00 display units.
type Denom struct {
	Name      string `json:"name"`
	Precision uint64 `json:"precision"`
}

func NewDenom(name string, precision uint64) Denom {
	return Denom{Name: name, Precision: precision}
}

func (d Denom) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	return nil
}

// DisplayAmount shifts an integer amount down by the denom's precision,
// yielding the human-readable decimal value.
func (d Denom) DisplayAmount(amount math.Int) decimal.Decimal {
	return util.ToNumeric(amount.BigInt()).Shift(-int32(d.Precision))
}

func (d Denom) String() string {
	return fmt.Sprintf("%s(precision=%d)", d.Name, d.Precision)
}
