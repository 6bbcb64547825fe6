package workshop

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent is an exact percentage rate, used for the GST rate of a bill.
type Percent struct {
	value decimal.Decimal
}

// P creates a Percent from any numeric value: P(18) is 18%.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// Of computes the given fraction of an amount: P(18).Of(m) is m × 18 / 100,
// with no intermediate rounding. A zero rate yields exactly zero.
func (p Percent) Of(m Money) Money {
	return Money{value: m.value.Mul(p.value).Div(hundred), cur: m.cur}
}

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }
func (p Percent) IsZero() bool         { return p.value.IsZero() }
func (p Percent) IsNegative() bool     { return p.value.IsNegative() }

// String formats the rate like "18%".
func (p Percent) String() string { return p.value.String() + "%" }

func (p Percent) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

func (p *Percent) UnmarshalJSON(data []byte) error {
	return p.value.UnmarshalJSON(data)
}
