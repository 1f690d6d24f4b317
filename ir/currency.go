package ir

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Currency is a scaled decimal amount: Value * 10^Exponent. The exponent
// records the scale the amount was written with, so 1.0 and 1 differ.
type Currency struct {
	Value    int64
	Exponent int32
}

// ParseCurrency reads a plain decimal amount such as "-0.00009" or "480".
// Scientific notation is rejected: the exponent of a currency comes only
// from its fraction digits.
func ParseCurrency(s string) (Currency, error) {
	for _, c := range s {
		if c == 'e' || c == 'E' {
			return Currency{}, fmt.Errorf("%w: %q has an exponent", ErrCurrency, s)
		}
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Currency{}, fmt.Errorf("%w: %w", ErrCurrency, err)
	}
	if d.Form != apd.Finite {
		return Currency{}, fmt.Errorf("%w: %q is not finite", ErrCurrency, s)
	}
	return CurrencyFromDecimal(d)
}

// CurrencyFromDecimal converts d keeping its exponent. It fails when the
// coefficient does not fit in 64 bits.
func CurrencyFromDecimal(d *apd.Decimal) (Currency, error) {
	var coeff apd.Decimal
	coeff.Set(d)
	coeff.Exponent = 0
	v, err := coeff.Int64()
	if err != nil {
		return Currency{}, fmt.Errorf("%w: %s: %w", ErrCurrency, d.String(), err)
	}
	return Currency{Value: v, Exponent: d.Exponent}, nil
}

// Decimal returns c as an arbitrary precision decimal.
func (c Currency) Decimal() *apd.Decimal {
	return apd.New(c.Value, c.Exponent)
}

// String formats c in plain notation with exactly -Exponent fraction
// digits.
func (c Currency) String() string {
	return c.Decimal().Text('f')
}

// Float64 returns the nearest float64 to c.
func (c Currency) Float64() float64 {
	f, err := c.Decimal().Float64()
	if err != nil {
		return 0
	}
	return f
}
