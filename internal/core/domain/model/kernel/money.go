package kernel

import (
	"fmt"
	"math"

	"logistics/internal/pkg/errs"
)

// Money represents a non-negative monetary amount with currency-unit
// precision. Amounts are stored as an integer number of cents so arithmetic
// and comparison never suffer binary floating point drift.
//
// The zero value is a valid zero amount.
type Money struct {
	cents int64
}

// NewMoneyFromFloat creates a Money value from a major-unit amount such as 25.99.
// The amount must be non-negative and must carry no more than two decimal
// places; anything finer than a cent is rejected rather than silently rounded.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidError("amount")
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, math.MaxInt64/100)
	}

	scaled := amount * 100
	cents := math.Round(scaled)
	if math.Abs(scaled-cents) > 1e-6 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v has sub-cent precision", amount))
	}

	return Money{cents: int64(cents)}, nil
}

// MoneyFromCents creates a Money value from an integer number of cents.
// Used when reconstructing amounts from persistence.
func MoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("cents", cents, 0, int64(math.MaxInt64))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount as an integer number of cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Amount returns the amount in major units, e.g. 25.99.
func (m Money) Amount() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "25.99".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
