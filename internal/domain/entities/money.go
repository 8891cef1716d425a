package entities

import (
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

// Money is a non-negative amount rounded half-to-even to two decimal places.
//
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(v decimal.Decimal) (Money, error) {
	if v.IsNegative() {
		return Money{}, ErrNegativeMoney.Withf("money cannot be negative: %s", v.String())
	}
	return Money{amount: v.RoundBank(moneyPlaces)}, nil
}

func NewMoneyFromFloat(v float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(v))
}

func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidMoney.Withf("invalid monetary amount %q", s)
	}
	return NewMoney(d)
}

func ZeroMoney() Money {
	return Money{}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Subtract fails instead of producing a negative amount.
func (m Money) Subtract(other Money) (Money, error) {
	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return Money{}, ErrNegativeMoney.Withf("money cannot be negative: %s - %s", m.String(), other.String())
	}
	return Money{amount: diff}, nil
}

func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

func (m Money) String() string {
	return m.amount.StringFixed(moneyPlaces)
}
