package kernel

import (
	"fmt"

	"campusdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places every stored amount carries.
const MoneyScale = 2

var hundred = decimal.NewFromInt(100)

// Money is a non-negative amount rounded to MoneyScale places.
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// NewMoney rounds half away from zero and rejects negative amounts.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount.Round(MoneyScale)}, nil
}

// MoneyFromString parses amounts such as "10.00" or "3.5".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(d)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add sums two amounts and rounds the result again.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).Round(MoneyScale)}
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

// Percent is a discount rate in the closed range [0, 100].
type Percent struct {
	value decimal.Decimal
}

func NewPercent(value decimal.Decimal) (Percent, error) {
	if value.IsNegative() || value.GreaterThan(hundred) {
		return Percent{}, errs.NewValueIsOutOfRangeError("percent", value.String(), 0, 100)
	}
	return Percent{value: value.Round(MoneyScale)}, nil
}

func (p Percent) Decimal() decimal.Decimal {
	return p.value
}

// Remainder returns the multiplier left after the discount, e.g. 0.9 for 10%.
func (p Percent) Remainder() decimal.Decimal {
	return decimal.NewFromInt(1).Sub(p.value.Div(hundred))
}

func (p Percent) String() string {
	return p.value.StringFixed(MoneyScale)
}
