package kernel

import (
	"fmt"
	"math"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created via NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money represents a monetary amount in minor currency units (e.g. cents).
// Keeping amounts integral avoids floating-point drift when line costs and
// totals are summed. Amounts are never negative.
//
// Money is immutable; arithmetic methods return new values.
type Money struct {
	amount int64

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in minor currency units.
// Negative amounts are rejected.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%d is negative", amount),
		)
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Amount returns the amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts. Fails if the sum exceeds int64.
func (m Money) Add(other Money) (Money, error) {
	if m.amount > math.MaxInt64-other.amount {
		return Money{}, errs.NewValueIsOutOfRangeError(
			"money amount",
			fmt.Sprintf("%d + %d", m.amount, other.amount),
			0, int64(math.MaxInt64),
		)
	}

	return Money{
		amount: m.amount + other.amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MultiplyBy returns the amount multiplied by a quantity.
// Fails for negative quantities and when the product exceeds int64.
func (m Money) MultiplyBy(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	if m.amount != 0 && int64(quantity) > math.MaxInt64/m.amount {
		return Money{}, errs.NewValueIsOutOfRangeError(
			"money amount",
			fmt.Sprintf("%d * %d", m.amount, quantity),
			0, int64(math.MaxInt64),
		)
	}

	return Money{
		amount: m.amount * int64(quantity),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// Validate returns ErrMoneyIsNotConstructed for a zero-value Money.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
