package kernel

import (
	"errors"
	"fmt"
	"math"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// MoneyMaxAmount bounds a price so that price * quantity stays within int64.
const MoneyMaxAmount int64 = math.MaxInt64 / 1_000_000

// ErrMoneyIsNotConstructed is returned when a zero-value Money is used.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or ZeroMoney")

// Money is a non-negative amount in minor currency units. Prices, line totals and
// order totals are all Money; arithmetic never mutates the receiver.
type Money struct { //nolint:recvcheck //using for validation
	amount int64
	guard  guard.ConstructorGuard
}

// NewMoney validates that amount lies in [0, MoneyMaxAmount].
func NewMoney(amount int64) (Money, error) {
	if amount < 0 || amount > MoneyMaxAmount {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, int64(0), MoneyMaxAmount)
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MustNewMoney is NewMoney for constants known to be valid.
func MustNewMoney(amount int64) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns a valid zero amount, the identity for Add.
func ZeroMoney() Money {
	return Money{guard: guard.NewConstructorGuard()}
}

// Validate reports whether the value was built by a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the value in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns m + other, or an error when the sum does not fit in int64.
func (m Money) Add(other Money) (Money, error) {
	if m.amount > math.MaxInt64-other.amount {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid", errors.New("addition overflows"))
	}
	return Money{amount: m.amount + other.amount, guard: guard.NewConstructorGuard()}, nil
}

// Multiply returns m * quantity. quantity must not be negative.
func (m Money) Multiply(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is negative", quantity))
	}
	if quantity > 0 && m.amount > math.MaxInt64/int64(quantity) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid", errors.New("multiplication overflows"))
	}
	return Money{amount: m.amount * int64(quantity), guard: guard.NewConstructorGuard()}, nil
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
