package kernel

import (
	"errors"
	"fmt"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created through MoneyFromString or
// MoneyFromDecimal to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via MoneyFromString or MoneyFromDecimal constructors")

// Money represents an exact, non-negative monetary amount.
// It is an immutable value object backed by decimal arithmetic, so per-day
// rates and multi-day totals never accumulate floating-point rounding drift:
// five days at 49.99 is exactly 249.95.
//
// The zero value of Money is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	rate, err := kernel.MoneyFromString("49.99")
//	if err != nil {
//	    // Handle validation error
//	}
//	total := rate.MulInt(5)
//	fmt.Println(total) // Output: 249.95
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// MoneyFromString creates Money from a decimal string such as "49.99".
// The amount must parse as a decimal number and must not be negative.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return MoneyFromDecimal(amount)
}

// MoneyFromDecimal creates Money from an already-parsed decimal amount.
// Returns an error if the amount is negative.
func MoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// MulInt returns a new Money equal to this amount multiplied by n.
// Used for pricing: per-day rate times whole day count.
func (m Money) MulInt(n int64) Money {
	result, err := MoneyFromDecimal(m.amount.Mul(decimal.NewFromInt(n)))
	if err != nil {
		// Non-negative times non-negative cannot be negative.
		panic(errors.Join(errs.NewInvariantViolationError("money multiplication produced invalid amount"), err))
	}
	return result
}

// Add returns a new Money equal to the sum of this amount and other.
func (m Money) Add(other Money) Money {
	result, err := MoneyFromDecimal(m.amount.Add(other.amount))
	if err != nil {
		panic(errors.Join(errs.NewInvariantViolationError("money addition produced invalid amount"), err))
	}
	return result
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsEqual compares two Money values for numeric equality.
// 49.99 and 49.990 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount,
// e.g. "249.95". It implements the fmt.Stringer interface.
func (m Money) String() string {
	return m.amount.String()
}
