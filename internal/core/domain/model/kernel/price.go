package kernel

import (
	"fmt"

	"autoservice/internal/pkg/errs"

	"autoservice/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when validating a zero-value Price
// that was not created via NewPrice or ZeroPrice.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice or ZeroPrice")

// Price is a value object for a non-negative monetary amount, stored in
// cents to avoid floating-point accumulation in totals. A zero amount is
// legal: services missing from the catalog are priced at zero rather than
// failing the operation.
type Price struct {
	cents int64

	guard guard.ConstructorGuard
}

// NewPrice creates a Price from an amount in cents. Negative amounts are rejected.
func NewPrice(cents int64) (Price, error) {
	if cents < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%d cents is negative", cents))
	}
	return Price{cents: cents, guard: guard.NewConstructorGuard()}, nil
}

// ZeroPrice returns the zero amount, used as the fallback for services
// without a catalog entry.
func ZeroPrice() Price {
	return Price{guard: guard.NewConstructorGuard()}
}

// Cents returns the amount in cents.
func (p Price) Cents() int64 {
	return p.cents
}

// IsZero reports whether the amount is zero.
func (p Price) IsZero() bool {
	return p.cents == 0
}

// Add returns the sum of two prices.
func (p Price) Add(other Price) Price {
	return Price{cents: p.cents + other.cents, guard: guard.NewConstructorGuard()}
}

// String formats the amount with two decimal places, e.g. "149.90".
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", p.cents/100, p.cents%100)
}

// Validate returns ErrPriceIsNotConstructed for a zero-value Price.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
