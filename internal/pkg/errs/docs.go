// Package errs provides the standardized error types used across the
// application. Each error kind follows the same pattern: a sentinel error
// for classification with errors.Is, a struct carrying the error details,
// constructors with and without an underlying cause, and Error/Unwrap
// methods so callers can both read a formatted message and unwrap to the
// sentinel.
//
// Provided kinds:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but invalid
//   - ValueIsOutOfRangeError: a numeric value falls outside its bounds
//   - ObjectNotFoundError: an entity lookup by identifier found nothing
//
// Business-rule errors (locked orders, illegal transitions and the like)
// are not defined here; they live as sentinels next to the domain model
// that owns the rule.
package errs
