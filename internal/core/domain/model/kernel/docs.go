// Package kernel provides the core domain primitives shared by the whole
// domain model of the service shop.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Price: a value object for non-negative monetary amounts in cents
//
// These primitives are immutable and thread-safe. Their zero values are
// invalid and fail Validate, which forces construction through the provided
// factory functions and keeps domain objects in a valid state from birth.
package kernel
