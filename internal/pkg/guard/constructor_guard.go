// Package guard implements the constructor-guard pattern used by commands
// and value objects: a small embedded flag that distinguishes properly
// constructed instances from zero values, so Validate methods can reject
// structs that bypassed their constructor.
package guard

import "errors"

// ErrNotConstructed is returned by Validate when no specific error is supplied.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value is "not constructed" and fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state. Call it in
// every constructor and embed the result in the returned object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor,
// otherwise the supplied error (or ErrNotConstructed when nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrNotConstructed
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
