// Package guard provides ConstructorGuard, a marker embedded in command and
// query objects so that a zero value created without its constructor is
// rejected before a handler acts on it.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was built by its constructor.
//
// Example:
//
//	type AdvancePackageCommand struct {
//	    packageID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c AdvancePackageCommand) Validate() error {
//	    return c.guard.Validate(ErrAdvancePackageCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
