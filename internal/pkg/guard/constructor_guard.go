// Package guard provides a defensive construction pattern for value objects
// and commands. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable: only objects created through their designated
// constructor carry a valid guard.
package guard

// ConstructorGuard distinguishes properly constructed objects from zero values.
// The zero value of the guard is invalid; constructors obtain a valid guard
// via NewConstructorGuard.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and notConstructedErr otherwise.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if !g.isConstructed {
		return notConstructedErr
	}
	return nil
}
