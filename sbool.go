package sbool

import "fmt"

/*
 *   Public Interface
 */

// Bool is a value in the boolean kind hierarchy. Every value is an
// interned singleton: for a fixed (kind, truth[, flavor]) key the same
// object is returned forever.
type Bool interface {
	Kind() int
	Truth() bool
	String() string
}

// SBool is the concrete value for the base kind, for runtime-registered
// subtypes and for the closed always-true/always-false pair. Truth is the
// ordinary truthiness protocol, usable in shortcut conditionals; it is the
// weaker negation path (!v.Truth() is a plain bool). Use Not to negate
// while preserving the subtype.
type SBool struct {
	knd   int
	truth bool
}

func (b *SBool) Kind() int {
	return b.knd
}

func (b *SBool) Truth() bool {
	return b.truth
}

func (b *SBool) String() string {
	switch b.knd {
	case TY_T_BOOL:
		return "ALWAYS"
	case TY_F_BOOL:
		return "NEVER_EVER"
	case TY_SBOOL:
		if b.truth {
			return "TRUTH"
		}
		return "LIE"
	}
	return fmt.Sprintf("%s(%t)", KindName(b.knd), b.truth)
}

// Equal is value equality on the truth payload. It holds across subtypes:
// the base truthy singleton and an always-truthy singleton are Equal.
func Equal(a, b Bool) bool {
	return a.Truth() == b.Truth()
}

// Same is identity equality. It holds only for the same interned
// singleton, so it also distinguishes subtypes (and flavors) that Equal
// does not.
func Same(a, b Bool) bool {
	return a == b
}

// MakeSBool returns the base truthy or falsy singleton.
func MakeSBool(witness bool) *SBool {
	return defaultInterner.SBool(witness)
}

// MakeSubtyped returns the truthy or falsy singleton of a registered
// combinable subtype.
func MakeSubtyped(kind int, witness bool) (*SBool, error) {
	return defaultInterner.Subtyped(kind, witness)
}

// Truth returns the base truthy singleton.
func Truth() *SBool {
	return defaultInterner.SBool(true)
}

// Lie returns the base falsy singleton.
func Lie() *SBool {
	return defaultInterner.SBool(false)
}
