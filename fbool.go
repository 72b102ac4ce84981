package sbool

import "fmt"

// FBool is a flavored boolean, for when you need to deal with different
// flavors of the truth. Each flavor owns its own truthy/falsy singleton
// pair; flavors are never reconciled with each other, combining two
// different flavors degrades the result to the base kind.
type FBool struct {
	truth  bool
	flavor Flavor
}

func (b *FBool) Kind() int {
	return TY_FBOOL
}

func (b *FBool) Truth() bool {
	return b.truth
}

func (b *FBool) Flavor() Flavor {
	return b.flavor
}

func (b *FBool) String() string {
	return fmt.Sprintf("FBool(%t, %s)", b.truth, b.flavor)
}

// MakeFBool returns the singleton for (flavor, witness truth).
func MakeFBool(witness bool, flavor Flavor) *FBool {
	return defaultInterner.FBool(witness, flavor)
}

// Truthy returns the truthy singleton of a particular flavor.
func Truthy(flavor Flavor) *FBool {
	return defaultInterner.FBool(true, flavor)
}

// Falsy returns the falsy singleton of a particular flavor.
func Falsy(flavor Flavor) *FBool {
	return defaultInterner.FBool(false, flavor)
}
