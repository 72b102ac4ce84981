package sbool

// The TFBool branch is closed: exactly two terminal kinds live under it,
// one permanently truthy and one permanently falsy, and logic between its
// members always lands back on one of the two fixed singletons.

// MakeTFBool routes a witness to one of the two closed-pair singletons.
func MakeTFBool(witness bool) *SBool {
	return defaultInterner.TFBool(witness)
}

// Always returns the always-truthy singleton, kind TY_T_BOOL.
func Always() *SBool {
	return defaultInterner.Always()
}

// NeverEver returns the always-falsy singleton, kind TY_F_BOOL.
func NeverEver() *SBool {
	return defaultInterner.NeverEver()
}
