package sbool

// Eager (non-shortcut) two-valued logic. Both operands are always
// evaluated; the result type is the deepest shared ancestor of the
// operand kinds. Two flavored operands are reconciled before the ancestor
// walk: equal flavors keep the flavor, divergent flavors drop it and land
// on the base kind instead of failing.

func (in *Interner) And(lhs, rhs Bool) (Bool, error) {
	lf, lok := lhs.(*FBool)
	rf, rok := rhs.(*FBool)
	if lok && rok {
		if lf.flavor.Equal(rf.flavor) {
			return in.FBool(lf.truth && rf.truth, lf.flavor), nil
		}
		return in.SBool(lf.truth && rf.truth), nil
	}

	kind, err := ancestor(lhs.Kind(), rhs.Kind())
	if err != nil {
		return nil, err
	}
	return in.internKind(kind, lhs.Truth() && rhs.Truth()), nil
}

func (in *Interner) Or(lhs, rhs Bool) (Bool, error) {
	lf, lok := lhs.(*FBool)
	rf, rok := rhs.(*FBool)
	if lok && rok {
		if lf.flavor.Equal(rf.flavor) {
			return in.FBool(lf.truth || rf.truth, lf.flavor), nil
		}
		return in.SBool(lf.truth || rf.truth), nil
	}

	kind, err := ancestor(lhs.Kind(), rhs.Kind())
	if err != nil {
		return nil, err
	}
	return in.internKind(kind, lhs.Truth() || rhs.Truth()), nil
}

func (in *Interner) Xor(lhs, rhs Bool) (Bool, error) {
	lf, lok := lhs.(*FBool)
	rf, rok := rhs.(*FBool)
	if lok && rok {
		if lf.flavor.Equal(rf.flavor) {
			return in.FBool(lf.truth != rf.truth, lf.flavor), nil
		}
		return in.SBool(lf.truth != rf.truth), nil
	}

	kind, err := ancestor(lhs.Kind(), rhs.Kind())
	if err != nil {
		return nil, err
	}
	return in.internKind(kind, lhs.Truth() != rhs.Truth()), nil
}

// Not returns the opposite-truth singleton of the same exact subtype:
// flavored values keep their flavor, closed-pair members map onto each
// other. Unlike the binary operators it cannot fail.
func (in *Interner) Not(v Bool) Bool {
	switch b := v.(type) {
	case *FBool:
		return in.FBool(!b.truth, b.flavor)
	case *SBool:
		return in.internKind(b.knd, !b.truth)
	}
	return in.SBool(!v.Truth())
}

func And(lhs, rhs Bool) (Bool, error) {
	return defaultInterner.And(lhs, rhs)
}

func Or(lhs, rhs Bool) (Bool, error) {
	return defaultInterner.Or(lhs, rhs)
}

func Xor(lhs, rhs Bool) (Bool, error) {
	return defaultInterner.Xor(lhs, rhs)
}

func Not(v Bool) Bool {
	return defaultInterner.Not(v)
}
