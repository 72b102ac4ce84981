package sbool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSBoolSingleton(t *testing.T) {
	t1 := MakeSBool(true)
	t2 := MakeSBool(true)
	f1 := MakeSBool(false)
	f2 := MakeSBool(false)

	assert.True(t, Same(t1, t2))
	assert.True(t, Same(f1, f2))
	assert.False(t, Same(t1, f1))

	assert.True(t, Same(t1, Truth()))
	assert.True(t, Same(f1, Lie()))
}

func TestSBoolTruthProtocol(t *testing.T) {
	assert.True(t, Truth().Truth())
	assert.False(t, Lie().Truth())

	// The shortcut path loses the subtype: !v.Truth() is a plain bool.
	assert.True(t, !Lie().Truth())
}

func TestSBoolEqualVsSame(t *testing.T) {
	assert.True(t, Equal(Truth(), Truth()))
	assert.True(t, Equal(Lie(), Lie()))
	assert.False(t, Equal(Truth(), Lie()))

	// Equal across subtypes when truth matches, Same never.
	assert.True(t, Equal(Truth(), Always()))
	assert.False(t, Same(Truth(), Always()))
	assert.True(t, Equal(Lie(), NeverEver()))
	assert.False(t, Same(Lie(), NeverEver()))

	assert.True(t, Equal(Truth(), Truthy(StringFlavor("a"))))
	assert.False(t, Same(Truth(), Truthy(StringFlavor("a"))))
}

func TestSBoolNotInvolution(t *testing.T) {
	assert.True(t, Same(Not(Truth()), Lie()))
	assert.True(t, Same(Not(Lie()), Truth()))
	assert.True(t, Same(Not(Not(Truth())), Truth()))
	assert.True(t, Same(Not(Not(Lie())), Lie()))
}

func TestSBoolString(t *testing.T) {
	assert.Equal(t, "TRUTH", Truth().String())
	assert.Equal(t, "LIE", Lie().String())
}

func TestSubtypedSingleton(t *testing.T) {
	kind, err := RegisterSubtype("Rumor", TY_SBOOL)
	require.NoError(t, err)

	t1, err := MakeSubtyped(kind, true)
	require.NoError(t, err)
	t2, err := MakeSubtyped(kind, true)
	require.NoError(t, err)
	f1, err := MakeSubtyped(kind, false)
	require.NoError(t, err)

	assert.True(t, Same(t1, t2))
	assert.False(t, Same(t1, f1))
	assert.Equal(t, kind, t1.Kind())

	// Subtype singletons do not share cache slots with the base pair.
	assert.False(t, Same(t1, Truth()))
	assert.True(t, Equal(t1, Truth()))

	assert.Equal(t, "Rumor(true)", t1.String())
	assert.Equal(t, "Rumor(false)", f1.String())
}

func TestSubtypedNotPreservesKind(t *testing.T) {
	kind, err := RegisterSubtype("Gossip", TY_SBOOL)
	require.NoError(t, err)

	v, err := MakeSubtyped(kind, true)
	require.NoError(t, err)

	n := Not(v)
	assert.Equal(t, kind, n.Kind())
	assert.False(t, n.Truth())
	assert.True(t, Same(Not(n), v))
}

func TestSubtypedRejectsClosedKinds(t *testing.T) {
	_, err := MakeSubtyped(TY_T_BOOL, true)
	assert.Error(t, err)
	_, err = MakeSubtyped(TY_FBOOL, true)
	assert.Error(t, err)
	_, err = MakeSubtyped(TY_INT, true)
	assert.Error(t, err)
}
