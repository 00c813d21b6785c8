package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("a", 1.0)

	v, ok := env.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestGetWalksEnclosingChain(t *testing.T) {
	outer := New(nil)
	outer.Define("a", "outer-value")
	inner := New(outer)

	v, ok := inner.Get("a")
	require.True(t, ok)
	assert.Equal(t, "outer-value", v)
}

func TestGetMissingReturnsFalse(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestAssignUpdatesNearestEnclosingBinding(t *testing.T) {
	outer := New(nil)
	outer.Define("a", 1.0)
	inner := New(outer)

	ok := inner.Assign("a", 2.0)
	require.True(t, ok)

	v, _ := outer.Get("a")
	assert.Equal(t, 2.0, v)
	_, definedInInner := inner.Values["a"]
	assert.False(t, definedInInner)
}

func TestAssignMissingReturnsFalse(t *testing.T) {
	env := New(nil)
	assert.False(t, env.Assign("missing", 1.0))
}

func TestGetAtAndAssignAtUseResolvedDistance(t *testing.T) {
	global := New(nil)
	global.Define("a", "global")
	block := New(global)
	block.Define("a", "block")

	assert.Equal(t, "block", block.GetAt(0, "a"))
	assert.Equal(t, "global", block.GetAt(1, "a"))

	block.AssignAt(1, "a", "reassigned-global")
	v, _ := global.Get("a")
	assert.Equal(t, "reassigned-global", v)
}
