package nbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLocksElementIDOnFirstInsert(t *testing.T) {
	l, err := NewList(Int(1))
	require.NoError(t, err)
	assert.Equal(t, IdInt, l.ElementId())

	err = l.Append(Long(2))
	assert.Error(t, err, "appending a mismatched variant must fail")
}

func TestListEmptyElementIDIsEnd(t *testing.T) {
	l, err := NewList()
	require.NoError(t, err)
	assert.Equal(t, IdEnd, l.ElementId())
}

func TestListCloneIsDeep(t *testing.T) {
	inner := NewCompound()
	inner.Set("x", Int(1))
	l, err := NewList(inner)
	require.NoError(t, err)

	deep := l.Clone().(*List)
	inner.Set("x", Int(99))
	v, _ := deep.Get(0).(*Compound).Get("x")
	assert.Equal(t, Int(1), v, "deep clone's nested compound must be independent")
}

func TestListShallowCloneSharesElements(t *testing.T) {
	inner := NewCompound()
	inner.Set("x", Int(1))
	l, err := NewList(inner)
	require.NoError(t, err)

	shallow := l.ShallowClone().(*List)
	inner.Set("x", Int(99))
	v, _ := shallow.Get(0).(*Compound).Get("x")
	assert.Equal(t, Int(99), v, "shallow clone shares the same element reference")
}

func TestListClear(t *testing.T) {
	l, err := NewList(Int(1), Int(2))
	require.NoError(t, err)
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, IdEnd, l.ElementId())
	require.NoError(t, l.Append(String("now a string list")))
}

func TestListEqual(t *testing.T) {
	a, _ := NewList(Int(1), Int(2))
	b, _ := NewList(Int(1), Int(2))
	assert.True(t, a.Equal(b))

	c, _ := NewList(Long(1), Long(2))
	assert.False(t, a.Equal(c))
}
