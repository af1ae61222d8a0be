package nbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompoundPreservesInsertionOrder(t *testing.T) {
	c := NewCompound()
	c.Set("z", Int(1))
	c.Set("a", Int(2))
	c.Set("m", Int(3))
	assert.Equal(t, []string{"z", "a", "m"}, c.Keys())
}

func TestCompoundSetOverwritePreservesPosition(t *testing.T) {
	c := NewCompound()
	c.Set("a", Int(1))
	c.Set("b", Int(2))
	c.Set("a", Int(99))
	assert.Equal(t, []string{"a", "b"}, c.Keys())
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, Int(99), v)
}

func TestCompoundDeleteReindexes(t *testing.T) {
	c := NewCompound()
	c.Set("a", Int(1))
	c.Set("b", Int(2))
	c.Set("c", Int(3))
	c.Delete("b")
	assert.Equal(t, []string{"a", "c"}, c.Keys())
	assert.False(t, c.Has("b"))
	v, ok := c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, Int(3), v)
}

func TestCompoundEqualIgnoresOrder(t *testing.T) {
	a := NewCompound()
	a.Set("x", Int(1))
	a.Set("y", Int(2))

	b := NewCompound()
	b.Set("y", Int(2))
	b.Set("x", Int(1))

	assert.True(t, a.Equal(b))
}

func TestCompoundCloneIsDeep(t *testing.T) {
	inner := NewCompound()
	inner.Set("n", Int(1))
	outer := NewCompound()
	outer.Set("inner", inner)

	deep := outer.Clone().(*Compound)
	inner.Set("n", Int(42))
	v, _ := deep.Get("inner")
	n, _ := v.(*Compound).Get("n")
	assert.Equal(t, Int(1), n)
}

func TestCompoundShallowCloneSharesValues(t *testing.T) {
	inner := NewCompound()
	inner.Set("n", Int(1))
	outer := NewCompound()
	outer.Set("inner", inner)

	shallow := outer.ShallowClone().(*Compound)
	inner.Set("n", Int(42))
	v, _ := shallow.Get("inner")
	n, _ := v.(*Compound).Get("n")
	assert.Equal(t, Int(42), n)
}
