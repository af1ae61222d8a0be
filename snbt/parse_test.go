package snbt

import (
	"testing"

	nbt "github.com/ValentiMS/amulet-nbt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumericSuffixes(t *testing.T) {
	tag, err := Parse("{a:1b,b:2s,c:3,d:4L,e:5.0f,f:6.0}")
	require.NoError(t, err)
	c, ok := tag.(*nbt.Compound)
	require.True(t, ok)

	a, _ := c.Get("a")
	assert.IsType(t, nbt.Byte(0), a)
	b, _ := c.Get("b")
	assert.IsType(t, nbt.Short(0), b)
	cc, _ := c.Get("c")
	assert.IsType(t, nbt.Int(0), cc)
	d, _ := c.Get("d")
	assert.IsType(t, nbt.Long(0), d)
	e, _ := c.Get("e")
	assert.IsType(t, nbt.Float(0), e)
	f, _ := c.Get("f")
	assert.IsType(t, nbt.Double(0), f)
}

func TestParseCompoundPreservesKeyOrder(t *testing.T) {
	tag, err := Parse(`{z:1,a:2,m:3}`)
	require.NoError(t, err)
	c := tag.(*nbt.Compound)
	assert.Equal(t, []string{"z", "a", "m"}, c.Keys())
}

func TestParseList(t *testing.T) {
	tag, err := Parse("[1,2,3]")
	require.NoError(t, err)
	l := tag.(*nbt.List)
	assert.Equal(t, 3, l.Len())
	assert.True(t, l.Get(0).Equal(nbt.Int(1)))
}

func TestParseListElementMismatchErrors(t *testing.T) {
	_, err := Parse("[1,2b]")
	assert.Error(t, err)
}

func TestParseByteArray(t *testing.T) {
	tag, err := Parse("[B;1,2,3]")
	require.NoError(t, err)
	a := tag.(*nbt.ByteArray)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, int8(2), a.Get(1))
}

func TestParseIntArray(t *testing.T) {
	tag, err := Parse("[I;10,20,30]")
	require.NoError(t, err)
	a := tag.(*nbt.IntArray)
	assert.Equal(t, int32(20), a.Get(1))
}

func TestParseEmptyArray(t *testing.T) {
	tag, err := Parse("[L;]")
	require.NoError(t, err)
	a := tag.(*nbt.LongArray)
	assert.Equal(t, 0, a.Len())
}

func TestParseQuotedStringEscapes(t *testing.T) {
	tag, err := Parse(`"he said \"hi\""`)
	require.NoError(t, err)
	assert.Equal(t, nbt.String(`he said "hi"`), tag)
}

func TestParseBareWordString(t *testing.T) {
	tag, err := Parse("hello_world")
	require.NoError(t, err)
	assert.Equal(t, nbt.String("hello_world"), tag)
}

func TestParseDuplicateKeyErrors(t *testing.T) {
	_, err := Parse("{a:1,a:2}")
	assert.Error(t, err)
}

func TestParseUnterminatedStringErrors(t *testing.T) {
	_, err := Parse(`"unterminated`)
	assert.Error(t, err)
}

func TestParseTrailingCommaTolerated(t *testing.T) {
	tag, err := Parse("[1,2,3,]")
	require.NoError(t, err)
	assert.Equal(t, 3, tag.(*nbt.List).Len())

	tag, err = Parse("{a:1,}")
	require.NoError(t, err)
	assert.Equal(t, 1, tag.(*nbt.Compound).Len())
}

func TestParseNestedStructure(t *testing.T) {
	tag, err := Parse(`{name:"world",pos:[I;1,2,3],tags:["a","b"]}`)
	require.NoError(t, err)
	c := tag.(*nbt.Compound)
	assert.True(t, c.Has("name"))
	assert.True(t, c.Has("pos"))
	assert.True(t, c.Has("tags"))
}
