package nbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdString(t *testing.T) {
	assert.Equal(t, "TAG_Int (0x03)", IdInt.String())
	assert.Equal(t, "TAG_End (0x00)", IdEnd.String())
	assert.Contains(t, Id(200).String(), "TAG_Unknown")
}

func TestIdValid(t *testing.T) {
	assert.True(t, IdEnd.Valid())
	assert.True(t, IdLongArray.Valid())
	assert.False(t, Id(13).Valid())
	assert.False(t, Id(255).Valid())
}
