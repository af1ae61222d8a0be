package nbt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructionErrorUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := &ConstructionError{Msg: "bad value", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "bad value")
}

func TestDecodeErrorUnwrap(t *testing.T) {
	err := newDecodeError("reading tag id", ErrTruncated)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestSNBTParseErrorCarriesOffset(t *testing.T) {
	err := &SNBTParseError{Msg: "unexpected token", Offset: 7}
	assert.Contains(t, err.Error(), "offset 7")
}
