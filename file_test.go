package nbt

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRoundTripUncompressed(t *testing.T) {
	root := NewCompound()
	root.Set("greeting", String("hi"))
	f := &File{Name: "root", Root: root}

	var buf bytes.Buffer
	require.NoError(t, WriteFile(&buf, f, binary.BigEndian, false))

	got, err := ReadFile(&buf, binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, f.Name, got.Name)
	assert.True(t, f.Root.Equal(got.Root))
}

func TestFileRoundTripGzipAutoDetected(t *testing.T) {
	root := NewCompound()
	root.Set("greeting", String("hi"))
	f := &File{Name: "root", Root: root}

	var buf bytes.Buffer
	require.NoError(t, WriteFile(&buf, f, binary.BigEndian, true))

	// Confirm the gzip magic bytes are actually present, since
	// auto-detection depends on them.
	assert.Equal(t, byte(0x1F), buf.Bytes()[0])
	assert.Equal(t, byte(0x8B), buf.Bytes()[1])

	got, err := ReadFile(&buf, binary.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, f.Name, got.Name)
	assert.True(t, f.Root.Equal(got.Root))
}

func TestFileRootMustBeCompound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNamedTag(&buf, binary.BigEndian, "", Int(5)))

	_, err := ReadFile(&buf, binary.BigEndian)
	assert.Error(t, err)
}

func TestFileRejectsBareEndRoot(t *testing.T) {
	_, err := ReadFile(bytes.NewReader([]byte{0x00}), binary.BigEndian)
	assert.Error(t, err)
}
