package nbt

import (
	"encoding/binary"
	"io"
)

// ReadBedrockRoot reads a Bedrock-format root tag: an 8-byte header of a u32
// format version followed by a u32 little-endian payload length, then a
// single little-endian Named Tag. The version is returned to the caller
// uninterpreted; this library does not attempt to validate it against any
// known world-format revision list.
func ReadBedrockRoot(r io.Reader) (version int32, name string, tag Tag, err error) {
	header := make([]byte, 8)
	if _, err := io.ReadFull(r, header); err != nil {
		return 0, "", nil, newDecodeError("reading bedrock header", ErrTruncated)
	}
	version = int32(binary.LittleEndian.Uint32(header[0:4]))
	length := binary.LittleEndian.Uint32(header[4:8])

	payload := io.LimitReader(r, int64(length))
	name, tag, err = ReadNamedTag(payload, binary.LittleEndian)
	if err != nil {
		return 0, "", nil, err
	}
	return version, name, tag, nil
}

// WriteBedrockRoot writes name/tag as a little-endian Named Tag prefixed by
// the 8-byte Bedrock header (format version, then payload length), mirroring
// ReadBedrockRoot.
func WriteBedrockRoot(w io.Writer, version int32, name string, tag Tag) error {
	var buf writeCounter
	if err := WriteNamedTag(&buf, binary.LittleEndian, name, tag); err != nil {
		return err
	}

	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], uint32(version))
	binary.LittleEndian.PutUint32(header[4:8], uint32(buf.n))
	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err := w.Write(buf.data)
	return err
}

// writeCounter buffers the encoded payload so its length can be written into
// the Bedrock header ahead of the data itself, since the header is not
// seekable-patchable on an arbitrary io.Writer.
type writeCounter struct {
	data []byte
	n    int
}

func (c *writeCounter) Write(p []byte) (int, error) {
	c.data = append(c.data, p...)
	c.n += len(p)
	return len(p), nil
}
