package nbt

import (
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
)

// The primitive codec: fixed-width integers and IEEE-754 floats in either
// byte order, plus length-prefixed strings. Every primitive takes the
// byte order as a parameter so the same code serves both the Java
// (big-endian) and Bedrock (little-endian) formats.

func readInt8(r io.Reader) (int8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, newDecodeError("reading 1-byte integer", ErrTruncated)
	}
	return int8(buf[0]), nil
}

func writeInt8(w io.Writer, v int8) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

func readInt16(r io.Reader, order binary.ByteOrder) (int16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, newDecodeError("reading 2-byte integer", ErrTruncated)
	}
	return int16(order.Uint16(buf[:])), nil
}

func writeInt16(w io.Writer, order binary.ByteOrder, v int16) error {
	var buf [2]byte
	order.PutUint16(buf[:], uint16(v))
	_, err := w.Write(buf[:])
	return err
}

func readInt32(r io.Reader, order binary.ByteOrder) (int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, newDecodeError("reading 4-byte integer", ErrTruncated)
	}
	return int32(order.Uint32(buf[:])), nil
}

func writeInt32(w io.Writer, order binary.ByteOrder, v int32) error {
	var buf [4]byte
	order.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

func readInt64(r io.Reader, order binary.ByteOrder) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, newDecodeError("reading 8-byte integer", ErrTruncated)
	}
	return int64(order.Uint64(buf[:])), nil
}

func writeInt64(w io.Writer, order binary.ByteOrder, v int64) error {
	var buf [8]byte
	order.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return err
}

func readFloat32(r io.Reader, order binary.ByteOrder) (float32, error) {
	bits, err := readInt32(r, order)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits)), nil
}

func writeFloat32(w io.Writer, order binary.ByteOrder, v float32) error {
	return writeInt32(w, order, int32(math.Float32bits(v)))
}

func readFloat64(r io.Reader, order binary.ByteOrder) (float64, error) {
	bits, err := readInt64(r, order)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(bits)), nil
}

func writeFloat64(w io.Writer, order binary.ByteOrder, v float64) error {
	return writeInt64(w, order, int64(math.Float64bits(v)))
}

// readUint16Length reads the unsigned 16-bit length prefix used by
// strings.
func readUint16Length(r io.Reader, order binary.ByteOrder) (int, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, newDecodeError("reading string length", ErrTruncated)
	}
	return int(order.Uint16(buf[:])), nil
}

// readString reads a u16-length-prefixed byte string and decodes it as
// UTF-8, falling back to Latin-1 (which cannot fail, since every byte
// 0-255 is a valid Latin-1 code point) when the bytes are not valid
// UTF-8, so legacy pre-UTF-8 world data still loads.
func readString(r io.Reader, order binary.ByteOrder) (string, error) {
	length, err := readUint16Length(r, order)
	if err != nil {
		return "", err
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", newDecodeError("reading string payload", ErrTruncated)
	}
	if utf8.Valid(buf) {
		return string(buf), nil
	}
	return decodeLatin1(buf), nil
}

// decodeLatin1 maps each input byte to the Unicode code point of the same
// ordinal (Latin-1's defining property), which by construction never
// fails.
func decodeLatin1(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}

// writeString writes a u16-length-prefixed UTF-8 string. The write side
// is always strict UTF-8: a string holding invalid UTF-8 bytes is
// rejected rather than written raw.
func writeString(w io.Writer, order binary.ByteOrder, s string) error {
	if !utf8.ValidString(s) {
		return newDecodeError("string payload is not valid UTF-8", nil)
	}
	data := []byte(s)
	if len(data) > 0xFFFF {
		return newDecodeError("string payload too long to encode", nil)
	}
	if err := writeInt16(w, order, int16(uint16(len(data)))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}
