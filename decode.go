package nbt

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Unmarshal decodes one nameless big-endian Named Tag from data — the
// inverse of Marshal. Use ReadNamedTag directly to recover the name, pick
// a different byte order, or read from a stream.
func Unmarshal(data []byte) (Tag, error) {
	_, tag, err := ReadNamedTag(bytes.NewReader(data), binary.BigEndian)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, newDecodeError("data begins with "+IdEnd.String()+"; no tag", nil)
	}
	return tag, nil
}

// ReadNamedTag reads one Named Tag — a one-byte tag id, then (unless the
// id is IdEnd) a length-prefixed name and the payload for that id — from
// r: read the id, bail out early for End (returning a nil Tag), otherwise
// read the name then hand off to a per-id payload reader.
func ReadNamedTag(r io.Reader, order binary.ByteOrder) (name string, tag Tag, err error) {
	id, err := readTagID(r)
	if err != nil {
		return "", nil, err
	}
	if id == IdEnd {
		return "", nil, nil
	}
	name, err = readString(r, order)
	if err != nil {
		return "", nil, newDecodeError("reading tag name", err)
	}
	tag, err = readPayload(r, order, id)
	if err != nil {
		return "", nil, err
	}
	return name, tag, nil
}

func readTagID(r io.Reader) (Id, error) {
	b, err := readInt8(r)
	if err != nil {
		return 0, newDecodeError("reading tag id", ErrTruncated)
	}
	id := Id(byte(b))
	if !id.Valid() {
		return 0, newDecodeError("unknown tag id "+id.String(), nil)
	}
	return id, nil
}

// readPayload reads the payload for a tag already known to have wire id
// id. It is the recursive core of the binary reader: List and Compound
// call back into it (directly, or via ReadNamedTag) for their children.
func readPayload(r io.Reader, order binary.ByteOrder, id Id) (Tag, error) {
	switch id {
	case IdByte:
		v, err := readInt8(r)
		if err != nil {
			return nil, err
		}
		return Byte(v), nil
	case IdShort:
		v, err := readInt16(r, order)
		if err != nil {
			return nil, err
		}
		return Short(v), nil
	case IdInt:
		v, err := readInt32(r, order)
		if err != nil {
			return nil, err
		}
		return Int(v), nil
	case IdLong:
		v, err := readInt64(r, order)
		if err != nil {
			return nil, err
		}
		return Long(v), nil
	case IdFloat:
		v, err := readFloat32(r, order)
		if err != nil {
			return nil, err
		}
		return Float(v), nil
	case IdDouble:
		v, err := readFloat64(r, order)
		if err != nil {
			return nil, err
		}
		return Double(v), nil
	case IdString:
		v, err := readString(r, order)
		if err != nil {
			return nil, err
		}
		return String(v), nil
	case IdByteArray:
		return readByteArrayPayload(r, order)
	case IdIntArray:
		return readIntArrayPayload(r, order)
	case IdLongArray:
		return readLongArrayPayload(r, order)
	case IdList:
		return readListPayload(r, order)
	case IdCompound:
		return readCompoundPayload(r, order)
	default:
		return nil, newDecodeError("unhandled tag id "+id.String(), nil)
	}
}

// readLength32 reads the signed 32-bit element count used by every array
// and list payload. Lengths are signed on the wire; a negative one is a
// decode error.
func readLength32(r io.Reader, order binary.ByteOrder) (int, error) {
	n, err := readInt32(r, order)
	if err != nil {
		return 0, newDecodeError("reading payload length", ErrTruncated)
	}
	if n < 0 {
		return 0, newDecodeError("negative payload length", nil)
	}
	return int(n), nil
}

func readByteArrayPayload(r io.Reader, order binary.ByteOrder) (*ByteArray, error) {
	n, err := readLength32(r, order)
	if err != nil {
		return nil, err
	}
	data := make([]int8, n)
	for i := range data {
		v, err := readInt8(r)
		if err != nil {
			return nil, newDecodeError("reading byte array element", ErrTruncated)
		}
		data[i] = v
	}
	return &ByteArray{data: data}, nil
}

func readIntArrayPayload(r io.Reader, order binary.ByteOrder) (*IntArray, error) {
	n, err := readLength32(r, order)
	if err != nil {
		return nil, err
	}
	data := make([]int32, n)
	for i := range data {
		v, err := readInt32(r, order)
		if err != nil {
			return nil, newDecodeError("reading int array element", ErrTruncated)
		}
		data[i] = v
	}
	return &IntArray{data: data}, nil
}

func readLongArrayPayload(r io.Reader, order binary.ByteOrder) (*LongArray, error) {
	n, err := readLength32(r, order)
	if err != nil {
		return nil, err
	}
	data := make([]int64, n)
	for i := range data {
		v, err := readInt64(r, order)
		if err != nil {
			return nil, newDecodeError("reading long array element", ErrTruncated)
		}
		data[i] = v
	}
	return &LongArray{data: data}, nil
}

// readListPayload reads a 1-byte element tag id, a signed i32 length, and
// that many bare payloads of the element type — no names, no per-element
// tag ids.
func readListPayload(r io.Reader, order binary.ByteOrder) (*List, error) {
	elemID, err := readTagID(r)
	if err != nil {
		return nil, err
	}
	n, err := readLength32(r, order)
	if err != nil {
		return nil, err
	}
	if elemID == IdEnd && n > 0 {
		// End has no payload grammar, so a nonzero-length End list has no
		// readable elements.
		return nil, newDecodeError("list of TAG_End with nonzero length", nil)
	}
	items := make([]Tag, n)
	for i := range items {
		t, err := readPayload(r, order, elemID)
		if err != nil {
			return nil, newDecodeError("reading list element", err)
		}
		items[i] = t
	}
	return &List{elemID: elemID, items: items}, nil
}

// readCompoundPayload reads Named Tags until it hits an End marker.
func readCompoundPayload(r io.Reader, order binary.ByteOrder) (*Compound, error) {
	c := NewCompound()
	for {
		name, tag, err := ReadNamedTag(r, order)
		if err != nil {
			return nil, newDecodeError("reading compound element", err)
		}
		if tag == nil {
			return c, nil
		}
		c.Set(name, tag)
	}
}
