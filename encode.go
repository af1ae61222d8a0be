package nbt

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Marshal renders t as a nameless big-endian Named Tag in a fresh byte
// slice — the inverse of Unmarshal. Use WriteNamedTag directly for a
// named root, a different byte order, or streaming output.
func Marshal(t Tag) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteNamedTag(&buf, binary.BigEndian, "", t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteNamedTag writes one Named Tag: t's id byte, then (unless t is nil,
// signalling End) the length-prefixed name and t's payload. It is the
// write-side mirror of ReadNamedTag, driven off the same per-id dispatch.
func WriteNamedTag(w io.Writer, order binary.ByteOrder, name string, t Tag) error {
	if t == nil {
		return writeInt8(w, int8(IdEnd))
	}
	if err := writeInt8(w, int8(t.Id())); err != nil {
		return err
	}
	if err := writeString(w, order, name); err != nil {
		return err
	}
	return writePayload(w, order, t)
}

// writePayload writes t's payload only, with no id byte and no name. It is
// used for the bare per-element encoding List requires, and recurses into
// itself (via writeListPayload/writeCompoundPayload) for nested
// collections.
func writePayload(w io.Writer, order binary.ByteOrder, t Tag) error {
	switch v := t.(type) {
	case Byte:
		return writeInt8(w, int8(v))
	case Short:
		return writeInt16(w, order, int16(v))
	case Int:
		return writeInt32(w, order, int32(v))
	case Long:
		return writeInt64(w, order, int64(v))
	case Float:
		return writeFloat32(w, order, float32(v))
	case Double:
		return writeFloat64(w, order, float64(v))
	case String:
		return writeString(w, order, string(v))
	case *ByteArray:
		return writeByteArrayPayload(w, order, v)
	case *IntArray:
		return writeIntArrayPayload(w, order, v)
	case *LongArray:
		return writeLongArrayPayload(w, order, v)
	case *List:
		return writeListPayload(w, order, v)
	case *Compound:
		return writeCompoundPayload(w, order, v)
	default:
		return fmt.Errorf("nbt: cannot encode tag of type %T", t)
	}
}

func writeByteArrayPayload(w io.Writer, order binary.ByteOrder, a *ByteArray) error {
	if err := writeInt32(w, order, int32(len(a.data))); err != nil {
		return err
	}
	for _, v := range a.data {
		if err := writeInt8(w, v); err != nil {
			return err
		}
	}
	return nil
}

func writeIntArrayPayload(w io.Writer, order binary.ByteOrder, a *IntArray) error {
	if err := writeInt32(w, order, int32(len(a.data))); err != nil {
		return err
	}
	for _, v := range a.data {
		if err := writeInt32(w, order, v); err != nil {
			return err
		}
	}
	return nil
}

func writeLongArrayPayload(w io.Writer, order binary.ByteOrder, a *LongArray) error {
	if err := writeInt32(w, order, int32(len(a.data))); err != nil {
		return err
	}
	for _, v := range a.data {
		if err := writeInt64(w, order, v); err != nil {
			return err
		}
	}
	return nil
}

// writeListPayload writes the element tag id, the i32 length, then every
// element's bare payload in order. An empty list always writes IdEnd as its
// element id, matching its zero-value ElementId().
func writeListPayload(w io.Writer, order binary.ByteOrder, l *List) error {
	elemID := l.elemID
	if len(l.items) == 0 {
		elemID = IdEnd
	}
	if err := writeInt8(w, int8(elemID)); err != nil {
		return err
	}
	if err := writeInt32(w, order, int32(len(l.items))); err != nil {
		return err
	}
	for _, t := range l.items {
		if err := writePayload(w, order, t); err != nil {
			return err
		}
	}
	return nil
}

// writeCompoundPayload writes every entry as a Named Tag, in insertion
// order, terminated by a single End (id-0, no name, no payload) byte.
func writeCompoundPayload(w io.Writer, order binary.ByteOrder, c *Compound) error {
	for i, k := range c.keys {
		if err := WriteNamedTag(w, order, k, c.values[i]); err != nil {
			return err
		}
	}
	return writeInt8(w, int8(IdEnd))
}
