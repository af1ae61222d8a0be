package nbt

import (
	"bytes"
	"encoding/binary"
	"testing"
	"testing/iotest"
)

func TestReadWriteInt16RoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		order binary.ByteOrder
		v     int16
	}{
		{"big-endian positive", binary.BigEndian, 1000},
		{"big-endian negative", binary.BigEndian, -1000},
		{"little-endian positive", binary.LittleEndian, 1000},
		{"little-endian negative", binary.LittleEndian, -1000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeInt16(&buf, tc.order, tc.v); err != nil {
				t.Fatalf("writeInt16: %v", err)
			}
			got, err := readInt16(&buf, tc.order)
			if err != nil {
				t.Fatalf("readInt16: %v", err)
			}
			if got != tc.v {
				t.Errorf("got %d, want %d", got, tc.v)
			}
		})
	}
}

func TestReadInt32TruncatedStream(t *testing.T) {
	buf := bytes.NewReader([]byte{0x00, 0x01})
	if _, err := readInt32(buf, binary.BigEndian); err == nil {
		t.Fatal("expected an error reading a truncated int32, got nil")
	}
}

func TestReadInt64BrokenReader(t *testing.T) {
	r := iotest.ErrReader(bytes.ErrTooLarge)
	if _, err := readInt64(r, binary.BigEndian); err == nil {
		t.Fatal("expected an error from a reader that always fails")
	}
}

func TestFloatRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	want := float32(3.5)
	if err := writeFloat32(&buf, binary.BigEndian, want); err != nil {
		t.Fatalf("writeFloat32: %v", err)
	}
	got, err := readFloat32(&buf, binary.BigEndian)
	if err != nil {
		t.Fatalf("readFloat32: %v", err)
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDoubleRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	want := -12345.6789
	if err := writeFloat64(&buf, binary.LittleEndian, want); err != nil {
		t.Fatalf("writeFloat64: %v", err)
	}
	got, err := readFloat64(&buf, binary.LittleEndian)
	if err != nil {
		t.Fatalf("readFloat64: %v", err)
	}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	want := "hello, nbt"
	if err := writeString(&buf, binary.BigEndian, want); err != nil {
		t.Fatalf("writeString: %v", err)
	}
	got, err := readString(&buf, binary.BigEndian)
	if err != nil {
		t.Fatalf("readString: %v", err)
	}
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStringLatin1Fallback(t *testing.T) {
	// 0xE9 alone is not valid UTF-8, but is the Latin-1 code point for "é".
	raw := []byte{0xE9}
	var buf bytes.Buffer
	if err := writeInt16(&buf, binary.BigEndian, int16(len(raw))); err != nil {
		t.Fatalf("writeInt16: %v", err)
	}
	buf.Write(raw)

	got, err := readString(&buf, binary.BigEndian)
	if err != nil {
		t.Fatalf("readString: %v", err)
	}
	if got != "é" {
		t.Errorf("got %q, want %q", got, "é")
	}
}

func TestWriteStringTooLong(t *testing.T) {
	var buf bytes.Buffer
	tooLong := make([]byte, 0x10000)
	if err := writeString(&buf, binary.BigEndian, string(tooLong)); err == nil {
		t.Fatal("expected an error writing a string longer than 0xFFFF bytes")
	}
}
