package nbt

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// smallCompoundBytes is the worked example from the binary-codec scenario:
// Compound({"hello": String("world"), "n": Int(42)}) named "", big-endian.
func smallCompoundBytes() []byte {
	return []byte{
		0x0A, 0x00, 0x00, // TAG_Compound, name length 0
		0x08, 0x00, 0x05, 'h', 'e', 'l', 'l', 'o', 0x00, 0x05, 'w', 'o', 'r', 'l', 'd',
		0x03, 0x00, 0x01, 'n', 0x00, 0x00, 0x00, 0x2A,
		0x00, // End
	}
}

func TestDecodeSmallCompound(t *testing.T) {
	r := bytes.NewReader(smallCompoundBytes())
	name, tag, err := ReadNamedTag(r, binary.BigEndian)
	if err != nil {
		t.Fatalf("ReadNamedTag: %v", err)
	}
	if name != "" {
		t.Fatalf("got root name %q, want empty", name)
	}
	c, ok := tag.(*Compound)
	if !ok {
		t.Fatalf("root tag is %T, want *Compound", tag)
	}

	hello, ok := c.Get("hello")
	if !ok || !hello.Equal(String("world")) {
		t.Errorf("hello = %v, want String(world)", hello)
	}
	n, ok := c.Get("n")
	if !ok || !n.Equal(Int(42)) {
		t.Errorf("n = %v, want Int(42)", n)
	}
}

func TestEncodeSmallCompoundMatchesBytes(t *testing.T) {
	c := NewCompound()
	c.Set("hello", String("world"))
	c.Set("n", Int(42))

	var buf bytes.Buffer
	if err := WriteNamedTag(&buf, binary.BigEndian, "", c); err != nil {
		t.Fatalf("WriteNamedTag: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), smallCompoundBytes()) {
		t.Errorf("got % X, want % X", buf.Bytes(), smallCompoundBytes())
	}
}

func TestDecodeListOfInts(t *testing.T) {
	payload := []byte{
		byte(IdInt), 0x00, 0x00, 0x00, 0x03,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x03,
	}
	l, err := readListPayload(bytes.NewReader(payload), binary.BigEndian)
	if err != nil {
		t.Fatalf("readListPayload: %v", err)
	}
	if l.Len() != 3 || l.ElementId() != IdInt {
		t.Fatalf("got len=%d elemID=%v, want len=3 elemID=IdInt", l.Len(), l.ElementId())
	}
	for i, want := range []Int{1, 2, 3} {
		if !l.Get(i).Equal(want) {
			t.Errorf("element %d = %v, want %v", i, l.Get(i), want)
		}
	}
}

func TestEncodeListOfIntsMatchesBytes(t *testing.T) {
	l, err := NewList(Int(1), Int(2), Int(3))
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}
	var buf bytes.Buffer
	if err := writeListPayload(&buf, binary.BigEndian, l); err != nil {
		t.Fatalf("writeListPayload: %v", err)
	}
	want := []byte{
		byte(IdInt), 0x00, 0x00, 0x00, 0x03,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x03,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got % X, want % X", buf.Bytes(), want)
	}
}

func TestDecodeRejectsUnknownTagID(t *testing.T) {
	r := bytes.NewReader([]byte{0x7F, 0x00, 0x00})
	if _, _, err := ReadNamedTag(r, binary.BigEndian); err == nil {
		t.Fatal("expected a decode error for an unknown tag id")
	}
}

func TestDecodeRejectsNegativeLength(t *testing.T) {
	payload := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	if _, err := readByteArrayPayload(bytes.NewReader(payload), binary.BigEndian); err == nil {
		t.Fatal("expected a decode error for a negative array length")
	}
}

func TestDecodeTruncatedStream(t *testing.T) {
	r := bytes.NewReader(smallCompoundBytes()[:10])
	if _, _, err := ReadNamedTag(r, binary.BigEndian); err == nil {
		t.Fatal("expected a decode error for a truncated stream")
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	c := NewCompound()
	c.Set("k", String("v"))
	c.Set("n", Int(7))

	data, err := Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !c.StrictEqual(got) {
		t.Errorf("got %v, want %v", got, c)
	}
}

func TestUnmarshalRejectsBareEnd(t *testing.T) {
	if _, err := Unmarshal([]byte{0x00}); err == nil {
		t.Fatal("expected a decode error for a bare End byte")
	}
}

func TestDecodeRejectsEndListWithNonzeroLength(t *testing.T) {
	payload := []byte{byte(IdEnd), 0x00, 0x00, 0x00, 0x02}
	if _, err := readListPayload(bytes.NewReader(payload), binary.BigEndian); err == nil {
		t.Fatal("expected a decode error for a TAG_End list with nonzero length")
	}
}

func TestBinaryRoundTripStrict(t *testing.T) {
	inner := NewCompound()
	inner.Set("f", Float(1.5))
	inner.Set("d", Double(2.25))
	list, err := NewList(Short(1), Short(2))
	if err != nil {
		t.Fatalf("NewList: %v", err)
	}
	root := NewCompound()
	root.Set("b", Byte(-1))
	root.Set("l", Long(1<<40))
	root.Set("s", String("héllo"))
	root.Set("ba", NewByteArray(1, -2, 3))
	root.Set("ia", NewIntArray(100000, -200000))
	root.Set("la", NewLongArray(int64(1)<<40))
	root.Set("list", list)
	root.Set("inner", inner)

	for _, order := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		t.Run(order.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteNamedTag(&buf, order, "root", root); err != nil {
				t.Fatalf("WriteNamedTag: %v", err)
			}
			name, tag, err := ReadNamedTag(&buf, order)
			if err != nil {
				t.Fatalf("ReadNamedTag: %v", err)
			}
			if name != "root" {
				t.Errorf("got name %q, want %q", name, "root")
			}
			if !root.StrictEqual(tag) {
				t.Errorf("round-tripped tag is not strictly equal to the original:\n got %v\nwant %v", tag, root)
			}
		})
	}
}

func TestLatin1FallbackDecodeScenario(t *testing.T) {
	payload := []byte{0x00, 0x02, 0xFF, 0xFE}
	s, err := readString(bytes.NewReader(payload), binary.BigEndian)
	if err != nil {
		t.Fatalf("readString: %v", err)
	}
	want := string([]rune{0x00FF, 0x00FE})
	if s != want {
		t.Errorf("got %q, want %q", s, want)
	}
}
