package snbt

import (
	"strconv"
	"strings"

	nbt "github.com/ValentiMS/amulet-nbt-go"
)

// Indent configures the indented printer: either a literal string repeated
// per depth level, or a count of spaces.
type Indent struct {
	unit string
}

// IndentSpaces returns an Indent that repeats n spaces per depth level.
func IndentSpaces(n int) Indent {
	if n < 0 {
		n = 0
	}
	return Indent{unit: strings.Repeat(" ", n)}
}

// IndentString returns an Indent that repeats the literal string s per
// depth level.
func IndentString(s string) Indent {
	return Indent{unit: s}
}

// Print renders t as compact SNBT: no extraneous whitespace, the shortest
// form that still round-trips under strict equality.
func Print(t nbt.Tag) string {
	var b strings.Builder
	writeCompact(&b, t)
	return b.String()
}

// PrintIndent renders t as indented SNBT: compounds and lists place each
// child on its own line at depth*indent, while arrays and empty containers
// stay on one line.
func PrintIndent(t nbt.Tag, indent Indent) string {
	var b strings.Builder
	writeIndented(&b, t, indent, 0)
	return b.String()
}

func writeCompact(b *strings.Builder, t nbt.Tag) {
	switch v := t.(type) {
	case nbt.Byte:
		b.WriteString(strconv.FormatInt(int64(v.Value()), 10))
		b.WriteByte('b')
	case nbt.Short:
		b.WriteString(strconv.FormatInt(int64(v.Value()), 10))
		b.WriteByte('s')
	case nbt.Int:
		b.WriteString(strconv.FormatInt(int64(v.Value()), 10))
	case nbt.Long:
		b.WriteString(strconv.FormatInt(v.Value(), 10))
		b.WriteByte('L')
	case nbt.Float:
		b.WriteString(strconv.FormatFloat(float64(v.Value()), 'g', -1, 32))
		b.WriteByte('f')
	case nbt.Double:
		writeDouble(b, v.Value())
	case nbt.String:
		writeQuotedString(b, string(v))
	case *nbt.ByteArray:
		writeArray(b, "B", v.Len(), v.ElementAt)
	case *nbt.IntArray:
		writeArray(b, "I", v.Len(), v.ElementAt)
	case *nbt.LongArray:
		writeArray(b, "L", v.Len(), v.ElementAt)
	case *nbt.List:
		b.WriteByte('[')
		items := v.Items()
		for i, e := range items {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCompact(b, e)
		}
		b.WriteByte(']')
	case *nbt.Compound:
		b.WriteByte('{')
		first := true
		v.Range(func(key string, value nbt.Tag) bool {
			if !first {
				b.WriteByte(',')
			}
			first = false
			writeKey(b, key)
			b.WriteByte(':')
			writeCompact(b, value)
			return true
		})
		b.WriteByte('}')
	}
}

func writeIndented(b *strings.Builder, t nbt.Tag, indent Indent, depth int) {
	switch v := t.(type) {
	case *nbt.List:
		if v.Len() == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		items := v.Items()
		for i, e := range items {
			writePad(b, indent, depth+1)
			writeIndented(b, e, indent, depth+1)
			if i < len(items)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		writePad(b, indent, depth)
		b.WriteByte(']')
	case *nbt.Compound:
		if v.Len() == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		keys := v.Keys()
		for i, k := range keys {
			val, _ := v.Get(k)
			writePad(b, indent, depth+1)
			writeKey(b, k)
			b.WriteString(": ")
			writeIndented(b, val, indent, depth+1)
			if i < len(keys)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		writePad(b, indent, depth)
		b.WriteByte('}')
	default:
		// Scalars, strings and all three array kinds stay on one line
		// regardless of depth.
		writeCompact(b, t)
	}
}

func writePad(b *strings.Builder, indent Indent, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString(indent.unit)
	}
}

// writeDouble prints v bare when its shortest representation already
// contains a decimal point or exponent, and 'd'-suffixed otherwise — a
// suffix-less, dot-less double would reparse as an Int.
func writeDouble(b *strings.Builder, v float64) {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	b.WriteString(s)
	if !strings.ContainsAny(s, ".eE") {
		b.WriteByte('d')
	}
}

func writeArray(b *strings.Builder, tag string, n int, at func(int) int64) {
	b.WriteByte('[')
	b.WriteString(tag)
	b.WriteByte(';')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(at(i), 10))
	}
	b.WriteByte(']')
}

func writeKey(b *strings.Builder, key string) {
	if isBareWordKey(key) {
		b.WriteString(key)
		return
	}
	writeQuotedString(b, key)
}

func isBareWordKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		if !isBareWordChar(key[i]) {
			return false
		}
	}
	return true
}

func writeQuotedString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}
