package nbt

import "fmt"

// snbtPrinter lets the snbt subpackage wire itself in as the
// implementation behind Tag.String(), the same way database/sql drivers
// register themselves without the sql package importing any driver: nbt
// cannot import snbt (snbt imports nbt for the Tag model), so snbt's
// init() calls RegisterSNBTPrinter instead.
var snbtPrinter func(Tag) string

// RegisterSNBTPrinter installs the compact-SNBT renderer used by every
// Tag's String method. Called once, from the snbt package's init; not
// meant to be called by library consumers.
func RegisterSNBTPrinter(f func(Tag) string) { snbtPrinter = f }

// renderString is the shared body of every Tag.String() implementation.
func renderString(t Tag) string {
	if snbtPrinter != nil {
		return snbtPrinter(t)
	}
	return fmt.Sprintf("%v", rawValue(t))
}

// rawValue is the crude fallback used only if the snbt package was never
// linked in. The cmd/nbtdump binary links snbt; the root package's own
// tests do not, so their messages render through this path. Composites
// are unpacked to their elements so that fmt does not call their String
// method again.
func rawValue(t Tag) any {
	switch v := t.(type) {
	case Byte:
		return v.Value()
	case Short:
		return v.Value()
	case Int:
		return v.Value()
	case Long:
		return v.Value()
	case Float:
		return v.Value()
	case Double:
		return v.Value()
	case String:
		return string(v)
	case *ByteArray:
		return v.data
	case *IntArray:
		return v.data
	case *LongArray:
		return v.data
	case *List:
		return v.items
	case *Compound:
		m := make(map[string]Tag, len(v.keys))
		for i, k := range v.keys {
			m[k] = v.values[i]
		}
		return m
	default:
		return v
	}
}

func (b Byte) String() string { return renderString(b) }
func (s Short) String() string { return renderString(s) }
func (i Int) String() string { return renderString(i) }
func (l Long) String() string { return renderString(l) }
func (f Float) String() string { return renderString(f) }
func (d Double) String() string { return renderString(d) }
func (s String) String() string { return renderString(s) }
