package nbt

import "fmt"

// Id is the one-byte tag discriminator that prefixes every payload on the
// wire. The zero value, IdEnd, never appears as a materialised value — it
// only marks the end of a Compound's children and the (absent) element
// type of an empty List.
type Id byte

// Tag ids, in the order fixed by the wire format. Payload shapes are
// documented on the concrete type each id corresponds to.
const (
	IdEnd Id = iota
	IdByte
	IdShort
	IdInt
	IdLong
	IdFloat
	IdDouble
	IdByteArray
	IdString
	IdList
	IdCompound
	IdIntArray
	IdLongArray
)

// String renders the tag id the way the game's own tooling names it, e.g.
// "TAG_Int (0x03)".
func (id Id) String() string {
	name, ok := idNames[id]
	if !ok {
		name = "TAG_Unknown"
	}
	return fmt.Sprintf("%s (0x%02x)", name, byte(id))
}

var idNames = map[Id]string{
	IdEnd:       "TAG_End",
	IdByte:      "TAG_Byte",
	IdShort:     "TAG_Short",
	IdInt:       "TAG_Int",
	IdLong:      "TAG_Long",
	IdFloat:     "TAG_Float",
	IdDouble:    "TAG_Double",
	IdByteArray: "TAG_Byte_Array",
	IdString:    "TAG_String",
	IdList:      "TAG_List",
	IdCompound:  "TAG_Compound",
	IdIntArray:  "TAG_Int_Array",
	IdLongArray: "TAG_Long_Array",
}

// Valid reports whether id is one of the twelve defined tag ids (IdEnd
// included).
func (id Id) Valid() bool {
	return id <= IdLongArray
}

// Tag is the common interface implemented by every NBT value. A Tag knows
// its own wire id, can compare itself to another Tag either permissively
// (payload only) or strictly (variant and payload), and can produce
// independent deep and spine-shallow copies of itself.
//
// Composite tags (*List, *Compound, *ByteArray, *IntArray, *LongArray) are
// mutable through their own methods; scalar tags and String are immutable
// value types — "mutating" one just means replacing it with a new value of
// the same type.
type Tag interface {
	// Id returns the wire tag id for this value.
	Id() Id

	// Equal compares payloads only: numeric tags compare by numeric value
	// across variants, and a Tag compares equal to a raw Go primitive of
	// matching kind. Equal never panics on a type mismatch; it returns
	// false.
	Equal(other any) bool

	// StrictEqual additionally requires that other be a Tag of the same
	// concrete variant.
	StrictEqual(other any) bool

	// Clone returns a fully independent deep copy.
	Clone() Tag

	// ShallowClone returns a new outer value; for composites, children
	// (and, per the array-buffer convention documented in DESIGN.md, the
	// backing buffer of the three Array kinds) are shared with the
	// original. Scalars and String have no structure to share, so
	// ShallowClone and Clone coincide for them.
	ShallowClone() Tag

	// String renders the value as compact SNBT. Implemented in terms of
	// the snbt package through a package-level hook to avoid an import
	// cycle; see snbtPrinter and RegisterSNBTPrinter in print_hook.go.
	String() string
}

// errWrongKind is returned by the arithmetic and comparison helpers when a
// dynamically typed operand is not of the numeric or array kind they need.
// The generic constructors (NewByte, NewByteArray, ...) never fail.
func errWrongKind(tagName string, v any) error {
	return &ConstructionError{Msg: fmt.Sprintf("cannot construct %s from %T", tagName, v)}
}
