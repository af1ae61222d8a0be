package nbt

// String is the UTF-8 text tag. It is a plain defined string type:
// Strings are effectively immutable — "mutation" means replacing the
// wrapper with a new String.
type String string

// NewString constructs a String from a Go string.
func NewString(v string) String { return String(v) }

func (String) Id() Id { return IdString }

// Value returns the underlying Go string.
func (s String) Value() string { return string(s) }

func (s String) Clone() Tag { return s }
func (s String) ShallowClone() Tag { return s }

// Equal holds against another String or a raw Go string with the same
// text.
func (s String) Equal(other any) bool {
	switch o := other.(type) {
	case String:
		return s == o
	case string:
		return string(s) == o
	default:
		return false
	}
}

func (s String) StrictEqual(other any) bool {
	o, ok := other.(String)
	return ok && s == o
}

// Hash digests the (tag id, text) pair.
func (s String) Hash() (uint64, error) { return hashString(string(s)) }
