package nbt

// Compound is an insertion-ordered string -> Tag mapping with unique
// keys. Order is preserved across iteration, binary encode/decode and
// SNBT printing, but carries no semantic weight of its own — keys are
// never sorted or canonicalised.
type Compound struct {
	keys   []string
	index  map[string]int
	values []Tag
}

// NewCompound returns an empty Compound.
func NewCompound() *Compound {
	return &Compound{index: make(map[string]int)}
}

// NewCompoundFromMap builds a Compound from a Go map. Map iteration order
// is unspecified by the language, so callers that care about a specific
// insertion order should build with repeated Set calls instead.
func NewCompoundFromMap(m map[string]Tag) *Compound {
	c := NewCompound()
	for k, v := range m {
		c.Set(k, v)
	}
	return c
}

func (*Compound) Id() Id { return IdCompound }

// Len reports the number of entries.
func (c *Compound) Len() int { return len(c.keys) }

// Keys returns the keys in insertion order. The returned slice is a copy;
// mutating it does not affect c.
func (c *Compound) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Get looks up key, reporting whether it was present.
func (c *Compound) Get(key string) (Tag, bool) {
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.values[i], true
}

// Has reports whether key is present.
func (c *Compound) Has(key string) bool {
	_, ok := c.index[key]
	return ok
}

// Set inserts or replaces the value at key, preserving key's original
// position if it already existed, or appending it at the end if it is
// new.
func (c *Compound) Set(key string, t Tag) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if i, ok := c.index[key]; ok {
		c.values[i] = t
		return
	}
	c.index[key] = len(c.keys)
	c.keys = append(c.keys, key)
	c.values = append(c.values, t)
}

// Delete removes key, if present, shifting later keys left to keep the
// index consistent with insertion order.
func (c *Compound) Delete(key string) {
	i, ok := c.index[key]
	if !ok {
		return
	}
	c.keys = append(c.keys[:i], c.keys[i+1:]...)
	c.values = append(c.values[:i], c.values[i+1:]...)
	delete(c.index, key)
	for k, idx := range c.index {
		if idx > i {
			c.index[k] = idx - 1
		}
	}
}

// Range calls f for every entry in insertion order, stopping early if f
// returns false.
func (c *Compound) Range(f func(key string, value Tag) bool) {
	for i, k := range c.keys {
		if !f(k, c.values[i]) {
			return
		}
	}
}

// Clone performs a deep copy: a new Compound with every value
// independently cloned.
func (c *Compound) Clone() Tag {
	out := NewCompound()
	for i, k := range c.keys {
		out.Set(k, c.values[i].Clone())
	}
	return out
}

// ShallowClone returns a new Compound header sharing c's value
// references.
func (c *Compound) ShallowClone() Tag {
	out := NewCompound()
	for i, k := range c.keys {
		out.Set(k, c.values[i])
	}
	return out
}

// Equal holds between two Compounds with the same key set, each key's
// value equal (permissively) regardless of insertion order, since order
// is not semantically meaningful.
func (c *Compound) Equal(other any) bool {
	o, ok := other.(*Compound)
	if !ok || c.Len() != o.Len() {
		return false
	}
	for i, k := range c.keys {
		ov, ok := o.Get(k)
		if !ok || !c.values[i].Equal(ov) {
			return false
		}
	}
	return true
}

// StrictEqual additionally requires every value to be strictly equal.
func (c *Compound) StrictEqual(other any) bool {
	o, ok := other.(*Compound)
	if !ok || c.Len() != o.Len() {
		return false
	}
	for i, k := range c.keys {
		ov, ok := o.Get(k)
		if !ok || !c.values[i].StrictEqual(ov) {
			return false
		}
	}
	return true
}

func (c *Compound) String() string { return renderString(c) }
