package nbt

// List is an ordered, element-homogeneous sequence of Tags. Every element
// must share the list's element tag id; an empty list's element tag id is
// IdEnd, and the first insertion locks it.
type List struct {
	elemID Id
	items  []Tag
}

// NewList constructs a List from zero or more Tags, all of which must
// share one variant; an empty call produces an empty list with element
// tag id IdEnd.
func NewList(items ...Tag) (*List, error) {
	l := &List{elemID: IdEnd}
	if err := l.Extend(items); err != nil {
		return nil, err
	}
	return l, nil
}

func (*List) Id() Id { return IdList }

// ElementId returns the tag id every element of l must share.
func (l *List) ElementId() Id { return l.elemID }

// Len reports the number of elements.
func (l *List) Len() int { return len(l.items) }

// Get returns the element at i.
func (l *List) Get(i int) Tag { return l.items[i] }

// Items returns the backing slice directly. Mutating it bypasses the
// homogeneity checks the dedicated mutators perform; prefer Append/Set/
// Insert/Delete unless you already know every element shares one
// variant.
func (l *List) Items() []Tag { return l.items }

func (l *List) checkElement(t Tag) error {
	if t == nil {
		return &ConstructionError{Msg: "list element must not be nil"}
	}
	if l.elemID == IdEnd {
		return nil
	}
	if t.Id() != l.elemID {
		return &ConstructionError{Msg: "list element variant " + t.Id().String() + " does not match element tag id " + l.elemID.String()}
	}
	return nil
}

// Append adds t to the end of the list, locking the element tag id on the
// first insertion and rejecting a mismatched variant thereafter.
func (l *List) Append(t Tag) error {
	if err := l.checkElement(t); err != nil {
		return err
	}
	if l.elemID == IdEnd {
		l.elemID = t.Id()
	}
	l.items = append(l.items, t)
	return nil
}

// Extend appends every element of ts, re-checking homogeneity for each
// one; extending an empty list with a non-empty slice sets the element
// tag id from the first element, exactly as Append does.
func (l *List) Extend(ts []Tag) error {
	for _, t := range ts {
		if err := l.Append(t); err != nil {
			return err
		}
	}
	return nil
}

// Insert places t at index i, shifting subsequent elements right.
func (l *List) Insert(i int, t Tag) error {
	if err := l.checkElement(t); err != nil {
		return err
	}
	if l.elemID == IdEnd {
		l.elemID = t.Id()
	}
	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = t
	return nil
}

// Set replaces the element at i, re-checking homogeneity.
func (l *List) Set(i int, t Tag) error {
	if err := l.checkElement(t); err != nil {
		return err
	}
	l.items[i] = t
	return nil
}

// Delete removes the element at i.
func (l *List) Delete(i int) {
	l.items = append(l.items[:i], l.items[i+1:]...)
}

// Clear empties the list and resets its element tag id to IdEnd, so the
// next Append/Insert/Extend call is free to lock in a new variant.
func (l *List) Clear() {
	l.items = nil
	l.elemID = IdEnd
}

// Clone performs a deep copy: a new List with every element independently
// cloned.
func (l *List) Clone() Tag {
	items := make([]Tag, len(l.items))
	for i, t := range l.items {
		items[i] = t.Clone()
	}
	return &List{elemID: l.elemID, items: items}
}

// ShallowClone returns a new List header sharing l's element references;
// replacing an element through one copy does not affect the other, but
// mutating a shared mutable element (e.g. a nested *Compound) does.
func (l *List) ShallowClone() Tag {
	items := make([]Tag, len(l.items))
	copy(items, l.items)
	return &List{elemID: l.elemID, items: items}
}

// Equal holds between two Lists of the same element tag id and equal
// (permissively compared) elements in the same order.
func (l *List) Equal(other any) bool {
	o, ok := other.(*List)
	if !ok || l.elemID != o.elemID || len(l.items) != len(o.items) {
		return false
	}
	for i, t := range l.items {
		if !t.Equal(o.items[i]) {
			return false
		}
	}
	return true
}

// StrictEqual additionally requires every element to be strictly equal.
func (l *List) StrictEqual(other any) bool {
	o, ok := other.(*List)
	if !ok || l.elemID != o.elemID || len(l.items) != len(o.items) {
		return false
	}
	for i, t := range l.items {
		if !t.StrictEqual(o.items[i]) {
			return false
		}
	}
	return true
}

func (l *List) String() string { return renderString(l) }
