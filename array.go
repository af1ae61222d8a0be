package nbt

import "fmt"

// ArrayTag is implemented by the three fixed-width array kinds. It lets
// one array type be constructed from another of a different element
// width, per the construction contract ("an Array accepts ... another
// Array of the same or a different integer width; element width is
// coerced").
type ArrayTag interface {
	Tag
	Len() int
	ElementAt(i int) int64
}

// ByteArray, IntArray and LongArray are contiguous owned buffers of their
// respective width rather than boxed element collections, which keeps
// encoding a straight pass over memory and makes slicing natural. They
// are pointer types because, unlike the scalars, they carry mutable state
// (the backing slice) that List/Compound-style indexing and in-place
// mutation operate on.
//
// Shallow copy shares the backing slice (Go's native slice aliasing does
// this for free); deep copy allocates an independent one. A
// shallow-copied array therefore observes element mutations through the
// original, and a deep-copied one does not.
type ByteArray struct{ data []int8 }
type IntArray struct{ data []int32 }
type LongArray struct{ data []int64 }

// NewByteArray constructs a ByteArray from any sequence of numeric
// values, truncating each toward zero to fit an int8.
func NewByteArray[T Number](values ...T) *ByteArray {
	data := make([]int8, len(values))
	for i, v := range values {
		data[i] = int8(v)
	}
	return &ByteArray{data: data}
}

func NewIntArray[T Number](values ...T) *IntArray {
	data := make([]int32, len(values))
	for i, v := range values {
		data[i] = int32(v)
	}
	return &IntArray{data: data}
}

func NewLongArray[T Number](values ...T) *LongArray {
	data := make([]int64, len(values))
	for i, v := range values {
		data[i] = int64(v)
	}
	return &LongArray{data: data}
}

// NewByteArrayFrom coerces another array tag's elements (of any width)
// into a new ByteArray.
func NewByteArrayFrom(a ArrayTag) *ByteArray {
	data := make([]int8, a.Len())
	for i := range data {
		data[i] = int8(a.ElementAt(i))
	}
	return &ByteArray{data: data}
}

func NewIntArrayFrom(a ArrayTag) *IntArray {
	data := make([]int32, a.Len())
	for i := range data {
		data[i] = int32(a.ElementAt(i))
	}
	return &IntArray{data: data}
}

func NewLongArrayFrom(a ArrayTag) *LongArray {
	data := make([]int64, a.Len())
	for i := range data {
		data[i] = a.ElementAt(i)
	}
	return &LongArray{data: data}
}

func (*ByteArray) Id() Id { return IdByteArray }
func (*IntArray) Id() Id { return IdIntArray }
func (*LongArray) Id() Id { return IdLongArray }

func (a *ByteArray) Len() int { return len(a.data) }
func (a *IntArray) Len() int { return len(a.data) }
func (a *LongArray) Len() int { return len(a.data) }

func (a *ByteArray) ElementAt(i int) int64 { return int64(a.data[i]) }
func (a *IntArray) ElementAt(i int) int64 { return int64(a.data[i]) }
func (a *LongArray) ElementAt(i int) int64 { return a.data[i] }

// Data returns the backing buffer directly; callers that mutate it are
// mutating the array in place (the same aliasing shallow copy relies on).
func (a *ByteArray) Data() []int8 { return a.data }
func (a *IntArray) Data() []int32 { return a.data }
func (a *LongArray) Data() []int64 { return a.data }

// Get returns the element at i as a host integer of the array's width.
func (a *ByteArray) Get(i int) int8 { return a.data[i] }
func (a *IntArray) Get(i int) int32 { return a.data[i] }
func (a *LongArray) Get(i int) int64 { return a.data[i] }

// Set assigns the element at i, wrapping an out-of-range value down to
// the array's element width.
func (a *ByteArray) Set(i int, v int64) { a.data[i] = int8(v) }
func (a *IntArray) Set(i int, v int64) { a.data[i] = int32(v) }
func (a *LongArray) Set(i int, v int64) { a.data[i] = v }

// Slice returns a contiguous sub-array sharing the same backing buffer as
// a — mutating the returned array's elements mutates a's.
func (a *ByteArray) Slice(lo, hi int) *ByteArray { return &ByteArray{data: a.data[lo:hi]} }
func (a *IntArray) Slice(lo, hi int) *IntArray { return &IntArray{data: a.data[lo:hi]} }
func (a *LongArray) Slice(lo, hi int) *LongArray { return &LongArray{data: a.data[lo:hi]} }

// Append grows the array in place.
func (a *ByteArray) Append(v int64) { a.data = append(a.data, int8(v)) }
func (a *IntArray) Append(v int64) { a.data = append(a.data, int32(v)) }
func (a *LongArray) Append(v int64) { a.data = append(a.data, v) }

// arrayOperand resolves the right-hand side of an element-wise arithmetic
// operation: a numeric scalar (tag or raw Go numeric) broadcasts one value
// across every element, while another array tag supplies one value per
// element and must match the receiver's length. Floating-point operands
// truncate toward zero, like every other integer-target coercion here.
func arrayOperand(n int, other any) (func(i int) int64, error) {
	if o, ok := other.(ArrayTag); ok {
		if o.Len() != n {
			return nil, &ConstructionError{Msg: fmt.Sprintf("array operand length %d does not match %d", o.Len(), n)}
		}
		return o.ElementAt, nil
	}
	iv, fv, isFloat, err := extractNumeric(other)
	if err != nil {
		return nil, err
	}
	v := iv
	if isFloat {
		v = int64(fv)
	}
	return func(int) int64 { return v }, nil
}

// Add returns a's elements plus other in a fresh slice of the array's
// width, each result wrapped two's-complement to that width; a itself is
// untouched. Like the scalar binary operators, the result is a plain Go
// value, not a re-wrapped Tag — use AddAssign for in-place "+=".
func (a *ByteArray) Add(other any) ([]int8, error) {
	at, err := arrayOperand(len(a.data), other)
	if err != nil {
		return nil, err
	}
	out := make([]int8, len(a.data))
	for i, v := range a.data {
		out[i] = int8(int64(v) + at(i))
	}
	return out, nil
}
func (a *IntArray) Add(other any) ([]int32, error) {
	at, err := arrayOperand(len(a.data), other)
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(a.data))
	for i, v := range a.data {
		out[i] = int32(int64(v) + at(i))
	}
	return out, nil
}
func (a *LongArray) Add(other any) ([]int64, error) {
	at, err := arrayOperand(len(a.data), other)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(a.data))
	for i, v := range a.data {
		out[i] = v + at(i)
	}
	return out, nil
}

// Sub is Add's subtraction counterpart.
func (a *ByteArray) Sub(other any) ([]int8, error) {
	at, err := arrayOperand(len(a.data), other)
	if err != nil {
		return nil, err
	}
	out := make([]int8, len(a.data))
	for i, v := range a.data {
		out[i] = int8(int64(v) - at(i))
	}
	return out, nil
}
func (a *IntArray) Sub(other any) ([]int32, error) {
	at, err := arrayOperand(len(a.data), other)
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(a.data))
	for i, v := range a.data {
		out[i] = int32(int64(v) - at(i))
	}
	return out, nil
}
func (a *LongArray) Sub(other any) ([]int64, error) {
	at, err := arrayOperand(len(a.data), other)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(a.data))
	for i, v := range a.data {
		out[i] = v - at(i)
	}
	return out, nil
}

// AddAssign adds other to every element in place, wrapping each result to
// the array's element width — adding 128 to a ByteArray element holding 0
// reads back as -128.
func (a *ByteArray) AddAssign(other any) error {
	at, err := arrayOperand(len(a.data), other)
	if err != nil {
		return err
	}
	for i := range a.data {
		a.data[i] = int8(int64(a.data[i]) + at(i))
	}
	return nil
}
func (a *IntArray) AddAssign(other any) error {
	at, err := arrayOperand(len(a.data), other)
	if err != nil {
		return err
	}
	for i := range a.data {
		a.data[i] = int32(int64(a.data[i]) + at(i))
	}
	return nil
}
func (a *LongArray) AddAssign(other any) error {
	at, err := arrayOperand(len(a.data), other)
	if err != nil {
		return err
	}
	for i := range a.data {
		a.data[i] += at(i)
	}
	return nil
}

// SubAssign is AddAssign's subtraction counterpart.
func (a *ByteArray) SubAssign(other any) error {
	at, err := arrayOperand(len(a.data), other)
	if err != nil {
		return err
	}
	for i := range a.data {
		a.data[i] = int8(int64(a.data[i]) - at(i))
	}
	return nil
}
func (a *IntArray) SubAssign(other any) error {
	at, err := arrayOperand(len(a.data), other)
	if err != nil {
		return err
	}
	for i := range a.data {
		a.data[i] = int32(int64(a.data[i]) - at(i))
	}
	return nil
}
func (a *LongArray) SubAssign(other any) error {
	at, err := arrayOperand(len(a.data), other)
	if err != nil {
		return err
	}
	for i := range a.data {
		a.data[i] -= at(i)
	}
	return nil
}

// Compare orders a against another array tag of any width
// lexicographically by element value, then by length. It returns -1, 0
// or 1.
func (a *ByteArray) Compare(other any) (int, error) { return compareArrays(a, other) }
func (a *IntArray) Compare(other any) (int, error) { return compareArrays(a, other) }
func (a *LongArray) Compare(other any) (int, error) { return compareArrays(a, other) }

func compareArrays(a ArrayTag, other any) (int, error) {
	o, ok := other.(ArrayTag)
	if !ok {
		return 0, errWrongKind("array operand", other)
	}
	n := a.Len()
	if o.Len() < n {
		n = o.Len()
	}
	for i := 0; i < n; i++ {
		av, ov := a.ElementAt(i), o.ElementAt(i)
		switch {
		case av < ov:
			return -1, nil
		case av > ov:
			return 1, nil
		}
	}
	switch {
	case a.Len() < o.Len():
		return -1, nil
	case a.Len() > o.Len():
		return 1, nil
	}
	return 0, nil
}

// Clone performs a deep copy: the returned array owns a freshly allocated
// backing buffer.
func (a *ByteArray) Clone() Tag {
	data := make([]int8, len(a.data))
	copy(data, a.data)
	return &ByteArray{data: data}
}
func (a *IntArray) Clone() Tag {
	data := make([]int32, len(a.data))
	copy(data, a.data)
	return &IntArray{data: data}
}
func (a *LongArray) Clone() Tag {
	data := make([]int64, len(a.data))
	copy(data, a.data)
	return &LongArray{data: data}
}

// ShallowClone returns a new array header sharing a's backing buffer.
func (a *ByteArray) ShallowClone() Tag { return &ByteArray{data: a.data} }
func (a *IntArray) ShallowClone() Tag { return &IntArray{data: a.data} }
func (a *LongArray) ShallowClone() Tag { return &LongArray{data: a.data} }

// Equal holds between two arrays of the identical concrete kind with
// matching contents, or between an array and a raw Go slice of its
// element type. Unlike the scalars, arrays of differing widths are never
// equal to one another.
func (a *ByteArray) Equal(other any) bool {
	switch o := other.(type) {
	case *ByteArray:
		return int8SliceEqual(a.data, o.data)
	case []int8:
		return int8SliceEqual(a.data, o)
	default:
		return false
	}
}
func (a *IntArray) Equal(other any) bool {
	switch o := other.(type) {
	case *IntArray:
		return int32SliceEqual(a.data, o.data)
	case []int32:
		return int32SliceEqual(a.data, o)
	default:
		return false
	}
}
func (a *LongArray) Equal(other any) bool {
	switch o := other.(type) {
	case *LongArray:
		return int64SliceEqual(a.data, o.data)
	case []int64:
		return int64SliceEqual(a.data, o)
	default:
		return false
	}
}

// StrictEqual requires other to be an array tag of the same concrete
// kind — a raw Go slice that Equal would accept is not strictly equal.
func (a *ByteArray) StrictEqual(other any) bool {
	o, ok := other.(*ByteArray)
	return ok && int8SliceEqual(a.data, o.data)
}
func (a *IntArray) StrictEqual(other any) bool {
	o, ok := other.(*IntArray)
	return ok && int32SliceEqual(a.data, o.data)
}
func (a *LongArray) StrictEqual(other any) bool {
	o, ok := other.(*LongArray)
	return ok && int64SliceEqual(a.data, o.data)
}

func int8SliceEqual(a, b []int8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func int32SliceEqual(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func int64SliceEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (a *ByteArray) String() string { return renderString(a) }
func (a *IntArray) String() string { return renderString(a) }
func (a *LongArray) String() string { return renderString(a) }
