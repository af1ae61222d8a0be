package nbt

// The six scalar tag kinds. Each is a defined type over its native Go
// width, so construction from a too-wide value wraps exactly the way a Go
// numeric conversion does (two's-complement truncation for integers, the
// usual IEEE-754 narrowing for Double -> Float). That makes wrap-on-
// construct and wrap-on-arithmetic automatic instead of something the
// codec has to simulate.
type (
	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
)

// NewByte constructs a Byte from any numeric Go value, truncating toward
// zero exactly as int8(v) would.
func NewByte[T Number](v T) Byte { return Byte(int8(v)) }

// NewShort constructs a Short from any numeric Go value.
func NewShort[T Number](v T) Short { return Short(int16(v)) }

// NewInt constructs an Int from any numeric Go value.
func NewInt[T Number](v T) Int { return Int(int32(v)) }

// NewLong constructs a Long from any numeric Go value.
func NewLong[T Number](v T) Long { return Long(int64(v)) }

// NewFloat constructs a Float from any numeric Go value.
func NewFloat[T Number](v T) Float { return Float(float32(v)) }

// NewDouble constructs a Double from any numeric Go value.
func NewDouble[T Number](v T) Double { return Double(float64(v)) }

func (Byte) Id() Id { return IdByte }
func (Short) Id() Id { return IdShort }
func (Int) Id() Id { return IdInt }
func (Long) Id() Id { return IdLong }
func (Float) Id() Id { return IdFloat }
func (Double) Id() Id { return IdDouble }

// Value returns the underlying Go primitive.
func (b Byte) Value() int8 { return int8(b) }
func (s Short) Value() int16 { return int16(s) }
func (i Int) Value() int32 { return int32(i) }
func (l Long) Value() int64 { return int64(l) }
func (f Float) Value() float32 { return float32(f) }
func (d Double) Value() float64 { return float64(d) }

// Clone and ShallowClone coincide for scalars: there is no structure to
// share, so both just rewrap the same primitive in a fresh value (which,
// being a value type, is already independent from the receiver).
func (b Byte) Clone() Tag { return b }
func (b Byte) ShallowClone() Tag { return b }
func (s Short) Clone() Tag { return s }
func (s Short) ShallowClone() Tag { return s }
func (i Int) Clone() Tag { return i }
func (i Int) ShallowClone() Tag { return i }
func (l Long) Clone() Tag { return l }
func (l Long) ShallowClone() Tag { return l }
func (f Float) Clone() Tag { return f }
func (f Float) ShallowClone() Tag { return f }
func (d Double) Clone() Tag { return d }
func (d Double) ShallowClone() Tag { return d }

// Equal compares payload only: it holds between any two scalar tags, or a
// scalar tag and a raw Go numeric, whose numeric values match.
func (b Byte) Equal(other any) bool { return numericEqual(int64(b), 0, false, other) }
func (s Short) Equal(other any) bool { return numericEqual(int64(s), 0, false, other) }
func (i Int) Equal(other any) bool { return numericEqual(int64(i), 0, false, other) }
func (l Long) Equal(other any) bool { return numericEqual(int64(l), 0, false, other) }
func (f Float) Equal(other any) bool { return numericEqual(0, float64(f), true, other) }
func (d Double) Equal(other any) bool { return numericEqual(0, float64(d), true, other) }

func numericEqual(selfInt int64, selfFloat float64, selfIsFloat bool, other any) bool {
	oInt, oFloat, oIsFloat, err := extractNumeric(other)
	if err != nil {
		return false
	}
	return widen(selfInt, selfFloat, selfIsFloat) == widen(oInt, oFloat, oIsFloat)
}

// StrictEqual additionally requires the same concrete variant.
func (b Byte) StrictEqual(other any) bool {
	o, ok := other.(Byte)
	return ok && b == o
}
func (s Short) StrictEqual(other any) bool {
	o, ok := other.(Short)
	return ok && s == o
}
func (i Int) StrictEqual(other any) bool {
	o, ok := other.(Int)
	return ok && i == o
}
func (l Long) StrictEqual(other any) bool {
	o, ok := other.(Long)
	return ok && l == o
}
func (f Float) StrictEqual(other any) bool {
	o, ok := other.(Float)
	return ok && f == o
}
func (d Double) StrictEqual(other any) bool {
	o, ok := other.(Double)
	return ok && d == o
}

// Add performs binary arithmetic per the scalar contract: the result is a
// plain Go primitive (int64 if both operands are integral, float64 if
// either is floating point), not a re-wrapped Tag. Use AddAssign to get
// in-place, wrapped, "+=" behaviour.
func (b Byte) Add(other any) (any, error) {
	return binaryArith(int64(b), 0, false, other, addOp, addIntOp)
}
func (s Short) Add(other any) (any, error) {
	return binaryArith(int64(s), 0, false, other, addOp, addIntOp)
}
func (i Int) Add(other any) (any, error) {
	return binaryArith(int64(i), 0, false, other, addOp, addIntOp)
}
func (l Long) Add(other any) (any, error) {
	return binaryArith(int64(l), 0, false, other, addOp, addIntOp)
}
func (f Float) Add(other any) (any, error) {
	return binaryArith(0, float64(f), true, other, addOp, addIntOp)
}
func (d Double) Add(other any) (any, error) {
	return binaryArith(0, float64(d), true, other, addOp, addIntOp)
}

func (b Byte) Sub(other any) (any, error) {
	return binaryArith(int64(b), 0, false, other, subOp, subIntOp)
}
func (s Short) Sub(other any) (any, error) {
	return binaryArith(int64(s), 0, false, other, subOp, subIntOp)
}
func (i Int) Sub(other any) (any, error) {
	return binaryArith(int64(i), 0, false, other, subOp, subIntOp)
}
func (l Long) Sub(other any) (any, error) {
	return binaryArith(int64(l), 0, false, other, subOp, subIntOp)
}
func (f Float) Sub(other any) (any, error) {
	return binaryArith(0, float64(f), true, other, subOp, subIntOp)
}
func (d Double) Sub(other any) (any, error) {
	return binaryArith(0, float64(d), true, other, subOp, subIntOp)
}

func (b Byte) Mul(other any) (any, error) {
	return binaryArith(int64(b), 0, false, other, mulOp, mulIntOp)
}
func (s Short) Mul(other any) (any, error) {
	return binaryArith(int64(s), 0, false, other, mulOp, mulIntOp)
}
func (i Int) Mul(other any) (any, error) {
	return binaryArith(int64(i), 0, false, other, mulOp, mulIntOp)
}
func (l Long) Mul(other any) (any, error) {
	return binaryArith(int64(l), 0, false, other, mulOp, mulIntOp)
}
func (f Float) Mul(other any) (any, error) {
	return binaryArith(0, float64(f), true, other, mulOp, mulIntOp)
}
func (d Double) Mul(other any) (any, error) {
	return binaryArith(0, float64(d), true, other, mulOp, mulIntOp)
}

// AddAssign replaces *b with b+other, wrapped (two's-complement masked)
// back to the receiver's own width — in-place "+=" overflow behaviour,
// so adding 128 to Byte(0) reads back as -128.
func (b *Byte) AddAssign(other any) error {
	r, err := (*b).Add(other)
	if err != nil {
		return err
	}
	v, err := wrapToInt64(r)
	if err != nil {
		return err
	}
	*b = Byte(int8(v))
	return nil
}
func (s *Short) AddAssign(other any) error {
	r, err := (*s).Add(other)
	if err != nil {
		return err
	}
	v, err := wrapToInt64(r)
	if err != nil {
		return err
	}
	*s = Short(int16(v))
	return nil
}
func (i *Int) AddAssign(other any) error {
	r, err := (*i).Add(other)
	if err != nil {
		return err
	}
	v, err := wrapToInt64(r)
	if err != nil {
		return err
	}
	*i = Int(int32(v))
	return nil
}
func (l *Long) AddAssign(other any) error {
	r, err := (*l).Add(other)
	if err != nil {
		return err
	}
	v, err := wrapToInt64(r)
	if err != nil {
		return err
	}
	*l = Long(v)
	return nil
}
func (f *Float) AddAssign(other any) error {
	r, err := (*f).Add(other)
	if err != nil {
		return err
	}
	v, err := wrapToFloat64(r)
	if err != nil {
		return err
	}
	*f = Float(float32(v))
	return nil
}
func (d *Double) AddAssign(other any) error {
	r, err := (*d).Add(other)
	if err != nil {
		return err
	}
	v, err := wrapToFloat64(r)
	if err != nil {
		return err
	}
	*d = Double(v)
	return nil
}

// SubAssign is AddAssign's subtraction counterpart.
func (b *Byte) SubAssign(other any) error {
	r, err := (*b).Sub(other)
	if err != nil {
		return err
	}
	v, err := wrapToInt64(r)
	if err != nil {
		return err
	}
	*b = Byte(int8(v))
	return nil
}
func (s *Short) SubAssign(other any) error {
	r, err := (*s).Sub(other)
	if err != nil {
		return err
	}
	v, err := wrapToInt64(r)
	if err != nil {
		return err
	}
	*s = Short(int16(v))
	return nil
}
func (i *Int) SubAssign(other any) error {
	r, err := (*i).Sub(other)
	if err != nil {
		return err
	}
	v, err := wrapToInt64(r)
	if err != nil {
		return err
	}
	*i = Int(int32(v))
	return nil
}
func (l *Long) SubAssign(other any) error {
	r, err := (*l).Sub(other)
	if err != nil {
		return err
	}
	v, err := wrapToInt64(r)
	if err != nil {
		return err
	}
	*l = Long(v)
	return nil
}
func (f *Float) SubAssign(other any) error {
	r, err := (*f).Sub(other)
	if err != nil {
		return err
	}
	v, err := wrapToFloat64(r)
	if err != nil {
		return err
	}
	*f = Float(float32(v))
	return nil
}
func (d *Double) SubAssign(other any) error {
	r, err := (*d).Sub(other)
	if err != nil {
		return err
	}
	v, err := wrapToFloat64(r)
	if err != nil {
		return err
	}
	*d = Double(v)
	return nil
}

// Compare orders self against other by numeric value, so cross-variant
// comparisons are permitted. It returns -1, 0 or 1.
func (b Byte) Compare(other any) (int, error) {
	return compareNumeric(int64(b), 0, false, other)
}
func (s Short) Compare(other any) (int, error) {
	return compareNumeric(int64(s), 0, false, other)
}
func (i Int) Compare(other any) (int, error) {
	return compareNumeric(int64(i), 0, false, other)
}
func (l Long) Compare(other any) (int, error) {
	return compareNumeric(int64(l), 0, false, other)
}
func (f Float) Compare(other any) (int, error) {
	return compareNumeric(0, float64(f), true, other)
}
func (d Double) Compare(other any) (int, error) {
	return compareNumeric(0, float64(d), true, other)
}

// Hash digests the (tag id, payload) pair; scalars and String are the
// only tags that hash.
func (b Byte) Hash() (uint64, error) { return hashScalar(IdByte, int64(b)) }
func (s Short) Hash() (uint64, error) { return hashScalar(IdShort, int64(s)) }
func (i Int) Hash() (uint64, error) { return hashScalar(IdInt, int64(i)) }
func (l Long) Hash() (uint64, error) { return hashScalar(IdLong, int64(l)) }
func (f Float) Hash() (uint64, error) { return hashScalarFloat(IdFloat, float64(f)) }
func (d Double) Hash() (uint64, error) { return hashScalarFloat(IdDouble, float64(d)) }
