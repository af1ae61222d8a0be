package nbt

import "fmt"

// Number is satisfied by every Go primitive numeric kind and lets the
// scalar constructors (NewByte, NewShort, ...) accept any of them,
// truncating toward zero for integer targets exactly as an explicit Go
// conversion would. Non-numeric inputs simply don't type-check.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// extractNumeric pulls a numeric value out of a dynamically typed operand
// (a scalar Tag or a Go numeric primitive) for use in binary arithmetic and
// comparisons. isFloat tells the caller which of intVal/floatVal is valid.
func extractNumeric(v any) (intVal int64, floatVal float64, isFloat bool, err error) {
	switch t := v.(type) {
	case Byte:
		return int64(t), 0, false, nil
	case Short:
		return int64(t), 0, false, nil
	case Int:
		return int64(t), 0, false, nil
	case Long:
		return int64(t), 0, false, nil
	case Float:
		return 0, float64(t), true, nil
	case Double:
		return 0, float64(t), true, nil
	case int:
		return int64(t), 0, false, nil
	case int8:
		return int64(t), 0, false, nil
	case int16:
		return int64(t), 0, false, nil
	case int32:
		return int64(t), 0, false, nil
	case int64:
		return t, 0, false, nil
	case uint:
		return int64(t), 0, false, nil
	case uint8:
		return int64(t), 0, false, nil
	case uint16:
		return int64(t), 0, false, nil
	case uint32:
		return int64(t), 0, false, nil
	case uint64:
		return int64(t), 0, false, nil
	case float32:
		return 0, float64(t), true, nil
	case float64:
		return 0, t, true, nil
	default:
		return 0, 0, false, errWrongKind("numeric operand", v)
	}
}

// widen converts whichever of intVal/floatVal is live to a float64.
func widen(intVal int64, floatVal float64, isFloat bool) float64 {
	if isFloat {
		return floatVal
	}
	return float64(intVal)
}

// binaryArith implements the "tag + primitive -> plain primitive" rule
// from the scalar construction/arithmetic contract: integral if both
// operands are integral, float64 otherwise.
func binaryArith(selfInt int64, selfFloat float64, selfIsFloat bool, other any, op func(a, b float64) float64, intOp func(a, b int64) int64) (any, error) {
	oInt, oFloat, oIsFloat, err := extractNumeric(other)
	if err != nil {
		return nil, err
	}
	if selfIsFloat || oIsFloat {
		return op(widen(selfInt, selfFloat, selfIsFloat), widen(oInt, oFloat, oIsFloat)), nil
	}
	return intOp(selfInt, oInt), nil
}

// compareNumeric orders self against other by numeric value, regardless
// of which scalar variant either side is.
func compareNumeric(selfInt int64, selfFloat float64, selfIsFloat bool, other any) (int, error) {
	oInt, oFloat, oIsFloat, err := extractNumeric(other)
	if err != nil {
		return 0, err
	}
	a := widen(selfInt, selfFloat, selfIsFloat)
	b := widen(oInt, oFloat, oIsFloat)
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}

func addOp(a, b float64) float64 { return a + b }
func subOp(a, b float64) float64 { return a - b }
func mulOp(a, b float64) float64 { return a * b }

func addIntOp(a, b int64) int64 { return a + b }
func subIntOp(a, b int64) int64 { return a - b }
func mulIntOp(a, b int64) int64 { return a * b }

// wrapToInt64 truncates a binaryArith result toward zero for use by an
// in-place (AddAssign-style) operator, which always re-wraps into the
// receiver's own integer width regardless of whether the other operand
// was floating point.
func wrapToInt64(v any) (int64, error) {
	switch t := v.(type) {
	case int64:
		return t, nil
	case float64:
		return int64(t), nil
	default:
		return 0, fmt.Errorf("nbt: unexpected arithmetic result type %T", v)
	}
}

// wrapToFloat64 is the float-tag counterpart of wrapToInt64.
func wrapToFloat64(v any) (float64, error) {
	switch t := v.(type) {
	case int64:
		return float64(t), nil
	case float64:
		return t, nil
	default:
		return 0, fmt.Errorf("nbt: unexpected arithmetic result type %T", v)
	}
}
