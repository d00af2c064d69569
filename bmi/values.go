package bmi

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Element is the set of Go types backing the catalog types.
type Element interface {
	float64 | float32 | int32 | int16 | int64
}

// Encode returns vals as native-order bytes, ready to pass to SetValue.
func Encode[T Element](vals []T) []byte {
	b, err := binary.Append(make([]byte, 0, binary.Size(vals)), binary.NativeEndian, vals)
	if err != nil {
		panic(fmt.Sprintf("Encode: fixed-size element rejected: %v", err))
	}
	return b
}

// Decode interprets native-order bytes as a slice of T.
// len(b) must be a multiple of the element size.
func Decode[T Element](b []byte) ([]T, error) {
	var zero T
	size := binary.Size(zero)
	if len(b)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of element size %d", ErrIllegalArgument, len(b), size)
	}
	out := make([]T, len(b)/size)
	if _, err := binary.Decode(b, binary.NativeEndian, out); err != nil {
		return nil, fmt.Errorf("decoding %d bytes: %w", len(b), err)
	}
	return out, nil
}

// EncodeFloat64s converts vals to the element type t and encodes them.
// Integer types reject values with a fractional part or outside their range.
func EncodeFloat64s(t Type, vals []float64) ([]byte, error) {
	switch t {
	case TypeDouble:
		return Encode(vals), nil
	case TypeFloat:
		out := make([]float32, len(vals))
		for i, v := range vals {
			out[i] = float32(v)
		}
		return Encode(out), nil
	case TypeInt:
		out := make([]int32, len(vals))
		for i, v := range vals {
			if err := checkIntegral(v, math.MinInt32, math.MaxInt32); err != nil {
				return nil, fmt.Errorf("value %d: %w", i, err)
			}
			out[i] = int32(v)
		}
		return Encode(out), nil
	case TypeShort:
		out := make([]int16, len(vals))
		for i, v := range vals {
			if err := checkIntegral(v, math.MinInt16, math.MaxInt16); err != nil {
				return nil, fmt.Errorf("value %d: %w", i, err)
			}
			out[i] = int16(v)
		}
		return Encode(out), nil
	case TypeLong:
		out := make([]int64, len(vals))
		for i, v := range vals {
			if err := checkIntegral(v, math.MinInt64, math.MaxInt64); err != nil {
				return nil, fmt.Errorf("value %d: %w", i, err)
			}
			out[i] = int64(v)
		}
		return Encode(out), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidType, string(t))
}

// DecodeFloat64s decodes b as elements of type t and widens them to float64.
func DecodeFloat64s(t Type, b []byte) ([]float64, error) {
	switch t {
	case TypeDouble:
		return Decode[float64](b)
	case TypeFloat:
		return widen(Decode[float32](b))
	case TypeInt:
		return widen(Decode[int32](b))
	case TypeShort:
		return widen(Decode[int16](b))
	case TypeLong:
		return widen(Decode[int64](b))
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidType, string(t))
}

func widen[T Element](vals []T, err error) ([]float64, error) {
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}
	return out, nil
}

func checkIntegral(v, lo, hi float64) error {
	if v != math.Trunc(v) || v < lo || v > hi {
		return fmt.Errorf("%w: %v is not representable as an integer in [%v, %v]", ErrIllegalArgument, v, lo, hi)
	}
	return nil
}
