package tensor

import (
	"errors"
	"fmt"
	"math"

	"github.com/x448/float16"

	"github.com/geo-mak/tensor/internal/alloc"
)

// Casting failures. These are the only recoverable errors in the
// library; every other failure is a panic. Match with errors.Is.
var (
	// ErrOverflow reports a value outside the target type's
	// representable range.
	ErrOverflow = errors.New("cast: value overflows target type")

	// ErrPrecisionLoss reports a value the target type cannot represent
	// exactly, such as a nonzero fractional part truncated by an
	// integer target.
	ErrPrecisionLoss = errors.New("cast: value cannot be represented exactly in target type")
)

// Cast converts every element of t to the element type U, preserving the
// shape, and returns the result as a new tensor. The source tensor is
// not consumed or modified.
//
// Conversion rules per (source, target) pair:
//   - integer to integer: fails with ErrOverflow when the value is
//     outside the target's range, including negative values cast to
//     unsigned targets; widenings that preserve the value always succeed.
//   - integer to float: always succeeds, rounding to the nearest
//     representable value.
//   - float to integer: fails with ErrOverflow when outside the target's
//     range, then with ErrPrecisionLoss when the value has a nonzero
//     fractional part.
//   - float64 to float32: always succeeds, rounding to the nearest
//     representable value. float32 to float64 is exact.
//
// Conversion dispatches on the underlying representation, so a derived
// type such as float16.Float16 converts as its uint16 bit pattern, not
// as a half-precision value; use CastToFloat16 and CastFromFloat16 for
// half-precision value conversions.
//
// The operation is all-or-nothing: if any element fails, the partially
// built result is released before the error returns and no partial state
// is observable.
//
// Example:
//
//	src := tensor.Full(tensor.Shape{2, 2}, uint16(256))
//	_, err := tensor.Cast[uint8](src)
//	errors.Is(err, tensor.ErrOverflow) // true
func Cast[U Num, T Num](t *Tensor[T]) (*Tensor[U], error) {
	src := dataTypeOf[T]()
	dst := dataTypeOf[U]()

	out := alloc.NewAllocate[U](t.meta.size)
	view := alloc.View[U](&out, t.meta.size)

	for i, v := range t.Data() {
		u, err := castValue[U](v, src, dst)
		if err != nil {
			out.Free()
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		view[i] = u
	}

	return &Tensor[U]{meta: t.meta.clone(), data: out}, nil
}

// castValue converts one value, dispatching on the source type family.
// Sources are canonicalized to int64, uint64, or float64; targets are
// range-checked through the DataType tables.
func castValue[U Num, T Num](v T, src, dst DataType) (U, error) {
	switch {
	case src.IsFloat():
		return castFromFloat[U](float64(v), dst)
	case src.IsUnsigned():
		return castFromUint[U](uint64(v), dst)
	default:
		return castFromInt[U](int64(v), dst)
	}
}

func castFromFloat[U Num](f float64, dst DataType) (U, error) {
	if dst.IsFloat() {
		// Narrowing to float32 rounds to the nearest value.
		return U(f), nil
	}
	if dst.IsUnsigned() {
		if f < 0 || floatAboveMaxUint(f, dst) {
			return 0, ErrOverflow
		}
	} else {
		if f < float64(dst.minInt()) || floatAboveMaxInt(f, dst) {
			return 0, ErrOverflow
		}
	}
	if f != math.Trunc(f) {
		return 0, ErrPrecisionLoss
	}
	return U(f), nil
}

// float64 cannot represent MaxInt64 or MaxUint64 exactly: the converted
// limits round up to 2^63 and 2^64, so the 64-bit targets take an
// exclusive bound on the rounded limit. The smaller limits are exact and
// the signed lower bounds are negated powers of two, also exact.
func floatAboveMaxInt(f float64, dst DataType) bool {
	if dst == Int64 {
		return f >= 0x1p63
	}
	return f > float64(dst.maxInt())
}

func floatAboveMaxUint(f float64, dst DataType) bool {
	if dst == Uint64 {
		return f >= 0x1p64
	}
	return f > float64(dst.maxUint())
}

func castFromUint[U Num](x uint64, dst DataType) (U, error) {
	switch {
	case dst.IsFloat():
		return U(x), nil
	case dst.IsUnsigned():
		if x > dst.maxUint() {
			return 0, ErrOverflow
		}
	default:
		if x > uint64(dst.maxInt()) {
			return 0, ErrOverflow
		}
	}
	return U(x), nil
}

func castFromInt[U Num](x int64, dst DataType) (U, error) {
	switch {
	case dst.IsFloat():
		return U(x), nil
	case dst.IsUnsigned():
		if x < 0 || uint64(x) > dst.maxUint() {
			return 0, ErrOverflow
		}
	default:
		if x < dst.minInt() || x > dst.maxInt() {
			return 0, ErrOverflow
		}
	}
	return U(x), nil
}

// CastToFloat16 converts a float32 tensor to the IEEE 754 half-precision
// storage format. Each value must convert exactly: values above the
// half-precision range fail with ErrOverflow, values that would round
// fail with ErrPrecisionLoss. Float16 is a storage format only; no
// arithmetic is defined on the result.
func CastToFloat16(t *Tensor[float32]) (*Tensor[float16.Float16], error) {
	out := alloc.NewAllocate[float16.Float16](t.meta.size)
	view := alloc.View[float16.Float16](&out, t.meta.size)

	for i, v := range t.Data() {
		switch float16.PrecisionFromfloat32(v) {
		case float16.PrecisionExact:
			view[i] = float16.Fromfloat32(v)
		case float16.PrecisionOverflow:
			out.Free()
			return nil, fmt.Errorf("element %d: %w", i, ErrOverflow)
		default:
			out.Free()
			return nil, fmt.Errorf("element %d: %w", i, ErrPrecisionLoss)
		}
	}

	return &Tensor[float16.Float16]{meta: t.meta.clone(), data: out}, nil
}

// CastFromFloat16 converts a half-precision tensor back to float32.
// Every half-precision value is exactly representable in float32, so the
// conversion cannot fail.
func CastFromFloat16(t *Tensor[float16.Float16]) *Tensor[float32] {
	out := alloc.NewAllocate[float32](t.meta.size)
	view := alloc.View[float32](&out, t.meta.size)

	for i, v := range t.Data() {
		view[i] = v.Float32()
	}

	return &Tensor[float32]{meta: t.meta.clone(), data: out}
}
