package tensor

import (
	"fmt"

	"github.com/geo-mak/tensor/internal/alloc"
)

// Element-wise arithmetic. Every operation comes in an allocating form,
// which writes into a freshly allocated result and leaves its inputs
// unmodified, and an in-place form, which overwrites the receiver's
// buffer. Tensor-tensor forms require identical shapes and panic on a
// mismatch: differing shapes indicate a bug at the call site, never a
// runtime condition. Scalar forms combine every element with one value.

func assertSameShape[T Num](a, b *Tensor[T]) {
	if !a.meta.shapeEq(&b.meta) {
		panic(fmt.Sprintf("shape mismatch: %v vs %v", a.meta.dims, b.meta.dims))
	}
}

// newResult allocates an uninitialized result tensor with a's geometry
// and returns it together with its flat view.
func newResult[T Num](a *Tensor[T]) (*Tensor[T], []T) {
	out := &Tensor[T]{
		meta: a.meta.clone(),
		data: alloc.NewAllocate[T](a.meta.size),
	}
	return out, out.Data()
}

// assertNoZeroDivisor enforces the integer division policy: dividing by
// an exact zero panics for integer element types, while float types
// defer to IEEE-754 semantics (Inf/NaN) and are never checked.
func assertNoZeroDivisor[T Num](divisors []T) {
	if dataTypeOf[T]().IsFloat() {
		return
	}
	for _, d := range divisors {
		if d == 0 {
			panic("integer division by zero")
		}
	}
}

// assertSigned enforces that negation is only available for signed
// element types, as two's complement wraparound on unsigned values is
// never what the caller meant.
func assertSigned[T Num]() {
	if dt := dataTypeOf[T](); dt.IsUnsigned() {
		panic(fmt.Sprintf("negation is not defined for %s elements", dt))
	}
}

// Add performs element-wise addition and returns the result as a new
// tensor. It panics if the shapes differ.
//
// Example:
//
//	a := tensor.Full(tensor.Shape{2, 3}, 1)
//	b := tensor.Full(tensor.Shape{2, 3}, 2)
//	c := a.Add(b)
//	c.At(1, 2) // 3
func (t *Tensor[T]) Add(other *Tensor[T]) *Tensor[T] {
	assertSameShape(t, other)
	a, b := t.Data(), other.Data()
	out, r := newResult(t)
	for i := range a {
		r[i] = a[i] + b[i]
	}
	return out
}

// AddInPlace performs element-wise addition, overwriting the receiver.
// It panics if the shapes differ.
func (t *Tensor[T]) AddInPlace(other *Tensor[T]) {
	assertSameShape(t, other)
	a, b := t.Data(), other.Data()
	for i := range a {
		a[i] += b[i]
	}
}

// AddScalar adds value to every element and returns the result as a new
// tensor.
func (t *Tensor[T]) AddScalar(value T) *Tensor[T] {
	a := t.Data()
	out, r := newResult(t)
	for i := range a {
		r[i] = a[i] + value
	}
	return out
}

// AddScalarInPlace adds value to every element of the receiver.
func (t *Tensor[T]) AddScalarInPlace(value T) {
	a := t.Data()
	for i := range a {
		a[i] += value
	}
}

// Sub performs element-wise subtraction and returns the result as a new
// tensor. It panics if the shapes differ.
func (t *Tensor[T]) Sub(other *Tensor[T]) *Tensor[T] {
	assertSameShape(t, other)
	a, b := t.Data(), other.Data()
	out, r := newResult(t)
	for i := range a {
		r[i] = a[i] - b[i]
	}
	return out
}

// SubInPlace performs element-wise subtraction, overwriting the receiver.
// It panics if the shapes differ.
func (t *Tensor[T]) SubInPlace(other *Tensor[T]) {
	assertSameShape(t, other)
	a, b := t.Data(), other.Data()
	for i := range a {
		a[i] -= b[i]
	}
}

// SubScalar subtracts value from every element and returns the result as
// a new tensor.
func (t *Tensor[T]) SubScalar(value T) *Tensor[T] {
	a := t.Data()
	out, r := newResult(t)
	for i := range a {
		r[i] = a[i] - value
	}
	return out
}

// SubScalarInPlace subtracts value from every element of the receiver.
func (t *Tensor[T]) SubScalarInPlace(value T) {
	a := t.Data()
	for i := range a {
		a[i] -= value
	}
}

// Mul performs element-wise multiplication and returns the result as a
// new tensor. It panics if the shapes differ.
func (t *Tensor[T]) Mul(other *Tensor[T]) *Tensor[T] {
	assertSameShape(t, other)
	a, b := t.Data(), other.Data()
	out, r := newResult(t)
	for i := range a {
		r[i] = a[i] * b[i]
	}
	return out
}

// MulInPlace performs element-wise multiplication, overwriting the
// receiver. It panics if the shapes differ.
func (t *Tensor[T]) MulInPlace(other *Tensor[T]) {
	assertSameShape(t, other)
	a, b := t.Data(), other.Data()
	for i := range a {
		a[i] *= b[i]
	}
}

// MulScalar multiplies every element by value and returns the result as
// a new tensor.
func (t *Tensor[T]) MulScalar(value T) *Tensor[T] {
	a := t.Data()
	out, r := newResult(t)
	for i := range a {
		r[i] = a[i] * value
	}
	return out
}

// MulScalarInPlace multiplies every element of the receiver by value.
func (t *Tensor[T]) MulScalarInPlace(value T) {
	a := t.Data()
	for i := range a {
		a[i] *= value
	}
}

// Div performs element-wise division and returns the result as a new
// tensor. It panics if the shapes differ. For integer element types it
// panics when any divisor is zero; float element types follow IEEE-754
// and produce Inf or NaN instead.
func (t *Tensor[T]) Div(other *Tensor[T]) *Tensor[T] {
	assertSameShape(t, other)
	a, b := t.Data(), other.Data()
	assertNoZeroDivisor(b)
	out, r := newResult(t)
	for i := range a {
		r[i] = a[i] / b[i]
	}
	return out
}

// DivInPlace performs element-wise division, overwriting the receiver.
// It panics if the shapes differ, and on zero divisors for integer
// element types.
func (t *Tensor[T]) DivInPlace(other *Tensor[T]) {
	assertSameShape(t, other)
	a, b := t.Data(), other.Data()
	assertNoZeroDivisor(b)
	for i := range a {
		a[i] /= b[i]
	}
}

// DivScalar divides every element by value and returns the result as a
// new tensor. It panics on a zero value for integer element types.
func (t *Tensor[T]) DivScalar(value T) *Tensor[T] {
	assertNoZeroDivisor([]T{value})
	a := t.Data()
	out, r := newResult(t)
	for i := range a {
		r[i] = a[i] / value
	}
	return out
}

// DivScalarInPlace divides every element of the receiver by value.
// It panics on a zero value for integer element types.
func (t *Tensor[T]) DivScalarInPlace(value T) {
	assertNoZeroDivisor([]T{value})
	a := t.Data()
	for i := range a {
		a[i] /= value
	}
}

// Neg negates every element and returns the result as a new tensor.
// It panics for unsigned element types.
func (t *Tensor[T]) Neg() *Tensor[T] {
	assertSigned[T]()
	a := t.Data()
	out, r := newResult(t)
	for i := range a {
		r[i] = -a[i]
	}
	return out
}

// NegInPlace negates every element of the receiver.
// It panics for unsigned element types.
func (t *Tensor[T]) NegInPlace() {
	assertSigned[T]()
	a := t.Data()
	for i := range a {
		a[i] = -a[i]
	}
}
