package tensor

import (
	"fmt"
	"strings"

	"github.com/geo-mak/tensor/internal/alloc"
)

// Tensor is a dense multidimensional array of elements of type T.
//
// A tensor couples one metadata instance (dimensions, row-major strides,
// element count) with one exclusively owned buffer holding exactly
// size initialized elements in row-major order. Rank is dynamic: a
// rank-0 tensor is a scalar, rank 1 a vector, rank 2 a matrix.
//
// Tensors are not internally synchronized. Two distinct tensors may be
// used concurrently from different goroutines since each owns its
// buffer; sharing one tensor across goroutines requires external
// coordination by the caller.
type Tensor[T Num] struct {
	meta metaData
	data alloc.Buffer
}

// Shape returns the tensor's dimensions.
func (t *Tensor[T]) Shape() Shape {
	return t.meta.dims
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return len(t.meta.dims)
}

// Size returns the total number of elements.
//
// Example:
//
//	t := tensor.Full(tensor.Shape{2, 3, 4}, 0.0)
//	t.Size() // 24
func (t *Tensor[T]) Size() int {
	return t.meta.size
}

// DimSize returns the number of elements along the given axis.
// The second result is false when the axis index is not below the rank;
// this is the only soft query in the access surface.
func (t *Tensor[T]) DimSize(axis int) (int, bool) {
	if axis < 0 || axis >= len(t.meta.dims) {
		return 0, false
	}
	return t.meta.dims[axis], true
}

// DType returns the runtime data type of the elements.
func (t *Tensor[T]) DType() DataType {
	return dataTypeOf[T]()
}

// At returns the element at the given coordinate tuple.
// It panics if the number of indices does not match the rank, or if any
// index is out of bounds.
//
// Example:
//
//	t := tensor.FromSlice(tensor.Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})
//	t.At(1, 2) // 6
func (t *Tensor[T]) At(index ...int) T {
	return alloc.Load[T](&t.data, t.meta.offset(index))
}

// Set writes value at the given coordinate tuple.
// It panics if the number of indices does not match the rank, or if any
// index is out of bounds.
func (t *Tensor[T]) Set(value T, index ...int) {
	alloc.Store(&t.data, t.meta.offset(index), value)
}

// Data returns the elements as a flat slice in row-major order, sharing
// the tensor's memory. Mutations through the slice mutate the tensor.
func (t *Tensor[T]) Data() []T {
	return alloc.View[T](&t.data, t.meta.size)
}

// Clone creates a deep copy with an independently allocated buffer,
// copying element by element.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return &Tensor[T]{
		meta: t.meta.clone(),
		data: alloc.MakeClone[T](&t.data, t.meta.size),
	}
}

// Copy creates a deep copy with an independently allocated buffer,
// duplicating the storage bitwise in one pass.
func (t *Tensor[T]) Copy() *Tensor[T] {
	return &Tensor[T]{
		meta: t.meta.clone(),
		data: t.data.MakeCopy(),
	}
}

// Equal reports whether two tensors have the same shape and the same
// elements. The comparison short-circuits on element count, then on
// dimensions, and only walks the data of genuine candidates. Elements
// compare with the type's own equality, so NaN is unequal to itself.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if !t.meta.fullEq(&other.meta) {
		return false
	}
	return alloc.CmpEq[T](&t.data, &other.data, t.meta.size)
}

// Release frees the tensor's buffer. This is the single teardown path:
// after Release every element access panics. Releasing is optional (the
// garbage collector reclaims unreachable tensors) but lets callers drop
// large buffers eagerly. Releasing twice panics.
func (t *Tensor[T]) Release() {
	t.data.Free()
}

// String formats the tensor as its shape followed by one line per
// element in row-major order: "ord: [index] -> value".
func (t *Tensor[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Shape: %v\n", []int(t.meta.dims))
	sb.WriteString("Data:\n")

	index := make([]int, len(t.meta.dims))
	data := t.Data()
	for ord, value := range data {
		fmt.Fprintf(&sb, "%d: %v -> %v\n", ord, index, value)
		// Advance the coordinate tuple, rightmost axis fastest.
		for i := len(index) - 1; i >= 0; i-- {
			index[i]++
			if index[i] < t.meta.dims[i] {
				break
			}
			index[i] = 0
		}
	}
	return sb.String()
}
