package tensor

import "github.com/geo-mak/tensor/internal/alloc"

// Full creates a tensor with the given shape, every element set to value.
// It panics if any dimension is zero or negative.
//
// Example:
//
//	t := tensor.Full(tensor.Shape{2, 3}, int32(7))
//	t.At(1, 2) // 7
func Full[T Num](shape Shape, value T) *Tensor[T] {
	meta := newMetaData(shape)
	data := alloc.NewAllocate[T](meta.size)
	alloc.Memset(&data, meta.size, value)
	return &Tensor[T]{meta: meta, data: data}
}

// Zeros creates a tensor with the given shape, every element set to the
// zero value of T. It panics if any dimension is zero or negative.
func Zeros[T Num](shape Shape) *Tensor[T] {
	meta := newMetaData(shape)
	// A fresh allocation is already zeroed.
	return &Tensor[T]{meta: meta, data: alloc.NewAllocate[T](meta.size)}
}

// FromSlice creates a tensor with the given shape from a flat, row-major
// ordered sequence of values. The values are copied; the caller keeps
// ownership of the slice. It panics if the product of the dimensions
// does not equal len(values).
//
// Example:
//
//	t := tensor.FromSlice(tensor.Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})
//	t.At(0, 0) // 1
//	t.At(1, 2) // 6
func FromSlice[T Num](shape Shape, values []T) *Tensor[T] {
	meta := newMetaDataChecked(len(values), shape)
	data := alloc.NewAllocate[T](meta.size)
	alloc.CopyFromSlice(&data, values)
	return &Tensor[T]{meta: meta, data: data}
}

// FromValues creates a tensor with the given shape by taking ownership
// of values without copying. The caller must not use the slice
// afterwards. It panics if the product of the dimensions does not equal
// len(values).
func FromValues[T Num](shape Shape, values []T) *Tensor[T] {
	meta := newMetaDataChecked(len(values), shape)
	return &Tensor[T]{meta: meta, data: alloc.Adopt(values)}
}
