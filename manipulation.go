package tensor

// Reshape changes the tensor's dimensions in place. Only the coordinate
// to offset mapping changes; no element moves and the flat row-major
// order is preserved. It panics if the product of the new dimensions
// does not equal the current element count.
//
// Example:
//
//	t := tensor.FromSlice(tensor.Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})
//	t.Reshape(tensor.Shape{3, 2})
//	t.At(1, 0) // 3
func (t *Tensor[T]) Reshape(shape Shape) {
	t.meta.reshape(shape)
}

// ChangeRank consumes the tensor and returns one with the given
// dimensions, which may have a different rank. The buffer transfers to
// the result without copying or reallocation; the receiver is left
// released and must not be used afterwards. It panics if the product of
// the new dimensions does not equal the current element count.
//
// Example:
//
//	t := tensor.FromSlice(tensor.Shape{2, 3}, []int32{1, 2, 3, 4, 5, 6})
//	u := t.ChangeRank(tensor.Shape{2, 3, 1})
//	u.At(1, 2, 0) // 6
func (t *Tensor[T]) ChangeRank(shape Shape) *Tensor[T] {
	meta := newMetaDataChecked(t.meta.size, shape)
	return &Tensor[T]{meta: meta, data: t.data.Move()}
}
