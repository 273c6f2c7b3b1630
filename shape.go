package tensor

import "fmt"

// Shape represents the dimensions of a tensor. An empty Shape is a
// rank-0 scalar holding one element.
type Shape []int

// NumElements returns the total number of elements for the shape.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Equal checks if two shapes are equal element-wise.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// metaData holds the geometry of one tensor: its dimensions, the derived
// row-major strides, and the total element count. It owns the coordinate
// to linear offset mapping. One metaData per tensor, copied, never shared.
type metaData struct {
	dims    Shape
	strides []int
	size    int
}

// computeLayout derives the row-major strides and the element count:
// strides[R-1] = 1, strides[i] = strides[i+1] * dims[i+1]. The rightmost
// axis varies fastest; this ordering is what makes the flat view
// bit-compatible with C-order indexing.
func computeLayout(dims Shape) (strides []int, size int) {
	strides = make([]int, len(dims))
	size = 1
	stride := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= dims[i]
		size *= dims[i]
	}
	return strides, size
}

// newMetaData computes strides and size for dims.
// It panics if any dimension is zero or negative.
func newMetaData(dims Shape) metaData {
	validateDims(dims)
	strides, size := computeLayout(dims)
	return metaData{dims: dims.Clone(), strides: strides, size: size}
}

func validateDims(dims Shape) {
	for i, dim := range dims {
		if dim <= 0 {
			panic(fmt.Sprintf("invalid dimension at index %d: %d (must be > 0)", i, dim))
		}
	}
}

// newMetaDataChecked is newMetaData with an additional check that the
// shape's element count matches n, for constructing from a flat sequence.
func newMetaDataChecked(n int, dims Shape) metaData {
	md := newMetaData(dims)
	if md.size != n {
		panic(fmt.Sprintf("shape %v requires %d elements, but got %d", dims, md.size, n))
	}
	return md
}

// offset computes the linear offset of a coordinate tuple.
// It panics if the tuple's length does not match the rank, or if any
// coordinate is out of bounds for its axis. Axes are checked from the
// last one backward, as the offsets accumulate in that order.
func (m *metaData) offset(index []int) int {
	if len(index) != len(m.dims) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(m.dims), len(index)))
	}
	offset := 0
	for i := len(index) - 1; i >= 0; i-- {
		idx := index[i]
		if idx < 0 || idx >= m.dims[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, m.dims[i]))
		}
		offset += idx * m.strides[i]
	}
	return offset
}

// reshape recomputes the layout for dims in place. The element count
// must not change; reshape alters geometry, never contents.
func (m *metaData) reshape(dims Shape) {
	validateDims(dims)
	strides, size := computeLayout(dims)
	if size != m.size {
		panic(fmt.Sprintf("cannot reshape %d elements to shape %v (%d elements)", m.size, dims, size))
	}
	m.dims = dims.Clone()
	m.strides = strides
}

// clone returns an independent copy of the metadata.
func (m *metaData) clone() metaData {
	return metaData{
		dims:    m.dims.Clone(),
		strides: append([]int(nil), m.strides...),
		size:    m.size,
	}
}

// shapeEq compares dimensions element-wise.
func (m *metaData) shapeEq(other *metaData) bool {
	return m.dims.Equal(other.dims)
}

// fullEq compares size first as a cheap short-circuit, then dimensions.
func (m *metaData) fullEq(other *metaData) bool {
	if m.size != other.size {
		return false
	}
	return m.shapeEq(other)
}
