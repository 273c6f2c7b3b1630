// Package alloc provides the raw buffer backing tensor storage.
//
// A Buffer owns one contiguous heap allocation holding a fixed number of
// fixed-size elements. The buffer is untyped at rest; typed access goes
// through the package-level generic view helpers, which reinterpret the
// bytes without copying. The buffer tracks its own length, so every
// operation can check the allocation state and bounds instead of trusting
// a caller-supplied count.
//
// A Buffer is either empty or allocated. Allocation and release are
// explicit, and state violations (allocating twice, freeing or accessing
// an empty buffer) panic: they indicate a bug in the owning tensor, not a
// runtime condition.
package alloc

import (
	"fmt"
	"unsafe"
)

// Buffer is an exclusively owned run of count*elemSize bytes, or empty.
type Buffer struct {
	data     []byte
	elemSize int
}

// sizeOf returns the byte size of T and panics for zero-sized types,
// since offset arithmetic assumes a nonzero stride between elements.
func sizeOf[T any]() int {
	var v T
	size := int(unsafe.Sizeof(v))
	if size == 0 {
		panic("alloc: zero-sized element type")
	}
	return size
}

// New creates an empty Buffer for elements of type T.
func New[T any]() Buffer {
	return Buffer{elemSize: sizeOf[T]()}
}

// NewAllocate creates a Buffer holding count zeroed elements of type T.
// It panics if count is not positive.
func NewAllocate[T any](count int) Buffer {
	b := New[T]()
	b.Allocate(count)
	return b
}

// Adopt takes ownership of values: the returned Buffer aliases the slice's
// backing array without copying. The caller must not use values afterwards.
// It panics if values is empty.
func Adopt[T any](values []T) Buffer {
	size := sizeOf[T]()
	if len(values) == 0 {
		panic("alloc: cannot adopt an empty slice")
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), len(values)*size)
	return Buffer{data: data, elemSize: size}
}

// Allocated reports whether the buffer currently holds an allocation.
func (b *Buffer) Allocated() bool {
	return b.data != nil
}

// Count returns the number of elements the allocation holds, 0 when empty.
func (b *Buffer) Count() int {
	return len(b.data) / b.elemSize
}

// Allocate gives the buffer a zeroed allocation for count elements.
// It panics if the buffer is already allocated or count is not positive.
func (b *Buffer) Allocate(count int) {
	if b.Allocated() {
		panic("alloc: buffer is already allocated")
	}
	if count <= 0 {
		panic(fmt.Sprintf("alloc: allocation count must be positive, got %d", count))
	}
	b.data = make([]byte, count*b.elemSize)
}

// Free releases the allocation and resets the buffer to the empty state.
// It panics if the buffer is empty.
func (b *Buffer) Free() {
	b.assertAllocated()
	b.data = nil
}

// Move transfers the allocation to the returned Buffer, leaving the
// receiver empty. No bytes are copied.
func (b *Buffer) Move() Buffer {
	b.assertAllocated()
	moved := Buffer{data: b.data, elemSize: b.elemSize}
	b.data = nil
	return moved
}

// MakeCopy returns a new Buffer holding a bitwise copy of the allocation.
func (b *Buffer) MakeCopy() Buffer {
	b.assertAllocated()
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return Buffer{data: data, elemSize: b.elemSize}
}

func (b *Buffer) assertAllocated() {
	if !b.Allocated() {
		panic("alloc: buffer is not allocated")
	}
}

// assertElem checks that T matches the element size the buffer was created
// with. A mismatch means the owning tensor is viewing the buffer as the
// wrong type.
func assertElem[T any](b *Buffer) {
	if size := sizeOf[T](); size != b.elemSize {
		panic(fmt.Sprintf("alloc: element size mismatch: buffer holds %d-byte elements, view requests %d", b.elemSize, size))
	}
}

// View returns the first count elements as a typed slice sharing the
// buffer's memory. Mutations through the slice mutate the buffer.
func View[T any](b *Buffer, count int) []T {
	b.assertAllocated()
	assertElem[T](b)
	if count > b.Count() {
		panic(fmt.Sprintf("alloc: view of %d elements exceeds allocated count %d", count, b.Count()))
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b.data[0])), count)
}

// Load returns the element at offset at.
func Load[T any](b *Buffer, at int) T {
	return View[T](b, b.Count())[at]
}

// Store writes value at offset at, overwriting any previous element.
func Store[T any](b *Buffer, at int, value T) {
	View[T](b, b.Count())[at] = value
}

// Memset sets the first count elements to value.
func Memset[T any](b *Buffer, count int, value T) {
	view := View[T](b, count)
	for i := range view {
		view[i] = value
	}
}

// CopyFromSlice copies values into the front of the allocation bitwise.
// It panics if values does not fit.
func CopyFromSlice[T any](b *Buffer, values []T) {
	if len(values) > b.Count() {
		panic(fmt.Sprintf("alloc: copy of %d elements exceeds allocated count %d", len(values), b.Count()))
	}
	copy(View[T](b, b.Count()), values)
}

// MakeClone returns a new Buffer populated by an element-by-element copy
// of the first count elements.
func MakeClone[T any](b *Buffer, count int) Buffer {
	src := View[T](b, count)
	out := NewAllocate[T](count)
	dst := View[T](&out, count)
	for i := range src {
		dst[i] = src[i]
	}
	return out
}

// CmpEq compares the first count elements of two buffers element-wise.
// It is vacuously true for count 0. Comparison follows the element type's
// own equality, so float NaN compares unequal to itself.
func CmpEq[T comparable](a, b *Buffer, count int) bool {
	if count == 0 {
		return true
	}
	av := View[T](a, count)
	bv := View[T](b, count)
	for i := range av {
		if av[i] != bv[i] {
			return false
		}
	}
	return true
}
