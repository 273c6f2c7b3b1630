// Package tensor implements a dense multidimensional array with a fixed
// row-major memory layout, explicit buffer lifecycle, element-wise
// arithmetic, similarity metrics, and checked numeric casting.
//
// # Overview
//
// A Tensor[T] couples shape metadata (dimensions, derived strides,
// element count) with one exclusively owned contiguous buffer holding
// exactly size elements in row-major order. The layout is predictable
// and the flat view is bit-compatible with a C array of the same
// elements.
//
// # Basic Usage
//
//	import "github.com/geo-mak/tensor"
//
//	func main() {
//	    a := tensor.Full(tensor.Shape{2, 3}, 1.0)
//	    b := tensor.FromSlice(tensor.Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
//
//	    c := a.Add(b)          // allocating element-wise addition
//	    a.AddInPlace(b)        // in-place variant
//
//	    c.Set(9, 1, 2)         // write at coordinates (1, 2)
//	    _ = c.At(1, 2)         // read back
//
//	    _ = a.Dot(b)           // Σ a[i]*b[i]
//	    _ = a.CosineSimilarity(b)
//	}
//
// # Supported Element Types
//
// The Num constraint covers int8 through int64, uint8 through uint64,
// float32, and float64. Half-precision values are supported as a storage
// format through CastToFloat16 and CastFromFloat16.
//
// # Error Model
//
// Shape mismatches, out-of-bounds indices, wrong index arity, and
// invalid dimensions are programmer errors and panic. The one
// recoverable failure is numeric casting, which reports ErrOverflow or
// ErrPrecisionLoss and never leaves partial state behind.
//
// # Concurrency
//
// Operations are synchronous and run to completion on the calling
// goroutine. The library performs no internal locking: distinct tensors
// are safe to use concurrently because each owns its buffer, while
// shared access to one tensor requires external synchronization.
package tensor
