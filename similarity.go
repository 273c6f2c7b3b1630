package tensor

import "math"

// Similarity metrics over two tensors of identical shape. All three run
// as a single linear pass over the flat element sequence; no numeric
// stability measures beyond the arithmetic itself are applied.

// Dot returns the dot product Σ a[i]*b[i], accumulated in the element
// type starting from its zero value. It panics if the shapes differ.
//
// Example:
//
//	a := tensor.Full(tensor.Shape{1, 3}, 3.0)
//	b := tensor.Full(tensor.Shape{1, 3}, 2.0)
//	a.Dot(b) // 18.0
func (t *Tensor[T]) Dot(other *Tensor[T]) T {
	assertSameShape(t, other)
	a, b := t.Data(), other.Data()

	var product T
	for i := range a {
		product += a[i] * b[i]
	}
	return product
}

// CosineSimilarity returns dot(a,b) / (‖a‖₂ · ‖b‖₂) as a float64.
// The dot product and both squared norms accumulate in one fused pass
// over the elements. When either norm is exactly zero the result is
// exactly 0.0, so degenerate all-zero vectors never produce NaN.
// It panics if the shapes differ.
func (t *Tensor[T]) CosineSimilarity(other *Tensor[T]) float64 {
	assertSameShape(t, other)
	a, b := t.Data(), other.Data()

	var productAB, sumSqA, sumSqB T
	for i := range a {
		productAB += a[i] * b[i]
		sumSqA += a[i] * a[i]
		sumSqB += b[i] * b[i]
	}

	normA := math.Sqrt(float64(sumSqA))
	normB := math.Sqrt(float64(sumSqB))
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return float64(productAB) / (normA * normB)
}

// EuclideanDistance returns sqrt(Σ (a[i]-b[i])²) as a float64. The
// squared differences accumulate in the element type before the final
// promotion for the square root. It panics if the shapes differ.
//
// Example:
//
//	a := tensor.Full(tensor.Shape{1, 3}, 3.0)
//	b := tensor.Full(tensor.Shape{1, 3}, 2.0)
//	a.EuclideanDistance(b) // 1.7320508...
func (t *Tensor[T]) EuclideanDistance(other *Tensor[T]) float64 {
	assertSameShape(t, other)
	a, b := t.Data(), other.Data()

	var sum T
	for i := range a {
		delta := a[i] - b[i]
		sum += delta * delta
	}
	return math.Sqrt(float64(sum))
}
