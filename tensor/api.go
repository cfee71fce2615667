// SPDX-License-Identifier: MIT
// Package tensor: public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points over the canonical kernels.
//   - No loop duplication: every facade delegates.

package tensor

// Min returns the smallest element (first occurrence). Errors: ErrNilTensor.
func Min[T Real](t *Tensor[T]) (T, error) {
	e, err := Extrema(t)

	return e.Min, err
}

// Max returns the largest element (first occurrence). Errors: ErrNilTensor.
func Max[T Real](t *Tensor[T]) (T, error) {
	e, err := Extrema(t)

	return e.Max, err
}

// MinMax returns the smallest and largest elements in one pass.
func MinMax[T Real](t *Tensor[T]) (lo, hi T, err error) {
	e, err := Extrema(t)

	return e.Min, e.Max, err
}

// MinIndex returns the multi-index of the first smallest element.
func MinIndex[T Real](t *Tensor[T]) ([]int, error) {
	e, err := Extrema(t)

	return e.MinIndex, err
}

// MaxIndex returns the multi-index of the first largest element.
func MaxIndex[T Real](t *Tensor[T]) ([]int, error) {
	e, err := Extrema(t)

	return e.MaxIndex, err
}

// MinMaxIndex returns the multi-indices of the first smallest and largest elements.
func MinMaxIndex[T Real](t *Tensor[T]) (imin, imax []int, err error) {
	e, err := Extrema(t)

	return e.MinIndex, e.MaxIndex, err
}

// Transpose swaps the first two axes; for rank 2 it is the matrix transpose.
// Errors: as SwapAxes (rank < 2 yields ErrBadAxes).
func Transpose[T Scalar](t *Tensor[T]) (*Tensor[T], error) { return SwapAxes(t, 0, 1) }

// Trace returns Σ_k t[k,k] of a rank-2 tensor, i.e. its full contraction.
// Errors: ErrNilTensor; ErrRankMismatch unless rank == 2; ErrAllocation.
func Trace[T Scalar](t *Tensor[T]) (T, error) {
	var zero T
	if err := ValidateRank(t, 2); err != nil {
		return zero, tensorErrorf("Trace", err)
	}
	s, err := Contract(t, 0, 1)
	if err != nil {
		return zero, tensorErrorf("Trace", err)
	}

	return s.data[0], nil
}

// Identity returns the rank-2 dim×dim tensor with ones on the diagonal.
// Errors: as NewZeros.
func Identity[T Scalar](dimension int, opts ...Option) (*Tensor[T], error) {
	t, err := NewZeros[T](2, dimension, opts...)
	if err != nil {
		return nil, err
	}
	if err = AddDiagonal(t, 1); err != nil {
		return nil, tensorErrorf("Identity", err)
	}

	return t, nil
}
