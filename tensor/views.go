// SPDX-License-Identifier: MIT

// Package tensor - rank-1 / rank-2 adapters.
//
// Purpose:
//   - Hand a tensor's WHOLE buffer to gonum's vector/matrix primitives without copying.
//   - Views are borrowed: they alias the tensor's storage, never own it, and must
//     not be used after Release. There is no sub-range view of a tensor.
//
// AI-Hints:
//   - gonum's mat.NewVecDense / mat.NewDense / mat.NewCDense keep the slice they are
//     given, which is exactly the borrowing contract wanted here.
//   - Use FromVector / FromMatrix for the opposite direction; those COPY.
package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxAsVector   = "AsVector"
	ctxAsMatrix   = "AsMatrix"
	ctxAsCMatrix  = "AsCMatrix"
	ctxVectorView = "VectorView"
	ctxMatrixRows = "MatrixRows"
	ctxFromVector = "FromVector"
	ctxFromMatrix = "FromMatrix"
)

// AsVector returns a *mat.VecDense of length Dimension() backed by t's buffer.
// Errors: ErrNilTensor; ErrRankMismatch unless rank == 1.
// Complexity: O(1), no copy.
func AsVector(t *Tensor[float64]) (*mat.VecDense, error) {
	if err := ValidateRank(t, 1); err != nil {
		return nil, tensorErrorf(ctxAsVector, err)
	}

	return mat.NewVecDense(t.dimension, t.data), nil
}

// AsMatrix returns a Dimension()×Dimension() *mat.Dense backed by t's buffer.
// Row i of the matrix is axis-0 value i (row-major matches the tensor layout).
// Errors: ErrNilTensor; ErrRankMismatch unless rank == 2.
// Complexity: O(1), no copy.
func AsMatrix(t *Tensor[float64]) (*mat.Dense, error) {
	if err := ValidateRank(t, 2); err != nil {
		return nil, tensorErrorf(ctxAsMatrix, err)
	}

	return mat.NewDense(t.dimension, t.dimension, t.data), nil
}

// AsCMatrix is AsMatrix for complex tensors, returning a *mat.CDense view.
// Errors: ErrNilTensor; ErrRankMismatch unless rank == 2.
func AsCMatrix(t *Tensor[complex128]) (*mat.CDense, error) {
	if err := ValidateRank(t, 2); err != nil {
		return nil, tensorErrorf(ctxAsCMatrix, err)
	}

	return mat.NewCDense(t.dimension, t.dimension, t.data), nil
}

// VectorView returns the buffer of a rank-1 tensor of any element type.
// Errors: ErrNilTensor; ErrRankMismatch unless rank == 1.
func VectorView[T Scalar](t *Tensor[T]) ([]T, error) {
	if err := ValidateRank(t, 1); err != nil {
		return nil, tensorErrorf(ctxVectorView, err)
	}

	return t.data, nil
}

// MatrixRows returns the rows of a rank-2 tensor as sub-slices of its buffer.
// Each row is capacity-limited so appends cannot bleed into the next row.
// Errors: ErrNilTensor; ErrRankMismatch unless rank == 2.
// Complexity: O(dim) for the row headers, no element copy.
func MatrixRows[T Scalar](t *Tensor[T]) ([][]T, error) {
	if err := ValidateRank(t, 2); err != nil {
		return nil, tensorErrorf(ctxMatrixRows, err)
	}
	n := t.dimension
	rows := make([][]T, n)
	for i := 0; i < n; i++ {
		rows[i] = t.data[i*n : (i+1)*n : (i+1)*n]
	}

	return rows, nil
}

// FromVector copies a gonum vector into a new rank-1 tensor.
// Errors: ErrInvalidDimension for an empty vector; ErrAllocation.
// Complexity: O(n).
func FromVector(v mat.Vector, opts ...Option) (*Tensor[float64], error) {
	if v == nil {
		return nil, tensorErrorf(ctxFromVector, ErrNilTensor)
	}
	n := v.Len()
	t, err := New[float64](1, n, opts...)
	if err != nil {
		return nil, tensorErrorf(ctxFromVector, err)
	}
	for i := 0; i < n; i++ {
		t.data[i] = v.AtVec(i)
	}

	return t, nil
}

// FromMatrix copies a square gonum matrix into a new rank-2 tensor.
// Errors: ErrShapeMismatch for non-square input; ErrInvalidDimension; ErrAllocation.
// Complexity: O(n²).
func FromMatrix(m mat.Matrix, opts ...Option) (*Tensor[float64], error) {
	if m == nil {
		return nil, tensorErrorf(ctxFromMatrix, ErrNilTensor)
	}
	r, c := m.Dims()
	if r != c {
		return nil, tensorErrorf(ctxFromMatrix, fmt.Errorf("%dx%d: %w", r, c, ErrShapeMismatch))
	}
	t, err := New[float64](2, r, opts...)
	if err != nil {
		return nil, tensorErrorf(ctxFromMatrix, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			t.data[i*c+j] = m.At(i, j)
		}
	}

	return t, nil
}
