// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Single source of truth for the guards shared by accessors, transforms and
//     elementwise kernels.
//   - Return plain sentinels wrapped with a validator tag so call sites can wrap
//     once more with the public operation name.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing on success.

package tensor

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures t is non-nil and has not been released.
// Returns ErrNilTensor otherwise. Complexity: O(1).
func ValidateNotNil[T Scalar](t *Tensor[T]) error {
	if t == nil || t.data == nil {
		return validatorErrorf("ValidateNotNil", ErrNilTensor)
	}

	return nil
}

// ValidateSameShape ensures a and b are live and share rank and dimension.
// Errors: ErrNilTensor, ErrShapeMismatch. Complexity: O(1).
func ValidateSameShape[T Scalar](a, b *Tensor[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.rank != b.rank {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: rank %d vs %d", a.rank, b.rank), ErrShapeMismatch)
	}
	if a.dimension != b.dimension {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: dimension %d vs %d", a.dimension, b.dimension), ErrShapeMismatch)
	}

	return nil
}

// ValidateAxes ensures i and j are distinct axes of t.
// Errors: ErrNilTensor, ErrBadAxes. Complexity: O(1).
func ValidateAxes[T Scalar](t *Tensor[T], i, j int) error {
	if err := ValidateNotNil(t); err != nil {
		return validatorErrorf("ValidateAxes", err)
	}
	if i < 0 || i >= t.rank || j < 0 || j >= t.rank || i == j {
		return validatorErrorf(fmt.Sprintf("ValidateAxes(%d,%d) rank=%d", i, j, t.rank), ErrBadAxes)
	}

	return nil
}

// ValidateRank ensures t is live and has exactly the given rank.
// Errors: ErrNilTensor, ErrRankMismatch. Complexity: O(1).
func ValidateRank[T Scalar](t *Tensor[T], rank int) error {
	if err := ValidateNotNil(t); err != nil {
		return validatorErrorf("ValidateRank", err)
	}
	if t.rank != rank {
		return validatorErrorf(fmt.Sprintf("ValidateRank: want %d, got %d", rank, t.rank), ErrRankMismatch)
	}

	return nil
}
