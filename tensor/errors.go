// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every operation returns
// one of these (possibly wrapped with call-site context) and tests match them
// via errors.Is. No operation panics on a user-triggered error condition.

package tensor

import (
	"errors"
	"fmt"
)

// NOTE ON TAXONOMY
// ----------------
// ErrInvalidArgument is a category: the more specific sentinels below wrap it,
// so errors.Is(err, ErrInvalidArgument) holds for any of them while
// errors.Is(err, ErrBadAxes) still pinpoints the exact cause.

var (
	// ErrInvalidArgument is the category of caller mistakes detected before any work.
	ErrInvalidArgument = errors.New("tensor: invalid argument")

	// ErrInvalidDimension is returned when a tensor is requested with dimension < 1.
	ErrInvalidDimension = fmt.Errorf("%w: dimension must be >= 1", ErrInvalidArgument)

	// ErrInvalidRank is returned for rank < 0 or rank > MaxRank.
	ErrInvalidRank = fmt.Errorf("%w: rank outside [0, MaxRank]", ErrInvalidArgument)

	// ErrBadAxes is returned by SwapAxes/Contract when an axis is out of range or both axes are equal.
	ErrBadAxes = fmt.Errorf("%w: bad axes", ErrInvalidArgument)

	// ErrRankMismatch is returned by view adapters when the tensor rank does not match the view.
	ErrRankMismatch = fmt.Errorf("%w: rank does not match view", ErrInvalidArgument)

	// ErrNilTensor is returned for a nil or released tensor.
	ErrNilTensor = fmt.Errorf("%w: nil or released tensor", ErrInvalidArgument)

	// ErrShapeMismatch indicates operands with different rank or dimension.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrAllocation indicates the backing buffer could not be obtained.
	ErrAllocation = errors.New("tensor: allocation failed")

	// ErrOutOfRange indicates a multi-index (or offset) outside the tensor bounds.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDivisionByZero is returned by integer DivElements when the divisor holds a zero.
	ErrDivisionByZero = errors.New("tensor: integer division by zero")
)

// tensorErrorf wraps err with the public operation name that detected it.
func tensorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
