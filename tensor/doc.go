// SPDX-License-Identifier: MIT

// Package tensor provides a generic, dense, rank-N tensor over a single shared
// dimension, plus the structural transforms built on its index mapping.
//
// What & Why:
//
//	A Tensor[T] of rank R and dimension D owns exactly D^R elements of T in one
//	flat buffer. Every axis has the same extent D, which is what makes
//	contraction (summing a pair of axes against each other) well defined for
//	any pair. One generic implementation serves integers, floats and complex
//	numbers.
//
// Layout:
//
//	offset = Σ_{a=0}^{R-1} index[a] · D^(R-1-a)
//
//	Axis 0 varies slowest, axis R-1 fastest (row-major). A rank-2 tensor is
//	therefore laid out exactly like a row-major D×D matrix, and the rank-1/rank-2
//	adapters (AsVector, AsMatrix) hand the buffer to gonum without copying.
//
// Transforms (all allocate a new tensor; inputs are read only):
//
//	SwapAxes(t, i, j)   exchange two axes
//	Contract(t, i, j)   sum over axis i == axis j, rank drops by two
//	OuterProduct(a, b)  concatenate axis spaces, c[ia, ib] = a[ia]·b[ib]
//	Extrema(t)          min/max value and multi-index, first occurrence wins
//
// Arithmetic (in place on the left operand): Add, Sub, MulElements,
// DivElements, Scale, AddConstant, AddDiagonal.
//
// Errors:
//
//	Sentinels in errors.go, matched with errors.Is. ErrInvalidArgument is the
//	category for ErrInvalidDimension, ErrInvalidRank, ErrBadAxes,
//	ErrRankMismatch and ErrNilTensor. Failures never leave a partially
//	written destination behind.
//
// Concurrency:
//
//	A Tensor has no internal locking. Transforms are pure, so independent
//	transforms may run concurrently (see MapParallel). Wrap a tensor that is
//	mutated while shared in a Guarded.
//
// Configuration:
//
//	Range checking of multi-index entries is a per-tensor policy, on by
//	default; see WithoutRangeCheck.
package tensor
