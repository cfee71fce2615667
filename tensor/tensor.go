// SPDX-License-Identifier: MIT

// Package tensor - dense storage & lifecycle.
//
// Purpose:
//   - Own one contiguous buffer of dimension^rank elements.
//   - Enforce the shape invariants at construction so every later operation can trust them.
//   - Keep the allocation path failure-safe: a failed allocation never yields a partial tensor.
//
// Complexity quicksheet:
//   - New/NewZeros: O(size) zero-init; Clone: O(size); accessors O(1); Release O(1).
package tensor

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/katalvlaran/lvtensor/radix"
)

// MaxRank is the largest supported rank (capacity of the codec's digit tuple).
const MaxRank = radix.MaxDigits

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxNewZeros = "NewZeros"
	ctxClone    = "Clone"
	ctxFill     = "Fill"
)

// Tensor is a dense rank-N array over a single shared dimension.
//   - rank is the number of axes (>= 0); dimension the extent of every axis (>= 1).
//   - size == dimension^rank is cached; a rank-0 tensor is a scalar with size 1.
//   - data is exclusively owned, len(data) == size, laid out most-significant-axis-first.
type Tensor[T Scalar] struct {
	rank       int  // number of axes
	dimension  int  // values per axis
	size       int  // dimension^rank
	data       []T  // flat storage, nil after Release
	rangeCheck bool // per-entry index validation policy
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Tensor[float64])(nil)

// New allocates a tensor of the given rank and dimension.
//
// Implementation:
//   - Stage 1: validate dimension >= 1 and 0 <= rank <= MaxRank.
//   - Stage 2: compute size = dimension^rank with overflow detection.
//   - Stage 3: obtain the buffer; runtime refusal is converted into ErrAllocation.
//
// Errors:
//   - ErrInvalidDimension, ErrInvalidRank (both ErrInvalidArgument).
//   - ErrAllocation when the size overflows or the buffer cannot be obtained.
//
// Notes:
//   - The Go runtime zeroes fresh memory, so the buffer is zero-filled even though
//     callers must not rely on it; use NewZeros when zeros are part of the contract.
func New[T Scalar](rank, dimension int, opts ...Option) (*Tensor[T], error) {
	t, err := alloc[T](rank, dimension, gatherOptions(opts...).rangeCheck)
	if err != nil {
		return nil, tensorErrorf(ctxNew, err)
	}

	return t, nil
}

// NewZeros allocates a tensor and guarantees every element is zero.
// Errors: as New.
func NewZeros[T Scalar](rank, dimension int, opts ...Option) (*Tensor[T], error) {
	t, err := alloc[T](rank, dimension, gatherOptions(opts...).rangeCheck)
	if err != nil {
		return nil, tensorErrorf(ctxNewZeros, err)
	}
	clear(t.data) // explicit: the contract is zeros, not "whatever make returned"

	return t, nil
}

// Clone allocates a tensor with src's rank, dimension and policy and copies its buffer.
// Errors: ErrNilTensor for nil/released src; ErrAllocation.
// Complexity: O(size).
func Clone[T Scalar](src *Tensor[T]) (*Tensor[T], error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, tensorErrorf(ctxClone, err)
	}
	dst, err := alloc[T](src.rank, src.dimension, src.rangeCheck)
	if err != nil {
		return nil, tensorErrorf(ctxClone, err)
	}
	copy(dst.data, src.data)

	return dst, nil
}

// alloc is the single allocation path shared by constructors and transforms.
func alloc[T Scalar](rank, dimension int, rangeCheck bool) (*Tensor[T], error) {
	if dimension < 1 {
		return nil, fmt.Errorf("dimension=%d: %w", dimension, ErrInvalidDimension)
	}
	if rank < 0 || rank > MaxRank {
		return nil, fmt.Errorf("rank=%d: %w", rank, ErrInvalidRank)
	}
	size, err := radix.Pow(dimension, rank)
	if err != nil {
		return nil, fmt.Errorf("%d^%d elements: %w (%v)", dimension, rank, ErrAllocation, err)
	}
	data, err := allocBuffer[T](size)
	if err != nil {
		return nil, err
	}

	return &Tensor[T]{
		rank:       rank,
		dimension:  dimension,
		size:       size,
		data:       data,
		rangeCheck: rangeCheck,
	}, nil
}

// allocBuffer returns make([]T, n), reporting byte-size overflow and runtime
// refusal ("len out of range") as ErrAllocation instead of panicking.
// A genuine out-of-memory condition is fatal in Go and cannot be intercepted.
func allocBuffer[T Scalar](n int) (buf []T, err error) {
	var zero T
	if _, err = radix.MulChecked(n, int(unsafe.Sizeof(zero))); err != nil {
		return nil, fmt.Errorf("%d elements: %w", n, ErrAllocation)
	}
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%d elements: %w (%v)", n, ErrAllocation, r)
		}
	}()

	return make([]T, n), nil
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int { return t.rank }

// Dimension returns the number of valid values per axis.
func (t *Tensor[T]) Dimension() int { return t.dimension }

// Size returns dimension^rank, the element count.
func (t *Tensor[T]) Size() int { return t.size }

// RangeChecked reports whether per-entry index validation is enabled.
func (t *Tensor[T]) RangeChecked() bool { return t.rangeCheck }

// Data returns the backing buffer in offset order.
// The slice is borrowed: writes are visible to the tensor and it must not be
// retained past Release.
func (t *Tensor[T]) Data() []T { return t.data }

// Fill sets every element to value. Complexity: O(size).
func (t *Tensor[T]) Fill(value T) error {
	if err := ValidateNotNil(t); err != nil {
		return tensorErrorf(ctxFill, err)
	}
	for i := range t.data {
		t.data[i] = value
	}

	return nil
}

// Zero sets every element to the zero value. Complexity: O(size).
func (t *Tensor[T]) Zero() error {
	var zero T

	return t.Fill(zero)
}

// Release drops the buffer and resets the shape: Rank, Dimension and Size
// report 0 afterwards. Any later operation on t fails with ErrNilTensor.
// Releasing twice is a no-op.
func (t *Tensor[T]) Release() {
	if t == nil {
		return
	}
	t.data = nil
	t.rank, t.dimension, t.size = 0, 0, 0
}

// String renders shape and elements in offset order, e.g.
// "Tensor(rank=2, dim=2)[1 2 3 4]".
func (t *Tensor[T]) String() string {
	if t == nil || t.data == nil {
		return "Tensor(<nil>)"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor(rank=%d, dim=%d)", t.rank, t.dimension)
	sb.WriteString(fmt.Sprint(t.data))

	return sb.String()
}
