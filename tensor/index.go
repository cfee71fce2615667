// SPDX-License-Identifier: MIT

// Package tensor - multi-index boundary.
//
// The public multi-index is most-significant-axis-first: axis 0 varies slowest,
// axis rank-1 fastest, offset = Σ index[a]·dim^(rank-1-a).
// The radix codec is least-significant-digit-first. The two are reconciled HERE
// and only here, by an explicit reversal:
//
//	public axis a  <->  codec digit reverseAxis(rank, a) = rank-1-a
//
// digitsOf / indexOf perform the whole-tuple reversal; transforms use
// reverseAxis to translate the axis numbers they are given.
package tensor

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/radix"
)

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxPtr    = "Ptr"
	ctxOffset = "Offset"
	ctxIndex  = "Index"
)

// reverseAxis maps a public axis number to its codec digit position.
func reverseAxis(rank, axis int) int { return rank - 1 - axis }

// digitsOf converts a public multi-index (len <= MaxRank, already validated)
// into codec digits, least significant first.
func digitsOf(index []int) radix.Tuple {
	d, _ := radix.FromInts(index) // len(index) == rank <= MaxRank was checked by the caller
	d.Reverse()

	return d
}

// indexOf converts codec digits back into a public multi-index.
func indexOf(d radix.Tuple) []int {
	d.Reverse() // d is a copy; caller's tuple is untouched

	return d.Ints()
}

// offset validates index under t's policy and returns its flat position.
func (t *Tensor[T]) offset(index []int) (int, error) {
	if err := ValidateNotNil(t); err != nil {
		return 0, err
	}
	if len(index) != t.rank {
		return 0, fmt.Errorf("%d indices for rank %d: %w", len(index), t.rank, ErrOutOfRange)
	}
	if t.rangeCheck {
		for axis, v := range index {
			if v < 0 || v >= t.dimension {
				return 0, fmt.Errorf("axis %d index %d not in [0,%d): %w", axis, v, t.dimension, ErrOutOfRange)
			}
		}
	}
	d := digitsOf(index)

	return radix.Encode(t.dimension, &d), nil
}

// Offset returns the flat buffer position of the multi-index.
// Errors: ErrNilTensor; ErrOutOfRange (wrong count, or a bad entry when range checking is on).
// Complexity: O(rank).
func (t *Tensor[T]) Offset(index ...int) (int, error) {
	off, err := t.offset(index)
	if err != nil {
		return 0, tensorErrorf(ctxOffset, err)
	}

	return off, nil
}

// Index returns the multi-index stored at flat position offset.
// Errors: ErrNilTensor; ErrOutOfRange when offset is not in [0, Size()).
// Complexity: O(rank).
func (t *Tensor[T]) Index(offset int) ([]int, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, tensorErrorf(ctxIndex, err)
	}
	if offset < 0 || offset >= t.size {
		return nil, tensorErrorf(ctxIndex, fmt.Errorf("offset %d not in [0,%d): %w", offset, t.size, ErrOutOfRange))
	}
	d, err := radix.Decode(t.rank, t.dimension, offset)
	if err != nil {
		return nil, tensorErrorf(ctxIndex, err)
	}

	return indexOf(d), nil
}

// At returns the element at the multi-index.
// Errors: ErrNilTensor; ErrOutOfRange. Nothing is read on error.
// Complexity: O(rank).
func (t *Tensor[T]) At(index ...int) (T, error) {
	off, err := t.offset(index)
	if err != nil {
		var zero T
		return zero, tensorErrorf(ctxAt, err)
	}

	return t.data[off], nil
}

// Set writes value at the multi-index.
// Errors: ErrNilTensor; ErrOutOfRange. Nothing is written on error.
// Complexity: O(rank).
func (t *Tensor[T]) Set(value T, index ...int) error {
	off, err := t.offset(index)
	if err != nil {
		return tensorErrorf(ctxSet, err)
	}
	t.data[off] = value

	return nil
}

// Ptr returns a pointer to the element at the multi-index. The pointer is
// borrowed and becomes meaningless after Release.
// Errors: ErrNilTensor; ErrOutOfRange.
func (t *Tensor[T]) Ptr(index ...int) (*T, error) {
	off, err := t.offset(index)
	if err != nil {
		return nil, tensorErrorf(ctxPtr, err)
	}

	return &t.data[off], nil
}
