// SPDX-License-Identifier: MIT

// Package tensor - structural transforms.
//
// Purpose:
//   - Axis swap, contraction and outer product, all built on the radix codec.
//   - Every transform allocates a fresh result; inputs are only read.
//
// Determinism:
//   - Fixed loop orders (ascending offsets, ascending k in contraction sums), so
//     floating-point results are reproducible run to run.
//
// Convention:
//   - Axis arguments are PUBLIC axis numbers (axis 0 = slowest). They are mapped
//     to codec digit positions with reverseAxis before any digit arithmetic.
package tensor

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/radix"
)

const (
	ctxSwapAxes     = "SwapAxes"
	ctxContract     = "Contract"
	ctxOuterProduct = "OuterProduct"
)

// SwapAxes returns a new tensor r with axes i and j exchanged:
//
//	r[..., a_i, ..., a_j, ...] = t[..., a_j, ..., a_i, ...]
//
// Implementation:
//   - Stage 1: validate distinct in-range axes.
//   - Stage 2: allocate the result (same rank, dimension and policy).
//   - Stage 3: for each source offset, decode, swap the two digits, encode, copy.
//
// Errors: ErrNilTensor, ErrBadAxes, ErrAllocation.
// Complexity: O(size·rank) time, O(rank) stack scratch.
func SwapAxes[T Scalar](t *Tensor[T], i, j int) (*Tensor[T], error) {
	if err := ValidateAxes(t, i, j); err != nil {
		return nil, tensorErrorf(ctxSwapAxes, err)
	}
	out, err := alloc[T](t.rank, t.dimension, t.rangeCheck)
	if err != nil {
		return nil, tensorErrorf(ctxSwapAxes, err)
	}

	di, dj := reverseAxis(t.rank, i), reverseAxis(t.rank, j)
	for pos := 0; pos < t.size; pos++ {
		d, err := radix.Decode(t.rank, t.dimension, pos)
		if err != nil {
			return nil, tensorErrorf(ctxSwapAxes, err)
		}
		d.Swap(di, dj)
		out.data[radix.Encode(t.dimension, &d)] = t.data[pos]
	}

	return out, nil
}

// Contract sums t over the diagonal where axes i and j are equal, returning a
// tensor of rank t.Rank()-2 over the same dimension:
//
//	r[rest] = Σ_{k=0}^{dim-1} t[rest with axis i = axis j = k]
//
// Implementation:
//   - Stage 1: validate distinct in-range axes; allocate rank-2 result.
//   - Stage 2: map i, j to codec digits lo < hi; step = dim^lo + dim^hi is the
//     offset increment that advances BOTH contracted digits by one.
//   - Stage 3: for each result offset pos: decode rank-2 digits, insert 0 at lo
//     then at hi (restoring rank digits with both contracted axes pinned to 0),
//     encode to pos00, then accumulate t[pos00 + k·step] for k = 0..dim-1.
//
// Errors: ErrNilTensor, ErrBadAxes (rank < 2 always fails here), ErrAllocation.
// Complexity: O(size/dim · rank + size/dim) time; O(rank) stack scratch.
func Contract[T Scalar](t *Tensor[T], i, j int) (*Tensor[T], error) {
	if err := ValidateAxes(t, i, j); err != nil {
		return nil, tensorErrorf(ctxContract, err)
	}
	out, err := alloc[T](t.rank-2, t.dimension, t.rangeCheck)
	if err != nil {
		return nil, tensorErrorf(ctxContract, err)
	}

	lo, hi := reverseAxis(t.rank, i), reverseAxis(t.rank, j)
	if lo > hi {
		lo, hi = hi, lo
	}
	pLo, err := radix.Pow(t.dimension, lo)
	if err != nil {
		return nil, tensorErrorf(ctxContract, err)
	}
	pHi, err := radix.Pow(t.dimension, hi)
	if err != nil {
		return nil, tensorErrorf(ctxContract, err)
	}
	step := pLo + pHi

	for pos := 0; pos < out.size; pos++ {
		d, err := radix.Decode(t.rank-2, t.dimension, pos)
		if err != nil {
			return nil, tensorErrorf(ctxContract, err)
		}
		// lo first: inserting at lo does not move position hi (> lo) in the final tuple.
		if err = d.Insert(lo, 0); err != nil {
			return nil, tensorErrorf(ctxContract, err)
		}
		if err = d.Insert(hi, 0); err != nil {
			return nil, tensorErrorf(ctxContract, err)
		}
		pos00 := radix.Encode(t.dimension, &d)

		var sum T
		for k := 0; k < t.dimension; k++ {
			sum += t.data[pos00+k*step]
		}
		out.data[pos] = sum
	}

	return out, nil
}

// OuterProduct returns c with rank a.Rank()+b.Rank() over the shared dimension:
//
//	c[ia..., ib...] = a[ia...] · b[ib...]
//
// a's axes form the more significant block, so c's offset is ia·b.Size() + ib
// and the kernel is a plain nested walk. The result takes a's policy.
//
// Errors: ErrNilTensor; ErrShapeMismatch (dimensions differ);
// ErrInvalidRank (combined rank > MaxRank); ErrAllocation.
// Complexity: O(a.Size()·b.Size()).
func OuterProduct[T Scalar](a, b *Tensor[T]) (*Tensor[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, tensorErrorf(ctxOuterProduct, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, tensorErrorf(ctxOuterProduct, err)
	}
	if a.dimension != b.dimension {
		return nil, tensorErrorf(ctxOuterProduct,
			fmt.Errorf("dimension %d vs %d: %w", a.dimension, b.dimension, ErrShapeMismatch))
	}
	c, err := alloc[T](a.rank+b.rank, a.dimension, a.rangeCheck)
	if err != nil {
		return nil, tensorErrorf(ctxOuterProduct, err)
	}

	pos := 0
	for _, av := range a.data {
		for _, bv := range b.data {
			c.data[pos] = av * bv
			pos++
		}
	}

	return c, nil
}
