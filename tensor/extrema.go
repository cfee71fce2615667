// SPDX-License-Identifier: MIT

package tensor

import "github.com/katalvlaran/lvtensor/radix"

const ctxExtrema = "Extrema"

// Extremum is the result of a single min/max scan.
// MinIndex and MaxIndex are public (most-significant-first) multi-indices.
type Extremum[T Real] struct {
	Min, Max           T
	MinIndex, MaxIndex []int
}

// Extrema scans t once, tracking the running minimum and maximum and the
// offset where each was FIRST reached (ties keep the lowest offset). Offsets are
// decoded to multi-indices only at the end.
//
// NaN compares false against everything, so a NaN is never picked up after
// offset 0; a NaN at offset 0 is reported as both Min and Max.
//
// Errors: ErrNilTensor.
// Complexity: O(size) + O(rank).
func Extrema[T Real](t *Tensor[T]) (Extremum[T], error) {
	var res Extremum[T]
	if err := ValidateNotNil(t); err != nil {
		return res, tensorErrorf(ctxExtrema, err)
	}

	// size >= 1 is guaranteed by construction (dimension >= 1).
	minV, maxV := t.data[0], t.data[0]
	minOff, maxOff := 0, 0
	for off, v := range t.data {
		if v < minV {
			minV, minOff = v, off
		}
		if v > maxV {
			maxV, maxOff = v, off
		}
	}

	dMin, err := radix.Decode(t.rank, t.dimension, minOff)
	if err != nil {
		return res, tensorErrorf(ctxExtrema, err)
	}
	dMax, err := radix.Decode(t.rank, t.dimension, maxOff)
	if err != nil {
		return res, tensorErrorf(ctxExtrema, err)
	}

	res.Min, res.Max = minV, maxV
	res.MinIndex, res.MaxIndex = indexOf(dMin), indexOf(dMax)

	return res, nil
}
