// SPDX-License-Identifier: MIT
// Package tensor_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures shared by the tensor tests.
//   • An odometer that enumerates multi-indices independently of the codec under test.

package tensor_test

import (
	"testing"

	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/stretchr/testify/require"
)

// mustNew allocates a zeroed tensor or aborts the test.
func mustNew[T tensor.Scalar](tb testing.TB, rank, dim int, opts ...tensor.Option) *tensor.Tensor[T] {
	tb.Helper()
	tt, err := tensor.NewZeros[T](rank, dim, opts...)
	require.NoError(tb, err)

	return tt
}

// mustCounter allocates a tensor whose element at offset k is start+k.
func mustCounter[T tensor.Scalar](tb testing.TB, rank, dim int, start T) *tensor.Tensor[T] {
	tb.Helper()
	tt := mustNew[T](tb, rank, dim)
	v := start
	for k := range tt.Data() {
		tt.Data()[k] = v
		v++
	}

	return tt
}

// mustAt reads an element or aborts the test.
func mustAt[T tensor.Scalar](tb testing.TB, tt *tensor.Tensor[T], index ...int) T {
	tb.Helper()
	v, err := tt.At(index...)
	require.NoError(tb, err)

	return v
}

// nextIndex advances idx like an odometer, last axis fastest.
// It returns false once every index has been produced.
func nextIndex(idx []int, dim int) bool {
	for a := len(idx) - 1; a >= 0; a-- {
		idx[a]++
		if idx[a] < dim {
			return true
		}
		idx[a] = 0
	}

	return false
}

// allIndices lists every multi-index of a rank/dim tensor in offset order.
func allIndices(rank, dim int) [][]int {
	var out [][]int
	idx := make([]int, rank)
	for {
		out = append(out, append([]int(nil), idx...))
		if !nextIndex(idx, dim) {
			return out
		}
	}
}

// shapes is the table of (rank, dimension) pairs most property tests sweep.
var shapes = []struct{ rank, dim int }{
	{0, 1}, {0, 4}, {1, 1}, {1, 5}, {2, 3}, {3, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 2},
}
