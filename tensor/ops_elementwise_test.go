// SPDX-License-Identifier: MIT
// Package tensor_test contains unit tests for elementwise arithmetic.
package tensor_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/stretchr/testify/require"
)

// TestAddSub checks the in-place binary ops and that b is never modified.
func TestAddSub(t *testing.T) {
	a := mustCounter[int](t, 2, 2, 1)
	b := mustCounter[int](t, 2, 2, 10)

	require.NoError(t, tensor.Add(a, b))
	require.Equal(t, []int{11, 13, 15, 17}, a.Data())
	require.Equal(t, []int{10, 11, 12, 13}, b.Data())

	require.NoError(t, tensor.Sub(a, b))
	require.Equal(t, []int{1, 2, 3, 4}, a.Data())
}

// TestBinaryOpsShapeMismatch ensures the left operand is untouched on mismatch.
func TestBinaryOpsShapeMismatch(t *testing.T) {
	ops := map[string]func(a, b *tensor.Tensor[float64]) error{
		"Add":         tensor.Add[float64],
		"Sub":         tensor.Sub[float64],
		"MulElements": tensor.MulElements[float64],
		"DivElements": tensor.DivElements[float64],
		"CopyInto":    tensor.CopyInto[float64],
		"Swap":        tensor.Swap[float64],
	}
	a := mustCounter[float64](t, 2, 3, 1)
	before := append([]float64(nil), a.Data()...)

	for name, op := range ops {
		err := op(a, mustCounter[float64](t, 3, 3, 1))
		require.ErrorIs(t, err, tensor.ErrShapeMismatch, name)
		err = op(a, mustCounter[float64](t, 2, 2, 1))
		require.ErrorIs(t, err, tensor.ErrShapeMismatch, name)
		err = op(a, nil)
		require.ErrorIs(t, err, tensor.ErrNilTensor, name)
		require.Equal(t, before, a.Data(), name)
	}
}

// TestMulDivReal checks the Hadamard product and float division semantics.
func TestMulDivReal(t *testing.T) {
	a := mustCounter[float64](t, 1, 3, 1) // 1 2 3
	b := mustCounter[float64](t, 1, 3, 2) // 2 3 4

	require.NoError(t, tensor.MulElements(a, b))
	require.Equal(t, []float64{2, 6, 12}, a.Data())

	require.NoError(t, tensor.DivElements(a, b))
	require.Equal(t, []float64{1, 2, 3}, a.Data())

	require.NoError(t, b.Zero())
	require.NoError(t, tensor.DivElements(a, b)) // IEEE: no error
	require.True(t, math.IsInf(a.Data()[0], 1))
}

// TestIntegerDivisionByZero ensures a zero divisor is reported before any write.
func TestIntegerDivisionByZero(t *testing.T) {
	a := mustCounter[int32](t, 1, 4, 10)
	b := mustCounter[int32](t, 1, 4, 1)
	require.NoError(t, b.Set(0, 3))

	err := tensor.DivElements(a, b)
	require.ErrorIs(t, err, tensor.ErrDivisionByZero)
	require.Equal(t, []int32{10, 11, 12, 13}, a.Data())

	require.NoError(t, b.Set(2, 3))
	require.NoError(t, tensor.DivElements(a, b))
	require.Equal(t, []int32{10, 5, 4, 6}, a.Data())
}

// TestComplexArithmetic checks product and quotient on composite scalars.
func TestComplexArithmetic(t *testing.T) {
	a := mustNew[complex128](t, 1, 2)
	b := mustNew[complex128](t, 1, 2)
	copy(a.Data(), []complex128{complex(1, 2), complex(3, -1)})
	copy(b.Data(), []complex128{complex(3, 4), complex(0, 2)})

	require.NoError(t, tensor.MulElements(a, b))
	require.Equal(t, []complex128{complex(-5, 10), complex(2, 6)}, a.Data())

	require.NoError(t, tensor.DivElements(a, b))
	require.InDelta(t, 0, cmplx.Abs(a.Data()[0]-complex(1, 2)), 1e-12)
	require.InDelta(t, 0, cmplx.Abs(a.Data()[1]-complex(3, -1)), 1e-12)
}

// TestComplexDivisionLargeMagnitude checks the scaled quotient avoids overflow
// where the textbook formula would square a huge denominator.
func TestComplexDivisionLargeMagnitude(t *testing.T) {
	a := mustNew[complex128](t, 0, 1)
	b := mustNew[complex128](t, 0, 1)
	require.NoError(t, a.Set(complex(1e300, 1e300)))
	require.NoError(t, b.Set(complex(1e300, 1e300)))

	require.NoError(t, tensor.DivElements(a, b))
	got := mustAt(t, a)
	require.InDelta(t, 1, real(got), 1e-12)
	require.InDelta(t, 0, imag(got), 1e-12)
}

// TestComplex64Division covers the single-precision path.
func TestComplex64Division(t *testing.T) {
	a := mustNew[complex64](t, 1, 1)
	b := mustNew[complex64](t, 1, 1)
	require.NoError(t, a.Set(complex(4, 2), 0))
	require.NoError(t, b.Set(complex(0, 2), 0))

	require.NoError(t, tensor.DivElements(a, b))
	got := mustAt(t, a, 0)
	require.InDelta(t, 1, real(got), 1e-6)
	require.InDelta(t, -2, imag(got), 1e-6)
}

// TestScaleAndAddConstant checks the scalar broadcast ops.
func TestScaleAndAddConstant(t *testing.T) {
	a := mustCounter[float64](t, 2, 2, 0)
	require.NoError(t, tensor.Scale(a, 2))
	require.Equal(t, []float64{0, 2, 4, 6}, a.Data())

	require.NoError(t, tensor.AddConstant(a, -1))
	require.Equal(t, []float64{-1, 1, 3, 5}, a.Data())

	require.ErrorIs(t, tensor.Scale[float64](nil, 2), tensor.ErrNilTensor)
	require.ErrorIs(t, tensor.AddConstant[float64](nil, 2), tensor.ErrNilTensor)
}

// TestAddDiagonal checks that exactly the k,k,...,k elements change.
func TestAddDiagonal(t *testing.T) {
	for _, s := range shapes {
		tt := mustNew[int](t, s.rank, s.dim)
		require.NoError(t, tensor.AddDiagonal(tt, 3))

		for _, idx := range allIndices(s.rank, s.dim) {
			diag := true
			for _, v := range idx {
				if v != idx[0] {
					diag = false
				}
			}
			want := 0
			if diag {
				want = 3
			}
			require.Equal(t, want, mustAt(t, tt, idx...), "rank=%d dim=%d idx=%v", s.rank, s.dim, idx)
		}
	}
}

// TestIdentity checks the rank-2 identity and its trace.
func TestIdentity(t *testing.T) {
	id, err := tensor.Identity[float64](3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, id.Data())

	tr, err := tensor.Trace(id)
	require.NoError(t, err)
	require.Equal(t, 3.0, tr)

	_, err = tensor.Identity[float64](0)
	require.ErrorIs(t, err, tensor.ErrInvalidDimension)
}

// TestCopyIntoAndSwap checks value transfer between equally shaped tensors.
func TestCopyIntoAndSwap(t *testing.T) {
	a := mustCounter[uint16](t, 1, 3, 1)
	b := mustCounter[uint16](t, 1, 3, 7)

	dataA := a.Data()
	require.NoError(t, tensor.Swap(a, b))
	require.Equal(t, []uint16{7, 8, 9}, a.Data())
	require.Equal(t, []uint16{1, 2, 3}, b.Data())
	require.Equal(t, []uint16{7, 8, 9}, dataA) // buffers stay with their owners

	require.NoError(t, tensor.CopyInto(a, b))
	require.True(t, tensor.Equal(a, b))

	require.NoError(t, b.Set(0, 0))
	require.Equal(t, uint16(1), mustAt(t, a, 0)) // deep copy
}

// TestIsZeroAndEqual checks the predicates.
func TestIsZeroAndEqual(t *testing.T) {
	a := mustNew[float64](t, 2, 2)
	ok, err := tensor.IsZero(a)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, a.Set(1e-300, 1, 1))
	ok, err = tensor.IsZero(a)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = tensor.IsZero[float64](nil)
	require.ErrorIs(t, err, tensor.ErrNilTensor)

	b, err := tensor.Clone(a)
	require.NoError(t, err)
	require.True(t, tensor.Equal(a, b))
	require.False(t, tensor.Equal(a, mustNew[float64](t, 1, 4)))
	require.False(t, tensor.Equal(a, nil))

	require.NoError(t, b.Set(math.NaN(), 0, 0))
	require.NoError(t, a.Set(math.NaN(), 0, 0))
	require.False(t, tensor.Equal(a, b))
}
