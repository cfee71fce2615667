// SPDX-License-Identifier: MIT

package radix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtensor/radix"
	"github.com/stretchr/testify/require"
)

// TestDecodeLeastSignificantFirst pins the digit order of the codec.
func TestDecodeLeastSignificantFirst(t *testing.T) {
	d, err := radix.Decode(3, 10, 123)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 1}, d.Ints()) // 123 = 3·1 + 2·10 + 1·100
}

// TestCodecBijection checks Encode∘Decode == id over the full range for several bases.
func TestCodecBijection(t *testing.T) {
	t.Parallel()
	cases := []struct{ n, base int }{
		{0, 5}, {1, 1}, {1, 7}, {3, 2}, {4, 3}, {5, 4},
	}
	for _, tc := range cases {
		size, err := radix.Pow(tc.base, tc.n)
		require.NoError(t, err)
		seen := make(map[[radix.MaxDigits]int]bool, size)
		for off := 0; off < size; off++ {
			d, err := radix.Decode(tc.n, tc.base, off)
			require.NoError(t, err)
			require.Equal(t, off, radix.Encode(tc.base, &d), "n=%d base=%d off=%d", tc.n, tc.base, off)

			var key [radix.MaxDigits]int
			copy(key[:], d.Ints())
			require.False(t, seen[key], "duplicate digits for offset %d", off)
			seen[key] = true
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := radix.Decode(radix.MaxDigits+1, 2, 0)
	require.ErrorIs(t, err, radix.ErrCapacity)

	_, err = radix.Decode(2, 0, 0)
	require.ErrorIs(t, err, radix.ErrInvalidBase)

	_, err = radix.Decode(2, 3, -1)
	require.ErrorIs(t, err, radix.ErrInvalidBase)
}

func TestInsertShiftsRight(t *testing.T) {
	d, err := radix.FromInts([]int{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, d.Insert(1, 9))
	require.Equal(t, []int{1, 9, 2, 3}, d.Ints())

	require.NoError(t, d.Insert(4, 7)) // append
	require.Equal(t, []int{1, 9, 2, 3, 7}, d.Ints())

	require.NoError(t, d.Insert(0, 0))
	require.Equal(t, []int{0, 1, 9, 2, 3, 7}, d.Ints())

	require.ErrorIs(t, d.Insert(8, 1), radix.ErrCapacity)
	require.ErrorIs(t, d.Insert(-1, 1), radix.ErrCapacity)
}

func TestInsertFullTuple(t *testing.T) {
	d, err := radix.FromInts(make([]int, radix.MaxDigits))
	require.NoError(t, err)
	require.ErrorIs(t, d.Insert(0, 1), radix.ErrCapacity)

	_, err = radix.FromInts(make([]int, radix.MaxDigits+1))
	require.ErrorIs(t, err, radix.ErrCapacity)
}

func TestSwapAndReverse(t *testing.T) {
	d, err := radix.FromInts([]int{4, 5, 6, 7})
	require.NoError(t, err)

	d.Swap(0, 3)
	require.Equal(t, []int{7, 5, 6, 4}, d.Ints())

	d.Reverse()
	require.Equal(t, []int{4, 6, 5, 7}, d.Ints())

	require.Panics(t, func() { d.Swap(0, 4) })
	require.Panics(t, func() { _ = d.At(-1) })
}

func TestPow(t *testing.T) {
	cases := []struct{ base, exp, want int }{
		{0, 0, 1}, {1, 0, 1}, {7, 0, 1}, {0, 3, 0}, {2, 10, 1024}, {3, 5, 243}, {1, 1 << 20, 1}, {10, 18, 1e18},
	}
	for _, tc := range cases {
		got, err := radix.Pow(tc.base, tc.exp)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%d^%d", tc.base, tc.exp)
	}
}

// TestPowOverflowFailsLoudly ensures large powers error out rather than wrap.
func TestPowOverflowFailsLoudly(t *testing.T) {
	_, err := radix.Pow(2, 64)
	require.ErrorIs(t, err, radix.ErrOverflow)

	_, err = radix.Pow(10, 19)
	require.ErrorIs(t, err, radix.ErrOverflow)

	_, err = radix.Pow(-2, 3)
	require.ErrorIs(t, err, radix.ErrInvalidBase)
}

func TestMulChecked(t *testing.T) {
	got, err := radix.MulChecked(1<<20, 1<<20)
	require.NoError(t, err)
	require.Equal(t, 1<<40, got)

	_, err = radix.MulChecked(math.MaxInt, 2)
	require.ErrorIs(t, err, radix.ErrOverflow)
}
