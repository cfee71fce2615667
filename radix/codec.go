// SPDX-License-Identifier: MIT

package radix

import (
	"fmt"
	"math/bits"
)

// Decode splits offset into nDigits digits in the given base, least significant
// digit first: digit[0] = offset mod base, digit[1] = (offset / base) mod base, ...
//
// Contract: for any 0 <= offset < base^nDigits, Encode(base, Decode(...)) == offset.
// Offsets beyond that range are truncated to their low nDigits digits.
//
// Errors:
//   - ErrCapacity if nDigits > MaxDigits.
//   - ErrInvalidBase if base < 1, nDigits < 0 or offset < 0.
//
// Complexity: O(nDigits), no allocation.
func Decode(nDigits, base, offset int) (Tuple, error) {
	var t Tuple
	if nDigits > MaxDigits {
		return t, fmt.Errorf("Decode(nDigits=%d): %w", nDigits, ErrCapacity)
	}
	if base < 1 || nDigits < 0 || offset < 0 {
		return t, fmt.Errorf("Decode(base=%d, nDigits=%d, offset=%d): %w", base, nDigits, offset, ErrInvalidBase)
	}
	for i := 0; i < nDigits; i++ {
		t.d[i] = offset % base
		offset /= base
	}
	t.n = nDigits

	return t, nil
}

// Encode is the inverse of Decode: it returns Σ t[i]·base^i.
// Digits are trusted to lie in [0, base); the caller validates them.
// Complexity: O(t.Len()), no allocation.
func Encode(base int, t *Tuple) int {
	offset := 0
	scale := 1
	for i := 0; i < t.n; i++ {
		offset += t.d[i] * scale
		scale *= base
	}

	return offset
}

// Pow returns base^exp by repeated squaring.
// It never wraps: ErrOverflow is returned as soon as a partial product leaves
// the int range. ErrInvalidBase is returned for negative base or exponent.
// Complexity: O(log exp).
func Pow(base, exp int) (int, error) {
	if base < 0 || exp < 0 {
		return 0, fmt.Errorf("Pow(%d,%d): %w", base, exp, ErrInvalidBase)
	}
	result := 1
	b := base
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			var err error
			if result, err = MulChecked(result, b); err != nil {
				return 0, fmt.Errorf("Pow(%d,%d): %w", base, exp, ErrOverflow)
			}
		}
		if e > 1 {
			var err error
			if b, err = MulChecked(b, b); err != nil {
				return 0, fmt.Errorf("Pow(%d,%d): %w", base, exp, ErrOverflow)
			}
		}
	}

	return result, nil
}

// MulChecked multiplies two non-negative ints and reports ErrOverflow instead
// of wrapping.
func MulChecked(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("MulChecked(%d,%d): %w", a, b, ErrInvalidBase)
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > uint64(maxInt) {
		return 0, fmt.Errorf("MulChecked(%d,%d): %w", a, b, ErrOverflow)
	}

	return int(lo), nil
}

// maxInt is the largest value of int on this platform.
const maxInt = int(^uint(0) >> 1)
