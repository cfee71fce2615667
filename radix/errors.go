// SPDX-License-Identifier: MIT

package radix

import "errors"

// Sentinel errors for the radix codec. Match them with errors.Is.
var (
	// ErrOverflow is returned when an integer power or product does not fit in int.
	ErrOverflow = errors.New("radix: integer overflow")

	// ErrCapacity is returned when a Tuple would exceed MaxDigits entries or an
	// insert position lies past the current length.
	ErrCapacity = errors.New("radix: tuple capacity exceeded")

	// ErrInvalidBase is returned for base < 1 or for negative digit counts/offsets.
	ErrInvalidBase = errors.New("radix: invalid base or operand")
)
