// SPDX-License-Identifier: MIT

// Package radix implements the mixed-radix codec used by the tensor engine.
//
// What & Why:
//
//	A tensor of rank R over dimension D stores D^R elements in one flat buffer.
//	Converting between a flat offset and a tuple of R digits in base D is a base
//	change, and every structural transform (axis swap, contraction) is expressed
//	as "decode, edit the digits, encode".
//
// Convention:
//
//	This package uses exactly ONE digit order: least-significant digit first.
//	Digit 0 has place value 1, digit i has place value base^i. Callers that expose
//	a most-significant-first multi-index (package tensor does) must reverse axis
//	numbering at their boundary; see Tuple.Reverse and tensor.Offset.
//
// Storage:
//
//	Tuple is a fixed-capacity value (MaxDigits entries) so no caller-allocated
//	scratch slices are ever passed around. Capacity violations are reported with
//	ErrCapacity instead of writing past the end.
//
// Complexity:
//
//	Decode/Encode: O(nDigits). Insert: O(Len). Swap: O(1). Pow: O(log exp).
package radix
