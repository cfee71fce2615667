// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Elementwise arithmetic that does not depend on index topology: lock-step
//     walks over two equally shaped buffers, or one buffer and a scalar.
//   - AddDiagonal is the exception: it reuses the stride trick of Contract.
//
// Policy:
//   - Binary ops mutate the LEFT operand in place (a op= b).
//   - All validation happens before the first write: on error the left operand
//     is untouched.
//   - Complex elements are single composite scalars. Multiplication is Go's
//     native complex product (ar·br − ai·bi, ar·bi + ai·br); division uses the
//     hypot-scaled formula in quoComplex.

package tensor

import (
	"math"
	"reflect"
	"unsafe"
)

const (
	ctxAdd         = "Add"
	ctxSub         = "Sub"
	ctxMulElements = "MulElements"
	ctxDivElements = "DivElements"
	ctxScale       = "Scale"
	ctxAddConstant = "AddConstant"
	ctxAddDiagonal = "AddDiagonal"
	ctxCopyInto    = "CopyInto"
	ctxSwap        = "Swap"
	ctxIsZero      = "IsZero"
)

// Add performs a[i] += b[i].
// Errors: ErrNilTensor, ErrShapeMismatch. Complexity: O(size).
func Add[T Scalar](a, b *Tensor[T]) error {
	if err := ValidateSameShape(a, b); err != nil {
		return tensorErrorf(ctxAdd, err)
	}
	for i, v := range b.data {
		a.data[i] += v
	}

	return nil
}

// Sub performs a[i] -= b[i].
// Errors: ErrNilTensor, ErrShapeMismatch. Complexity: O(size).
func Sub[T Scalar](a, b *Tensor[T]) error {
	if err := ValidateSameShape(a, b); err != nil {
		return tensorErrorf(ctxSub, err)
	}
	for i, v := range b.data {
		a.data[i] -= v
	}

	return nil
}

// MulElements performs a[i] *= b[i] (Hadamard product).
// Errors: ErrNilTensor, ErrShapeMismatch. Complexity: O(size).
func MulElements[T Scalar](a, b *Tensor[T]) error {
	if err := ValidateSameShape(a, b); err != nil {
		return tensorErrorf(ctxMulElements, err)
	}
	for i, v := range b.data {
		a.data[i] *= v
	}

	return nil
}

// DivElements performs a[i] /= b[i].
//
// Behavior highlights:
//   - Integer types: b is scanned for zeros first; any zero yields
//     ErrDivisionByZero and a is left untouched.
//   - Floating types: IEEE semantics (±Inf, NaN), no error.
//   - Complex types: quoComplex, no error.
//
// Errors: ErrNilTensor, ErrShapeMismatch, ErrDivisionByZero. Complexity: O(size).
func DivElements[T Scalar](a, b *Tensor[T]) error {
	if err := ValidateSameShape(a, b); err != nil {
		return tensorErrorf(ctxDivElements, err)
	}

	switch kindOf[T]() {
	case reflect.Complex128:
		divComplex128(asComplex128(a.data), asComplex128(b.data))
		return nil
	case reflect.Complex64:
		divComplex64(asComplex64(a.data), asComplex64(b.data))
		return nil
	}

	if isIntegral[T]() {
		var zero T
		for _, v := range b.data {
			if v == zero {
				return tensorErrorf(ctxDivElements, ErrDivisionByZero)
			}
		}
	}
	for i, v := range b.data {
		a.data[i] /= v
	}

	return nil
}

// quoComplex returns x/y with the hypot-scaled formula
//
//	s = 1/|y|, re = (xr·s·yr + xi·s·yi)·s, im = (xi·s·yr − xr·s·yi)·s
//
// which keeps intermediate magnitudes near 1.
func quoComplex(x, y complex128) complex128 {
	xr, xi := real(x), imag(x)
	yr, yi := real(y), imag(y)

	s := 1.0 / math.Hypot(yr, yi)
	syr, syi := s*yr, s*yi

	return complex((xr*syr+xi*syi)*s, (xi*syr-xr*syi)*s)
}

// divComplex128 performs a[i] = quoComplex(a[i], b[i]).
func divComplex128(a, b []complex128) {
	for i := range a {
		a[i] = quoComplex(a[i], b[i])
	}
}

// divComplex64 performs a[i] = quoComplex(a[i], b[i]) in double precision.
func divComplex64(a, b []complex64) {
	for i := range a {
		a[i] = complex64(quoComplex(complex128(a[i]), complex128(b[i])))
	}
}

// asComplex128 reinterprets a buffer whose element kind is Complex128.
// Named complex types share the layout of complex128.
func asComplex128[T Scalar](data []T) []complex128 {
	//nolint:gosec // same element size and layout, guarded by kindOf
	return unsafe.Slice((*complex128)(unsafe.Pointer(unsafe.SliceData(data))), len(data))
}

// asComplex64 reinterprets a buffer whose element kind is Complex64.
func asComplex64[T Scalar](data []T) []complex64 {
	//nolint:gosec // same element size and layout, guarded by kindOf
	return unsafe.Slice((*complex64)(unsafe.Pointer(unsafe.SliceData(data))), len(data))
}

// Scale performs a[i] *= x. Errors: ErrNilTensor. Complexity: O(size).
func Scale[T Scalar](a *Tensor[T], x T) error {
	if err := ValidateNotNil(a); err != nil {
		return tensorErrorf(ctxScale, err)
	}
	for i := range a.data {
		a.data[i] *= x
	}

	return nil
}

// AddConstant performs a[i] += x. Errors: ErrNilTensor. Complexity: O(size).
func AddConstant[T Scalar](a *Tensor[T], x T) error {
	if err := ValidateNotNil(a); err != nil {
		return tensorErrorf(ctxAddConstant, err)
	}
	for i := range a.data {
		a.data[i] += x
	}

	return nil
}

// AddDiagonal adds x to every diagonal element a[k, k, ..., k], k in [0, dim).
//
// Implementation:
//   - Raising every digit by one adds step = Σ_{axis} dim^axis to the offset,
//     so the k-th diagonal element lives at k·step.
//   - A rank-0 tensor has no axes; its single element is its diagonal.
//
// Errors: ErrNilTensor. Complexity: O(rank + dim).
func AddDiagonal[T Scalar](a *Tensor[T], x T) error {
	if err := ValidateNotNil(a); err != nil {
		return tensorErrorf(ctxAddDiagonal, err)
	}
	if a.rank == 0 {
		a.data[0] += x
		return nil
	}

	step, place := 0, 1
	for axis := 0; axis < a.rank; axis++ {
		step += place
		if axis+1 < a.rank {
			place *= a.dimension // < size, cannot overflow
		}
	}
	for k := 0; k < a.dimension; k++ {
		a.data[k*step] += x
	}

	return nil
}

// CopyInto overwrites dst's elements with src's.
// Errors: ErrNilTensor, ErrShapeMismatch (dst untouched). Complexity: O(size).
func CopyInto[T Scalar](dst, src *Tensor[T]) error {
	if err := ValidateSameShape(dst, src); err != nil {
		return tensorErrorf(ctxCopyInto, err)
	}
	copy(dst.data, src.data)

	return nil
}

// Swap exchanges the element values of t1 and t2. Buffers stay with their
// owners, so borrowed views keep pointing at the same tensor.
// Errors: ErrNilTensor, ErrShapeMismatch. Complexity: O(size).
func Swap[T Scalar](t1, t2 *Tensor[T]) error {
	if err := ValidateSameShape(t1, t2); err != nil {
		return tensorErrorf(ctxSwap, err)
	}
	for i := range t1.data {
		t1.data[i], t2.data[i] = t2.data[i], t1.data[i]
	}

	return nil
}

// IsZero reports whether every element equals zero.
// Errors: ErrNilTensor. Complexity: O(size), stops at the first non-zero.
func IsZero[T Scalar](t *Tensor[T]) (bool, error) {
	if err := ValidateNotNil(t); err != nil {
		return false, tensorErrorf(ctxIsZero, err)
	}
	var zero T
	for _, v := range t.data {
		if v != zero {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports whether a and b are live, share rank and dimension, and hold
// identical elements. NaN never equals NaN.
func Equal[T Scalar](a, b *Tensor[T]) bool {
	if ValidateSameShape(a, b) != nil {
		return false
	}
	for i, v := range a.data {
		if v != b.data[i] {
			return false
		}
	}

	return true
}
