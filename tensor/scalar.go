// SPDX-License-Identifier: MIT

package tensor

import "reflect"

// Scalar is the set of element types a Tensor can hold. One generic
// implementation serves every instantiation.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Real is the ordered subset of Scalar; extremum searches require it.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// kindOf reports the underlying reflect.Kind of T (named types resolve to their base kind).
func kindOf[T Scalar]() reflect.Kind {
	var zero T

	return reflect.TypeOf(zero).Kind()
}

// isIntegral reports whether T is a signed or unsigned integer type.
func isIntegral[T Scalar]() bool {
	switch kindOf[T]() {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	default:
		return true
	}
}
