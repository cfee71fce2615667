// SPDX-License-Identifier: MIT

package tensorio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/x448/float16"
)

const (
	ctxWriteHalf = "WriteHalf"
	ctxReadHalf  = "ReadHalf"
)

// Float is the element set the half-precision codec accepts.
type Float interface {
	~float32 | ~float64
}

// WriteHalf emits t's elements as IEEE 754 binary16 values, two bytes each,
// little-endian. Conversion rounds to nearest even; magnitudes above 65504
// become ±Inf and NaN stays NaN.
//
// Errors: tensor.ErrNilTensor; ErrShortWrite.
// Complexity: O(size) time and O(size) scratch.
func WriteHalf[T Float](w io.Writer, t *tensor.Tensor[T]) error {
	if err := tensor.ValidateNotNil(t); err != nil {
		return ioErrorf(ctxWriteHalf, err)
	}

	bits := make([]uint16, t.Size())
	for i, v := range t.Data() {
		bits[i] = float16.Fromfloat32(float32(v)).Bits()
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, byteOrder, bits); err != nil {
		return ioErrorf(ctxWriteHalf, fmt.Errorf("%w: %w", ErrShortWrite, err))
	}
	if err := bw.Flush(); err != nil {
		return ioErrorf(ctxWriteHalf, fmt.Errorf("%w: %w", ErrShortWrite, err))
	}

	return nil
}

// ReadHalf fills t from Size() binary16 values written by WriteHalf.
//
// Errors: tensor.ErrNilTensor; ErrShortRead (t untouched).
// Complexity: O(size) time and O(size) scratch.
func ReadHalf[T Float](r io.Reader, t *tensor.Tensor[T]) error {
	if err := tensor.ValidateNotNil(t); err != nil {
		return ioErrorf(ctxReadHalf, err)
	}

	bits := make([]uint16, t.Size())
	if err := binary.Read(r, byteOrder, bits); err != nil {
		return readError(ctxReadHalf, err)
	}
	data := t.Data()
	for i, b := range bits {
		data[i] = T(float16.Frombits(b).Float32())
	}

	return nil
}

// HalfExact reports whether every element of t survives WriteHalf unchanged.
// Errors: tensor.ErrNilTensor.
func HalfExact[T Float](t *tensor.Tensor[T]) (bool, error) {
	if err := tensor.ValidateNotNil(t); err != nil {
		return false, ioErrorf("HalfExact", err)
	}
	for _, v := range t.Data() {
		f32 := float32(v)
		if T(f32) != v {
			return false, nil // not even float32-representable
		}
		if float16.PrecisionFromfloat32(f32) != float16.PrecisionExact {
			return false, nil
		}
	}

	return true, nil
}
