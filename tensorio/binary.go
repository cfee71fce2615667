// SPDX-License-Identifier: MIT

package tensorio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/katalvlaran/lvtensor/tensor"
)

const (
	ctxWrite = "Write"
	ctxRead  = "Read"
)

// byteOrder is the on-stream order of every multi-byte element.
var byteOrder = binary.LittleEndian

// kindOf reports the underlying reflect.Kind of T.
func kindOf[T tensor.Scalar]() reflect.Kind {
	return reflect.TypeFor[T]().Kind()
}

// isPlatformInt reports whether T is int, uint or a type defined on them,
// whose width depends on the platform.
func isPlatformInt[T tensor.Scalar]() bool {
	switch kindOf[T]() {
	case reflect.Int, reflect.Uint:
		return true
	default:
		return false
	}
}

// Write emits t's Size() elements in offset order as little-endian raw values.
// int and uint elements are widened to 64 bits so streams are portable.
//
// Errors: tensor.ErrNilTensor; ErrShortWrite wrapping the writer's error.
// Complexity: O(size).
func Write[T tensor.Scalar](w io.Writer, t *tensor.Tensor[T]) error {
	if err := tensor.ValidateNotNil(t); err != nil {
		return ioErrorf(ctxWrite, err)
	}

	var payload any = t.Data()
	if isPlatformInt[T]() {
		payload = widen(t.Data())
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, byteOrder, payload); err != nil {
		return ioErrorf(ctxWrite, fmt.Errorf("%w: %w", ErrShortWrite, err))
	}
	if err := bw.Flush(); err != nil {
		return ioErrorf(ctxWrite, fmt.Errorf("%w: %w", ErrShortWrite, err))
	}

	return nil
}

// Read fills t with Size() little-endian raw values from r, the exact layout
// produced by Write. t's shape must already match the stream.
//
// Errors: tensor.ErrNilTensor; ErrShortRead; ErrFormat when a 64-bit int or
// uint value does not fit the platform's int or uint. t is untouched on error.
// Complexity: O(size) time and O(size) scratch.
func Read[T tensor.Scalar](r io.Reader, t *tensor.Tensor[T]) error {
	if err := tensor.ValidateNotNil(t); err != nil {
		return ioErrorf(ctxRead, err)
	}

	scratch := make([]T, t.Size())
	if isPlatformInt[T]() {
		if err := readNarrow(r, scratch); err != nil {
			if errors.Is(err, ErrFormat) {
				return ioErrorf(ctxRead, err)
			}
			return readError(ctxRead, err)
		}
	} else if err := binary.Read(r, byteOrder, scratch); err != nil {
		return readError(ctxRead, err)
	}
	copy(t.Data(), scratch)

	return nil
}

// widen copies int or uint elements into their fixed-size 64-bit counterparts.
func widen[T tensor.Scalar](data []T) any {
	rv := reflect.ValueOf(data)
	if kindOf[T]() == reflect.Int {
		out := make([]int64, len(data))
		for i := range out {
			out[i] = rv.Index(i).Int()
		}
		return out
	}
	out := make([]uint64, len(data))
	for i := range out {
		out[i] = rv.Index(i).Uint()
	}

	return out
}

// readNarrow decodes 64-bit values into int or uint elements of dst.
// A value that does not fit the platform width yields ErrFormat.
func readNarrow[T tensor.Scalar](r io.Reader, dst []T) error {
	rv := reflect.ValueOf(dst)
	if kindOf[T]() == reflect.Int {
		wide := make([]int64, len(dst))
		if err := binary.Read(r, byteOrder, wide); err != nil {
			return err
		}
		for i, v := range wide {
			if err := storeInt(rv.Index(i), v); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		return nil
	}
	wide := make([]uint64, len(dst))
	if err := binary.Read(r, byteOrder, wide); err != nil {
		return err
	}
	for i, v := range wide {
		if err := storeUint(rv.Index(i), v); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}

// storeInt sets a signed element, refusing values its type cannot hold.
func storeInt(elem reflect.Value, v int64) error {
	if elem.OverflowInt(v) {
		return fmt.Errorf("%d overflows %s: %w", v, elem.Type(), ErrFormat)
	}
	elem.SetInt(v)

	return nil
}

// storeUint sets an unsigned element, refusing values its type cannot hold.
func storeUint(elem reflect.Value, v uint64) error {
	if elem.OverflowUint(v) {
		return fmt.Errorf("%d overflows %s: %w", v, elem.Type(), ErrFormat)
	}
	elem.SetUint(v)

	return nil
}
