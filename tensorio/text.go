// SPDX-License-Identifier: MIT

package tensorio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/katalvlaran/lvtensor/tensor"
)

const (
	ctxFprint = "Fprint"
	ctxFscan  = "Fscan"
)

// DefaultFormat is the verb Fprint uses when format is empty. %v round-trips
// floats exactly through Fscan.
const DefaultFormat = "%v"

// Fprint writes t's elements in offset order, one per line, each formatted
// with format (a single fmt verb such as "%g" or "%.6e"). A complex element is
// written as its real and imaginary parts, each formatted with format and
// separated by one space.
//
// Errors: tensor.ErrNilTensor; ErrShortWrite wrapping the writer's error.
// Complexity: O(size).
func Fprint[T tensor.Scalar](w io.Writer, t *tensor.Tensor[T], format string) error {
	if err := tensor.ValidateNotNil(t); err != nil {
		return ioErrorf(ctxFprint, err)
	}
	if format == "" {
		format = DefaultFormat
	}

	bw := bufio.NewWriter(w)
	isComplex := isComplexKind[T]()
	for _, v := range t.Data() {
		var err error
		if isComplex {
			c := reflect.ValueOf(v).Complex()
			_, err = fmt.Fprintf(bw, format+" "+format+"\n", real(c), imag(c))
		} else {
			_, err = fmt.Fprintf(bw, format+"\n", v)
		}
		if err != nil {
			return ioErrorf(ctxFprint, fmt.Errorf("%w: %w", ErrShortWrite, err))
		}
	}
	if err := bw.Flush(); err != nil {
		return ioErrorf(ctxFprint, fmt.Errorf("%w: %w", ErrShortWrite, err))
	}

	return nil
}

// scanReader lets fmt.Fscan push back the rune that ends a token.
type scanReader interface {
	io.Reader
	io.RuneScanner
}

// Fscan reads Size() whitespace-separated elements into t in offset order,
// the layout produced by Fprint. A complex element is read as two numbers,
// real part then imaginary part.
//
// r is buffered internally unless it already implements io.RuneScanner, so
// input past the last element may be consumed.
//
// Errors: tensor.ErrNilTensor; ErrShortRead when the input ends early;
// ErrFormat for an unparsable token. t is untouched on error.
// Complexity: O(size) time and O(size) scratch.
func Fscan[T tensor.Scalar](r io.Reader, t *tensor.Tensor[T]) error {
	if err := tensor.ValidateNotNil(t); err != nil {
		return ioErrorf(ctxFscan, err)
	}
	sr, ok := r.(scanReader)
	if !ok {
		sr = bufio.NewReader(r)
	}

	scratch := make([]T, t.Size())
	isComplex := isComplexKind[T]()
	for i := range scratch {
		var err error
		if isComplex {
			var re, im float64
			if _, err = fmt.Fscan(sr, &re, &im); err == nil {
				reflect.ValueOf(&scratch[i]).Elem().SetComplex(complex(re, im))
			}
		} else {
			_, err = fmt.Fscan(sr, &scratch[i])
		}
		if err != nil {
			return scanError(i, err)
		}
	}
	copy(t.Data(), scratch)

	return nil
}

// scanError separates a truncated input from a malformed token.
func scanError(element int, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ioErrorf(ctxFscan, fmt.Errorf("element %d: %w: %w", element, ErrShortRead, io.ErrUnexpectedEOF))
	}

	return ioErrorf(ctxFscan, fmt.Errorf("element %d: %w: %w", element, ErrFormat, err))
}

func isComplexKind[T tensor.Scalar]() bool {
	k := kindOf[T]()

	return k == reflect.Complex64 || k == reflect.Complex128
}
