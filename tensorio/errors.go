// SPDX-License-Identifier: MIT

package tensorio

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrShortWrite indicates the writer failed before every element was written.
	ErrShortWrite = errors.New("tensorio: short write")

	// ErrShortRead indicates the stream ended before Size() elements were decoded.
	ErrShortRead = errors.New("tensorio: short read")

	// ErrFormat indicates a text element that could not be parsed.
	ErrFormat = errors.New("tensorio: malformed element")
)

// ioErrorf wraps err with the public operation name that detected it.
func ioErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// readError files a decoding failure under ErrShortRead. A clean io.EOF is
// reported as io.ErrUnexpectedEOF: the caller asked for a fixed element count.
func readError(op string, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}

	return ioErrorf(op, fmt.Errorf("%w: %w", ErrShortRead, err))
}
