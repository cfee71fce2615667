// SPDX-License-Identifier: MIT

// Package tensorio reads and writes the element buffer of a tensor.Tensor.
//
// Every codec moves exactly Size() elements in offset order and nothing else:
// rank and dimension are NOT part of the stream, so the destination of a read
// must already have the right shape. A read decodes into scratch space and
// only overwrites the destination once every element has arrived, so a short
// or malformed stream leaves the tensor untouched.
//
// Codecs:
//
//	Write / Read          raw little-endian elements; int and uint travel as 64-bit
//	Fprint / Fscan        text, one element per line; complex as "re im"
//	WriteHalf / ReadHalf  IEEE 754 binary16 for float tensors (lossy)
//
// Errors:
//
//	ErrShortWrite, ErrShortRead and ErrFormat wrap the underlying io or parse
//	error; tensor.ErrNilTensor passes through for nil or released tensors.
package tensorio
