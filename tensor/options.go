// SPDX-License-Identifier: MIT

// Package tensor: functional configuration for tensor construction.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - Policy is per tensor and travels with it: Clone and every structural
//     transform produce a result with the source's policy (OuterProduct uses
//     the left operand's).
package tensor

// DefaultRangeCheck enables bounds checking of every multi-index entry in
// At/Set/Ptr/Offset. Disable it only on hot paths with indices already known valid.
const DefaultRangeCheck = true

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	rangeCheck bool // DefaultRangeCheck
}

// WithRangeCheck turns per-entry index validation on (the default).
// Out-of-range entries then fail with ErrOutOfRange and nothing is read or written.
func WithRangeCheck() Option {
	return func(o *Options) { o.rangeCheck = true }
}

// WithoutRangeCheck turns per-entry index validation off.
//
// Behavior highlights:
//   - The index COUNT is still checked (it bounds the codec's fixed-size tuple).
//   - An entry outside [0, dimension) yields an unspecified element or a runtime
//     panic from the slice bound; it is never reported as an error.
func WithoutRangeCheck() Option {
	return func(o *Options) { o.rangeCheck = false }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{rangeCheck: DefaultRangeCheck}
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
