// SPDX-License-Identifier: MIT

package tensor

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// MapParallel applies fn to every input on a bounded pool of goroutines and
// returns the results in input order.
//
// Contract:
//   - fn must only READ its input and return a freshly allocated tensor; every
//     transform in this package qualifies. Inputs may repeat (reads are safe) but
//     must not be mutated by anyone while MapParallel runs.
//   - limit <= 0 means one goroutine per input.
//   - The first error (or ctx cancellation) stops scheduling of remaining inputs
//     and is returned; no partial result slice is returned. A cancellation that
//     arrives after every job finished does not discard the results.
//
// Complexity: Σ cost(fn) spread over min(limit, len(inputs)) goroutines.
func MapParallel[T, U Scalar](
	ctx context.Context,
	inputs []*Tensor[T],
	limit int,
	fn func(*Tensor[T]) (*Tensor[U], error),
) ([]*Tensor[U], error) {
	if fn == nil {
		return nil, tensorErrorf("MapParallel", fmt.Errorf("nil fn: %w", ErrInvalidArgument))
	}
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	out := make([]*Tensor[U], len(inputs))
	for i, in := range inputs {
		if gctx.Err() != nil {
			break // a previous job failed; stop feeding the pool
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := fn(in)
			if err != nil {
				return fmt.Errorf("MapParallel[%d]: %w", i, err)
			}
			out[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, r := range out {
		if r == nil {
			if err := ctx.Err(); err != nil {
				return nil, err // cancelled before every job ran
			}
			break
		}
	}

	return out, nil
}
