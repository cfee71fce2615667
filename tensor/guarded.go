// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"sync"
)

// Guarded serializes access to one tensor shared between goroutines.
//
// Tensor itself has no locks: transforms only read their inputs, so distinct
// goroutines may transform disjoint (or unchanging) tensors freely. When a
// tensor is MUTATED while others read it, wrap it here. Reads take the shared
// lock, writes the exclusive one.
type Guarded[T Scalar] struct {
	mu sync.RWMutex
	t  *Tensor[T]
}

// NewGuarded wraps t. The caller hands over access: t must only be used through
// the returned Guarded from now on.
// Errors: ErrNilTensor.
func NewGuarded[T Scalar](t *Tensor[T]) (*Guarded[T], error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, tensorErrorf("NewGuarded", err)
	}

	return &Guarded[T]{t: t}, nil
}

// At reads one element under the shared lock.
func (g *Guarded[T]) At(index ...int) (T, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.t.At(index...)
}

// Set writes one element under the exclusive lock.
func (g *Guarded[T]) Set(value T, index ...int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.t.Set(value, index...)
}

// View runs fn with the shared lock held. fn must not mutate the tensor or
// retain it after returning.
func (g *Guarded[T]) View(fn func(t *Tensor[T]) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return fn(g.t)
}

// Update runs fn with the exclusive lock held.
func (g *Guarded[T]) Update(fn func(t *Tensor[T]) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return fn(g.t)
}

// Snapshot returns an independent copy taken under the shared lock.
func (g *Guarded[T]) Snapshot() (*Tensor[T], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c, err := Clone(g.t)
	if err != nil {
		return nil, fmt.Errorf("Snapshot: %w", err)
	}

	return c, nil
}
