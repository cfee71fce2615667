// SPDX-License-Identifier: MIT

package radix

import "fmt"

// MaxDigits is the capacity of a Tuple and therefore the largest rank the
// tensor engine accepts.
const MaxDigits = 64

// Tuple is a fixed-capacity digit sequence, least-significant digit first.
// The zero value is an empty tuple ready for use.
type Tuple struct {
	n int
	d [MaxDigits]int
}

// FromInts builds a Tuple holding a copy of v in the same order.
// Returns ErrCapacity when len(v) > MaxDigits.
func FromInts(v []int) (Tuple, error) {
	var t Tuple
	if len(v) > MaxDigits {
		return t, fmt.Errorf("FromInts(len=%d): %w", len(v), ErrCapacity)
	}
	t.n = copy(t.d[:], v)

	return t, nil
}

// Len returns the number of digits currently held.
func (t *Tuple) Len() int { return t.n }

// At returns digit i. It panics if i is outside [0, Len()), like a slice index.
func (t *Tuple) At(i int) int {
	if i < 0 || i >= t.n {
		panic(fmt.Sprintf("radix: Tuple.At(%d) with Len=%d", i, t.n))
	}

	return t.d[i]
}

// Set overwrites digit i. It panics if i is outside [0, Len()).
func (t *Tuple) Set(i, v int) {
	if i < 0 || i >= t.n {
		panic(fmt.Sprintf("radix: Tuple.Set(%d) with Len=%d", i, t.n))
	}
	t.d[i] = v
}

// Ints returns the digits as a freshly allocated slice (same order).
func (t *Tuple) Ints() []int {
	out := make([]int, t.n)
	copy(out, t.d[:t.n])

	return out
}

// Insert places value at position pos, shifting digits pos..Len()-1 one place
// to the right. pos == Len() appends.
// Errors: ErrCapacity if the tuple is full or pos is outside [0, Len()].
// Complexity: O(Len()).
func (t *Tuple) Insert(pos, value int) error {
	if t.n == MaxDigits {
		return fmt.Errorf("Insert(%d): %w", pos, ErrCapacity)
	}
	if pos < 0 || pos > t.n {
		return fmt.Errorf("Insert(%d) into Len=%d: %w", pos, t.n, ErrCapacity)
	}
	copy(t.d[pos+1:t.n+1], t.d[pos:t.n]) // shift tail right by one
	t.d[pos] = value
	t.n++

	return nil
}

// Swap exchanges digits i and j in place. It panics on out-of-range positions.
func (t *Tuple) Swap(i, j int) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		panic(fmt.Sprintf("radix: Tuple.Swap(%d,%d) with Len=%d", i, j, t.n))
	}
	t.d[i], t.d[j] = t.d[j], t.d[i]
}

// Reverse flips digit order in place. It converts between the codec's
// least-significant-first order and a most-significant-first multi-index.
func (t *Tuple) Reverse() {
	for i, j := 0, t.n-1; i < j; i, j = i+1, j-1 {
		t.d[i], t.d[j] = t.d[j], t.d[i]
	}
}

// String renders the digits, least significant first.
func (t *Tuple) String() string {
	return fmt.Sprint(t.d[:t.n])
}
