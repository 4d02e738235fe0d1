// File: compare.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// Equality and ordering delegation. Comparisons see only the current
// slot; the next slot is invisible until swapped in.

package doublebuffer

import "cmp"

// Equal reports whether the holder's current value equals v.
func Equal[T comparable](b *DoubleBuffer[T], v T) bool {
	return b.slots[b.cur] == v
}

// EqualBuffers reports whether two holders expose equal current values.
// Neither next slot is consulted.
func EqualBuffers[T comparable](a, b *DoubleBuffer[T]) bool {
	return a.slots[a.cur] == b.slots[b.cur]
}

// Compare orders the holder's current value against v following the
// cmp.Compare convention: -1 if current < v, 0 if equal, +1 if greater.
func Compare[T cmp.Ordered](b *DoubleBuffer[T], v T) int {
	return cmp.Compare(b.slots[b.cur], v)
}

// CompareBuffers orders two holders by their current values.
func CompareBuffers[T cmp.Ordered](a, b *DoubleBuffer[T]) int {
	return cmp.Compare(a.slots[a.cur], b.slots[b.cur])
}
