// File: doublebuffer.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// Core holder: two value slots, a one-bit role selector, read/write view
// selection, and the move-swap and zero-reset strategies.

package doublebuffer

import "fmt"

// DoubleBuffer holds exactly two instances of T for its whole lifetime.
// At any point exactly one slot plays the "current" role and serves reads,
// while the other plays "next" and absorbs writes until a swap.
//
// The holder is NOT safe for uncoordinated concurrent use; callers sharing
// one holder across goroutines must supply their own mutual exclusion.
type DoubleBuffer[T any] struct {
	slots [2]T
	cur   uint8 // index of the slot playing "current"
}

// New creates a holder whose current view exposes current and whose next
// view exposes next.
func New[T any](current, next T) *DoubleBuffer[T] {
	return &DoubleBuffer[T]{slots: [2]T{current, next}}
}

// NewZero creates a holder with both slots set to the zero value of T.
func NewZero[T any]() *DoubleBuffer[T] {
	return &DoubleBuffer[T]{}
}

// Current returns the value of the slot playing "current". Side-effect
// free; writes staged through Next are not visible here until a swap.
func (b *DoubleBuffer[T]) Current() T {
	return b.slots[b.cur]
}

// CurrentPointer returns the address of the storage backing Current, for
// diagnostics and identity checks. It tracks the same slot Current reads
// from and changes exactly when a role flip (Swap, SwapZeroing) occurs;
// clone-swaps leave it unchanged. The pointee must not be mutated.
func (b *DoubleBuffer[T]) CurrentPointer() *T {
	return &b.slots[b.cur]
}

// Next returns a mutable view of the slot playing "next". All caller
// mutations land here and become readable through Current only after a
// swap. Any swap invalidates previously obtained views in role terms;
// re-acquire after swapping.
func (b *DoubleBuffer[T]) Next() *T {
	return &b.slots[b.cur^1]
}

// Swap flips which slot plays "current". No value is moved or copied, so
// the cost is O(1) regardless of the size of T. The storage address
// exposed by Current changes. Calling Swap twice restores both roles and
// values exactly.
func (b *DoubleBuffer[T]) Swap() {
	b.cur ^= 1
}

// SwapZeroing flips the roles like Swap, then resets the slot that became
// "next" to the zero value of T. Readers observe the previously staged
// value; writers start the next cycle from a known zero baseline instead
// of stale prior data.
func (b *DoubleBuffer[T]) SwapZeroing() {
	b.cur ^= 1
	var zero T
	b.slots[b.cur^1] = zero
}

// SwapCloningFunc copies the next slot's value into the current slot in
// place, using clone to produce the copy. The next slot and the role
// assignment are untouched, and the storage address exposed by Current
// does not change, so holders of CurrentPointer observe the update
// without invalidation. clone must return a copy that is independent of
// its argument. Cost is proportional to the clone, never O(1).
//
// For value types implementing Cloner, SwapCloning avoids the explicit
// func argument.
func (b *DoubleBuffer[T]) SwapCloningFunc(clone func(T) T) {
	b.slots[b.cur] = clone(b.slots[b.cur^1])
}

// String renders both slots in logical role order, current first,
// independent of which physical slot backs each role.
func (b *DoubleBuffer[T]) String() string {
	return fmt.Sprintf("DoubleBuffer { current: %v, next: %v }", b.slots[b.cur], b.slots[b.cur^1])
}
