// File: clone.go
// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT
//
// Clone capability and the clone-swap strategy for types that carry their
// own deep-copy logic.

package doublebuffer

// Cloner is implemented by value types that provide their own deep-copy
// logic. Clone must return a copy where mutations of the copy do not
// affect the original; types holding pointers, slices, or maps must copy
// those too. Plain value types may return the receiver as-is:
//
//	func (s Stats) Clone() Stats { return s }
type Cloner[T any] interface {
	Clone() T
}

// SwapCloning copies the next slot's value into the current slot via T's
// Clone method. Like SwapCloningFunc, it performs no role flip: the next
// slot keeps its value and role, and the current slot's storage address is
// unchanged.
func SwapCloning[T Cloner[T]](b *DoubleBuffer[T]) {
	b.SwapCloningFunc(func(v T) T { return v.Clone() })
}
