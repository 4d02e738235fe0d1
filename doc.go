// Package doublebuffer
// Author: momentics <momentics@gmail.com>
//
// Generic two-slot double buffer for staged state transitions.
// One slot plays the "current" role and serves all reads; the other plays
// "next" and absorbs writes. An explicit swap commits the staged state as a
// single discrete transition. Three swap strategies are provided: Swap
// (O(1) role flip), SwapCloning/SwapCloningFunc (copy next into current in
// place, keeping the current slot's address stable), and SwapZeroing (role
// flip plus reset of the new next slot to the zero value).
// Not a concurrency primitive: holders carry no internal synchronization.
// See doublebuffer.go, clone.go, compare.go for implementation details.
package doublebuffer
