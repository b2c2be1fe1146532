// Package arena provides contiguous, id-indexed storage for trie nodes.
//
// Nodes are appended to a growable slice and referenced by stable int32
// ids; identifiers are never reused while a node is live, and a free list
// lets a deletion-heavy workload reclaim slots instead of growing the
// slice without bound. Callers must not cache a pointer returned by Get
// across a call to Alloc: growing the backing slice may relocate it, and
// only the most recent Get reflects the current location.
package arena

import "golang.org/x/exp/constraints"

// FreeList is a LIFO stack of reclaimed identifiers, generic over any
// integer id type.
type FreeList[T constraints.Integer] struct {
	ids []T
}

// Push returns id to the pool of reusable identifiers.
func (f *FreeList[T]) Push(id T) {
	f.ids = append(f.ids, id)
}

// Pop removes and returns the most recently freed identifier, if any.
func (f *FreeList[T]) Pop() (T, bool) {
	var zero T
	if len(f.ids) == 0 {
		return zero, false
	}
	id := f.ids[len(f.ids)-1]
	f.ids = f.ids[:len(f.ids)-1]
	return id, true
}

// Len reports how many identifiers are currently reclaimable.
func (f *FreeList[T]) Len() int {
	return len(f.ids)
}

// Arena is a contiguous, growable store of T indexed by int32 id.
type Arena[T any] struct {
	slots []T
	alive []bool
	free  FreeList[int32]
}

// New returns an empty arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// NewWithCapacity returns an empty arena pre-sized to hold n nodes without
// reallocating.
func NewWithCapacity[T any](n int) *Arena[T] {
	if n < 0 {
		n = 0
	}
	return &Arena[T]{
		slots: make([]T, 0, n),
		alive: make([]bool, 0, n),
	}
}

// Alloc reserves a slot, reusing a freed id when one is available, and
// returns its identifier. The slot's value is the zero value of T.
func (a *Arena[T]) Alloc() int32 {
	if id, ok := a.free.Pop(); ok {
		var zero T
		a.slots[id] = zero
		a.alive[id] = true
		return id
	}
	var zero T
	a.slots = append(a.slots, zero)
	a.alive = append(a.alive, true)
	return int32(len(a.slots) - 1)
}

// Free releases id back to the pool; its slot is zeroed so stale
// references cannot observe prior content.
func (a *Arena[T]) Free(id int32) {
	var zero T
	a.slots[id] = zero
	a.alive[id] = false
	a.free.Push(id)
}

// Get returns a pointer to the slot for id. The pointer is valid only
// until the next call to Alloc.
func (a *Arena[T]) Get(id int32) *T {
	return &a.slots[id]
}

// Alive reports whether id currently refers to a live (non-freed) slot.
func (a *Arena[T]) Alive(id int32) bool {
	return a.alive[id]
}

// Len returns the number of slots ever allocated, live or freed.
func (a *Arena[T]) Len() int {
	return len(a.slots)
}

// LiveCount returns the number of currently live (non-freed) slots.
func (a *Arena[T]) LiveCount() int {
	return len(a.slots) - a.free.Len()
}
