// Package priorityqueue adapts a random-access sequence and a comparator
// into a priority queue, keeping the sequence heap-ordered between calls so
// that index 0 is always the highest-priority element.
package priorityqueue

import (
	"github.com/pkg/errors"

	"github.com/navijation/njcontainers/algorithm/heap"
	"github.com/navijation/njcontainers/container/vector"
)

var ErrEmpty = errors.New("priority queue is empty")

// Backing is what the adapter needs from its underlying sequence: the heap
// algorithms' random-access contract plus growth and shrinkage at the end.
// Any contiguous or random-access container qualifies; *vector.Vector is the
// default.
type Backing[T any] interface {
	heap.Range[T]
	PushBack(value T)
	PopBack() (T, error)
}

type PriorityQueue[T any] struct {
	backing    Backing[T]
	comparator heap.Comparator[T]
}

// New builds a vector-backed priority queue over items. The comparator fixes
// the orientation: an ascending comparator (heap.Ordered) pops the largest
// element first, heap.Reverse of it the smallest.
func New[T any](comparator heap.Comparator[T], items ...T) PriorityQueue[T] {
	backing := vector.New(items...)
	return FromBacking[T](comparator, &backing)
}

// FromBacking adopts an existing sequence as the queue's storage and
// heap-orders it in place with a single MakeHeap pass, O(n). The queue owns
// the sequence afterwards; the caller must not mutate it directly.
func FromBacking[T any](comparator heap.Comparator[T], backing Backing[T]) PriorityQueue[T] {
	heap.MakeHeap[T](backing, comparator)
	return PriorityQueue[T]{
		backing:    backing,
		comparator: comparator,
	}
}

func (me *PriorityQueue[T]) Size() int {
	return me.backing.Len()
}

func (me *PriorityQueue[T]) Empty() bool {
	return me.backing.Len() == 0
}

// Top returns the highest-priority element without removing it, or ErrEmpty.
func (me *PriorityQueue[T]) Top() (out T, _ error) {
	if me.backing.Len() == 0 {
		return out, errors.Wrap(ErrEmpty, "top")
	}
	return me.backing.Get(0), nil
}

// Push appends value to the backing sequence and sifts it into place.
func (me *PriorityQueue[T]) Push(value T) {
	me.backing.PushBack(value)
	heap.PushHeap[T](me.backing, me.comparator)
}

// Pop removes and returns the highest-priority element, or returns ErrEmpty
// with the queue untouched.
func (me *PriorityQueue[T]) Pop() (out T, _ error) {
	if me.backing.Len() == 0 {
		return out, errors.Wrap(ErrEmpty, "pop")
	}
	heap.PopHeap[T](me.backing, me.comparator)
	return me.backing.PopBack()
}

// Clear removes every element, keeping the backing sequence's capacity.
func (me *PriorityQueue[T]) Clear() {
	for me.backing.Len() > 0 {
		_, _ = me.backing.PopBack()
	}
}

// SwapWith exchanges contents and comparators with other in O(1).
func (me *PriorityQueue[T]) SwapWith(other *PriorityQueue[T]) {
	me.backing, other.backing = other.backing, me.backing
	me.comparator, other.comparator = other.comparator, me.comparator
}
