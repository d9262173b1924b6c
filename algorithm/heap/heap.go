// Package heap implements the binary-heap algorithms over any random-access
// range: IsHeap, PushHeap, PopHeap, MakeHeap and SortHeap.
//
// A range of length n is read as a binary tree stored in level order: the
// node at index i has children at 2i+1 and 2i+2 and parent at (i-1)/2. Under
// an ascending comparator (Ordered) the algorithms maintain a max-heap, the
// convention of the classic library heaps; Reverse flips the orientation to
// a min-heap. Ranges of length 0 or 1 are always valid heaps and every
// mutating operation on them is a no-op.
//
// The mutating algorithms trust their preconditions: calling PushHeap or
// PopHeap on a range that is not a heap (less its last element, for PushHeap)
// silently produces garbage ordering. The priority queue adapter is the
// caller responsible for upholding them; nothing here checks or reports.
package heap

import "cmp"

// Comparator reports the relative order of a and b: negative when a orders
// before b, zero when they are equivalent, positive when a orders after b.
// It must be a strict weak ordering. An element that orders later has the
// higher priority.
type Comparator[T any] func(a, b T) int

// Ordered is the stock ascending comparator for ordered element types; used
// as the heap comparator it yields a max-heap.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse flips a comparator, turning a max-heap ordering into a min-heap
// ordering and vice versa.
func Reverse[T any](comparator Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return comparator(b, a)
	}
}

// Range is the random-access capability the algorithms operate through. Any
// indexable sequence qualifies; none of the algorithms see anything else of
// the container they are rearranging.
type Range[T any] interface {
	Len() int
	Get(index int) T
	Swap(i, j int)
}

// Slice adapts a plain slice to Range.
type Slice[T any] []T

func (me Slice[T]) Len() int {
	return len(me)
}

func (me Slice[T]) Get(index int) T {
	return me[index]
}

func (me Slice[T]) Swap(i, j int) {
	me[i], me[j] = me[j], me[i]
}

type subRange[T any] struct {
	of    Range[T]
	first int
	last  int
}

// Sub views the half-open index window [first, last) of a range as a range
// of its own. The window must lie within [0, of.Len()].
func Sub[T any](of Range[T], first, last int) Range[T] {
	return subRange[T]{of: of, first: first, last: last}
}

func (me subRange[T]) Len() int {
	return me.last - me.first
}

func (me subRange[T]) Get(index int) T {
	return me.of.Get(me.first + index)
}

func (me subRange[T]) Swap(i, j int) {
	me.of.Swap(me.first+i, me.first+j)
}

// IsHeap reports whether r satisfies the heap property under comparator:
// no parent orders before either of its children.
func IsHeap[T any](r Range[T], comparator Comparator[T]) bool {
	n := r.Len()
	for index := 1; index < n; index++ {
		if comparator(r.Get((index-1)/2), r.Get(index)) < 0 {
			return false
		}
	}
	return true
}

// PushHeap restores the heap property after exactly one element has been
// appended at the end of an otherwise valid heap, sifting the new element up
// toward the root. O(log n).
func PushHeap[T any](r Range[T], comparator Comparator[T]) {
	n := r.Len()
	if n <= 1 {
		return
	}

	child := n - 1
	for child > 0 {
		parent := (child - 1) / 2
		if comparator(r.Get(parent), r.Get(child)) >= 0 {
			break
		}
		r.Swap(parent, child)
		child = parent
	}
}

// PopHeap swaps the root with the last element, then restores the heap
// property on [0, n-1) by sifting the new root down. The highest-priority
// element ends up in the last slot; physically removing it is the caller's
// business. O(log n).
func PopHeap[T any](r Range[T], comparator Comparator[T]) {
	n := r.Len()
	if n <= 1 {
		return
	}
	r.Swap(0, n-1)
	siftDown(r, comparator, n-1, 0)
}

// MakeHeap rearranges an arbitrary range into a heap by sifting down every
// internal node, last-first. Bottom-up heapify is O(n).
func MakeHeap[T any](r Range[T], comparator Comparator[T]) {
	n := r.Len()
	for start := n/2 - 1; start >= 0; start-- {
		siftDown(r, comparator, n, start)
	}
}

// SortHeap turns a valid heap into a fully sorted range (ascending under
// comparator) by repeatedly popping into a shrinking logical end. The heap
// property is destroyed in the process. O(n log n).
func SortHeap[T any](r Range[T], comparator Comparator[T]) {
	for n := r.Len(); n > 1; n-- {
		r.Swap(0, n-1)
		siftDown(r, comparator, n-1, 0)
	}
}

// siftDown repairs the subtree rooted at start, within the first n elements
// of r, by walking the root down while a child orders after it.
func siftDown[T any](r Range[T], comparator Comparator[T], n, start int) {
	node := start
	for {
		largest := node
		left, right := 2*node+1, 2*node+2
		if left < n && comparator(r.Get(largest), r.Get(left)) < 0 {
			largest = left
		}
		if right < n && comparator(r.Get(largest), r.Get(right)) < 0 {
			largest = right
		}
		if largest == node {
			return
		}
		r.Swap(node, largest)
		node = largest
	}
}
