package vector

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/navijation/njcontainers/util"
)

var (
	ErrOutOfRange = errors.New("index is out of range")
	ErrEmpty      = errors.New("vector is empty")
	ErrBadRange   = errors.New("range is invalid")
)

const growthRate = 2

// Vector is a growable contiguous sequence that keeps its allocated capacity
// separate from its live size. The buffer always has exactly `capacity` slots;
// slots [0, size) hold live values and slots [size, capacity) hold zero values.
// A slot that stops being live is zeroed immediately so that any references it
// held are released exactly once.
//
// A Vector is not safe for concurrent mutation; callers serialize access.
type Vector[T any] struct {
	buf  []T
	size int

	// stamp is bumped by every operation that relocates the buffer or shifts
	// live elements, so outstanding iterators can detect that their positions
	// no longer mean what they did. See Iterator.
	stamp uint64
}

func New[T any](items ...T) Vector[T] {
	out := Vector[T]{}
	if len(items) > 0 {
		out.buf = make([]T, len(items))
		out.size = copy(out.buf, items)
	}
	return out
}

func WithCapacity[T any](capacity int) Vector[T] {
	out := Vector[T]{}
	if capacity > 0 {
		out.buf = make([]T, capacity)
	}
	return out
}

func (me *Vector[T]) Size() int {
	return me.size
}

// Len is an alias of Size satisfying the random-access range contract of
// the heap algorithms.
func (me *Vector[T]) Len() int {
	return me.size
}

func (me *Vector[T]) Capacity() int {
	return len(me.buf)
}

func (me *Vector[T]) Empty() bool {
	return me.size == 0
}

// At returns the element at index, or ErrOutOfRange when index is outside
// [0, size).
func (me *Vector[T]) At(index int) (out T, _ error) {
	if index < 0 || index >= me.size {
		return out, errors.Wrapf(ErrOutOfRange, "at %d, size %d", index, me.size)
	}
	return me.buf[index], nil
}

// Get is the unchecked counterpart of At; it panics when index is outside the
// live window, like indexing a plain slice.
func (me *Vector[T]) Get(index int) T {
	return me.buf[:me.size][index]
}

func (me *Vector[T]) Set(index int, value T) error {
	if index < 0 || index >= me.size {
		return errors.Wrapf(ErrOutOfRange, "set %d, size %d", index, me.size)
	}
	me.buf[index] = value
	return nil
}

// Swap exchanges two live elements. Like Get, it is unchecked.
func (me *Vector[T]) Swap(i, j int) {
	live := me.buf[:me.size]
	live[i], live[j] = live[j], live[i]
}

func (me *Vector[T]) Front() (out T, _ error) {
	if me.size == 0 {
		return out, errors.Wrap(ErrEmpty, "front")
	}
	return me.buf[0], nil
}

func (me *Vector[T]) Back() (out T, _ error) {
	if me.size == 0 {
		return out, errors.Wrap(ErrEmpty, "back")
	}
	return me.buf[me.size-1], nil
}

// Data returns the live window of the underlying buffer. The returned slice
// aliases the vector's storage until the next relocation; it cannot be grown
// into the spare capacity.
func (me *Vector[T]) Data() []T {
	return me.buf[: me.size : me.size]
}

// Reserve grows capacity to exactly `capacity` when it exceeds the current
// capacity, relocating live elements in order; otherwise it does nothing.
// Size and element values are never affected.
func (me *Vector[T]) Reserve(capacity int) {
	if capacity > len(me.buf) {
		me.relocate(capacity)
	}
}

// ShrinkToFit relocates to a buffer of exactly `size` slots when spare
// capacity exists.
func (me *Vector[T]) ShrinkToFit() {
	if len(me.buf) <= me.size {
		return
	}
	if me.size == 0 {
		me.buf = nil
		me.stamp++
		return
	}
	me.relocate(me.size)
}

func (me *Vector[T]) PushBack(value T) {
	if me.size == len(me.buf) {
		me.grow()
	}
	me.buf[me.size] = value
	me.size++
}

// PopBack removes and returns the last element. On an empty vector it returns
// ErrEmpty and leaves the vector untouched.
func (me *Vector[T]) PopBack() (out T, _ error) {
	if me.size == 0 {
		return out, errors.Wrap(ErrEmpty, "pop back")
	}
	me.size--
	out = me.buf[me.size]
	var zero T
	me.buf[me.size] = zero
	return out, nil
}

// Insert places value before index, shifting the tail one slot rightward.
// Valid indices are [0, size]; inserting at size is PushBack. It returns an
// iterator addressing the new element, or ErrOutOfRange with the vector
// untouched.
func (me *Vector[T]) Insert(index int, value T) (Iterator[T], error) {
	if index < 0 || index > me.size {
		return Iterator[T]{}, errors.Wrapf(ErrOutOfRange, "insert at %d, size %d", index, me.size)
	}
	if me.size == len(me.buf) {
		me.grow()
	}
	if index < me.size {
		copy(me.buf[index+1:me.size+1], me.buf[index:me.size])
		me.stamp++
	}
	me.buf[index] = value
	me.size++
	return Iterator[T]{vec: me, index: index, stamp: me.stamp}, nil
}

// Erase removes the element at index, shifting the tail leftward into the gap.
func (me *Vector[T]) Erase(index int) error {
	if index < 0 || index >= me.size {
		return errors.Wrapf(ErrOutOfRange, "erase %d, size %d", index, me.size)
	}
	return me.EraseRange(index, index+1)
}

// EraseRange removes elements in [first, last), which must lie within
// [0, size]. A rejected call leaves the vector exactly as it was.
func (me *Vector[T]) EraseRange(first, last int) error {
	if first < 0 || last > me.size || first > last {
		return errors.Wrapf(ErrBadRange, "erase [%d, %d), size %d", first, last, me.size)
	}
	removed := last - first
	if removed == 0 {
		return nil
	}
	if last < me.size {
		copy(me.buf[first:], me.buf[last:me.size])
		me.stamp++
	}
	var zero T
	for i := me.size - removed; i < me.size; i++ {
		me.buf[i] = zero
	}
	me.size -= removed
	return nil
}

// Clear destroys all live elements but keeps the capacity.
func (me *Vector[T]) Clear() {
	var zero T
	for i := range me.size {
		me.buf[i] = zero
	}
	me.size = 0
	me.stamp++
}

// Resize erases the tail down to count, or appends copies of fill (the zero
// value when None) up to count, growing capacity to exactly count first.
func (me *Vector[T]) Resize(count int, fill util.Optional[T]) error {
	switch {
	case count < 0:
		return errors.Wrapf(ErrOutOfRange, "resize to %d", count)
	case count < me.size:
		return me.EraseRange(count, me.size)
	case count > me.size:
		me.Reserve(count)
		value := fill.OrZero()
		for me.size < count {
			me.buf[me.size] = value
			me.size++
		}
	}
	return nil
}

// SwapWith exchanges buffer ownership with other in O(1) without touching
// individual elements.
func (me *Vector[T]) SwapWith(other *Vector[T]) {
	me.buf, other.buf = other.buf, me.buf
	me.size, other.size = other.size, me.size
	me.stamp++
	other.stamp++
}

func (me *Vector[T]) Clone() Vector[T] {
	return New(me.buf[:me.size]...)
}

// CloneFunc deep-copies the vector, cloning each element through copy.
func (me *Vector[T]) CloneFunc(copy func(T) T) Vector[T] {
	if me.size == 0 {
		return Vector[T]{}
	}
	return Vector[T]{
		buf:  util.CloneSliceFunc(me.buf[:me.size], copy),
		size: me.size,
	}
}

func (me *Vector[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range me.size {
			if !yield(me.buf[i]) {
				return
			}
		}
	}
}

func (me *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range me.size {
			if !yield(i, me.buf[i]) {
				return
			}
		}
	}
}

func (me *Vector[T]) grow() {
	capacity := growthRate * len(me.buf)
	if capacity == 0 {
		capacity = 1
	}
	me.relocate(capacity)
}

// relocate moves the live elements into a fresh buffer of exactly `capacity`
// slots. The new buffer is fully built before the old one is dropped, so a
// failed allocation cannot leave the vector half-moved.
func (me *Vector[T]) relocate(capacity int) {
	next := make([]T, capacity)
	copy(next, me.buf[:me.size])
	me.buf = next
	me.stamp++
}
