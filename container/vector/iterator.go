package vector

import (
	"github.com/pkg/errors"
)

var ErrInvalidated = errors.New("iterator has been invalidated")

// Iterator is a random-access position inside a Vector, modeled as an index
// plus the mutation stamp the vector had when the iterator was derived.
//
// Invalidation rules:
//   - Any relocation (growth, ShrinkToFit, SwapWith) invalidates every
//     outstanding iterator.
//   - Insert and Erase/EraseRange that shift elements, and Clear, invalidate
//     every outstanding iterator. Erasing only trailing elements shifts
//     nothing and invalidates nothing.
//   - PushBack and PopBack without relocation invalidate nothing; an end
//     iterator simply stays out of bounds until the vector grows past it.
//
// A stale iterator is detected, not dangling: Value and Set return
// ErrInvalidated instead of reading through an outdated position.
type Iterator[T any] struct {
	vec   *Vector[T]
	index int
	stamp uint64
}

// Begin returns an iterator addressing index 0.
func (me *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{vec: me, index: 0, stamp: me.stamp}
}

// End returns the past-the-end iterator. It addresses no element.
func (me *Vector[T]) End() Iterator[T] {
	return Iterator[T]{vec: me, index: me.size, stamp: me.stamp}
}

// IteratorAt returns an iterator addressing index, which may be any position
// in [0, size].
func (me *Vector[T]) IteratorAt(index int) Iterator[T] {
	return Iterator[T]{vec: me, index: index, stamp: me.stamp}
}

func (me Iterator[T]) Next() Iterator[T] {
	return me.Add(1)
}

func (me Iterator[T]) Prev() Iterator[T] {
	return me.Add(-1)
}

func (me Iterator[T]) Add(n int) Iterator[T] {
	me.index += n
	return me
}

func (me Iterator[T]) Sub(n int) Iterator[T] {
	return me.Add(-n)
}

// Distance returns the number of positions from this iterator to other.
func (me Iterator[T]) Distance(other Iterator[T]) int {
	return other.index - me.index
}

func (me Iterator[T]) Index() int {
	return me.index
}

func (me Iterator[T]) Equal(other Iterator[T]) bool {
	return me.vec == other.vec && me.index == other.index
}

func (me Iterator[T]) Before(other Iterator[T]) bool {
	return me.vec == other.vec && me.index < other.index
}

func (me Iterator[T]) Value() (out T, _ error) {
	if err := me.check(); err != nil {
		return out, err
	}
	return me.vec.buf[me.index], nil
}

func (me Iterator[T]) Set(value T) error {
	if err := me.check(); err != nil {
		return err
	}
	me.vec.buf[me.index] = value
	return nil
}

func (me Iterator[T]) check() error {
	if me.vec == nil {
		return errors.Wrap(ErrInvalidated, "zero iterator")
	}
	if me.stamp != me.vec.stamp {
		return errors.Wrapf(ErrInvalidated, "stamp %d, vector stamp %d", me.stamp, me.vec.stamp)
	}
	if me.index < 0 || me.index >= me.vec.size {
		return errors.Wrapf(ErrOutOfRange, "iterator at %d, size %d", me.index, me.vec.size)
	}
	return nil
}
