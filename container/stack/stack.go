// Package stack is a LIFO adapter over the growable vector.
package stack

import (
	"github.com/navijation/njcontainers/container/vector"
)

type Stack[T any] struct {
	items vector.Vector[T]
}

func New[T any](items ...T) Stack[T] {
	return Stack[T]{items: vector.New(items...)}
}

func (me *Stack[T]) Size() int {
	return me.items.Size()
}

func (me *Stack[T]) Empty() bool {
	return me.items.Empty()
}

func (me *Stack[T]) Push(value T) {
	me.items.PushBack(value)
}

// Pop removes and returns the most recently pushed element, or
// vector.ErrEmpty with the stack untouched.
func (me *Stack[T]) Pop() (T, error) {
	return me.items.PopBack()
}

// Top returns the most recently pushed element without removing it.
func (me *Stack[T]) Top() (T, error) {
	return me.items.Back()
}

func (me *Stack[T]) Clear() {
	me.items.Clear()
}

func (me *Stack[T]) SwapWith(other *Stack[T]) {
	me.items.SwapWith(&other.items)
}
