// This file implements a stateful iterator over Tree, supporting forward and
// reverse duplicate-ring-aware traversal in nondecreasing key order.
package splay

import (
	"errors"

	"github.com/qntx/ordcol/container"
)

// Position constants for iterator state.
type position byte

const (
	begin   position = iota // Before the first element.
	between                  // Between elements (valid position).
	end                      // Past the last element.
)

// ErrInvalidIteratorPosition is the error whose message Key/Value panic with
// when the iterator sits at begin or end rather than on an element.
var ErrInvalidIteratorPosition = errors.New("iterator accessed at invalid position")

// Ensure Iterator implements container.ReverseIteratorWithKey at compile time.
var _ container.ReverseIteratorWithKey[int, int] = (*Iterator[int])(nil)

// Iterator provides forward and reverse traversal over a Tree's elements,
// treating key and value identically (K == V == T) since a Tree stores bare
// values rather than key-value pairs.
type Iterator[T any] struct {
	tree     *Tree[T]
	node     *Node[T]
	position position
}

// Iterator creates a new iterator positioned before the first element.
func (t *Tree[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{tree: t, position: begin}
}

// IteratorAt creates a new iterator positioned at a specific handle.
func (t *Tree[T]) IteratorAt(n *Node[T]) *Iterator[T] {
	return &Iterator[T]{tree: t, node: n, position: between}
}

// Next advances the iterator to the next element in iteration order.
func (it *Iterator[T]) Next() bool {
	switch it.position {
	case end:
		return false
	case begin:
		if first := it.tree.First(); first != nil {
			it.node = first
			it.position = between
			return true
		}
		it.position = end
		return false
	case between:
		if next := it.tree.Next(it.node); next != nil {
			it.node = next
			return true
		}
	}

	it.node = nil
	it.position = end
	return false
}

// Prev moves the iterator to the previous element in iteration order.
func (it *Iterator[T]) Prev() bool {
	switch it.position {
	case begin:
		return false
	case end:
		if last := it.tree.Last(); last != nil {
			it.node = last
			it.position = between
			return true
		}
		it.position = begin
		return false
	case between:
		if prev := it.tree.Prev(it.node); prev != nil {
			it.node = prev
			return true
		}
	}

	it.node = nil
	it.position = begin
	return false
}

// Key returns the current element. Present for container.IteratorWithKey
// conformance; identical to Value since a Tree has no separate key type.
func (it *Iterator[T]) Key() T {
	return it.Value()
}

// Value returns the current element. Panics if the iterator is not
// positioned on an element.
func (it *Iterator[T]) Value() T {
	if !it.valid() {
		panic("splay: " + ErrInvalidIteratorPosition.Error())
	}
	return it.node.value
}

// Node returns the current handle, or nil at begin/end.
func (it *Iterator[T]) Node() *Node[T] {
	return it.node
}

// Begin resets the iterator to before the first element.
func (it *Iterator[T]) Begin() {
	it.node = nil
	it.position = begin
}

// End moves the iterator past the last element.
func (it *Iterator[T]) End() {
	it.node = nil
	it.position = end
}

// First moves the iterator to the first element, reporting whether one exists.
func (it *Iterator[T]) First() bool {
	it.Begin()
	return it.Next()
}

// Last moves the iterator to the last element, reporting whether one exists.
func (it *Iterator[T]) Last() bool {
	it.End()
	return it.Prev()
}

// NextTo advances to the next element satisfying f.
func (it *Iterator[T]) NextTo(f func(key, value T) bool) bool {
	for it.Next() {
		if f(it.Key(), it.Value()) {
			return true
		}
	}
	return false
}

// PrevTo moves to the previous element satisfying f.
func (it *Iterator[T]) PrevTo(f func(key, value T) bool) bool {
	for it.Prev() {
		if f(it.Key(), it.Value()) {
			return true
		}
	}
	return false
}

func (it *Iterator[T]) valid() bool {
	return it.position == between && it.node != nil
}
