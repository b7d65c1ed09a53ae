// Package treemultiset provides an ordered multiset backed by a splay tree,
// exposing round-robin FIFO fairness among equal-key elements.
package treemultiset

import (
	"fmt"
	"strings"

	"github.com/qntx/ordcol/cmp"
	"github.com/qntx/ordcol/container"
	"github.com/qntx/ordcol/splay"
)

// MultiSet is a splay-tree-backed ordered multiset. Equal-key elements are
// kept in a FIFO duplicate ring off a single tree anchor: among equal keys,
// extraction order matches insertion order for PopMax/PopMin. Reinserting an
// equal key after erase places the entry at the back of the ring.
//
// Not safe for concurrent use, except non-mutating Const* queries.
type MultiSet[T any] struct {
	tree *splay.Tree[T]
}

// New creates a multiset for an ordered type, using the built-in total
// order, with optional initial values.
func New[T cmp.Ordered](values ...T) *MultiSet[T] {
	m := &MultiSet[T]{tree: splay.New[T]()}
	for _, v := range values {
		m.tree.InsertMulti(v)
	}
	return m
}

// NewWith creates a multiset with a custom comparator and optional initial values.
func NewWith[T any](comparator cmp.Comparator[T], values ...T) *MultiSet[T] {
	m := &MultiSet[T]{tree: splay.NewWith(comparator)}
	for _, v := range values {
		m.tree.InsertMulti(v)
	}
	return m
}

// Tree exposes the underlying splay tree to sibling packages (depq) that
// need operations beyond this façade's surface, such as forced-extremum
// splaying.
func (m *MultiSet[T]) Tree() *splay.Tree[T] {
	return m.tree
}

// Empty reports whether the multiset contains no elements.
func (m *MultiSet[T]) Empty() bool {
	return m.tree.Empty()
}

// Size returns the number of elements, including duplicate-ring members.
func (m *MultiSet[T]) Size() int {
	return m.tree.Size()
}

// Clear removes all elements.
func (m *MultiSet[T]) Clear() {
	m.tree.Clear(nil)
}

// Insert always inserts v, appending to the tail of the duplicate ring when
// an equal-key anchor already exists, and returns its handle.
func (m *MultiSet[T]) Insert(v T) *splay.Node[T] {
	return m.tree.InsertMulti(v)
}

// Erase removes the element held by handle n, whether it is the tree anchor,
// the duplicate-ring head, or a follower.
func (m *MultiSet[T]) Erase(n *splay.Node[T]) error {
	return m.tree.EraseNode(n)
}

// EraseValue erases one element equal to v (the tree anchor for that key),
// reporting whether a match was found. Duplicates of v, if any, are
// unaffected; use Erase with a specific handle to target a particular one.
func (m *MultiSet[T]) EraseValue(v T) bool {
	return m.tree.EraseValue(v)
}

// Find splays toward v and returns the anchor handle for that key if present.
func (m *MultiSet[T]) Find(v T) (*splay.Node[T], bool) {
	return m.tree.Find(v)
}

// Contains reports whether any element equal to v is present.
func (m *MultiSet[T]) Contains(v T) bool {
	return m.tree.Contains(v)
}

// Begin returns the first element in iteration order, or nil if empty.
func (m *MultiSet[T]) Begin() *splay.Node[T] {
	return m.tree.First()
}

// RBegin returns the last element in iteration order, or nil if empty.
func (m *MultiSet[T]) RBegin() *splay.Node[T] {
	return m.tree.Last()
}

// Next returns the next element in iteration order, visiting every
// duplicate-ring member before moving to the next distinct key.
func (m *MultiSet[T]) Next(n *splay.Node[T]) *splay.Node[T] {
	return m.tree.Next(n)
}

// RNext returns the previous element in iteration order.
func (m *MultiSet[T]) RNext(n *splay.Node[T]) *splay.Node[T] {
	return m.tree.Prev(n)
}

// Root returns the tree's current root handle, or nil if empty.
func (m *MultiSet[T]) Root() *splay.Node[T] {
	return m.tree.Root()
}

// Iterator returns a fresh stateful iterator positioned before the first element.
func (m *MultiSet[T]) Iterator() *splay.Iterator[T] {
	return m.tree.Iterator()
}

// EqualRange returns the half-open range [lo, hi).
func (m *MultiSet[T]) EqualRange(lo, hi T) (begin, end *splay.Node[T]) {
	return m.tree.EqualRange(lo, hi)
}

// EqualRRange returns the reverse half-open range (lo, hi].
func (m *MultiSet[T]) EqualRRange(hi, lo T) (rbegin, rend *splay.Node[T]) {
	return m.tree.EqualRRange(hi, lo)
}

// HasDups reports whether n's key group has more than one member.
func (m *MultiSet[T]) HasDups(n *splay.Node[T]) bool {
	return m.tree.HasDups(n)
}

// Validate checks the multiset's structural invariants.
func (m *MultiSet[T]) Validate() bool {
	return m.tree.Validate()
}

// Values returns a slice of all elements in iteration order, including duplicates.
func (m *MultiSet[T]) Values() []T {
	vals := make([]T, 0, m.tree.Size())
	for n := m.tree.First(); n != nil; n = m.tree.Next(n) {
		vals = append(vals, n.Value())
	}
	return vals
}

// String returns a string representation of the multiset's elements in iteration order.
func (m *MultiSet[T]) String() string {
	var b strings.Builder

	b.WriteString("MultiSet[")
	for i, v := range m.Values() {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString("]")

	return b.String()
}

var _ container.Container[int] = (*MultiSet[int])(nil)
