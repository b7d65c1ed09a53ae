// Package treeset provides a unique-key ordered set backed by a splay tree.
package treeset

import (
	"fmt"
	"strings"

	"github.com/qntx/ordcol/cmp"
	"github.com/qntx/ordcol/container"
	"github.com/qntx/ordcol/splay"
)

// Set is a splay-tree-backed ordered set of unique, comparator-ordered
// elements. Not safe for concurrent use, except non-mutating Const* queries.
type Set[T any] struct {
	tree *splay.Tree[T]
}

// New creates a set for an ordered type, using the built-in total order,
// with optional initial values.
func New[T cmp.Ordered](values ...T) *Set[T] {
	s := &Set[T]{tree: splay.New[T]()}
	for _, v := range values {
		s.tree.InsertUnique(v)
	}
	return s
}

// NewWith creates a set with a custom comparator and optional initial values.
func NewWith[T any](comparator cmp.Comparator[T], values ...T) *Set[T] {
	s := &Set[T]{tree: splay.NewWith(comparator)}
	for _, v := range values {
		s.tree.InsertUnique(v)
	}
	return s
}

// Empty reports whether the set contains no elements.
func (s *Set[T]) Empty() bool {
	return s.tree.Empty()
}

// Size returns the number of elements in the set.
func (s *Set[T]) Size() int {
	return s.tree.Size()
}

// Clear removes all elements from the set.
func (s *Set[T]) Clear() {
	s.tree.Clear(nil)
}

// Insert adds v, reporting whether it was newly inserted (false if an equal
// element was already present).
func (s *Set[T]) Insert(v T) (*splay.Node[T], bool) {
	return s.tree.InsertUnique(v)
}

// Erase removes the element equal to v, reporting whether one was found.
func (s *Set[T]) Erase(v T) bool {
	return s.tree.EraseValue(v)
}

// Find splays toward v and returns its handle if present.
func (s *Set[T]) Find(v T) (*splay.Node[T], bool) {
	return s.tree.Find(v)
}

// Contains reports whether v is a member, splaying as a side effect.
func (s *Set[T]) Contains(v T) bool {
	return s.tree.Contains(v)
}

// ConstContains is the non-splaying counterpart to Contains, safe for
// concurrent readers while no mutation is in progress.
func (s *Set[T]) ConstContains(v T) bool {
	return s.tree.ConstContains(v)
}

// Begin returns the first element in sorted order, or nil if empty.
func (s *Set[T]) Begin() *splay.Node[T] {
	return s.tree.First()
}

// RBegin returns the last element in sorted order, or nil if empty.
func (s *Set[T]) RBegin() *splay.Node[T] {
	return s.tree.Last()
}

// Next returns the successor of n in sorted order, or nil past the last element.
func (s *Set[T]) Next(n *splay.Node[T]) *splay.Node[T] {
	return s.tree.Next(n)
}

// RNext returns the predecessor of n in sorted order, or nil before the first element.
func (s *Set[T]) RNext(n *splay.Node[T]) *splay.Node[T] {
	return s.tree.Prev(n)
}

// Root returns the tree's current root handle, or nil if empty.
func (s *Set[T]) Root() *splay.Node[T] {
	return s.tree.Root()
}

// Iterator returns a fresh stateful iterator positioned before the first element.
func (s *Set[T]) Iterator() *splay.Iterator[T] {
	return s.tree.Iterator()
}

// EqualRange returns the half-open range [lo, hi).
func (s *Set[T]) EqualRange(lo, hi T) (begin, end *splay.Node[T]) {
	return s.tree.EqualRange(lo, hi)
}

// EqualRRange returns the reverse half-open range (lo, hi], traversed via RNext.
func (s *Set[T]) EqualRRange(hi, lo T) (rbegin, rend *splay.Node[T]) {
	return s.tree.EqualRRange(hi, lo)
}

// Validate checks the set's structural invariants.
func (s *Set[T]) Validate() bool {
	return s.tree.Validate()
}

// Values returns a slice of all elements in sorted order.
func (s *Set[T]) Values() []T {
	vals := make([]T, 0, s.tree.Size())
	for n := s.tree.First(); n != nil; n = s.tree.Next(n) {
		vals = append(vals, n.Value())
	}
	return vals
}

// String returns a string representation of the set's elements in sorted order.
func (s *Set[T]) String() string {
	var b strings.Builder

	b.WriteString("Set[")
	for i, v := range s.Values() {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString("]")

	return b.String()
}

var _ container.Container[int] = (*Set[int])(nil)
