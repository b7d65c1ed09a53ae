// Package depq provides a double-ended priority queue backed by the same
// splay tree and round-robin duplicate ring as treemultiset.MultiSet.
package depq

import (
	"fmt"
	"strings"

	"github.com/qntx/ordcol/cmp"
	"github.com/qntx/ordcol/container"
	"github.com/qntx/ordcol/splay"
	"github.com/qntx/ordcol/treemultiset"
)

// DEPQ is a double-ended priority queue: both the maximum and the minimum
// are reachable and poppable in amortized O(log n), with O(1) amortized
// repeated pops of an equal-key extremum thanks to the underlying duplicate
// ring. Not safe for concurrent use, except non-mutating Const* queries.
type DEPQ[T any] struct {
	ms *treemultiset.MultiSet[T]
}

// New creates an empty DEPQ for an ordered type, using the built-in total order.
func New[T cmp.Ordered]() *DEPQ[T] {
	return &DEPQ[T]{ms: treemultiset.New[T]()}
}

// NewWith creates an empty DEPQ using a custom comparator.
func NewWith[T any](comparator cmp.Comparator[T]) *DEPQ[T] {
	return &DEPQ[T]{ms: treemultiset.NewWith(comparator)}
}

// Empty reports whether the queue holds no elements.
func (d *DEPQ[T]) Empty() bool {
	return d.ms.Empty()
}

// Size returns the number of elements in the queue.
func (d *DEPQ[T]) Size() int {
	return d.ms.Size()
}

// Clear removes all elements.
func (d *DEPQ[T]) Clear() {
	d.ms.Clear()
}

// Push inserts v, appending to the tail of the duplicate ring if an equal
// key is already present, and returns its handle.
func (d *DEPQ[T]) Push(v T) *splay.Node[T] {
	return d.ms.Insert(v)
}

// Insert is an alias for Push, present for Set/MultiSet surface parity.
func (d *DEPQ[T]) Insert(v T) *splay.Node[T] {
	return d.ms.Insert(v)
}

// Find splays toward v and returns its anchor handle if present.
func (d *DEPQ[T]) Find(v T) (*splay.Node[T], bool) {
	return d.ms.Find(v)
}

// Contains reports whether any element equal to v is present.
func (d *DEPQ[T]) Contains(v T) bool {
	return d.ms.Contains(v)
}

// Begin returns the first element in sorted order, or nil if empty.
func (d *DEPQ[T]) Begin() *splay.Node[T] {
	return d.ms.Begin()
}

// RBegin returns the last element in sorted order, or nil if empty.
func (d *DEPQ[T]) RBegin() *splay.Node[T] {
	return d.ms.RBegin()
}

// Next returns the successor of n in sorted order, visiting every
// duplicate-ring member before moving to the next distinct key.
func (d *DEPQ[T]) Next(n *splay.Node[T]) *splay.Node[T] {
	return d.ms.Next(n)
}

// RNext returns the predecessor of n in sorted order.
func (d *DEPQ[T]) RNext(n *splay.Node[T]) *splay.Node[T] {
	return d.ms.RNext(n)
}

// Root returns the underlying tree's current root handle, or nil if empty.
func (d *DEPQ[T]) Root() *splay.Node[T] {
	return d.ms.Root()
}

// Iterator returns a fresh stateful iterator positioned before the first element.
func (d *DEPQ[T]) Iterator() *splay.Iterator[T] {
	return d.ms.Iterator()
}

// EqualRange returns the half-open range [lo, hi).
func (d *DEPQ[T]) EqualRange(lo, hi T) (begin, end *splay.Node[T]) {
	return d.ms.EqualRange(lo, hi)
}

// EqualRRange returns the reverse half-open range (lo, hi].
func (d *DEPQ[T]) EqualRRange(hi, lo T) (rbegin, rend *splay.Node[T]) {
	return d.ms.EqualRRange(hi, lo)
}

// Max splays the maximum to the root and returns it.
func (d *DEPQ[T]) Max() (*splay.Node[T], bool) {
	return d.ms.Tree().Max()
}

// Min splays the minimum to the root and returns it.
func (d *DEPQ[T]) Min() (*splay.Node[T], bool) {
	return d.ms.Tree().Min()
}

// ConstMax returns the maximum without splaying.
func (d *DEPQ[T]) ConstMax() (*splay.Node[T], bool) {
	return d.ms.Tree().ConstMax()
}

// ConstMin returns the minimum without splaying.
func (d *DEPQ[T]) ConstMin() (*splay.Node[T], bool) {
	return d.ms.Tree().ConstMin()
}

// PopMax removes and returns the maximum. Repeated pops of an equal maximum
// key are O(1) amortized after the first, via round-robin ring dequeue.
func (d *DEPQ[T]) PopMax() (*splay.Node[T], bool) {
	return d.ms.Tree().PopMax()
}

// PopMin is the mirror of PopMax for the minimum.
func (d *DEPQ[T]) PopMin() (*splay.Node[T], bool) {
	return d.ms.Tree().PopMin()
}

// IsMax reports whether n is the current maximum, without splaying.
func (d *DEPQ[T]) IsMax(n *splay.Node[T]) bool {
	m, ok := d.ms.Tree().ConstMax()
	return ok && m == n
}

// IsMin reports whether n is the current minimum, without splaying.
func (d *DEPQ[T]) IsMin(n *splay.Node[T]) bool {
	m, ok := d.ms.Tree().ConstMin()
	return ok && m == n
}

// Update erases n, applies mutate to a copy of its value, and inserts that
// copy as a new element. n itself is not reinserted: after Update it stays
// erased and keeps its old value, and no handle to the new element is
// returned. A splay tree has no cheaper order-aware fast path the way a
// pairing heap does: any key change can move an element anywhere in the
// ordering, so update is always erase-then-insert here.
func (d *DEPQ[T]) Update(n *splay.Node[T], mutate func(value *T)) error {
	if err := d.ms.Erase(n); err != nil {
		return err
	}
	v := n.Value()
	mutate(&v)
	d.ms.Insert(v)
	return nil
}

// Erase removes the element held by handle n.
func (d *DEPQ[T]) Erase(n *splay.Node[T]) error {
	return d.ms.Erase(n)
}

// HasDups reports whether n's key group has more than one member.
func (d *DEPQ[T]) HasDups(n *splay.Node[T]) bool {
	return d.ms.HasDups(n)
}

// Validate checks the queue's structural invariants.
func (d *DEPQ[T]) Validate() bool {
	return d.ms.Validate()
}

// Values returns a slice of all elements in sorted order, including duplicates.
func (d *DEPQ[T]) Values() []T {
	return d.ms.Values()
}

// String returns a string representation of the queue's elements in sorted order.
func (d *DEPQ[T]) String() string {
	var b strings.Builder

	b.WriteString("DEPQ[")
	for i, v := range d.Values() {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString("]")

	return b.String()
}

var _ container.Container[int] = (*DEPQ[int])(nil)
