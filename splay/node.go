// Package splay implements a top-down splay tree supporting unique-key and
// multi-key (duplicate-ring) insertion, erase by key or by handle, forced-extremum
// splaying, equal-range queries, and structural validation.
//
// The tree is the shared core behind treeset.Set, treemultiset.MultiSet, and depq.DEPQ.
package splay

import "github.com/qntx/ordcol/cmp"

// Node is a handle into a Tree. A Node is either a tree anchor (participates in the
// BST, has meaningful left/right/parent) or a duplicate-ring member (participates in
// an anchor's FIFO ring of equal-key elements, has meaningful next/prev/ringAnchor).
// A node is never both at once.
type Node[T any] struct {
	value T

	// Tree-anchor fields. Meaningful only while the node occupies a position in the
	// BST proper.
	left, right, parent *Node[T]

	// ring is non-nil on an anchor that owns at least one equal-key duplicate; it
	// points at the oldest pending duplicate (the ring's FIFO head).
	ring *Node[T]

	// Ring-member fields. Meaningful only while the node is detached from the BST
	// and is instead linked into some anchor's duplicate ring.
	next, prev *Node[T]

	// ringAnchor is non-nil only on the node currently serving as its ring's FIFO
	// head; it names the tree anchor that owns the ring. Follower ring members
	// leave this nil, which is also how erase-by-handle tells a head from a
	// follower in O(1) without walking the ring.
	ringAnchor *Node[T]

	// inRing is true for every ring member (head and followers), false for a tree
	// anchor. Distinguishes "ring member" from "anchor with no dups" when both
	// have ringAnchor == nil.
	inRing bool

	// linked is true while n occupies the tree or a duplicate ring. Erase clears
	// it so a repeated erase of the same handle is reported as not-a-member
	// rather than silently corrupting the structure.
	linked bool
}

// Value returns the element held by n.
func (n *Node[T]) Value() T {
	return n.value
}

func newNode[T any](v T) *Node[T] {
	return &Node[T]{value: v}
}

// isDup reports whether n is currently a duplicate-ring member rather than a tree anchor.
func (n *Node[T]) isDup() bool {
	return n.inRing
}

// hasDups reports whether anchor n currently owns a non-empty duplicate ring.
func (n *Node[T]) hasDups() bool {
	return n.ring != nil
}

// ringPushBack appends dup to the tail of anchor's duplicate ring (FIFO order), or
// starts a new single-element ring if anchor had none. O(1).
func ringPushBack[T any](anchor, dup *Node[T]) {
	dup.inRing = true
	if anchor.ring == nil {
		dup.ringAnchor = anchor
		dup.next, dup.prev = dup, dup
		anchor.ring = dup
		return
	}
	head := anchor.ring
	tail := head.prev
	dup.next = head
	dup.prev = tail
	tail.next = dup
	head.prev = dup
}

// ringPopFront removes and returns the oldest pending duplicate from anchor's ring,
// updating anchor.ring to the next-oldest member (or nil if the ring is now empty). O(1).
func ringPopFront[T any](anchor *Node[T]) *Node[T] {
	head := anchor.ring
	if head.next == head {
		anchor.ring = nil
	} else {
		newHead := head.next
		newHead.prev = head.prev
		head.prev.next = newHead
		newHead.ringAnchor = anchor
		anchor.ring = newHead
	}
	head.next, head.prev, head.ringAnchor, head.inRing = nil, nil, nil, false
	return head
}

// ringSplice removes dup, which may or may not be the ring head, from its ring in
// O(1), fixing up the new head's ringAnchor (and the owning anchor's ring pointer)
// only when dup happened to be the head.
func ringSplice[T any](dup *Node[T]) {
	if dup.ringAnchor != nil {
		anchor := dup.ringAnchor
		if dup.next == dup {
			anchor.ring = nil
		} else {
			newHead := dup.next
			newHead.prev = dup.prev
			dup.prev.next = newHead
			newHead.ringAnchor = anchor
			anchor.ring = newHead
		}
	} else {
		dup.next.prev = dup.prev
		dup.prev.next = dup.next
	}
	dup.next, dup.prev, dup.ringAnchor, dup.inRing = nil, nil, nil, false
}

// order is a three-way comparison outcome, re-exported for readability at call sites.
type order = int

const (
	les order = cmp.LES
	eql order = cmp.EQL
	grt order = cmp.GRT
)
