package pairing

import (
	"fmt"

	"github.com/qntx/ordcol/cmp"
)

// Order selects whether a Heap surfaces its maximum or minimum at the root.
type Order = int

const (
	// MinOrder makes Front/Pop return the smallest element.
	MinOrder Order = cmp.LES
	// MaxOrder makes Front/Pop return the largest element.
	MaxOrder Order = cmp.GRT
)

// Heap is a pairing heap with fair merge: the incoming child of a link
// always becomes the tail of the winner's sibling ring, so the oldest child
// participates first in the next pop. This bounds the skew a naive
// pairing-heap merge can accumulate.
//
// A Heap is not safe for concurrent use by multiple goroutines.
type Heap[T any] struct {
	root  *Node[T]
	cmp   cmp.Comparator[T]
	order Order
	size  int
}

// New creates an empty heap for an ordered type with the given order,
// using the built-in total order.
func New[T cmp.Ordered](order Order) *Heap[T] {
	return &Heap[T]{cmp: cmp.Compare[T], order: order}
}

// NewWith creates an empty heap using a custom comparator and order.
func NewWith[T any](comparator cmp.Comparator[T], order Order) *Heap[T] {
	return &Heap[T]{cmp: comparator, order: order}
}

// Empty reports whether the heap holds no elements.
func (h *Heap[T]) Empty() bool {
	return h.size == 0
}

// Size returns the number of elements in the heap.
func (h *Heap[T]) Size() int {
	return h.size
}

// Order returns the heap's configured order.
func (h *Heap[T]) Order() Order {
	return h.order
}

// Front returns the current root without removing it.
func (h *Heap[T]) Front() (*Node[T], bool) {
	if h.root == nil {
		return nil, false
	}
	return h.root, true
}

// Push inserts v and returns its handle.
func (h *Heap[T]) Push(v T) *Node[T] {
	n := newNode(v)
	n.linked = true
	h.root = fairMerge(h, h.root, n)
	h.size++
	return n
}

// Pop removes and returns the root.
func (h *Heap[T]) Pop() (*Node[T], bool) {
	if h.root == nil {
		return nil, false
	}
	popped := h.root
	h.root = h.deleteMin(popped)
	h.size--
	popped.isolate()
	popped.linked = false
	return popped, true
}

// Erase removes n from the heap, wherever it sits. Returns ErrNotMember,
// wrapped, if n is not currently linked into this heap.
func (h *Heap[T]) Erase(n *Node[T]) error {
	if !n.linked {
		return fmt.Errorf("pairing: %w", ErrNotMember)
	}
	h.root = h.deleteNode(n)
	h.size--
	n.isolate()
	n.linked = false
	return nil
}

// Update mutates n's value via mutate, then repositions n: if n has a parent
// and now orders strictly before it (the key moved toward the root), n's own
// children are still in order below it, so n is cut and fair-merged back into
// the root in O(log n) amortized; otherwise (n is the root, or its key did not
// move past its parent's) n is erased and reinserted, since a generic key
// change gives no cheap evidence the subtree below n is still valid.
// Increase/Decrease should be preferred when the direction of change is known.
func (h *Heap[T]) Update(n *Node[T], mutate func(value *T)) error {
	if !n.linked {
		return fmt.Errorf("pairing: %w", ErrNotMember)
	}
	mutate(&n.value)
	if n.parent != nil && h.cmp(n.value, n.parent.value) == h.order {
		cutChild(n)
		h.root = fairMerge(h, h.root, n)
		return nil
	}
	h.root = h.deleteNode(n)
	n.isolate()
	h.root = fairMerge(h, h.root, n)
	return nil
}

// Increase mutates n's value via mutate under the assumption the new value is
// larger than the old one. In a MaxOrder heap that moves n toward the root, so
// n is cut and fair-merged in O(log n) amortized without a full reinsert; in a
// MinOrder heap n is erased, mutated, and reinserted.
func (h *Heap[T]) Increase(n *Node[T], mutate func(value *T)) error {
	if !n.linked {
		return fmt.Errorf("pairing: %w", ErrNotMember)
	}
	if h.order == MaxOrder {
		mutate(&n.value)
		cutChild(n)
	} else {
		h.root = h.deleteNode(n)
		mutate(&n.value)
		n.isolate()
	}
	h.root = fairMerge(h, h.root, n)
	return nil
}

// Decrease is the mirror of Increase for a new value smaller than the old
// one: cut-and-merge in a MinOrder heap, erase-and-reinsert in a MaxOrder heap.
func (h *Heap[T]) Decrease(n *Node[T], mutate func(value *T)) error {
	if !n.linked {
		return fmt.Errorf("pairing: %w", ErrNotMember)
	}
	if h.order == MinOrder {
		mutate(&n.value)
		cutChild(n)
	} else {
		h.root = h.deleteNode(n)
		mutate(&n.value)
		n.isolate()
	}
	h.root = fairMerge(h, h.root, n)
	return nil
}

// Clear pops every element, calling destructor on each popped value if
// destructor is non-nil.
func (h *Heap[T]) Clear(destructor func(T)) {
	for {
		n, ok := h.Pop()
		if !ok {
			return
		}
		if destructor != nil {
			destructor(n.value)
		}
	}
}

// Validate checks that the root has no parent, every parent/child link and
// sibling ring is self-consistent, heap order holds between every parent and
// child, and the traversal size matches the recorded size.
func (h *Heap[T]) Validate() bool {
	if h.root != nil && h.root.parent != nil {
		return false
	}
	if !h.validLinks(nil, h.root) {
		return false
	}
	return h.traversalSize(h.root) == h.size
}

// --------------------------------------------------------------------------------
// Internals

// fairMerge melds old and new, making the winner (per h.order) the combined
// root and the loser its newest child.
func fairMerge[T any](h *Heap[T], old, new *Node[T]) *Node[T] {
	if old == nil || new == nil || old == new {
		if old != nil {
			return old
		}
		return new
	}
	if h.cmp(new.value, old.value) == h.order {
		linkChild(new, old)
		return new
	}
	linkChild(old, new)
	return old
}

// linkChild makes child the newest (tail) member of parent's sibling ring.
func linkChild[T any](parent, child *Node[T]) {
	if parent.leftChild != nil {
		eldest := parent.leftChild.nextSibling
		child.nextSibling = eldest
		child.prevSibling = parent.leftChild
		eldest.prevSibling = child
		parent.leftChild.nextSibling = child
	} else {
		child.nextSibling, child.prevSibling = child, child
	}
	parent.leftChild = child
	child.parent = parent
}

// cutChild splices child out of its sibling ring and clears its parent,
// fixing up the parent's leftChild pointer if child was the newest child.
func cutChild[T any](child *Node[T]) {
	child.nextSibling.prevSibling = child.prevSibling
	child.prevSibling.nextSibling = child.nextSibling
	if child.parent != nil && child == child.parent.leftChild {
		if child.nextSibling == child {
			child.parent.leftChild = nil
		} else {
			child.parent.leftChild = child.nextSibling
		}
	}
	child.parent = nil
}

// deleteNode removes n from wherever it sits and returns the heap's new root.
// If n is the current root, its children are paired into a replacement root.
// Otherwise n is cut from its parent and its own children's merged result is
// fair-merged back into the main root.
func (h *Heap[T]) deleteNode(n *Node[T]) *Node[T] {
	if h.root == n {
		return h.deleteMin(n)
	}
	cutChild(n)
	return fairMerge(h, h.root, h.deleteMin(n))
}

// deleteMin pairs root's children two-by-two (forward pairing pass folded
// into a running accumulator) and returns the merged result, or nil if root
// had no children.
func (h *Heap[T]) deleteMin(root *Node[T]) *Node[T] {
	if root.leftChild == nil {
		return nil
	}
	eldest := root.leftChild.nextSibling
	accumulator := eldest
	cur := eldest.nextSibling
	for cur != eldest && cur.nextSibling != eldest {
		next := cur.nextSibling
		nextCur := next.nextSibling
		next.nextSibling, next.prevSibling = nil, nil
		cur.nextSibling, cur.prevSibling = nil, nil
		accumulator = fairMerge(h, accumulator, fairMerge(h, cur, next))
		cur = nextCur
	}
	var newRoot *Node[T]
	if cur != eldest {
		newRoot = fairMerge(h, accumulator, cur)
	} else {
		newRoot = accumulator
	}
	newRoot.nextSibling, newRoot.prevSibling = newRoot, newRoot
	newRoot.parent = nil
	return newRoot
}

func (h *Heap[T]) traversalSize(root *Node[T]) int {
	if root == nil {
		return 0
	}
	size := 0
	for cur := root; ; {
		size += 1 + h.traversalSize(cur.leftChild)
		cur = cur.nextSibling
		if cur == root {
			break
		}
	}
	return size
}

func (h *Heap[T]) validLinks(parent, child *Node[T]) bool {
	if child == nil {
		return true
	}
	wrongOrder := cmp.LES
	if h.order == cmp.LES {
		wrongOrder = cmp.GRT
	}
	for cur := child; ; {
		if parent != nil && cur.parent != parent {
			return false
		}
		if cur.nextSibling.prevSibling != cur || cur.prevSibling.nextSibling != cur {
			return false
		}
		if parent != nil && h.cmp(parent.value, cur.value) == wrongOrder {
			return false
		}
		if !h.validLinks(cur, cur.leftChild) {
			return false
		}
		cur = cur.nextSibling
		if cur == child {
			break
		}
	}
	return true
}
