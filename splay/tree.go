package splay

import (
	"fmt"

	"github.com/qntx/ordcol/cmp"
)

// Tree is a top-down splay tree keyed by a three-way comparator. It backs
// treeset.Set, treemultiset.MultiSet, and depq.DEPQ: the same core supports
// unique-key and multi-key (duplicate-ring) insertion.
//
// A Tree is not safe for concurrent use by multiple goroutines, except that
// the non-splaying Const* queries may be called concurrently with each other
// while no mutating operation is in progress.
type Tree[T any] struct {
	root *Node[T]
	cmp  cmp.Comparator[T]
	size int
}

// New creates an empty tree for an ordered type, using the built-in total order.
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{cmp: cmp.Compare[T]}
}

// NewWith creates an empty tree using a custom comparator.
func NewWith[T any](comparator cmp.Comparator[T]) *Tree[T] {
	return &Tree[T]{cmp: comparator}
}

// Size returns the number of elements linked into the tree, including
// duplicate-ring members.
func (t *Tree[T]) Size() int {
	return t.size
}

// Empty reports whether the tree holds no elements.
func (t *Tree[T]) Empty() bool {
	return t.size == 0
}

// Root returns the current tree root, or nil if the tree is empty. The root
// changes across splaying operations; callers should not cache it.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Comparator returns the comparator the tree was constructed with.
func (t *Tree[T]) Comparator() cmp.Comparator[T] {
	return t.cmp
}

// --------------------------------------------------------------------------------
// Splay core

// splay performs a top-down splay of t.root, walking according to step, which
// receives the value at the cursor and returns LES/EQL/GRT the way a
// Comparator would when called as cmp(target, cursor-value). Passing a step
// that always returns GRT or always LES forces the max or min to the root
// regardless of the tree's actual contents.
//
// Two local scratch nodes stand in for the end-sentinel slots the original
// top-down splay uses; their left/right fields are stitched together at the
// end and never hold a meaningful value.
func (t *Tree[T]) splay(step func(T) int) {
	root := t.root
	if root == nil {
		return
	}

	var leftScratch, rightScratch Node[T]
	l, r := &leftScratch, &rightScratch

	for {
		c := step(root.value)
		if c < 0 {
			if root.left == nil {
				break
			}
			if step(root.left.value) < 0 {
				y := root.left
				root.left = y.right
				if y.right != nil {
					y.right.parent = root
				}
				y.right = root
				root.parent = y
				root = y
				if root.left == nil {
					break
				}
			}
			r.left = root
			root.parent = r
			r = root
			root = root.left
		} else if c > 0 {
			if root.right == nil {
				break
			}
			if step(root.right.value) > 0 {
				y := root.right
				root.right = y.left
				if y.left != nil {
					y.left.parent = root
				}
				y.left = root
				root.parent = y
				root = y
				if root.right == nil {
					break
				}
			}
			l.right = root
			root.parent = l
			l = root
			root = root.right
		} else {
			break
		}
	}

	l.right = root.left
	if root.left != nil {
		root.left.parent = l
	}
	r.left = root.right
	if root.right != nil {
		root.right.parent = r
	}
	root.left = leftScratch.right
	if root.left != nil {
		root.left.parent = root
	}
	root.right = rightScratch.left
	if root.right != nil {
		root.right.parent = root
	}
	root.parent = nil
	t.root = root
}

func bstSuccessor[T any](n *Node[T]) *Node[T] {
	if n.right != nil {
		m := n.right
		for m.left != nil {
			m = m.left
		}
		return m
	}
	c, p := n, n.parent
	for p != nil && p.right == c {
		c, p = p, p.parent
	}
	return p
}

func bstPredecessor[T any](n *Node[T]) *Node[T] {
	if n.left != nil {
		m := n.left
		for m.right != nil {
			m = m.right
		}
		return m
	}
	c, p := n, n.parent
	for p != nil && p.left == c {
		c, p = p, p.parent
	}
	return p
}

// --------------------------------------------------------------------------------
// Insertion

// InsertUnique inserts v if no element compares equal to it, reporting
// whether the insertion happened.
func (t *Tree[T]) InsertUnique(v T) (*Node[T], bool) {
	n := newNode(v)

	if t.root == nil {
		n.linked = true
		t.root = n
		t.size++
		return n, true
	}

	t.splay(func(x T) int { return t.cmp(v, x) })

	c := t.cmp(v, t.root.value)
	if c == eql {
		return nil, false
	}

	n.linked = true
	t.attachAsRoot(n, c)
	t.size++
	return n, true
}

// InsertMulti always inserts v, appending it to the tail of the duplicate
// ring when an equal-key anchor already exists.
func (t *Tree[T]) InsertMulti(v T) *Node[T] {
	n := newNode(v)
	n.linked = true

	if t.root == nil {
		t.root = n
		t.size++
		return n
	}

	t.splay(func(x T) int { return t.cmp(v, x) })

	c := t.cmp(v, t.root.value)
	if c == eql {
		ringPushBack(t.root, n)
		t.size++
		return n
	}

	t.attachAsRoot(n, c)
	t.size++
	return n
}

// attachAsRoot cuts t.root at the side c dictates and makes n the new root,
// with the old root hung off one side and its opposite subtree detached onto
// the other. t.root must already be freshly splayed toward n's value.
func (t *Tree[T]) attachAsRoot(n *Node[T], c order) {
	old := t.root
	if c < 0 {
		n.left = old.left
		if n.left != nil {
			n.left.parent = n
		}
		n.right = old
		old.left = nil
		old.parent = n
	} else {
		n.right = old.right
		if n.right != nil {
			n.right.parent = n
		}
		n.left = old
		old.right = nil
		old.parent = n
	}
	t.root = n
}

// --------------------------------------------------------------------------------
// Erasure

// EraseValue splays v to the root and, if found, removes its tree anchor,
// reporting success. If the anchor owns duplicates, the oldest one takes its
// place in the tree, so the other elements equal to v stay present.
// Callers wanting to erase a particular duplicate should use EraseNode.
func (t *Tree[T]) EraseValue(v T) bool {
	if t.root == nil {
		return false
	}
	t.splay(func(x T) int { return t.cmp(v, x) })
	if t.cmp(v, t.root.value) != eql {
		return false
	}
	t.eraseAnchor(t.root)
	return true
}

// EraseNode erases the element held by handle n, which may be a tree anchor,
// a duplicate-ring head, or a duplicate-ring follower. Returns ErrNotMember,
// wrapped, without effect if n is not currently linked into this tree.
func (t *Tree[T]) EraseNode(n *Node[T]) error {
	if !n.linked {
		return fmt.Errorf("splay: %w", ErrNotMember)
	}
	if n.inRing {
		ringSplice(n)
		n.linked = false
		t.size--
		return nil
	}
	t.eraseAnchor(n)
	return nil
}

// eraseAnchor splays n to the root and removes it. If n owns a duplicate
// ring, the ring's oldest pending member is promoted into the vacated tree
// position in O(1); otherwise the root is removed in the ordinary splay-tree
// way.
func (t *Tree[T]) eraseAnchor(n *Node[T]) {
	t.splay(func(v T) int { return t.cmp(n.value, v) })
	root := t.root

	if root.ring == nil {
		t.removeRoot()
		return
	}

	promoted := ringPopFront(root)
	promoted.left, promoted.right = root.left, root.right
	if promoted.left != nil {
		promoted.left.parent = promoted
	}
	if promoted.right != nil {
		promoted.right.parent = promoted
	}
	promoted.parent = nil
	promoted.ring = root.ring
	if promoted.ring != nil {
		promoted.ring.ringAnchor = promoted
	}
	promoted.linked = true
	t.root = promoted

	root.left, root.right, root.parent, root.ring = nil, nil, nil, nil
	root.linked = false
	t.size--
}

// removeRoot deletes the current root, which must have an empty duplicate
// ring, joining its two subtrees by splaying the left subtree's maximum to
// its top and hanging the old right subtree off it.
func (t *Tree[T]) removeRoot() {
	old := t.root
	if old.left == nil {
		t.root = old.right
		if t.root != nil {
			t.root.parent = nil
		}
	} else {
		right := old.right
		t.root = old.left
		t.root.parent = nil
		t.splay(func(T) int { return grt })
		t.root.right = right
		if right != nil {
			right.parent = t.root
		}
	}
	t.size--
	old.left, old.right, old.parent = nil, nil, nil
	old.linked = false
}

// PopMax splays the maximum to the root and removes it, giving O(1)
// amortized pops of a repeated maximum key via round-robin ring dequeue.
func (t *Tree[T]) PopMax() (*Node[T], bool) {
	return t.popExtreme(grt)
}

// PopMin is the mirror of PopMax for the minimum.
func (t *Tree[T]) PopMin() (*Node[T], bool) {
	return t.popExtreme(les)
}

func (t *Tree[T]) popExtreme(dir order) (*Node[T], bool) {
	if t.root == nil {
		return nil, false
	}
	t.splay(func(T) int { return dir })
	root := t.root
	t.eraseAnchor(root)
	return root, true
}

// --------------------------------------------------------------------------------
// Lookup

// Find splays v to the root and returns its anchor if present.
func (t *Tree[T]) Find(v T) (*Node[T], bool) {
	if t.root == nil {
		return nil, false
	}
	t.splay(func(x T) int { return t.cmp(v, x) })
	if t.cmp(v, t.root.value) == eql {
		return t.root, true
	}
	return nil, false
}

// Contains reports whether v is present, splaying as a side effect.
func (t *Tree[T]) Contains(v T) bool {
	_, ok := t.Find(v)
	return ok
}

// ConstFind walks the tree for v without splaying, suitable for concurrent
// readers while no mutation is in progress.
func (t *Tree[T]) ConstFind(v T) (*Node[T], bool) {
	n := t.root
	for n != nil {
		c := t.cmp(v, n.value)
		if c == eql {
			return n, true
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil, false
}

// ConstContains is the non-splaying counterpart to Contains.
func (t *Tree[T]) ConstContains(v T) bool {
	_, ok := t.ConstFind(v)
	return ok
}

// Min splays the minimum to the root and returns it.
func (t *Tree[T]) Min() (*Node[T], bool) {
	if t.root == nil {
		return nil, false
	}
	t.splay(func(T) int { return les })
	return t.root, true
}

// Max splays the maximum to the root and returns it.
func (t *Tree[T]) Max() (*Node[T], bool) {
	if t.root == nil {
		return nil, false
	}
	t.splay(func(T) int { return grt })
	return t.root, true
}

// ConstMin returns the minimum without splaying.
func (t *Tree[T]) ConstMin() (*Node[T], bool) {
	if t.root == nil {
		return nil, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n, true
}

// ConstMax returns the maximum without splaying.
func (t *Tree[T]) ConstMax() (*Node[T], bool) {
	if t.root == nil {
		return nil, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n, true
}

// --------------------------------------------------------------------------------
// Iteration

// Next returns the inorder successor of n, visiting every member of a
// duplicate group (anchor, then ring head, then each follower) before moving
// to the next distinct key. Returns nil after the last element.
func (t *Tree[T]) Next(n *Node[T]) *Node[T] {
	if n.inRing {
		if n.next.ringAnchor != nil {
			return bstSuccessor(n.next.ringAnchor)
		}
		return n.next
	}
	if n.ring != nil {
		return n.ring
	}
	return bstSuccessor(n)
}

// Prev is the exact structural inverse of Next.
func (t *Tree[T]) Prev(n *Node[T]) *Node[T] {
	if n.inRing {
		if n.ringAnchor != nil {
			return n.ringAnchor
		}
		return n.prev
	}
	p := bstPredecessor(n)
	if p != nil && p.ring != nil {
		return p.ring.prev
	}
	return p
}

// First returns the overall first element in iteration order (the leftmost
// tree anchor), or nil if the tree is empty.
func (t *Tree[T]) First() *Node[T] {
	if t.root == nil {
		return nil
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n
}

// Last returns the overall last element in iteration order: the rightmost
// anchor's newest ring member if it owns duplicates, else the anchor itself.
func (t *Tree[T]) Last() *Node[T] {
	if t.root == nil {
		return nil
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	if n.ring != nil {
		return n.ring.prev
	}
	return n
}

// --------------------------------------------------------------------------------
// Range queries

// lowerBound splays toward x and returns the first anchor whose value is not
// LES than x, or nil if every element is LES than x.
func (t *Tree[T]) lowerBound(x T) *Node[T] {
	if t.root == nil {
		return nil
	}
	t.splay(func(v T) int { return t.cmp(x, v) })
	if t.cmp(x, t.root.value) > 0 {
		return bstSuccessor(t.root)
	}
	return t.root
}

// seekFloor splays toward x and returns the last anchor whose value is not
// GRT than x, or nil if every element is GRT than x. It mirrors lowerBound
// for reverse-direction range queries.
func (t *Tree[T]) seekFloor(x T) *Node[T] {
	if t.root == nil {
		return nil
	}
	t.splay(func(v T) int { return t.cmp(x, v) })
	if t.cmp(x, t.root.value) < 0 {
		return bstPredecessor(t.root)
	}
	return t.root
}

// EqualRange returns the half-open range [lo, hi): begin is the first anchor
// with a value not LES than lo, end is the first anchor with a value not LES
// than hi (nil meaning past the last element).
func (t *Tree[T]) EqualRange(lo, hi T) (begin, end *Node[T]) {
	return t.lowerBound(lo), t.lowerBound(hi)
}

// EqualRRange returns the reverse half-open range (lo, hi]: rbegin is the
// last anchor not GRT than hi, rend is the last anchor not GRT than lo.
// Reverse iteration from rbegin via Prev stops before reaching rend.
func (t *Tree[T]) EqualRRange(hi, lo T) (rbegin, rend *Node[T]) {
	return t.seekFloor(hi), t.seekFloor(lo)
}

// --------------------------------------------------------------------------------
// Bulk operations

// Clear empties the tree. If destructor is non-nil, it is called once per
// element (inorder, including duplicates) before the tree is reset.
func (t *Tree[T]) Clear(destructor func(T)) {
	if destructor != nil {
		t.walk(t.root, destructor)
	}
	t.root = nil
	t.size = 0
}

func (t *Tree[T]) walk(n *Node[T], fn func(T)) {
	if n == nil {
		return
	}
	t.walk(n.left, fn)
	fn(n.value)
	if n.ring != nil {
		for cur := n.ring; ; {
			fn(cur.value)
			cur = cur.next
			if cur == n.ring {
				break
			}
		}
	}
	t.walk(n.right, fn)
}

// HasDups reports whether n's key group has more than one member, whether n
// is the anchor owning a ring or a member of one.
func (t *Tree[T]) HasDups(n *Node[T]) bool {
	return n.isDup() || n.hasDups()
}

// --------------------------------------------------------------------------------
// Validation

// Validate checks BST ordering, parent consistency, duplicate-ring integrity,
// and that the recorded size matches the actual element count.
func (t *Tree[T]) Validate() bool {
	if t.root != nil && t.root.parent != nil {
		return false
	}
	count, ok := t.validateNode(t.root, nil, nil)
	return ok && count == t.size
}

func (t *Tree[T]) validateNode(n *Node[T], lo, hi *T) (int, bool) {
	if n == nil {
		return 0, true
	}
	if lo != nil && t.cmp(n.value, *lo) <= eql {
		return 0, false
	}
	if hi != nil && t.cmp(n.value, *hi) >= eql {
		return 0, false
	}
	if n.left != nil && n.left.parent != n {
		return 0, false
	}
	if n.right != nil && n.right.parent != n {
		return 0, false
	}
	ringCount, ok := t.validateRing(n)
	if !ok {
		return 0, false
	}
	lc, ok := t.validateNode(n.left, lo, &n.value)
	if !ok {
		return 0, false
	}
	rc, ok := t.validateNode(n.right, &n.value, hi)
	if !ok {
		return 0, false
	}
	return 1 + ringCount + lc + rc, true
}

func (t *Tree[T]) validateRing(anchor *Node[T]) (int, bool) {
	if anchor.ring == nil {
		return 0, true
	}
	head := anchor.ring
	if head.ringAnchor != anchor {
		return 0, false
	}
	count := 0
	for cur := head; ; {
		if t.cmp(cur.value, anchor.value) != eql {
			return 0, false
		}
		if cur.next.prev != cur || cur.prev.next != cur {
			return 0, false
		}
		count++
		cur = cur.next
		if cur == head {
			break
		}
	}
	return count, true
}
