package splay_test

import (
	"testing"

	"github.com/qntx/ordcol/internal/testutil"
	"github.com/qntx/ordcol/splay"
)

// TestFourEqualKeysFIFO covers the literal four-equal-keys scenario: pushing
// ids with equal keys and popping the extremum repeatedly must return them in
// insertion order.
func TestFourEqualKeysFIFO(t *testing.T) {
	t.Parallel()

	type entry struct {
		key int
		id  rune
	}

	byKey := func(a, b entry) int {
		switch {
		case a.key < b.key:
			return -1
		case a.key > b.key:
			return 1
		default:
			return 0
		}
	}
	tree := splay.NewWith(byKey)

	for _, id := range []rune{'a', 'b', 'c', 'd'} {
		tree.InsertMulti(entry{key: 0, id: id})
	}

	if got := tree.Size(); got != 4 {
		t.Fatalf("Size() = %d, want 4", got)
	}

	want := []rune{'a', 'b', 'c', 'd'}
	for i, w := range want {
		n, ok := tree.PopMin()
		if !ok {
			t.Fatalf("PopMin() #%d: empty, want id %q", i, w)
		}
		if n.Value().id != w {
			t.Fatalf("PopMin() #%d = %q, want %q", i, n.Value().id, w)
		}
	}

	if !tree.Empty() {
		t.Fatalf("Size() = %d, want 0", tree.Size())
	}
}

// TestShuffledInorder covers the shuffled-50 insert / inorder scenario.
func TestShuffledInorder(t *testing.T) {
	t.Parallel()

	tree := splay.New[int]()
	const n = 50

	for _, v := range testutil.GeneratePermutedInts(n) {
		tree.InsertUnique(v)
	}

	if got := tree.Size(); got != n {
		t.Fatalf("Size() = %d, want %d", got, n)
	}

	it := tree.Iterator()
	for want := 0; it.Next(); want++ {
		if got := it.Value(); got != want {
			t.Fatalf("inorder element = %d, want %d", got, want)
		}
	}

	if min, ok := tree.Min(); !ok || min.Value() != 0 {
		t.Fatalf("Min() = %v, %v, want 0, true", min, ok)
	}
	if max, ok := tree.Max(); !ok || max.Value() != n-1 {
		t.Fatalf("Max() = %v, %v, want %d, true", max, ok, n-1)
	}

	if !tree.Validate() {
		t.Fatal("Validate() = false, want true")
	}
}

type keyedEntry struct {
	key int
	id  int
}

func cmpKeyedEntry(a, b keyedEntry) int {
	switch {
	case a.key < b.key:
		return -1
	case a.key > b.key:
		return 1
	default:
		return 0
	}
}

// TestDuplicateShuffleErase covers the 99-record duplicate-shuffle erase-walk
// scenario: every erase must leave the tree valid, and the tree must drain
// to empty.
func TestDuplicateShuffleErase(t *testing.T) {
	t.Parallel()

	tree := splay.NewWith(cmpKeyedEntry)

	const n = 99
	keys := testutil.GenerateRandomInts(n, 22)
	handles := make([]*splay.Node[keyedEntry], n)
	for k := 0; k < n; k++ {
		handles[k] = tree.InsertMulti(keyedEntry{key: keys[k], id: k})
	}

	if got := tree.Size(); got != n {
		t.Fatalf("Size() = %d, want %d", got, n)
	}

	order := testutil.GeneratePermutedInts(n)
	for step, k := range order {
		if err := tree.EraseNode(handles[k]); err != nil {
			t.Fatalf("EraseNode() #%d: %v", step, err)
		}
		if !tree.Validate() {
			t.Fatalf("Validate() = false after erase #%d", step)
		}
	}

	if !tree.Empty() {
		t.Fatalf("Size() = %d, want 0", tree.Size())
	}
}

// TestSetRangeQuery covers the literal set range-query scenario.
func TestSetRangeQuery(t *testing.T) {
	t.Parallel()

	tree := splay.New[int]()
	for v := 0; v <= 120; v += 5 {
		tree.InsertUnique(v)
	}

	collect := func(begin, end *splay.Node[int]) []int {
		var got []int
		for n := begin; n != end; n = tree.Next(n) {
			if n == nil {
				break
			}
			got = append(got, n.Value())
		}
		return got
	}

	if begin, end := tree.EqualRange(6, 44); true {
		got := collect(begin, end)
		for _, v := range got {
			if v < 6 || v >= 44 {
				t.Fatalf("EqualRange(6,44) included out-of-range value %d", v)
			}
		}
		for v := 10; v < 44; v += 5 {
			found := false
			for _, g := range got {
				if g == v {
					found = true
				}
			}
			if !found {
				t.Fatalf("EqualRange(6,44) missing expected value %d, got %v", v, got)
			}
		}
	}

	if begin, end := tree.EqualRange(-50, -25); begin != end {
		t.Fatalf("EqualRange(-50,-25) should be empty, got begin=%v end=%v", begin, end)
	} else if first := tree.First(); begin != first {
		t.Fatalf("EqualRange(-50,-25) begin should snap to First()")
	}

	if begin, end := tree.EqualRange(95, 999); end != nil {
		t.Fatalf("EqualRange(95,999) end should be nil (past last element), got %v", end)
	} else {
		got := collect(begin, end)
		for _, v := range got {
			if v < 95 {
				t.Fatalf("EqualRange(95,999) included out-of-range value %d", v)
			}
		}
	}
}

// TestIterateRemoveReinsert covers the iterate-remove-reinsert-1000 scenario:
// final size matches initial size and the tree stays valid throughout.
func TestIterateRemoveReinsert(t *testing.T) {
	t.Parallel()

	tree := splay.New[int]()
	const n = 1000
	for _, v := range testutil.GenerateRandomInts(n, 1000) {
		tree.InsertMulti(v)
	}

	initial := tree.Size()

	var low []*splay.Node[int]
	for n := tree.First(); n != nil; n = tree.Next(n) {
		if n.Value() < 400 {
			low = append(low, n)
		}
	}

	fresh := 1001
	for _, h := range low {
		if err := tree.EraseNode(h); err != nil {
			t.Fatalf("EraseNode(%v): %v", h.Value(), err)
		}
		if !tree.Validate() {
			t.Fatalf("Validate() = false after erasing %v", h.Value())
		}
		tree.InsertMulti(fresh)
		fresh++
	}

	if got := tree.Size(); got != initial {
		t.Fatalf("Size() = %d, want %d", got, initial)
	}
	if !tree.Validate() {
		t.Fatal("Validate() = false after reinsertion pass")
	}
}
