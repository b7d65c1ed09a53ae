package treemultiset_test

import (
	"testing"

	"github.com/qntx/ordcol/treemultiset"
)

func TestInsertKeepsDuplicates(t *testing.T) {
	m := treemultiset.New[int](5, 1, 5, 3, 5, 1)
	if m.Size() != 6 {
		t.Fatalf("Size() = %d, want 6", m.Size())
	}
	if !m.Validate() {
		t.Fatal("Validate() = false")
	}

	want := []int{1, 1, 3, 5, 5, 5}
	got := m.Values()
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("Values()[%d] = %d, want %d", i, got[i], v)
		}
	}
}

func TestHasDupsReflectsRingMembership(t *testing.T) {
	m := treemultiset.New[int]()
	first := m.Insert(10)
	if m.HasDups(first) {
		t.Fatal("HasDups() = true for a singleton key")
	}
	second := m.Insert(10)
	if !m.HasDups(first) || !m.HasDups(second) {
		t.Fatal("HasDups() = false for a two-member key group")
	}
}

func TestEraseByHandleRemovesExactMember(t *testing.T) {
	m := treemultiset.New[int]()
	a := m.Insert(7)
	b := m.Insert(7)
	m.Insert(7)

	if err := m.Erase(b); err != nil {
		t.Fatalf("Erase() error = %v", err)
	}
	if m.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", m.Size())
	}
	if err := m.Erase(b); err == nil {
		t.Fatal("Erase() on already-erased handle = nil error, want non-nil")
	}
	if err := m.Erase(a); err != nil {
		t.Fatalf("Erase() error = %v", err)
	}
	if m.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", m.Size())
	}
}

func TestEraseValueRemovesOneAnchor(t *testing.T) {
	m := treemultiset.New[int](4, 4, 4)
	if !m.EraseValue(4) {
		t.Fatal("EraseValue(4) = false, want true")
	}
	if m.Size() != 2 {
		t.Fatalf("Size() = %d after EraseValue, want 2", m.Size())
	}
	if !m.Contains(4) {
		t.Fatal("Contains(4) = false, remaining duplicates should still be present")
	}
}

func TestRoundRobinFIFOOrderOnPopViaTree(t *testing.T) {
	m := treemultiset.New[int]()
	first := m.Insert(9)
	m.Insert(9)
	m.Insert(9)

	popped, ok := m.Tree().PopMax()
	if !ok {
		t.Fatal("PopMax() ok = false")
	}
	if popped != first {
		t.Fatal("PopMax() did not return the oldest equal-key member first")
	}
}

func TestClearEmptiesMultiSet(t *testing.T) {
	m := treemultiset.New[int](1, 1, 2, 3)
	m.Clear()
	if !m.Empty() {
		t.Fatal("Empty() = false after Clear")
	}
	if m.Size() != 0 {
		t.Fatalf("Size() = %d after Clear, want 0", m.Size())
	}
}
