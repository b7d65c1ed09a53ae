// Package container_test exercises the Container interface and its sorting
// utilities against this module's own containers, rather than a standalone
// toy implementation.
package container_test

import (
	"testing"

	"github.com/qntx/ordcol/container"
	"github.com/qntx/ordcol/depq"
	"github.com/qntx/ordcol/treemultiset"
	"github.com/qntx/ordcol/treeset"
)

func TestSetSatisfiesContainer(t *testing.T) {
	t.Parallel()

	var c container.Container[int] = treeset.New[int](3, 1, 2)

	if c.Empty() {
		t.Error("Empty() = true, want false")
	}
	if got := c.Size(); got != 3 {
		t.Errorf("Size() = %d, want 3", got)
	}
	if got := c.String(); got != "Set[1 2 3]" {
		t.Errorf("String() = %q, want %q", got, "Set[1 2 3]")
	}

	c.Clear()
	if !c.Empty() || c.Size() != 0 {
		t.Errorf("Clear() failed: Empty() = %v, Size() = %d", c.Empty(), c.Size())
	}
}

func TestMultiSetSatisfiesContainer(t *testing.T) {
	t.Parallel()

	var c container.Container[int] = treemultiset.New[int](5, 1, 5)

	if got := c.Size(); got != 3 {
		t.Errorf("Size() = %d, want 3", got)
	}
	if got := c.Values(); len(got) != 3 {
		t.Errorf("Values() length = %d, want 3", len(got))
	}

	c.Clear()
	if !c.Empty() {
		t.Error("Empty() = false after Clear")
	}
}

func TestGetSortedValues(t *testing.T) {
	t.Parallel()

	s := treeset.New[int](5, 1, 3, 2, 4)
	got := container.GetSortedValues[int](s)

	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("GetSortedValues() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetSortedValues() = %v, want %v", got, want)
			break
		}
	}

	// The set itself, already sorted by construction, must be unaffected.
	orig := s.Values()
	if len(orig) != 5 {
		t.Errorf("original set modified: got %v", orig)
	}
}

// notOrdered is a type without a natural order, exercising the
// comparator-driven sort path.
type notOrdered struct {
	n int
}

func TestGetSortedValuesFunc(t *testing.T) {
	t.Parallel()

	byN := func(a, b notOrdered) int {
		switch {
		case a.n < b.n:
			return -1
		case a.n > b.n:
			return 1
		default:
			return 0
		}
	}

	d := depq.NewWith(byN)
	for _, n := range []int{5, 1, 3, 2, 4} {
		d.Push(notOrdered{n: n})
	}

	got := container.GetSortedValuesFunc[notOrdered](d, byN)

	want := []int{1, 2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("GetSortedValuesFunc() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].n != want[i] {
			t.Errorf("GetSortedValuesFunc()[%d] = %v, want %d", i, got[i], want[i])
			break
		}
	}
}
