package voxcore

import "testing"

func TestAxisArrayAddKeepsSortedOrder(t *testing.T) {
	a := NewAxisArray()
	coords := []int32{5, 1, 9, -3, 0, 4}
	for _, c := range coords {
		a.Add(c, c)
	}

	entries := a.Dump()
	if len(entries) != len(coords) {
		t.Fatalf("expected %d entries, got %d", len(coords), len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Coord >= entries[i].Coord {
			t.Fatalf("entries not sorted: %v", entries)
		}
	}
}

func TestAxisArrayAddIsIdempotentOnOverwrite(t *testing.T) {
	a := NewAxisArray()
	a.Add(3, "first")
	prev, replaced := a.Add(3, "second")
	if !replaced || prev != "first" {
		t.Fatalf("expected replace of 'first', got prev=%v replaced=%v", prev, replaced)
	}
	if a.Len() != 1 {
		t.Fatalf("expected single entry after overwrite, got %d", a.Len())
	}
	v, ok := a.Get(3)
	if !ok || v != "second" {
		t.Fatalf("expected 'second' at coord 3, got %v ok=%v", v, ok)
	}
}

func TestAxisArrayGetMissing(t *testing.T) {
	a := NewAxisArray()
	a.Add(1, 1)
	a.Add(2, 2)
	if _, ok := a.Get(99); ok {
		t.Fatalf("expected miss for unpopulated coord")
	}
}

func TestAxisArrayRemoveShiftsRemaining(t *testing.T) {
	a := NewAxisArray()
	for _, c := range []int32{1, 2, 3, 4} {
		a.Add(c, c*10)
	}
	v, ok := a.Remove(2)
	if !ok || v != int32(20) {
		t.Fatalf("expected to remove value 20, got %v ok=%v", v, ok)
	}
	if a.Len() != 3 {
		t.Fatalf("expected 3 entries after remove, got %d", a.Len())
	}
	for _, c := range []int32{1, 3, 4} {
		if _, ok := a.Get(c); !ok {
			t.Fatalf("expected coord %d to survive removal", c)
		}
	}
	if _, ok := a.Get(2); ok {
		t.Fatalf("expected coord 2 to be gone")
	}
}

func TestAxisArrayRemoveMissingIsNoop(t *testing.T) {
	a := NewAxisArray()
	a.Add(1, 1)
	if _, ok := a.Remove(42); ok {
		t.Fatalf("expected removing an absent coord to report false")
	}
	if a.Len() != 1 {
		t.Fatalf("expected array untouched, got len %d", a.Len())
	}
}

func TestAxisArrayGrowsByDoublingFrom64(t *testing.T) {
	a := NewAxisArray()
	for i := int32(0); i < 65; i++ {
		a.Add(i, nil)
	}
	if cap(a.nodes) != 128 {
		t.Fatalf("expected capacity to double past the 64-entry floor to 128, got %d", cap(a.nodes))
	}
}

func TestAxisArrayNegativeCoordinates(t *testing.T) {
	a := NewAxisArray()
	a.Add(-5, "neg")
	a.Add(5, "pos")
	a.Add(0, "zero")

	entries := a.Dump()
	want := []int32{-5, 0, 5}
	for i, e := range entries {
		if e.Coord != want[i] {
			t.Fatalf("entry %d: expected coord %d, got %d", i, want[i], e.Coord)
		}
	}
}
