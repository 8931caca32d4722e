package voxcore

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestChunk(t *testing.T, edge int) *Chunk {
	t.Helper()
	return newChunk(0, 0, 0, edge)
}

func TestChunkCellRelOutOfRangePanics(t *testing.T) {
	c := newTestChunk(t, 4)
	defer func() {
		r := recover()
		f, ok := r.(Fault)
		if !ok || f.Code != FaultOutOfRange {
			t.Fatalf("expected Fault{FaultOutOfRange}, got %#v", r)
		}
	}()
	c.CellRel(-1, 0, 0)
}

func TestChunkCellRelRoundTripsWrites(t *testing.T) {
	c := newTestChunk(t, 4)
	c.CellRel(1, 2, 3).Type = 7
	if got := c.CellRel(1, 2, 3).Type; got != 7 {
		t.Fatalf("expected type 7 at (1,2,3), got %d", got)
	}
}

func TestChunkSetFromBytesScenarioS2(t *testing.T) {
	edge := 12
	c := newChunk(0, 0, 0, edge)
	n := edge * edge * edge
	data := make([]byte, n*CellByteSize)
	// All-zero payload, then edit two boundary cells.
	setCellInBuf := func(data []byte, x, y, z int, cell Cell) {
		idx := x + y*edge + z*edge*edge
		EncodeCell(cell, data[idx*CellByteSize:idx*CellByteSize+CellByteSize])
	}
	setCellInBuf(data, 0, 5, 5, Cell{Type: 1, Light: 0, Meta: 0, Add: 0})
	setCellInBuf(data, edge-1, 5, 5, Cell{Type: 2})

	mask := c.SetFromBytes(data)
	want := FaceNegX | FacePosX
	if mask != want {
		t.Fatalf("expected mask %#x (-x|+x), got %#x", want, mask)
	}
	if !c.Dirty() {
		t.Fatalf("expected chunk to be marked dirty after SetFromBytes")
	}
}

func TestChunkGetBytesRoundTripsSetFromBytes(t *testing.T) {
	edge := 4
	c := newChunk(0, 0, 0, edge)
	n := edge * edge * edge
	data := make([]byte, n*CellByteSize)
	for i := 0; i < n; i++ {
		EncodeCell(Cell{Type: uint16(i % 16), Light: uint8(i % 16), Meta: byte(i), Add: byte(i * 3)}, data[i*CellByteSize:i*CellByteSize+CellByteSize])
	}
	c.SetFromBytes(data)

	out := make([]byte, n*CellByteSize)
	c.GetBytes(out)
	for i := range data {
		if data[i] != out[i] {
			t.Fatalf("byte %d mismatch: got %#x want %#x", i, out[i], data[i])
		}
	}
}

func TestChunkNeighbourCellWrapsIntoNeighbourChunk(t *testing.T) {
	edge := 4
	c := newChunk(0, 0, 0, edge)
	neigh := newChunk(1, 0, 0, edge)
	neigh.CellRel(0, 1, 2).Type = 9

	got := c.NeighbourCell(edge, 1, 2, neigh)
	if got.Type != 9 {
		t.Fatalf("expected wrap into neighbour's x=0 plane to read type 9, got %d", got.Type)
	}
}

func TestChunkNeighbourCellFallsBackToSentinel(t *testing.T) {
	edge := 4
	c := newChunk(0, 0, 0, edge)
	got := c.NeighbourCell(-1, 0, 0, nil)
	if got.Type != 0 || !got.Visible {
		t.Fatalf("expected sentinel cell, got %+v", *got)
	}
	// Mutating the returned pointer must not affect subsequent sentinel reads.
	got.Type = 77
	again := c.NeighbourCell(-1, 0, 0, nil)
	if again.Type != 0 {
		t.Fatalf("sentinel mutation leaked across calls: got %+v", *again)
	}
}

func TestChunkCalcVisibilityLocalMarksExposedSolid(t *testing.T) {
	edge := 3
	c := newChunk(0, 0, 0, edge)
	attrs := NewObjectAttributes(4)
	attrs.SetObjectType(1, false, true, true, false, mgl32.Vec4{})

	c.CellRel(1, 1, 1).Type = 1 // fully surrounded by air within this chunk
	c.CalcVisibility(attrs)

	if !c.CellRel(1, 1, 1).Visible {
		t.Fatalf("expected center solid cell surrounded by air to be visible")
	}
}

func TestChunkCalcVisibilityWorldAwareOccludesAtBoundary(t *testing.T) {
	edge := 2
	c := newChunk(0, 0, 0, edge)
	right := newChunk(1, 0, 0, edge)
	attrs := NewObjectAttributes(4)
	attrs.SetObjectType(1, false, true, true, false, mgl32.Vec4{})
	attrs.SetObjectType(2, false, true, true, false, mgl32.Vec4{})

	// Solid cell at the +x boundary of c; fill every cell of its neighbour
	// chunk solid too, so every direction (including the world-aware +x
	// neighbour) is opaque.
	for i := range right.cells {
		right.cells[i].Type = 2
	}
	for i := range c.cells {
		c.cells[i].Type = 2
	}
	c.CellRel(edge-1, 0, 0).Type = 1

	c.CalcVisibilityWorldAware(attrs, right, right, right, right, right, right)
	if c.CellRel(edge-1, 0, 0).Visible {
		t.Fatalf("expected boundary cell fully occluded by solid neighbours to be invisible")
	}
}
