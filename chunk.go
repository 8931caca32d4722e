package voxcore

import "math"

// Face-change bits returned by Chunk.SetFromBytes, OR'd together across
// every boundary cell whose type or light changed.
const (
	FaceNegX uint8 = 0x01
	FaceNegY uint8 = 0x02
	FaceNegZ uint8 = 0x04
	FacePosX uint8 = 0x08
	FacePosY uint8 = 0x10
	FacePosZ uint8 = 0x20
)

// Chunk owns edge^3 cells in row-major layout (x fastest, then y, then z)
// plus its integer chunk coordinate and a dirty flag. SetFromBytes marks the
// chunk dirty; writes made through the pointers returned by CellRel, CellAbs
// and NeighbourCell do not set dirty.
type Chunk struct {
	X, Y, Z int32
	edge    int
	cells   []Cell
	dirty   bool
}

func newChunk(x, y, z int32, edge int) *Chunk {
	return &Chunk{
		X:    x,
		Y:    y,
		Z:    z,
		edge: edge,
		cells: make([]Cell, edge*edge*edge),
	}
}

// Edge returns the chunk's cell-per-axis size.
func (c *Chunk) Edge() int { return c.edge }

// Dirty reports whether the chunk has unflushed changes.
func (c *Chunk) Dirty() bool { return c.dirty }

// ClearDirty marks the chunk as flushed.
func (c *Chunk) ClearDirty() { c.dirty = false }

func (c *Chunk) offset(x, y, z int) int {
	return x + y*c.edge + z*c.edge*c.edge
}

func (c *Chunk) inRange(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < c.edge && y < c.edge && z < c.edge
}

// CellRel returns a pointer to the cell at chunk-relative coordinates
// (x, y, z). Negative coordinates are rejected rather than aliased to a
// positive index (the source's REL_POS2OFFS used abs(), which this package
// deliberately does not reproduce); callers needing a signed neighbor
// offset must use NeighbourCell.
func (c *Chunk) CellRel(x, y, z int) *Cell {
	if !c.inRange(x, y, z) {
		panic(Fault{Code: FaultOutOfRange, Msg: "chunk: relative cell index out of range"})
	}
	return &c.cells[c.offset(x, y, z)]
}

// CellAbs returns a pointer to the cell owning world position (wx, wy, wz),
// which must fall within this chunk's bounds. Uses floor, not truncation,
// so it agrees with ChunkIndex.ChunkAt on negative coordinates.
func (c *Chunk) CellAbs(wx, wy, wz float64) *Cell {
	lx := int(math.Floor(wx)) - int(c.X)*c.edge
	ly := int(math.Floor(wy)) - int(c.Y)*c.edge
	lz := int(math.Floor(wz)) - int(c.Z)*c.edge
	return c.CellRel(lx, ly, lz)
}

// NeighbourCell resolves the cell at chunk-relative coordinates that may
// spill outside [0, edge) on any axis by one step (the common case for
// 6-connected neighbor lookups). If the coordinates fall inside this chunk,
// it behaves like CellRel. If they spill outside and neigh is non-nil, the
// spilling axis wraps into neigh's far side. If neigh is nil, it returns a
// pointer to a fresh copy of the sentinel cell (transparent, unlit, visible)
// so callers can never mutate shared sentinel state.
func (c *Chunk) NeighbourCell(x, y, z int, neigh *Chunk) *Cell {
	if c.inRange(x, y, z) {
		return &c.cells[c.offset(x, y, z)]
	}
	if neigh != nil {
		nx, ny, nz := x, y, z
		if nx < 0 {
			nx += c.edge
		} else if nx >= c.edge {
			nx -= c.edge
		}
		if ny < 0 {
			ny += c.edge
		} else if ny >= c.edge {
			ny -= c.edge
		}
		if nz < 0 {
			nz += c.edge
		} else if nz >= c.edge {
			nz -= c.edge
		}
		if neigh.inRange(nx, ny, nz) {
			return &neigh.cells[neigh.offset(nx, ny, nz)]
		}
	}
	s := sentinelCell
	return &s
}

// SetFromBytes decodes a full edge^3*CellByteSize payload (scan order x
// fastest, then y, then z) into the chunk's cells, returning the OR of
// face-change bits for every boundary cell whose type or light changed.
// Panics with FaultDecodeUnderrun if data is too short.
func (c *Chunk) SetFromBytes(data []byte) uint8 {
	need := len(c.cells) * CellByteSize
	if len(data) < need {
		panic(Fault{Code: FaultDecodeUnderrun, Msg: "chunk: payload shorter than edge^3 cells"})
	}

	var mask uint8
	last := c.edge - 1
	for z := 0; z < c.edge; z++ {
		for y := 0; y < c.edge; y++ {
			for x := 0; x < c.edge; x++ {
				idx := c.offset(x, y, z)
				changed := DecodeCell(data[idx*CellByteSize:idx*CellByteSize+CellByteSize], &c.cells[idx])
				if !changed {
					continue
				}
				if x == 0 {
					mask |= FaceNegX
				}
				if y == 0 {
					mask |= FaceNegY
				}
				if z == 0 {
					mask |= FaceNegZ
				}
				if x == last {
					mask |= FacePosX
				}
				if y == last {
					mask |= FacePosY
				}
				if z == last {
					mask |= FacePosZ
				}
			}
		}
	}
	c.dirty = true
	return mask
}

// GetBytes encodes every cell into dst, which must be at least
// edge^3*CellByteSize bytes long.
func (c *Chunk) GetBytes(dst []byte) {
	need := len(c.cells) * CellByteSize
	if len(dst) < need {
		panic(Fault{Code: FaultDecodeUnderrun, Msg: "chunk: destination buffer shorter than edge^3 cells"})
	}
	for i := range c.cells {
		EncodeCell(c.cells[i], dst[i*CellByteSize:i*CellByteSize+CellByteSize])
	}
}

func (c *Chunk) neighboursTransparent(attrs *ObjectAttributes, x, y, z int, top, bot, left, right, front, back *Chunk) bool {
	if attrs.IsTransparentCell(*c.NeighbourCell(x, y+1, z, top)) {
		return true
	}
	if attrs.IsTransparentCell(*c.NeighbourCell(x, y-1, z, bot)) {
		return true
	}
	if attrs.IsTransparentCell(*c.NeighbourCell(x-1, y, z, left)) {
		return true
	}
	if attrs.IsTransparentCell(*c.NeighbourCell(x+1, y, z, right)) {
		return true
	}
	if attrs.IsTransparentCell(*c.NeighbourCell(x, y, z-1, front)) {
		return true
	}
	if attrs.IsTransparentCell(*c.NeighbourCell(x, y, z+1, back)) {
		return true
	}
	return false
}

// CalcVisibility recomputes the Visible flag for every cell using only this
// chunk's own cells; a non-air cell at the chunk boundary is conservatively
// treated as visible if its out-of-chunk side has no real neighbor to
// consult (the sentinel reads as transparent). Fast, but can mark boundary
// cells visible when a real neighbor would have occluded them.
func (c *Chunk) CalcVisibility(attrs *ObjectAttributes) {
	c.calcVisibility(attrs, nil, nil, nil, nil, nil, nil)
}

// CalcVisibilityWorldAware recomputes Visible using the six real neighbor
// chunks where available, falling back to the sentinel only where a
// neighbor chunk is genuinely absent.
func (c *Chunk) CalcVisibilityWorldAware(attrs *ObjectAttributes, top, bot, left, right, front, back *Chunk) {
	c.calcVisibility(attrs, top, bot, left, right, front, back)
}

func (c *Chunk) calcVisibility(attrs *ObjectAttributes, top, bot, left, right, front, back *Chunk) {
	for i := range c.cells {
		c.cells[i].Visible = false
	}
	for z := 0; z < c.edge; z++ {
		for y := 0; y < c.edge; y++ {
			for x := 0; x < c.edge; x++ {
				idx := c.offset(x, y, z)
				cell := &c.cells[idx]
				if cell.Type == 0 {
					continue
				}
				if c.neighboursTransparent(attrs, x, y, z, top, bot, left, right, front, back) {
					cell.Visible = true
				}
			}
		}
	}
}
