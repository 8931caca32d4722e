package voxcore

import "math"

// ChunkIndex is the Y->X->Z nesting of AxisArrays that back World's sparse
// chunk storage: chunks actually present in memory have an entry at every
// level of the nesting; everything else is implicitly absent.
type ChunkIndex struct {
	y          *AxisArray
	edge       int
	chunkAlloc int
}

func newChunkIndex(edge int) *ChunkIndex {
	return &ChunkIndex{y: NewAxisArray(), edge: edge}
}

// Chunk looks up (and optionally allocates) the chunk at chunk coordinates
// (x, y, z). With alloc false, a miss at any level returns nil without
// mutating the index.
func (ci *ChunkIndex) Chunk(x, y, z int32, alloc bool) *Chunk {
	xa, ok := ci.axisAt(ci.y, y, alloc)
	if !ok {
		return nil
	}
	za, ok := ci.axisAt(xa, x, alloc)
	if !ok {
		return nil
	}
	if cn, ok := za.Get(z); ok {
		return cn.(*Chunk)
	}
	if !alloc {
		return nil
	}
	c := newChunk(x, y, z, ci.edge)
	za.Add(z, c)
	ci.chunkAlloc++
	return c
}

func (ci *ChunkIndex) axisAt(parent *AxisArray, coord int32, alloc bool) (*AxisArray, bool) {
	if v, ok := parent.Get(coord); ok {
		return v.(*AxisArray), true
	}
	if !alloc {
		return nil, false
	}
	child := NewAxisArray()
	parent.Add(coord, child)
	return child, true
}

// ChunkAt resolves the chunk that owns world position (wx, wy, wz),
// floor-dividing each axis by the chunk edge (negative-safe: floor, not
// truncation).
func (ci *ChunkIndex) ChunkAt(wx, wy, wz float64, alloc bool) *Chunk {
	edge := float64(ci.edge)
	cx := int32(math.Floor(wx / edge))
	cy := int32(math.Floor(wy / edge))
	cz := int32(math.Floor(wz / edge))
	return ci.Chunk(cx, cy, cz, alloc)
}

// Purge removes the chunk at chunk coordinates (x, y, z), if present. It
// does not prune now-empty intermediate axis arrays; those are cheap to
// leave behind and a later Chunk lookup at the same (x, y) simply finds an
// empty Z array.
func (ci *ChunkIndex) Purge(x, y, z int32) bool {
	xn, ok := ci.y.Get(y)
	if !ok {
		return false
	}
	xa := xn.(*AxisArray)
	zn, ok := xa.Get(x)
	if !ok {
		return false
	}
	za := zn.(*AxisArray)
	if _, removed := za.Remove(z); removed {
		ci.chunkAlloc--
		return true
	}
	return false
}

// ChunkAllocCount reports the number of chunks currently resident.
func (ci *ChunkIndex) ChunkAllocCount() int {
	return ci.chunkAlloc
}
