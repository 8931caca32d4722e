package voxcore

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ObjectAttrEntry holds the per-type rendering/gameplay attributes consulted
// by visibility and light propagation. Type 0 is the canonical air slot and
// is seeded transparent by NewObjectAttributes.
type ObjectAttrEntry struct {
	UV          mgl32.Vec4
	Transparent bool
	Blocking    bool
	HasTexture  bool
	Active      bool
	Model       bool
	ModelDim    int
	ModelBlocks []uint16
}

// ObjectAttributes is a fixed-size table, indexed by cell type, of the
// attributes that decide whether a cell occludes its neighbors, blocks
// light, or resolves to an instanced model rather than a single block.
type ObjectAttributes struct {
	entries  []ObjectAttrEntry
	maxTypes int
}

func NewObjectAttributes(maxTypes int) *ObjectAttributes {
	entries := make([]ObjectAttrEntry, maxTypes)
	entries[0].Transparent = true
	return &ObjectAttributes{entries: entries, maxTypes: maxTypes}
}

func (oa *ObjectAttributes) checkType(t uint16) {
	if int(t) >= oa.maxTypes {
		panic(Fault{Code: FaultInvalidType, Msg: fmt.Sprintf("object type %d >= max types %d", t, oa.maxTypes)})
	}
}

// MaxTypes reports the size of the attribute table.
func (oa *ObjectAttributes) MaxTypes() int { return oa.maxTypes }

// Get returns a mutable pointer to the attribute entry for type t. Panics
// with FaultInvalidType if t is out of range.
func (oa *ObjectAttributes) Get(t uint16) *ObjectAttrEntry {
	oa.checkType(t)
	return &oa.entries[t]
}

// SetObjectType configures the occlusion/texture attributes for type t.
func (oa *ObjectAttributes) SetObjectType(t uint16, transparent, blocking, hasTexture, active bool, uv mgl32.Vec4) {
	e := oa.Get(t)
	e.Transparent = transparent
	e.Blocking = blocking
	e.HasTexture = hasTexture
	e.Active = active
	e.UV = uv
}

// SetObjectModel marks type t as resolving to a dim x dim x dim instanced
// model rather than a single textured block. dim is clamped to
// [0, MaxModelDim]; up to MaxModelSize block ids are copied from blocks,
// regardless of dim.
func (oa *ObjectAttributes) SetObjectModel(t uint16, dim int, blocks []uint16) {
	e := oa.Get(t)
	if dim > MaxModelDim {
		dim = MaxModelDim
	}
	if dim < 0 {
		dim = 0
	}
	n := MaxModelSize
	if len(blocks) < n {
		n = len(blocks)
	}
	e.Model = true
	e.ModelDim = dim
	e.ModelBlocks = append([]uint16(nil), blocks[:n]...)
}

// IsActive reports whether type t participates in active-cell change
// notifications (e.g. machines, doors - anything with host-driven state).
func (oa *ObjectAttributes) IsActive(t uint16) bool {
	return oa.Get(t).Active
}

// IsTransparent reports whether type t is transparent for occlusion
// purposes.
func (oa *ObjectAttributes) IsTransparent(t uint16) bool {
	return oa.Get(t).Transparent
}

// IsTransparentCell is a convenience wrapper over IsTransparent for a
// decoded Cell.
func (oa *ObjectAttributes) IsTransparentCell(c Cell) bool {
	return oa.IsTransparent(c.Type)
}

// IsBlocking reports whether type t blocks light propagation.
func (oa *ObjectAttributes) IsBlocking(t uint16) bool {
	return oa.Get(t).Blocking
}
