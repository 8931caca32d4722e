package voxcore

import "github.com/google/uuid"

// World owns a ChunkIndex, the ObjectAttributes table, the light-propagation
// substrate, and the change-notification seam. It is the single entry point
// a host embeds; it is not safe for concurrent use without external
// synchronization, by design (single-owner, cooperative scheduling is a
// hard constraint of this core, not an incidental property of its
// implementation).
type World struct {
	index          *ChunkIndex
	Attrs          *ObjectAttributes
	light          *lightSubstrate
	logger         Logger
	edge           int
	maxLightRadius int

	chunkChange      ChunkChangeFunc
	activeCellChange ActiveCellChangeFunc
}

// NewWorld constructs a World from cfg, filling zero fields with package
// defaults.
func NewWorld(cfg Config) *World {
	if cfg.ChunkEdge <= 0 {
		cfg.ChunkEdge = ChunkEdgeDefault
	}
	if cfg.MaxTypes <= 0 {
		cfg.MaxTypes = MaxTypesDefault
	}
	if cfg.MaxLightRadius <= 0 {
		cfg.MaxLightRadius = MaxLightRadiusDefault
	}
	return &World{
		index:          newChunkIndex(cfg.ChunkEdge),
		Attrs:          NewObjectAttributes(cfg.MaxTypes),
		light:          newLightSubstrate(cfg.ChunkEdge),
		logger:         NewNopLogger(),
		edge:           cfg.ChunkEdge,
		maxLightRadius: cfg.MaxLightRadius,
	}
}

// WithLogger installs l as the World's logging sink and returns w, so it
// can be chained onto NewWorld.
func (w *World) WithLogger(l Logger) *World {
	if l == nil {
		l = NewNopLogger()
	}
	w.logger = l
	return w
}

// Logger returns the World's current logging sink (never nil).
func (w *World) Logger() Logger { return w.logger }

// Edge returns the configured chunk edge length.
func (w *World) Edge() int { return w.edge }

// MaxLightRadius returns the configured light propagation distance limit.
// It does not bound the queue capacity (which is sized from Edge alone);
// it is a hint a host's BFS light pass should consult to stop enqueueing
// neighbours once a frontier item's distance from its source exceeds it.
func (w *World) MaxLightRadius() int { return w.maxLightRadius }

// Chunk looks up (and, with alloc true, allocates) the chunk at chunk
// coordinates (x, y, z). Allocation is not itself a chunk_change event; the
// host decides when and how to batch/report chunk mutations.
func (w *World) Chunk(x, y, z int32, alloc bool) *Chunk {
	before := w.index.ChunkAllocCount()
	c := w.index.Chunk(x, y, z, alloc)
	if alloc && w.index.ChunkAllocCount() != before {
		w.logger.Debugf("chunk allocated at (%d,%d,%d), total=%d", x, y, z, w.index.ChunkAllocCount())
	}
	return c
}

// ChunkAt resolves the chunk owning world position (wx, wy, wz).
func (w *World) ChunkAt(wx, wy, wz float64, alloc bool) *Chunk {
	return w.index.ChunkAt(wx, wy, wz, alloc)
}

// chunkNeighbours returns the six axis-aligned neighbour chunks of c,
// without allocating any that are absent.
func (w *World) chunkNeighbours(c *Chunk) (top, bot, left, right, front, back *Chunk) {
	top = w.index.Chunk(c.X, c.Y+1, c.Z, false)
	bot = w.index.Chunk(c.X, c.Y-1, c.Z, false)
	left = w.index.Chunk(c.X-1, c.Y, c.Z, false)
	right = w.index.Chunk(c.X+1, c.Y, c.Z, false)
	front = w.index.Chunk(c.X, c.Y, c.Z-1, false)
	back = w.index.Chunk(c.X, c.Y, c.Z+1, false)
	return
}

// CalcChunkVisibility recomputes c's Visible flags consulting real
// neighbour chunks where resident, falling back to the sentinel cell only
// at the edge of loaded space.
func (w *World) CalcChunkVisibility(c *Chunk) {
	top, bot, left, right, front, back := w.chunkNeighbours(c)
	c.CalcVisibilityWorldAware(w.Attrs, top, bot, left, right, front, back)
}

// Purge removes the chunk at chunk coordinates (x, y, z), if present. Like
// Chunk, this does not itself emit a chunk_change notification.
func (w *World) Purge(x, y, z int32) bool {
	removed := w.index.Purge(x, y, z)
	if removed {
		w.logger.Debugf("chunk purged at (%d,%d,%d), remaining=%d", x, y, z, w.index.ChunkAllocCount())
	}
	return removed
}

// ChunkAllocCount reports the number of chunks currently resident.
func (w *World) ChunkAllocCount() int {
	return w.index.ChunkAllocCount()
}

// SetActiveCell updates the type of a cell at world coordinates and
// notifies the registered ActiveCellChangeFunc sink, if any, when doing so
// transitions the cell's active flag (inactive->active or active->inactive;
// active->active and inactive->inactive never fire).
func (w *World) SetActiveCell(wx, wy, wz float64, typ uint16, payload uuid.UUID) {
	c := w.ChunkAt(wx, wy, wz, true)
	cell := c.CellAbs(wx, wy, wz)
	wasActive := w.Attrs.IsActive(cell.Type)
	cell.Type = typ
	c.dirty = true
	if isActive := w.Attrs.IsActive(typ); isActive != wasActive {
		w.emitActiveCellChange(int32(wx), int32(wy), int32(wz), typ, payload)
	}
}

// Dump logs the full Y->X->Z axis nesting through the World's Logger,
// ported from the source's printf-based world dump.
func (w *World) Dump() {
	w.logger.Infof("world dump: %d chunks resident", w.index.ChunkAllocCount())
	for _, yn := range w.index.y.Dump() {
		xa := yn.Ptr.(*AxisArray)
		for _, xn := range xa.Dump() {
			za := xn.Ptr.(*AxisArray)
			for _, zn := range za.Dump() {
				c := zn.Ptr.(*Chunk)
				w.logger.Infof("  y=%d x=%d z=%d -> chunk(%d,%d,%d) dirty=%v", yn.Coord, xn.Coord, zn.Coord, c.X, c.Y, c.Z, c.dirty)
			}
		}
	}
}
