package voxcore

import "github.com/google/uuid"

// ChunkChangeFunc is invoked after a chunk's contents change in a way that
// downstream consumers (meshing, persistence, networking) care about. World
// never calls it itself from low-level cell writes or chunk allocation; the
// host is responsible for batching edits and calling NotifyChunkChange once
// it is done. It is fire-and-forget: World makes no re-entrancy guarantees
// and does not wait on or retry a failed sink.
type ChunkChangeFunc func(cx, cy, cz int32)

// ActiveCellChangeFunc is invoked when a cell flagged Active in
// ObjectAttributes changes state. payload is an opaque handle the host
// attaches to the change (e.g. a scripting-side entity reference); World
// never interprets it. uuid.UUID is the concrete type used by this
// package's own tests and by convention for host object references.
type ActiveCellChangeFunc func(wx, wy, wz int32, typ uint16, payload uuid.UUID)

// RegisterChunkChange installs (replacing any prior registration) the sink
// for chunk-change notifications. A nil fn disables notification.
func (w *World) RegisterChunkChange(fn ChunkChangeFunc) {
	w.chunkChange = fn
}

// RegisterActiveCellChange installs (replacing any prior registration) the
// sink for active-cell-change notifications. A nil fn disables
// notification.
func (w *World) RegisterActiveCellChange(fn ActiveCellChangeFunc) {
	w.activeCellChange = fn
}

// NotifyChunkChange invokes the registered ChunkChangeFunc sink, if any, for
// the chunk at (cx, cy, cz). World never calls this on its own behalf; the
// host calls it after applying a batch of external edits.
func (w *World) NotifyChunkChange(cx, cy, cz int32) {
	w.emitChunkChange(cx, cy, cz)
}

func (w *World) emitChunkChange(cx, cy, cz int32) {
	if w.chunkChange == nil {
		return
	}
	w.chunkChange(cx, cy, cz)
}

func (w *World) emitActiveCellChange(wx, wy, wz int32, typ uint16, payload uuid.UUID) {
	if w.activeCellChange == nil {
		w.logger.Debugf("active cell change at (%d,%d,%d) type=%d dropped: no sink registered", wx, wy, wz, typ)
		return
	}
	w.activeCellChange(wx, wy, wz, typ, payload)
}
