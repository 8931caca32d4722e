package voxcore

// RingQueue is a fixed-capacity circular byte buffer of item-size-agnostic
// records, with a pair of checkpoint cursors for freeze/thaw rollback. It
// backs the BFS light-propagation substrate, but is independently usable
// for any fixed-size-item flood-fill-style work list.
//
// start == end means empty. Capacity must be provisioned by the caller: an
// enqueue that would advance end onto start panics rather than silently
// overwriting unread data.
type RingQueue struct {
	data          []byte
	itemSize      int
	start, end    int
	freezeStart   int
	freezeEnd     int
}

// NewRingQueue allocates a ring queue holding up to capacityItems-1 items
// of itemSize bytes each (one slot is always held back to disambiguate
// full from empty). capacityItems must be > 1.
func NewRingQueue(itemSize, capacityItems int) *RingQueue {
	if capacityItems <= 1 {
		panic(Fault{Code: FaultInvalidArgument, Msg: "ring queue: capacityItems must be > 1"})
	}
	return &RingQueue{
		data:     make([]byte, itemSize*capacityItems),
		itemSize: itemSize,
	}
}

// Clear resets the queue to empty without altering capacity.
func (q *RingQueue) Clear() {
	q.start = 0
	q.end = 0
}

// Empty reports whether the queue currently holds no items.
func (q *RingQueue) Empty() bool {
	return q.start == q.end
}

// Enqueue copies item (which must be exactly itemSize bytes) to the tail of
// the queue and advances end, wrapping at the buffer boundary. Panics with
// FaultQueueExhausted if this would make the queue indistinguishable from
// empty.
func (q *RingQueue) Enqueue(item []byte) {
	if len(item) != q.itemSize {
		panic(Fault{Code: FaultInvalidArgument, Msg: "ring queue: item size mismatch"})
	}
	next := q.end + q.itemSize
	if next == len(q.data) {
		next = 0
	}
	if q.start == next {
		panic(Fault{Code: FaultQueueExhausted, Msg: "ring queue: capacity exceeded, caller must size for worst case"})
	}
	copy(q.data[q.end:q.end+q.itemSize], item)
	q.end = next
}

// Dequeue copies the item at the head of the queue into dst (which must be
// itemSize bytes) and advances start. Returns false without touching dst if
// the queue is empty.
func (q *RingQueue) Dequeue(dst []byte) bool {
	if q.Empty() {
		return false
	}
	copy(dst, q.data[q.start:q.start+q.itemSize])
	q.start += q.itemSize
	if q.start == len(q.data) {
		q.start = 0
	}
	return true
}

// Freeze snapshots the current cursors so a later Thaw can roll back any
// Enqueue/Dequeue done in between.
func (q *RingQueue) Freeze() {
	q.freezeStart = q.start
	q.freezeEnd = q.end
}

// Thaw restores the cursors captured by the last Freeze.
func (q *RingQueue) Thaw() {
	q.start = q.freezeStart
	q.end = q.freezeEnd
}
