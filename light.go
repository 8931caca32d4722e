package voxcore

import "encoding/binary"

// LightItem is one entry of the BFS light-propagation frontier: a world
// cell coordinate and the light level to test/propagate at it.
type LightItem struct {
	X, Y, Z int32
	Lv      uint8
}

const lightItemSize = 4 + 4 + 4 + 1

func encodeLightItem(it LightItem, buf []byte) {
	binary.BigEndian.PutUint32(buf[0:4], uint32(it.X))
	binary.BigEndian.PutUint32(buf[4:8], uint32(it.Y))
	binary.BigEndian.PutUint32(buf[8:12], uint32(it.Z))
	buf[12] = it.Lv
}

func decodeLightItem(buf []byte) LightItem {
	return LightItem{
		X:  int32(binary.BigEndian.Uint32(buf[0:4])),
		Y:  int32(binary.BigEndian.Uint32(buf[4:8])),
		Z:  int32(binary.BigEndian.Uint32(buf[8:12])),
		Lv: buf[12],
	}
}

// lightSubstrate is the double-buffered ring-queue pair the BFS light pass
// reads its frontier from and writes the next one to. Both queues are
// conservatively sized at edge^3 * 9 * 2 items, covering the worst-case
// frontier of a single chunk's light update.
type lightSubstrate struct {
	queue1 *RingQueue
	queue2 *RingQueue
	active *RingQueue
}

func newLightSubstrate(edge int) *lightSubstrate {
	capacity := edge*edge*edge*9*2 + 1
	return &lightSubstrate{
		queue1: NewRingQueue(lightItemSize, capacity),
		queue2: NewRingQueue(lightItemSize, capacity),
	}
}

// LightUpdStart resets both light queues and selects queue 1 as active,
// beginning a fresh BFS pass.
func (w *World) LightUpdStart() {
	w.light.queue1.Clear()
	w.light.queue2.Clear()
	w.light.active = w.light.queue1
}

// LightSelectQueue switches the active queue between the two buffers (0 or
// 1), the double-buffering step between BFS generations.
func (w *World) LightSelectQueue(which int) {
	if which == 0 {
		w.light.active = w.light.queue1
	} else {
		w.light.active = w.light.queue2
	}
}

// LightEnqueue pushes a single light-propagation item onto the active
// queue.
func (w *World) LightEnqueue(x, y, z int32, lv uint8) {
	buf := make([]byte, lightItemSize)
	encodeLightItem(LightItem{X: x, Y: y, Z: z, Lv: lv}, buf)
	w.light.active.Enqueue(buf)
}

// LightEnqueueNeighbours pushes the six axis-aligned neighbours of
// (x, y, z) onto the active queue, in the deterministic order
// +x, -x, +y, -y, +z, -z.
func (w *World) LightEnqueueNeighbours(x, y, z int32, lv uint8) {
	w.LightEnqueue(x+1, y, z, lv)
	w.LightEnqueue(x-1, y, z, lv)
	w.LightEnqueue(x, y+1, z, lv)
	w.LightEnqueue(x, y-1, z, lv)
	w.LightEnqueue(x, y, z+1, lv)
	w.LightEnqueue(x, y, z-1, lv)
}

// LightFreezeQueue snapshots the active queue's cursors.
func (w *World) LightFreezeQueue() {
	w.light.active.Freeze()
}

// LightThawQueue restores the active queue's cursors to the last freeze.
func (w *World) LightThawQueue() {
	w.light.active.Thaw()
}

// LightDequeue pops one item from the active queue.
func (w *World) LightDequeue() (x, y, z int32, lv uint8, ok bool) {
	buf := make([]byte, lightItemSize)
	if !w.light.active.Dequeue(buf) {
		return 0, 0, 0, 0, false
	}
	it := decodeLightItem(buf)
	return it.X, it.Y, it.Z, it.Lv, true
}
