// Package volume implements the volumetric drawing engine: four dense
// scalar buffers of edge^3 values, a selected source/destination pair, a
// blend operator, and range-gated inclusion masks, used to compose
// procedural content (noise, fractals, primitives) before it is baked into
// chunk payloads.
package volume

import "fmt"

// Op selects how a written value combines with the current destination
// value.
type Op int

const (
	OpSet Op = iota
	OpAdd
	OpSub
	OpMul
)

// Range is an inclusive numeric range used as an inclusion mask.
type Range struct {
	Lo, Hi float64
}

func (r Range) contains(v float64) bool {
	return v >= r.Lo && v <= r.Hi
}

// Engine holds four edge^3 scalar buffers and the current draw state
// (selected src/dst buffer, operator, range gates) that every drawing
// primitive reads and writes through.
type Engine struct {
	edge      int
	buffers   [4][]float64
	srcIdx    int
	dstIdx    int
	op        Op
	dstRange  Range
	srcRange  Range
	noise     NoiseFactory
}

// NewEngine allocates an Engine with four zeroed edge^3 buffers. Buffer 0
// is selected as both source and destination by default, the operator is
// OpSet, and both range gates default to [0, 1], matching the normalized
// [0,1] domain noise and fractal primitives fill; a voxel whose dst or src
// value lies outside [0, 1] is not written until the gates are widened.
func NewEngine(edge int) *Engine {
	e := &Engine{edge: edge}
	n := edge * edge * edge
	for i := range e.buffers {
		e.buffers[i] = make([]float64, n)
	}
	e.dstRange = Range{Lo: 0, Hi: 1}
	e.srcRange = Range{Lo: 0, Hi: 1}
	return e
}

// Edge returns the engine's per-axis buffer size.
func (e *Engine) Edge() int { return e.edge }

// Buffer returns buffer i (0-3) directly, for seeding or inspecting
// content outside the operator pipeline.
func (e *Engine) Buffer(i int) []float64 {
	return e.buffers[i]
}

// SetSrc selects buffer i (clamped to [0,3]) as the source buffer.
func (e *Engine) SetSrc(i int) { e.srcIdx = clampBufIdx(i) }

// SetDst selects buffer i (clamped to [0,3]) as the destination buffer.
func (e *Engine) SetDst(i int) { e.dstIdx = clampBufIdx(i) }

func clampBufIdx(i int) int {
	if i < 0 {
		return 0
	}
	if i > 3 {
		return 3
	}
	return i
}

// SetOp selects the blend operator used by subsequent writes.
func (e *Engine) SetOp(op Op) { e.op = op }

// SetDstRange sets the inclusion range tested against the current
// destination value before a write is applied.
func (e *Engine) SetDstRange(lo, hi float64) { e.dstRange = Range{Lo: lo, Hi: hi} }

// SetSrcRange sets the inclusion range tested against the current source
// value before a write is applied.
func (e *Engine) SetSrcRange(lo, hi float64) { e.srcRange = Range{Lo: lo, Hi: hi} }

// SetNoiseFactory installs the Sampler factory used by FillNoiseOctaves.
func (e *Engine) SetNoiseFactory(f NoiseFactory) { e.noise = f }

func (e *Engine) idx(x, y, z int) int {
	return x + y*e.edge + z*e.edge*e.edge
}

func (e *Engine) inBounds(x, y, z int) bool {
	return x >= 0 && y >= 0 && z >= 0 && x < e.edge && y < e.edge && z < e.edge
}

func (e *Engine) src() []float64 { return e.buffers[e.srcIdx] }
func (e *Engine) dst() []float64 { return e.buffers[e.dstIdx] }

// applyAt applies the current operator at (x,y,z) with operand val,
// gated by dstRange/srcRange against the cell's current dst/src values.
// Callers are expected to have already bounds-checked (x,y,z).
func (e *Engine) applyAt(x, y, z int, val float64) {
	i := e.idx(x, y, z)
	d := e.dst()[i]
	if !e.dstRange.contains(d) {
		return
	}
	s := e.src()[i]
	if !e.srcRange.contains(s) {
		return
	}
	switch e.op {
	case OpAdd:
		e.dst()[i] = d + val
	case OpSub:
		nv := d - val
		if nv < 0 {
			nv = 0
		}
		e.dst()[i] = nv
	case OpMul:
		e.dst()[i] = d * val
	case OpSet:
		e.dst()[i] = val
	default:
		panic(fmt.Sprintf("volume: unknown operator %d", e.op))
	}
}

// FillVal applies val at every voxel, through the operator/range gates.
func (e *Engine) FillVal(val float64) {
	for z := 0; z < e.edge; z++ {
		for y := 0; y < e.edge; y++ {
			for x := 0; x < e.edge; x++ {
				e.applyAt(x, y, z, val)
			}
		}
	}
}

// FillSrc applies the source buffer's own value at every voxel, through
// the operator/range gates (a copy, blend, or masked-copy depending on op).
func (e *Engine) FillSrc() {
	for z := 0; z < e.edge; z++ {
		for y := 0; y < e.edge; y++ {
			for x := 0; x < e.edge; x++ {
				e.applyAt(x, y, z, e.src()[e.idx(x, y, z)])
			}
		}
	}
}

// FillSrcRange applies the source buffer's value at voxels whose source
// value falls in [lo, hi) (note: half-open, unlike the persistent
// src/dst range gates, matching the source's distinct per-call range).
func (e *Engine) FillSrcRange(lo, hi float64) {
	for z := 0; z < e.edge; z++ {
		for y := 0; y < e.edge; y++ {
			for x := 0; x < e.edge; x++ {
				v := e.src()[e.idx(x, y, z)]
				if v >= lo && v < hi {
					e.applyAt(x, y, z, v)
				}
			}
		}
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MapRange remaps every destination value in [a, b] onto [j, k], bypassing
// the operator (this is always a direct SET on the mapped voxels, matching
// the source). The interpolation parameter is the un-normalized v - a, not
// (v-a)/(b-a); callers choosing a b-a of 1 get a conventional lerp, but the
// contract does not normalize by span. If a > b the range is normalized by
// swapping both ends - the source has a swap bug here (see DESIGN.md) that
// this implementation fixes.
func (e *Engine) MapRange(a, b, j, k float64) {
	if a > b {
		a, b = b, a
	}
	for i, v := range e.dst() {
		if v < a || v > b {
			continue
		}
		e.dst()[i] = lerp(j, k, v-a)
	}
}
