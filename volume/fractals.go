package volume

import "math"

// SphereSubdiv recursively stamps a sphere of the given size into the
// engine's destination buffer, octant-subdividing lvl-1 times to approximate
// a rounded surface out of axis-aligned sub-boxes. filled selects how the
// sphere blends against the existing source value: filled < 0 blends
// toward a flat "inside the sphere" value, filled > 0 (or 0) blends toward
// a falloff value near the sphere's surface; either way the magnitude of
// filled (via lerp with the source buffer) controls how much of the
// existing content shows through.
func (e *Engine) SphereSubdiv(x, y, z, size, filled float64, lvl int) {
	cntr := size / 2
	cx, cy, cz := x+cntr, y+cntr, z+cntr

	for j := 0.0; j < size; j++ {
		for k := 0.0; k < size; k++ {
			for l := 0.0; l < size; l++ {
				px, py, pz := x+j, y+k, z+l
				xi, yi, zi := int(px), int(py), int(pz)
				if !e.inBounds(xi, yi, zi) {
					continue
				}
				dx, dy, dz := px-cx, py-cy, pz-cz
				vlen := math.Sqrt(dx*dx + dy*dy + dz*dz)
				diff := vlen - (cntr - size/10)
				if diff >= 0 {
					continue
				}
				sphereVal := -diff / cntr
				srcVal := e.src()[e.idx(xi, yi, zi)]
				if filled < 0 {
					e.applyAt(xi, yi, zi, lerp(sphereVal, srcVal, -filled))
				} else {
					e.applyAt(xi, yi, zi, lerp(1-sphereVal, srcVal, filled))
				}
			}
		}
	}

	if lvl <= 1 {
		return
	}
	next := lvl - 1
	e.SphereSubdiv(x, y, z, cntr, filled, next)
	e.SphereSubdiv(x, y, z+cntr, cntr, filled, next)
	e.SphereSubdiv(x+cntr, y, z, cntr, filled, next)
	e.SphereSubdiv(x+cntr, y, z+cntr, cntr, filled, next)
	e.SphereSubdiv(x, y+cntr, z, cntr, filled, next)
	e.SphereSubdiv(x, y+cntr, z+cntr, cntr, filled, next)
	e.SphereSubdiv(x+cntr, y+cntr, z, cntr, filled, next)
	e.SphereSubdiv(x+cntr, y+cntr, z+cntr, cntr, filled, next)
}

// MengerSpongeBox stamps a Menger-sponge approximation into the engine's
// destination buffer: at lvl 0, copies the source buffer's value into the
// size^3 leaf box; otherwise splits the box into 27 equal sub-boxes,
// recursing into only the 20 that survive a sponge carve (any sub-box with
// fewer than two axes on the outer shell - i.e. the center of each face and
// the center of the whole cube - is carved away).
func (e *Engine) MengerSpongeBox(x, y, z, size float64, lvl int) {
	if lvl <= 0 {
		for j := 0.0; j < size; j++ {
			for k := 0.0; k < size; k++ {
				for l := 0.0; l < size; l++ {
					xi, yi, zi := int(x+j), int(y+k), int(z+l)
					if !e.inBounds(xi, yi, zi) {
						continue
					}
					e.applyAt(xi, yi, zi, e.src()[e.idx(xi, yi, zi)])
				}
			}
		}
		return
	}

	sub := size / 3
	for j := 0; j < 3; j++ {
		for k := 0; k < 3; k++ {
			for l := 0; l < 3; l++ {
				onShell := 0
				if j == 0 || j == 2 {
					onShell++
				}
				if k == 0 || k == 2 {
					onShell++
				}
				if l == 0 || l == 2 {
					onShell++
				}
				if onShell < 2 {
					continue
				}
				e.MengerSpongeBox(x+float64(j)*sub, y+float64(k)*sub, z+float64(l)*sub, sub, lvl-1)
			}
		}
	}
}

// CantorDustBox stamps a 3D Cantor-dust approximation: at lvl 0, copies the
// source buffer's value into the size^3 leaf box, scanning in z-fastest
// order (then y, then x) and returning immediately (abandoning the rest of
// the leaf) the first time a voxel falls outside the buffer's upper bound on
// any axis. This early-return-on-first-miss quirk is inherited from the
// source and preserved deliberately (see DESIGN.md); callers must keep leaf boxes
// within bounds if they want the whole leaf drawn.
func (e *Engine) CantorDustBox(x, y, z, size float64, lvl int) {
	if lvl <= 0 {
		for j := 0.0; j < size; j++ {
			for k := 0.0; k < size; k++ {
				for l := 0.0; l < size; l++ {
					xi, yi, zi := int(x+j), int(y+k), int(z+l)
					if xi >= e.edge || yi >= e.edge || zi >= e.edge {
						return
					}
					e.applyAt(xi, yi, zi, e.src()[e.idx(xi, yi, zi)])
				}
			}
		}
		return
	}

	rad := float64(lvl)
	if rad < 1 {
		rad = 1
	}
	sub := size/2 - rad
	offs := sub + 2*rad

	e.CantorDustBox(x, y, z, sub, lvl-1)
	e.CantorDustBox(x+offs, y, z, sub, lvl-1)
	e.CantorDustBox(x, y, z+offs, sub, lvl-1)
	e.CantorDustBox(x+offs, y, z+offs, sub, lvl-1)
	e.CantorDustBox(x, y+offs, z, sub, lvl-1)
	e.CantorDustBox(x+offs, y+offs, z, sub, lvl-1)
	e.CantorDustBox(x, y+offs, z+offs, sub, lvl-1)
	e.CantorDustBox(x+offs, y+offs, z+offs, sub, lvl-1)
}
