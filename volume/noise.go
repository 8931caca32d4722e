package volume

import "math"

// Sampler is the external noise primitive contract: a handle to a seeded
// coherent-noise field over a cube of side edge, queryable per voxel at an
// arbitrary scale. Hosts typically wire this to whatever 3D noise library
// they already ship (Perlin, simplex, OpenSimplex); FillNoiseOctaves needs
// nothing more than this interface.
type Sampler interface {
	// Sample returns a noise value at (x, y, z) for the given scale,
	// normalized to the full uint32 range (the engine itself rescales to
	// [0, 1]).
	Sample(x, y, z int, scale float64) uint32
	// Close releases any resources the sampler holds (mirrors the
	// source's explicit free()).
	Close()
}

// NoiseFactory constructs a Sampler seeded for a given edge/seed pair.
// FillNoiseOctaves calls New once per invocation and Closes the result
// before returning.
type NoiseFactory interface {
	New(edge int, seed uint32) Sampler
}

// FillNoiseOctaves blends octaves+1 layers of coherent noise (from the
// engine's installed NoiseFactory) into the destination buffer, bypassing
// the operator and range gates entirely - this is always a direct
// normalized-sum write, matching the source's fill_noise_octaves. Seed 0 is
// remapped to 1 (coherent-noise implementations commonly special-case or
// degenerate at a zero seed).
func (e *Engine) FillNoiseOctaves(octaves int, factor, persistence float64, seed uint32) {
	if e.noise == nil {
		panic("volume: FillNoiseOctaves called with no NoiseFactory installed")
	}
	if seed == 0 {
		seed = 1
	}
	sampler := e.noise.New(e.edge, seed)
	defer sampler.Close()

	dst := e.dst()
	for i := range dst {
		dst[i] = 0
	}

	ampTotal := 0.0
	for o := 0; o <= octaves; o++ {
		scale := math.Pow(factor, float64(octaves-o))
		amp := math.Pow(persistence, float64(o))
		ampTotal += amp
		for z := 0; z < e.edge; z++ {
			for y := 0; y < e.edge; y++ {
				for x := 0; x < e.edge; x++ {
					s := sampler.Sample(x, y, z, scale)
					v := float64(s) / float64(math.MaxUint32)
					dst[e.idx(x, y, z)] += v * amp
				}
			}
		}
	}
	if ampTotal == 0 {
		return
	}
	for i := range dst {
		dst[i] /= ampTotal
	}
}

// HashSampler is a deterministic reference Sampler: a hashed, faded-lattice
// value-noise field extended to three axes. It exists so that volume is
// independently testable without wiring a real coherent-noise library; it
// is grounded in the splitmix64-style integer hashing and fade/lerp value
// noise technique used by the sibling corpus example's 2D terrain noise,
// generalized to a third axis.
type HashSampler struct {
	seed uint32
}

// HashNoiseFactory constructs HashSamplers.
type HashNoiseFactory struct{}

func (HashNoiseFactory) New(edge int, seed uint32) Sampler {
	return &HashSampler{seed: seed}
}

func (s *HashSampler) Close() {}

func hash3(x, y, z int64, seed uint32) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(y)*0xC2B2AE3D27D4EB4F + uint64(z)*0xFF51AFD7ED558CCD + uint64(seed)
	v ^= v >> 30
	v *= 0xBF58476D1CE4E5B9
	v ^= v >> 27
	v *= 0x94D049BB133111EB
	v ^= v >> 31
	return v
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func latticeValue(x, y, z int64, seed uint32) float64 {
	h := hash3(x, y, z, seed)
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise3D(x, y, z float64, seed uint32) float64 {
	x0, y0, z0 := math.Floor(x), math.Floor(y), math.Floor(z)
	fx, fy, fz := fade(x-x0), fade(y-y0), fade(z-z0)
	ix0, iy0, iz0 := int64(x0), int64(y0), int64(z0)

	v000 := latticeValue(ix0, iy0, iz0, seed)
	v100 := latticeValue(ix0+1, iy0, iz0, seed)
	v010 := latticeValue(ix0, iy0+1, iz0, seed)
	v110 := latticeValue(ix0+1, iy0+1, iz0, seed)
	v001 := latticeValue(ix0, iy0, iz0+1, seed)
	v101 := latticeValue(ix0+1, iy0, iz0+1, seed)
	v011 := latticeValue(ix0, iy0+1, iz0+1, seed)
	v111 := latticeValue(ix0+1, iy0+1, iz0+1, seed)

	x00 := lerp(v000, v100, fx)
	x10 := lerp(v010, v110, fx)
	x01 := lerp(v001, v101, fx)
	x11 := lerp(v011, v111, fx)
	y0v := lerp(x00, x10, fy)
	y1v := lerp(x01, x11, fy)
	return lerp(y0v, y1v, fz)
}

// Sample implements Sampler.
func (s *HashSampler) Sample(x, y, z int, scale float64) uint32 {
	v := valueNoise3D(float64(x)*scale, float64(y)*scale, float64(z)*scale, s.seed)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint32(v * float64(math.MaxUint32))
}
