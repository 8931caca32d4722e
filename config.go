package voxcore

// Config carries the compile-time-ish knobs spec.md leaves to the host:
// chunk size, the cell type-id space, and the light propagation radius hint
// (stored on World and exposed via MaxLightRadius; light queue capacity is
// sized from ChunkEdge alone).
// Zero-valued fields fall back to the package defaults in NewWorld.
type Config struct {
	ChunkEdge      int
	MaxTypes       int
	MaxLightRadius int
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		ChunkEdge:      ChunkEdgeDefault,
		MaxTypes:       MaxTypesDefault,
		MaxLightRadius: MaxLightRadiusDefault,
	}
}

// WithChunkEdge returns a copy of cfg with ChunkEdge set, for chained
// construction: voxcore.DefaultConfig().WithChunkEdge(16).WithMaxTypes(512).
func (cfg Config) WithChunkEdge(edge int) Config {
	cfg.ChunkEdge = edge
	return cfg
}

// WithMaxTypes returns a copy of cfg with MaxTypes set.
func (cfg Config) WithMaxTypes(n int) Config {
	cfg.MaxTypes = n
	return cfg
}

// WithMaxLightRadius returns a copy of cfg with MaxLightRadius set.
func (cfg Config) WithMaxLightRadius(r int) Config {
	cfg.MaxLightRadius = r
	return cfg
}
