package config

// EngineConfig holds all configurable bounds and tuning constants for the
// graph engine. Algorithms never read globals; an EngineConfig is passed at
// construction time.
type EngineConfig struct {
	// Computational bounds
	MaxLayoutNodes     int // hard limit for force-directed layout
	MaxLayoutIterations int
	MaxAnalyticsNodes  int // soft guard for all-pairs analytics

	// Force-directed simulation
	ForceIterations  int
	Damping          float64
	RepulsionK       float64
	AttractionK      float64
	DistanceEpsilon  float64 // floor for pairwise distances, guards div-by-zero
	InitialSpread    float64 // half-width of the random initial placement box

	// Hierarchical layout
	TierSpacing  float64 // vertical distance between difficulty tiers
	GroupSpacing float64 // horizontal distance within a type group

	// Circular layout
	MinRadius     float64
	RadiusPerNode float64

	// Clustered layout
	ClusterCellSpacing float64
	ClusterAnchorRadius float64

	// Analytics
	TopK int // size of centrality ranking lists

	// Adaptive selection
	KnownMasteryThreshold int // mastery ordinal at or above which a node counts as known

	// Worker pool
	BetweennessWorkers int // concurrent single-source passes in betweenness
}

// DefaultEngineConfig returns the default engine configuration
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		MaxLayoutNodes:      2000,
		MaxLayoutIterations: 500,
		MaxAnalyticsNodes:   5000,

		ForceIterations: 50,
		Damping:         0.1,
		RepulsionK:      10000.0,
		AttractionK:     0.01,
		DistanceEpsilon: 0.01,
		InitialSpread:   500.0,

		TierSpacing:  200.0,
		GroupSpacing: 150.0,

		MinRadius:     300.0,
		RadiusPerNode: 50.0,

		ClusterCellSpacing:  120.0,
		ClusterAnchorRadius: 800.0,

		TopK: 5,

		KnownMasteryThreshold: 3, // proficient

		BetweennessWorkers: 4,
	}
}

// StrictEngineConfig returns a configuration with tighter bounds, suitable
// for shared multi-tenant deployments
func StrictEngineConfig() *EngineConfig {
	cfg := DefaultEngineConfig()

	cfg.MaxLayoutNodes = 500
	cfg.MaxLayoutIterations = 100
	cfg.MaxAnalyticsNodes = 1000
	cfg.BetweennessWorkers = 2

	return cfg
}
