package layout_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgraph-engine/domain/config"
	"kgraph-engine/domain/core/entities"
	"kgraph-engine/domain/services/layout"
	pkgerrors "kgraph-engine/pkg/errors"
	"kgraph-engine/tests/fixtures"
)

func newEngine() *layout.Engine {
	return layout.NewEngine(config.DefaultEngineConfig(), nil)
}

func intPtr(v int) *int {
	return &v
}

func TestEngine_Strategies(t *testing.T) {
	assert.Equal(t, []string{
		layout.StrategyHierarchical,
		layout.StrategyCircular,
		layout.StrategyForceDirected,
		layout.StrategyClustered,
	}, newEngine().Strategies())
}

func TestEngine_UnknownStrategy(t *testing.T) {
	// Arrange
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a"), nil)

	// Act
	_, err := newEngine().Compute(context.Background(), graph, "spiral", layout.Options{})

	// Assert
	assert.ErrorIs(t, err, pkgerrors.ErrUnknownLayoutStrategy)
}

func TestHierarchical_TiersByDifficulty(t *testing.T) {
	// Arrange: two beginners and one advanced node
	cfg := config.DefaultEngineConfig()
	nodes := []entities.NodeRecord{
		fixtures.NewNodeBuilder().WithID("a").WithDifficulty("beginner").Record(),
		fixtures.NewNodeBuilder().WithID("b").WithDifficulty("beginner").Record(),
		fixtures.NewNodeBuilder().WithID("c").WithDifficulty("advanced").Record(),
	}
	graph := fixtures.MustBuildGraph(nodes, nil)

	// Act
	result, err := newEngine().Compute(context.Background(), graph, layout.StrategyHierarchical, layout.Options{})

	// Assert: same difficulty means same y, tiers spaced by TierSpacing
	require.NoError(t, err)
	require.Len(t, result.Positions, 3)
	assert.Equal(t, result.Positions["a"].Y, result.Positions["b"].Y)
	assert.NotEqual(t, result.Positions["a"].X, result.Positions["b"].X)
	assert.InDelta(t, 2*cfg.TierSpacing, result.Positions["c"].Y-result.Positions["a"].Y, 1e-9)
}

func TestCircular_EvenAngles(t *testing.T) {
	// Arrange
	cfg := config.DefaultEngineConfig()
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a", "b", "c", "d"), nil)

	// Act
	result, err := newEngine().Compute(context.Background(), graph, layout.StrategyCircular, layout.Options{})

	// Assert: every node sits on the ring at radius MinRadius (4 nodes is
	// below the per-node growth threshold)
	require.NoError(t, err)
	radius := math.Max(cfg.MinRadius, cfg.RadiusPerNode*4)
	for id, pos := range result.Positions {
		assert.InDelta(t, radius, math.Hypot(pos.X, pos.Y), 1e-9, id)
	}

	// node ids sort a,b,c,d so a is at angle 0 and c diametrically opposite
	assert.InDelta(t, radius, result.Positions["a"].X, 1e-9)
	assert.InDelta(t, -radius, result.Positions["c"].X, 1e-6)
}

func TestClustered_GroupsByType(t *testing.T) {
	// Arrange: two concepts and one skill
	cfg := config.DefaultEngineConfig()
	nodes := []entities.NodeRecord{
		fixtures.NewNodeBuilder().WithID("c1").WithType("concept").Record(),
		fixtures.NewNodeBuilder().WithID("c2").WithType("concept").Record(),
		fixtures.NewNodeBuilder().WithID("s1").WithType("skill").Record(),
	}
	graph := fixtures.MustBuildGraph(nodes, nil)

	// Act
	result, err := newEngine().Compute(context.Background(), graph, layout.StrategyClustered, layout.Options{})

	// Assert: same-type nodes stay within one grid cell of each other,
	// different types live near different anchors
	require.NoError(t, err)
	c1, c2, s1 := result.Positions["c1"], result.Positions["c2"], result.Positions["s1"]
	assert.InDelta(t, cfg.ClusterCellSpacing, math.Hypot(c1.X-c2.X, c1.Y-c2.Y), 1e-9)
	assert.Greater(t, math.Hypot(c1.X-s1.X, c1.Y-s1.Y), cfg.ClusterCellSpacing*2)
}

func TestClustered_GridIsSquareish(t *testing.T) {
	// Arrange: 5 same-type nodes fill a ceil(sqrt(5)) = 3 column grid
	cfg := config.DefaultEngineConfig()
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a", "b", "c", "d", "e"), nil)

	// Act
	result, err := newEngine().Compute(context.Background(), graph, layout.StrategyClustered, layout.Options{})

	// Assert: ids in order fill rows of three; d starts the second row
	require.NoError(t, err)
	a, d := result.Positions["a"], result.Positions["d"]
	assert.InDelta(t, a.X, d.X, 1e-9)
	assert.InDelta(t, cfg.ClusterCellSpacing, d.Y-a.Y, 1e-9)
}

func TestForceDirected_SeedReproducible(t *testing.T) {
	// Arrange
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a", "b", "c", "d"), fixtures.Chain("a", "b", "c"))
	engine := newEngine()
	opts := layout.Options{Seed: 42}

	// Act
	first, err := engine.Compute(context.Background(), graph, layout.StrategyForceDirected, opts)
	require.NoError(t, err)
	second, err := engine.Compute(context.Background(), graph, layout.StrategyForceDirected, opts)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, first.Positions, second.Positions)
}

func TestForceDirected_DifferentSeedsDiffer(t *testing.T) {
	// Arrange
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a", "b", "c"), nil)
	engine := newEngine()

	// Act: zero iterations exposes the raw seeded placement
	first, err := engine.Compute(context.Background(), graph, layout.StrategyForceDirected,
		layout.Options{Seed: 1, Iterations: intPtr(0)})
	require.NoError(t, err)
	second, err := engine.Compute(context.Background(), graph, layout.StrategyForceDirected,
		layout.Options{Seed: 2, Iterations: intPtr(0)})
	require.NoError(t, err)

	// Assert
	assert.NotEqual(t, first.Positions, second.Positions)
}

func TestForceDirected_GraphTooLarge(t *testing.T) {
	// Arrange
	cfg := config.DefaultEngineConfig()
	cfg.MaxLayoutNodes = 2
	engine := layout.NewEngine(cfg, nil)
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a", "b", "c"), nil)

	// Act
	_, err := engine.Compute(context.Background(), graph, layout.StrategyForceDirected, layout.Options{})

	// Assert
	assert.ErrorIs(t, err, pkgerrors.ErrGraphTooLarge)
}

func TestForceDirected_TooManyIterations(t *testing.T) {
	// Arrange
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a", "b"), nil)

	// Act
	_, err := newEngine().Compute(context.Background(), graph, layout.StrategyForceDirected,
		layout.Options{Iterations: intPtr(100000)})

	// Assert
	assert.ErrorIs(t, err, pkgerrors.ErrTooManyIterations)
}

func TestForceDirected_NegativeIterations(t *testing.T) {
	// Arrange
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a"), nil)

	// Act
	_, err := newEngine().Compute(context.Background(), graph, layout.StrategyForceDirected,
		layout.Options{Iterations: intPtr(-1)})

	// Assert
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestForceDirected_Cancelled(t *testing.T) {
	// Arrange
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a", "b", "c"), fixtures.Chain("a", "b"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Act
	_, err := newEngine().Compute(ctx, graph, layout.StrategyForceDirected, layout.Options{})

	// Assert
	assert.ErrorIs(t, err, pkgerrors.ErrComputationCancelled)
}

func TestForceDirected_EmptyGraph(t *testing.T) {
	// Arrange
	graph := fixtures.MustBuildGraph(nil, nil)

	// Act
	result, err := newEngine().Compute(context.Background(), graph, layout.StrategyForceDirected, layout.Options{})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.Positions)
}

func TestQualityMetrics_UnitSquare(t *testing.T) {
	// Arrange: a square with one edge of known length
	nodes := []entities.NodeRecord{
		fixtures.NewNodeBuilder().WithID("a").WithPosition(0, 0, 0).Record(),
		fixtures.NewNodeBuilder().WithID("b").WithPosition(100, 0, 0).Record(),
	}
	graph := fixtures.MustBuildGraph(nodes, fixtures.Chain("a", "b"))

	// Hierarchical layout on equal-difficulty nodes yields a single tier
	// spaced by GroupSpacing, giving a known edge length
	cfg := config.DefaultEngineConfig()
	result, err := layout.NewEngine(cfg, nil).Compute(
		context.Background(), graph, layout.StrategyHierarchical, layout.Options{})

	// Assert
	require.NoError(t, err)
	m := result.Metrics
	assert.InDelta(t, cfg.GroupSpacing, m.EdgeLengthMean, 1e-9)
	assert.Equal(t, m.EdgeLengthMin, m.EdgeLengthMax)
	assert.Zero(t, m.EdgeLengthVariance)
	assert.Greater(t, m.Balance, 0.0)
	assert.Zero(t, m.VarianceY)
}
