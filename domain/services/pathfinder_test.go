package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgraph-engine/domain/core/entities"
	"kgraph-engine/domain/core/valueobjects"
	"kgraph-engine/domain/services"
	pkgerrors "kgraph-engine/pkg/errors"
	"kgraph-engine/tests/fixtures"
)

func id(t *testing.T, raw string) valueobjects.NodeID {
	t.Helper()
	nodeID, err := valueobjects.NewNodeIDFromString(raw)
	require.NoError(t, err)
	return nodeID
}

func pathStrings(result *services.PathResult) []string {
	out := make([]string, len(result.Path))
	for i, nodeID := range result.Path {
		out[i] = nodeID.String()
	}
	return out
}

func TestShortestPath_SimpleChain(t *testing.T) {
	// Arrange: a -> b -> c, all prerequisite/moderate (weight 1.0 each)
	finder := services.NewPathFinder(services.NewWeightPolicy())
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a", "b", "c"), fixtures.Chain("a", "b", "c"))

	// Act
	result, err := finder.ShortestPath(graph, id(t, "a"), id(t, "c"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, pathStrings(result))
	assert.InDelta(t, 2.0, result.TotalWeight, 1e-9)
}

func TestShortestPath_PrefersCheaperDetour(t *testing.T) {
	// Arrange: direct a->d is a weak related edge (2.0 × 1.5 = 3.0); the
	// a->b->d detour costs 1.0 + 1.0 = 2.0
	finder := services.NewPathFinder(services.NewWeightPolicy())
	edges := []entities.EdgeRecord{
		fixtures.NewEdgeBuilder("a", "d").WithType("related").WithStrength("weak").Record(),
		fixtures.NewEdgeBuilder("a", "b").Record(),
		fixtures.NewEdgeBuilder("b", "d").Record(),
	}
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a", "b", "d"), edges)

	// Act
	result, err := finder.ShortestPath(graph, id(t, "a"), id(t, "d"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d"}, pathStrings(result))
	assert.InDelta(t, 2.0, result.TotalWeight, 1e-9)
}

func TestShortestPath_HonorsWeightOverride(t *testing.T) {
	// Arrange: the expensive direct edge carries an override cheaper than
	// any detour
	finder := services.NewPathFinder(services.NewWeightPolicy())
	edges := []entities.EdgeRecord{
		fixtures.NewEdgeBuilder("a", "d").WithType("contradicts").WithWeightOverride(0.1).Record(),
		fixtures.NewEdgeBuilder("a", "b").Record(),
		fixtures.NewEdgeBuilder("b", "d").Record(),
	}
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a", "b", "d"), edges)

	// Act
	result, err := finder.ShortestPath(graph, id(t, "a"), id(t, "d"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d"}, pathStrings(result))
	assert.InDelta(t, 0.1, result.TotalWeight, 1e-9)
}

func TestShortestPath_StartEqualsEnd(t *testing.T) {
	// Arrange
	finder := services.NewPathFinder(services.NewWeightPolicy())
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a"), nil)

	// Act
	result, err := finder.ShortestPath(graph, id(t, "a"), id(t, "a"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, pathStrings(result))
	assert.Zero(t, result.TotalWeight)
}

func TestShortestPath_NodeNotFound(t *testing.T) {
	// Arrange
	finder := services.NewPathFinder(services.NewWeightPolicy())
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a"), nil)

	// Act
	_, err := finder.ShortestPath(graph, id(t, "a"), id(t, "ghost"))

	// Assert
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestShortestPath_NoPath(t *testing.T) {
	// Arrange: edges are directed, so c cannot reach a
	finder := services.NewPathFinder(services.NewWeightPolicy())
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a", "b", "c"), fixtures.Chain("a", "b", "c"))

	// Act
	_, err := finder.ShortestPath(graph, id(t, "c"), id(t, "a"))

	// Assert
	assert.True(t, pkgerrors.IsNoPath(err))
}

func TestShortestPath_MatchesBruteForce(t *testing.T) {
	// Arrange: small dense graph checked against exhaustive enumeration
	finder := services.NewPathFinder(services.NewWeightPolicy())
	policy := services.NewWeightPolicy()
	edges := []entities.EdgeRecord{
		fixtures.NewEdgeBuilder("a", "b").WithStrength("strong").Record(),
		fixtures.NewEdgeBuilder("a", "c").WithType("related").Record(),
		fixtures.NewEdgeBuilder("b", "c").WithType("example").WithStrength("weak").Record(),
		fixtures.NewEdgeBuilder("b", "d").WithType("leads_to").Record(),
		fixtures.NewEdgeBuilder("c", "d").WithStrength("essential").Record(),
		fixtures.NewEdgeBuilder("c", "e").WithType("contradicts").Record(),
		fixtures.NewEdgeBuilder("d", "e").Record(),
	}
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a", "b", "c", "d", "e"), edges)

	// brute-force DFS over all simple paths a -> e
	best := bruteForceCheapest(graph, policy, id(t, "a"), id(t, "e"))

	// Act
	result, err := finder.ShortestPath(graph, id(t, "a"), id(t, "e"))

	// Assert
	require.NoError(t, err)
	assert.InDelta(t, best, result.TotalWeight, 1e-9)
}

func bruteForceCheapest(
	graph interface {
		Outgoing(valueobjects.NodeID) []*entities.Edge
	},
	policy *services.WeightPolicy,
	start, end valueobjects.NodeID,
) float64 {
	best := -1.0
	visited := map[valueobjects.NodeID]bool{}

	var walk func(current valueobjects.NodeID, cost float64)
	walk = func(current valueobjects.NodeID, cost float64) {
		if current.Equals(end) {
			if best < 0 || cost < best {
				best = cost
			}
			return
		}
		visited[current] = true
		for _, edge := range graph.Outgoing(current) {
			next := edge.TargetID()
			if visited[next] {
				continue
			}
			walk(next, cost+policy.EdgeWeight(edge))
		}
		visited[current] = false
	}
	walk(start, 0)
	return best
}

func TestPrerequisiteClosure_OnlyPrerequisiteKinds(t *testing.T) {
	// Arrange: a and b are real prerequisites of d; r connects via a
	// related edge and must be excluded
	finder := services.NewPathFinder(services.NewWeightPolicy())
	edges := []entities.EdgeRecord{
		fixtures.NewEdgeBuilder("a", "b").Record(),
		fixtures.NewEdgeBuilder("b", "d").WithType("depends_on").Record(),
		fixtures.NewEdgeBuilder("r", "d").WithType("related").Record(),
	}
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a", "b", "d", "r"), edges)

	// Act
	closure, err := finder.PrerequisiteClosure(graph, id(t, "d"))

	// Assert
	require.NoError(t, err)
	require.Len(t, closure, 2)
	got := []string{closure[0].ID().String(), closure[1].ID().String()}
	assert.ElementsMatch(t, []string{"a", "b"}, got)
}

func TestPrerequisiteClosure_OrderedByDifficultyThenID(t *testing.T) {
	// Arrange: prerequisites span difficulty tiers; study order must go
	// easiest first, id breaking ties
	finder := services.NewPathFinder(services.NewWeightPolicy())
	nodes := []entities.NodeRecord{
		fixtures.NewNodeBuilder().WithID("z-easy").WithDifficulty("beginner").Record(),
		fixtures.NewNodeBuilder().WithID("a-easy").WithDifficulty("beginner").Record(),
		fixtures.NewNodeBuilder().WithID("m-hard").WithDifficulty("advanced").Record(),
		fixtures.NewNodeBuilder().WithID("goal").WithDifficulty("expert").Record(),
	}
	edges := []entities.EdgeRecord{
		fixtures.NewEdgeBuilder("z-easy", "goal").Record(),
		fixtures.NewEdgeBuilder("a-easy", "goal").Record(),
		fixtures.NewEdgeBuilder("m-hard", "goal").Record(),
	}
	graph := fixtures.MustBuildGraph(nodes, edges)

	// Act
	closure, err := finder.PrerequisiteClosure(graph, id(t, "goal"))

	// Assert
	require.NoError(t, err)
	require.Len(t, closure, 3)
	assert.Equal(t, "a-easy", closure[0].ID().String())
	assert.Equal(t, "z-easy", closure[1].ID().String())
	assert.Equal(t, "m-hard", closure[2].ID().String())
}

func TestPrerequisiteClosure_EmptyForSourceNode(t *testing.T) {
	// Arrange
	finder := services.NewPathFinder(services.NewWeightPolicy())
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a", "b"), fixtures.Chain("a", "b"))

	// Act
	closure, err := finder.PrerequisiteClosure(graph, id(t, "a"))

	// Assert
	require.NoError(t, err)
	assert.Empty(t, closure)
}

func TestPrerequisiteClosure_TargetNotFound(t *testing.T) {
	// Arrange
	finder := services.NewPathFinder(services.NewWeightPolicy())
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a"), nil)

	// Act
	_, err := finder.PrerequisiteClosure(graph, id(t, "ghost"))

	// Assert
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestAncestorClosure_FollowsEveryEdgeType(t *testing.T) {
	// Arrange: same shape as the strict closure test, but r now counts
	finder := services.NewPathFinder(services.NewWeightPolicy())
	edges := []entities.EdgeRecord{
		fixtures.NewEdgeBuilder("a", "b").Record(),
		fixtures.NewEdgeBuilder("b", "d").WithType("depends_on").Record(),
		fixtures.NewEdgeBuilder("r", "d").WithType("related").Record(),
	}
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a", "b", "d", "r"), edges)

	// Act
	closure, err := finder.AncestorClosure(graph, id(t, "d"))

	// Assert
	require.NoError(t, err)
	assert.Len(t, closure, 3)
}

func TestPrerequisiteClosure_ExcludesTargetOnCycle(t *testing.T) {
	// Arrange: a -> b -> a cycle; the closure of a must not contain a itself
	finder := services.NewPathFinder(services.NewWeightPolicy())
	edges := append(fixtures.Chain("a", "b"), fixtures.Chain("b", "a")...)
	graph := fixtures.MustBuildGraph(fixtures.Nodes("a", "b"), edges)

	// Act
	closure, err := finder.PrerequisiteClosure(graph, id(t, "a"))

	// Assert
	require.NoError(t, err)
	require.Len(t, closure, 1)
	assert.Equal(t, "b", closure[0].ID().String())
}
