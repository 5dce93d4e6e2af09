package services

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"kgraph-engine/domain/config"
	"kgraph-engine/domain/core/aggregates"
	"kgraph-engine/domain/core/valueobjects"
	pkgerrors "kgraph-engine/pkg/errors"
)

// GraphAnalyzer computes structural analytics over a GraphModel: density,
// centralities, connectivity, clustering and path-length statistics. All
// computations are read-only over the snapshot.
type GraphAnalyzer struct {
	cfg *config.EngineConfig
}

// NewGraphAnalyzer creates a new analyzer with the given bounds
func NewGraphAnalyzer(cfg *config.EngineConfig) *GraphAnalyzer {
	if cfg == nil {
		cfg = config.DefaultEngineConfig()
	}
	return &GraphAnalyzer{cfg: cfg}
}

// CentralityRank is one entry of a top-k centrality ranking
type CentralityRank struct {
	NodeID string  `json:"node_id"`
	Score  float64 `json:"score"`
}

// GraphStatistics is the full analytics bundle for one snapshot.
// Diameter and AveragePathLength are nil when the undirected skeleton is
// disconnected, since neither is defined there.
type GraphStatistics struct {
	NodeCount int     `json:"node_count"`
	EdgeCount int     `json:"edge_count"`
	Density   float64 `json:"density"`

	DegreeCentrality    map[string]float64 `json:"degree_centrality"`
	InDegreeCentrality  map[string]float64 `json:"in_degree_centrality"`
	OutDegreeCentrality map[string]float64 `json:"out_degree_centrality"`
	Betweenness         map[string]float64 `json:"betweenness_centrality"`

	ComponentCount int  `json:"component_count"`
	IsConnected    bool `json:"is_connected"`

	ClusteringCoefficient float64 `json:"clustering_coefficient"`

	Diameter          *float64 `json:"diameter,omitempty"`
	AveragePathLength *float64 `json:"average_path_length,omitempty"`

	TopByDegree      []CentralityRank `json:"top_by_degree"`
	TopByInDegree    []CentralityRank `json:"top_by_in_degree"`
	TopByOutDegree   []CentralityRank `json:"top_by_out_degree"`
	TopByBetweenness []CentralityRank `json:"top_by_betweenness"`

	OrphanNodes []string `json:"orphan_nodes"`
}

// Analyze computes the full statistics bundle for a snapshot
func (a *GraphAnalyzer) Analyze(ctx context.Context, graph *aggregates.GraphModel) (*GraphStatistics, error) {
	n := graph.NodeCount()
	if n > a.cfg.MaxAnalyticsNodes {
		return nil, pkgerrors.ErrGraphTooLarge.
			WithDetail("node_count", n).
			WithDetail("max_nodes", a.cfg.MaxAnalyticsNodes)
	}

	stats := &GraphStatistics{
		NodeCount: n,
		EdgeCount: graph.EdgeCount(),
		Density:   a.Density(graph),
	}

	stats.DegreeCentrality = a.DegreeCentrality(graph)
	stats.InDegreeCentrality = a.InDegreeCentrality(graph)
	stats.OutDegreeCentrality = a.OutDegreeCentrality(graph)

	betweenness, err := a.Betweenness(ctx, graph)
	if err != nil {
		return nil, err
	}
	stats.Betweenness = betweenness

	components := a.ConnectedComponents(graph)
	stats.ComponentCount = len(components)
	stats.IsConnected = n > 0 && len(components) == 1

	stats.ClusteringCoefficient = a.ClusteringCoefficient(graph)

	// Diameter and average path length are only defined on a connected
	// skeleton; leave them absent otherwise instead of failing the bundle
	if stats.IsConnected && n > 1 {
		diameter, avg := a.pathLengthStats(graph)
		stats.Diameter = &diameter
		stats.AveragePathLength = &avg
	}

	stats.TopByDegree = a.topK(stats.DegreeCentrality)
	stats.TopByInDegree = a.topK(stats.InDegreeCentrality)
	stats.TopByOutDegree = a.topK(stats.OutDegreeCentrality)
	stats.TopByBetweenness = a.topK(stats.Betweenness)

	stats.OrphanNodes = a.OrphanNodes(graph)

	return stats, nil
}

// Density returns |E| / (|V|·(|V|-1)) for the directed graph, 0 when |V| <= 1
func (a *GraphAnalyzer) Density(graph *aggregates.GraphModel) float64 {
	n := graph.NodeCount()
	if n <= 1 {
		return 0
	}
	return float64(graph.EdgeCount()) / float64(n*(n-1))
}

// DegreeCentrality returns the distinct-neighbor degree of every node
// normalized by |V|-1, treating edges as undirected
func (a *GraphAnalyzer) DegreeCentrality(graph *aggregates.GraphModel) map[string]float64 {
	n := graph.NodeCount()
	result := make(map[string]float64, n)

	for _, id := range graph.NodeIDs() {
		if n <= 1 {
			result[id.String()] = 0
			continue
		}
		result[id.String()] = float64(len(graph.UndirectedNeighbors(id))) / float64(n-1)
	}
	return result
}

// InDegreeCentrality returns incoming edge counts normalized by |V|-1
func (a *GraphAnalyzer) InDegreeCentrality(graph *aggregates.GraphModel) map[string]float64 {
	n := graph.NodeCount()
	result := make(map[string]float64, n)

	for _, id := range graph.NodeIDs() {
		if n <= 1 {
			result[id.String()] = 0
			continue
		}
		result[id.String()] = float64(len(graph.Incoming(id))) / float64(n-1)
	}
	return result
}

// OutDegreeCentrality returns outgoing edge counts normalized by |V|-1
func (a *GraphAnalyzer) OutDegreeCentrality(graph *aggregates.GraphModel) map[string]float64 {
	n := graph.NodeCount()
	result := make(map[string]float64, n)

	for _, id := range graph.NodeIDs() {
		if n <= 1 {
			result[id.String()] = 0
			continue
		}
		result[id.String()] = float64(len(graph.Outgoing(id))) / float64(n-1)
	}
	return result
}

// Betweenness computes betweenness centrality for every node using Brandes'
// single-source accumulation over unweighted directed shortest paths.
// Per-source passes run on a bounded worker pool; partial sums are merged in
// source order so results stay deterministic.
func (a *GraphAnalyzer) Betweenness(ctx context.Context, graph *aggregates.GraphModel) (map[string]float64, error) {
	ids := graph.NodeIDs()
	n := len(ids)

	result := make(map[string]float64, n)
	for _, id := range ids {
		result[id.String()] = 0
	}
	if n < 3 {
		return result, nil
	}

	partials := make([]map[valueobjects.NodeID]float64, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.BetweennessWorkers)

	for i, source := range ids {
		i, source := i, source
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return pkgerrors.ErrComputationCancelled.WithCause(err)
			}
			partials[i] = brandesSingleSource(graph, source)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, partial := range partials {
		for id, value := range partial {
			result[id.String()] += value
		}
	}

	// Normalize by the number of ordered pairs excluding the node itself
	scale := 1.0 / float64((n-1)*(n-2))
	for key := range result {
		result[key] *= scale
	}

	return result, nil
}

// brandesSingleSource runs one BFS plus dependency accumulation from source,
// returning each node's contribution to the betweenness sums
func brandesSingleSource(graph *aggregates.GraphModel, source valueobjects.NodeID) map[valueobjects.NodeID]float64 {
	var stack []valueobjects.NodeID
	predecessors := make(map[valueobjects.NodeID][]valueobjects.NodeID)
	sigma := map[valueobjects.NodeID]float64{source: 1}
	distance := map[valueobjects.NodeID]int{source: 0}

	queue := []valueobjects.NodeID{source}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		stack = append(stack, v)

		for _, edge := range graph.Outgoing(v) {
			w := edge.TargetID()

			if _, seen := distance[w]; !seen {
				distance[w] = distance[v] + 1
				queue = append(queue, w)
			}
			if distance[w] == distance[v]+1 {
				sigma[w] += sigma[v]
				predecessors[w] = append(predecessors[w], v)
			}
		}
	}

	delta := make(map[valueobjects.NodeID]float64)
	contribution := make(map[valueobjects.NodeID]float64)

	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, v := range predecessors[w] {
			delta[v] += sigma[v] / sigma[w] * (1 + delta[w])
		}
		if !w.Equals(source) {
			contribution[w] = delta[w]
		}
	}

	return contribution
}

// ConnectedComponents returns the weakly connected components of the graph,
// treating every edge as undirected. Each component lists its node ids in
// ascending order; components are ordered by their smallest member.
func (a *GraphAnalyzer) ConnectedComponents(graph *aggregates.GraphModel) [][]valueobjects.NodeID {
	visited := make(map[valueobjects.NodeID]bool)
	var components [][]valueobjects.NodeID

	for _, start := range graph.NodeIDs() {
		if visited[start] {
			continue
		}

		component := []valueobjects.NodeID{}
		queue := []valueobjects.NodeID{start}
		visited[start] = true

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			component = append(component, current)

			for _, neighbor := range graph.UndirectedNeighbors(current) {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue = append(queue, neighbor)
				}
			}
		}

		sort.Slice(component, func(i, j int) bool {
			return component[i].Less(component[j])
		})
		components = append(components, component)
	}

	return components
}

// ClusteringCoefficient returns the mean local clustering coefficient over
// nodes with undirected degree >= 2, or 0 when the graph has fewer than
// three nodes
func (a *GraphAnalyzer) ClusteringCoefficient(graph *aggregates.GraphModel) float64 {
	if graph.NodeCount() < 3 {
		return 0
	}

	sum := 0.0
	counted := 0

	for _, id := range graph.NodeIDs() {
		neighbors := graph.UndirectedNeighbors(id)
		k := len(neighbors)
		if k < 2 {
			continue
		}

		links := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if graph.HasUndirectedEdge(neighbors[i], neighbors[j]) {
					links++
				}
			}
		}

		sum += float64(links) / float64(k*(k-1)/2)
		counted++
	}

	if counted == 0 {
		return 0
	}
	return sum / float64(counted)
}

// Diameter returns the longest shortest path (in hops) on the undirected
// skeleton. Unlike the analytics bundle, this dedicated operation fails with
// a disconnected-graph error when the metric is undefined.
func (a *GraphAnalyzer) Diameter(graph *aggregates.GraphModel) (float64, error) {
	components := a.ConnectedComponents(graph)
	if len(components) != 1 {
		return 0, pkgerrors.ErrDisconnectedGraph.
			WithDetail("component_count", len(components))
	}
	if graph.NodeCount() < 2 {
		return 0, nil
	}

	diameter, _ := a.pathLengthStats(graph)
	return diameter, nil
}

// OrphanNodes lists nodes with no edges in either direction, in ascending
// id order
func (a *GraphAnalyzer) OrphanNodes(graph *aggregates.GraphModel) []string {
	orphans := []string{}
	for _, id := range graph.NodeIDs() {
		if len(graph.Outgoing(id)) == 0 && len(graph.Incoming(id)) == 0 {
			orphans = append(orphans, id.String())
		}
	}
	return orphans
}

// pathLengthStats runs BFS from every node on the undirected skeleton and
// returns the diameter and the mean shortest-path length. Callers must have
// already checked connectivity.
func (a *GraphAnalyzer) pathLengthStats(graph *aggregates.GraphModel) (diameter, average float64) {
	ids := graph.NodeIDs()
	totalLength := 0
	pairCount := 0
	maxLength := 0

	for _, source := range ids {
		distance := map[valueobjects.NodeID]int{source: 0}
		queue := []valueobjects.NodeID{source}

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			for _, neighbor := range graph.UndirectedNeighbors(current) {
				if _, seen := distance[neighbor]; seen {
					continue
				}
				distance[neighbor] = distance[current] + 1
				queue = append(queue, neighbor)
			}
		}

		for id, d := range distance {
			if id.Equals(source) {
				continue
			}
			totalLength += d
			pairCount++
			if d > maxLength {
				maxLength = d
			}
		}
	}

	if pairCount == 0 {
		return 0, 0
	}
	return float64(maxLength), float64(totalLength) / float64(pairCount)
}

// topK returns the highest-scoring entries in descending score order, ties
// broken by ascending node id for determinism
func (a *GraphAnalyzer) topK(scores map[string]float64) []CentralityRank {
	ranks := make([]CentralityRank, 0, len(scores))
	for id, score := range scores {
		ranks = append(ranks, CentralityRank{NodeID: id, Score: score})
	}

	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Score != ranks[j].Score {
			return ranks[i].Score > ranks[j].Score
		}
		return ranks[i].NodeID < ranks[j].NodeID
	})

	if len(ranks) > a.cfg.TopK {
		ranks = ranks[:a.cfg.TopK]
	}
	return ranks
}
