package services

import (
	"container/heap"
	"sort"

	"kgraph-engine/domain/core/aggregates"
	"kgraph-engine/domain/core/entities"
	"kgraph-engine/domain/core/valueobjects"
	pkgerrors "kgraph-engine/pkg/errors"
)

// PathFinder computes weighted shortest paths and ancestor closures over a
// GraphModel. It holds no per-call state, so a single instance may serve
// concurrent callers sharing the same snapshot.
type PathFinder struct {
	policy *WeightPolicy
}

// NewPathFinder creates a new path finder
func NewPathFinder(policy *WeightPolicy) *PathFinder {
	if policy == nil {
		policy = NewWeightPolicy()
	}
	return &PathFinder{policy: policy}
}

// PathResult is the outcome of a shortest-path computation
type PathResult struct {
	Path        []valueobjects.NodeID `json:"path"`
	TotalWeight float64               `json:"total_weight"`
}

// ShortestPath finds the cheapest directed path from start to end using
// Dijkstra's algorithm over policy-derived non-negative weights
func (f *PathFinder) ShortestPath(
	graph *aggregates.GraphModel,
	start, end valueobjects.NodeID,
) (*PathResult, error) {
	if !graph.HasNode(start) {
		return nil, pkgerrors.NewNodeNotFound(start.String())
	}
	if !graph.HasNode(end) {
		return nil, pkgerrors.NewNodeNotFound(end.String())
	}

	if start.Equals(end) {
		return &PathResult{Path: []valueobjects.NodeID{start}, TotalWeight: 0}, nil
	}

	dist := map[valueobjects.NodeID]float64{start: 0}
	parent := make(map[valueobjects.NodeID]valueobjects.NodeID)
	settled := make(map[valueobjects.NodeID]bool)

	pq := &nodeQueue{}
	heap.Init(pq)
	heap.Push(pq, nodeItem{id: start, priority: 0})

	for pq.Len() > 0 {
		current := heap.Pop(pq).(nodeItem)
		if settled[current.id] {
			continue
		}
		settled[current.id] = true

		if current.id.Equals(end) {
			break
		}

		for _, edge := range graph.Outgoing(current.id) {
			next := edge.TargetID()
			if settled[next] {
				continue
			}

			candidate := dist[current.id] + f.policy.EdgeWeight(edge)
			known, seen := dist[next]
			if !seen || candidate < known {
				dist[next] = candidate
				parent[next] = current.id
				heap.Push(pq, nodeItem{id: next, priority: candidate})
			}
		}
	}

	if !settled[end] {
		return nil, pkgerrors.ErrNoPathFound.
			WithDetail("start_id", start.String()).
			WithDetail("end_id", end.String())
	}

	path := reconstructPath(start, end, parent)
	return &PathResult{Path: path, TotalWeight: dist[end]}, nil
}

// PrerequisiteClosure returns every node that can reach target through
// prerequisite-kind edges (prerequisite, depends_on). The result is ordered
// by ascending difficulty, with node id as the stable secondary key.
func (f *PathFinder) PrerequisiteClosure(
	graph *aggregates.GraphModel,
	target valueobjects.NodeID,
) ([]*entities.Node, error) {
	return f.reverseClosure(graph, target, func(edge *entities.Edge) bool {
		return edge.Type().IsPrerequisiteKind()
	})
}

// AncestorClosure returns every node that can reach target through any edge
// type, ordered like PrerequisiteClosure. Exposed separately because some
// callers want the broad "everything upstream" view rather than the strict
// learning-dependency one.
func (f *PathFinder) AncestorClosure(
	graph *aggregates.GraphModel,
	target valueobjects.NodeID,
) ([]*entities.Node, error) {
	return f.reverseClosure(graph, target, func(edge *entities.Edge) bool {
		return true
	})
}

func (f *PathFinder) reverseClosure(
	graph *aggregates.GraphModel,
	target valueobjects.NodeID,
	follow func(*entities.Edge) bool,
) ([]*entities.Node, error) {
	if !graph.HasNode(target) {
		return nil, pkgerrors.NewNodeNotFound(target.String())
	}

	visited := map[valueobjects.NodeID]bool{target: true}
	queue := []valueobjects.NodeID{target}
	var closure []*entities.Node

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, edge := range graph.Incoming(current) {
			if !follow(edge) {
				continue
			}

			ancestor := edge.SourceID()
			if visited[ancestor] {
				continue
			}
			visited[ancestor] = true
			queue = append(queue, ancestor)

			node, err := graph.Node(ancestor)
			if err != nil {
				return nil, err
			}
			closure = append(closure, node)
		}
	}

	sort.Slice(closure, func(i, j int) bool {
		ri, rj := closure[i].Difficulty().Rank(), closure[j].Difficulty().Rank()
		if ri != rj {
			return ri < rj
		}
		return closure[i].ID().Less(closure[j].ID())
	})

	return closure, nil
}

func reconstructPath(
	start, end valueobjects.NodeID,
	parent map[valueobjects.NodeID]valueobjects.NodeID,
) []valueobjects.NodeID {
	var reversed []valueobjects.NodeID
	for n := end; ; n = parent[n] {
		reversed = append(reversed, n)
		if n.Equals(start) {
			break
		}
	}

	path := make([]valueobjects.NodeID, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}

// nodeItem is a priority-queue entry for Dijkstra
type nodeItem struct {
	id       valueobjects.NodeID
	priority float64
}

// nodeQueue implements heap.Interface with deterministic tie-breaking on id
type nodeQueue []nodeItem

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].id.Less(q[j].id)
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x interface{}) {
	*q = append(*q, x.(nodeItem))
}

func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
