// Package memgraph provides a static in-memory graph implementing the
// expand.Expander contract, plus a Builder that materialises a sampled
// subgraph from the engine's edge hook. It is the adapter used by tests
// and by callers whose graphs fit in memory; dataset-backed adapters live
// outside this module.
package memgraph

import (
	"errors"
	"fmt"

	"github.com/hubshy/graphsampler/pkg/expand"
)

// Common sentinel errors
var (
	ErrDuplicateEdge = errors.New("duplicate edge")
	ErrBlankNodeID   = errors.New("node ID is blank")
)

// Graph is an adjacency-list graph with string node IDs. Directed graphs
// expose only outgoing adjacency; undirected graphs expose each edge from
// both endpoints. Degree always equals the length of the Neighbors list,
// as the Expander contract requires.
type Graph struct {
	directed bool
	nodes    map[expand.NodeID]expand.NodeRecord
	adj      map[expand.NodeID][]expand.Neighbor
	edges    map[expand.EdgeKey]struct{}
}

// New creates an empty graph.
func New(directed bool) *Graph {
	return &Graph{
		directed: directed,
		nodes:    make(map[expand.NodeID]expand.NodeRecord),
		adj:      make(map[expand.NodeID][]expand.Neighbor),
		edges:    make(map[expand.EdgeKey]struct{}),
	}
}

// Directed reports the graph's declared directionality.
func (g *Graph) Directed() bool {
	return g.directed
}

// AddNode upserts a node record.
func (g *Graph) AddNode(id expand.NodeID, label string, weight float64) error {
	if id == "" {
		return ErrBlankNodeID
	}
	g.nodes[id] = expand.NodeRecord{ID: id, Label: label, Weight: weight}
	return nil
}

// ensureNode materialises a node that so far appeared only as an edge
// endpoint.
func (g *Graph) ensureNode(id expand.NodeID) {
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = expand.NodeRecord{ID: id}
	}
}

// AddEdge inserts an edge, materialising unknown endpoints. Re-inserting
// the same edge (same endpoints, either direction for undirected graphs)
// is rejected.
func (g *Graph) AddEdge(from, to expand.NodeID, relType string) error {
	if from == "" || to == "" {
		return ErrBlankNodeID
	}
	key := expand.MakeEdgeKey(from, to)
	if _, dup := g.edges[key]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateEdge, key)
	}
	if !g.directed {
		if _, dup := g.edges[expand.MakeEdgeKey(to, from)]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateEdge, key)
		}
	}

	g.ensureNode(from)
	g.ensureNode(to)
	g.edges[key] = struct{}{}

	g.adj[from] = append(g.adj[from], expand.Neighbor{Target: to, RelType: relType})
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], expand.Neighbor{Target: from, RelType: relType})
	}
	return nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Neighbors implements expand.Expander. Unknown IDs yield an empty
// adjacency, not an error: isolated nodes and absent seeds are not
// failures.
func (g *Graph) Neighbors(id expand.NodeID) ([]expand.Neighbor, error) {
	return g.adj[id], nil
}

// Degree implements expand.Expander.
func (g *Graph) Degree(id expand.NodeID) int {
	return len(g.adj[id])
}

// Node implements expand.Expander.
func (g *Graph) Node(id expand.NodeID) (expand.NodeRecord, bool) {
	rec, ok := g.nodes[id]
	return rec, ok
}

// Priority implements expand.Expander: a blend of the node's stored
// weight and its degree. NodeWeight in [0,1] shifts between the two;
// Epsilon offsets the score away from zero.
func (g *Graph) Priority(id expand.NodeID, opts expand.PriorityOptions) float64 {
	rec := g.nodes[id]
	return opts.NodeWeight*rec.Weight + (1-opts.NodeWeight)*float64(g.Degree(id)) + opts.Epsilon
}
