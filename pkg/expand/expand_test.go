package expand

import (
	"testing"
)

// testGraph is a minimal in-package Expander for engine tests. The
// memgraph adapter has its own contract tests; keeping a local fixture
// here avoids an import cycle.
type testGraph struct {
	adj      map[NodeID][]Neighbor
	nodes    map[NodeID]NodeRecord
	fetchErr map[NodeID]error
}

func newTestGraph() *testGraph {
	return &testGraph{
		adj:      make(map[NodeID][]Neighbor),
		nodes:    make(map[NodeID]NodeRecord),
		fetchErr: make(map[NodeID]error),
	}
}

func (g *testGraph) addNode(id NodeID) {
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = NodeRecord{ID: id}
	}
}

// addEdge inserts an undirected edge.
func (g *testGraph) addEdge(a, b NodeID) {
	g.addNode(a)
	g.addNode(b)
	g.adj[a] = append(g.adj[a], Neighbor{Target: b, RelType: "LINKS"})
	if a != b {
		g.adj[b] = append(g.adj[b], Neighbor{Target: a, RelType: "LINKS"})
	}
}

// addArc inserts a directed edge.
func (g *testGraph) addArc(from, to NodeID) {
	g.addNode(from)
	g.addNode(to)
	g.adj[from] = append(g.adj[from], Neighbor{Target: to, RelType: "LINKS"})
}

func (g *testGraph) Neighbors(id NodeID) ([]Neighbor, error) {
	if err := g.fetchErr[id]; err != nil {
		return nil, err
	}
	return g.adj[id], nil
}

func (g *testGraph) Degree(id NodeID) int {
	return len(g.adj[id])
}

func (g *testGraph) Node(id NodeID) (NodeRecord, bool) {
	rec, ok := g.nodes[id]
	return rec, ok
}

func (g *testGraph) Priority(id NodeID, opts PriorityOptions) float64 {
	rec := g.nodes[id]
	return opts.NodeWeight*rec.Weight + (1-opts.NodeWeight)*float64(g.Degree(id)) + opts.Epsilon
}

// starGraph builds a hub "0" with leaves "1".."9".
func starGraph() *testGraph {
	g := newTestGraph()
	leaves := []NodeID{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	for _, leaf := range leaves {
		g.addEdge("0", leaf)
	}
	return g
}

// pathGraph builds the chain 1-2-3-4-5.
func pathGraph() *testGraph {
	g := newTestGraph()
	g.addEdge("1", "2")
	g.addEdge("2", "3")
	g.addEdge("3", "4")
	g.addEdge("4", "5")
	return g
}

// twoTriangles builds disjoint triangles {A,B,C} and {D,E,F}.
func twoTriangles() *testGraph {
	g := newTestGraph()
	g.addEdge("A", "B")
	g.addEdge("B", "C")
	g.addEdge("C", "A")
	g.addEdge("D", "E")
	g.addEdge("E", "F")
	g.addEdge("F", "D")
	return g
}

func mustRun(t *testing.T, g *testGraph, seeds []NodeID, opts Options) *RunResult {
	t.Helper()
	engine, err := NewEngine(g, seeds, opts)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	result, err := engine.Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return result
}
