package expand

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

const propertyGraphNodes = 12

// buildPropertyGraph decodes a slice of ints into an undirected graph on
// propertyGraphNodes nodes; each int encodes one edge.
func buildPropertyGraph(edgeCodes []int) *testGraph {
	g := newTestGraph()
	for i := 0; i < propertyGraphNodes; i++ {
		g.addNode(nodeName(i))
	}
	seen := make(map[[2]int]struct{})
	for _, code := range edgeCodes {
		a, b := code/propertyGraphNodes, code%propertyGraphNodes
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if _, dup := seen[key]; dup || a == b {
			continue
		}
		seen[key] = struct{}{}
		g.addEdge(nodeName(a), nodeName(b))
	}
	return g
}

func nodeName(i int) NodeID {
	return NodeID(fmt.Sprintf("n%02d", i))
}

// TestExpansionInvariants verifies engine invariants across random graphs
// and seed pairs. These properties should ALWAYS hold for any graph.
func TestExpansionInvariants(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	genEdges := gen.SliceOf(gen.IntRange(0, propertyGraphNodes*propertyGraphNodes-1))
	genSeed := gen.IntRange(0, propertyGraphNodes-1)

	strategies := map[string]func() Strategy{
		StrategyDegreeAscending:  NewDegreeAscending,
		StrategyFIFO:             NewFIFO,
		StrategyRandom:           func() Strategy { return NewRandom(99) },
		StrategyFrontierBalanced: NewFrontierBalanced,
	}

	// Property 1: identical inputs replay identically for every strategy
	for name, mk := range strategies {
		mk := mk
		properties.Property("deterministic replay: "+name, prop.ForAll(
			func(edgeCodes []int, s0, s1 int) bool {
				run := func() *RunResult {
					g := buildPropertyGraph(edgeCodes)
					opts := DefaultOptions()
					opts.Strategy = mk()
					engine, err := NewEngine(g, []NodeID{nodeName(s0), nodeName(s1)}, opts)
					if err != nil {
						return nil
					}
					result, err := engine.Run()
					if err != nil {
						return nil
					}
					return result
				}
				first, second := run(), run()
				if first == nil || second == nil {
					return false
				}
				return reflect.DeepEqual(first.SampledNodes, second.SampledNodes) &&
					reflect.DeepEqual(first.SampledEdges, second.SampledEdges) &&
					reflect.DeepEqual(first.Paths, second.Paths) &&
					first.Stats == second.Stats
			},
			genEdges, genSeed, genSeed,
		))
	}

	// Property 2: every discovered path connects the two seeds through
	// real edges, with no repeated nodes
	properties.Property("paths are valid seed-to-seed walks", prop.ForAll(
		func(edgeCodes []int, s0, s1 int) bool {
			g := buildPropertyGraph(edgeCodes)
			seeds := []NodeID{nodeName(s0), nodeName(s1)}
			engine, err := NewEngine(g, seeds, DefaultOptions())
			if err != nil {
				return false
			}
			result, err := engine.Run()
			if err != nil {
				return false
			}
			for _, p := range result.Paths {
				if p.Nodes[0] != seeds[0] || p.Nodes[len(p.Nodes)-1] != seeds[1] {
					return false
				}
				visited := make(map[NodeID]struct{})
				for _, n := range p.Nodes {
					if _, dup := visited[n]; dup {
						return false
					}
					visited[n] = struct{}{}
				}
				for i := 1; i < len(p.Nodes); i++ {
					if !adjacent(g, p.Nodes[i-1], p.Nodes[i]) {
						return false
					}
				}
				if len(p.Edges) != len(p.Nodes)-1 {
					return false
				}
			}
			return true
		},
		genEdges, genSeed, genSeed,
	))

	// Property 3: the sample has no duplicates and covers the seeds'
	// reachable components exactly once each
	properties.Property("sampled nodes are unique and include seeds", prop.ForAll(
		func(edgeCodes []int, s0, s1 int) bool {
			g := buildPropertyGraph(edgeCodes)
			seeds := []NodeID{nodeName(s0), nodeName(s1)}
			engine, err := NewEngine(g, seeds, DefaultOptions())
			if err != nil {
				return false
			}
			result, err := engine.Run()
			if err != nil {
				return false
			}
			unique := make(map[NodeID]struct{})
			for _, n := range result.SampledNodes {
				if _, dup := unique[n]; dup {
					return false
				}
				unique[n] = struct{}{}
			}
			for _, s := range seeds {
				if !result.HasNode(s) {
					return false
				}
			}
			return true
		},
		genEdges, genSeed, genSeed,
	))

	// Property 4: counters agree with the sequential loop shape
	properties.Property("iterations match expansions", prop.ForAll(
		func(edgeCodes []int, s0, s1 int) bool {
			g := buildPropertyGraph(edgeCodes)
			engine, err := NewEngine(g, []NodeID{nodeName(s0), nodeName(s1)}, DefaultOptions())
			if err != nil {
				return false
			}
			result, err := engine.Run()
			if err != nil {
				return false
			}
			return result.Stats.Iterations == result.Stats.NodesExpanded &&
				result.Stats.NodesExpanded == len(result.SampledNodes)
		},
		genEdges, genSeed, genSeed,
	))

	properties.TestingRun(t)
}

func adjacent(g *testGraph, a, b NodeID) bool {
	for _, nb := range g.adj[a] {
		if nb.Target == b {
			return true
		}
	}
	return false
}
