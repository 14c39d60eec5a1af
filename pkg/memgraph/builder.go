package memgraph

import (
	"github.com/hubshy/graphsampler/pkg/expand"
)

// Builder is an expand.EdgeSink that materialises the sampled subgraph
// incrementally as the engine visits edges. The engine delivers each
// sampled edge exactly once, so duplicate rejection never fires here.
type Builder struct {
	graph *Graph
}

// NewBuilder creates a builder for a sampled subgraph with the given
// directionality.
func NewBuilder(directed bool) *Builder {
	return &Builder{graph: New(directed)}
}

// AddEdge implements expand.EdgeSink.
func (b *Builder) AddEdge(source, target expand.NodeID, relType string) {
	// The engine de-duplicates edges before invoking the sink; an error
	// here would mean the engine broke its once-per-edge contract, and
	// the builder has no caller to report it to.
	_ = b.graph.AddEdge(source, target, relType)
}

// Graph returns the subgraph built so far.
func (b *Builder) Graph() *Graph {
	return b.graph
}
