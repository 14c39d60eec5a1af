// Package expand implements multi-seed, priority-driven frontier
// expansion over lazily revealed graphs. An Engine grows one frontier per
// seed, picking the next node to expand with a pluggable Strategy, and
// reports the sampled subgraph plus every seed-to-seed path it closes.
package expand

// NodeID identifies a graph node. Adapters map their native identifiers
// (integers, URIs, dataset labels) to strings before handing them to the
// engine.
type NodeID string

// Neighbor is one adjacency entry returned by an Expander.
type Neighbor struct {
	Target  NodeID
	RelType string
}

// NodeRecord carries the adapter's view of a node. Weight feeds the
// priority-score strategy; adapters without weights leave it zero.
type NodeRecord struct {
	ID     NodeID
	Label  string
	Weight float64
}

// PriorityOptions parameterise Expander.Priority.
type PriorityOptions struct {
	NodeWeight float64
	Epsilon    float64
}

// Expander is the lazy graph access contract the engine consumes.
// Neighbors may block on I/O for adapters backed by remote data; the
// engine awaits each call before selecting the next candidate, so
// implementations need no internal synchronisation for engine use.
//
// Degree and Neighbors must agree: Degree(n) equals the number of entries
// Neighbors(n) returns for the graph's declared directionality.
type Expander interface {
	// Neighbors returns the adjacency of id. Errors propagate to the
	// caller of Run unmodified; the engine never retries.
	Neighbors(id NodeID) ([]Neighbor, error)

	// Degree returns the neighbor count of id.
	Degree(id NodeID) int

	// Node looks up a node record; ok is false for unknown IDs.
	Node(id NodeID) (NodeRecord, bool)

	// Priority computes an adapter-defined importance score for id.
	// Only the priority-score strategy calls it.
	Priority(id NodeID, opts PriorityOptions) float64
}

// EdgeSink receives each traversed edge exactly once, in traversal order.
// Adapters use it to materialise the sampled subgraph incrementally.
// A nil sink is a no-op, not an error.
type EdgeSink interface {
	AddEdge(source, target NodeID, relType string)
}

// EdgeSinkFunc adapts a function to the EdgeSink interface.
type EdgeSinkFunc func(source, target NodeID, relType string)

// AddEdge implements EdgeSink.
func (f EdgeSinkFunc) AddEdge(source, target NodeID, relType string) {
	f(source, target, relType)
}
