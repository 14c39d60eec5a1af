package expand

// EdgeKey identifies a traversed edge as an ordered "source->target"
// string. The sampled-edge set is keyed and de-duplicated on it.
type EdgeKey string

// MakeEdgeKey builds the canonical key for a directed traversal of an
// edge.
func MakeEdgeKey(source, target NodeID) EdgeKey {
	return EdgeKey(string(source) + "->" + string(target))
}

// Path is an ordered node sequence connecting two seeds, with the edge
// keys of consecutive pairs. Length in edges is len(Nodes)-1.
type Path struct {
	Nodes []NodeID
	Edges []EdgeKey

	// SourceSeed and TargetSeed are the endpoints' seed IDs, oriented so
	// that SourceSeed belongs to the lower frontier index.
	SourceSeed NodeID
	TargetSeed NodeID
}

// key returns the dedup key for the path's node sequence.
func (p Path) key() string {
	k := make([]byte, 0, len(p.Nodes)*8)
	for i, n := range p.Nodes {
		if i > 0 {
			k = append(k, '>')
		}
		k = append(k, string(n)...)
	}
	return string(k)
}

// RunStats are the monotonic counters of one engine run.
type RunStats struct {
	NodesExpanded  int
	EdgesTraversed int
	Iterations     int

	// Hub-encounter instrumentation, populated only when the run options
	// carry a positive HubDegreeThreshold. Fractions are positions in the
	// expansion sequence normalised by NodesExpanded; zero when no hub
	// was expanded.
	FirstHubEncounterFraction float64
	MeanHubEncounterFraction  float64
}

// RunResult is the output of one engine run. Node and edge slices are in
// discovery order, so results from identical inputs compare equal.
type RunResult struct {
	RunID    string
	Strategy string

	SampledNodes []NodeID
	SampledEdges []EdgeKey
	Paths        []Path
	Stats        RunStats

	nodeSet map[NodeID]struct{}
	edgeSet map[EdgeKey]struct{}
}

// HasNode reports whether the run visited id.
func (r *RunResult) HasNode(id NodeID) bool {
	_, ok := r.nodeSet[id]
	return ok
}

// HasEdge reports whether the run traversed the edge with the given key.
func (r *RunResult) HasEdge(key EdgeKey) bool {
	_, ok := r.edgeSet[key]
	return ok
}

// HubNodeCount returns how many sampled nodes exceed the degree threshold
// according to the expander the run used.
func (r *RunResult) HubNodeCount(x Expander, threshold int) int {
	count := 0
	for _, n := range r.SampledNodes {
		if x.Degree(n) > threshold {
			count++
		}
	}
	return count
}
