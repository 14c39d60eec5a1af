package expand

// chainToRoot walks parent pointers from node back to its seed, returning
// the chain node-first. Parent assignment happens exactly once per node,
// so the walk terminates in at most len(parent) steps.
func chainToRoot(parent map[NodeID]NodeID, node NodeID) []NodeID {
	chain := []NodeID{node}
	for {
		p, ok := parent[node]
		if !ok {
			return chain
		}
		chain = append(chain, p)
		node = p
	}
}

// reconstructPath joins the parent chains of a meeting: node u was just
// expanded by one frontier and found neighbor v already visited by
// another. The result runs seed(u) .. u, v .. seed(v). The caller orients
// u/v so that u belongs to the lower frontier index.
func reconstructPath(parent map[NodeID]NodeID, u, v NodeID) Path {
	up := chainToRoot(parent, u)
	down := chainToRoot(parent, v)

	nodes := make([]NodeID, 0, len(up)+len(down))
	for i := len(up) - 1; i >= 0; i-- {
		nodes = append(nodes, up[i])
	}
	nodes = append(nodes, down...)

	edges := make([]EdgeKey, 0, len(nodes)-1)
	for i := 1; i < len(nodes); i++ {
		edges = append(edges, MakeEdgeKey(nodes[i-1], nodes[i]))
	}

	return Path{
		Nodes:      nodes,
		Edges:      edges,
		SourceSeed: nodes[0],
		TargetSeed: nodes[len(nodes)-1],
	}
}

// pathCollector accumulates discovered paths, suppressing duplicate
// detections of the same node sequence. Paths are never retracted.
type pathCollector struct {
	paths []Path
	seen  map[string]struct{}
}

func newPathCollector() *pathCollector {
	return &pathCollector{seen: make(map[string]struct{})}
}

// add records p unless an identical node sequence was already emitted.
func (c *pathCollector) add(p Path) bool {
	// A path needs two distinct endpoints; the ego-network mode (seed
	// paired with itself) must not emit a degenerate zero-length path.
	if len(p.Nodes) < 2 || p.SourceSeed == p.TargetSeed {
		return false
	}
	k := p.key()
	if _, dup := c.seen[k]; dup {
		return false
	}
	c.seen[k] = struct{}{}
	c.paths = append(c.paths, p)
	return true
}
