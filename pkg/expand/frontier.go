package expand

// orderedSet is an insertion-ordered set of node IDs. Iteration order is
// discovery order, which keeps candidate scans deterministic.
type orderedSet struct {
	order []NodeID
	index map[NodeID]int
}

func newOrderedSet() *orderedSet {
	return &orderedSet{index: make(map[NodeID]int)}
}

// Add appends id if absent and reports whether it was inserted.
func (s *orderedSet) Add(id NodeID) bool {
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = len(s.order)
	s.order = append(s.order, id)
	return true
}

// Remove deletes id, preserving the order of the remaining members.
func (s *orderedSet) Remove(id NodeID) bool {
	pos, ok := s.index[id]
	if !ok {
		return false
	}
	delete(s.index, id)
	s.order = append(s.order[:pos], s.order[pos+1:]...)
	for i := pos; i < len(s.order); i++ {
		s.index[s.order[i]] = i
	}
	return true
}

func (s *orderedSet) Contains(id NodeID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *orderedSet) Len() int {
	return len(s.order)
}

// Members returns the set in insertion order. Callers must not mutate it.
func (s *orderedSet) Members() []NodeID {
	return s.order
}

// FrontierView is the read-only window strategies get onto the per-seed
// frontiers. Frontier membership is exclusive: a node ID is an active
// member of at most one frontier at any time.
type FrontierView struct {
	sets []*orderedSet
}

// Count returns the number of frontiers (one per seed).
func (v *FrontierView) Count() int {
	return len(v.sets)
}

// Len returns the size of frontier i.
func (v *FrontierView) Len(i int) int {
	return v.sets[i].Len()
}

// Members returns frontier i in discovery order. Callers must not mutate
// the returned slice.
func (v *FrontierView) Members(i int) []NodeID {
	return v.sets[i].Members()
}

// Empty reports whether every frontier is exhausted.
func (v *FrontierView) Empty() bool {
	for _, s := range v.sets {
		if s.Len() > 0 {
			return false
		}
	}
	return true
}

// runState holds all mutable traversal state for one engine run. It is
// created fresh per Run call and never shared.
type runState struct {
	seeds     []NodeID
	frontiers *FrontierView
	visited   map[NodeID]int    // node -> index of the frontier that first reached it
	parent    map[NodeID]NodeID // first-discovery parent pointers; seeds are absent (roots)
}

func newRunState(seeds []NodeID) *runState {
	sets := make([]*orderedSet, len(seeds))
	for i := range sets {
		sets[i] = newOrderedSet()
	}
	return &runState{
		seeds:     seeds,
		frontiers: &FrontierView{sets: sets},
		visited:   make(map[NodeID]int),
		parent:    make(map[NodeID]NodeID),
	}
}

// seedFrontiers marks each resolvable seed visited and places it on its
// own frontier. Duplicate seeds (ego mode) collapse onto the first
// occurrence's frontier so that frontier exclusivity holds; the later
// duplicates simply start exhausted.
func (st *runState) seedFrontiers(resolvable func(NodeID) bool) []NodeID {
	var skipped []NodeID
	for i, seed := range st.seeds {
		if _, seen := st.visited[seed]; seen {
			continue
		}
		if !resolvable(seed) {
			skipped = append(skipped, seed)
			continue
		}
		st.visited[seed] = i
		st.frontiers.sets[i].Add(seed)
	}
	return skipped
}

// discover records a first visitation: owner frontier, parent pointer,
// frontier membership. A node is discovered exactly once per run, which
// is what keeps parent chains acyclic.
func (st *runState) discover(node NodeID, parent NodeID, frontier int) {
	st.visited[node] = frontier
	st.parent[node] = parent
	st.frontiers.sets[frontier].Add(node)
}
