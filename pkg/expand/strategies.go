package expand

import (
	"math/rand"
)

// Strategy names as they appear in results, logs, metrics and config.
const (
	StrategyDegreeAscending  = "degree-ascending"
	StrategyDegreeDescending = "degree-descending"
	StrategyRandom           = "random"
	StrategyFIFO             = "fifo"
	StrategyFrontierBalanced = "frontier-balanced"
	StrategyPriorityScore    = "priority-score"
)

// degreeAscending defers hubs: the lowest-degree frontier member anywhere
// expands first, so high-connectivity nodes are reached only once no
// lower-degree alternative remains. This is the primary sampling strategy.
type degreeAscending struct{}

// NewDegreeAscending returns the hub-deferring primary strategy.
func NewDegreeAscending() Strategy { return degreeAscending{} }

func (degreeAscending) Name() string { return StrategyDegreeAscending }

func (degreeAscending) Select(view *FrontierView, x Expander) (Candidate, bool) {
	return scanBest(view, func(n NodeID) float64 {
		return float64(x.Degree(n))
	})
}

// degreeDescending expands the highest-degree member first. It exists as
// the opposite-extreme baseline to show hub deferral is not arbitrary.
type degreeDescending struct{}

// NewDegreeDescending returns the hub-first baseline strategy.
func NewDegreeDescending() Strategy { return degreeDescending{} }

func (degreeDescending) Name() string { return StrategyDegreeDescending }

func (degreeDescending) Select(view *FrontierView, x Expander) (Candidate, bool) {
	return scanBest(view, func(n NodeID) float64 {
		return -float64(x.Degree(n))
	})
}

// randomOrder picks uniformly among all frontier members using a seeded
// RNG, the null-hypothesis baseline. Candidates are enumerated in
// frontier/discovery order, so a fixed seed reproduces the run exactly.
type randomOrder struct {
	rng *rand.Rand
}

// NewRandom returns the uniform-random baseline strategy. The same seed
// on the same graph replays the same expansion order.
func NewRandom(seed int64) Strategy {
	return &randomOrder{rng: rand.New(rand.NewSource(seed))}
}

func (*randomOrder) Name() string { return StrategyRandom }

func (r *randomOrder) Select(view *FrontierView, x Expander) (Candidate, bool) {
	total := 0
	for i := 0; i < view.Count(); i++ {
		total += view.Len(i)
	}
	if total == 0 {
		return Candidate{}, false
	}
	pick := r.rng.Intn(total)
	for i := 0; i < view.Count(); i++ {
		members := view.Members(i)
		if pick < len(members) {
			return Candidate{Frontier: i, Node: members[pick]}, true
		}
		pick -= len(members)
	}
	return Candidate{}, false // unreachable
}

// fifoOrder is conventional BFS: each frontier is a queue, frontiers take
// turns in rotation, and the oldest-discovered member of the current
// frontier expands next. No cross-frontier awareness.
type fifoOrder struct {
	cursor int
}

// NewFIFO returns the breadth-first baseline strategy.
func NewFIFO() Strategy { return &fifoOrder{} }

func (*fifoOrder) Name() string { return StrategyFIFO }

func (f *fifoOrder) Select(view *FrontierView, x Expander) (Candidate, bool) {
	n := view.Count()
	for off := 0; off < n; off++ {
		i := (f.cursor + off) % n
		if view.Len(i) > 0 {
			f.cursor = (i + 1) % n
			return Candidate{Frontier: i, Node: view.Members(i)[0]}, true
		}
	}
	return Candidate{}, false
}

// frontierBalanced picks from the currently smallest non-empty frontier
// (ties: lowest index), then the lowest-degree member within it. It tests
// whether balancing seed coverage, rather than node degree, explains the
// sampling effect.
type frontierBalanced struct{}

// NewFrontierBalanced returns the seed-coverage-balancing baseline.
func NewFrontierBalanced() Strategy { return frontierBalanced{} }

func (frontierBalanced) Name() string { return StrategyFrontierBalanced }

func (frontierBalanced) Select(view *FrontierView, x Expander) (Candidate, bool) {
	smallest := -1
	for i := 0; i < view.Count(); i++ {
		if view.Len(i) == 0 {
			continue
		}
		if smallest < 0 || view.Len(i) < view.Len(smallest) {
			smallest = i
		}
	}
	if smallest < 0 {
		return Candidate{}, false
	}
	var (
		best      NodeID
		bestScore int
		found     bool
	)
	for _, node := range view.Members(smallest) {
		d := x.Degree(node)
		if !found || d < bestScore || (d == bestScore && node < best) {
			best = node
			bestScore = d
			found = true
		}
	}
	return Candidate{Frontier: smallest, Node: best}, true
}

// priorityScore delegates scoring to the adapter's Priority method, the
// seam used by salience-aware adapters that pre-compute node importance
// from the whole graph. Lower scores expand first.
type priorityScore struct {
	opts PriorityOptions
}

// NewPriorityScore returns a strategy scored by Expander.Priority.
func NewPriorityScore(opts PriorityOptions) Strategy {
	return priorityScore{opts: opts}
}

func (priorityScore) Name() string { return StrategyPriorityScore }

func (p priorityScore) Select(view *FrontierView, x Expander) (Candidate, bool) {
	return scanBest(view, func(n NodeID) float64 {
		return x.Priority(n, p.opts)
	})
}
