package expand

import (
	"time"

	"github.com/google/uuid"

	"github.com/hubshy/graphsampler/pkg/logging"
	"github.com/hubshy/graphsampler/pkg/metrics"
)

// RunLimits are the early-stop caps of the parameterised baseline engine.
// The primary design is parameter-free (zero value): the run ends only on
// frontier exhaustion. TargetPaths stops once that many paths have been
// found and at least MinIterations iterations have run; MaxIterations is
// a hard cap. Zero disables each field.
type RunLimits struct {
	TargetPaths   int
	MaxIterations int
	MinIterations int
}

// reached reports whether the configured caps end the run now.
func (l RunLimits) reached(iterations, pathCount int) bool {
	if l.MaxIterations > 0 && iterations >= l.MaxIterations {
		return true
	}
	if l.TargetPaths > 0 && pathCount >= l.TargetPaths && iterations >= l.MinIterations {
		return true
	}
	return false
}

// Options configures one Engine.
type Options struct {
	// Strategy picks the next node to expand. Defaults to the
	// degree-ascending primary strategy.
	Strategy Strategy

	// Sink, when non-nil, receives each sampled edge exactly once.
	Sink EdgeSink

	// Limits enables the early-stopping baseline. The zero value keeps
	// the parameter-free design.
	Limits RunLimits

	// HubDegreeThreshold, when positive, turns on the hub-encounter
	// fractions in RunStats. Purely instrumentation.
	HubDegreeThreshold int

	// Logger defaults to a no-op logger.
	Logger logging.Logger

	// Metrics, when non-nil, records run outcomes.
	Metrics *metrics.Registry
}

// DefaultOptions returns the parameter-free primary configuration.
func DefaultOptions() Options {
	return Options{
		Strategy: NewDegreeAscending(),
		Logger:   logging.NewNopLogger(),
	}
}

// Engine drives multi-seed frontier expansion over a lazily revealed
// graph. Expansion is strictly sequential: exactly one node is expanded
// at a time, and the neighbor fetch is awaited before the next candidate
// is selected, so iteration order (and therefore path-discovery order)
// is fully determined by the strategy's tie-break rule.
//
// All traversal state is created fresh per Run; an Engine holds no
// cross-run identity and independent engines may run concurrently.
type Engine struct {
	expander Expander
	seeds    []NodeID
	opts     Options
}

// NewEngine validates configuration and builds an engine. Configuration
// errors (nil expander, empty seed list, blank seed IDs) fail here, never
// mid-run.
func NewEngine(x Expander, seeds []NodeID, opts Options) (*Engine, error) {
	if x == nil {
		return nil, &ExpandError{Op: "NewEngine", Cause: ErrNilExpander}
	}
	if len(seeds) == 0 {
		return nil, &ExpandError{Op: "NewEngine", Cause: ErrNoSeeds}
	}
	for _, s := range seeds {
		if s == "" {
			return nil, &ExpandError{Op: "NewEngine", Cause: ErrBlankSeed}
		}
	}
	if opts.Strategy == nil {
		opts.Strategy = NewDegreeAscending()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	own := make([]NodeID, len(seeds))
	copy(own, seeds)
	return &Engine{expander: x, seeds: own, opts: opts}, nil
}

// Run executes the expansion loop to completion and returns the sampled
// subgraph, the discovered seed-to-seed paths and the run counters.
// Expander failures propagate unmodified; the engine performs no retries
// and no partial-result recovery.
func (e *Engine) Run() (*RunResult, error) {
	runID := uuid.NewString()
	log := e.opts.Logger.With(
		logging.RunID(runID),
		logging.Strategy(e.opts.Strategy.Name()),
		logging.SeedCount(len(e.seeds)),
	)
	start := time.Now()

	st := newRunState(e.seeds)
	skipped := st.seedFrontiers(func(id NodeID) bool {
		_, ok := e.expander.Node(id)
		return ok
	})
	for _, s := range skipped {
		log.Warn("seed not resolvable by expander, skipping", logging.NodeID(string(s)))
	}

	result := &RunResult{
		RunID:    runID,
		Strategy: e.opts.Strategy.Name(),
		nodeSet:  make(map[NodeID]struct{}),
		edgeSet:  make(map[EdgeKey]struct{}),
	}
	for i := 0; i < st.frontiers.Count(); i++ {
		for _, seed := range st.frontiers.Members(i) {
			result.SampledNodes = append(result.SampledNodes, seed)
			result.nodeSet[seed] = struct{}{}
		}
	}

	collector := newPathCollector()
	var hubPositions []int

	log.Info("expansion run started")

	for !st.frontiers.Empty() {
		cand, ok := e.opts.Strategy.Select(st.frontiers, e.expander)
		if !ok {
			break
		}
		result.Stats.Iterations++
		st.frontiers.sets[cand.Frontier].Remove(cand.Node)

		neighbors, err := e.expander.Neighbors(cand.Node)
		if err != nil {
			log.Error("neighbor fetch failed",
				logging.NodeID(string(cand.Node)),
				logging.Error(err))
			e.recordRun("error", time.Since(start), result, collector)
			return nil, err
		}

		result.Stats.NodesExpanded++
		if e.opts.HubDegreeThreshold > 0 && e.expander.Degree(cand.Node) > e.opts.HubDegreeThreshold {
			hubPositions = append(hubPositions, result.Stats.NodesExpanded)
		}
		// Counts traversal work, not discovery: every returned neighbor
		// contributes, whether or not it is new.
		result.Stats.EdgesTraversed += len(neighbors)

		for _, nb := range neighbors {
			owner, seen := st.visited[nb.Target]
			if !seen {
				st.discover(nb.Target, cand.Node, cand.Frontier)
				result.SampledNodes = append(result.SampledNodes, nb.Target)
				result.nodeSet[nb.Target] = struct{}{}

				key := MakeEdgeKey(cand.Node, nb.Target)
				if _, dup := result.edgeSet[key]; !dup {
					result.edgeSet[key] = struct{}{}
					result.SampledEdges = append(result.SampledEdges, key)
					if e.opts.Sink != nil {
						e.opts.Sink.AddEdge(cand.Node, nb.Target, nb.RelType)
					}
				}
				continue
			}
			if owner == cand.Frontier {
				continue
			}
			// Meeting point: this neighbor was first reached by another
			// seed's frontier, so the two parent chains join here.
			u, v := cand.Node, nb.Target
			if owner < cand.Frontier {
				u, v = v, u
			}
			if collector.add(reconstructPath(st.parent, u, v)) {
				p := collector.paths[len(collector.paths)-1]
				log.Debug("path discovered",
					logging.NodeID(string(cand.Node)),
					logging.PathLength(len(p.Edges)))
			}
		}

		log.Debug("node expanded",
			logging.NodeID(string(cand.Node)),
			logging.FrontierIndex(cand.Frontier),
			logging.NeighborCount(len(neighbors)))

		if e.opts.Limits.reached(result.Stats.Iterations, len(collector.paths)) {
			log.Info("run limits reached",
				logging.Iterations(result.Stats.Iterations),
				logging.PathCount(len(collector.paths)))
			break
		}
	}

	result.Paths = collector.paths
	e.fillHubStats(result, hubPositions)
	e.recordRun("success", time.Since(start), result, collector)

	log.Info("expansion run finished",
		logging.Iterations(result.Stats.Iterations),
		logging.NodesExpanded(result.Stats.NodesExpanded),
		logging.EdgesTraversed(result.Stats.EdgesTraversed),
		logging.PathCount(len(result.Paths)),
		logging.Duration("elapsed", time.Since(start)))

	return result, nil
}

// fillHubStats normalises the hub expansion positions into fractions of
// the expansion sequence. Zero hubs leaves the fractions at zero.
func (e *Engine) fillHubStats(result *RunResult, positions []int) {
	if e.opts.HubDegreeThreshold <= 0 || len(positions) == 0 || result.Stats.NodesExpanded == 0 {
		return
	}
	total := float64(result.Stats.NodesExpanded)
	result.Stats.FirstHubEncounterFraction = float64(positions[0]) / total
	sum := 0.0
	for _, p := range positions {
		sum += float64(p)
	}
	result.Stats.MeanHubEncounterFraction = sum / float64(len(positions)) / total
}

func (e *Engine) recordRun(status string, elapsed time.Duration, result *RunResult, collector *pathCollector) {
	if e.opts.Metrics == nil {
		return
	}
	e.opts.Metrics.RecordRun(e.opts.Strategy.Name(), status, elapsed,
		result.Stats.NodesExpanded, result.Stats.EdgesTraversed, len(collector.paths))
}
