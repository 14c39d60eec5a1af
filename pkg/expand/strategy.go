package expand

// Candidate names one frontier member chosen for expansion.
type Candidate struct {
	Frontier int
	Node     NodeID
}

// Strategy picks the next node to expand across all frontiers. The engine
// delegates only the scan-and-select step; the iteration, parent and
// path-detection logic is identical for every strategy, which keeps
// cross-strategy comparisons fair.
//
// Implementations must be total orders with deterministic tie-breaking:
// for a fixed expander and frontier content, Select always returns the
// same candidate. Strategies may carry internal state (a seeded RNG, a
// rotation cursor) as long as that state evolves deterministically.
type Strategy interface {
	// Name identifies the strategy in results, logs and metrics.
	Name() string

	// Select returns the next candidate, or ok=false when every frontier
	// is empty.
	Select(view *FrontierView, x Expander) (Candidate, bool)
}

// scanBest scans every frontier member and returns the candidate with the
// lowest score. Ties break on the lexicographically smaller node ID, then
// on the lower frontier index (frontiers are scanned in index order, so
// the first occurrence wins).
func scanBest(view *FrontierView, score func(NodeID) float64) (Candidate, bool) {
	var (
		best      Candidate
		bestScore float64
		found     bool
	)
	for i := 0; i < view.Count(); i++ {
		for _, node := range view.Members(i) {
			s := score(node)
			if !found || s < bestScore || (s == bestScore && node < best.Node) {
				best = Candidate{Frontier: i, Node: node}
				bestScore = s
				found = true
			}
		}
	}
	return best, found
}
