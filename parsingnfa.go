package otlearn

import "math"

// ParsingNFA parses an observed surface word against the HMM's
// derived NFA expansion (see DeriveNFA) to find the
// minimum-description-length derivation: the Viterbi path that
// minimizes, over every non-final state visited, the cost of naming
// which of its outgoing arcs (epsilon or symbol) was taken, charged
// once per state as ceil(log2(out_degree(state))). This doubles as
// the probability model Hypothesis.DataLength charges a word
// against.
type ParsingNFA struct {
	n *NFA
}

// NewParsingNFA derives h's NFA and wraps it for parsing.
func NewParsingNFA(h *HMM) *ParsingNFA { return &ParsingNFA{DeriveNFA(h)} }

func log2(n int) float64 {
	if n <= 1 {
		return 0
	}
	return math.Log2(float64(n))
}

// Parse returns the minimum total bit cost of any derivation of obs
// against the derived NFA, and whether at least one derivation
// exists.
func (p *ParsingNFA) Parse(obs []string) (float64, bool) {
	n := p.n
	numPos := len(obs) + 1
	const inf = math.MaxFloat64

	// dp[pos] maps an NFA state to the best cost of having consumed
	// obs[:pos] and currently standing at that state, about to
	// choose one of its outgoing arcs.
	dp := make([]map[int]float64, numPos)
	for i := range dp {
		dp[i] = map[int]float64{}
	}
	dp[0][n.start] = 0

	relaxEpsilon := func(pos int) {
		for changed := true; changed; {
			changed = false
			for s, cost := range dp[pos] {
				step := float64(ceilLog2(n.outDegree(s)))
				for _, to := range n.epsilon[s] {
					nc := cost + step
					if cur, ok := dp[pos][to]; !ok || nc < cur {
						dp[pos][to] = nc
						changed = true
					}
				}
			}
		}
	}

	for pos := 0; pos < numPos; pos++ {
		relaxEpsilon(pos)
		if pos == numPos-1 {
			break
		}
		sym := obs[pos]
		for s, cost := range dp[pos] {
			step := float64(ceilLog2(n.outDegree(s)))
			for _, arc := range n.symbol[s] {
				if arc.sym != sym {
					continue
				}
				nc := cost + step
				if cur, ok := dp[pos+1][arc.to]; !ok || nc < cur {
					dp[pos+1][arc.to] = nc
				}
			}
		}
	}

	best, ok := dp[numPos-1][n.final]
	if !ok {
		return inf, false
	}
	return best, true
}

// ObservationEncodingLength is the bit cost Hypothesis charges for
// one occurrence of obs in the corpus: the MDL cost of its cheapest
// derivation, or +Inf if the grammar's lexicon cannot produce it at
// all.
func (p *ParsingNFA) ObservationEncodingLength(obs []string) float64 {
	cost, ok := p.Parse(obs)
	if !ok {
		return math.Inf(1)
	}
	return cost
}
