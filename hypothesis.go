package otlearn

import "math"

// Hypothesis is one point in the search space: a Grammar together
// with the Corpus it is being fit to. Energy is the simulated
// annealer's objective: the Minimum Description Length sum of the
// grammar's own encoding and the corpus's encoding given the
// grammar.
type Hypothesis struct {
	Grammar *Grammar
	Corpus  *Corpus
	Table   *FeatureTable
	Config  *Config
}

// NewHypothesis pairs a grammar, a corpus, and the shared feature
// table/config.
func NewHypothesis(g *Grammar, corpus *Corpus, table *FeatureTable, cfg *Config) *Hypothesis {
	return &Hypothesis{Grammar: g, Corpus: corpus, Table: table, Config: cfg}
}

// Clone deep-copies the grammar; Corpus/Table/Config are shared
// immutable inputs.
func (hy *Hypothesis) Clone() *Hypothesis {
	return &Hypothesis{Grammar: hy.Grammar.Clone(), Corpus: hy.Corpus, Table: hy.Table, Config: hy.Config}
}

// unparsablePenalty is charged per occurrence of a corpus form that
// no underlying word in the lexicon's derived language realizes
// under the current grammar: large enough that the annealer always
// prefers a hypothesis that explains one more form, however cheaply.
const unparsablePenalty = 1 << 16

// ParseData finds, for each distinct corpus form, the cheapest
// (underlying word, derivation) pair whose grammar output set
// contains that form, and returns the per-occurrence cost of each
// form, parallel to Corpus.Forms (and so to Corpus.Counts).
func (hy *Hypothesis) ParseData(caches *Caches) []float64 {
	words := hy.Grammar.Lexicon.Words()
	parser := NewParsingNFA(hy.Grammar.Lexicon.HMM())
	costs := make([]float64, len(hy.Corpus.Forms))
	for i, form := range hy.Corpus.Forms {
		best := math.Inf(1)
		for _, u := range words {
			segs := SplitSymbols(hy.Table, u)
			word := NewWord(segs)
			outputs := hy.Grammar.Generate(word, hy.Table, hy.Config, caches)
			found := false
			for _, o := range outputs {
				if o == form {
					found = true
					break
				}
			}
			if !found {
				continue
			}
			cost := parser.ObservationEncodingLength(segs)
			if len(outputs) > 1 {
				cost += log2(len(outputs))
			}
			if cost < best {
				best = cost
			}
		}
		if math.IsInf(best, 1) {
			best = unparsablePenalty
		}
		costs[i] = best
	}
	return costs
}

// DataLength is the corpus's total encoding length given the
// grammar: sum over distinct forms of (per-occurrence cost * count).
func (hy *Hypothesis) DataLength(caches *Caches) float64 {
	costs := hy.ParseData(caches)
	total := 0.0
	for i, c := range costs {
		total += c * float64(hy.Corpus.Counts[i])
	}
	return total
}

// GrammarLength is the bit cost of the grammar itself: the
// constraint set's encoding plus the lexicon's HMM encoding.
func (hy *Hypothesis) GrammarLength() float64 {
	cs := float64(hy.Grammar.Constraints.EncodingLength(hy.Table))
	lex := float64(hy.Grammar.Lexicon.EncodingLength(hy.Table))
	return cs + lex
}

// Energy is the annealer's objective function: a weighted sum of
// data length and grammar length.
func (hy *Hypothesis) Energy(caches *Caches) float64 {
	return hy.Config.DataEncodingLengthMultiplier*hy.DataLength(caches) +
		hy.Config.GrammarEncodingLengthMultiplier*hy.GrammarLength()
}

// GetNeighbor returns a cloned Hypothesis with exactly one local
// mutation applied to either the lexicon or the constraint set,
// weighted by cfg.MutateLexicon/MutateConstraintSet. If the chosen
// mutation fails to apply (e.g. a bound was already at its limit),
// the clone is returned unchanged — the annealer simply reevaluates
// the same energy and the Metropolis step becomes a no-op.
func (hy *Hypothesis) GetNeighbor(r *Random, caches *Caches) *Hypothesis {
	next := hy.Clone()
	switch WeightedChoice(r, []int{hy.Config.MutateLexicon, hy.Config.MutateConstraintSet}) {
	case 0:
		next.Grammar.Lexicon.MakeMutation(r, hy.Table, hy.Config)
	case 1:
		next.Grammar.Constraints.MakeMutation(r, hy.Table, hy.Config, caches)
	}
	return next
}
