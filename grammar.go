package otlearn

// Grammar pairs a ranked ConstraintSet with a Lexicon of candidate
// underlying forms. Generate maps one underlying form to the set of
// surface forms the optimal-paths transducer predicts as winners.
type Grammar struct {
	Constraints *ConstraintSet
	Lexicon     *Lexicon
}

// NewGrammar pairs a constraint set and a lexicon.
func NewGrammar(cs *ConstraintSet, lex *Lexicon) *Grammar {
	return &Grammar{Constraints: cs, Lexicon: lex}
}

// Clone deep-copies both halves.
func (g *Grammar) Clone() *Grammar {
	return &Grammar{Constraints: g.Constraints.Clone(), Lexicon: g.Lexicon.Clone()}
}

// Transducer returns MakeOptimalPaths of the ranked constraint set's
// transducer. Every state of that transducer is final, so only its
// zero-cost arcs survive; Generate therefore does not use it, and
// instead takes optimal paths after intersecting with the word.
func (g *Grammar) Transducer(table *FeatureTable, cfg *Config, caches *Caches) *Transducer {
	return g.Constraints.Transducer(table, cfg, caches).MakeOptimalPaths()
}

// Generate returns the surface forms the grammar predicts as winners
// for the given underlying word, memoized in caches under the
// constraint set's canonical string plus the word's string.
func (g *Grammar) Generate(w Word, table *FeatureTable, cfg *Config, caches *Caches) []string {
	key := g.Constraints.String() + "|" + w.String()
	if out, ok := caches.GrammarOutputs(key); ok {
		return out
	}
	evalT := g.Constraints.Transducer(table, cfg, caches)
	wordT := w.Transducer(table)
	product, err := Intersect("Generate["+w.String()+"]", wordT, evalT)
	if err != nil {
		caches.SetGrammarOutputs(key, nil)
		return nil
	}
	product.ClearDeadStates()
	outputs := product.MakeOptimalPaths().GetRange()
	caches.SetGrammarOutputs(key, outputs)
	return outputs
}
