package otlearn

func init() {
	registerConstraint("Phonotactic", func(b []FeatureBundle) (Constraint, error) { return newMarkednessConstraint("Phonotactic", b) })
	registerConstraint("VowelHarmony", func(b []FeatureBundle) (Constraint, error) { return newMarkednessConstraint("VowelHarmony", b) })
}

// markednessConstraint implements Phonotactic and VowelHarmony, the
// two constraints that penalize a subsequence of surface bundles
// B_0...B_{n} regardless of the input side. Both are built as a
// subsequence-matching automaton over the bundle sequence, tracking
// "length of the longest matched prefix so far" the way an
// Aho-Corasick failure function does for a single pattern; the two
// variants differ only in whether the "harmony zone" self-loop is
// added (see Transducer below).
type markednessConstraint struct {
	kind    string
	bundles []FeatureBundle
}

func newMarkednessConstraint(kind string, bundles []FeatureBundle) (Constraint, error) {
	if len(bundles) < 1 {
		return nil, &ConstraintFormatError{Reason: kind + " requires at least one feature bundle"}
	}
	return markednessConstraint{kind, bundles}, nil
}

func (c markednessConstraint) Kind() string            { return c.kind }
func (c markednessConstraint) Bundles() []FeatureBundle { return c.bundles }
func (c markednessConstraint) EncodingLength() int {
	// Phonotactic/VowelHarmony additionally pay for the bundle count
	// itself, since the automaton's shape (not just its content)
	// depends on how many bundles are chained.
	return constraintEncodingLength(c.bundles) + len(c.bundles)
}
func (c markednessConstraint) String() string { return c.kind + "[" + bundlesString(c.bundles) + "]" }

// failureFunction builds the KMP-style failure links for the bundle
// sequence: fail[i] is the length of the longest proper prefix of
// bundles[:i] that is also a suffix of it, where two bundle positions
// "match" when they are bundle-equal (same canonical string).
func failureFunction(bundles []FeatureBundle) []int {
	n := len(bundles)
	fail := make([]int, n+1)
	k := 0
	for i := 1; i < n; i++ {
		for k > 0 && bundles[i].String() != bundles[k].String() {
			k = fail[k]
		}
		if bundles[i].String() == bundles[k].String() {
			k++
		}
		fail[i+1] = k
	}
	return fail
}

// delta computes the automaton's next matched-prefix length from j on
// reading segment s, using the failure function to fall back through
// shorter candidate prefixes exactly as Aho-Corasick does for a
// single pattern.
func delta(table *FeatureTable, bundles []FeatureBundle, fail []int, j int, s Segment) int {
	for j > 0 && !bundles[j].Satisfies(table, s.Symbol) {
		j = fail[j]
	}
	if bundles[j].Satisfies(table, s.Symbol) {
		j++
	}
	return j
}

func (c markednessConstraint) Transducer(table *FeatureTable, cfg *Config) *Transducer {
	L := len(c.bundles)
	fail := failureFunction(c.bundles)
	t := NewTransducer(1, c.String())
	states := make([]StateID, L+1)
	for j := 0; j <= L; j++ {
		states[j] = t.AddState("q" + string(rune('0'+j)))
		t.AddFinal(states[j]) // every state is final (spec.md 4.2)
	}
	t.SetInitial(states[0])
	alphabet := table.Alphabet()

	for j := 0; j <= L; j++ {
		if j < L {
			// delta indexes bundles[j], so it is only called with
			// j < L; the fully-matched state L is mapped to fail[L]
			// below before delta is called.
		}
		jj := j
		if jj == L {
			// Allow the automaton to keep scanning past a full match by
			// treating the completed state itself as subject to the same
			// fallback rule used at interior states (using fail[L]).
			jj = fail[L]
		}
		for _, s := range alphabet {
			next := delta(table, c.bundles, fail, jj, s)
			cost := CostVector{0}
			if next == L {
				cost = CostVector{1}
			}
			t.AddArc(states[j], JokerSegment, s, cost, states[next])
		}
		// Deletions: a NULL surface contributes nothing to the match.
		t.AddArc(states[j], JokerSegment, NullSegment, CostVector{0}, states[j])
	}

	if c.kind == "VowelHarmony" {
		for j := 0; j < L; j++ {
			target := j + 1
			if target >= L {
				continue // the "harmony zone" only applies to intermediate states
			}
			for _, s := range alphabet {
				if c.bundles[j].Satisfies(table, s.Symbol) {
					t.AddArc(states[target], JokerSegment, s, CostVector{0}, states[target])
				}
			}
		}
	}
	return t
}
