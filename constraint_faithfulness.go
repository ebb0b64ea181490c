package otlearn

import "fmt"

func init() {
	registerConstraint("Max", func(b []FeatureBundle) (Constraint, error) { return newSingleBundleConstraint("Max", b) })
	registerConstraint("Dep", func(b []FeatureBundle) (Constraint, error) { return newSingleBundleConstraint("Dep", b) })
	registerConstraint("Ident", func(b []FeatureBundle) (Constraint, error) { return newSingleBundleConstraint("Ident", b) })
	registerConstraint("Faith", func(b []FeatureBundle) (Constraint, error) {
		if len(b) != 0 {
			return nil, &ConstraintFormatError{Reason: "Faith takes no feature bundles"}
		}
		return faithConstraint{}, nil
	})
}

// faithfulnessConstraint implements Max, Dep, and Ident, which all
// carry exactly one feature bundle and differ only in which arcs they
// penalize. kind selects the per-variant arc-construction rule.
type faithfulnessConstraint struct {
	kind   string
	bundle FeatureBundle
}

func newSingleBundleConstraint(kind string, bundles []FeatureBundle) (Constraint, error) {
	if len(bundles) != 1 {
		return nil, &ConstraintFormatError{Reason: kind + " requires exactly one feature bundle"}
	}
	return faithfulnessConstraint{kind, bundles[0]}, nil
}

func (c faithfulnessConstraint) Kind() string               { return c.kind }
func (c faithfulnessConstraint) Bundles() []FeatureBundle    { return []FeatureBundle{c.bundle} }
func (c faithfulnessConstraint) EncodingLength() int         { return constraintEncodingLength(c.Bundles()) }
func (c faithfulnessConstraint) String() string              { return fmt.Sprintf("%s[%s]", c.kind, c.bundle) }

func (c faithfulnessConstraint) Transducer(table *FeatureTable, cfg *Config) *Transducer {
	t := NewTransducer(2, c.String())
	s := t.SetAsSingleState()
	alphabet := table.Alphabet()
	satisfies := func(sym Segment) bool { return c.bundle.Satisfies(table, sym.Symbol) }

	for _, seg := range alphabet {
		t.AddArc(s, seg, seg, CostVector{1, 0}, s) // identity
	}
	switch c.kind {
	case "Max":
		for _, seg := range alphabet {
			t.AddArc(s, NullSegment, seg, CostVector{1, 0}, s) // epenthesis, never violated
			v := 0
			if satisfies(seg) {
				v = 1
			}
			t.AddArc(s, seg, NullSegment, CostVector{1, v}, s) // deletion
		}
	case "Dep":
		for _, seg := range alphabet {
			v := 0
			if satisfies(seg) {
				v = 1
			}
			t.AddArc(s, NullSegment, seg, CostVector{1, v}, s) // epenthesis
			t.AddArc(s, seg, NullSegment, CostVector{1, 0}, s) // deletion, never violated
		}
	case "Ident":
		for _, seg := range alphabet {
			t.AddArc(s, NullSegment, seg, CostVector{1, 0}, s)
			t.AddArc(s, seg, NullSegment, CostVector{1, 0}, s)
		}
	}
	if c.kind == "Ident" || cfg.AllowCandidatesWithChangedSegments {
		for _, from := range alphabet {
			for _, to := range alphabet {
				if from == to {
					continue
				}
				v := 0
				if c.kind == "Ident" && satisfies(from) && !satisfies(to) {
					v = 1
				}
				t.AddArc(s, from, to, CostVector{1, v}, s)
			}
		}
	}
	return t
}

// faithConstraint is the undirected Faith constraint: no bundles,
// penalizes any insertion, deletion, or (if allowed) substitution.
type faithConstraint struct{}

func (faithConstraint) Kind() string            { return "Faith" }
func (faithConstraint) Bundles() []FeatureBundle { return nil }
func (faithConstraint) EncodingLength() int      { return constraintEncodingLength(nil) }
func (faithConstraint) String() string           { return "Faith[]" }

func (faithConstraint) Transducer(table *FeatureTable, cfg *Config) *Transducer {
	t := NewTransducer(2, "Faith[]")
	s := t.SetAsSingleState()
	alphabet := table.Alphabet()
	for _, seg := range alphabet {
		t.AddArc(s, seg, seg, CostVector{1, 0}, s)
		t.AddArc(s, NullSegment, seg, CostVector{1, 1}, s)
		t.AddArc(s, seg, NullSegment, CostVector{1, 1}, s)
	}
	if cfg.AllowCandidatesWithChangedSegments {
		for _, from := range alphabet {
			for _, to := range alphabet {
				if from != to {
					t.AddArc(s, from, to, CostVector{1, 1}, s)
				}
			}
		}
	}
	return t
}
