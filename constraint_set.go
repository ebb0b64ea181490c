package otlearn

import (
	"strings"
)

// ConstraintSet is an ordered list of Constraints, index 0 ranked
// highest. Its size is bounded by cfg's
// Min/MaxNumberOfConstraintsInConstraintSet, and Faith (when present)
// is never removed by mutation.
type ConstraintSet struct {
	constraints []Constraint
}

// NewConstraintSet builds a ConstraintSet from an already-ordered
// constraint list.
func NewConstraintSet(constraints []Constraint) *ConstraintSet {
	return &ConstraintSet{append([]Constraint(nil), constraints...)}
}

// Len returns the number of constraints.
func (cs *ConstraintSet) Len() int { return len(cs.constraints) }

// At returns the constraint ranked at position i.
func (cs *ConstraintSet) At(i int) Constraint { return cs.constraints[i] }

// Clone returns an independent copy (constraints themselves are
// immutable values, so only the slice needs copying).
func (cs *ConstraintSet) Clone() *ConstraintSet {
	return &ConstraintSet{append([]Constraint(nil), cs.constraints...)}
}

// String prints constraints in rank order separated by " >> ",
// matching the printed constraint-set file form.
func (cs *ConstraintSet) String() string {
	parts := make([]string, len(cs.constraints))
	for i, c := range cs.constraints {
		parts[i] = c.String()
	}
	return strings.Join(parts, " >> ")
}

// EncodingLength is k * (sum of each constraint's encoding length),
// where each constraint's own length is 1 plus its bundles' lengths
// and k = ceil(log2(N_kinds + N_features + 3)) selects one of the
// constraint kinds, one of the features, or a few fixed sentinels per
// symbol.
func (cs *ConstraintSet) EncodingLength(table *FeatureTable) int {
	k := ceilLog2(len(constraintKinds) + table.NumFeatures() + 3)
	total := 0
	for _, c := range cs.constraints {
		total += c.EncodingLength()
	}
	return k * total
}

// Transducer returns the intersection of every constraint's
// transducer, memoized in caches under cs.String(). A single
// constraint needs no intersection at all.
func (cs *ConstraintSet) Transducer(table *FeatureTable, cfg *Config, caches *Caches) *Transducer {
	key := cs.String()
	if t, ok := caches.ConstraintSetTransducer(key); ok {
		return t
	}
	parts := make([]*Transducer, len(cs.constraints))
	for i, c := range cs.constraints {
		parts[i] = caches.ConstraintTransducer(c, table, cfg)
	}
	var t *Transducer
	if len(parts) == 1 {
		t = parts[0].Clone()
	} else {
		var err error
		t, err = Intersect(key, parts...)
		if err != nil {
			panic(&TransducerError{Reason: "ConstraintSet.Transducer: " + err.Error()})
		}
	}
	caches.SetConstraintSetTransducer(key, t)
	return t
}

// Demote swaps the constraints ranked at i and i+1. When the
// intersected transducer for the pre-swap order is already cached,
// the swap is realized by cloning that cached transducer and calling
// SwapWeightsOnArcs instead of re-intersecting from scratch — the key
// optimization in the design (ConstraintSet.demote_constraint in the
// source this was distilled from). When the cache is cold, the caller
// will simply re-intersect on the next call to Transducer.
func (cs *ConstraintSet) Demote(i int, table *FeatureTable, cfg *Config, caches *Caches) {
	if i < 0 || i+1 >= len(cs.constraints) {
		return
	}
	before := cs.String()
	costOffset := 0
	for _, c := range cs.constraints[:i] {
		costOffset += costLenOf(c, table, cfg, caches)
	}
	lenI := costLenOf(cs.constraints[i], table, cfg, caches)
	lenJ := costLenOf(cs.constraints[i+1], table, cfg, caches)

	cs.constraints[i], cs.constraints[i+1] = cs.constraints[i+1], cs.constraints[i]
	after := cs.String()

	if cached, ok := caches.ConstraintSetTransducer(before); ok && lenI == lenJ {
		// Swap is only valid when the cached vector is exactly the
		// concatenation of single-constraint vectors in rank order
		// (Design Note 7); equal-length neighbors is the common case
		// that makes the arithmetic below a simple contiguous swap.
		swapped := cached
		for k := 0; k < lenI; k++ {
			swapped = swapped.SwapWeightsOnArcs(costOffset+k, costOffset+lenI+k)
		}
		caches.SetConstraintSetTransducer(after, swapped)
	}
}

func costLenOf(c Constraint, table *FeatureTable, cfg *Config, caches *Caches) int {
	return caches.ConstraintTransducer(c, table, cfg).CostLen
}

// make_mutation dispatch. Each returns whether it changed cs.

// MakeMutation weighted-dispatches among insert/remove/demote
// constraint and insert/remove/augment feature bundle, and reports
// whether a mutation actually happened.
func (cs *ConstraintSet) MakeMutation(r *Random, table *FeatureTable, cfg *Config, caches *Caches) bool {
	weights := []int{
		cfg.InsertConstraint,
		cfg.RemoveConstraint,
		cfg.DemoteConstraint,
		cfg.InsertFeatureBundlePhonotacticConstraint,
		cfg.RemoveFeatureBundlePhonotacticConstraint,
		cfg.AugmentFeatureBundle,
	}
	switch WeightedChoice(r, weights) {
	case 0:
		return cs.insertConstraint(r, table, cfg)
	case 1:
		return cs.removeConstraint(r, cfg)
	case 2:
		return cs.demoteConstraint(r, table, cfg, caches)
	case 3:
		return cs.insertBundle(r, table, cfg)
	case 4:
		return cs.removeBundle(r)
	case 5:
		return cs.augmentBundle(r, table, cfg)
	default:
		return false
	}
}

func (cs *ConstraintSet) insertConstraint(r *Random, table *FeatureTable, cfg *Config) bool {
	if cfg.MaxNumberOfConstraintsInConstraintSet > 0 && cs.Len() >= cfg.MaxNumberOfConstraintsInConstraintSet {
		return false
	}
	weights := map[string]int{
		"Dep": cfg.DepForInsert, "Max": cfg.MaxForInsert,
		"Ident": cfg.IdentForInsert, "Phonotactic": cfg.PhonotacticForInsert,
	}
	kinds := []string{"Dep", "Max", "Ident", "Phonotactic"}
	ws := make([]int, len(kinds))
	for i, k := range kinds {
		ws[i] = weights[k]
	}
	idx := WeightedChoice(r, ws)
	if idx < 0 {
		return false
	}
	kind := kinds[idx]
	var bundles []FeatureBundle
	if kind == "Phonotactic" {
		n := cfg.InitialNumberOfBundlesInPhonotacticConstraint
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			bundles = append(bundles, GenerateRandomFeatureBundle(r, table, cfg))
		}
	} else {
		bundles = []FeatureBundle{GenerateRandomFeatureBundle(r, table, cfg)}
	}
	c, err := NewConstraint(kind, bundles)
	if err != nil {
		return false
	}
	for _, existing := range cs.constraints {
		if existing.String() == c.String() {
			return false // no duplicate constraints
		}
	}
	at := r.Intn(cs.Len() + 1)
	cs.constraints = append(cs.constraints, nil)
	copy(cs.constraints[at+1:], cs.constraints[at:])
	cs.constraints[at] = c
	return true
}

func (cs *ConstraintSet) removeConstraint(r *Random, cfg *Config) bool {
	if cs.Len() <= cfg.MinNumberOfConstraintsInConstraintSet {
		return false
	}
	var candidates []int
	for i, c := range cs.constraints {
		if c.Kind() != "Faith" {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return false
	}
	i := candidates[r.Intn(len(candidates))]
	cs.constraints = append(cs.constraints[:i], cs.constraints[i+1:]...)
	return true
}

func (cs *ConstraintSet) demoteConstraint(r *Random, table *FeatureTable, cfg *Config, caches *Caches) bool {
	if cs.Len() < 2 {
		return false
	}
	i := r.Intn(cs.Len() - 1)
	cs.Demote(i, table, cfg, caches)
	return true
}

func (cs *ConstraintSet) phonotacticIndices() []int {
	var idx []int
	for i, c := range cs.constraints {
		if c.Kind() == "Phonotactic" || c.Kind() == "VowelHarmony" {
			idx = append(idx, i)
		}
	}
	return idx
}

func (cs *ConstraintSet) insertBundle(r *Random, table *FeatureTable, cfg *Config) bool {
	idx := cs.phonotacticIndices()
	if len(idx) == 0 {
		return false
	}
	i := idx[r.Intn(len(idx))]
	c := cs.constraints[i].(markednessConstraint)
	if cfg.MaxFeatureBundlesInPhonotacticConstraint > 0 && len(c.bundles) >= cfg.MaxFeatureBundlesInPhonotacticConstraint {
		return false
	}
	at := r.Intn(len(c.bundles) + 1)
	nb := append([]FeatureBundle(nil), c.bundles[:at]...)
	nb = append(nb, GenerateRandomFeatureBundle(r, table, cfg))
	nb = append(nb, c.bundles[at:]...)
	c.bundles = nb
	cs.constraints[i] = c
	return true
}

func (cs *ConstraintSet) removeBundle(r *Random) bool {
	idx := cs.phonotacticIndices()
	if len(idx) == 0 {
		return false
	}
	i := idx[r.Intn(len(idx))]
	c := cs.constraints[i].(markednessConstraint)
	if len(c.bundles) <= 1 {
		return false
	}
	at := r.Intn(len(c.bundles))
	c.bundles = append(append([]FeatureBundle(nil), c.bundles[:at]...), c.bundles[at+1:]...)
	cs.constraints[i] = c
	return true
}

func (cs *ConstraintSet) augmentBundle(r *Random, table *FeatureTable, cfg *Config) bool {
	if cs.Len() == 0 {
		return false
	}
	i := r.Intn(cs.Len())
	bundles := cs.constraints[i].Bundles()
	if len(bundles) == 0 {
		return false
	}
	bi := r.Intn(len(bundles))
	augmented, ok := bundles[bi].AugmentFeatureBundle(r, table, cfg)
	if !ok {
		return false
	}
	nb := append([]FeatureBundle(nil), bundles...)
	nb[bi] = augmented
	c, err := NewConstraint(cs.constraints[i].Kind(), nb)
	if err != nil {
		return false
	}
	cs.constraints[i] = c
	return true
}
