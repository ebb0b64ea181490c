package otlearn

import (
	"math"
	"sort"
	"strings"
)

// Constraint is a single OT constraint: a polymorphic value over the
// variants Max, Dep, Ident, Faith, Phonotactic, and VowelHarmony. Each
// knows how to build its own transducer and its own encoding length;
// a ConstraintSet only ever deals with this interface, never with the
// concrete variant (Design Note 1 replaces the teacher source's
// metaclass-based auto-registration with this plain registry).
type Constraint interface {
	// Kind returns the constraint's variant name, e.g. "Max".
	Kind() string
	// Bundles returns the constraint's feature bundles, in declared
	// order. Faith always returns nil.
	Bundles() []FeatureBundle
	// Transducer builds this constraint's transducer over table's
	// alphabet; memoization is done by Caches.ConstraintTransducer.
	Transducer(table *FeatureTable, cfg *Config) *Transducer
	// EncodingLength is this constraint's contribution to
	// ConstraintSet.EncodingLength, excluding the shared per-kind
	// selector bits (see ConstraintSet.EncodingLength).
	EncodingLength() int
	// String prints the canonical "Name[bundle1 bundle2]" form used
	// as this constraint's cache key.
	String() string
}

// constraintKinds lists every registered variant name, in the fixed
// order used to size the constraint-kind selector in
// ConstraintSet.EncodingLength and to pick a random kind on
// insertion.
var constraintKinds = []string{"Max", "Dep", "Ident", "Faith", "Phonotactic", "VowelHarmony"}

// constraintRegistry maps a kind name to a constructor taking its
// feature bundles. Populated in init() below rather than by having
// each variant auto-register itself at import time.
var constraintRegistry = map[string]func([]FeatureBundle) (Constraint, error){}

func registerConstraint(kind string, ctor func([]FeatureBundle) (Constraint, error)) {
	constraintRegistry[kind] = ctor
}

// NewConstraint builds a Constraint of the given kind from bundles,
// validating bundle-count requirements per variant (Faith: none;
// Max/Dep/Ident: exactly one; Phonotactic/VowelHarmony: one to
// MaxFeatureBundlesInPhonotacticConstraint, checked by the caller).
func NewConstraint(kind string, bundles []FeatureBundle) (Constraint, error) {
	ctor, ok := constraintRegistry[kind]
	if !ok {
		return nil, &ConstraintFormatError{Reason: "unknown constraint kind " + kind}
	}
	return ctor(bundles)
}

// ConstraintKindIndex returns kind's position in the fixed kind
// ordering, or -1 if unknown.
func ConstraintKindIndex(kind string) int {
	for i, k := range constraintKinds {
		if k == kind {
			return i
		}
	}
	return -1
}

// bundlesString prints bundles in declared order separated by
// spaces, the helper behind the markedness variants' String().
func bundlesString(bundles []FeatureBundle) string {
	parts := make([]string, len(bundles))
	for i, b := range bundles {
		parts[i] = b.String()
	}
	return strings.Join(parts, " ")
}

// constraintEncodingLength is the "1 + sum(bundle encoding lengths)"
// term common to every variant; the leading 1 accounts for the
// constraint's own selector bit within the set.
func constraintEncodingLength(bundles []FeatureBundle) int {
	total := 1
	for _, b := range bundles {
		total += b.EncodingLength()
	}
	return total
}

// ceilLog2 returns ceil(log2(x)) for x >= 1, and 0 for x <= 1.
func ceilLog2(x int) int {
	if x <= 1 {
		return 0
	}
	return int(math.Ceil(math.Log2(float64(x))))
}

// sortedBundleLabels returns a copy of bundles sorted by their own
// printed form (stable, since FeatureBundle.String() is itself
// canonical). No variant's String() calls it: bundles print in
// declared order.
func sortedBundleLabels(bundles []FeatureBundle) []FeatureBundle {
	out := append([]FeatureBundle(nil), bundles...)
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
