package otlearn

import "sort"

// FeatureBundle is a partial feature assignment: a mapping from a
// subset of feature labels to required values. A Segment satisfies a
// bundle iff every (label, value) pair in the bundle appears in the
// segment's feature vector.
type FeatureBundle struct {
	values map[string]string
}

// NewFeatureBundle builds a FeatureBundle from a label->value map,
// validating every label and value against table.
func NewFeatureBundle(table *FeatureTable, values map[string]string) (FeatureBundle, error) {
	for label, val := range values {
		if !table.IsValidFeature(label) {
			return FeatureBundle{}, &ConstraintFormatError{Reason: "unknown feature label " + label}
		}
		if !contains(table.AllowedValues(label), val) {
			return FeatureBundle{}, &ConstraintFormatError{Reason: "illegal value " + val + " for feature " + label}
		}
	}
	cp := make(map[string]string, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return FeatureBundle{cp}, nil
}

// GenerateRandomFeatureBundle builds a bundle of
// cfg.InitialNumberOfFeatures distinct random (label, value) pairs.
func GenerateRandomFeatureBundle(r *Random, table *FeatureTable, cfg *Config) FeatureBundle {
	n := cfg.InitialNumberOfFeatures
	if n > table.NumFeatures() {
		n = table.NumFeatures()
	}
	labels := append([]string(nil), table.Labels()...)
	r.Shuffle(len(labels), func(i, j int) { labels[i], labels[j] = labels[j], labels[i] })
	values := make(map[string]string, n)
	for _, label := range labels[:n] {
		values[label] = table.RandomValue(r, label)
	}
	return FeatureBundle{values}
}

// Satisfies reports whether sym satisfies every (label, value) pair
// in the bundle.
func (b FeatureBundle) Satisfies(table *FeatureTable, sym string) bool {
	return table.Satisfies(sym, b.values)
}

// Len returns the number of (label, value) pairs in the bundle.
func (b FeatureBundle) Len() int { return len(b.values) }

// Labels returns the bundle's feature labels sorted lexicographically
// — the order used both by String() and by EncodingLength.
func (b FeatureBundle) Labels() []string {
	labels := make([]string, 0, len(b.values))
	for l := range b.values {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Value returns the required value for label, and whether label is
// part of the bundle at all.
func (b FeatureBundle) Value(label string) (string, bool) {
	v, ok := b.values[label]
	return v, ok
}

// EncodingLength is 2 bits per (label, value) pair in the bundle: one
// to select the label, one to select its value out of a 2-valued
// feature alphabet (the common case); see ConstraintSet's exact
// per-kind multiplier for the full picture.
func (b FeatureBundle) EncodingLength() int { return 2 * len(b.values) }

// AugmentFeatureBundle adds one more random (label, value) pair not
// already present, bounded by cfg.MaxFeaturesInBundle. It returns
// false (no mutation) when the bundle is already at the bound or
// every label is already used.
//
// Whether AUGMENT_FEATURE_BUNDLE is ever weighted non-zero in a
// released simulation is untested upstream; this mutation is
// implemented to spec but should be treated as under-exercised.
func (b FeatureBundle) AugmentFeatureBundle(r *Random, table *FeatureTable, cfg *Config) (FeatureBundle, bool) {
	if cfg.MaxFeaturesInBundle > 0 && b.Len() >= cfg.MaxFeaturesInBundle {
		return b, false
	}
	var candidates []string
	for _, l := range table.Labels() {
		if _, used := b.values[l]; !used {
			candidates = append(candidates, l)
		}
	}
	if len(candidates) == 0 {
		return b, false
	}
	label := candidates[r.Intn(len(candidates))]
	cp := make(map[string]string, len(b.values)+1)
	for k, v := range b.values {
		cp[k] = v
	}
	cp[label] = table.RandomValue(r, label)
	return FeatureBundle{cp}, true
}

// String prints the bundle in canonical form: "[+f1 -f2]" with labels
// sorted, matching the cache-key convention documented in doc.go.
func (b FeatureBundle) String() string {
	s := "["
	for i, label := range b.Labels() {
		if i > 0 {
			s += " "
		}
		v, _ := b.Value(label)
		s += v + label
	}
	return s + "]"
}
