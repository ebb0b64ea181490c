package otlearn

import (
	"sort"
	"strconv"
)

// FeatureTable maps segment symbols to feature-value vectors. It is
// created once per run and is immutable thereafter; every Segment,
// FeatureBundle, and Constraint in a run refers back to the same
// FeatureTable to validate feature labels and values (see Design
// Note 2: this replaces a process-wide singleton with an explicit
// value threaded through the constructors that need it).
type FeatureTable struct {
	labels      []string            // feature labels, in declared order
	values      map[string][]string // label -> allowed values, in declared order
	bySegment   map[string][]string // symbol -> feature values, parallel to labels
	segments    []Segment           // every symbol except NULL/JOKER, in declared order
	labelIndex  map[string]int
}

// NewFeatureTable validates and builds a FeatureTable from parsed
// feature and feature_table data. labels must be duplicate-free.
// Every symbol's value vector must have exactly len(labels) entries,
// each drawn from that label's allowed-value set.
func NewFeatureTable(labels []string, allowed map[string][]string, bySymbol map[string][]string) (*FeatureTable, error) {
	labelIndex := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, dup := labelIndex[l]; dup {
			return nil, &FeatureTableError{Reason: "duplicate feature label " + l}
		}
		labelIndex[l] = i
	}
	segments := make([]Segment, 0, len(bySymbol))
	for sym, vals := range bySymbol {
		if len(vals) != len(labels) {
			return nil, &FeatureTableError{Reason: "symbol " + sym + " has " +
				strconv.Itoa(len(vals)) + " values, expected " + strconv.Itoa(len(labels))}
		}
		for i, v := range vals {
			label := labels[i]
			if !contains(allowed[label], v) {
				return nil, &FeatureTableError{Reason: "symbol " + sym + " has illegal value " + v + " for feature " + label}
			}
		}
		segments = append(segments, Segment{sym})
	}
	sort.Slice(segments, func(i, j int) bool { return segments[i].Symbol < segments[j].Symbol })
	return &FeatureTable{
		labels:     append([]string(nil), labels...),
		values:     allowed,
		bySegment:  bySymbol,
		segments:   segments,
		labelIndex: labelIndex,
	}, nil
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// NumFeatures returns the number of declared feature labels.
func (t *FeatureTable) NumFeatures() int { return len(t.labels) }

// Labels returns the declared feature labels in order.
func (t *FeatureTable) Labels() []string { return t.labels }

// Values returns the feature vector of sym, parallel to Labels(), or
// nil if sym is not in the table.
func (t *FeatureTable) Values(sym string) []string { return t.bySegment[sym] }

// AllowedValues returns the declared value set for a feature label.
func (t *FeatureTable) AllowedValues(label string) []string { return t.values[label] }

// Alphabet returns every real segment in the table (excluding NULL
// and JOKER), in a stable, sorted order.
func (t *FeatureTable) Alphabet() []Segment { return t.segments }

// IsValidSymbol reports whether sym is a known segment symbol.
func (t *FeatureTable) IsValidSymbol(sym string) bool {
	_, ok := t.bySegment[sym]
	return ok
}

// IsValidFeature reports whether label is a declared feature.
func (t *FeatureTable) IsValidFeature(label string) bool {
	_, ok := t.labelIndex[label]
	return ok
}

// RandomSegment returns a uniformly random real segment.
func (t *FeatureTable) RandomSegment(r *Random) Segment {
	return t.segments[r.Intn(len(t.segments))]
}

// RandomValue returns a uniformly random allowed value for label.
func (t *FeatureTable) RandomValue(r *Random, label string) string {
	vs := t.values[label]
	return vs[r.Intn(len(vs))]
}

// RandomLabel returns a uniformly random declared feature label.
func (t *FeatureTable) RandomLabel(r *Random) string {
	return t.labels[r.Intn(len(t.labels))]
}

// Satisfies reports whether sym has the given (label, value) for
// every pair in bundle, i.e. whether the segment satisfies the
// bundle as a FeatureBundle query.
func (t *FeatureTable) Satisfies(sym string, bundle map[string]string) bool {
	vals := t.bySegment[sym]
	if vals == nil {
		return false
	}
	for label, want := range bundle {
		idx, ok := t.labelIndex[label]
		if !ok || vals[idx] != want {
			return false
		}
	}
	return true
}
