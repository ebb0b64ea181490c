package otlearn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func voicingTable(t *testing.T) *FeatureTable {
	table, err := NewFeatureTable(
		[]string{"voice"},
		map[string][]string{"voice": {"+", "-"}},
		map[string][]string{"d": {"+"}, "t": {"-"}},
	)
	require.NoError(t, err)
	return table
}

func TestMaxConstraintPenalizesDeletionOfMatchingSegment(t *testing.T) {
	table := voicingTable(t)
	cfg := &Config{AllowCandidatesWithChangedSegments: false}
	bundle, err := NewFeatureBundle(table, map[string]string{"voice": "+"})
	require.NoError(t, err)
	c, err := NewConstraint("Max", []FeatureBundle{bundle})
	require.NoError(t, err)

	tr := c.Transducer(table, cfg)
	s := tr.Initial()
	var deletionCost CostVector
	found := false
	for _, a := range tr.Arcs(s) {
		if a.Input == (Segment{"d"}) && a.Output.IsNull() {
			deletionCost = a.Cost
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a deletion arc for segment 'd'; found none")
	}
	assert.Equal(t, CostVector{1, 1}, deletionCost)
}

func TestIdentConstraintOnlyPenalizesFeatureChangingSubstitution(t *testing.T) {
	table := voicingTable(t)
	cfg := &Config{AllowCandidatesWithChangedSegments: true}
	bundle, err := NewFeatureBundle(table, map[string]string{"voice": "+"})
	require.NoError(t, err)
	c, err := NewConstraint("Ident", []FeatureBundle{bundle})
	require.NoError(t, err)

	tr := c.Transducer(table, cfg)
	s := tr.Initial()
	for _, a := range tr.Arcs(s) {
		if a.Input == (Segment{"d"}) && a.Output == (Segment{"t"}) {
			assert.Equal(t, CostVector{1, 1}, a.Cost, "d->t changes voice, violating Ident[+voice]")
		}
		if a.Input == (Segment{"t"}) && a.Output == (Segment{"d"}) {
			assert.Equal(t, CostVector{1, 0}, a.Cost, "t->d does not change a segment that was +voice")
		}
	}
}

func TestConstraintSetDemoteSwapsRank(t *testing.T) {
	table := voicingTable(t)
	bundle, _ := NewFeatureBundle(table, map[string]string{"voice": "+"})
	max, _ := NewConstraint("Max", []FeatureBundle{bundle})
	dep, _ := NewConstraint("Dep", []FeatureBundle{bundle})
	cs := NewConstraintSet([]Constraint{max, dep})
	cfg := &Config{AllowCandidatesWithChangedSegments: true}
	caches := NewCaches()

	cs.Demote(0, table, cfg, caches)
	assert.Equal(t, "Dep", cs.At(0).Kind())
	assert.Equal(t, "Max", cs.At(1).Kind())
}
