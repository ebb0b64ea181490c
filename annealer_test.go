package otlearn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnnealerRunStopsAtStepsLimitationAndNeverWorsensBest is a short
// smoke test: a handful of steps over a trivial grammar/corpus pair,
// checking only that Run terminates and that its returned best
// hypothesis is never worse than the starting one.
func TestAnnealerRunStopsAtStepsLimitationAndNeverWorsensBest(t *testing.T) {
	table := devoicingTable(t)
	cfg := &Config{
		AllowCandidatesWithChangedSegments: true,
		InitialTemperature:                 1,
		CoolingParameter:                   0.9,
		Threshold:                          0.001,
		StepsLimitation:                    5,
		MinNumOfInnerStates:                1,
		MaxNumOfInnerStates:                4,
		DataEncodingLengthMultiplier:       1,
		GrammarEncodingLengthMultiplier:    1,
		MutateLexicon:                      1,
	}

	voicedBundle, err := NewFeatureBundle(table, map[string]string{"voice": "+"})
	require.NoError(t, err)
	markedness, err := NewConstraint("Phonotactic", []FeatureBundle{voicedBundle})
	require.NoError(t, err)
	faith, err := NewConstraint("Faith", nil)
	require.NoError(t, err)
	cs := NewConstraintSet([]Constraint{markedness, faith})

	hmm := CreateFromList([]Emission{{"d"}})
	lex := NewLexicon(hmm, 1)
	g := NewGrammar(cs, lex)
	corpus := NewCorpus([]string{"t"}, 1)
	hyp := NewHypothesis(g, corpus, table, cfg)

	r := testRandom(7)
	annealer := NewAnnealer(cfg, table, r, nil)
	startEnergy := hyp.Energy(annealer.Caches)

	best := annealer.Run(hyp)

	assert.True(t, math.IsInf(best.Energy(annealer.Caches), 0) || best.Energy(annealer.Caches) <= startEnergy,
		"annealing must never return a hypothesis worse than where it started")
}

func TestAnnealerAcceptAlwaysTakesImprovingMoves(t *testing.T) {
	a := &Annealer{Random: testRandom(1)}
	assert.True(t, a.accept(10, 5, 1))
}
