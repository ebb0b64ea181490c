package otlearn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRandom(seed int64) *Random {
	return &Random{rand.New(rand.NewSource(seed)), seed}
}

func TestCreateFromListAcceptsExactlyThoseWords(t *testing.T) {
	h := CreateFromList([]Emission{{"d", "a", "g"}, {"k", "a", "t"}})
	nfa := DeriveNFA(h)
	got := nfa.GetStringWordsUpToLength(3)
	assert.ElementsMatch(t, []string{"dag", "kat"}, got)
}

func TestCreateAlphabetAcceptsEverySymbolSequenceUpToLength(t *testing.T) {
	h := CreateAlphabet([]Segment{{"a"}, {"b"}})
	nfa := DeriveNFA(h)
	got := nfa.GetStringWordsUpToLength(2)
	assert.ElementsMatch(t, []string{"a", "b", "aa", "ab", "ba", "bb"}, got)
}

func TestNextStateIDFillsLowestGap(t *testing.T) {
	h := newEmptyHMM()
	s1 := h.addInnerState()
	s2 := h.addInnerState()
	assert.Equal(t, 1, s1)
	assert.Equal(t, 2, s2)
	delete(h.inner, s1)
	s3 := h.addInnerState()
	assert.Equal(t, 1, s3, "expected the freed id 1 to be reused before allocating 3")
}

func TestRemoveStateBridgesPredecessorsToSuccessors(t *testing.T) {
	h := newEmptyHMM()
	a := h.addInnerState()
	b := h.addInnerState()
	c := h.addInnerState()
	h.emissions[a] = []Emission{{"x"}}
	h.emissions[b] = []Emission{{"y"}}
	h.emissions[c] = []Emission{{"z"}}
	h.addTransition(StateInitial, a)
	h.addTransition(a, b)
	h.addTransition(b, c)
	h.addTransition(c, StateFinal)

	cfg := &Config{MinNumOfInnerStates: 1}
	if !h.removeState(testRandom(1), cfg) {
		t.Fatalf("expected removeState to succeed with 3 inner states and a minimum of 1")
	}
	assert.Len(t, h.InnerStates(), 2)
	// Whichever state was removed, the initial state must still reach
	// the final state through the two survivors.
	assert.NotEmpty(t, h.transitions[StateInitial])
}
