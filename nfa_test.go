package otlearn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDeriveNFASkipsEmptyEmission checks that a zero-length emission
// alternative (which DeriveNFA turns into an epsilon arc) adds no
// word to the enumerated language, since the only string it yields
// is the empty one.
func TestDeriveNFASkipsEmptyEmission(t *testing.T) {
	h := CreateFromList([]Emission{{}, {"a"}})
	nfa := DeriveNFA(h)
	got := nfa.GetStringWordsUpToLength(1)
	assert.ElementsMatch(t, []string{"a"}, got, "the empty emission contributes no string of its own; GetStringWordsUpToLength never returns \"\"")
}

func TestDeriveNFAChainsMultiSymbolEmission(t *testing.T) {
	h := CreateFromList([]Emission{{"d", "a", "g"}})
	nfa := DeriveNFA(h)
	assert.ElementsMatch(t, []string{"dag"}, nfa.GetStringWordsUpToLength(3))
	assert.Empty(t, nfa.GetStringWordsUpToLength(2), "a length bound shorter than the only emission should yield no words")
}
