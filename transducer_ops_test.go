package otlearn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityTransducer accepts any single symbol of alphabet mapped to
// itself, self-looping, cost [0].
func identityTransducer(alphabet []Segment) *Transducer {
	t := NewTransducer(1, "identity")
	s := t.SetAsSingleState()
	for _, seg := range alphabet {
		t.AddArc(s, seg, seg, CostVector{0}, s)
	}
	return t
}

func TestClearDeadStatesDropsUnreachable(t *testing.T) {
	tr := NewTransducer(1, "t")
	s0 := tr.AddState("s0")
	s1 := tr.AddState("s1")
	dead := tr.AddState("dead")
	_ = dead
	tr.SetInitial(s0)
	tr.AddFinal(s1)
	require.NoError(t, tr.AddArc(s0, Segment{"a"}, Segment{"a"}, CostVector{0}, s1))

	tr.ClearDeadStates()
	assert.Equal(t, 2, tr.NumStates())
}

func TestClearDeadStatesCollapsesWhenInitialIsDead(t *testing.T) {
	tr := NewTransducer(1, "t")
	s0 := tr.AddState("s0")
	tr.SetInitial(s0)
	// No final state reachable from s0: the whole transducer is dead.
	tr.ClearDeadStates()
	assert.Equal(t, 1, tr.NumStates())
	assert.False(t, tr.IsFinal(tr.Initial()))
}

func TestIntersectWildcardUnification(t *testing.T) {
	alphabet := []Segment{{"a"}, {"b"}}
	// left: JOKER input transducer (like a markedness constraint)
	left := NewTransducer(1, "left")
	ls := left.SetAsSingleState()
	for _, seg := range alphabet {
		left.AddArc(ls, JokerSegment, seg, CostVector{0}, ls)
	}
	right := identityTransducer(alphabet)

	product, err := Intersect("product", left, right)
	require.NoError(t, err)
	assert.Greater(t, product.NumStates(), 0)
}
