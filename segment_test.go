package otlearn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentUnify(t *testing.T) {
	a := Segment{"a"}
	b := Segment{"b"}

	if got, ok := a.Unify(a); !ok || got != a {
		t.Errorf("expected a.Unify(a) = (a, true); got (%v, %v)", got, ok)
	}
	if _, ok := a.Unify(b); ok {
		t.Errorf("expected a.Unify(b) to fail; segments differ")
	}
	if got, ok := JokerSegment.Unify(a); !ok || got != a {
		t.Errorf("expected JOKER.Unify(a) = (a, true); got (%v, %v)", got, ok)
	}
	if got, ok := a.Unify(JokerSegment); !ok || got != a {
		t.Errorf("expected a.Unify(JOKER) = (a, true); got (%v, %v)", got, ok)
	}
	got, ok := JokerSegment.Unify(JokerSegment)
	assert.True(t, ok)
	assert.Equal(t, JokerSegment, got)
}

func TestSegmentNullDoesNotUnifyWithRealSegment(t *testing.T) {
	// NULL is a concrete (if special) symbol, not a wildcard: it
	// unifies only with itself or JOKER, never stands in for a real
	// segment.
	_, ok := NullSegment.Unify(Segment{"a"})
	assert.False(t, ok)
	got, ok := NullSegment.Unify(JokerSegment)
	assert.True(t, ok)
	assert.Equal(t, NullSegment, got)
}
