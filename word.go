package otlearn

import "strings"

// Word is a fixed sequence of underlying segments: the input side of
// every GEN candidate the grammar considers for it.
type Word struct {
	Segments []string
}

// NewWord wraps a segment sequence.
func NewWord(segments []string) Word {
	return Word{Segments: append([]string(nil), segments...)}
}

// SplitSymbols splits a surface/underlying string into the table's
// symbols, taking the longest matching symbol at each position
// (needed because feature-table symbols need not be single
// characters).
func SplitSymbols(table *FeatureTable, s string) []string {
	alphabet := table.Alphabet()
	var out []string
	for len(s) > 0 {
		best := ""
		for _, seg := range alphabet {
			if strings.HasPrefix(s, seg.Symbol) && len(seg.Symbol) > len(best) {
				best = seg.Symbol
			}
		}
		if best == "" {
			out = append(out, s[:1])
			s = s[1:]
			continue
		}
		out = append(out, best)
		s = s[len(best):]
	}
	return out
}

func (w Word) String() string { return strings.Join(w.Segments, "") }

// EncodingLength is the bit cost of naming this exact underlying
// form without reference to any grammar: a uniform code over the
// table's alphabet per segment.
func (w Word) EncodingLength(table *FeatureTable) int {
	bits := ceilLog2(len(table.Alphabet()) + 1)
	return bits * len(w.Segments)
}

// Transducer is the identity-on-input transducer for exactly this
// word: its arcs fix the input side to w.Segments in order and leave
// the output side unconstrained (JOKER), so intersecting it with a
// ConstraintSet transducer restricts GEN's candidate space to
// exactly the candidates that could realize this underlying form.
// Every state also carries a (NULL, JOKER) self-loop so a Dep
// constraint's insertion arcs have something to unify against:
// without it no candidate that epenthesizes a segment could ever
// survive intersection with the word. It contributes no cost
// dimensions of its own.
func (w Word) Transducer(table *FeatureTable) *Transducer {
	t := NewTransducer(0, "Word["+w.String()+"]")
	states := make([]StateID, len(w.Segments)+1)
	for i := range states {
		states[i] = t.AddState("")
	}
	t.SetInitial(states[0])
	t.AddFinal(states[len(states)-1])
	for i, sym := range w.Segments {
		t.AddArc(states[i], Segment{sym}, JokerSegment, CostVector{}, states[i+1])
	}
	for _, s := range states {
		t.AddArc(s, NullSegment, JokerSegment, CostVector{}, s)
	}
	return t
}
