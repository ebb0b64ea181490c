package otlearn

// StateID is a typed index into a Transducer's state vector. Using a
// plain index (rather than a printed label like "q3|1") keeps state
// identity out of string parsing on every hot path; a separate label
// is kept only for debugging/dot-dumps (see Design Note 4).
type StateID int

// Arc is one transition of a Transducer: reading Input while writing
// Output, paying Cost, and moving to To.
type Arc struct {
	Input, Output Segment
	Cost          CostVector
	To            StateID
}

// Transducer is a weighted finite-state transducer over the shared
// alphabet of real segments plus NULL and JOKER. All arcs in a
// Transducer share the same cost-vector length, carried once on the
// Transducer itself rather than duplicated per arc (Design Note 6).
type Transducer struct {
	Name    string
	CostLen int

	labels  []string // debug-only state labels, parallel to arcs/out-degree
	arcs    [][]Arc  // outgoing arcs, indexed by StateID
	initial StateID
	final   map[StateID]bool
}

// NewTransducer creates an empty Transducer with the given cost
// vector length and debug name. The caller must add at least the
// initial state before using it.
func NewTransducer(costLen int, name string) *Transducer {
	return &Transducer{
		Name:    name,
		CostLen: costLen,
		final:   make(map[StateID]bool),
	}
}

// AddState appends a new state labeled label and returns its id.
func (t *Transducer) AddState(label string) StateID {
	id := StateID(len(t.labels))
	t.labels = append(t.labels, label)
	t.arcs = append(t.arcs, nil)
	return id
}

// SetInitial marks s as the unique initial state. s must already
// exist.
func (t *Transducer) SetInitial(s StateID) { t.initial = s }

// Initial returns the initial state.
func (t *Transducer) Initial() StateID { return t.initial }

// AddFinal marks s as a final state.
func (t *Transducer) AddFinal(s StateID) { t.final[s] = true }

// IsFinal reports whether s is final.
func (t *Transducer) IsFinal(s StateID) bool { return t.final[s] }

// NumStates returns the number of states currently in the Transducer.
func (t *Transducer) NumStates() int { return len(t.labels) }

// AddArc adds an arc from `from`, validating the cost vector length
// and that both endpoints exist. A TransducerError indicates a
// programmer bug in the constraint/grammar code calling this, not
// user-facing input.
func (t *Transducer) AddArc(from StateID, in, out Segment, cost CostVector, to StateID) error {
	if int(from) < 0 || int(from) >= len(t.labels) || int(to) < 0 || int(to) >= len(t.labels) {
		return &TransducerError{Reason: "AddArc: state out of range"}
	}
	if len(cost) != t.CostLen {
		return &TransducerError{Reason: "AddArc: cost vector length mismatch"}
	}
	t.arcs[from] = append(t.arcs[from], Arc{in, out, cost.Clone(), to})
	return nil
}

// SetAsSingleState resets t to a single state that is both initial
// and final — the shape every faithfulness constraint's transducer
// starts from before its per-segment arcs are added.
func (t *Transducer) SetAsSingleState() StateID {
	t.labels = nil
	t.arcs = nil
	t.final = make(map[StateID]bool)
	s := t.AddState("q0")
	t.SetInitial(s)
	t.AddFinal(s)
	return s
}

// Arcs returns the outgoing arcs of state s. The caller must not
// modify the returned slice.
func (t *Transducer) Arcs(s StateID) []Arc { return t.arcs[s] }

// Label returns the debug label of state s.
func (t *Transducer) Label(s StateID) string { return t.labels[s] }

// Clone returns a deep, independent copy of t.
func (t *Transducer) Clone() *Transducer {
	out := &Transducer{
		Name:    t.Name,
		CostLen: t.CostLen,
		initial: t.initial,
		labels:  append([]string(nil), t.labels...),
		final:   make(map[StateID]bool, len(t.final)),
	}
	for s := range t.final {
		out.final[s] = true
	}
	out.arcs = make([][]Arc, len(t.arcs))
	for i, as := range t.arcs {
		cp := make([]Arc, len(as))
		for j, a := range as {
			cp[j] = Arc{a.Input, a.Output, a.Cost.Clone(), a.To}
		}
		out.arcs[i] = cp
	}
	return out
}
