package otlearn

// This file implements the HMM's thirteen local mutation operators.
// Each reports whether it actually changed the HMM; all of them must
// leave the HMM well-formed: every inner state reachable from the
// initial state, the final state reachable from every inner state,
// no duplicate transitions, and no state with zero emissions.

// MakeMutation weighted-dispatches across the thirteen operators and
// reports whether a mutation happened. alphabet is needed by the
// segment-level operators.
func (h *HMM) MakeMutation(r *Random, table *FeatureTable, cfg *Config) bool {
	type op struct {
		weight int
		fn     func() bool
	}
	ops := []op{
		{cfg.CombineEmissions, func() bool { return h.combineEmissions(r, cfg) }},
		{cfg.AdvanceEmission, func() bool { return h.advanceEmission(r) }},
		{cfg.CloneState, func() bool { return h.cloneState(r, cfg) }},
		{cfg.CloneEmission, func() bool { return h.cloneEmission(r) }},
		{cfg.AddSegmentToEmission, func() bool { return h.addSegmentToEmission(r, table) }},
		{cfg.RemoveSegmentFromEmission, func() bool { return h.removeSegmentFromEmission(r) }},
		{cfg.ChangeSegmentInEmission, func() bool { return h.changeSegmentInEmission(r, table) }},
		{cfg.AddState, func() bool { return h.addState(r, table, cfg) }},
		{cfg.RemoveState, func() bool { return h.removeState(r, cfg) }},
		{cfg.AddTransition, func() bool { return h.addTransition_(r) }},
		{cfg.RemoveTransition, func() bool { return h.removeTransition(r) }},
		{cfg.AddEmissionToState, func() bool { return h.addEmissionToState(r, table) }},
		{cfg.RemoveEmissionFromState, func() bool { return h.removeEmissionFromState(r) }},
	}
	weights := make([]int, len(ops))
	for i, o := range ops {
		weights[i] = o.weight
	}
	idx := WeightedChoice(r, weights)
	if idx < 0 {
		return false
	}
	return ops[idx].fn()
}

func (h *HMM) randomInnerState(r *Random) (int, bool) {
	states := h.InnerStates()
	if len(states) == 0 {
		return 0, false
	}
	return states[r.Intn(len(states))], true
}

// advanceEmission moves the last segment off the end of one state's
// emission and prepends it to the start of an emission belonging to a
// direct successor state, sliding the segmentation boundary between
// the two states by one symbol. Only the two chosen emissions change,
// so the HMM's language generally changes too: other emissions of
// either state and other paths into the successor are not adjusted.
func (h *HMM) advanceEmission(r *Random) bool {
	s, ok := h.randomInnerState(r)
	if !ok {
		return false
	}
	succ := h.transitions[s]
	var succStates []int
	for _, t := range succ {
		if t != s && t != StateFinal {
			succStates = append(succStates, t)
		}
	}
	if len(succStates) == 0 {
		return false
	}
	var donors []int
	for i, e := range h.emissions[s] {
		if len(e) > 0 {
			donors = append(donors, i)
		}
	}
	if len(donors) == 0 {
		return false
	}
	ei := donors[r.Intn(len(donors))]
	to := succStates[r.Intn(len(succStates))]
	if len(h.emissions[to]) == 0 {
		return false
	}
	ri := r.Intn(len(h.emissions[to]))

	e := h.emissions[s][ei]
	seg := e[len(e)-1]
	h.emissions[s][ei] = e[:len(e)-1]
	h.emissions[to][ri] = append(Emission{seg}, h.emissions[to][ri]...)
	return true
}

// maxCombineCombos bounds the emission cross product combineEmissions
// builds, so merging two richly ambiguous states can't blow up the
// resulting state's alternative count.
const maxCombineCombos = 32

// combineEmissions merges a direct successor inner state t into the
// inner state s that is t's sole predecessor: s's emissions become
// the cross product of the two states' emission lists (concatenated
// in visit order), every transition t had becomes a transition of s,
// and t is deleted. This is the
// structural inverse of addState's edge-splitting.
func (h *HMM) combineEmissions(r *Random, cfg *Config) bool {
	states := h.InnerStates()
	var candidates [][2]int
	for _, s := range states {
		for _, t := range h.transitions[s] {
			if t == s || t == StateFinal || !h.inner[t] {
				continue
			}
			if h.solePredecessor(t) == s {
				candidates = append(candidates, [2]int{s, t})
			}
		}
	}
	if len(candidates) == 0 {
		return false
	}
	pair := candidates[r.Intn(len(candidates))]
	s, t := pair[0], pair[1]

	var merged []Emission
outer:
	for _, es := range h.emissions[s] {
		for _, et := range h.emissions[t] {
			if len(merged) >= maxCombineCombos {
				break outer
			}
			combo := append(append(Emission(nil), es...), et...)
			merged = append(merged, combo)
		}
	}
	if len(merged) == 0 {
		return false
	}
	h.emissions[s] = merged

	h.removeTransitionExact(s, t)
	for _, to := range h.transitions[t] {
		if to == t {
			h.addTransition(s, s)
			continue
		}
		h.addTransition(s, to)
	}
	delete(h.transitions, t)
	delete(h.emissions, t)
	delete(h.inner, t)
	h.removeTransitionsTo(t)
	return true
}

// solePredecessor returns the single state with a transition into s,
// or -3 (never a valid state id) if s has zero or multiple
// predecessors.
func (h *HMM) solePredecessor(s int) int {
	found, ok := 0, false
	for from, ts := range h.transitions {
		for _, t := range ts {
			if t == s {
				if ok && found != from {
					return -3
				}
				found, ok = from, true
			}
		}
	}
	if !ok {
		return -3
	}
	return found
}

// cloneState duplicates an inner state (its emissions and outgoing
// transitions) as a fresh sibling reachable from the same
// predecessors, bounded by MaxNumOfInnerStates.
func (h *HMM) cloneState(r *Random, cfg *Config) bool {
	if cfg.MaxNumOfInnerStates > 0 && len(h.inner) >= cfg.MaxNumOfInnerStates {
		return false
	}
	s, ok := h.randomInnerState(r)
	if !ok {
		return false
	}
	clone := h.addInnerState()
	for _, e := range h.emissions[s] {
		h.emissions[clone] = append(h.emissions[clone], append(Emission(nil), e...))
	}
	for _, t := range h.transitions[s] {
		h.addTransition(clone, t)
	}
	for from, ts := range h.transitions {
		for _, t := range ts {
			if t == s {
				h.addTransition(from, clone)
			}
		}
	}
	return true
}

// cloneEmission duplicates one emission of a state as a new
// alternative of the same state.
func (h *HMM) cloneEmission(r *Random) bool {
	s, ok := h.randomInnerState(r)
	if !ok || len(h.emissions[s]) == 0 {
		return false
	}
	i := r.Intn(len(h.emissions[s]))
	h.emissions[s] = append(h.emissions[s], append(Emission(nil), h.emissions[s][i]...))
	return true
}

func (h *HMM) addSegmentToEmission(r *Random, table *FeatureTable) bool {
	s, ok := h.randomInnerState(r)
	if !ok || len(h.emissions[s]) == 0 {
		return false
	}
	i := r.Intn(len(h.emissions[s]))
	e := h.emissions[s][i]
	at := r.Intn(len(e) + 1)
	seg := table.RandomSegment(r)
	ne := append(Emission{}, e[:at]...)
	ne = append(ne, seg.Symbol)
	ne = append(ne, e[at:]...)
	h.emissions[s][i] = ne
	return true
}

func (h *HMM) removeSegmentFromEmission(r *Random) bool {
	s, ok := h.randomInnerState(r)
	if !ok || len(h.emissions[s]) == 0 {
		return false
	}
	i := r.Intn(len(h.emissions[s]))
	e := h.emissions[s][i]
	if len(e) == 0 {
		return false
	}
	at := r.Intn(len(e))
	h.emissions[s][i] = append(append(Emission(nil), e[:at]...), e[at+1:]...)
	return true
}

func (h *HMM) changeSegmentInEmission(r *Random, table *FeatureTable) bool {
	s, ok := h.randomInnerState(r)
	if !ok || len(h.emissions[s]) == 0 {
		return false
	}
	i := r.Intn(len(h.emissions[s]))
	e := h.emissions[s][i]
	if len(e) == 0 {
		return false
	}
	at := r.Intn(len(e))
	e[at] = table.RandomSegment(r).Symbol
	return true
}

// addState inserts a new inner state on a freshly split edge: picks
// an existing transition (from,to), inserts a new empty-emission
// state between them. An empty emission is invalid on its own so a
// single random-segment emission is attached immediately.
func (h *HMM) addState(r *Random, table *FeatureTable, cfg *Config) bool {
	if cfg.MaxNumOfInnerStates > 0 && len(h.inner) >= cfg.MaxNumOfInnerStates {
		return false
	}
	var edges [][2]int
	for from, ts := range h.transitions {
		for _, t := range ts {
			edges = append(edges, [2]int{from, t})
		}
	}
	if len(edges) == 0 {
		return false
	}
	e := edges[r.Intn(len(edges))]
	ns := h.addInnerState()
	h.emissions[ns] = []Emission{{table.RandomSegment(r).Symbol}}
	h.removeTransitionExact(e[0], e[1])
	h.addTransition(e[0], ns)
	h.addTransition(ns, e[1])
	return true
}

func (h *HMM) removeTransitionExact(from, to int) {
	var kept []int
	for _, t := range h.transitions[from] {
		if t != to {
			kept = append(kept, t)
		}
	}
	h.transitions[from] = kept
}

// removeState deletes an inner state, bridging every predecessor
// directly to every successor so reachability is preserved, subject
// to MinNumOfInnerStates.
func (h *HMM) removeState(r *Random, cfg *Config) bool {
	if len(h.inner) <= cfg.MinNumOfInnerStates {
		return false
	}
	s, ok := h.randomInnerState(r)
	if !ok {
		return false
	}
	var preds []int
	for from, ts := range h.transitions {
		for _, t := range ts {
			if t == s {
				preds = append(preds, from)
			}
		}
	}
	succs := h.transitions[s]
	for _, p := range preds {
		for _, sc := range succs {
			if sc != s {
				h.addTransition(p, sc)
			}
		}
	}
	delete(h.transitions, s)
	delete(h.emissions, s)
	delete(h.inner, s)
	h.removeTransitionsTo(s)
	return true
}

func (h *HMM) addTransition_(r *Random) bool {
	states := h.InnerStates()
	if len(states) == 0 {
		return false
	}
	from := states[r.Intn(len(states))]
	var to int
	if r.Intn(2) == 0 || len(states) == 0 {
		to = StateFinal
	} else {
		to = states[r.Intn(len(states))]
	}
	return h.addTransition(from, to)
}

// removeTransition deletes a transition, provided the source keeps at
// least one other way forward so the HMM stays total.
func (h *HMM) removeTransition(r *Random) bool {
	var edges [][2]int
	for from, ts := range h.transitions {
		if from == StateInitial {
			continue // the initial state must always have a way in
		}
		if len(ts) <= 1 {
			continue
		}
		for _, t := range ts {
			edges = append(edges, [2]int{from, t})
		}
	}
	if len(edges) == 0 {
		return false
	}
	e := edges[r.Intn(len(edges))]
	h.removeTransitionExact(e[0], e[1])
	return true
}

func (h *HMM) addEmissionToState(r *Random, table *FeatureTable) bool {
	s, ok := h.randomInnerState(r)
	if !ok {
		return false
	}
	ne := Emission{table.RandomSegment(r).Symbol}
	for _, e := range h.emissions[s] {
		if e.String() == ne.String() {
			return false
		}
	}
	h.emissions[s] = append(h.emissions[s], ne)
	return true
}

// removeEmissionFromState deletes one alternative, provided the state
// keeps at least one emission left (a state with zero emissions can
// never produce output and is invalid).
func (h *HMM) removeEmissionFromState(r *Random) bool {
	s, ok := h.randomInnerState(r)
	if !ok || len(h.emissions[s]) <= 1 {
		return false
	}
	i := r.Intn(len(h.emissions[s]))
	h.emissions[s] = append(h.emissions[s][:i], h.emissions[s][i+1:]...)
	return true
}
