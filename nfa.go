package otlearn

// NFA is the unweighted finite automaton derived from an HMM: each
// inner state's emissions become chains of single-symbol arcs
// between a shared entry and exit substate, and the HMM's own
// transitions become epsilon arcs linking those entry/exit
// substates. It is used to enumerate the lexicon's string language
// up to a bounded length, and ParsingNFA parses observations against
// this same expansion.
type NFA struct {
	numStates int
	epsilon   map[int][]int
	symbol    map[int][]symArc
	start     int
	final     int
}

type symArc struct {
	sym string
	to  int
}

func (n *NFA) newState() int {
	id := n.numStates
	n.numStates++
	return id
}

func (n *NFA) addEpsilon(from, to int) {
	n.epsilon[from] = append(n.epsilon[from], to)
}

func (n *NFA) addSymbol(from int, sym string, to int) {
	n.symbol[from] = append(n.symbol[from], symArc{sym, to})
}

// outDegree returns the number of arcs (epsilon and symbol combined)
// leaving s: the size of the alternative set ParsingNFA charges a
// selection cost against.
func (n *NFA) outDegree(s int) int {
	return len(n.epsilon[s]) + len(n.symbol[s])
}

// DeriveNFA expands h into its NFA form.
func DeriveNFA(h *HMM) *NFA {
	n := &NFA{epsilon: map[int][]int{}, symbol: map[int][]symArc{}}
	n.start = n.newState()
	n.final = n.newState()

	entry := map[int]int{}
	exit := map[int]int{}
	for _, s := range h.InnerStates() {
		entry[s] = n.newState()
		exit[s] = n.newState()
		for _, e := range h.emissions[s] {
			prev := entry[s]
			if len(e) == 0 {
				n.addEpsilon(prev, exit[s])
				continue
			}
			for i, sym := range e {
				var next int
				if i == len(e)-1 {
					next = exit[s]
				} else {
					next = n.newState()
				}
				n.addSymbol(prev, sym, next)
				prev = next
			}
		}
	}

	for from, tos := range h.transitions {
		for _, to := range tos {
			switch {
			case from == StateInitial && to == StateFinal:
				n.addEpsilon(n.start, n.final)
			case from == StateInitial:
				n.addEpsilon(n.start, entry[to])
			case to == StateFinal:
				n.addEpsilon(exit[from], n.final)
			default:
				n.addEpsilon(exit[from], entry[to])
			}
		}
	}
	return n
}

// epsilonClosure returns every state reachable from states using only
// epsilon arcs, states included.
func (n *NFA) epsilonClosure(states map[int]bool) map[int]bool {
	closure := map[int]bool{}
	var stack []int
	for s := range states {
		closure[s] = true
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.epsilon[s] {
			if !closure[t] {
				closure[t] = true
				stack = append(stack, t)
			}
		}
	}
	return closure
}

// GetStringWordsUpToLength enumerates every distinct nonempty string
// of at most length symbols that n accepts, via bounded breadth-first
// search over (state-set, string) frontiers. This replaces a
// general-purpose automata library's bounded-length language
// enumeration with a direct search tailored to exactly the one query
// the learner needs.
func (n *NFA) GetStringWordsUpToLength(length int) []string {
	type frontierItem struct {
		states map[int]bool
		word   []string
	}
	seen := map[string]bool{}
	var out []string

	start := n.epsilonClosure(map[int]bool{n.start: true})
	queue := []frontierItem{{start, nil}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if len(cur.word) > length {
			continue
		}
		if len(cur.word) > 0 && cur.states[n.final] {
			w := joinEmission(cur.word)
			if !seen[w] {
				seen[w] = true
				out = append(out, w)
			}
		}
		if len(cur.word) == length {
			continue
		}
		nextBySym := map[string]map[int]bool{}
		for s := range cur.states {
			for _, a := range n.symbol[s] {
				if nextBySym[a.sym] == nil {
					nextBySym[a.sym] = map[int]bool{}
				}
				nextBySym[a.sym][a.to] = true
			}
		}
		for sym, states := range nextBySym {
			closure := n.epsilonClosure(states)
			nw := append(append([]string(nil), cur.word...), sym)
			queue = append(queue, frontierItem{closure, nw})
		}
	}
	return out
}

func joinEmission(syms []string) string {
	out := ""
	for _, s := range syms {
		out += s
	}
	return out
}
