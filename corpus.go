package otlearn

// Corpus is the flat (repeats included) list of observed surface
// forms the learner fits a grammar to, paired with the distinct-form
// counts DataLength needs. NewCorpus reproduces the duplication
// behavior of the source corpus builder this was distilled from
// (source/corpus.py): the word list is repeated
// int(CORPUS_DUPLICATION_FACTOR) whole times, then a further prefix
// of length int(n * fractional part) is appended to realize a
// non-integral duplication factor.
type Corpus struct {
	Words  []string
	Forms  []string
	Counts []int
}

// NewCorpus applies factor to words and tallies the result into
// distinct forms with their occurrence counts.
func NewCorpus(words []string, factor float64) *Corpus {
	n := len(words)
	intPart := int(factor)
	frac := factor - float64(intPart)

	var dup []string
	for i := 0; i < intPart; i++ {
		dup = append(dup, words...)
	}
	dup = append(dup, words[:int(float64(n)*frac)]...)

	tally := map[string]int{}
	var order []string
	for _, w := range dup {
		if _, seen := tally[w]; !seen {
			order = append(order, w)
		}
		tally[w]++
	}
	counts := make([]int, len(order))
	for i, w := range order {
		counts[i] = tally[w]
	}
	return &Corpus{Words: dup, Forms: order, Counts: counts}
}

// Total returns the number of word occurrences after duplication.
func (c *Corpus) Total() int { return len(c.Words) }
