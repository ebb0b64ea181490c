package otlearn

// Lexicon owns a single HMM over underlying forms plus the bounded
// list of words it derives, recomputed lazily after a successful
// mutation.
type Lexicon struct {
	hmm     *HMM
	words   []string
	dirty   bool
	maxLen  int
}

// NewLexicon wraps h, deriving words up to maxLen symbols.
func NewLexicon(h *HMM, maxLen int) *Lexicon {
	return &Lexicon{hmm: h, dirty: true, maxLen: maxLen}
}

// Clone returns an independent copy.
func (l *Lexicon) Clone() *Lexicon {
	return &Lexicon{hmm: l.hmm.Clone(), words: append([]string(nil), l.words...), dirty: l.dirty, maxLen: l.maxLen}
}

// HMM exposes the underlying model.
func (l *Lexicon) HMM() *HMM { return l.hmm }

// Words returns the bounded-length word list, rebuilding it from the
// derived NFA if a mutation invalidated the cache.
func (l *Lexicon) Words() []string {
	if l.dirty {
		l.words = DeriveNFA(l.hmm).GetStringWordsUpToLength(l.maxLen)
		l.dirty = false
	}
	return l.words
}

// MakeMutation delegates to the HMM and invalidates the derived word
// list on success.
func (l *Lexicon) MakeMutation(r *Random, table *FeatureTable, cfg *Config) bool {
	if l.hmm.MakeMutation(r, table, cfg) {
		l.dirty = true
		return true
	}
	return false
}

// EncodingLength is the HMM's bit cost under the table's alphabet
// size.
func (l *Lexicon) EncodingLength(table *FeatureTable) int {
	return l.hmm.EncodingLength(len(table.Alphabet()))
}
