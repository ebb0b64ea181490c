package otlearn

// Caches holds the three process-wide memoization tables described in
// the concurrency model, made explicit and owned by the caller
// (normally the Annealer) instead of living in package-level mutable
// globals (Design Note 2). They are monotonic (insert-only) during a
// step and are reset wholesale by ClearAll at the configured
// interval.
type Caches struct {
	constraintTransducers     map[string]*Transducer
	constraintSetTransducers  map[string]*Transducer
	grammarOutputs            map[string][]string
}

// NewCaches returns empty Caches.
func NewCaches() *Caches {
	return &Caches{
		constraintTransducers:    map[string]*Transducer{},
		constraintSetTransducers: map[string]*Transducer{},
		grammarOutputs:           map[string][]string{},
	}
}

// ConstraintTransducer returns (building and caching if necessary)
// the transducer for a single Constraint, keyed by its canonical
// string.
func (c *Caches) ConstraintTransducer(constraint Constraint, table *FeatureTable, cfg *Config) *Transducer {
	key := constraint.String()
	if t, ok := c.constraintTransducers[key]; ok {
		return t
	}
	t := constraint.Transducer(table, cfg)
	c.constraintTransducers[key] = t
	return t
}

// ConstraintSetTransducer looks up a cached ConstraintSet transducer
// by canonical string.
func (c *Caches) ConstraintSetTransducer(key string) (*Transducer, bool) {
	t, ok := c.constraintSetTransducers[key]
	return t, ok
}

// SetConstraintSetTransducer stores t under key.
func (c *Caches) SetConstraintSetTransducer(key string, t *Transducer) {
	c.constraintSetTransducers[key] = t
}

// GrammarOutputs looks up memoized Grammar.Generate output, keyed by
// ConstraintSet string concatenated with Word string.
func (c *Caches) GrammarOutputs(key string) ([]string, bool) {
	out, ok := c.grammarOutputs[key]
	return out, ok
}

// SetGrammarOutputs stores outputs under key.
func (c *Caches) SetGrammarOutputs(key string, outputs []string) {
	c.grammarOutputs[key] = outputs
}

// ClearAll drops every cached entry. Called by the Annealer at
// CLEAR_MODULES_CACHING_INTERVAL to bound memory; never called
// mid-step (ordering guarantee in the concurrency model).
func (c *Caches) ClearAll() {
	c.constraintTransducers = map[string]*Transducer{}
	c.constraintSetTransducers = map[string]*Transducer{}
	c.grammarOutputs = map[string][]string{}
}
