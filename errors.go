package otlearn

import "fmt"

// ConfigurationError reports a missing key, out-of-range value, or
// inconsistent bound in a Config. Configuration errors abort startup
// before the annealer begins.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Key, e.Reason)
}

// FeatureTableError reports a duplicate feature label, a symbol arity
// mismatch, or an illegal feature value encountered while loading a
// FeatureTable.
type FeatureTableError struct {
	Reason string
}

func (e *FeatureTableError) Error() string {
	return fmt.Sprintf("feature table: %s", e.Reason)
}

// ConstraintFormatError reports an unknown constraint name, a
// malformed feature bundle, or too many bundles, encountered while
// parsing a constraint or constraint set.
type ConstraintFormatError struct {
	Reason string
}

func (e *ConstraintFormatError) Error() string {
	return fmt.Sprintf("constraint format: %s", e.Reason)
}

// TransducerError reports a cost-vector length mismatch on an arc, an
// arc referencing an unknown state, or an empty intersection where a
// non-empty one is required. It indicates a programmer bug: callers
// should abort immediately with full context rather than recover.
type TransducerError struct {
	Reason string
}

func (e *TransducerError) Error() string {
	return fmt.Sprintf("transducer: %s", e.Reason)
}
