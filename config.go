package otlearn

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Config holds the UPPERCASE_NAME option map described in the
// external-interfaces section of the design. It is loaded once from
// JSON before the FeatureTable and is read-only thereafter. Only the
// keys listed in required must be present; a missing one is a
// *ConfigurationError at Validate time. Every other absent key reads
// as its zero value, except that Validate treats a zero
// STEPS_LIMITATION, MAX_FEATURE_BUNDLES_IN_PHONOTACTIC_CONSTRAINT or
// MAX_NUMBER_OF_CONSTRAINTS_IN_CONSTRAINT_SET as unbounded.
type Config struct {
	// Mutation weights (non-negative integers); constraint set.
	InsertConstraint                         int `json:"INSERT_CONSTRAINT"`
	RemoveConstraint                         int `json:"REMOVE_CONSTRAINT"`
	DemoteConstraint                         int `json:"DEMOTE_CONSTRAINT"`
	InsertFeatureBundlePhonotacticConstraint int `json:"INSERT_FEATURE_BUNDLE_PHONOTACTIC_CONSTRAINT"`
	RemoveFeatureBundlePhonotacticConstraint int `json:"REMOVE_FEATURE_BUNDLE_PHONOTACTIC_CONSTRAINT"`
	AugmentFeatureBundle                     int `json:"AUGMENT_FEATURE_BUNDLE"`
	DepForInsert                             int `json:"DEP_FOR_INSERT"`
	MaxForInsert                             int `json:"MAX_FOR_INSERT"`
	IdentForInsert                           int `json:"IDENT_FOR_INSERT"`
	PhonotacticForInsert                     int `json:"PHONOTACTIC_FOR_INSERT"`

	// Mutation weights; grammar-level dispatch.
	MutateLexicon      int `json:"MUTATE_LEXICON"`
	MutateConstraintSet int `json:"MUTATE_CONSTRAINT_SET"`

	// Mutation weights; HMM.
	CombineEmissions       int `json:"COMBINE_EMISSIONS"`
	AdvanceEmission        int `json:"ADVANCE_EMISSION"`
	CloneState             int `json:"CLONE_STATE"`
	CloneEmission          int `json:"CLONE_EMISSION"`
	AddState               int `json:"ADD_STATE"`
	RemoveState            int `json:"REMOVE_STATE"`
	AddTransition          int `json:"ADD_TRANSITION"`
	RemoveTransition       int `json:"REMOVE_TRANSITION"`
	AddSegmentToEmission   int `json:"ADD_SEGMENT_TO_EMISSION"`
	RemoveSegmentFromEmission int `json:"REMOVE_SEGMENT_FROM_EMISSION"`
	ChangeSegmentInEmission   int `json:"CHANGE_SEGMENT_IN_EMISSION"`
	AddEmissionToState     int `json:"ADD_EMISSION_TO_STATE"`
	RemoveEmissionFromState int `json:"REMOVE_EMISSION_FROM_STATE"`

	// Bounds.
	MinNumOfInnerStates                      int `json:"MIN_NUM_OF_INNER_STATES"`
	MaxNumOfInnerStates                      int `json:"MAX_NUM_OF_INNER_STATES"`
	MinNumberOfConstraintsInConstraintSet    int `json:"MIN_NUMBER_OF_CONSTRAINTS_IN_CONSTRAINT_SET"`
	MaxNumberOfConstraintsInConstraintSet    int `json:"MAX_NUMBER_OF_CONSTRAINTS_IN_CONSTRAINT_SET"`
	MinFeatureBundlesInPhonotacticConstraint int `json:"MIN_FEATURE_BUNDLES_IN_PHONOTACTIC_CONSTRAINT"`
	MaxFeatureBundlesInPhonotacticConstraint int `json:"MAX_FEATURE_BUNDLES_IN_PHONOTACTIC_CONSTRAINT"`
	MaxFeaturesInBundle                      int `json:"MAX_FEATURES_IN_BUNDLE"`
	InitialNumberOfFeatures                  int `json:"INITIAL_NUMBER_OF_FEATURES"`
	InitialNumberOfBundlesInPhonotacticConstraint int `json:"INITIAL_NUMBER_OF_BUNDLES_IN_PHONOTACTIC_CONSTRAINT"`

	// Annealing.
	InitialTemperature        float64 `json:"INITIAL_TEMPERATURE"`
	CoolingParameter          float64 `json:"COOLING_PARAMETER"`
	Threshold                 float64 `json:"THRESHOLD"`
	StepsLimitation           float64 `json:"STEPS_LIMITATION"` // math.Inf(1) means unbounded
	DebugLoggingInterval      int     `json:"DEBUG_LOGGING_INTERVAL"`
	ClearModulesCachingInterval int   `json:"CLEAR_MODULES_CACHING_INTERVAL"`
	SlackNotificationInterval int     `json:"SLACK_NOTIFICATION_INTERVAL"`

	// MDL.
	DataEncodingLengthMultiplier    float64 `json:"DATA_ENCODING_LENGTH_MULTIPLIER"`
	GrammarEncodingLengthMultiplier float64 `json:"GRAMMAR_ENCODING_LENGTH_MULTIPLIER"`

	// Misc.
	AllowCandidatesWithChangedSegments bool    `json:"ALLOW_CANDIDATES_WITH_CHANGED_SEGMENTS"`
	CorpusDuplicationFactor            float64 `json:"CORPUS_DUPLICATION_FACTOR"`
	RandomSeed                         bool    `json:"RANDOM_SEED"`
	Seed                               int64   `json:"SEED"`

	// File names, relative to the simulation's base directory.
	FeatureTableFile  string `json:"FEATURE_TABLE_FILE"`
	ConstraintSetFile string `json:"CONSTRAINT_SET_FILE"`

	// set records which JSON keys were actually present, so Validate
	// can tell "zero" from "absent".
	set map[string]bool
}

// LoadConfig reads and validates a Config from a JSON file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Key: path, Reason: err.Error()}
	}
	return ParseConfig(data)
}

// ParseConfig reads and validates a Config from JSON bytes.
func ParseConfig(data []byte) (*Config, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigurationError{Key: "<root>", Reason: err.Error()}
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, &ConfigurationError{Key: "<root>", Reason: err.Error()}
	}
	c.set = make(map[string]bool, len(raw))
	for k := range raw {
		c.set[k] = true
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// required lists the option keys that have no meaningful zero value
// and so must be present in the source JSON.
var required = []string{
	"MIN_NUM_OF_INNER_STATES", "MAX_NUM_OF_INNER_STATES",
	"MIN_NUMBER_OF_CONSTRAINTS_IN_CONSTRAINT_SET", "MAX_NUMBER_OF_CONSTRAINTS_IN_CONSTRAINT_SET",
	"INITIAL_TEMPERATURE", "COOLING_PARAMETER", "THRESHOLD",
	"DATA_ENCODING_LENGTH_MULTIPLIER", "GRAMMAR_ENCODING_LENGTH_MULTIPLIER",
	"FEATURE_TABLE_FILE", "CONSTRAINT_SET_FILE",
}

// Validate checks bounds consistency and presence of required keys.
// It is called by ParseConfig; exported so a Config built up
// programmatically can validate too.
func (c *Config) Validate() error {
	for _, k := range required {
		if !c.set[k] {
			return &ConfigurationError{Key: k, Reason: "missing"}
		}
	}
	if c.MinNumOfInnerStates <= 0 || c.MinNumOfInnerStates > c.MaxNumOfInnerStates {
		return &ConfigurationError{Key: "MIN_NUM_OF_INNER_STATES", Reason: "must be positive and <= MAX_NUM_OF_INNER_STATES"}
	}
	if c.MinNumberOfConstraintsInConstraintSet <= 0 || c.MinNumberOfConstraintsInConstraintSet > c.MaxNumberOfConstraintsInConstraintSet {
		return &ConfigurationError{Key: "MIN_NUMBER_OF_CONSTRAINTS_IN_CONSTRAINT_SET", Reason: "must be positive and <= MAX_NUMBER_OF_CONSTRAINTS_IN_CONSTRAINT_SET"}
	}
	if c.CoolingParameter <= 0 || c.CoolingParameter >= 1 {
		return &ConfigurationError{Key: "COOLING_PARAMETER", Reason: "must be in (0, 1)"}
	}
	if c.StepsLimitation == 0 {
		c.StepsLimitation = math.Inf(1)
	}
	if c.MaxFeatureBundlesInPhonotacticConstraint == 0 {
		c.MaxFeatureBundlesInPhonotacticConstraint = math.MaxInt32
	}
	if c.MaxNumberOfConstraintsInConstraintSet == 0 {
		c.MaxNumberOfConstraintsInConstraintSet = math.MaxInt32
	}
	return nil
}

func (c *Config) String() string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Sprintf("<unprintable config: %v>", err)
	}
	return string(data)
}
