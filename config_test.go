package otlearn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfigJSON = `{
	"MIN_NUM_OF_INNER_STATES": 1,
	"MAX_NUM_OF_INNER_STATES": 10,
	"MIN_NUMBER_OF_CONSTRAINTS_IN_CONSTRAINT_SET": 1,
	"MAX_NUMBER_OF_CONSTRAINTS_IN_CONSTRAINT_SET": 5,
	"INITIAL_TEMPERATURE": 10,
	"COOLING_PARAMETER": 0.99,
	"THRESHOLD": 0.01,
	"DATA_ENCODING_LENGTH_MULTIPLIER": 1,
	"GRAMMAR_ENCODING_LENGTH_MULTIPLIER": 1,
	"FEATURE_TABLE_FILE": "feature_table.json",
	"CONSTRAINT_SET_FILE": "constraint_set.txt"
}`

func TestParseConfigAcceptsMinimalRequiredKeys(t *testing.T) {
	cfg, err := ParseConfig([]byte(minimalConfigJSON))
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.MinNumOfInnerStates)
	assert.Equal(t, "feature_table.json", cfg.FeatureTableFile)
}

func TestParseConfigRejectsMissingRequiredKey(t *testing.T) {
	_, err := ParseConfig([]byte(`{"MIN_NUM_OF_INNER_STATES": 1}`))
	if err == nil {
		t.Fatalf("expected a ConfigurationError for missing required keys; got nil")
	}
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestParseConfigRejectsInvertedInnerStateBounds(t *testing.T) {
	_, err := ParseConfig([]byte(`{
		"MIN_NUM_OF_INNER_STATES": 10,
		"MAX_NUM_OF_INNER_STATES": 1,
		"MIN_NUMBER_OF_CONSTRAINTS_IN_CONSTRAINT_SET": 1,
		"MAX_NUMBER_OF_CONSTRAINTS_IN_CONSTRAINT_SET": 5,
		"INITIAL_TEMPERATURE": 10,
		"COOLING_PARAMETER": 0.99,
		"THRESHOLD": 0.01,
		"DATA_ENCODING_LENGTH_MULTIPLIER": 1,
		"GRAMMAR_ENCODING_LENGTH_MULTIPLIER": 1,
		"FEATURE_TABLE_FILE": "a",
		"CONSTRAINT_SET_FILE": "b"
	}`))
	if err == nil {
		t.Fatalf("expected MIN_NUM_OF_INNER_STATES > MAX_NUM_OF_INNER_STATES to be rejected")
	}
}

func TestParseConfigDefaultsUnboundedStepsLimitation(t *testing.T) {
	cfg, err := ParseConfig([]byte(minimalConfigJSON))
	require.NoError(t, err)
	assert.True(t, cfg.StepsLimitation > 1e300, "expected STEPS_LIMITATION omitted (zero value) to default to effectively unbounded")
}
