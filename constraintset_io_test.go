package otlearn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConstraintSetPrintedRoundTripsThroughString(t *testing.T) {
	table := voicingTable(t)
	bundle, err := NewFeatureBundle(table, map[string]string{"voice": "+"})
	require.NoError(t, err)
	markedness, err := NewConstraint("Phonotactic", []FeatureBundle{bundle})
	require.NoError(t, err)
	faith, err := NewConstraint("Faith", nil)
	require.NoError(t, err)
	original := NewConstraintSet([]Constraint{markedness, faith})

	parsed, err := ParseConstraintSetPrinted(original.String(), table)
	require.NoError(t, err)
	assert.Equal(t, original.String(), parsed.String())
}

func TestParseConstraintSetJSON(t *testing.T) {
	table := voicingTable(t)
	data := []byte(`[
		{"kind": "Phonotactic", "bundles": [{"voice": "+"}]},
		{"kind": "Faith", "bundles": []}
	]`)
	cs, err := ParseConstraintSetJSON(data, table)
	require.NoError(t, err)
	assert.Equal(t, "Phonotactic", cs.At(0).Kind())
	assert.Equal(t, "Faith", cs.At(1).Kind())
}

func TestParseConstraintSetPrintedRejectsMalformedBundleToken(t *testing.T) {
	table := voicingTable(t)
	_, err := ParseConstraintSetPrinted("Phonotactic[[voice]]", table)
	if err == nil {
		t.Fatalf("expected a feature token missing its +/- sign to be rejected")
	}
}
