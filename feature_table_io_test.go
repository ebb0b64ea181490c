package otlearn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeatureTableJSON(t *testing.T) {
	data := []byte(`{
		"feature": [{"label": "voice", "values": ["+", "-"]}],
		"feature_table": {"d": ["+"], "t": ["-"]}
	}`)
	table, err := ParseFeatureTableJSON(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"voice"}, table.Labels())
	assert.Equal(t, []string{"+"}, table.Values("d"))
	assert.Len(t, table.Alphabet(), 2)
}

func TestParseFeatureTableJSONRejectsBadValue(t *testing.T) {
	data := []byte(`{
		"feature": [{"label": "voice", "values": ["+", "-"]}],
		"feature_table": {"d": ["0"]}
	}`)
	_, err := ParseFeatureTableJSON(data)
	if err == nil {
		t.Fatalf("expected an illegal feature value to be rejected; got nil error")
	}
}

func TestParseFeatureTableCSV(t *testing.T) {
	data := []byte(",voice,nasal\nd,+,-\nt,-,-\nn,+,+\n")
	table, err := ParseFeatureTableCSV(data)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"voice", "nasal"}, table.Labels())
	assert.Equal(t, []string{"+", "+"}, table.Values("n"))
	assert.Len(t, table.Alphabet(), 3)
}

func TestParseFeatureTableCSVRejectsShortRow(t *testing.T) {
	data := []byte(",voice,nasal\nd,+\n")
	_, err := ParseFeatureTableCSV(data)
	if err == nil {
		t.Fatalf("expected a short data row to be rejected; got nil error")
	}
}
