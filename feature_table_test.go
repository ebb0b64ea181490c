package otlearn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallTable(t *testing.T) *FeatureTable {
	table, err := NewFeatureTable(
		[]string{"voice", "syllabic"},
		map[string][]string{"voice": {"+", "-"}, "syllabic": {"+", "-"}},
		map[string][]string{
			"a": {"+", "+"},
			"d": {"+", "-"},
			"t": {"-", "-"},
		},
	)
	require.NoError(t, err)
	return table
}

func TestFeatureTableBasics(t *testing.T) {
	table := smallTable(t)
	assert.Equal(t, 2, table.NumFeatures())
	assert.True(t, table.IsValidSymbol("d"))
	assert.False(t, table.IsValidSymbol("q"))
	assert.Equal(t, []string{"+", "-"}, table.Values("d"))
	assert.Len(t, table.Alphabet(), 3)
}

func TestFeatureTableRejectsIllegalValue(t *testing.T) {
	_, err := NewFeatureTable(
		[]string{"voice"},
		map[string][]string{"voice": {"+", "-"}},
		map[string][]string{"d": {"0"}},
	)
	if err == nil {
		t.Fatalf("expected an error for an illegal feature value; got nil")
	}
	var fte *FeatureTableError
	assert.ErrorAs(t, err, &fte)
}

func TestFeatureTableSatisfies(t *testing.T) {
	table := smallTable(t)
	assert.True(t, table.Satisfies("d", map[string]string{"voice": "+"}))
	assert.False(t, table.Satisfies("t", map[string]string{"voice": "+"}))
	assert.False(t, table.Satisfies("nonexistent", map[string]string{"voice": "+"}))
}
