package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumeratedExtractSameLine(t *testing.T) {
	e := NewEnumeratedExtractor(nil)
	hits := e.Extract("Invoice Number: ABC-123\nDate: 2024-01-15", []string{"invoice_number", "date"})

	require.Contains(t, hits, "invoice_number")
	assert.True(t, hits["invoice_number"].Found)
	assert.Equal(t, "ABC-123", hits["invoice_number"].Value)
	assert.Equal(t, 0.9, hits["invoice_number"].Confidence)

	assert.True(t, hits["date"].Found)
	assert.Equal(t, "2024-01-15", hits["date"].Value)
}

func TestEnumeratedExtractNextLine(t *testing.T) {
	e := NewEnumeratedExtractor(nil)
	hits := e.Extract("Total\n$45.00", []string{"total"})

	require.True(t, hits["total"].Found)
	assert.Equal(t, "$45.00", hits["total"].Value)
	assert.Equal(t, 0.8, hits["total"].Confidence)
}

func TestEnumeratedExtractMissingField(t *testing.T) {
	e := NewEnumeratedExtractor(nil)
	hits := e.Extract("nothing relevant here", []string{"invoice_number"})

	require.Contains(t, hits, "invoice_number")
	assert.False(t, hits["invoice_number"].Found)
	assert.Empty(t, hits["invoice_number"].Value)
	assert.Equal(t, 0.0, hits["invoice_number"].Confidence)
}

func TestEnumeratedStats(t *testing.T) {
	e := NewEnumeratedExtractor(nil)
	hits := e.Extract("Invoice Number: 1\nDate: 2024-01-01", []string{"invoice_number", "date", "missing_field"})

	stats := Stats(hits)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Found)
	assert.Equal(t, 1, stats.Missing)
	assert.InDelta(t, 66.67, stats.SuccessRate, 0.01)
}

func TestEnumeratedStatsEmpty(t *testing.T) {
	stats := Stats(map[string]FieldHit{})
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.SuccessRate)
}
