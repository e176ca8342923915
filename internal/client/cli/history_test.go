package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingvocheck/client/internal/client/models"
)

func entry(testID, name string, correct int) models.HistoryEntry {
	return models.HistoryEntry{
		CorrectAnswers: correct,
		Test:           models.TestSummary{ID: testID, Name: name},
	}
}

func TestAggregateHistory(t *testing.T) {
	entries := []models.HistoryEntry{
		entry("t-1", "Grammar", 12),
		entry("t-2", "Vocabulary", 8),
		entry("t-1", "Grammar", 17),
		entry("t-1", "Grammar", 10),
	}

	stats := aggregateHistory(entries)
	require.Len(t, stats, 2)

	assert.Equal(t, "Grammar", stats[0].Name)
	assert.Equal(t, 3, stats[0].Attempts)
	assert.Equal(t, 17, stats[0].Best)
	assert.InDelta(t, 13.0, stats[0].GPA, 1e-9)

	assert.Equal(t, "Vocabulary", stats[1].Name)
	assert.Equal(t, 1, stats[1].Attempts)
	assert.Equal(t, 8, stats[1].Best)
	assert.InDelta(t, 8.0, stats[1].GPA, 1e-9)
}

func TestAggregateHistory_Empty(t *testing.T) {
	assert.Empty(t, aggregateHistory(nil))
}

func TestAggregateHistory_FirstSeenOrder(t *testing.T) {
	entries := []models.HistoryEntry{
		entry("t-3", "Listening", 5),
		entry("t-1", "Grammar", 9),
		entry("t-3", "Listening", 6),
	}

	stats := aggregateHistory(entries)
	require.Len(t, stats, 2)
	assert.Equal(t, "Listening", stats[0].Name)
	assert.Equal(t, "Grammar", stats[1].Name)
}
