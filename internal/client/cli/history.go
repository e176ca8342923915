package cli

import (
	"context"
	"fmt"

	"github.com/lingvocheck/client/internal/client/models"
)

// testStats is the per-test aggregation shown by the history command.
type testStats struct {
	Name     string
	Attempts int
	Best     int
	GPA      float64
}

// aggregateHistory groups attempts by test, in first-seen order, computing
// attempt count, best score and grade-point average per test.
func aggregateHistory(entries []models.HistoryEntry) []testStats {
	index := map[string]int{}
	stats := make([]testStats, 0)
	sums := make([]int, 0)

	for _, e := range entries {
		i, ok := index[e.Test.ID]
		if !ok {
			i = len(stats)
			index[e.Test.ID] = i
			stats = append(stats, testStats{Name: e.Test.Name})
			sums = append(sums, 0)
		}
		stats[i].Attempts++
		sums[i] += e.CorrectAnswers
		if e.CorrectAnswers > stats[i].Best {
			stats[i].Best = e.CorrectAnswers
		}
	}

	for i := range stats {
		stats[i].GPA = float64(sums[i]) / float64(stats[i].Attempts)
	}
	return stats
}

// History prints the caller's attempts grouped by test.
func (a *App) History(ctx context.Context) {
	entries, err := a.api.History(ctx)
	if err != nil {
		a.handleError(err)
		return
	}

	fmt.Println(a.tr.T("HISTORY.TABLE.TITLE"))
	if len(entries) == 0 {
		fmt.Println("(empty)")
		return
	}
	for _, s := range aggregateHistory(entries) {
		fmt.Printf("%-30s attempts: %-3d best: %-3d avg: %.2f\n", s.Name, s.Attempts, s.Best, s.GPA)
	}
}
