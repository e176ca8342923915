package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/lingvocheck/client/internal/client/models"
	"github.com/lingvocheck/client/internal/client/quiz"
)

// Tests loads and prints the list of available tests.
func (a *App) Tests(ctx context.Context) {
	res, err := a.session.LoadTests(ctx)
	if err != nil {
		a.handleError(err)
		return
	}
	if !res.Success {
		a.alert(res)
		return
	}

	tests := a.session.Tests()
	if len(tests) == 0 {
		fmt.Println("No tests available")
		return
	}
	for _, t := range tests {
		fmt.Printf("%s  %s\n", t.ID, t.Name)
	}
}

// Take runs one quiz attempt: fetches the test, samples its question bank,
// collects answers, finalizes the attempt and submits the result.
func (a *App) Take(ctx context.Context, id string) {
	test, err := a.api.Test(ctx, id)
	if err != nil {
		a.handleError(err)
		return
	}

	attempt := a.engine.NewAttempt(id, test.Questions)
	a.log.Info(ctx, "attempt started", "attempt", attempt.ID.String(), "test", attempt.TestID)
	fmt.Printf("%s: %d questions\n", test.Name, len(attempt.Questions))

	for i := range attempt.Questions {
		q := &attempt.Questions[i]
		fmt.Printf("\n%d) %s\n", i+1, q.Title)
		for j, answer := range q.Answers {
			fmt.Printf("   %d. %s\n", j+1, answer.Text)
		}

		line, err := getSimpleText(a.reader, "Answer number (Enter to skip)", os.Stdout)
		if err != nil {
			return
		}
		if line == "" {
			continue
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Println("Not a number, question skipped")
			continue
		}
		if selErr := attempt.Select(i, n-1); selErr != nil {
			fmt.Println("Invalid answer, question skipped")
		}
	}

	correct := attempt.Check()
	level := quiz.LevelForScore(correct)
	a.log.Info(ctx, "attempt finished", "attempt", attempt.ID.String(), "correct", correct, "level", string(level))
	fmt.Println()
	fmt.Println(a.tr.T("TESTS.RESULT_TEXT", "count", strconv.Itoa(correct), "level", string(level)))

	entry := models.NewHistoryEntry{CorrectAnswers: correct, Test: attempt.TestID}
	if err := a.api.CreateHistory(ctx, entry); err != nil {
		a.handleError(err)
	}
}
