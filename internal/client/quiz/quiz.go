// Package quiz implements the test-attempt engine: drawing a bounded random
// subset of a question bank, recording answer selections, and scoring a
// finished attempt into a proficiency level.
package quiz

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/lingvocheck/client/internal/client/models"
)

// MaxQuestions caps how many questions one attempt draws from the bank.
const MaxQuestions = 20

var (
	ErrAttemptChecked  = errors.New("attempt already checked")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Engine samples questions. The rand source is injectable so tests can make
// sampling deterministic.
type Engine struct {
	rnd *rand.Rand
}

// NewEngine builds an Engine over src. A nil src gets a time-seeded one.
func NewEngine(src rand.Source) *Engine {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Engine{rnd: rand.New(src)}
}

// Sample draws min(MaxQuestions, len(questions)) questions uniformly at
// random without replacement: a working set of indexes is consumed one
// random pick at a time, which is a partial Fisher–Yates shuffle.
func (e *Engine) Sample(questions []models.Question) []models.Question {
	n := len(questions)
	k := n
	if k > MaxQuestions {
		k = MaxQuestions
	}

	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}

	sampled := make([]models.Question, 0, k)
	for i := 0; i < k; i++ {
		j := e.rnd.Intn(len(indexes))
		picked := indexes[j]
		indexes = append(indexes[:j], indexes[j+1:]...)
		sampled = append(sampled, questions[picked])
	}
	return sampled
}

// Attempt is one run through a sampled question set. It has two states:
// open (selections may change) and checked (terminal, selections frozen).
type Attempt struct {
	ID        uuid.UUID
	TestID    string
	Questions []models.Question

	checked bool
}

// NewAttempt samples the bank and starts an open attempt for it.
func (e *Engine) NewAttempt(testID string, bank []models.Question) *Attempt {
	return &Attempt{
		ID:        uuid.New(),
		TestID:    testID,
		Questions: e.Sample(bank),
	}
}

// Select records the user's answer for a question. Selections are rejected
// once the attempt has been checked.
func (a *Attempt) Select(question, answer int) error {
	if a.checked {
		return ErrAttemptChecked
	}
	if question < 0 || question >= len(a.Questions) {
		return ErrIndexOutOfRange
	}
	if answer < 0 || answer >= len(a.Questions[question].Answers) {
		return ErrIndexOutOfRange
	}
	a.Questions[question].Selected = &answer
	return nil
}

// Checked reports whether the attempt has been finalized.
func (a *Attempt) Checked() bool { return a.checked }

// Check finalizes the attempt and returns the number of correct answers.
// The transition to checked happens at most once; further calls just return
// the (pure) score again.
func (a *Attempt) Check() int {
	a.checked = true
	return Score(a.Questions)
}

// Score counts answered questions whose selected answer is correct.
// Unanswered questions are excluded entirely: they count neither for nor
// against the result.
func Score(questions []models.Question) int {
	count := 0
	for i := range questions {
		if questions[i].Answered() && questions[i].Correct() {
			count++
		}
	}
	return count
}
