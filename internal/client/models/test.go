package models

// TestSummary identifies a test without its question bank.
type TestSummary struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Test is a full test definition with its question bank.
type Test struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Answer is one option of a question; Value marks the correct one.
type Answer struct {
	Text  string `json:"text"`
	Value bool   `json:"value"`
}

// Question is a single quiz question. Selected is nil until the user picks
// an answer; when set it is an index into Answers.
type Question struct {
	Title    string   `json:"title"`
	Answers  []Answer `json:"answers"`
	Rule     string   `json:"rule,omitempty"`
	Selected *int     `json:"selected,omitempty"`
}

// Answered reports whether the user picked an answer for q.
func (q *Question) Answered() bool {
	return q.Selected != nil
}

// Correct reports whether the selected answer, if any, is the right one.
func (q *Question) Correct() bool {
	if q.Selected == nil {
		return false
	}
	i := *q.Selected
	if i < 0 || i >= len(q.Answers) {
		return false
	}
	return q.Answers[i].Value
}
