package models

// HistoryEntry is one recorded test attempt from GET /history/all.
type HistoryEntry struct {
	ID             string      `json:"_id,omitempty"`
	CorrectAnswers int         `json:"correctAnswers"`
	Test           TestSummary `json:"test"`
	Date           string      `json:"date,omitempty"`
}

// NewHistoryEntry is the payload submitted after a finished attempt.
type NewHistoryEntry struct {
	CorrectAnswers int    `json:"correctAnswers"`
	Test           string `json:"test"`
}
