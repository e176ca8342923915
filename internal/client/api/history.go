package api

import (
	"context"
	"net/http"

	"github.com/lingvocheck/client/internal/client/models"
)

// History returns all recorded attempts of the caller.
func (c *Client) History(ctx context.Context) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	if err := c.do(ctx, http.MethodGet, "/history/all", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateHistory records a finished attempt.
func (c *Client) CreateHistory(ctx context.Context, entry models.NewHistoryEntry) error {
	return c.do(ctx, http.MethodPost, "/history", entry, nil)
}
