package api

import (
	"context"
	"net/http"

	"github.com/lingvocheck/client/internal/client/models"
)

// Tests lists the tests available to the caller.
func (c *Client) Tests(ctx context.Context) ([]models.TestSummary, error) {
	var tests []models.TestSummary
	if err := c.do(ctx, http.MethodGet, "/test/all", nil, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

// TestList lists all tests in the short form used by assignment dropdowns.
func (c *Client) TestList(ctx context.Context) ([]models.TestSummary, error) {
	var tests []models.TestSummary
	if err := c.do(ctx, http.MethodGet, "/test/list", nil, &tests); err != nil {
		return nil, err
	}
	return tests, nil
}

// Test fetches a full test definition, question bank included.
func (c *Client) Test(ctx context.Context, id string) (*models.Test, error) {
	var test models.Test
	if err := c.do(ctx, http.MethodGet, "/test/"+id, nil, &test); err != nil {
		return nil, err
	}
	return &test, nil
}
