package api

import (
	"context"
	"net/http"
)

// AskGPT sends a free-form question to the platform's language assistant and
// returns its reply.
func (c *Client) AskGPT(ctx context.Context, text string) (string, error) {
	body := struct {
		Text string `json:"text"`
	}{text}

	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/gpt", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
