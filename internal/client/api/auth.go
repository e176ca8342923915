package api

import (
	"context"
	"net/http"

	"github.com/lingvocheck/client/internal/client/models"
)

// Login authenticates with email/password and returns the issued access
// token and user profile.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Registration creates an account and logs it in.
func (c *Client) Registration(ctx context.Context, username, email, password, repeatPassword string) (*models.AuthResponse, error) {
	body := struct {
		Username       string `json:"username"`
		Email          string `json:"email"`
		Password       string `json:"password"`
		RepeatPassword string `json:"repeatPassword"`
	}{username, email, password, repeatPassword}

	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/registration", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout invalidates the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil)
}

// SendActivationCode asks the server to re-send the account activation mail.
func (c *Client) SendActivationCode(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/activation-code", nil, nil)
}
