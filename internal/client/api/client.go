// Package api is the single gateway for all LingvoCheck backend calls.
//
// Every request goes through the same pipeline: auth headers are attached
// from the token store, rotated refresh tokens arriving via Set-Cookie are
// persisted, and a 401 triggers one refresh-and-retry cycle before the
// configured auth-failure handler is invoked and the original error is
// returned.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lingvocheck/client/internal/client/models"
	"github.com/lingvocheck/client/internal/client/tokens"
	"github.com/lingvocheck/client/internal/logging"
)

const (
	// ClientType marks the calling platform on every outgoing request.
	ClientType = "cli"

	refreshPath       = "/refresh"
	refreshCookieName = "refreshToken"

	maxErrorBody = 1 << 20
)

// Client issues authenticated requests against the backend.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *tokens.Store
	locale  func() string
	log     logging.Logger

	// onAuthFail runs when a 401 cannot be recovered by a refresh cycle:
	// the session layer clears local state and returns the user to login.
	onAuthFail func(ctx context.Context)
}

// New builds a Client. locale supplies the Accept-Language value per call so
// language switches take effect without rebuilding the client.
func New(baseURL string, timeout time.Duration, store *tokens.Store, locale func() string, log logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  store,
		locale:  locale,
		log:     log,
	}
}

// SetAuthFailureHandler injects the forced-logout procedure. The handler is
// optional; without one an unrecoverable 401 is only reported to the caller.
func (c *Client) SetAuthFailureHandler(fn func(ctx context.Context)) {
	c.onAuthFail = fn
}

// do runs one request through the full pipeline.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	return c.send(ctx, method, path, body, out, false)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any, isRetry bool) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.captureRefreshCookie(ctx, resp)

	if resp.StatusCode < http.StatusBadRequest {
		return decodeBody(resp.Body, out)
	}

	apiErr := readError(resp)

	if resp.StatusCode == http.StatusUnauthorized {
		if !isRetry {
			refreshErr := c.refreshTokens(ctx)
			if refreshErr == nil {
				return c.send(ctx, method, path, body, out, true)
			}
			c.log.Warn(ctx, "token refresh failed", "error", refreshErr)
		}
		c.failAuth(ctx)
	}

	return apiErr
}

// newRequest builds the request envelope: JSON body, locale and client-type
// markers, and whatever credentials the token store currently holds. Storage
// errors are treated as "no token available".
func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept-Language", c.locale())
	req.Header.Set("Client-Type", ClientType)

	access, err := c.tokens.Access(ctx)
	if err != nil {
		c.log.Warn(ctx, "failed to read access token", "error", err)
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	refresh, err := c.tokens.Refresh(ctx)
	if err != nil {
		c.log.Warn(ctx, "failed to read refresh token", "error", err)
	}
	if refresh != "" {
		req.AddCookie(&http.Cookie{Name: refreshCookieName, Value: refresh})
	}

	return req, nil
}

// captureRefreshCookie persists a rotated refresh token delivered through a
// Set-Cookie header. Persistence failures are logged and ignored: the old
// token keeps working until the server rotates again.
func (c *Client) captureRefreshCookie(ctx context.Context, resp *http.Response) {
	for _, cookie := range resp.Cookies() {
		if cookie.Name != refreshCookieName || cookie.Value == "" {
			continue
		}
		if err := c.tokens.SaveRefresh(ctx, cookie.Value); err != nil {
			c.log.Warn(ctx, "failed to persist rotated refresh token", "error", err)
		}
		return
	}
}

// refreshTokens issues the bare GET /refresh call. It deliberately bypasses
// the pipeline: only the refresh cookie is sent, no Authorization header,
// and a 401 here is final, so the refresh endpoint can never loop.
func (c *Client) refreshTokens(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+refreshPath, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept-Language", c.locale())
	req.Header.Set("Client-Type", ClientType)

	refresh, err := c.tokens.Refresh(ctx)
	if err != nil {
		c.log.Warn(ctx, "failed to read refresh token", "error", err)
	}
	if refresh != "" {
		req.AddCookie(&http.Cookie{Name: refreshCookieName, Value: refresh})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return readError(resp)
	}

	var pair models.TokenPair
	if err := decodeBody(resp.Body, &pair); err != nil {
		return err
	}

	return c.tokens.SavePair(ctx, pair)
}

func (c *Client) failAuth(ctx context.Context) {
	c.log.Info(ctx, "authentication expired, forcing logout")
	if c.onAuthFail != nil {
		c.onAuthFail(ctx)
	}
}

func decodeBody(r io.Reader, out any) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, r)
		return nil
	}
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// readError converts an error response into *Error, pulling the message
// from the backend's {"message": ...} convention when present.
func readError(resp *http.Response) *Error {
	apiErr := &Error{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}
