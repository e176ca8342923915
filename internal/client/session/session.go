// Package session holds the client's authentication state and orchestrates
// login, registration, logout and profile updates over the API client and
// the token store.
package session

import (
	"context"
	"errors"

	"github.com/lingvocheck/client/internal/client/api"
	"github.com/lingvocheck/client/internal/client/i18n"
	"github.com/lingvocheck/client/internal/client/models"
	"github.com/lingvocheck/client/internal/client/repositories/settings"
	"github.com/lingvocheck/client/internal/client/tokens"
	"github.com/lingvocheck/client/internal/logging"
)

// Settings keys for UI preferences, stored next to the tokens.
const (
	KeyTheme = "theme"
	KeyLang  = "lang"

	defaultTheme = "light"
	defaultLang  = "en"
)

// Result is the outcome of an operation that may be rejected by the server.
// Expected rejections never surface as Go errors: Success is false and
// MessageError carries a human-readable explanation instead.
type Result struct {
	Success      bool
	MessageError string
}

// Controller owns session state. It is designed for the single-goroutine,
// event-driven CLI flow: operations are strictly sequential per call and no
// internal locking is performed.
type Controller struct {
	api      *api.Client
	tokens   *tokens.Store
	settings settings.Repository
	tr       *i18n.Translator
	log      logging.Logger

	isAuth bool
	user   models.UserProfile
	tests  []models.TestSummary
	theme  string
}

func New(apiClient *api.Client, store *tokens.Store, repo settings.Repository, tr *i18n.Translator, log logging.Logger) *Controller {
	return &Controller{
		api:      apiClient,
		tokens:   store,
		settings: repo,
		tr:       tr,
		log:      log,
		theme:    defaultTheme,
	}
}

func (c *Controller) IsAuth() bool                { return c.isAuth }
func (c *Controller) User() models.UserProfile    { return c.user }
func (c *Controller) Tests() []models.TestSummary { return c.tests }
func (c *Controller) Theme() string               { return c.theme }

func (c *Controller) Permissions() models.Permissions {
	return c.user.Permissions
}

// failure converts a server rejection into a Result, preferring the
// backend's message and falling back to the localized generic one.
func (c *Controller) failure(err error) Result {
	msg := api.ServerMessage(err)
	if msg == "" {
		msg = c.tr.T("TOAST.DETAIL.SERVER_ERROR")
	}
	return Result{Success: false, MessageError: msg}
}

// resolve maps an operation error to the Result contract: server rejections
// become failed Results, transport-level errors propagate to the caller.
func (c *Controller) resolve(err error) (Result, error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return c.failure(err), nil
	}
	return Result{}, err
}

// Login authenticates and, on success, persists the access token and stores
// the returned profile.
func (c *Controller) Login(ctx context.Context, email, password string) (Result, error) {
	resp, err := c.api.Login(ctx, email, password)
	if err != nil {
		return c.resolve(err)
	}

	c.establish(ctx, resp)
	return Result{Success: true}, nil
}

// Registration creates an account and logs it in, with the same contract as
// Login.
func (c *Controller) Registration(ctx context.Context, username, email, password, repeatPassword string) (Result, error) {
	resp, err := c.api.Registration(ctx, username, email, password, repeatPassword)
	if err != nil {
		return c.resolve(err)
	}

	c.establish(ctx, resp)
	return Result{Success: true}, nil
}

func (c *Controller) establish(ctx context.Context, resp *models.AuthResponse) {
	if err := c.tokens.SaveAccess(ctx, resp.AccessToken); err != nil {
		// The in-memory session still works; only persistence across
		// restarts is lost.
		c.log.Warn(ctx, "failed to persist access token", "error", err)
	}
	// The refresh token normally arrives via Set-Cookie and is captured by
	// the request pipeline; some responses also carry it in the body.
	if resp.RefreshToken != "" {
		if err := c.tokens.SaveRefresh(ctx, resp.RefreshToken); err != nil {
			c.log.Warn(ctx, "failed to persist refresh token", "error", err)
		}
	}
	c.isAuth = true
	c.user = resp.User
}

// Logout tells the server to end the session, then clears local state. The
// remote call is best effort: local cleanup happens regardless of its
// outcome.
func (c *Controller) Logout(ctx context.Context) (Result, error) {
	if err := c.api.Logout(ctx); err != nil {
		c.log.Warn(ctx, "server logout failed, clearing local session anyway", "error", err)
	}
	c.ForceLogout(ctx)
	return Result{Success: true}, nil
}

// ForceLogout clears tokens and resets the session to unauthenticated
// defaults. The request pipeline invokes it on an unrecoverable 401.
func (c *Controller) ForceLogout(ctx context.Context) {
	if err := c.tokens.Clear(ctx); err != nil {
		c.log.Warn(ctx, "failed to clear stored tokens", "error", err)
	}
	c.isAuth = false
	c.user = models.UserProfile{}
	c.tests = nil
}

// UpdateProfile submits profile changes and replaces the stored profile
// with the server's returned representation.
func (c *Controller) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (Result, error) {
	profile, err := c.api.EditProfile(ctx, update)
	if err != nil {
		return c.resolve(err)
	}

	c.user = *profile
	return Result{Success: true}, nil
}

// LoadTests fetches and caches the list of available tests.
func (c *Controller) LoadTests(ctx context.Context) (Result, error) {
	tests, err := c.api.Tests(ctx)
	if err != nil {
		return c.resolve(err)
	}

	c.tests = tests
	return Result{Success: true}, nil
}

// CanViewPage reports whether the current permission set grants access to an
// administration page.
func (c *Controller) CanViewPage(page string) bool {
	p := c.user.Permissions
	switch page {
	case "users":
		return p.AssignRole || p.AssignTeam || p.DeleteUser || p.CreateUser
	case "teams":
		return p.CreateTeam || p.DeleteTeam
	case "roles":
		return p.CreateRole || p.DeleteRole
	default:
		return true
	}
}

// InitSettings loads persisted UI preferences, applying defaults when the
// store is empty or unavailable.
func (c *Controller) InitSettings(ctx context.Context) {
	theme, err := c.settings.Get(ctx, KeyTheme)
	if err != nil {
		c.log.Warn(ctx, "failed to load theme", "error", err)
	}
	if theme == "" {
		theme = defaultTheme
	}
	c.theme = theme

	lang, err := c.settings.Get(ctx, KeyLang)
	if err != nil {
		c.log.Warn(ctx, "failed to load language", "error", err)
	}
	if lang == "" {
		lang = defaultLang
	}
	c.tr.SetLocale(lang)
}

// SetLanguage switches the UI locale and persists the choice.
func (c *Controller) SetLanguage(ctx context.Context, lang string) error {
	c.tr.SetLocale(lang)
	return c.settings.Set(ctx, KeyLang, c.tr.Locale())
}

// SetTheme persists the chosen theme.
func (c *Controller) SetTheme(ctx context.Context, theme string) error {
	c.theme = theme
	return c.settings.Set(ctx, KeyTheme, theme)
}
