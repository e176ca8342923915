// Package cli implements the interactive LingvoCheck client: a REPL over
// the session controller, the quiz engine and the API client.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/lingvocheck/client/internal/client/api"
	"github.com/lingvocheck/client/internal/client/config"
	"github.com/lingvocheck/client/internal/client/i18n"
	"github.com/lingvocheck/client/internal/client/quiz"
	"github.com/lingvocheck/client/internal/client/repositories/settings"
	"github.com/lingvocheck/client/internal/client/session"
	"github.com/lingvocheck/client/internal/client/storage"
	"github.com/lingvocheck/client/internal/client/tokens"
	"github.com/lingvocheck/client/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	db      *sql.DB
	api     *api.Client
	session *session.Controller
	engine  *quiz.Engine
	tr      *i18n.Translator
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	tr, err := i18n.New()
	if err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	store := tokens.NewStore(db)
	apiClient := api.New(cfg.BaseURL, cfg.RequestTimeout, store, tr.Locale, logger)
	sess := session.New(apiClient, store, settings.NewSQLiteRepository(db), tr, logger)
	apiClient.SetAuthFailureHandler(sess.ForceLogout)

	sess.InitSettings(ctx)

	return &App{
		config:  cfg,
		db:      db,
		api:     apiClient,
		session: sess,
		engine:  quiz.NewEngine(nil),
		tr:      tr,
		log:     logger,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuth()
}

// alert prints an operation result the way the mobile app raises a toast:
// localized summary line plus the detail message.
func (a *App) alert(res session.Result) {
	if res.Success {
		fmt.Println(a.tr.T("TOAST.SUMMARY.SUCCESSFUL"))
		return
	}
	fmt.Printf("%s: %s\n", a.tr.T("TOAST.SUMMARY.ERROR"), res.MessageError)
}

// handleError surfaces a request error: the server's message when there is
// one, the localized generic server error otherwise.
func (a *App) handleError(err error) {
	msg := api.ServerMessage(err)
	if msg == "" {
		msg = a.tr.T("TOAST.DETAIL.SERVER_ERROR")
	}
	fmt.Printf("%s: %s\n", a.tr.T("TOAST.SUMMARY.ERROR"), msg)
}
