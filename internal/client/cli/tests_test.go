package cli

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingvocheck/client/internal/client/api"
	"github.com/lingvocheck/client/internal/client/i18n"
	"github.com/lingvocheck/client/internal/client/quiz"
	"github.com/lingvocheck/client/internal/client/tokens"
	"github.com/lingvocheck/client/internal/logging"

	_ "modernc.org/sqlite"
)

// recordingLogger captures structured log calls for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	msg  string
	args []any
}

func (l *recordingLogger) record(msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{msg: msg, args: args})
}

func (l *recordingLogger) find(msg string) (logEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.msg == msg {
			return e, true
		}
	}
	return logEntry{}, false
}

func (l *recordingLogger) Debug(ctx context.Context, msg string, args ...any) { l.record(msg, args) }
func (l *recordingLogger) Info(ctx context.Context, msg string, args ...any)  { l.record(msg, args) }
func (l *recordingLogger) Warn(ctx context.Context, msg string, args ...any)  { l.record(msg, args) }
func (l *recordingLogger) Error(ctx context.Context, msg string, args ...any) { l.record(msg, args) }
func (l *recordingLogger) With(args ...any) logging.Logger                    { return l }

// argValue extracts the value following key in a key-value arg list.
func argValue(args []any, key string) (any, bool) {
	for i := 0; i+1 < len(args); i += 2 {
		if args[i] == key {
			return args[i+1], true
		}
	}
	return nil, false
}

func newTakeApp(t *testing.T, baseURL string, log logging.Logger) *App {
	t.Helper()

	db, err := sql.Open("sqlite", "file:take_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(4)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS settings (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)

	tr, err := i18n.New()
	require.NoError(t, err)

	return &App{
		api:    api.New(baseURL, 5*time.Second, tokens.NewStore(db), tr.Locale, log),
		engine: quiz.NewEngine(rand.NewSource(1)),
		tr:     tr,
		log:    log,
		reader: bufio.NewReader(strings.NewReader("")),
	}
}

func TestTake_SubmitsAttemptResult(t *testing.T) {
	var submitted map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/test/t-1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
  "_id": "t-1",
  "name": "Grammar",
  "questions": [
    {"title": "q1", "answers": [{"text": "right", "value": true}, {"text": "wrong", "value": false}]},
    {"title": "q2", "answers": [{"text": "right", "value": true}, {"text": "wrong", "value": false}]}
  ]
}`))
	})
	mux.HandleFunc("/history", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&submitted))
		w.Write([]byte(`{}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	// First question answered with option 1 (correct), second skipped.
	answers := []string{"1", ""}
	calls := 0
	orig := getSimpleText
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		answer := answers[calls]
		calls++
		return answer, nil
	}
	defer func() { getSimpleText = orig }()

	log := &recordingLogger{}
	app := newTakeApp(t, srv.URL, log)

	app.Take(context.Background(), "t-1")

	require.NotNil(t, submitted, "finished attempt must be submitted")
	assert.Equal(t, "t-1", submitted["test"])
	assert.Equal(t, float64(1), submitted["correctAnswers"])

	started, ok := log.find("attempt started")
	require.True(t, ok)
	startedID, ok := argValue(started.args, "attempt")
	require.True(t, ok)
	attemptID, err := uuid.Parse(startedID.(string))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, attemptID)

	finished, ok := log.find("attempt finished")
	require.True(t, ok)
	finishedID, _ := argValue(finished.args, "attempt")
	assert.Equal(t, startedID, finishedID, "start and finish log the same attempt")
	correct, _ := argValue(finished.args, "correct")
	assert.Equal(t, 1, correct)
}
