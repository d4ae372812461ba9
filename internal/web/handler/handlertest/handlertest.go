// Package handlertest builds fiber apps backed by an in-memory store for handler tests.
package handlertest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/interior-site/interior-site/internal/auth"
	"github.com/interior-site/interior-site/internal/config"
	"github.com/interior-site/interior-site/internal/db/dbtest"
	"github.com/interior-site/interior-site/internal/web/handler"
)

// Secret is the guard secret of every test environment.
const Secret = "1111"

// Env is a test app with its store and guard.
type Env struct {
	App   *fiber.App
	Cfg   *config.Config
	DB    *gorm.DB
	Guard *auth.Guard
}

// New creates an app using the JSON error handler, an in-memory store and a guard
// holding Secret. The upload directory is a fresh temp dir.
func New(t *testing.T, views ...fiber.Views) *Env {
	t.Helper()

	cfg := dbtest.Config()
	cfg.Title = "Test Studio"
	cfg.Upload = config.Upload{Dir: t.TempDir(), URLPrefix: "/uploads"}
	cfg.Admin.DefaultSecret = Secret

	db := dbtest.Open(t)

	guard := auth.NewGuard(db)
	guard.Params = &argon2id.Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
	require.NoError(t, guard.Rotate(Secret))

	fc := fiber.Config{ErrorHandler: handler.ErrorHandler}
	if len(views) > 0 {
		fc.Views = views[0]
	}

	return &Env{
		App:   fiber.New(fc),
		Cfg:   cfg,
		DB:    db,
		Guard: guard,
	}
}

// Init registers h on the app.
func (e *Env) Init(t *testing.T, h handler.Service) {
	t.Helper()

	require.NoError(t, h.Init(e.App, e.Cfg, e.DB, e.Guard))
}

// Do sends a request with an optional JSON body and returns status and body.
func (e *Env) Do(t *testing.T, method, path, body string) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	return e.Send(t, req)
}

// Send runs req against the app.
func (e *Env) Send(t *testing.T, req *http.Request) (int, string) {
	t.Helper()

	resp, err := e.App.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(data)
}
