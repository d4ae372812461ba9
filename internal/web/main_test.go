package web

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexedwards/argon2id"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interior-site/interior-site/internal/auth"
	"github.com/interior-site/interior-site/internal/config"
	"github.com/interior-site/interior-site/internal/db/controller/setting"
	"github.com/interior-site/interior-site/internal/db/dbtest"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	cfg := dbtest.Config()
	cfg.Title = "Interior Studio"
	cfg.Webserver = config.Webserver{Port: 3000, URL: "http://localhost:3000", BodyLimitMB: 1}
	cfg.Upload = config.Upload{Dir: t.TempDir(), URLPrefix: "/uploads"}

	db := dbtest.Open(t)
	require.NoError(t, setting.InsertMissing(db, map[string]string{
		setting.KeyPhone:     "010-1234-5678",
		setting.KeyAboutName: "김태일",
	}))

	guard := auth.NewGuard(db)
	guard.Params = &argon2id.Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
	require.NoError(t, guard.Rotate("1111"))

	s, err := New(cfg, db, guard)
	require.NoError(t, err)

	return s
}

func do(t *testing.T, s *Service, req *http.Request) (int, string) {
	t.Helper()

	resp, err := s.App.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return req
}

func TestNewNil(t *testing.T) {
	_, err := New(nil, nil, nil)
	require.Error(t, err)
}

func TestSettingsScenario(t *testing.T) {
	s := newTestService(t)

	code, body := do(t, s, jsonRequest(http.MethodPost, "/api/settings",
		`{"password":"1111","settings":{"phone":"02-000-0000"}}`))
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"success":true}`, body)

	code, body = do(t, s, httptest.NewRequest(http.MethodGet, "/api/settings", nil))
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"phone":"02-000-0000","about_name":"김태일"}`, body)

	code, body = do(t, s, jsonRequest(http.MethodPost, "/api/settings",
		`{"password":"wrong","settings":{"phone":"nope"}}`))
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, body)

	_, body = do(t, s, httptest.NewRequest(http.MethodGet, "/api/settings", nil))
	assert.Contains(t, body, "02-000-0000")
}

func TestPortfolioScenario(t *testing.T) {
	s := newTestService(t)

	for _, item := range []string{
		`{"category":"apartment","title":"apt","images":["a.jpg","b.jpg"]}`,
		`{"category":"commercial","title":"cafe"}`,
		`{"category":"house","title":"house"}`,
	} {
		code, body := do(t, s, jsonRequest(http.MethodPost, "/api/portfolio", `{"password":"1111","item":`+item+`}`))
		require.Equal(t, http.StatusOK, code, body)
	}

	_, body := do(t, s, httptest.NewRequest(http.MethodGet, "/api/portfolio?category=apartment", nil))

	var items []struct {
		ID       uint64   `json:"id"`
		Category string   `json:"category"`
		Images   []string `json:"images"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "apartment", items[0].Category)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, items[0].Images)

	code, body := do(t, s, jsonRequest(http.MethodPost, "/api/portfolio",
		`{"password":"1111","item":{"category":"villa"}}`))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body, `"error"`)
}

func TestUploadAndServe(t *testing.T) {
	s := newTestService(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("image", "tile.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

	code, body := do(t, s, req)
	require.Equal(t, http.StatusOK, code, body)

	var resp struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.True(t, strings.HasPrefix(resp.URL, "/uploads/"))

	code, body = do(t, s, httptest.NewRequest(http.MethodGet, resp.URL, nil))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "jpeg bytes", body)

	code, body = do(t, s, httptest.NewRequest(http.MethodPost, "/api/upload", nil))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.JSONEq(t, `{"error":"No file uploaded"}`, body)
}

func TestShell(t *testing.T) {
	s := newTestService(t)

	code, body := do(t, s, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "<title>Interior Studio</title>")
	assert.Contains(t, body, "010-1234-5678")
	assert.Contains(t, body, "김태일")

	code, body = do(t, s, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, ".site-header")
}

func TestCheckAlive(t *testing.T) {
	s := newTestService(t)

	code, body := do(t, s, httptest.NewRequest(http.MethodGet, CheckAlivePath, nil))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", body)
	assert.True(t, s.Alive())

	s.alive.Store(false)

	code, _ = do(t, s, httptest.NewRequest(http.MethodGet, CheckAlivePath, nil))
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestMetrics(t *testing.T) {
	s := newTestService(t)

	code, _ := do(t, s, jsonRequest(http.MethodPost, "/api/today-design", `{"password":"1111","item":{"title":"t"}}`))
	require.Equal(t, http.StatusOK, code)

	code, body := do(t, s, httptest.NewRequest(http.MethodGet, MetricsPath, nil))
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `interior_site_content_writes_total{action="create",resource="today_design"}`)
}

func TestUnknownAPIRoute(t *testing.T) {
	s := newTestService(t)

	code, body := do(t, s, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, code)
	assert.JSONEq(t, `{"error":"Cannot GET /api/nope"}`, body)
}
