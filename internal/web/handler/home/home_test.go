package home

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interior-site/interior-site/internal/db/controller/setting"
	"github.com/interior-site/interior-site/internal/web/handler/handlertest"
)

// mapViews is a minimal Fiber Views engine used for tests.
// It writes the template name, the title, the path and the sorted setting keys.
type mapViews struct{}

func (mapViews) Load() error { return nil }

func (mapViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	m, ok := data.(fiber.Map)
	if !ok {
		return fmt.Errorf("unexpected data %T", data)
	}

	values, _ := m["Settings"].(map[string]string)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	_, err := fmt.Fprintf(w, "%s|%s|%s|%s", name, m["Title"], m["Path"], strings.Join(keys, ","))

	return err
}

func TestGet(t *testing.T) {
	env := handlertest.New(t, mapViews{})
	env.Init(t, &Service{})

	require.NoError(t, setting.UpsertMany(env.DB, map[string]string{
		setting.KeyPhone:         "010-1234-5678",
		setting.KeyAboutName:     "김태일",
		setting.KeyAdminPassword: "legacy",
	}))

	for _, p := range Paths {
		t.Run(p, func(t *testing.T) {
			code, body := env.Do(t, http.MethodGet, p, "")
			assert.Equal(t, http.StatusOK, code)
			assert.Equal(t, "index|Test Studio|"+p+"|about_name,phone", body)
		})
	}
}

func TestUnknownPath(t *testing.T) {
	env := handlertest.New(t, mapViews{})
	env.Init(t, &Service{})

	code, _ := env.Do(t, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, code)
}
