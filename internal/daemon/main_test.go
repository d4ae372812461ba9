package daemon

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interior-site/interior-site/internal/config"
	"github.com/interior-site/interior-site/internal/db/controller/portfolio"
	"github.com/interior-site/interior-site/internal/db/controller/proposal"
	"github.com/interior-site/interior-site/internal/db/controller/setting"
	"github.com/interior-site/interior-site/internal/db/engine"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()

	return &config.Config{
		Title: "Test Studio",
		DB: config.DB{
			GormEngine: config.EngineSQLite,
			Path:       filepath.Join(dir, "site.db"),
		},
		Webserver: config.Webserver{
			Port:         3000,
			URL:          "http://localhost:3000",
			ShutDownTime: 0,
			BodyLimitMB:  1,
		},
		Upload: config.Upload{
			Dir:       filepath.Join(dir, "uploads"),
			URLPrefix: "/uploads",
		},
		Admin: config.Admin{DefaultSecret: "1111"},
	}
}

func newTestDaemon(t *testing.T, cfg *config.Config) *Daemon {
	t.Helper()

	d, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	return d
}

func TestNewNilConfig(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrConfigNil)
}

func TestSeedFreshStore(t *testing.T) {
	d := newTestDaemon(t, newTestConfig(t))

	items, err := portfolio.List(d.db, "")
	require.NoError(t, err)
	require.Len(t, items, 3)

	titles := []string{items[0].Title, items[1].Title, items[2].Title}
	assert.ElementsMatch(t, []string{"수성구 범어동 래미안", "동성로 카페 테일러", "가창면 전원주택"}, titles)
	for _, item := range items {
		assert.Len(t, item.Images, 1)
		assert.True(t, item.Category.Valid())
	}

	proposals, err := proposal.List(d.db)
	require.NoError(t, err)
	require.Len(t, proposals, 1)
	assert.Equal(t, "낡은 벽돌 담장의 현대적 재해석", proposals[0].Title)

	values, err := setting.GetAll(d.db)
	require.NoError(t, err)
	assert.Equal(t, "010-1234-5678", values[setting.KeyPhone])
	assert.Equal(t, "김태일", values[setting.KeyAboutName])
	assert.Len(t, values, 6)
	assert.NotContains(t, values, setting.KeyAdminPassword)

	assert.True(t, d.guard.Authorize("1111"))
	assert.True(t, d.Web().Alive())
}

func TestSeedRestartKeepsDeletions(t *testing.T) {
	cfg := newTestConfig(t)

	d, err := New(cfg)
	require.NoError(t, err)

	items, err := portfolio.List(d.db, "")
	require.NoError(t, err)
	for _, item := range items {
		require.NoError(t, portfolio.Delete(d.db, item.ID))
	}

	require.NoError(t, setting.UpsertMany(d.db, map[string]string{setting.KeyPhone: "02-000-0000"}))
	require.NoError(t, setting.Delete(d.db, setting.KeyAboutBio))
	require.NoError(t, d.guard.Rotate("rotated"))
	require.NoError(t, d.Close())

	d = newTestDaemon(t, cfg)

	count, err := portfolio.Count(d.db)
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = proposal.Count(d.db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	phone, err := setting.Get(d.db, setting.KeyPhone)
	require.NoError(t, err)
	assert.Equal(t, "02-000-0000", phone)

	_, err = setting.Get(d.db, setting.KeyAboutBio)
	require.NoError(t, err, "missing default keys are added again")

	assert.True(t, d.guard.Authorize("rotated"))
	assert.False(t, d.guard.Authorize("1111"))
}

func TestSeedAdoptsLegacySecret(t *testing.T) {
	cfg := newTestConfig(t)

	db, err := engine.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, engine.Migrate(db))
	require.NoError(t, setting.UpsertMany(db, map[string]string{setting.KeyAdminPassword: "legacy"}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	d := newTestDaemon(t, cfg)

	assert.True(t, d.guard.Authorize("legacy"))
	assert.False(t, d.guard.Authorize("1111"))

	_, err = setting.Get(d.db, setting.KeyAdminPassword)
	require.ErrorIs(t, err, setting.ErrSettingNotFound)
}
