// Package dbtest provides a migrated in-memory database for tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/interior-site/interior-site/internal/config"
	"github.com/interior-site/interior-site/internal/db/engine"
)

// Open returns a fresh, migrated in-memory sqlite database closed at test cleanup.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := engine.Open(Config())
	require.NoError(t, err, "failed to create test database")
	require.NoError(t, engine.Migrate(db), "failed to migrate test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// Config returns a configuration pointing at an in-memory sqlite database.
func Config() *config.Config {
	return &config.Config{
		DB: config.DB{
			GormEngine: config.EngineSQLite,
			Path:       ":memory:",
		},
	}
}

