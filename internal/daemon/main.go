// Package daemon wires the database, the write guard and the web service together.
package daemon

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/interior-site/interior-site/internal/auth"
	"github.com/interior-site/interior-site/internal/config"
	"github.com/interior-site/interior-site/internal/db/engine"
	"github.com/interior-site/interior-site/internal/web"
)

// ErrConfigNil is returned by New without a configuration.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	guard      *auth.Guard
	webService *web.Service
}

// Start serves http on Webserver.Port until SIGINT or SIGTERM, then closes the database.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	err := d.webService.Start(addr)

	if cerr := d.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("failed to close database")
	}

	return err
}

// Close releases the database connection.
func (d *Daemon) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// Web returns the web service.
func (d *Daemon) Web() *web.Service {
	return d.webService
}

// New opens and migrates the database, seeds it and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	db, err := engine.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err = engine.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	guard := auth.NewGuard(db)
	guard.Params = auth.ParamsFromConfig(cfg.Admin)

	if err = seed(cfg, db, guard); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	webService, err := web.New(cfg, db, guard)
	if err != nil {
		return nil, err
	}

	return &Daemon{
		cfg:        cfg,
		db:         db,
		guard:      guard,
		webService: webService,
	}, nil
}
