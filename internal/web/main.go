// Package web builds the fiber application: JSON API, uploaded files, page shell,
// health and metrics endpoints.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/interior-site/interior-site/internal/auth"
	"github.com/interior-site/interior-site/internal/config"
	fiberlogger "github.com/interior-site/interior-site/internal/logger/adapter/fiber"
	"github.com/interior-site/interior-site/internal/web/handler"
	"github.com/interior-site/interior-site/internal/web/handler/api/portfolio"
	"github.com/interior-site/interior-site/internal/web/handler/api/settings"
	"github.com/interior-site/interior-site/internal/web/handler/api/todaydesign"
	"github.com/interior-site/interior-site/internal/web/handler/api/upload"
	"github.com/interior-site/interior-site/internal/web/handler/home"
)

const (
	// CheckAlivePath answers 200 while the service accepts traffic.
	CheckAlivePath = "/healthz"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"

	megabyte = 1024 * 1024
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	guard        *auth.Guard
}

// Start starts the web service on the given address and blocks until it stops.
func (s *Service) Start(addr string) error {
	doneFiber := make(chan error, 1)

	go func() {
		err := s.App.Listen(addr)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}

		doneFiber <- err
	}()

	return <-doneFiber
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the service down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown reports not alive for Webserver.ShutDownTime seconds, then stops the http server.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this instance from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// Alive reports whether the service accepts traffic.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, guard *auth.Guard) (*Service, error) {
	if cfg == nil || db == nil || guard == nil {
		return nil, errors.New(handler.ErrNilACDFatalLogMsg)
	}

	httpFS := http.FS(subFS{embeddedTemplates, "templates"})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "interior-site",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			BodyLimit:      cfg.Webserver.BodyLimitMB * megabyte,
			ErrorHandler:   handler.ErrorHandler,
			Views:          templateEngine,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	service := &Service{
		App:          app,
		cfg:          cfg,
		fastShutDown: cfg.DevMode,
		db:           db,
		guard:        guard,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(cfg.Upload.URLPrefix, filesystem.New(filesystem.Config{
		Root: http.Dir(cfg.Upload.Dir),
	}))
	app.Use("/static", filesystem.New(staticConfig(cfg)))

	services := []handler.Service{
		&settings.Handler,
		&portfolio.Handler,
		&todaydesign.Handler,
		&upload.Handler,
		&home.Handler,
	}

	for _, h := range services {
		if err := h.Init(app, cfg, db, guard); err != nil {
			return nil, err
		}
	}

	return service, nil
}

func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}

// staticConfig serves Webserver.DistDir when set, the embedded assets otherwise.
func staticConfig(cfg *config.Config) filesystem.Config {
	if cfg.Webserver.DistDir != "" {
		return filesystem.Config{Root: http.Dir(cfg.Webserver.DistDir)}
	}

	return filesystem.Config{
		Root:       http.FS(embeddedStaticFiles),
		PathPrefix: "static",
	}
}
