// Package home renders the HTML shell the single page client boots from.
package home

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/interior-site/interior-site/internal/auth"
	"github.com/interior-site/interior-site/internal/config"
	"github.com/interior-site/interior-site/internal/db/controller/setting"
	"github.com/interior-site/interior-site/internal/web/handler"
)

// Template is the name of the shell template.
const Template = "index"

// Paths are the client side routes answered with the shell.
var Paths = []string{
	handler.RouterRootPath,
	"/portfolio",
	"/today-design",
	"/about",
	"/admin",
}

// Service is the home handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the home handler.
var Handler = Service{}

// Init initializes the home handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard *auth.Guard) error {
	if app == nil || cfg == nil || db == nil || guard == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	for _, p := range Paths {
		app.Get(p, s.Get)
	}

	return nil
}

// Get renders the shell with the site title and the public settings.
// The page still renders when the settings can not be loaded.
func (s *Service) Get(c *fiber.Ctx) error {
	values, err := setting.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings for page shell")
		values = map[string]string{}
	}

	delete(values, setting.KeyAdminPassword)

	return c.Render(Template, fiber.Map{
		"Title":    s.cfg.Title,
		"Path":     c.Path(),
		"Settings": values,
	})
}
