// Package settings serves the flat key/value site settings.
package settings

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

const (
	// Path is the path of the settings API.
	Path = handler.APIPath + "/settings"

	resource = "settings"
)

// updateRequest is the body of a settings update.
type updateRequest struct {
	Password auth.Secret                   `json:"password"`
	Settings map[string]handler.FlexString `json:"settings"`
}

// Service is the settings handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	db    *gorm.DB
	guard *auth.Guard
}

// Handler is the settings handler.
var Handler = Service{}

// Init initializes the settings handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard *auth.Guard) error {
	if app == nil || cfg == nil || db == nil || guard == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.guard = guard

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, auth.RequireSecret(guard), s.Post)
	})

	return nil
}

// Get returns all public settings as one flat object.
func (s *Service) Get(c *fiber.Ctx) error {
	values, err := setting.GetAll(s.db)
	if err != nil {
		return err
	}

	delete(values, setting.KeyAdminPassword)

	return c.JSON(values)
}

// Post stores every given key in one transaction.
// admin_password rotates the guard secret inside the same transaction.
func (s *Service) Post(c *fiber.Ctx) error {
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	values := make(map[string]string, len(req.Settings))
	for key, value := range req.Settings {
		values[key] = string(value)
	}

	secret, rotate := values[setting.KeyAdminPassword]
	delete(values, setting.KeyAdminPassword)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if rotate {
			if err := s.guard.RotateTx(tx, secret); err != nil {
				return err
			}
		}

		return setting.UpsertMany(tx, values)
	})

	switch {
	case errors.Is(err, auth.ErrEmptySecret):
		return handler.JSONError(c, fiber.StatusBadRequest, "admin_password can not be empty")
	case errors.Is(err, setting.ErrSettingKeyEmpty):
		return handler.JSONError(c, fiber.StatusBadRequest, "setting key can not be empty")
	case err != nil:
		return err
	}

	handler.ContentWrites.WithLabelValues(resource, "update").Inc()

	log.Info().Int("keys", len(values)).Bool("secret_rotated", rotate).Msg("settings updated")

	return handler.Success(c)
}
