// Package portfolio serves the portfolio collection.
package portfolio

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/interior-site/interior-site/internal/auth"
	"github.com/interior-site/interior-site/internal/config"
	controller "github.com/interior-site/interior-site/internal/db/controller/portfolio"
	"github.com/interior-site/interior-site/internal/db/models"
	"github.com/interior-site/interior-site/internal/web/handler"
)

const (
	// Path is the path of the portfolio API.
	Path = handler.APIPath + "/portfolio"

	resource = "portfolio"
)

// Item is the portfolio item as sent by the admin client.
type Item struct {
	Category handler.FlexString   `json:"category" validate:"category"`
	Title    handler.FlexString   `json:"title"`
	Location handler.FlexString   `json:"location"`
	Size     handler.FlexString   `json:"size"`
	Scope    handler.FlexString   `json:"scope"`
	Intent   handler.FlexString   `json:"intent"`
	Points   handler.FlexString   `json:"points"`
	Images   []handler.FlexString `json:"images"`
}

type createRequest struct {
	Password auth.Secret `json:"password"`
	Item     Item        `json:"item"`
}

// Service is the portfolio handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the portfolio handler.
var Handler = Service{}

// Init initializes the portfolio handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard *auth.Guard) error {
	if app == nil || cfg == nil || db == nil || guard == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	if err := s.validator.RegisterValidation("category", validCategory); err != nil {
		return err
	}

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, auth.RequireSecret(guard), s.Post)
		router.Delete(handler.RouterIDPath, auth.RequireSecret(guard), s.Delete)
	})

	return nil
}

func validCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).Valid()
}

// Get lists portfolio items, newest first, optionally filtered by ?category=.
func (s *Service) Get(c *fiber.Ctx) error {
	items, err := controller.List(s.db, models.Category(c.Query("category")))
	if err != nil {
		return err
	}

	return c.JSON(items)
}

// Post creates a portfolio item.
func (s *Service) Post(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := s.validator.Struct(req.Item); err != nil {
		log.Debug().Err(err).Str("category", string(req.Item.Category)).Msg("rejected portfolio item")
		return handler.JSONError(c, fiber.StatusBadRequest, handler.ValidationMessage(err))
	}

	row := models.PortfolioItem{
		Category: models.Category(req.Item.Category),
		Title:    string(req.Item.Title),
		Location: string(req.Item.Location),
		Size:     string(req.Item.Size),
		Scope:    string(req.Item.Scope),
		Intent:   string(req.Item.Intent),
		Points:   string(req.Item.Points),
		Images:   datatypes.JSONSlice[string](handler.FlexStrings(req.Item.Images)),
	}

	if err := controller.Create(s.db, &row); err != nil {
		return err
	}

	handler.ContentWrites.WithLabelValues(resource, "create").Inc()

	log.Info().Uint64("id", row.ID).Str("category", string(row.Category)).Msg("portfolio item created")

	return handler.Success(c, row.ID)
}

// Delete removes a portfolio item. Unknown ids succeed without a change.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, ok := handler.ParseID(c)
	if !ok {
		log.Debug().Str("id", c.Params("id")).Msg("delete of a non numeric portfolio id")
		return handler.Success(c)
	}

	if err := controller.Delete(s.db, id); err != nil {
		return err
	}

	handler.ContentWrites.WithLabelValues(resource, "delete").Inc()

	log.Info().Uint64("id", id).Msg("portfolio item deleted")

	return handler.Success(c)
}
