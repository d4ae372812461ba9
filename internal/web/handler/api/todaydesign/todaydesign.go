// Package todaydesign serves the design proposals ("today's design").
package todaydesign

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/interior-site/interior-site/internal/auth"
	"github.com/interior-site/interior-site/internal/config"
	"github.com/interior-site/interior-site/internal/db/controller/proposal"
	"github.com/interior-site/interior-site/internal/db/models"
	"github.com/interior-site/interior-site/internal/web/handler"
)

const (
	// Path is the path of the design proposal API.
	Path = handler.APIPath + "/today-design"

	resource = "today_design"
)

// Item is the proposal as sent by the admin client.
type Item struct {
	Title     handler.FlexString `json:"title"`
	BeforeImg handler.FlexString `json:"before_img"`
	AfterImg  handler.FlexString `json:"after_img"`
	Material  handler.FlexString `json:"material"`
	Intent    handler.FlexString `json:"intent"`
}

type createRequest struct {
	Password auth.Secret `json:"password"`
	Item     Item        `json:"item"`
}

// Service is the design proposal handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the design proposal handler.
var Handler = Service{}

// Init initializes the design proposal handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard *auth.Guard) error {
	if app == nil || cfg == nil || db == nil || guard == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, auth.RequireSecret(guard), s.Post)
		router.Delete(handler.RouterIDPath, auth.RequireSecret(guard), s.Delete)
	})

	return nil
}

// Get lists all proposals, newest first.
func (s *Service) Get(c *fiber.Ctx) error {
	items, err := proposal.List(s.db)
	if err != nil {
		return err
	}

	return c.JSON(items)
}

// Post creates a proposal. Missing fields are stored empty.
func (s *Service) Post(c *fiber.Ctx) error {
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	row := models.DesignProposal{
		Title:     string(req.Item.Title),
		BeforeImg: string(req.Item.BeforeImg),
		AfterImg:  string(req.Item.AfterImg),
		Material:  string(req.Item.Material),
		Intent:    string(req.Item.Intent),
	}

	if err := proposal.Create(s.db, &row); err != nil {
		return err
	}

	handler.ContentWrites.WithLabelValues(resource, "create").Inc()

	log.Info().Uint64("id", row.ID).Msg("design proposal created")

	return handler.Success(c, row.ID)
}

// Delete removes a proposal. Unknown ids succeed without a change.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, ok := handler.ParseID(c)
	if !ok {
		return handler.Success(c)
	}

	if err := proposal.Delete(s.db, id); err != nil {
		return err
	}

	handler.ContentWrites.WithLabelValues(resource, "delete").Inc()

	log.Info().Uint64("id", id).Msg("design proposal deleted")

	return handler.Success(c)
}
