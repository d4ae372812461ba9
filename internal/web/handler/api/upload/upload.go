// Package upload stores uploaded images under the configured upload directory.
package upload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/interior-site/interior-site/internal/auth"
	"github.com/interior-site/interior-site/internal/config"
	"github.com/interior-site/interior-site/internal/uniuri"
	"github.com/interior-site/interior-site/internal/web/handler"
)

const (
	// Path is the path of the upload API.
	Path = handler.APIPath + "/upload"

	// FormField is the multipart field holding the file.
	FormField = "image"

	randomDigits = 9
	dirMode      = 0o755
)

// Response is the body of a successful upload.
type Response struct {
	URL string `json:"url"`
}

// Service is the upload handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the upload handler.
var Handler = Service{}

// Init initializes the upload handler and creates the upload directory.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, guard *auth.Guard) error {
	if app == nil || cfg == nil || db == nil || guard == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg

	if err := os.MkdirAll(cfg.Upload.Dir, dirMode); err != nil {
		return fmt.Errorf("failed to create upload dir: %w", err)
	}

	app.Post(Path, s.Post)

	return nil
}

// Post stores the file of the "image" field and returns its public URL.
func (s *Service) Post(c *fiber.Ctx) error {
	file, err := c.FormFile(FormField)
	if err != nil {
		log.Debug().Err(err).Msg("upload without file")
		return handler.JSONError(c, fiber.StatusBadRequest, "No file uploaded")
	}

	name := FileName(time.Now(), file.Filename)

	if err := c.SaveFile(file, filepath.Join(s.cfg.Upload.Dir, name)); err != nil {
		return fmt.Errorf("failed to save upload: %w", err)
	}

	handler.ContentWrites.WithLabelValues("upload", "create").Inc()

	log.Info().Str("file", name).Int64("size", file.Size).Msg("file uploaded")

	return c.JSON(Response{URL: strings.TrimSuffix(s.cfg.Upload.URLPrefix, "/") + "/" + name})
}

// FileName builds the stored name: upload time in unix milliseconds, a random
// number and the extension of the original name.
func FileName(now time.Time, original string) string {
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), uniuri.Digits(randomDigits), filepath.Ext(filepath.Base(original)))
}
