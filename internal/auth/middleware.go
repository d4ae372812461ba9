package auth

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Secret is the shared secret as sent in a request body.
// JSON values other than strings decode to the empty secret, which never authorizes.
type Secret string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Secret) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil //nolint:nilerr
	}

	*s = Secret(v)

	return nil
}

// secretBody is the part of every mutating request body the guard reads.
type secretBody struct {
	Password Secret `json:"password" form:"password"`
}

// RequireSecret creates Fiber middleware that requires the shared secret in the request body.
//
// A request without a body or with an unsupported content type carries no secret and is
// rejected with 401. A body that fails to decode is returned as an error to the app's
// error handler.
func RequireSecret(guard *Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body secretBody

		if len(c.Body()) > 0 {
			err := c.BodyParser(&body)
			switch {
			case errors.Is(err, fiber.ErrUnprocessableEntity):
				log.Debug().Str("path", c.Path()).Msg("no secret in request body")
			case err != nil:
				return err
			}
		}

		if !guard.Authorize(string(body.Password)) {
			log.Warn().Str("method", c.Method()).Str("path", c.Path()).Str("ip", c.IP()).
				Msg("rejected write with wrong secret")

			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}

		return c.Next()
	}
}
