// Package rayid tags every request with a unique ID.
package rayid

import (
	"datadiff/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ID on requests and responses.
const Header = "X-Ray-ID"

// New returns a middleware that reuses a well formed incoming X-Ray-ID or generates one,
// stores it in Locals under logger.RayIDKey and echoes it in the response.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}

// FromContext returns the ID of the current request, or "".
func FromContext(c *fiber.Ctx) string {
	id, _ := c.Locals(logger.RayIDKey).(string)
	return id
}
