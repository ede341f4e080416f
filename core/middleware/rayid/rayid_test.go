package rayid_test

import (
	"net/http/httptest"
	"testing"

	"datadiff/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(seen *string) *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		*seen = rayid.FromContext(c)
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestNew(t *testing.T) {
	t.Run("Generates", func(t *testing.T) {
		var seen string
		resp, err := newApp(&seen).Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		id := resp.Header.Get(rayid.Header)
		_, err = uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, seen)
	})

	t.Run("ReusesIncoming", func(t *testing.T) {
		var seen string
		incoming := uuid.NewString()
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.Header, incoming)

		resp, err := newApp(&seen).Test(req)
		require.NoError(t, err)
		assert.Equal(t, incoming, resp.Header.Get(rayid.Header))
		assert.Equal(t, incoming, seen)
	})

	t.Run("ReplacesMalformed", func(t *testing.T) {
		var seen string
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(rayid.Header, "<script>")

		resp, err := newApp(&seen).Test(req)
		require.NoError(t, err)
		assert.NotEqual(t, "<script>", resp.Header.Get(rayid.Header))
	})
}
