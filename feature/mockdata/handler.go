package mockdata

import (
	"datadiff/core/failure"
	"datadiff/core/logger"
	"datadiff/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for mock data.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the test generator routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/test-generator")
	group.Post("/generate", h.HandleGenerate)
	group.Post("/download/:format", h.HandleDownload)
}

func parseRequest(c *fiber.Ctx) (Request, error) {
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return req, failure.Wrap(failure.KindInvalidInput, err, "invalid request body")
	}
	return req, nil
}

// HandleGenerate returns generated rows as JSON.
// @Summary Generate Mock Data
// @Description Generates rowCount rows (1 to 1000, default 10) following the field schema.
// @Tags test-generator
// @Accept json
// @Produce json
// @Param request body Request true "Field schema"
// @Success 200 {array} map[string]interface{} "Rows"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/test-generator/generate [post]
func (h *Handler) HandleGenerate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	req, err := parseRequest(c)
	if err != nil {
		return server.SendError(c, err)
	}

	ds, err := h.service.Generate(req)
	if err != nil {
		l.Warn("Mock data generation rejected", zap.Error(err))
		return server.SendError(c, err)
	}

	return c.JSON(ds.Rows)
}

// HandleDownload returns generated rows as a file.
// @Summary Download Mock Data
// @Description Generates rows following the field schema and returns them as a csv, json or excel attachment.
// @Tags test-generator
// @Accept json
// @Produce octet-stream
// @Param format path string true "csv, json or excel"
// @Param request body Request true "Field schema"
// @Success 200 {file} file "Attachment"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/test-generator/download/{format} [post]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	format, err := ParseFormat(c.Params("format"))
	if err != nil {
		return server.SendError(c, err)
	}

	req, err := parseRequest(c)
	if err != nil {
		return server.SendError(c, err)
	}

	file, err := h.service.Download(c.Context(), req, format)
	if err != nil {
		l.Error("Mock data download failed", zap.Error(err))
		return server.SendError(c, err)
	}

	c.Attachment(file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Data)
}
