package dates

import (
	"datadiff/core/failure"
	"datadiff/core/logger"
	"datadiff/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for date rewriting.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the date converter routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/date-converter")
	group.Post("/update", h.HandleUpdate)
}

// HandleUpdate rewrites the dates of an uploaded CSV.
// @Summary Update Dates
// @Description Replaces the first dd-mm-yyyy or dd/mm/yyyy date of every cell with the given date.
// @Tags date-converter
// @Accept multipart/form-data
// @Produce text/csv
// @Param file formData file true "CSV file"
// @Param date formData string true "New date (dd-mm-yyyy)"
// @Success 200 {file} file "Rewritten CSV"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Unreadable file"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/date-converter/update [post]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		return server.SendError(c, failure.New(failure.KindInvalidInput, "no file provided"))
	}
	date := c.FormValue("date")
	if date == "" {
		return server.SendError(c, failure.New(failure.KindInvalidInput, "no date provided"))
	}

	file, err := fh.Open()
	if err != nil {
		return server.SendError(c, err)
	}
	defer file.Close()

	result, err := h.service.Update(c.Context(), fh.Filename, file, date)
	if err != nil {
		l.Warn("Date update failed", zap.String("file", fh.Filename), zap.Error(err))
		return server.SendError(c, err)
	}

	c.Attachment(result.Name)
	c.Set(fiber.HeaderContentType, "text/csv")
	return c.Send(result.Data)
}
