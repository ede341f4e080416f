package filediff

import (
	"datadiff/core/diff"
	"datadiff/core/failure"
	"datadiff/core/logger"
	"datadiff/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for file comparison.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = diff.Report{}
	return &Handler{service: service}
}

// RegisterRoutes registers the file difference routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/file-difference")
	group.Post("/upload", h.HandleUpload)
	group.Post("/preview", h.HandlePreview)
	group.Get("/health", h.HandleHealth)
}

// HandleUpload compares two uploaded files.
// @Summary Compare Files
// @Description Compares sourceFile with targetFile (csv, xlsx or xml, both of the same type) and returns a cell level report.
// @Tags file-difference
// @Accept multipart/form-data
// @Produce json
// @Param sourceFile formData file true "Source file"
// @Param targetFile formData file true "Target file"
// @Success 200 {object} diff.Report "Difference Report"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Unreadable file"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/file-difference/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	source, srcErr := c.FormFile("sourceFile")
	target, tgtErr := c.FormFile("targetFile")
	if srcErr != nil || tgtErr != nil {
		return server.SendError(c, failure.New(failure.KindInvalidInput, "both source and target files are required"))
	}

	l.Info("Comparing files", zap.String("source", source.Filename), zap.String("target", target.Filename))

	report, err := h.service.Compare(c.Context(), FromFileHeader(source), FromFileHeader(target))
	if err != nil {
		l.Error("Comparison failed", zap.Error(err))
		return server.SendError(c, err)
	}

	return c.JSON(report)
}

// HandlePreview returns the first rows of an uploaded file.
// @Summary Preview File
// @Description Decodes file and returns its columns and first rows.
// @Tags file-difference
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to preview"
// @Success 200 {object} Preview "Preview"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Unreadable file"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/file-difference/preview [post]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	file, err := c.FormFile("file")
	if err != nil {
		return server.SendError(c, failure.New(failure.KindInvalidInput, "no file provided"))
	}

	preview, err := h.service.Preview(c.Context(), FromFileHeader(file))
	if err != nil {
		l.Error("Preview failed", zap.String("file", file.Filename), zap.Error(err))
		return server.SendError(c, err)
	}

	return c.JSON(preview)
}

// HandleHealth reports that the feature is up.
// @Summary File Difference Health
// @Tags file-difference
// @Produce json
// @Success 200 {object} map[string]string "Status"
// @Router /api/file-difference/health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
