package filediff

import (
	"datadiff/core/diff"
	"datadiff/core/formats"
	"datadiff/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new file difference feature.
func NewFeature(store storage.Store, registry *formats.Registry, opts diff.Options, logger *zap.Logger) *Feature {
	svc := NewService(store, registry, opts, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "file-difference"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
