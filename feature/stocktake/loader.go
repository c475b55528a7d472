package stocktake

import (
	"stocktake-manager/feature/stocktake/variance"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the stocktake service into the application loader.
type Feature struct {
	logger *zap.Logger

	// Service is exposed so sibling features (report) can reuse the
	// session pipeline.
	Service *Service
}

// NewFeature creates the stocktake feature. catalog may be nil.
func NewFeature(staging Staging, catalog variance.Catalog, logger *zap.Logger) *Feature {
	return &Feature{
		logger:  logger,
		Service: NewService(staging, catalog, logger),
	}
}

// Name implements loader.Feature.
func (f *Feature) Name() string {
	return "stocktake"
}

// IsEnabled implements loader.Feature.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load implements loader.Feature.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.Service, f.logger).RegisterRoutes(app)
	return nil
}
