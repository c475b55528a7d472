package report

import (
	"stocktake-manager/feature/stocktake"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the report endpoints into the application loader. It reuses
// the stocktake service's session pipeline rather than carrying its own.
type Feature struct {
	stocktake *stocktake.Service
	logger    *zap.Logger
}

// NewFeature creates the report feature on top of an existing stocktake
// service.
func NewFeature(stocktakeService *stocktake.Service, logger *zap.Logger) *Feature {
	return &Feature{stocktake: stocktakeService, logger: logger}
}

// Name implements loader.Feature.
func (f *Feature) Name() string {
	return "report"
}

// IsEnabled implements loader.Feature.
func (f *Feature) IsEnabled() bool {
	return f.stocktake != nil
}

// Load implements loader.Feature.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.stocktake, f.logger).RegisterRoutes(app)
	return nil
}
