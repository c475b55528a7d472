package catalog

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the catalog service into the application loader.
type Feature struct {
	db     *gorm.DB
	logger *zap.Logger

	// Service is exposed so other features can use the catalog as an
	// injected master-data lookup.
	Service *Service
}

// NewFeature creates the catalog feature. db may be nil, in which case the
// feature stays disabled and variance reports run without master data.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	f := &Feature{db: db, logger: logger}
	if db != nil {
		f.Service = NewService(db, logger)
	}
	return f
}

// Name implements loader.Feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled implements loader.Feature.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load implements loader.Feature.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.Service, f.logger).RegisterRoutes(app)
	return nil
}
