package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"stocktake-manager/feature/catalog/models"
	"stocktake-manager/feature/stocktake/variance"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service provides master-data lookups over the stock catalog and the
// write-back of counted quantities. It implements variance.Catalog.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Get returns the catalog item for a code, or nil when unknown.
func (s *Service) Get(ctx context.Context, code string) (*models.StockItem, error) {
	var item models.StockItem
	err := s.db.WithContext(ctx).First(&item, "code = ?", strings.ToUpper(strings.TrimSpace(code))).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// BookQuantity implements variance.Catalog.
func (s *Service) BookQuantity(code string) (float64, bool) {
	item := s.lookup(code)
	if item == nil {
		return 0, false
	}
	return item.QtyOnHand, true
}

// UnitPrice implements variance.Catalog.
func (s *Service) UnitPrice(code string) (float64, bool) {
	item := s.lookup(code)
	if item == nil {
		return 0, false
	}
	return item.UnitPrice, true
}

// Name implements variance.Catalog.
func (s *Service) Name(code string) (string, bool) {
	item := s.lookup(code)
	if item == nil {
		return "", false
	}
	return item.Name, true
}

// lookupTimeout bounds per-code catalog queries; the variance.Catalog
// interface carries no request context.
const lookupTimeout = 5 * time.Second

// lookup fetches a catalog row, treating database errors as "unknown code"
// so a flaky catalog degrades variance rows to missing instead of failing
// the whole report.
func (s *Service) lookup(code string) *models.StockItem {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	item, err := s.Get(ctx, code)
	if err != nil {
		s.logger.Warn("Catalog lookup failed", zap.String("code", code), zap.Error(err))
		return nil
	}
	return item
}

// ApplyCounts writes each non-missing variance row's counted quantity back
// as the new on-hand stock. It returns how many catalog rows were updated;
// codes unknown to the catalog are skipped, not created.
func (s *Service) ApplyCounts(ctx context.Context, rows []variance.Row) (int, error) {
	updated := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if row.Missing {
				continue
			}
			res := tx.Model(&models.StockItem{}).
				Where("code = ?", row.ItemCode).
				Update("qty_on_hand", row.Counted)
			if res.Error != nil {
				return res.Error
			}
			updated += int(res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
