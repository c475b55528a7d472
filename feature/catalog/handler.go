package catalog

import (
	"stocktake-manager/core/logger"
	"stocktake-manager/feature/stocktake/variance"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the stock catalog.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/:code", h.HandleGetItem)
	group.Post("/apply", h.HandleApplyCounts)
}

// applyRequest is the body of POST /catalog/apply.
type applyRequest struct {
	// Rows are the variance rows to write back.
	Rows []variance.Row `json:"rows"`
	// Confirm must be true; applying counts overwrites on-hand stock.
	Confirm bool `json:"confirm"`
}

// HandleGetItem returns a single catalog item.
// @Summary Get Catalog Item
// @Description Look up a stock item by its code.
// @Tags catalog
// @Accept json
// @Produce json
// @Param code path string true "Item code"
// @Success 200 {object} models.StockItem "Stock Item"
// @Failure 404 {object} map[string]string "Unknown code"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/{code} [get]
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	code := c.Params("code")

	item, err := h.service.Get(c.Context(), code)
	if err != nil {
		l.Error("Catalog lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown item code"})
	}
	return c.JSON(item)
}

// HandleApplyCounts writes counted quantities back as new on-hand stock.
// @Summary Apply Counted Quantities
// @Description Overwrites on-hand quantities with counted values from a variance report. Requires confirm=true.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body applyRequest true "Variance rows and confirmation"
// @Success 200 {object} map[string]interface{} "Update summary"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/apply [post]
func (h *Handler) HandleApplyCounts(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req applyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if !req.Confirm {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "apply overwrites on-hand stock; set confirm=true to proceed",
		})
	}

	updated, err := h.service.ApplyCounts(c.Context(), req.Rows)
	if err != nil {
		l.Error("Apply counts failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Applied counted quantities", zap.Int("updated", updated), zap.Int("rows", len(req.Rows)))
	return c.JSON(fiber.Map{
		"status":  "applied",
		"updated": updated,
	})
}
