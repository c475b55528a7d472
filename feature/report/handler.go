package report

import (
	"stocktake-manager/core/logger"
	"stocktake-manager/feature/stocktake"
	"stocktake-manager/feature/stocktake/variance"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves variance reports as downloadable CSV files.
type Handler struct {
	stocktake *stocktake.Service
	logger    *zap.Logger
}

// NewHandler creates a new report handler.
func NewHandler(stocktakeService *stocktake.Service, logger *zap.Logger) *Handler {
	return &Handler{stocktake: stocktakeService, logger: logger}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/report")
	group.Get("/:session/variance.csv", h.HandleVarianceCSV)
	group.Get("/:session/bins.csv", h.HandleBinCSV)
}

// HandleVarianceCSV downloads the session's variance report as CSV.
// @Summary Download Variance CSV
// @Description Computes the session's variance report and returns it as a CSV attachment, one line per item code.
// @Tags report
// @Produce text/csv
// @Param session path string true "Stock take session identifier"
// @Success 200 {string} string "CSV document"
// @Failure 404 {object} map[string]string "No staged counts"
// @Router /report/{session}/variance.csv [get]
func (h *Handler) HandleVarianceCSV(c *fiber.Ctx) error {
	return h.serve(c, "variance", RenderVarianceCSV)
}

// HandleBinCSV downloads the session's variance report grouped by bin.
// @Summary Download Bin Walk CSV
// @Description Computes the session's variance report and returns it grouped by bin location, one line per (bin, item) pair.
// @Tags report
// @Produce text/csv
// @Param session path string true "Stock take session identifier"
// @Success 200 {string} string "CSV document"
// @Failure 404 {object} map[string]string "No staged counts"
// @Router /report/{session}/bins.csv [get]
func (h *Handler) HandleBinCSV(c *fiber.Ctx) error {
	return h.serve(c, "bins", RenderBinCSV)
}

func (h *Handler) serve(c *fiber.Ctx, name string, render func([]variance.Row) []byte) error {
	l := logger.WithRayID(h.logger, c)
	session := c.Params("session")

	rows, err := h.stocktake.Variance(c.Context(), session)
	if err != nil {
		l.Warn("Report unavailable", zap.String("session", session), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+session+`-`+name+`.csv"`)
	return c.Send(render(rows))
}
