package stocktake

import (
	"stocktake-manager/core/logger"
	"stocktake-manager/core/textenc"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for stock take sessions.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the stocktake routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/stocktake")
	group.Post("/:session/counts", h.HandleUploadCounts)
	group.Post("/:session/journal", h.HandleUploadJournal)
	group.Get("/:session/variance", h.HandleVariance)
	group.Delete("/:session", h.HandleClearSession)
}

// uploadText extracts the uploaded blob from a request: a multipart "file"
// part when present, otherwise the raw body. Either way the bytes run
// through BOM/UTF-16 tolerant decoding.
func uploadText(c *fiber.Ctx) (string, error) {
	if file, err := c.FormFile("file"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			return "", err
		}
		defer f.Close()
		return textenc.Decode(f)
	}
	return textenc.DecodeBytes(c.Body())
}

// HandleUploadCounts stages a count file for the session.
// @Summary Upload Count File
// @Description Parses and stages a delimited count export (tab/comma/semicolon/pipe, optionally quoted or headerless). Returns parsed entries and file metadata.
// @Tags stocktake
// @Accept plain
// @Produce json
// @Param session path string true "Stock take session identifier"
// @Param file formData file false "Count file (alternatively send the text as the request body)"
// @Success 200 {object} map[string]interface{} "Parse summary"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stocktake/{session}/counts [post]
func (h *Handler) HandleUploadCounts(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	session := c.Params("session")

	text, err := uploadText(c)
	if err != nil {
		l.Error("Failed to read count upload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable upload"})
	}

	parsed, err := h.service.StageCounts(c.Context(), session, text)
	if err != nil {
		l.Error("Failed to stage count blob", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	resp := fiber.Map{
		"meta":    parsed.Meta,
		"entries": parsed.Entries,
		"count":   len(parsed.Entries),
	}
	if len(parsed.Entries) == 0 {
		// Not an error by contract; the caller decides how loudly to warn.
		resp["warning"] = "no count entries could be parsed from the upload"
	}
	return c.JSON(resp)
}

// HandleUploadJournal stages a book/ledger file for the session.
// @Summary Upload Journal File
// @Description Parses and stages a ledger export carrying book quantities and cost prices.
// @Tags stocktake
// @Accept plain
// @Produce json
// @Param session path string true "Stock take session identifier"
// @Param file formData file false "Journal file (alternatively send the text as the request body)"
// @Success 200 {object} map[string]interface{} "Parse summary"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stocktake/{session}/journal [post]
func (h *Handler) HandleUploadJournal(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	session := c.Params("session")

	text, err := uploadText(c)
	if err != nil {
		l.Error("Failed to read journal upload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable upload"})
	}

	entries, err := h.service.StageJournal(c.Context(), session, text)
	if err != nil {
		l.Error("Failed to stage journal blob", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	resp := fiber.Map{
		"entries": entries,
		"count":   len(entries),
	}
	if len(entries) == 0 {
		resp["warning"] = "no journal entries could be parsed from the upload"
	}
	return c.JSON(resp)
}

// HandleVariance computes the variance report for a session.
// @Summary Compute Variance Report
// @Description Reconciles the session's staged counts against its journal and the catalog, returning one row per item code.
// @Tags stocktake
// @Accept json
// @Produce json
// @Param session path string true "Stock take session identifier"
// @Success 200 {array} variance.Row "Variance rows"
// @Failure 404 {object} map[string]string "No staged counts"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stocktake/{session}/variance [get]
func (h *Handler) HandleVariance(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	session := c.Params("session")

	rows, err := h.service.Variance(c.Context(), session)
	if err != nil {
		l.Warn("Variance computation failed", zap.String("session", session), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}

// HandleClearSession drops a session's staged blobs.
// @Summary Clear Session
// @Description Removes the staged count and journal blobs for a session.
// @Tags stocktake
// @Accept json
// @Produce json
// @Param session path string true "Stock take session identifier"
// @Success 200 {object} map[string]string "Cleared"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stocktake/{session} [delete]
func (h *Handler) HandleClearSession(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	session := c.Params("session")

	if err := h.service.Clear(c.Context(), session); err != nil {
		l.Error("Failed to clear session", zap.String("session", session), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "cleared"})
}
