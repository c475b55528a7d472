package report

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"stocktake-manager/feature/stocktake"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()

	svc := stocktake.NewService(stocktake.NewMemoryStaging(), nil, zap.NewNop())
	stocktake.NewHandler(svc, zap.NewNop()).RegisterRoutes(app)
	NewHandler(svc, zap.NewNop()).RegisterRoutes(app)
	return app
}

func TestHandler_VarianceCSV(t *testing.T) {
	app := setupApp(t)

	counts := "Barcode,Quantity,Bin Location\nABC123,8,A-01\n"
	journal := "Item Code,On Hand,Cost Price\nABC123,10,5\n"

	resp, err := app.Test(httptest.NewRequest("POST", "/stocktake/s1/counts", strings.NewReader(counts)))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/stocktake/s1/journal", strings.NewReader(journal)))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/report/s1/variance.csv", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "s1-variance.csv")

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), "ABC123,,10,8,-2,5,-10,A-01,")
}

func TestHandler_VarianceCSVWithoutCounts(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/report/ghost/variance.csv", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
