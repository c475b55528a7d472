package stocktake

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp() *fiber.App {
	app := fiber.New()
	feature := NewFeature(NewMemoryStaging(), nil, zap.NewNop())
	feature.Load(app)
	return app
}

func TestHandler_UploadCounts(t *testing.T) {
	app := setupApp()

	req := httptest.NewRequest("POST", "/stocktake/s1/counts", strings.NewReader(countsFixture))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(2), body["count"])
	assert.NotContains(t, body, "warning")
}

func TestHandler_UploadCountsEmptyWarns(t *testing.T) {
	app := setupApp()

	req := httptest.NewRequest("POST", "/stocktake/s1/counts", strings.NewReader(",,,\n,,,\n,,,\n"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(0), body["count"])
	assert.Contains(t, body, "warning")
}

func TestHandler_VarianceFlow(t *testing.T) {
	app := setupApp()

	for path, fixture := range map[string]string{
		"/stocktake/s1/counts":  countsFixture,
		"/stocktake/s1/journal": journalFixture,
	} {
		req := httptest.NewRequest("POST", path, strings.NewReader(fixture))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/stocktake/s1/variance", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "ABC123", rows[0]["itemCode"])
	assert.Equal(t, float64(-2), rows[0]["variance"])
}

func TestHandler_VarianceWithoutCounts(t *testing.T) {
	app := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/stocktake/ghost/variance", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandler_ClearSession(t *testing.T) {
	app := setupApp()

	req := httptest.NewRequest("POST", "/stocktake/s1/counts", strings.NewReader(countsFixture))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/stocktake/s1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/stocktake/s1/variance", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
