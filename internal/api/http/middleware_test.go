package http

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tostadas-valencia/case-service/internal/observability"
	apperrors "github.com/tostadas-valencia/case-service/pkg/util"
)

func TestRegisterMiddlewares_RendersNotFoundBody(t *testing.T) {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), nil)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("Ningun recurso asociado")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 404, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Ningun recurso asociado", body["message"])
}

// The request counter must carry the status the client actually received,
// which means the logger has to run outside the error renderer.
func TestRegisterMiddlewares_CountsRenderedStatus(t *testing.T) {
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("Ningun recurso asociado")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 404, resp.StatusCode)

	expected := strings.NewReader(`
# HELP case_service_http_requests_total HTTP requests by path, method and status code.
# TYPE case_service_http_requests_total counter
case_service_http_requests_total{method="GET",path="/boom",status="404"} 1
`)
	assert.NoError(t, testutil.GatherAndCompare(metrics.Registry(), expected, "case_service_http_requests_total"))
}
