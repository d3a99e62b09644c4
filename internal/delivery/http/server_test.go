package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/route-sequencing-service/internal/config"
	"github.com/route-sequencing-service/internal/delivery/http/handler"
	"github.com/route-sequencing-service/internal/domain"
	"github.com/route-sequencing-service/internal/pkg/metrics"
	"github.com/route-sequencing-service/internal/usecase/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRouteService struct {
	handler.RouteService
}

func (stubRouteService) OptimizeRoute(_ context.Context, req dto.OptimizeRouteRequest) (*dto.OptimizeRouteResponse, error) {
	if len(req.Locations) == 1 && req.Locations[0].ID == "boom" {
		panic("matrix dimension mismatch")
	}
	return dto.NewOptimizeRouteResponse(domain.LocationIDs(req.ToDomain()), domain.Itinerary{}), nil
}

type okChecker struct{}

func (okChecker) Health(context.Context) error { return nil }

func newTestServer(t *testing.T) *fiber.App {
	t.Helper()
	metrics.Register()

	cfg := &config.Config{Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, CORSOrigins: "http://localhost:3000"}}
	logger := zap.NewNop()

	s := NewServer(cfg, logger,
		handler.NewRouteHandler(stubRouteService{}, logger),
		handler.NewGeocodeHandler(nil, logger),
		handler.NewStatsHandler(nil, logger),
		handler.NewHealthHandler(map[string]handler.HealthChecker{"redis": okChecker{}}, logger),
	)
	return s.App()
}

func TestServer_Routes(t *testing.T) {
	app := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/optimize",
		strings.NewReader(`{"locations":[{"id":"depot","lat":52.37,"lng":4.89}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.OptimizeRouteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, []string{"depot"}, out.Order)

	health, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, health.StatusCode)
}

func TestServer_NotFound(t *testing.T) {
	app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var out map[string]map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "HTTP_ERROR", out["error"]["code"])
}

func TestServer_PanicBecomesGenericInternalError(t *testing.T) {
	app := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/optimize",
		strings.NewReader(`{"locations":[{"id":"boom","lat":1,"lng":1}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "INTERNAL_SERVER_ERROR")
	assert.NotContains(t, string(body), "matrix dimension mismatch")
}

func TestServer_MetricsEndpoint(t *testing.T) {
	app := newTestServer(t)

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), -1)
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `http_requests_total{method="GET",route="/api/v1/health",status="200"}`)
}
