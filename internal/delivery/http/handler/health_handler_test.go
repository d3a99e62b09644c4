package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestHealthHandler_Health(t *testing.T) {
	t.Run("all dependencies up", func(t *testing.T) {
		db := new(MockHealthChecker)
		rdb := new(MockHealthChecker)
		db.On("Health", mock.Anything).Return(nil)
		rdb.On("Health", mock.Anything).Return(nil)

		h := NewHealthHandler(map[string]HealthChecker{"postgres": db, "redis": rdb}, zap.NewNop())
		app := fiber.New()
		app.Get("/health", h.Health)

		status, body := doJSON(t, app, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "healthy", body["status"])
		deps := body["dependencies"].(map[string]interface{})
		assert.Equal(t, "ok", deps["postgres"])
		assert.Equal(t, "ok", deps["redis"])
	})

	t.Run("redis down", func(t *testing.T) {
		db := new(MockHealthChecker)
		rdb := new(MockHealthChecker)
		db.On("Health", mock.Anything).Return(nil)
		rdb.On("Health", mock.Anything).Return(fmt.Errorf("dial tcp: connection refused"))

		h := NewHealthHandler(map[string]HealthChecker{"postgres": db, "redis": rdb}, zap.NewNop())
		app := fiber.New()
		app.Get("/health", h.Health)

		status, body := doJSON(t, app, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, status)
		assert.Equal(t, "degraded", body["status"])
		assert.Equal(t, "unavailable", body["dependencies"].(map[string]interface{})["redis"])
	})
}
