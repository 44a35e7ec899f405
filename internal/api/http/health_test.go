package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func healthRequest(t *testing.T, db Pinger, method string) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	NewHealthHandler("test-service", "1.0.0", db).RegisterRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(method, "/health", nil))

	var response HealthResponse
	if rr.Code != http.StatusMethodNotAllowed {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	}
	return rr, response
}

func TestHealthCheck(t *testing.T) {
	t.Run("without a database", func(t *testing.T) {
		rr, resp := healthRequest(t, nil, http.MethodGet)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "test-service", resp.Service)
		assert.Equal(t, "1.0.0", resp.Version)
		assert.Equal(t, "disabled", resp.DB)
	})

	t.Run("database up", func(t *testing.T) {
		rr, resp := healthRequest(t, pingFunc(func(context.Context) error { return nil }), http.MethodGet)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "up", resp.DB)
	})

	t.Run("database down", func(t *testing.T) {
		rr, resp := healthRequest(t, pingFunc(func(context.Context) error { return errors.New("gone") }), http.MethodGet)
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "down", resp.DB)
	})
}

func TestHealthCheckMethodNotAllowed(t *testing.T) {
	rr, _ := healthRequest(t, nil, http.MethodPost)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
