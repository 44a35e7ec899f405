package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var logs bytes.Buffer
	r := gin.New()
	r.Use(RequestIDMiddleware(zerolog.New(&logs)))

	var fromCtx, fromGin string
	var ctxLogger *zerolog.Logger
	r.GET("/ping", func(c *gin.Context) {
		fromCtx = GetRequestID(c.Request.Context())
		fromGin = c.GetString("request_id")
		ctxLogger = zerolog.Ctx(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	t.Run("generates an id when none is sent", func(t *testing.T) {
		logs.Reset()
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

		rid := rr.Header().Get(HeaderRequestID)
		require.NotEmpty(t, rid)
		assert.Len(t, rid, 36)
		assert.Equal(t, rid, fromCtx)
		assert.Equal(t, rid, fromGin)
		require.NotNil(t, ctxLogger)
		assert.NotEqual(t, zerolog.Disabled, ctxLogger.GetLevel())

		assert.Contains(t, logs.String(), `"request_id":"`+rid+`"`)
		assert.Contains(t, logs.String(), `"status":204`)
		assert.Contains(t, logs.String(), `"path":"/ping"`)
	})

	t.Run("keeps a caller supplied id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", rr.Header().Get(HeaderRequestID))
		assert.Equal(t, "abc-123", fromCtx)
	})

	t.Run("no id outside a request", func(t *testing.T) {
		assert.Empty(t, GetRequestID(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
	})
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/api/projects/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects/x1", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(httpRequestDuration, "portfolio_http_request_duration_seconds"), 1)
}

func TestRecordAuthAttempt(t *testing.T) {
	before := testutil.ToFloat64(authAttempts.WithLabelValues("login", "false"))
	RecordAuthAttempt("login", false)
	RecordAuthAttempt("login", false)
	assert.Equal(t, before+2, testutil.ToFloat64(authAttempts.WithLabelValues("login", "false")))
}

func TestSecureHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecureHeaders(SecureOptions(false)))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rr.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "strict-origin-when-cross-origin", rr.Header().Get("Referrer-Policy"))
}
