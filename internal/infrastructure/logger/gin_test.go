package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("logs request with status and path", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		log := zap.New(core)

		router := gin.New()
		router.Use(GinMiddleware(log))
		router.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping?x=1", nil)
		router.ServeHTTP(w, req)

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "HTTP Request", entries[0].Message)
		fields := entries[0].ContextMap()
		assert.Equal(t, "/ping", fields["path"])
		assert.Equal(t, int64(http.StatusOK), fields["status"])
		assert.Equal(t, "x=1", fields["query"])
	})

	t.Run("attaches request id to the request context", func(t *testing.T) {
		log := zap.NewNop()

		var got string
		router := gin.New()
		router.Use(func(c *gin.Context) {
			c.Set("request_id", "abc-123")
			c.Next()
		})
		router.Use(GinMiddleware(log))
		router.GET("/", func(c *gin.Context) {
			got = GetRequestID(c.Request.Context())
			c.Status(http.StatusNoContent)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, "abc-123", got)
	})

	t.Run("warns on client errors", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		log := zap.New(core)

		router := gin.New()
		router.Use(GinMiddleware(log))
		router.GET("/missing", func(c *gin.Context) {
			c.Status(http.StatusBadRequest)
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

		entries := logs.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zap.WarnLevel, entries[0].Level)
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.ErrorLevel)
	log := zap.New(core)

	router := gin.New()
	router.Use(Recovery(log))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Panic recovered", entries[0].Message)
}

func TestGetGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.NotNil(t, GetGinLogger(c))

	log := zap.NewNop()
	c.Set("logger", log)
	assert.Same(t, log, GetGinLogger(c))
}
