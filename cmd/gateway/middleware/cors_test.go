package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/adichatupes-source/Portfolio/cmd/gateway/middleware"
)

func newCORSRouter(allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORS(allowedOrigins))
	r.GET("/content", func(c *gin.Context) {
		c.String(http.StatusOK, "handled")
	})
	r.OPTIONS("/content", func(c *gin.Context) {
		c.String(http.StatusTeapot, "handler must not run on preflight")
	})
	return r
}

func TestAllowedOriginIsEchoed(t *testing.T) {
	r := newCORSRouter([]string{"https://clickszy.com", "http://localhost:5173"})

	req := httptest.NewRequest(http.MethodGet, "/content", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownOriginGetsFirstAllowed(t *testing.T) {
	r := newCORSRouter([]string{"https://clickszy.com", "http://localhost:5173"})

	req := httptest.NewRequest(http.MethodGet, "/content", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "https://clickszy.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestPreflightIsAnsweredByTheMiddleware(t *testing.T) {
	r := newCORSRouter([]string{"https://clickszy.com"})

	req := httptest.NewRequest(http.MethodOptions, "/content", nil)
	req.Header.Set("Origin", "https://clickszy.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
}

func TestEmptyAllowListSetsNoOrigin(t *testing.T) {
	r := newCORSRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/content", nil)
	req.Header.Set("Origin", "https://clickszy.com")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
