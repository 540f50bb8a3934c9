package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.Use(SecurityHeaders())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	c.Request, _ = http.NewRequest("GET", "/test", nil)
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "wss:")
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestInputSanitizer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"plain search", "/test?q=%E9%87%A3%E3%82%8A", http.StatusOK},
		{"script tag", "/test?q=%3CScript%3Ealert(1)", http.StatusBadRequest},
		{"javascript url", "/test?q=javascript:alert(1)", http.StatusBadRequest},
		{"no query", "/test", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, r := gin.CreateTestContext(w)
			r.Use(InputSanitizer())
			r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

			c.Request, _ = http.NewRequest("GET", tt.query, nil)
			r.ServeHTTP(w, c.Request)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRateLimitPerSession_NilRedisPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.Use(RateLimitPerSession(nil, WriteRateLimitConfig()))
	r.POST("/test", func(c *gin.Context) { c.Status(http.StatusCreated) })

	c.Request, _ = http.NewRequest("POST", "/test", nil)
	r.ServeHTTP(w, c.Request)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
}
