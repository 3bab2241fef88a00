package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "only separators", input: " , ,", expected: nil},
		{name: "wildcard", input: "*", expected: []string{"*"}},
		{
			name:     "trims whitespace",
			input:    " https://app.example.com , https://softphone.example.com ",
			expected: []string{"https://app.example.com", "https://softphone.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseOrigins(tt.input))
		})
	}
}

func TestCORSConfig(t *testing.T) {
	t.Run("wildcard allows all origins without credentials", func(t *testing.T) {
		config := corsConfig([]string{"https://app.example.com", "*"})

		assert.True(t, config.AllowAllOrigins)
		assert.False(t, config.AllowCredentials)
		assert.Empty(t, config.AllowOrigins)
	})

	t.Run("explicit list allows credentials", func(t *testing.T) {
		config := corsConfig([]string{"https://app.example.com"})

		assert.False(t, config.AllowAllOrigins)
		assert.True(t, config.AllowCredentials)
		assert.Equal(t, []string{"https://app.example.com"}, config.AllowOrigins)
		assert.Equal(t, []string{http.MethodGet, http.MethodPost, http.MethodOptions}, config.AllowMethods)
	})
}

func TestCreateCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	newRouter := func(t *testing.T, allowOrigins string) *gin.Engine {
		t.Helper()
		middleware := createCORSMiddleware(true, allowOrigins, logger)
		require.NotNil(t, middleware)

		router := gin.New()
		router.Use(middleware)
		router.GET("/token", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"token": "t"})
		})
		router.POST("/voice", func(c *gin.Context) {
			c.Data(http.StatusOK, "text/xml; charset=utf-8", []byte("<Response/>"))
		})
		return router
	}

	t.Run("disabled", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(false, "https://app.example.com", logger))
	})

	t.Run("enabled without origins", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(true, " , ", logger))
	})

	tests := []struct {
		name           string
		allowOrigins   string
		method         string
		path           string
		origin         string
		preflight      bool
		expectedStatus int
		expectedOrigin string
		expectedCreds  string
	}{
		{
			name:           "listed origin",
			allowOrigins:   "https://app.example.com,https://softphone.example.com",
			method:         http.MethodGet,
			path:           "/token",
			origin:         "https://softphone.example.com",
			expectedStatus: http.StatusOK,
			expectedOrigin: "https://softphone.example.com",
			expectedCreds:  "true",
		},
		{
			name:           "unlisted origin",
			allowOrigins:   "https://app.example.com",
			method:         http.MethodGet,
			path:           "/token",
			origin:         "https://evil.example.org",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "wildcard",
			allowOrigins:   "*",
			method:         http.MethodGet,
			path:           "/token",
			origin:         "https://anywhere.example.org",
			expectedStatus: http.StatusOK,
			expectedOrigin: "*",
		},
		{
			name:           "preflight for voice webhook",
			allowOrigins:   "https://app.example.com",
			method:         http.MethodOptions,
			path:           "/voice",
			origin:         "https://app.example.com",
			preflight:      true,
			expectedStatus: http.StatusNoContent,
			expectedOrigin: "https://app.example.com",
			expectedCreds:  "true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.allowOrigins)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.expectedCreds, w.Header().Get("Access-Control-Allow-Credentials"))
			if tt.preflight {
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
			}
		})
	}
}
