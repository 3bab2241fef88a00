package http

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// createCORSMiddleware returns the CORS middleware for browser clients fetching
// tokens, or nil when CORS is disabled or the origin list is empty.
func createCORSMiddleware(enabled bool, allowOrigins string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := parseOrigins(allowOrigins)
	if len(origins) == 0 {
		logger.Warn("CORS enabled but no valid origins configured, CORS will not be applied")
		return nil
	}

	config := corsConfig(origins)
	if config.AllowAllOrigins {
		logger.Info("CORS enabled for all origins")
	} else {
		logger.Info("CORS enabled", slog.Int("origin_count", len(origins)), slog.Any("origins", origins))
	}

	return cors.New(config)
}

// corsConfig builds the CORS policy for the voice endpoints. A "*" entry allows
// every origin without credentials; otherwise only the listed origins are allowed
// and may send credentials.
func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Content-Type", "Authorization"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}

	if slices.Contains(origins, "*") {
		config.AllowAllOrigins = true
		return config
	}

	config.AllowOrigins = origins
	config.AllowCredentials = true
	return config
}

// parseOrigins splits a comma-separated origin list, dropping blank entries.
func parseOrigins(allowOrigins string) []string {
	var origins []string
	for part := range strings.SplitSeq(allowOrigins, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
