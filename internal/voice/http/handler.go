// Package http provides HTTP handlers and middleware for voice access tokens and call routing.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingMessage is the fixed liveness text returned by PingHandler.
const PingMessage = "Twilio Token Server is running. Use /token to get a token."

// PingHandler reports that the server is running.
// GET /ping - No authentication required. Independent of configuration.
func PingHandler(c *gin.Context) {
	c.String(http.StatusOK, PingMessage)
}
