package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/allisson/voice-token-server/internal/httputil"
	voiceService "github.com/allisson/voice-token-server/internal/voice/service"
)

// SignatureHeader carries the platform's signature of a webhook request.
const SignatureHeader = "X-Twilio-Signature"

// WebhookSignatureMiddleware rejects webhook requests whose signature does not match.
//
// The signed URL is baseURL followed by the request URI, so the check keeps working
// behind proxies and load balancers that rewrite the scheme or host. baseURL is
// required by configuration whenever signature validation is enabled.
//
// Error handling:
//   - Unparseable form body → 400 Bad Request
//   - Missing signature header → 403 Forbidden
//   - Signature mismatch → 403 Forbidden
func WebhookSignatureMiddleware(
	validator voiceService.WebhookSignatureValidator,
	baseURL string,
	logger *slog.Logger,
) gin.HandlerFunc {
	baseURL = strings.TrimRight(baseURL, "/")

	return func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			httputil.HandleBadRequestGin(c, err, logger)
			c.Abort()
			return
		}

		fullURL := baseURL + c.Request.URL.RequestURI()
		if err := validator.Validate(fullURL, c.Request.PostForm, c.GetHeader(SignatureHeader)); err != nil {
			logger.Warn("webhook signature rejected",
				slog.String("path", c.Request.URL.Path),
				slog.String("reason", err.Error()))
			httputil.HandleErrorGin(c, err, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
