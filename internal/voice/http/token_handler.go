package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/voice-token-server/internal/httputil"
	voiceDomain "github.com/allisson/voice-token-server/internal/voice/domain"
	"github.com/allisson/voice-token-server/internal/voice/http/dto"
	voiceUseCase "github.com/allisson/voice-token-server/internal/voice/usecase"
)

// TokenHandler handles HTTP requests for access token issuance.
type TokenHandler struct {
	tokenUseCase voiceUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(tokenUseCase voiceUseCase.TokenUseCase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// IssueTokenHandler issues an access token for the identity given in the query string.
// GET /token?identity=<identity> - No authentication required.
// The identity is optional and free text; when omitted or empty the default identity is used.
// Returns 200 OK with the token and the identity it was issued for.
func (h *TokenHandler) IssueTokenHandler(c *gin.Context) {
	input := &voiceDomain.IssueTokenInput{
		Identity: c.Query("identity"),
	}

	accessToken, err := h.tokenUseCase.Issue(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAccessTokenToResponse(accessToken))
}
