package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/voice-token-server/internal/httputil"
	voiceDomain "github.com/allisson/voice-token-server/internal/voice/domain"
	voiceUseCase "github.com/allisson/voice-token-server/internal/voice/usecase"
)

// destinationParam is the webhook parameter carrying the dialed destination.
const destinationParam = "To"

// RoutingHandler handles the voice webhook that asks how to route an outgoing call.
type RoutingHandler struct {
	routingUseCase voiceUseCase.RoutingUseCase
	logger         *slog.Logger
}

// NewRoutingHandler creates a new routing handler with required dependencies.
func NewRoutingHandler(routingUseCase voiceUseCase.RoutingUseCase, logger *slog.Logger) *RoutingHandler {
	return &RoutingHandler{
		routingUseCase: routingUseCase,
		logger:         logger,
	}
}

// RouteCallHandler returns the call-control document for the requested destination.
// POST /voice (form) or GET /voice (query) - Called by the telephony platform.
// The destination is read from the form field To, then the query parameter To.
// Malformed or missing input never fails; it resolves to the default identity.
func (h *RoutingHandler) RouteCallHandler(c *gin.Context) {
	destination := c.PostForm(destinationParam)
	if destination == "" {
		destination = c.Query(destinationParam)
	}

	output, err := h.routingUseCase.Route(c.Request.Context(), &voiceDomain.RouteCallInput{
		Destination: destination,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Debug("call routed", slog.String("target_kind", string(output.Target.Kind)))

	httputil.XMLResponseGin(c, http.StatusOK, output.Document)
}
