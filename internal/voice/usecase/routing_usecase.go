package usecase

import (
	"context"

	"github.com/allisson/voice-token-server/internal/config"
	voiceDomain "github.com/allisson/voice-token-server/internal/voice/domain"
	voiceService "github.com/allisson/voice-token-server/internal/voice/service"
)

// routingUseCase implements RoutingUseCase using a CallDocumentRenderer.
type routingUseCase struct {
	config   *config.Config
	renderer voiceService.CallDocumentRenderer
}

// Route builds the dial target and renders its document.
func (r *routingUseCase) Route(
	ctx context.Context,
	routeCallInput *voiceDomain.RouteCallInput,
) (*voiceDomain.RouteCallOutput, error) {
	destination := ""
	if routeCallInput != nil {
		destination = routeCallInput.Destination
	}

	target := voiceDomain.NewDialTarget(
		destination,
		r.config.VoiceDefaultIdentity,
		r.config.TwilioCallerID,
	)

	document, err := r.renderer.RenderDial(target)
	if err != nil {
		return nil, err
	}

	return &voiceDomain.RouteCallOutput{
		Target:   target,
		Document: document,
	}, nil
}

// NewRoutingUseCase creates a new RoutingUseCase with the provided dependencies.
func NewRoutingUseCase(config *config.Config, renderer voiceService.CallDocumentRenderer) RoutingUseCase {
	return &routingUseCase{
		config:   config,
		renderer: renderer,
	}
}
