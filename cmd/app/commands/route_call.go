package commands

import (
	"context"
	"fmt"
	"log/slog"

	voiceDomain "github.com/allisson/voice-token-server/internal/voice/domain"
	voiceUseCase "github.com/allisson/voice-token-server/internal/voice/usecase"
)

// RunRouteCall renders the call-control document for a destination and writes it
// to the output exactly as the voice webhook would return it.
func RunRouteCall(
	ctx context.Context,
	routingUseCase voiceUseCase.RoutingUseCase,
	logger *slog.Logger,
	destination string,
	io IOTuple,
) error {
	output, err := routingUseCase.Route(ctx, &voiceDomain.RouteCallInput{Destination: destination})
	if err != nil {
		return fmt.Errorf("failed to route call: %w", err)
	}

	logger.Debug("call routed", slog.String("target_kind", string(output.Target.Kind)))

	_, err = fmt.Fprintln(io.Writer, string(output.Document))
	return err
}
