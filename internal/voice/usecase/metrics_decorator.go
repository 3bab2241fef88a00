package usecase

import (
	"context"
	"time"

	"github.com/allisson/voice-token-server/internal/metrics"
	voiceDomain "github.com/allisson/voice-token-server/internal/voice/domain"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Issue records metrics for token issuance operations.
func (t *tokenUseCaseWithMetrics) Issue(
	ctx context.Context,
	issueTokenInput *voiceDomain.IssueTokenInput,
) (*voiceDomain.AccessToken, error) {
	start := time.Now()
	accessToken, err := t.next.Issue(ctx, issueTokenInput)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "voice", "token_issue", status)
	t.metrics.RecordDuration(ctx, "voice", "token_issue", time.Since(start), status)

	return accessToken, err
}

// routingUseCaseWithMetrics decorates RoutingUseCase with metrics instrumentation.
type routingUseCaseWithMetrics struct {
	next    RoutingUseCase
	metrics metrics.BusinessMetrics
}

// NewRoutingUseCaseWithMetrics wraps a RoutingUseCase with metrics recording.
func NewRoutingUseCaseWithMetrics(useCase RoutingUseCase, m metrics.BusinessMetrics) RoutingUseCase {
	return &routingUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Route records metrics for call routing operations.
func (r *routingUseCaseWithMetrics) Route(
	ctx context.Context,
	routeCallInput *voiceDomain.RouteCallInput,
) (*voiceDomain.RouteCallOutput, error) {
	start := time.Now()
	output, err := r.next.Route(ctx, routeCallInput)

	status := "success"
	if err != nil {
		status = "error"
	} else {
		r.metrics.RecordDialTarget(ctx, string(output.Target.Kind))
	}

	r.metrics.RecordOperation(ctx, "voice", "call_route", status)
	r.metrics.RecordDuration(ctx, "voice", "call_route", time.Since(start), status)

	return output, err
}
