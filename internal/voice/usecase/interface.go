// Package usecase defines business logic interfaces for voice access tokens and call routing.
package usecase

import (
	"context"

	voiceDomain "github.com/allisson/voice-token-server/internal/voice/domain"
)

// TokenUseCase defines business logic operations for issuing voice access tokens.
type TokenUseCase interface {
	// Issue signs an access token for the requested identity carrying a voice grant.
	// An empty identity resolves to the configured default identity. Any other value,
	// including whitespace, is embedded verbatim.
	//
	// Security Note: the returned token is a bearer credential and must never be logged.
	Issue(ctx context.Context, issueTokenInput *voiceDomain.IssueTokenInput) (*voiceDomain.AccessToken, error)
}

// RoutingUseCase defines business logic operations for routing outgoing calls.
type RoutingUseCase interface {
	// Route classifies the destination and renders a call-control document that dials
	// either a phone number, presenting the configured caller ID, or a client identity.
	// A destination that is empty after trimming dials the default identity.
	Route(ctx context.Context, routeCallInput *voiceDomain.RouteCallInput) (*voiceDomain.RouteCallOutput, error)
}
