// Package domain defines the core types for voice access tokens and call routing.
package domain

import (
	"time"
)

// VoiceGrant is the voice capability embedded in an access token.
type VoiceGrant struct {
	// OutgoingApplicationSID is the application outgoing calls are routed through.
	OutgoingApplicationSID string
	// IncomingAllow permits the identity to receive incoming calls.
	IncomingAllow bool
	// PushCredentialSID enables push notifications for incoming calls on mobile SDKs.
	PushCredentialSID string
}

// IssueTokenInput contains the parameters for issuing an access token.
// Identity is free text; an empty identity resolves to the configured default.
type IssueTokenInput struct {
	Identity string
}

// AccessToken is a signed, time-limited credential for a single identity.
// SECURITY: Token is a bearer credential and must never be logged.
type AccessToken struct {
	Token     string
	Identity  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
