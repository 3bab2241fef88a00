// Package service provides technical services for voice operations.
//
// Access tokens are HS256 JWTs carrying a voice grant, call-control documents are
// TwiML, and webhook requests are authenticated with HMAC-SHA1 signatures.
package service

import (
	"net/url"
	"time"

	voiceDomain "github.com/allisson/voice-token-server/internal/voice/domain"
)

// AccessTokenService defines operations for signing and verifying voice access tokens.
type AccessTokenService interface {
	// Sign creates a token for identity carrying the given voice grant, valid for ttl.
	// The identity is embedded as is; callers resolve defaults before signing.
	Sign(identity string, grant voiceDomain.VoiceGrant, ttl time.Duration) (*voiceDomain.AccessToken, error)

	// Verify checks the signature and expiry of a token and returns its claims.
	Verify(token string) (*AccessTokenClaims, error)
}

// CallDocumentRenderer defines operations for rendering call-control documents.
type CallDocumentRenderer interface {
	// RenderDial renders a document containing exactly one dial action for target.
	RenderDial(target voiceDomain.DialTarget) ([]byte, error)
}

// WebhookSignatureValidator defines operations for authenticating webhook requests.
type WebhookSignatureValidator interface {
	// Validate compares signature against the one expected for a full request URL
	// and its form parameters.
	// Returns ErrMissingSignature or ErrSignatureMismatch on failure.
	Validate(fullURL string, params url.Values, signature string) error
}
