// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	voiceDomain "github.com/allisson/voice-token-server/internal/voice/domain"
)

// TokenResponse contains a freshly issued access token and the identity it was issued for.
// SECURITY: Token is a bearer credential; return it to the caller and never log it.
type TokenResponse struct {
	Token    string `json:"token"` //nolint:gosec // issued credential returned to its requester
	Identity string `json:"identity"`
}

// MapAccessTokenToResponse converts a domain access token to an API response.
func MapAccessTokenToResponse(accessToken *voiceDomain.AccessToken) TokenResponse {
	return TokenResponse{
		Token:    accessToken.Token,
		Identity: accessToken.Identity,
	}
}
