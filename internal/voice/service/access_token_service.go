package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/allisson/voice-token-server/internal/errors"
	voiceDomain "github.com/allisson/voice-token-server/internal/voice/domain"
)

const (
	// accessTokenContentType marks the JWT as a platform access token.
	accessTokenContentType = "twilio-fpa;v=1"
)

// AccessTokenClaims holds the JWT claims of a voice access token.
type AccessTokenClaims struct {
	jwt.RegisteredClaims
	Grants AccessTokenGrants `json:"grants"`
}

// AccessTokenGrants holds the identity and the capability grants of a token.
type AccessTokenGrants struct {
	Identity string            `json:"identity"`
	Voice    *VoiceGrantClaims `json:"voice,omitempty"`
}

// VoiceGrantClaims is the wire form of a voice grant.
type VoiceGrantClaims struct {
	Incoming          *IncomingClaims `json:"incoming,omitempty"`
	Outgoing          *OutgoingClaims `json:"outgoing,omitempty"`
	PushCredentialSID string          `json:"push_credential_sid,omitempty"`
}

// IncomingClaims controls whether the identity can receive calls.
type IncomingClaims struct {
	Allow bool `json:"allow"`
}

// OutgoingClaims names the application outgoing calls are routed through.
type OutgoingClaims struct {
	ApplicationSID string `json:"application_sid"`
}

// accessTokenService implements AccessTokenService using HS256 JWTs signed with an API key secret.
type accessTokenService struct {
	accountSID string
	apiKeySID  string
	apiSecret  []byte
	region     string
	now        func() time.Time
}

// NewAccessTokenService creates a new AccessTokenService for the given account and API key.
// region is optional and pins tokens to a platform region when set.
func NewAccessTokenService(accountSID, apiKeySID, apiSecret, region string) AccessTokenService {
	return &accessTokenService{
		accountSID: accountSID,
		apiKeySID:  apiKeySID,
		apiSecret:  []byte(apiSecret),
		region:     region,
		now:        time.Now,
	}
}

// Sign creates and signs an access token.
func (s *accessTokenService) Sign(
	identity string,
	grant voiceDomain.VoiceGrant,
	ttl time.Duration,
) (*voiceDomain.AccessToken, error) {
	if len(s.apiSecret) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidConfig, "api secret is empty")
	}
	if ttl <= 0 {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidConfig, "token ttl must be positive, got %s", ttl)
	}

	// Claims carry second precision
	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(ttl)

	claims := AccessTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        fmt.Sprintf("%s-%d", s.apiKeySID, issuedAt.Unix()),
			Issuer:    s.apiKeySID,
			Subject:   s.accountSID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Grants: AccessTokenGrants{
			Identity: identity,
			Voice:    newVoiceGrantClaims(grant),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["cty"] = accessTokenContentType
	if s.region != "" {
		token.Header["twr"] = s.region
	}

	signed, err := token.SignedString(s.apiSecret)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign access token")
	}

	return &voiceDomain.AccessToken{
		Token:     signed,
		Identity:  identity,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify parses a token signed by this service and validates its signature and expiry.
func (s *accessTokenService) Verify(tokenString string) (*AccessTokenClaims, error) {
	claims := &AccessTokenClaims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.apiSecret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.apiKeySID),
		jwt.WithSubject(s.accountSID),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, err.Error())
	}
	if !token.Valid {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "access token is not valid")
	}
	if cty, _ := token.Header["cty"].(string); cty != accessTokenContentType {
		return nil, apperrors.Wrap(apperrors.ErrUnauthorized, "unexpected access token content type")
	}

	return claims, nil
}

// newVoiceGrantClaims maps a domain grant to its wire form.
func newVoiceGrantClaims(grant voiceDomain.VoiceGrant) *VoiceGrantClaims {
	claims := &VoiceGrantClaims{
		PushCredentialSID: grant.PushCredentialSID,
	}
	if grant.IncomingAllow {
		claims.Incoming = &IncomingClaims{Allow: true}
	}
	if grant.OutgoingApplicationSID != "" {
		claims.Outgoing = &OutgoingClaims{ApplicationSID: grant.OutgoingApplicationSID}
	}
	return claims
}
