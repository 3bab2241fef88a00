package usecase

import (
	"context"

	"github.com/allisson/voice-token-server/internal/config"
	voiceDomain "github.com/allisson/voice-token-server/internal/voice/domain"
	voiceService "github.com/allisson/voice-token-server/internal/voice/service"
)

// tokenUseCase implements TokenUseCase using an AccessTokenService.
type tokenUseCase struct {
	config             *config.Config
	accessTokenService voiceService.AccessTokenService
}

// Issue resolves the identity, builds the voice grant from configuration and signs the token.
func (t *tokenUseCase) Issue(
	ctx context.Context,
	issueTokenInput *voiceDomain.IssueTokenInput,
) (*voiceDomain.AccessToken, error) {
	identity := ""
	if issueTokenInput != nil {
		identity = issueTokenInput.Identity
	}
	if identity == "" {
		identity = t.config.VoiceDefaultIdentity
	}

	grant := voiceDomain.VoiceGrant{
		OutgoingApplicationSID: t.config.TwilioTwiMLAppSID,
		IncomingAllow:          true,
		PushCredentialSID:      t.config.TwilioPushCredentialSID,
	}

	return t.accessTokenService.Sign(identity, grant, t.config.VoiceTokenTTL)
}

// NewTokenUseCase creates a new TokenUseCase with the provided dependencies.
func NewTokenUseCase(config *config.Config, accessTokenService voiceService.AccessTokenService) TokenUseCase {
	return &tokenUseCase{
		config:             config,
		accessTokenService: accessTokenService,
	}
}
