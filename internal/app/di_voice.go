package app

import (
	"fmt"

	voiceHTTP "github.com/allisson/voice-token-server/internal/voice/http"
	voiceService "github.com/allisson/voice-token-server/internal/voice/service"
	voiceUseCase "github.com/allisson/voice-token-server/internal/voice/usecase"
)

// AccessTokenService returns the access token signer.
func (c *Container) AccessTokenService() voiceService.AccessTokenService {
	c.accessTokenServiceInit.Do(func() {
		c.accessTokenService = voiceService.NewAccessTokenService(
			c.config.TwilioAccountSID,
			c.config.TwilioAPIKey,
			c.config.TwilioAPISecret,
			c.config.TwilioRegion,
		)
	})
	return c.accessTokenService
}

// CallDocumentRenderer returns the call-control document renderer.
func (c *Container) CallDocumentRenderer() voiceService.CallDocumentRenderer {
	c.documentRendererInit.Do(func() {
		c.documentRenderer = voiceService.NewTwiMLRenderer()
	})
	return c.documentRenderer
}

// WebhookSignatureValidator returns the webhook signature validator.
func (c *Container) WebhookSignatureValidator() voiceService.WebhookSignatureValidator {
	c.webhookValidatorInit.Do(func() {
		c.webhookValidator = voiceService.NewWebhookSignatureValidator(c.config.TwilioAuthToken)
	})
	return c.webhookValidator
}

// TokenUseCase returns the token use case instance.
func (c *Container) TokenUseCase() (voiceUseCase.TokenUseCase, error) {
	var err error
	c.tokenUseCaseInit.Do(func() {
		c.tokenUseCase, err = c.initTokenUseCase()
		if err != nil {
			c.setInitError("tokenUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("tokenUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.tokenUseCase, nil
}

// RoutingUseCase returns the routing use case instance.
func (c *Container) RoutingUseCase() (voiceUseCase.RoutingUseCase, error) {
	var err error
	c.routingUseCaseInit.Do(func() {
		c.routingUseCase, err = c.initRoutingUseCase()
		if err != nil {
			c.setInitError("routingUseCase", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("routingUseCase"); storedErr != nil {
		return nil, storedErr
	}
	return c.routingUseCase, nil
}

// TokenHandler returns the HTTP handler for token issuance.
func (c *Container) TokenHandler() (*voiceHTTP.TokenHandler, error) {
	var err error
	c.tokenHandlerInit.Do(func() {
		c.tokenHandler, err = c.initTokenHandler()
		if err != nil {
			c.setInitError("tokenHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("tokenHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.tokenHandler, nil
}

// RoutingHandler returns the HTTP handler for the voice webhook.
func (c *Container) RoutingHandler() (*voiceHTTP.RoutingHandler, error) {
	var err error
	c.routingHandlerInit.Do(func() {
		c.routingHandler, err = c.initRoutingHandler()
		if err != nil {
			c.setInitError("routingHandler", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("routingHandler"); storedErr != nil {
		return nil, storedErr
	}
	return c.routingHandler, nil
}

// initTokenUseCase creates the token use case, wrapped with metrics if enabled.
func (c *Container) initTokenUseCase() (voiceUseCase.TokenUseCase, error) {
	baseUseCase := voiceUseCase.NewTokenUseCase(c.config, c.AccessTokenService())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for token use case: %w", err)
		}
		return voiceUseCase.NewTokenUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initRoutingUseCase creates the routing use case, wrapped with metrics if enabled.
func (c *Container) initRoutingUseCase() (voiceUseCase.RoutingUseCase, error) {
	baseUseCase := voiceUseCase.NewRoutingUseCase(c.config, c.CallDocumentRenderer())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for routing use case: %w", err)
		}
		return voiceUseCase.NewRoutingUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initTokenHandler creates the token handler with all its dependencies.
func (c *Container) initTokenHandler() (*voiceHTTP.TokenHandler, error) {
	tokenUseCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for token handler: %w", err)
	}

	return voiceHTTP.NewTokenHandler(tokenUseCase, c.Logger()), nil
}

// initRoutingHandler creates the routing handler with all its dependencies.
func (c *Container) initRoutingHandler() (*voiceHTTP.RoutingHandler, error) {
	routingUseCase, err := c.RoutingUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get routing use case for routing handler: %w", err)
	}

	return voiceHTTP.NewRoutingHandler(routingUseCase, c.Logger()), nil
}
