package service

import (
	"net/url"

	"github.com/twilio/twilio-go/client"

	voiceDomain "github.com/allisson/voice-token-server/internal/voice/domain"
)

// webhookSignatureValidator implements WebhookSignatureValidator on top of the
// twilio-go request validator keyed with the account auth token.
type webhookSignatureValidator struct {
	validator client.RequestValidator
}

// NewWebhookSignatureValidator creates a new WebhookSignatureValidator for an auth token.
func NewWebhookSignatureValidator(authToken string) WebhookSignatureValidator {
	return &webhookSignatureValidator{validator: client.NewRequestValidator(authToken)}
}

// Validate checks signature against the one expected for fullURL and params.
// A URL is accepted both with and without its explicit port. Only the first
// value of a repeated form key takes part in the check.
func (v *webhookSignatureValidator) Validate(fullURL string, params url.Values, signature string) error {
	if signature == "" {
		return voiceDomain.ErrMissingSignature
	}

	if !v.validator.Validate(fullURL, firstValues(params), signature) {
		return voiceDomain.ErrSignatureMismatch
	}

	return nil
}

func firstValues(params url.Values) map[string]string {
	flat := make(map[string]string, len(params))
	for key := range params {
		flat[key] = params.Get(key)
	}
	return flat
}
