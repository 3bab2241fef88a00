package commands

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/allisson/voice-token-server/internal/config"
)

const (
	valueSet    = "set"
	valueNotSet = "not set"
)

// configSummary is the redacted view of a configuration.
type configSummary struct {
	Valid  bool              `json:"valid"`
	Error  string            `json:"error,omitempty"`
	Values map[string]string `json:"values"`
}

// RunCheckConfig validates the configuration and writes a redacted summary.
// Secrets are reported only as set or not set and SIDs are masked.
// Returns the validation error after writing the summary.
func RunCheckConfig(cfg *config.Config, format string, io IOTuple) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	validationErr := cfg.Validate()

	summary := configSummary{
		Valid:  validationErr == nil,
		Values: redactConfig(cfg),
	}
	if validationErr != nil {
		summary.Error = validationErr.Error()
	}

	if format == formatJSON {
		if err := writeJSON(io.Writer, summary); err != nil {
			return err
		}
	} else {
		outputConfigText(summary, io.Writer)
	}

	return validationErr
}

// redactConfig returns the configuration values that are safe to print.
func redactConfig(cfg *config.Config) map[string]string {
	return map[string]string{
		"server_host":                      cfg.ServerHost,
		"server_port":                      strconv.Itoa(cfg.ServerPort),
		"server_shutdown_timeout":          cfg.ServerShutdownTimeout.String(),
		"log_level":                        cfg.LogLevel,
		"twilio_account_sid":               maskSID(cfg.TwilioAccountSID),
		"twilio_api_key":                   maskSID(cfg.TwilioAPIKey),
		"twilio_api_secret":                presence(cfg.TwilioAPISecret),
		"twilio_twiml_app_sid":             maskSID(cfg.TwilioTwiMLAppSID),
		"twilio_caller_id":                 presence(cfg.TwilioCallerID),
		"twilio_push_credential_sid":       maskSID(cfg.TwilioPushCredentialSID),
		"twilio_region":                    cfg.TwilioRegion,
		"twilio_auth_token":                presence(cfg.TwilioAuthToken),
		"voice_default_identity":           presence(cfg.VoiceDefaultIdentity),
		"voice_token_ttl":                  cfg.VoiceTokenTTL.Round(time.Second).String(),
		"voice_webhook_validation_enabled": strconv.FormatBool(cfg.VoiceWebhookValidationEnabled),
		"voice_webhook_base_url":           cfg.VoiceWebhookBaseURL,
		"cors_enabled":                     strconv.FormatBool(cfg.CORSEnabled),
		"cors_allow_origins":               cfg.CORSAllowOrigins,
		"rate_limit_token_enabled":         strconv.FormatBool(cfg.RateLimitTokenEnabled),
		"metrics_enabled":                  strconv.FormatBool(cfg.MetricsEnabled),
		"metrics_namespace":                cfg.MetricsNamespace,
		"metrics_port":                     strconv.Itoa(cfg.MetricsPort),
	}
}

// maskSID keeps the two letter prefix and the last four characters of a SID.
func maskSID(sid string) string {
	if sid == "" {
		return valueNotSet
	}
	if len(sid) <= 6 {
		return "****"
	}
	return sid[:2] + "****" + sid[len(sid)-4:]
}

func presence(value string) string {
	if value == "" {
		return valueNotSet
	}
	return valueSet
}

// outputConfigText outputs the summary in human-readable text format.
func outputConfigText(summary configSummary, writer io.Writer) {
	if summary.Valid {
		_, _ = fmt.Fprintln(writer, "Configuration is valid")
	} else {
		_, _ = fmt.Fprintln(writer, "Configuration is invalid")
		_, _ = fmt.Fprintf(writer, "Error: %s\n", summary.Error)
	}

	_, _ = fmt.Fprintln(writer)
	for _, key := range configKeys {
		_, _ = fmt.Fprintf(writer, "%s: %s\n", key, summary.Values[key])
	}
}

// configKeys fixes the order of the text summary.
var configKeys = []string{
	"server_host",
	"server_port",
	"server_shutdown_timeout",
	"log_level",
	"twilio_account_sid",
	"twilio_api_key",
	"twilio_api_secret",
	"twilio_twiml_app_sid",
	"twilio_caller_id",
	"twilio_push_credential_sid",
	"twilio_region",
	"twilio_auth_token",
	"voice_default_identity",
	"voice_token_ttl",
	"voice_webhook_validation_enabled",
	"voice_webhook_base_url",
	"cors_enabled",
	"cors_allow_origins",
	"rate_limit_token_enabled",
	"metrics_enabled",
	"metrics_namespace",
	"metrics_port",
}
