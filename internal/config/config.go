// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	customValidation "github.com/allisson/voice-token-server/internal/validation"
)

const (
	// DefaultIdentity is used when a caller does not supply an identity or destination.
	DefaultIdentity = "receiver-user"

	// DefaultTokenTTL is the validity window of issued access tokens.
	DefaultTokenTTL = 3600 * time.Second

	// MaxTokenTTL is the longest validity the telephony platform accepts.
	MaxTokenTTL = 24 * time.Hour
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ServerShutdownTimeout bounds graceful shutdown of the HTTP servers.
	ServerShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// TwilioAccountSID identifies the account the tokens are issued for (AC...).
	TwilioAccountSID string
	// TwilioAPIKey is the SID of the API key used to sign tokens (SK...).
	TwilioAPIKey string
	// TwilioAPISecret is the secret of the API key used to sign tokens.
	TwilioAPISecret string
	// TwilioTwiMLAppSID is the application outgoing calls are routed through (AP...).
	TwilioTwiMLAppSID string
	// TwilioCallerID is the number presented to callees when dialing phone numbers.
	TwilioCallerID string
	// TwilioPushCredentialSID enables incoming call push notifications for mobile SDKs (CR...).
	TwilioPushCredentialSID string
	// TwilioRegion pins issued tokens to a platform region (e.g., "us1", "ie1").
	TwilioRegion string
	// TwilioAuthToken is the account auth token used to validate webhook signatures.
	TwilioAuthToken string

	// VoiceDefaultIdentity is used when no identity or destination is supplied.
	VoiceDefaultIdentity string
	// VoiceTokenTTL is the validity window of issued access tokens.
	VoiceTokenTTL time.Duration
	// VoiceWebhookValidationEnabled requires a valid signature on the voice webhook.
	VoiceWebhookValidationEnabled bool
	// VoiceWebhookBaseURL is the public base URL the platform calls, used to
	// reconstruct the signed URL behind proxies.
	VoiceWebhookBaseURL string

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins, or "*" for any origin.
	CORSAllowOrigins string

	// RateLimitTokenEnabled indicates whether rate limiting for the token endpoint is enabled.
	RateLimitTokenEnabled bool
	// RateLimitTokenRequestsPerSec is the number of requests allowed per second per IP.
	RateLimitTokenRequestsPerSec float64
	// RateLimitTokenBurst is the burst size for the token endpoint rate limiting.
	RateLimitTokenBurst int

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
// Load never fails; call Validate before using the configuration.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:            env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:            env.GetInt("PORT", 3000),
		ServerShutdownTimeout: env.GetDuration("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Telephony platform credentials
		TwilioAccountSID:        env.GetString("TWILIO_ACCOUNT_SID", ""),
		TwilioAPIKey:            env.GetString("TWILIO_API_KEY", ""),
		TwilioAPISecret:         env.GetString("TWILIO_API_SECRET", ""),
		TwilioTwiMLAppSID:       env.GetString("TWILIO_TWIML_APP_SID", ""),
		TwilioCallerID:          env.GetString("TWILIO_CALLER_ID", ""),
		TwilioPushCredentialSID: env.GetString("TWILIO_PUSH_CREDENTIAL_SID", ""),
		TwilioRegion:            env.GetString("TWILIO_REGION", ""),
		TwilioAuthToken:         env.GetString("TWILIO_AUTH_TOKEN", ""),

		// Voice
		VoiceDefaultIdentity: env.GetString("VOICE_DEFAULT_IDENTITY", DefaultIdentity),
		VoiceTokenTTL: env.GetDuration(
			"VOICE_TOKEN_TTL_SECONDS",
			int64(DefaultTokenTTL/time.Second),
			time.Second,
		),
		VoiceWebhookValidationEnabled: env.GetBool("VOICE_WEBHOOK_VALIDATION_ENABLED", false),
		VoiceWebhookBaseURL:           env.GetString("VOICE_WEBHOOK_BASE_URL", ""),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", true),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", "*"),

		// Rate Limiting for Token Endpoint (IP-based, unauthenticated)
		RateLimitTokenEnabled:        env.GetBool("RATE_LIMIT_TOKEN_ENABLED", false),
		RateLimitTokenRequestsPerSec: env.GetFloat64("RATE_LIMIT_TOKEN_REQUESTS_PER_SEC", 5.0),
		RateLimitTokenBurst:          env.GetInt("RATE_LIMIT_TOKEN_BURST", 10),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "voice"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// Validate checks that every required value is present and well formed.
// The returned error wraps ErrInvalidConfig and names each offending field.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.ServerShutdownTimeout, validation.Required, validation.Min(time.Second)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),

		validation.Field(&c.TwilioAccountSID, validation.Required, customValidation.SID("AC")),
		validation.Field(&c.TwilioAPIKey, validation.Required, customValidation.SID("SK")),
		validation.Field(&c.TwilioAPISecret, validation.Required, customValidation.NotBlank),
		validation.Field(&c.TwilioTwiMLAppSID, validation.Required, customValidation.SID("AP")),
		validation.Field(&c.TwilioCallerID, validation.Required, customValidation.PhoneNumber),
		validation.Field(&c.TwilioPushCredentialSID, customValidation.SID("CR")),
		validation.Field(&c.TwilioRegion, customValidation.NoWhitespace),
		validation.Field(&c.TwilioAuthToken,
			validation.When(c.VoiceWebhookValidationEnabled, validation.Required, customValidation.NotBlank),
		),

		validation.Field(&c.VoiceDefaultIdentity, validation.Required, customValidation.NotBlank),
		validation.Field(&c.VoiceTokenTTL,
			validation.Required,
			validation.Min(time.Second),
			validation.Max(MaxTokenTTL),
		),
		validation.Field(&c.VoiceWebhookBaseURL,
			validation.When(c.VoiceWebhookValidationEnabled, validation.Required),
			customValidation.HTTPURL,
		),

		validation.Field(&c.CORSAllowOrigins,
			validation.When(c.CORSEnabled, validation.Required, customValidation.NotBlank),
		),

		validation.Field(&c.RateLimitTokenRequestsPerSec,
			validation.When(c.RateLimitTokenEnabled, validation.Required, validation.Min(0.0).Exclusive()),
		),
		validation.Field(&c.RateLimitTokenBurst,
			validation.When(c.RateLimitTokenEnabled, validation.Required, validation.Min(1)),
		),

		validation.Field(&c.MetricsNamespace,
			validation.When(c.MetricsEnabled, validation.Required, customValidation.NotBlank),
		),
		validation.Field(&c.MetricsPort,
			validation.When(
				c.MetricsEnabled,
				validation.Required,
				validation.Min(1),
				validation.Max(65535),
				validation.NotIn(c.ServerPort).Error("must differ from the API server port"),
			),
		),
	)
	return customValidation.WrapConfigError(err)
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// Existing environment variables win over the file
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
