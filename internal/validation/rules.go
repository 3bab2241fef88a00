// Package validation provides custom validation rules for the application.
package validation

import (
	"net/url"
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/voice-token-server/internal/errors"
)

var (
	// e164Regex matches a phone number in E.164 format (leading + and up to 15 digits)
	e164Regex = regexp.MustCompile(`^\+[1-9][0-9]{1,14}$`)

	// sidBodyRegex matches the 32 hex characters that follow a SID prefix
	sidBodyRegex = regexp.MustCompile(`^[0-9a-fA-F]{32}$`)
)

// WrapConfigError wraps validation errors as domain ErrInvalidConfig
func WrapConfigError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidConfig, err.Error())
}

// SID validates a telephony platform resource identifier: the two-letter prefix
// followed by 32 hex characters (e.g. "AC" for accounts, "SK" for API keys).
func SID(prefix string) validation.Rule {
	return validation.NewStringRuleWithError(
		func(s string) bool {
			if !strings.HasPrefix(s, prefix) {
				return false
			}
			return sidBodyRegex.MatchString(strings.TrimPrefix(s, prefix))
		},
		validation.NewError("validation_sid", "must be a SID starting with "+prefix+" followed by 32 hex characters"),
	)
}

// PhoneNumber validates a phone number in E.164 format
var PhoneNumber = validation.NewStringRuleWithError(
	func(s string) bool {
		return e164Regex.MatchString(s)
	},
	validation.NewError("validation_phone_number", "must be a phone number in E.164 format"),
)

// HTTPURL validates an absolute http or https URL without query or fragment
var HTTPURL = validation.NewStringRuleWithError(
	func(s string) bool {
		u, err := url.Parse(s)
		if err != nil {
			return false
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return false
		}
		return u.Host != "" && u.RawQuery == "" && u.Fragment == ""
	},
	validation.NewError("validation_http_url", "must be an absolute http(s) URL without query or fragment"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
