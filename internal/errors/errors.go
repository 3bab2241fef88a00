// Package errors provides standardized domain errors that express intent rather than
// infrastructure details. Use cases return them (usually wrapped) and HTTP handlers map
// them to status codes through the httputil package.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors shared by every module.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates a required configuration value is missing or malformed.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnauthorized indicates the request lacks valid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the request was authenticated but is not allowed,
	// e.g. a webhook whose signature does not match.
	ErrForbidden = errors.New("forbidden")

	// ErrTooManyRequests indicates the caller exceeded its rate limit.
	ErrTooManyRequests = errors.New("too many requests")
)

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message while preserving the error chain.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
