package domain

import (
	"github.com/allisson/voice-token-server/internal/errors"
)

// Voice errors.
var (
	// ErrMissingSignature indicates a webhook request arrived without a signature header.
	ErrMissingSignature = errors.Wrap(errors.ErrForbidden, "missing webhook signature")

	// ErrSignatureMismatch indicates a webhook signature does not match the request.
	ErrSignatureMismatch = errors.Wrap(errors.ErrForbidden, "webhook signature mismatch")

	// ErrEmptyDialTarget indicates a call-control document was requested without a target.
	ErrEmptyDialTarget = errors.Wrap(errors.ErrInvalidInput, "dial target cannot be empty")

	// ErrUnknownTargetKind indicates a dial target of a kind the renderer cannot express.
	ErrUnknownTargetKind = errors.Wrap(errors.ErrInvalidInput, "unknown dial target kind")
)
