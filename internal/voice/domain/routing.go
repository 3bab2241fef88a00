package domain

import (
	"regexp"
	"strings"
)

// phoneNumberRegex matches an optional leading + followed by 3 to 15 ASCII digits.
// 15 is the E.164 maximum; fewer than 3 digits is treated as a client name.
var phoneNumberRegex = regexp.MustCompile(`^\+?[0-9]{3,15}$`)

// TargetKind distinguishes the two kinds of dial targets.
type TargetKind string

const (
	// TargetNumber dials a phone number on the public telephone network.
	TargetNumber TargetKind = "number"
	// TargetClient dials another client SDK registered under an identity.
	TargetClient TargetKind = "client"
)

// DialTarget is the single destination of a routing document.
type DialTarget struct {
	Kind  TargetKind
	Value string
	// CallerID is only set for TargetNumber.
	CallerID string
}

// RouteCallInput contains the destination received from the voice webhook.
type RouteCallInput struct {
	Destination string
}

// RouteCallOutput contains the routing decision and the rendered call-control document.
type RouteCallOutput struct {
	Target   DialTarget
	Document []byte
}

// IsPhoneNumber reports whether a destination, after trimming surrounding
// whitespace, is a phone number rather than a client identity.
func IsPhoneNumber(destination string) bool {
	return phoneNumberRegex.MatchString(strings.TrimSpace(destination))
}

// NewDialTarget classifies a destination. A destination that is empty after
// trimming resolves to a client target for defaultIdentity.
func NewDialTarget(destination, defaultIdentity, callerID string) DialTarget {
	trimmed := strings.TrimSpace(destination)
	if trimmed == "" {
		return DialTarget{Kind: TargetClient, Value: defaultIdentity}
	}

	if phoneNumberRegex.MatchString(trimmed) {
		return DialTarget{Kind: TargetNumber, Value: trimmed, CallerID: callerID}
	}

	return DialTarget{Kind: TargetClient, Value: trimmed}
}
