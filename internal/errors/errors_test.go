package errors

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	t.Run("wrap sentinel keeps chain", func(t *testing.T) {
		wrapped := Wrap(ErrInvalidConfig, "TWILIO_API_KEY")
		if wrapped.Error() != "TWILIO_API_KEY: invalid configuration" {
			t.Errorf("unexpected message %q", wrapped.Error())
		}
		if !Is(wrapped, ErrInvalidConfig) {
			t.Error("expected wrapped error to match ErrInvalidConfig")
		}
	})

	t.Run("wrap nil error", func(t *testing.T) {
		if wrapped := Wrap(nil, "wrapped"); wrapped != nil {
			t.Errorf("expected nil, got %v", wrapped)
		}
	})
}

func TestWrapf(t *testing.T) {
	t.Run("formats message", func(t *testing.T) {
		wrapped := Wrapf(ErrForbidden, "webhook %s", "/voice")
		if wrapped.Error() != "webhook /voice: forbidden" {
			t.Errorf("unexpected message %q", wrapped.Error())
		}
		if !errors.Is(wrapped, ErrForbidden) {
			t.Error("expected wrapped error to match ErrForbidden")
		}
	})

	t.Run("wrapf nil error", func(t *testing.T) {
		if wrapped := Wrapf(nil, "wrapped %d", 1); wrapped != nil {
			t.Errorf("expected nil, got %v", wrapped)
		}
	})
}
