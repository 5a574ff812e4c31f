package commonerrors_test

import (
	"errors"
	"fmt"
	"testing"

	commonerrors "github.com/profiled/accounts/internal/common/errors"
)

func TestDomainError_WithCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := commonerrors.ErrDatabaseError.WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("expected cause to be unwrappable")
	}

	if err.Code() != commonerrors.ErrDatabaseError.Code() {
		t.Errorf("expected code to survive WithCause, got %s", err.Code())
	}

	// The sentinel itself must stay untouched.
	if commonerrors.ErrDatabaseError.Unwrap() != nil {
		t.Error("expected sentinel to remain without cause")
	}
}

func TestDomainError_WithTraceID(t *testing.T) {
	err := commonerrors.ErrUserNotFound.WithTraceID("trace-123")

	if err.TraceID() != "trace-123" {
		t.Errorf("expected trace id, got %q", err.TraceID())
	}
	if commonerrors.ErrUserNotFound.TraceID() != "" {
		t.Error("expected sentinel to remain without trace id")
	}
}

func TestAsDomainError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", commonerrors.ErrInvalidToken)

	de, ok := commonerrors.AsDomainError(wrapped)
	if !ok || de.Code() != "INVALID_TOKEN" {
		t.Errorf("expected INVALID_TOKEN through wrapping, got %v", wrapped)
	}

	if _, ok := commonerrors.AsDomainError(errors.New("plain")); ok {
		t.Error("expected plain error not to match")
	}

	if commonerrors.IsDomainError(errors.New("plain")) {
		t.Error("expected plain error not to be a domain error")
	}
}
