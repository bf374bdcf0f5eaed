package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorMessagePrecedence(t *testing.T) {
	inner := stderrors.New("connection refused")

	withMessage := New(CodeTransportFailed, "fetch pending papers", inner)
	if got := withMessage.Error(); got != "fetch pending papers" {
		t.Fatalf("expected message, got %q", got)
	}

	withoutMessage := New(CodeTransportFailed, "", inner)
	if got := withoutMessage.Error(); got != "connection refused" {
		t.Fatalf("expected wrapped error text, got %q", got)
	}

	bare := New(CodeDecodeFailed, "", nil)
	if got := bare.Error(); got != string(CodeDecodeFailed) {
		t.Fatalf("expected code text, got %q", got)
	}
}

func TestCodeOfWalksChain(t *testing.T) {
	inner := New(CodeConfigurationError, "missing host_url", nil)
	wrapped := fmt.Errorf("startup: %w", inner)

	if got := CodeOf(wrapped); got != CodeConfigurationError {
		t.Fatalf("expected %s, got %s", CodeConfigurationError, got)
	}
	if !IsCode(wrapped, CodeConfigurationError) {
		t.Fatal("IsCode should match through wrapping")
	}
	if IsCode(wrapped, CodeTransportFailed) {
		t.Fatal("IsCode matched the wrong code")
	}
}

func TestCodeOfPlainError(t *testing.T) {
	if got := CodeOf(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("expected unknown code, got %s", got)
	}
}
