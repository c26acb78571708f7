package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestInvalidInputError_Error(t *testing.T) {
	err := &InvalidInputError{}
	err.Add("keywords cannot be empty")
	err.Add("limit must be between %d and %d", 1, 20)

	expected := "invalid input: keywords cannot be empty; limit must be between 1 and 20"
	if err.Error() != expected {
		t.Errorf("InvalidInputError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestInvalidInputError_ErrOrNil(t *testing.T) {
	empty := &InvalidInputError{}
	if empty.ErrOrNil() != nil {
		t.Error("ErrOrNil should return nil when no violations were added")
	}

	var nilErr *InvalidInputError
	if nilErr.ErrOrNil() != nil {
		t.Error("ErrOrNil should be safe on a nil receiver")
	}

	withViolation := &InvalidInputError{}
	withViolation.Add("language must be 'ja' or 'en'")
	if withViolation.ErrOrNil() == nil {
		t.Error("ErrOrNil should return the error when violations exist")
	}
}

func TestNetworkError_ErrorAndUnwrap(t *testing.T) {
	err := &NetworkError{
		Op:  "HEAD",
		URL: "https://example.com/feed.xml",
		Err: context.DeadlineExceeded,
	}

	expected := "HEAD https://example.com/feed.xml: context deadline exceeded"
	if err.Error() != expected {
		t.Errorf("NetworkError.Error() = %v, want %v", err.Error(), expected)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("NetworkError should unwrap to its cause")
	}
}

func TestIsInvalidInput_WrappedError(t *testing.T) {
	inputErr := &InvalidInputError{Violations: []string{"keywords cannot be empty"}}
	wrapped := fmt.Errorf("normalize request: %w", inputErr)

	if !IsInvalidInput(wrapped) {
		t.Error("IsInvalidInput should return true for wrapped InvalidInputError")
	}

	got, ok := AsInvalidInput(wrapped)
	if !ok {
		t.Fatal("AsInvalidInput should find the wrapped error")
	}
	if len(got.Violations) != 1 {
		t.Errorf("Violations = %v, want 1 entry", got.Violations)
	}
}

func TestIsInvalidInput_False(t *testing.T) {
	err := errors.New("some other error")

	if IsInvalidInput(err) {
		t.Error("IsInvalidInput should return false for unrelated errors")
	}
	if _, ok := AsInvalidInput(err); ok {
		t.Error("AsInvalidInput should not match unrelated errors")
	}
}

func TestIsNetwork(t *testing.T) {
	err := fmt.Errorf("probe: %w", &NetworkError{Op: "GET", URL: "https://x.invalid", Err: errors.New("no such host")})

	if !IsNetwork(err) {
		t.Error("IsNetwork should return true for wrapped NetworkError")
	}
	if IsNetwork(errors.New("plain")) {
		t.Error("IsNetwork should return false for unrelated errors")
	}
}

func TestIsCorpus(t *testing.T) {
	err := &CorpusError{Path: "feeds.json", Message: "duplicate url"}

	if !IsCorpus(err) {
		t.Error("IsCorpus should return true for CorpusError")
	}
	if err.Error() != "corpus feeds.json: duplicate url" {
		t.Errorf("CorpusError.Error() = %v", err.Error())
	}
}
