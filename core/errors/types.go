// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for input validation, network and corpus failures

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidInputError represents a rejected request. It carries every
// violated rule so callers can fix all of them in one round trip.
type InvalidInputError struct {
	Violations []string
}

// Error implements the error interface
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Violations, "; "))
}

// Add records a violated rule
func (e *InvalidInputError) Add(format string, args ...interface{}) {
	e.Violations = append(e.Violations, fmt.Sprintf(format, args...))
}

// ErrOrNil returns the error when at least one rule was violated
func (e *InvalidInputError) ErrOrNil() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}

// NetworkError represents a failed or timed out outbound call
type NetworkError struct {
	Op  string
	URL string
	Err error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying cause
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// CorpusError represents a problem loading the reference corpus
type CorpusError struct {
	Path    string
	Message string
}

// Error implements the error interface
func (e *CorpusError) Error() string {
	return fmt.Sprintf("corpus %s: %s", e.Path, e.Message)
}

// IsInvalidInput checks if an error is an InvalidInputError
func IsInvalidInput(err error) bool {
	var inputErr *InvalidInputError
	return errors.As(err, &inputErr)
}

// AsInvalidInput extracts an InvalidInputError from an error chain
func AsInvalidInput(err error) (*InvalidInputError, bool) {
	var inputErr *InvalidInputError
	if errors.As(err, &inputErr) {
		return inputErr, true
	}
	return nil, false
}

// IsNetwork checks if an error is a NetworkError
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsCorpus checks if an error is a CorpusError
func IsCorpus(err error) bool {
	var corpusErr *CorpusError
	return errors.As(err, &corpusErr)
}
