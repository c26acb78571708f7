// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to the JSON error envelope or Huma HTTP errors

package handlers

import (
	"net/http"

	"feed-discovery-api/api/dto/responses"
	"feed-discovery-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toErrorResponse converts an error to a status code and error envelope.
// Only input violations are echoed back; anything else stays generic.
func toErrorResponse(err error) (int, responses.ErrorResponse) {
	if inputErr, ok := errors.AsInvalidInput(err); ok {
		return http.StatusBadRequest, responses.ErrorResponse{
			Error:   responses.ErrorInvalidInput,
			Details: inputErr.Violations,
		}
	}

	return http.StatusInternalServerError, responses.ErrorResponse{Error: responses.ErrorInternal}
}

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if inputErr, ok := errors.AsInvalidInput(err); ok {
		details := make([]error, 0, len(inputErr.Violations))
		for _, v := range inputErr.Violations {
			details = append(details, &huma.ErrorDetail{Message: v})
		}
		return huma.Error400BadRequest(responses.ErrorInvalidInput, details...)
	}

	return huma.Error500InternalServerError("Internal server error")
}
