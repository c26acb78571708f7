// ABOUTME: Request DTOs for the feed search and validation endpoints
// ABOUTME: Bodies are decoded leniently so every input problem can be reported at once

package requests

import (
	"bytes"
	"encoding/json"
	"strings"

	coreerrors "feed-discovery-api/core/errors"
)

// Request modes
const (
	ModeSearch   = "search"
	ModeValidate = "validate"
)

// FeedsRequest is the body of POST /feeds. Keywords, Language, Limit and
// URLs keep their raw JSON shapes; the normalizer and ParseURLs decide
// what is acceptable.
type FeedsRequest struct {
	Validate interface{} `json:"validate,omitempty"`
	Mode     string      `json:"mode,omitempty"`
	Keywords interface{} `json:"keywords,omitempty"`
	Language interface{} `json:"language,omitempty"`
	Limit    interface{} `json:"limit,omitempty"`
	URLs     interface{} `json:"urls,omitempty"`
}

// IsValidation reports whether the request selects validation mode
func (r FeedsRequest) IsValidation() bool {
	if strings.EqualFold(strings.TrimSpace(r.Mode), ModeValidate) {
		return true
	}
	switch v := r.Validate.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	}
	return false
}

// DecodeFeedsRequest parses a raw body. An empty body is an empty request.
// Numbers are kept as json.Number so integral limits survive untouched.
func DecodeFeedsRequest(raw []byte) (FeedsRequest, error) {
	var req FeedsRequest
	if len(bytes.TrimSpace(raw)) == 0 {
		return req, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return req, &coreerrors.InvalidInputError{Violations: []string{"request body must be a JSON object"}}
	}
	return req, nil
}

// ParseURLs accepts a single URL string or an array of strings
func ParseURLs(v interface{}) ([]string, error) {
	violations := &coreerrors.InvalidInputError{}

	switch urls := v.(type) {
	case nil:
		violations.Add("urls is required")
	case string:
		if strings.TrimSpace(urls) == "" {
			violations.Add("urls cannot be empty")
			break
		}
		return []string{strings.TrimSpace(urls)}, nil
	case []string:
		if len(urls) == 0 {
			violations.Add("urls cannot be empty")
			break
		}
		return urls, nil
	case []interface{}:
		if len(urls) == 0 {
			violations.Add("urls cannot be empty")
			break
		}
		out := make([]string, 0, len(urls))
		for _, item := range urls {
			s, ok := item.(string)
			if !ok {
				violations.Add("urls must contain only strings")
				return nil, violations
			}
			out = append(out, strings.TrimSpace(s))
		}
		return out, nil
	default:
		violations.Add("urls must be a string or an array of strings")
	}

	return nil, violations.ErrOrNil()
}
