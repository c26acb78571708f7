package requests

import (
	"encoding/json"
	"testing"

	coreerrors "feed-discovery-api/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFeedsRequest(t *testing.T) {
	req, err := DecodeFeedsRequest([]byte(`{"keywords":["AI"],"language":"en","limit":5}`))

	require.NoError(t, err)
	assert.Equal(t, []interface{}{"AI"}, req.Keywords)
	assert.Equal(t, "en", req.Language)
	assert.Equal(t, json.Number("5"), req.Limit)
	assert.False(t, req.IsValidation())
}

func TestDecodeFeedsRequest_EmptyBody(t *testing.T) {
	req, err := DecodeFeedsRequest([]byte("  "))

	require.NoError(t, err)
	assert.Nil(t, req.Keywords)
	assert.False(t, req.IsValidation())
}

func TestDecodeFeedsRequest_NotAnObject(t *testing.T) {
	for _, body := range []string{`[1,2]`, `"text"`, `{broken`} {
		_, err := DecodeFeedsRequest([]byte(body))
		assert.True(t, coreerrors.IsInvalidInput(err), body)
	}
}

func TestFeedsRequest_IsValidation(t *testing.T) {
	tests := []struct {
		name string
		req  FeedsRequest
		want bool
	}{
		{"validate flag", FeedsRequest{Validate: true}, true},
		{"validate flag false", FeedsRequest{Validate: false}, false},
		{"validate string", FeedsRequest{Validate: "true"}, true},
		{"mode validate", FeedsRequest{Mode: "validate"}, true},
		{"mode case insensitive", FeedsRequest{Mode: " Validate "}, true},
		{"mode search", FeedsRequest{Mode: "search"}, false},
		{"nothing", FeedsRequest{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.IsValidation())
		})
	}
}

func TestParseURLs(t *testing.T) {
	urls, err := ParseURLs("  https://example.com/feed  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/feed"}, urls)

	urls, err = ParseURLs([]interface{}{"https://a.example/feed", "https://b.example/rss"})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example/feed", "https://b.example/rss"}, urls)

	urls, err = ParseURLs([]string{"https://a.example/feed", "https://a.example/feed"})
	require.NoError(t, err)
	assert.Len(t, urls, 2, "duplicates are kept, one result per input")
}

func TestParseURLs_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"missing", nil, "urls is required"},
		{"blank string", "  ", "urls cannot be empty"},
		{"empty array", []interface{}{}, "urls cannot be empty"},
		{"non-string element", []interface{}{"https://a.example", 3.0}, "urls must contain only strings"},
		{"wrong type", map[string]interface{}{}, "urls must be a string or an array of strings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseURLs(tt.in)
			inputErr, ok := coreerrors.AsInvalidInput(err)
			require.True(t, ok)
			assert.Equal(t, []string{tt.want}, inputErr.Violations)
		})
	}
}
