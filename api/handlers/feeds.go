// ABOUTME: Feed handler exposes ranked search and URL validation over HTTP
// ABOUTME: POST /feeds dispatches on the request body; search and validate also have dedicated routes

package handlers

import (
	"context"
	"fmt"
	"net/http"

	"feed-discovery-api/api/dto/mappers"
	"feed-discovery-api/api/dto/requests"
	"feed-discovery-api/core/domain"
	coreerrors "feed-discovery-api/core/errors"
	"feed-discovery-api/core/interfaces"
	"feed-discovery-api/core/query"
	"github.com/danielgtaylor/huma/v2"
)

// DefaultMaxValidateURLs bounds one validation request when no cap is configured
const DefaultMaxValidateURLs = 50

// QueryNormalizer turns raw search parameters into a canonical query
type QueryNormalizer interface {
	Normalize(p query.Params) (domain.Query, error)
}

// FeedsHandler handles search and validation requests
type FeedsHandler struct {
	deps       interfaces.Dependencies
	normalizer QueryNormalizer
	ranker     interfaces.FeedRanker
	validator  interfaces.FeedValidator
	maxURLs    int
}

// NewFeedsHandler creates a new feeds handler. maxURLs caps the URLs in one
// validation request; a non-positive value selects DefaultMaxValidateURLs.
func NewFeedsHandler(deps interfaces.Dependencies, normalizer QueryNormalizer, ranker interfaces.FeedRanker, validator interfaces.FeedValidator, maxURLs int) *FeedsHandler {
	if maxURLs < 1 {
		maxURLs = DefaultMaxValidateURLs
	}
	return &FeedsHandler{
		deps:       deps,
		normalizer: normalizer,
		ranker:     ranker,
		validator:  validator,
		maxURLs:    maxURLs,
	}
}

// RegisterRoutes registers feed routes
func (h *FeedsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "feeds",
		Method:      http.MethodPost,
		Path:        "/feeds",
		Summary:     "Search or validate feeds",
		Description: "Ranks the feed corpus for keywords, or validates candidate feed URLs when `validate` is true or `mode` is \"validate\"",
		Tags:        []string{"Feeds"},
	}, h.Feeds)

	huma.Register(api, huma.Operation{
		OperationID: "searchFeeds",
		Method:      http.MethodGet,
		Path:        "/feeds/search",
		Summary:     "Search feeds",
		Description: "Ranks the feed corpus for comma or space separated keywords",
		Tags:        []string{"Feeds"},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "validateFeeds",
		Method:      http.MethodPost,
		Path:        "/feeds/validate",
		Summary:     "Validate feed URLs",
		Description: "Checks candidate feed URLs for liveness and extracts their title and description",
		Tags:        []string{"Feeds"},
	}, h.Validate)
}

// FeedsInput carries the raw request body so malformed fields are
// reported in the error envelope rather than rejected by schema validation
type FeedsInput struct {
	RawBody []byte `contentType:"application/json"`
}

// SearchInput defines the query parameters of GET /feeds/search
type SearchInput struct {
	Keywords string `query:"keywords" doc:"Comma or space separated keywords, or a JSON array"`
	Language string `query:"language" doc:"Preferred language: 'en' or 'ja'"`
	Limit    string `query:"limit" doc:"Maximum number of results"`
}

// EnvelopeOutput is a JSON envelope with a per-request status code
type EnvelopeOutput struct {
	Status int
	Body   any
}

// Feeds handles the POST /feeds endpoint
func (h *FeedsHandler) Feeds(ctx context.Context, input *FeedsInput) (*EnvelopeOutput, error) {
	return h.guard("feeds", func() (any, error) {
		req, err := requests.DecodeFeedsRequest(input.RawBody)
		if err != nil {
			return nil, err
		}

		if req.IsValidation() {
			return h.validate(ctx, req.URLs)
		}
		return h.search(query.Params{
			Keywords: req.Keywords,
			Language: req.Language,
			Limit:    req.Limit,
		})
	}), nil
}

// Search handles the GET /feeds/search endpoint
func (h *FeedsHandler) Search(ctx context.Context, input *SearchInput) (*EnvelopeOutput, error) {
	// absent query parameters stay nil so they read as "not supplied"
	var params query.Params
	if input.Keywords != "" {
		params.Keywords = input.Keywords
	}
	if input.Language != "" {
		params.Language = input.Language
	}
	if input.Limit != "" {
		params.Limit = input.Limit
	}

	return h.guard("search", func() (any, error) {
		return h.search(params)
	}), nil
}

// Validate handles the POST /feeds/validate endpoint
func (h *FeedsHandler) Validate(ctx context.Context, input *FeedsInput) (*EnvelopeOutput, error) {
	return h.guard("validate", func() (any, error) {
		req, err := requests.DecodeFeedsRequest(input.RawBody)
		if err != nil {
			return nil, err
		}
		return h.validate(ctx, req.URLs)
	}), nil
}

func (h *FeedsHandler) search(params query.Params) (any, error) {
	q, err := h.normalizer.Normalize(params)
	if err != nil {
		return nil, err
	}

	ranked := h.ranker.Rank(q)
	if h.deps.Metrics != nil {
		h.deps.Metrics.ObserveSearch(len(ranked))
	}

	return mappers.ToSearchResponse(ranked, h.ranker.Source()), nil
}

func (h *FeedsHandler) validate(ctx context.Context, rawURLs interface{}) (any, error) {
	urls, err := requests.ParseURLs(rawURLs)
	if err != nil {
		return nil, err
	}
	if len(urls) > h.maxURLs {
		return nil, &coreerrors.InvalidInputError{
			Violations: []string{fmt.Sprintf("urls must contain at most %d entries", h.maxURLs)},
		}
	}

	results := h.validator.ValidateAll(ctx, urls)
	if len(results) != len(urls) {
		return nil, fmt.Errorf("validator returned %d results for %d urls", len(results), len(urls))
	}

	return mappers.ToValidationResponse(results), nil
}

// guard runs fn and wraps its outcome in an envelope. Panics and
// unexpected errors become a generic 500 with the detail logged.
func (h *FeedsHandler) guard(operation string, fn func() (any, error)) (out *EnvelopeOutput) {
	defer func() {
		if rec := recover(); rec != nil {
			out = h.failure(operation, fmt.Errorf("panic: %v", rec))
		}
	}()

	body, err := fn()
	if err != nil {
		return h.failure(operation, err)
	}
	return &EnvelopeOutput{Status: http.StatusOK, Body: body}
}

func (h *FeedsHandler) failure(operation string, err error) *EnvelopeOutput {
	status, envelope := toErrorResponse(err)

	if h.deps.Logger != nil {
		fields := map[string]interface{}{
			"operation": operation,
			"status":    status,
			"error":     err.Error(),
		}
		if status >= http.StatusInternalServerError {
			h.deps.Logger.Error("Feed request failed", fields)
		} else {
			h.deps.Logger.Debug("Feed request rejected", fields)
		}
	}

	return &EnvelopeOutput{Status: status, Body: envelope}
}
