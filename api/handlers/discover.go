// ABOUTME: Discover handler for finding feed URLs from regular website URLs
// ABOUTME: Delegates page fetching and link extraction to the discovery service

package handlers

import (
	"context"
	"net/http"

	"feed-discovery-api/api/dto/mappers"
	"feed-discovery-api/api/dto/responses"
	"feed-discovery-api/core/errors"
	"feed-discovery-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// maxDiscoverURLs bounds one discovery request
const maxDiscoverURLs = 50

// DiscoverHandler handles feed discovery
type DiscoverHandler struct {
	discoverer interfaces.FeedDiscoverer
}

// NewDiscoverHandler creates a new discover handler
func NewDiscoverHandler(discoverer interfaces.FeedDiscoverer) *DiscoverHandler {
	return &DiscoverHandler{
		discoverer: discoverer,
	}
}

// RegisterRoutes registers discover routes
func (h *DiscoverHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "discoverFeeds",
		Method:      http.MethodPost,
		Path:        "/discover",
		Summary:     "Discover feeds from websites",
		Description: "Attempts to discover RSS/Atom/JSON feed URLs from provided website URLs",
		Tags:        []string{"Discovery"},
	}, h.DiscoverFeeds)
}

// DiscoverFeedsInput defines the input for feed discovery
type DiscoverFeedsInput struct {
	Body struct {
		URLs []string `json:"urls" doc:"List of website URLs to discover feeds from"`
	}
}

// DiscoverFeedsOutput defines the output for feed discovery
type DiscoverFeedsOutput struct {
	Body struct {
		Feeds []responses.DiscoveryResult `json:"feeds" doc:"Discovery results for each URL"`
	}
}

// DiscoverFeeds handles the POST /discover endpoint
func (h *DiscoverHandler) DiscoverFeeds(ctx context.Context, input *DiscoverFeedsInput) (*DiscoverFeedsOutput, error) {
	violations := &errors.InvalidInputError{}
	if len(input.Body.URLs) == 0 {
		violations.Add("urls cannot be empty")
	}
	if len(input.Body.URLs) > maxDiscoverURLs {
		violations.Add("urls must contain at most %d entries", maxDiscoverURLs)
	}
	if err := violations.ErrOrNil(); err != nil {
		return nil, toHumaError(err)
	}

	output := &DiscoverFeedsOutput{}
	output.Body.Feeds = mappers.ToDiscoveryResults(h.discoverer.DiscoverAll(ctx, input.Body.URLs))
	return output, nil
}
