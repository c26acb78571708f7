// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Builds the search, validation and discovery envelopes

package mappers

import (
	"feed-discovery-api/api/dto/responses"
	"feed-discovery-api/core/domain"
)

// ToSearchResponse converts ranked feeds to the search envelope
func ToSearchResponse(feeds []domain.ScoredFeed, source string) responses.SearchResponse {
	out := responses.SearchResponse{
		Feeds:  make([]responses.SearchFeed, 0, len(feeds)),
		Total:  len(feeds),
		Source: source,
	}
	for _, f := range feeds {
		out.Feeds = append(out.Feeds, responses.SearchFeed{
			URL:         f.URL,
			Title:       f.Title,
			Description: f.Description,
			Category:    f.Category,
			Relevance:   f.Relevance,
		})
	}
	return out
}

// ToValidationResponse partitions results into valid and invalid feeds,
// keeping input order within each list
func ToValidationResponse(results []domain.ValidationResult) responses.ValidationResponse {
	out := responses.ValidationResponse{
		ValidFeeds:   make([]responses.ValidFeed, 0, len(results)),
		InvalidFeeds: make([]responses.InvalidFeed, 0),
		Total:        len(results),
	}
	for _, r := range results {
		if r.Valid {
			out.ValidFeeds = append(out.ValidFeeds, responses.ValidFeed{
				URL:         r.URL,
				Title:       r.Title,
				Description: r.Description,
				StatusCode:  r.StatusCode,
			})
			continue
		}
		out.InvalidFeeds = append(out.InvalidFeeds, responses.InvalidFeed{
			URL:        r.URL,
			Reason:     r.Reason,
			StatusCode: r.StatusCode,
		})
	}
	out.ValidCount = len(out.ValidFeeds)
	out.InvalidCount = len(out.InvalidFeeds)
	return out
}

// ToDiscoveryResults converts discovery outcomes
func ToDiscoveryResults(results []domain.DiscoveryResult) []responses.DiscoveryResult {
	out := make([]responses.DiscoveryResult, 0, len(results))
	for _, r := range results {
		out = append(out, responses.DiscoveryResult{
			URL:      r.URL,
			Status:   r.Status,
			FeedLink: r.FeedLink,
			Error:    r.Error,
		})
	}
	return out
}
