// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for ranking, validation and metadata services

package interfaces

import (
	"context"

	"feed-discovery-api/core/domain"
)

// FeedRanker ranks the corpus for a normalized query
type FeedRanker interface {
	Rank(query domain.Query) []domain.ScoredFeed

	// Source identifies the corpus the ranking was computed against
	Source() string
}

// URLProber performs a bounded-time liveness check for one URL
type URLProber interface {
	Probe(ctx context.Context, url string) domain.ProbeResult
}

// MetadataExtractor sniffs display metadata from a feed URL.
// Implementations never fail; they fall back to domain.DefaultMetadata.
type MetadataExtractor interface {
	Extract(ctx context.Context, url string) domain.Metadata
}

// FeedValidator validates a batch of candidate feed URLs
type FeedValidator interface {
	ValidateAll(ctx context.Context, urls []string) []domain.ValidationResult
}

// FeedDiscoverer finds feed URLs advertised by website pages
type FeedDiscoverer interface {
	Discover(ctx context.Context, siteURL string) (string, error)

	// DiscoverAll returns one result per site URL in input order
	DiscoverAll(ctx context.Context, siteURLs []string) []domain.DiscoveryResult
}

// Recorder receives service level measurements
type Recorder interface {
	ObserveSearch(resultCount int)
	ObserveValidation(valid bool)
	ObserveProbeDuration(seconds float64)
}
