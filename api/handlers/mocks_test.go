package handlers

import (
	"context"
	"sync"

	"feed-discovery-api/core/domain"
)

// mockRanker is a mock implementation of the FeedRanker interface
type mockRanker struct {
	rankFunc func(q domain.Query) []domain.ScoredFeed
	queries  []domain.Query
}

func (m *mockRanker) Rank(q domain.Query) []domain.ScoredFeed {
	m.queries = append(m.queries, q)
	if m.rankFunc != nil {
		return m.rankFunc(q)
	}
	return nil
}

func (m *mockRanker) Source() string {
	return "corpus:test"
}

// mockValidator is a mock implementation of the FeedValidator interface
type mockValidator struct {
	validateFunc func(ctx context.Context, urls []string) []domain.ValidationResult
	calls        [][]string
}

func (m *mockValidator) ValidateAll(ctx context.Context, urls []string) []domain.ValidationResult {
	m.calls = append(m.calls, urls)
	if m.validateFunc != nil {
		return m.validateFunc(ctx, urls)
	}
	results := make([]domain.ValidationResult, len(urls))
	for i, u := range urls {
		results[i] = domain.NewValidResult(u, domain.DefaultMetadata(), 200)
	}
	return results
}

// mockDiscoverer is a mock implementation of the FeedDiscoverer interface
type mockDiscoverer struct {
	discoverAllFunc func(ctx context.Context, urls []string) []domain.DiscoveryResult
}

func (m *mockDiscoverer) Discover(ctx context.Context, siteURL string) (string, error) {
	return "", nil
}

func (m *mockDiscoverer) DiscoverAll(ctx context.Context, urls []string) []domain.DiscoveryResult {
	return m.discoverAllFunc(ctx, urls)
}

// mockLogger records log calls
type mockLogger struct {
	mu     sync.Mutex
	errors []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg+": "+fields["error"].(string))
}

// mockRecorder is a mock implementation of the Recorder interface
type mockRecorder struct {
	searches []int
}

func (m *mockRecorder) ObserveSearch(resultCount int)        { m.searches = append(m.searches, resultCount) }
func (m *mockRecorder) ObserveValidation(valid bool)         {}
func (m *mockRecorder) ObserveProbeDuration(seconds float64) {}
