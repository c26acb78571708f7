package validation

import (
	"context"
	"io"
	"strings"
	"sync"

	"feed-discovery-api/core/domain"
	"feed-discovery-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc  func(ctx context.Context, url string) (interfaces.Response, error)
	headFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) Head(ctx context.Context, url string) (interfaces.Response, error) {
	if m.headFunc != nil {
		return m.headFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockProber is a mock implementation of the URLProber interface
type mockProber struct {
	probeFunc func(ctx context.Context, url string) domain.ProbeResult
}

func (m *mockProber) Probe(ctx context.Context, url string) domain.ProbeResult {
	return m.probeFunc(ctx, url)
}

// mockExtractor is a mock implementation of the MetadataExtractor interface
type mockExtractor struct {
	mu    sync.Mutex
	calls []string
	meta  domain.Metadata
}

func (m *mockExtractor) Extract(ctx context.Context, url string) domain.Metadata {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()
	return m.meta
}

// mockRecorder is a mock implementation of the Recorder interface
type mockRecorder struct {
	mu      sync.Mutex
	valid   int
	invalid int
	probes  int
}

func (m *mockRecorder) ObserveSearch(resultCount int) {}

func (m *mockRecorder) ObserveValidation(valid bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if valid {
		m.valid++
	} else {
		m.invalid++
	}
}

func (m *mockRecorder) ObserveProbeDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.probes++
}
