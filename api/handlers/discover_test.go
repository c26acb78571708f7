package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"feed-discovery-api/core/domain"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverHandler_DiscoverFeeds(t *testing.T) {
	discoverer := &mockDiscoverer{
		discoverAllFunc: func(ctx context.Context, urls []string) []domain.DiscoveryResult {
			return []domain.DiscoveryResult{
				{URL: urls[0], Status: domain.DiscoveryOK, FeedLink: "https://blog.example/feed.xml"},
				{URL: urls[1], Status: domain.DiscoveryError, Error: "no RSS feed found"},
			}
		},
	}
	_, api := humatest.New(t)
	NewDiscoverHandler(discoverer).RegisterRoutes(api)

	resp := api.Post("/discover", map[string]interface{}{
		"urls": []string{"https://blog.example", "https://plain.example"},
	})

	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, `"feedLink":"https://blog.example/feed.xml"`)
	assert.Contains(t, body, `"error":"no RSS feed found"`)
}

func TestDiscoverHandler_RejectsEmptyAndOversizedRequests(t *testing.T) {
	discoverer := &mockDiscoverer{
		discoverAllFunc: func(ctx context.Context, urls []string) []domain.DiscoveryResult {
			t.Fatal("discoverer must not be called")
			return nil
		},
	}
	_, api := humatest.New(t)
	NewDiscoverHandler(discoverer).RegisterRoutes(api)

	resp := api.Post("/discover", map[string]interface{}{"urls": []string{}})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	many := make([]string, maxDiscoverURLs+1)
	for i := range many {
		many[i] = "https://site.example/" + strings.Repeat("a", i%5)
	}
	resp = api.Post("/discover", map[string]interface{}{"urls": many})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "at most 50")
}
