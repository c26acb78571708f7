// ABOUTME: Feed autodiscovery finds RSS/Atom/JSON feed URLs advertised by website pages
// ABOUTME: Handles GitHub and Reddit URLs directly and parses <link rel="alternate"> tags otherwise

package discovery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"feed-discovery-api/core/domain"
	"feed-discovery-api/core/interfaces"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultConcurrency caps simultaneous page fetches per request
	DefaultConcurrency = 10

	// maxPageBytes bounds how much HTML is parsed per page
	maxPageBytes = 1 << 20
)

var (
	errFetchFailed = errors.New("failed to fetch page")
	errNoFeed      = errors.New("no RSS feed found")
)

// feedLinkSelector matches the link types browsers use for feed autodiscovery
const feedLinkSelector = `link[type="application/rss+xml"], link[type="application/atom+xml"], link[type="application/feed+json"]`

// Service implements interfaces.FeedDiscoverer
type Service struct {
	deps        interfaces.Dependencies
	concurrency int
}

// NewService creates a discovery service
func NewService(deps interfaces.Dependencies, concurrency int) *Service {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Service{deps: deps, concurrency: concurrency}
}

// DiscoverAll runs Discover for every site URL with bounded concurrency
func (s *Service) DiscoverAll(ctx context.Context, siteURLs []string) []domain.DiscoveryResult {
	results := make([]domain.DiscoveryResult, len(siteURLs))

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for i, siteURL := range siteURLs {
		i, siteURL := i, siteURL
		g.Go(func() error {
			feedURL, err := s.Discover(ctx, siteURL)
			if err != nil {
				results[i] = domain.DiscoveryResult{
					URL:    siteURL,
					Status: domain.DiscoveryError,
					Error:  err.Error(),
				}
				return nil
			}
			results[i] = domain.DiscoveryResult{
				URL:      siteURL,
				Status:   domain.DiscoveryOK,
				FeedLink: feedURL,
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Discover returns the first feed URL advertised by siteURL
func (s *Service) Discover(ctx context.Context, siteURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(siteURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid URL: %q", siteURL)
	}

	switch host := strings.TrimPrefix(strings.ToLower(u.Host), "www."); host {
	case "github.com":
		return githubFeedURL(u), nil
	case "reddit.com", "old.reddit.com":
		return redditFeedURL(u), nil
	}

	if s.deps.HTTPClient == nil {
		return "", errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, u.String())
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Debug("Feed discovery fetch failed", map[string]interface{}{
				"url":   siteURL,
				"error": err.Error(),
			})
		}
		return "", err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		return "", errFetchFailed
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body(), maxPageBytes))
	if err != nil {
		return "", err
	}

	var href string
	doc.Find(feedLinkSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if v, ok := sel.Attr("href"); ok && strings.TrimSpace(v) != "" {
			href = strings.TrimSpace(v)
			return false
		}
		return true
	})

	if href == "" {
		return "", errNoFeed
	}

	return resolve(u, href)
}

// githubFeedURL points at the repository commit feed
func githubFeedURL(u *url.URL) string {
	return "https://github.com" + strings.TrimRight(u.Path, "/") + "/commits/master.atom"
}

func redditFeedURL(u *url.URL) string {
	return "https://www.reddit.com" + strings.TrimRight(u.Path, "/") + "/.rss"
}

// resolve converts a relative href into an absolute URL against base
func resolve(base *url.URL, href string) (string, error) {
	ref, err := url.Parse(href)
	if err != nil {
		return "", err
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	return base.ResolveReference(ref).String(), nil
}
