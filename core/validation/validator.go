// ABOUTME: URL validator performs a bounded-time liveness probe for one candidate feed URL
// ABOUTME: Uses a HEAD request; only a 200 response counts as valid

package validation

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"feed-discovery-api/core/domain"
	coreerrors "feed-discovery-api/core/errors"
	"feed-discovery-api/core/interfaces"
)

// DefaultTimeout bounds a single probe
const DefaultTimeout = 5 * time.Second

// feedContentTypes are substrings of Content-Type values that look like feeds
var feedContentTypes = []string{"rss", "atom", "xml", "feed+json"}

// URLValidator probes URLs for reachability
type URLValidator struct {
	deps    interfaces.Dependencies
	timeout time.Duration
}

// NewURLValidator creates a validator. A non-positive timeout selects DefaultTimeout.
func NewURLValidator(deps interfaces.Dependencies, timeout time.Duration) *URLValidator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &URLValidator{
		deps:    deps,
		timeout: timeout,
	}
}

// Probe issues a HEAD request and reports whether the URL answered 200.
// A feed-like content type is recorded but not required. The call returns
// once the timeout elapses even if the server never answers.
func (v *URLValidator) Probe(ctx context.Context, rawURL string) domain.ProbeResult {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.ProbeResult{Error: "unsupported URL: only absolute http and https URLs are checked"}
	}

	if v.deps.HTTPClient == nil {
		return domain.ProbeResult{Error: "HTTP client not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	start := time.Now()
	resp, err := v.deps.HTTPClient.Head(ctx, rawURL)
	if v.deps.Metrics != nil {
		v.deps.Metrics.ObserveProbeDuration(time.Since(start).Seconds())
	}
	if err != nil {
		v.debug("Probe failed", map[string]interface{}{
			"url":     rawURL,
			"network": coreerrors.IsNetwork(err),
			"error":   err.Error(),
		})
		return domain.ProbeResult{Error: v.describe(ctx, err)}
	}
	defer resp.Body().Close()

	contentType := resp.Header("Content-Type")
	result := domain.ProbeResult{
		StatusCode:  resp.StatusCode(),
		ContentType: contentType,
		FeedLike:    IsFeedContentType(contentType),
		Valid:       resp.StatusCode() == 200,
	}
	if !result.Valid {
		result.Error = fmt.Sprintf("HTTP %d", resp.StatusCode())
	}

	return result
}

func (v *URLValidator) describe(ctx context.Context, err error) string {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Sprintf("timed out after %s", v.timeout)
	}
	if errors.Is(err, context.Canceled) {
		return "request cancelled"
	}

	// The client already names the method and URL; report only the cause
	var reqErr *coreerrors.NetworkError
	if errors.As(err, &reqErr) {
		return "network error: " + reqErr.Err.Error()
	}
	return "request failed: " + err.Error()
}

func (v *URLValidator) debug(msg string, fields map[string]interface{}) {
	if v.deps.Logger != nil {
		v.deps.Logger.Debug(msg, fields)
	}
}

// IsFeedContentType reports whether a Content-Type header value looks like
// an RSS, Atom or JSON feed
func IsFeedContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	for _, marker := range feedContentTypes {
		if strings.Contains(ct, marker) {
			return true
		}
	}
	return false
}
