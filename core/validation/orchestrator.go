// ABOUTME: Validation orchestrator fans out probes and metadata extraction over candidate URLs
// ABOUTME: Bounded concurrency, one result per input URL in input order, failures stay per URL

package validation

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"feed-discovery-api/core/domain"
	"feed-discovery-api/core/interfaces"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency caps simultaneous per-URL checks
const DefaultConcurrency = 10

// Orchestrator validates batches of URLs
type Orchestrator struct {
	deps        interfaces.Dependencies
	prober      interfaces.URLProber
	extractor   interfaces.MetadataExtractor
	concurrency int
}

// NewOrchestrator creates an orchestrator. A non-positive concurrency
// selects DefaultConcurrency.
func NewOrchestrator(deps interfaces.Dependencies, prober interfaces.URLProber, extractor interfaces.MetadataExtractor, concurrency int) *Orchestrator {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Orchestrator{
		deps:        deps,
		prober:      prober,
		extractor:   extractor,
		concurrency: concurrency,
	}
}

// ValidateAll checks every URL independently and waits for all of them.
// The result slice has the same length and order as urls.
func (o *Orchestrator) ValidateAll(ctx context.Context, urls []string) []domain.ValidationResult {
	results := make([]domain.ValidationResult, len(urls))

	// Plain Group, not WithContext: one URL failing must not cancel the rest.
	var g errgroup.Group
	g.SetLimit(o.concurrency)

	for i, rawURL := range urls {
		i, rawURL := i, rawURL
		g.Go(func() error {
			results[i] = o.validateOne(ctx, rawURL)
			return nil
		})
	}
	_ = g.Wait()

	if o.deps.Metrics != nil {
		for _, r := range results {
			o.deps.Metrics.ObserveValidation(r.Valid)
		}
	}

	return results
}

func (o *Orchestrator) validateOne(ctx context.Context, rawURL string) (result domain.ValidationResult) {
	defer func() {
		if rec := recover(); rec != nil {
			if o.deps.Logger != nil {
				o.deps.Logger.Error("Panic while validating URL", map[string]interface{}{
					"url":   rawURL,
					"panic": fmt.Sprint(rec),
				})
			}
			result = domain.NewInvalidResult(rawURL, "internal error", 0)
		}
	}()

	if reason := checkSyntax(rawURL); reason != "" {
		return domain.NewInvalidResult(rawURL, reason, 0)
	}

	probe := o.prober.Probe(ctx, rawURL)
	if !probe.Valid {
		return domain.NewInvalidResult(rawURL, probe.Error, probe.StatusCode)
	}

	if !probe.FeedLike && o.deps.Logger != nil {
		o.deps.Logger.Debug("Accepted URL without feed content type", map[string]interface{}{
			"url":          rawURL,
			"content_type": probe.ContentType,
		})
	}

	meta := o.extractor.Extract(ctx, rawURL)
	return domain.NewValidResult(rawURL, meta, probe.StatusCode)
}

// checkSyntax rejects malformed URLs before any network call
func checkSyntax(rawURL string) string {
	if strings.TrimSpace(rawURL) == "" {
		return "URL is empty"
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "invalid URL format"
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "URL scheme must be http or https"
	}
	if u.Host == "" {
		return "URL host is missing"
	}
	return ""
}
