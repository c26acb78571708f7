// ABOUTME: Metadata extractor fetches a bounded sample of a feed body and sniffs title/description
// ABOUTME: Uses colly with a body size cap and request timeout; never returns an error

package metadata

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"feed-discovery-api/core/domain"
	"feed-discovery-api/core/interfaces"
	"github.com/gocolly/colly"
)

const (
	// DefaultMaxBytes caps how much of a feed body is read
	DefaultMaxBytes = 100 * 1024

	// DefaultTimeout bounds one extraction
	DefaultTimeout = 5 * time.Second

	collyUserAgent = "FeedDiscoveryAPI/1.0 (+metadata)"
)

// Options configures an Extractor
type Options struct {
	MaxBytes int
	Timeout  time.Duration

	// Parser turns the sampled body into metadata; defaults to SniffParser
	Parser BodyParser

	// Transport is used for outgoing requests; defaults to http.DefaultTransport
	Transport http.RoundTripper
}

// Extractor implements interfaces.MetadataExtractor
type Extractor struct {
	deps      interfaces.Dependencies
	maxBytes  int
	timeout   time.Duration
	parser    BodyParser
	transport http.RoundTripper
}

// NewExtractor creates an extractor, filling unset options with defaults
func NewExtractor(deps interfaces.Dependencies, opts Options) *Extractor {
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Parser == nil {
		opts.Parser = SniffParser{}
	}
	if opts.Transport == nil {
		opts.Transport = http.DefaultTransport
	}
	return &Extractor{
		deps:      deps,
		maxBytes:  opts.MaxBytes,
		timeout:   opts.Timeout,
		parser:    opts.Parser,
		transport: opts.Transport,
	}
}

// Extract fetches at most maxBytes of the body at targetURL and returns its
// title and description. Any failure yields domain.DefaultMetadata.
func (e *Extractor) Extract(ctx context.Context, targetURL string) (meta domain.Metadata) {
	meta = domain.DefaultMetadata()

	defer func() {
		if rec := recover(); rec != nil {
			e.debug("Recovered from metadata extraction panic", map[string]interface{}{
				"url":   targetURL,
				"panic": fmt.Sprint(rec),
			})
			meta = domain.DefaultMetadata()
		}
	}()

	body, err := e.fetch(ctx, targetURL)
	if err != nil {
		e.debug("Failed to fetch feed for metadata", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
		return meta
	}

	parsed, err := e.parser.Parse(body)
	if err != nil {
		e.debug("Metadata parse degraded to defaults", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
	}
	return parsed
}

// fetch downloads the sampled body. colly stops reading at MaxBodySize.
func (e *Extractor) fetch(ctx context.Context, targetURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	c := colly.NewCollector(
		colly.UserAgent(collyUserAgent),
		colly.MaxBodySize(e.maxBytes),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(e.timeout)
	c.WithTransport(&contextTransport{ctx: ctx, base: e.transport})

	var body []byte
	var visitErr error

	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	c.OnError(func(r *colly.Response, err error) {
		visitErr = fmt.Errorf("status %d: %w", r.StatusCode, err)
	})

	if err := c.Visit(targetURL); err != nil {
		if visitErr != nil {
			return nil, visitErr
		}
		return nil, err
	}
	if visitErr != nil {
		return nil, visitErr
	}

	return body, nil
}

func (e *Extractor) debug(msg string, fields map[string]interface{}) {
	if e.deps.Logger != nil {
		e.deps.Logger.Debug(msg, fields)
	}
}

// contextTransport binds outgoing requests to a context so cancellation
// and deadlines apply to colly's requests
type contextTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}
