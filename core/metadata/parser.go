// ABOUTME: Body parsers turn a sampled feed body into display metadata
// ABOUTME: A gofeed-backed parser is available with sniffing as its fallback

package metadata

import (
	"bytes"
	"errors"
	"strings"

	"feed-discovery-api/core/domain"
	htmlutil "feed-discovery-api/pkg/utils/html"
	"github.com/mmcdole/gofeed"
)

// BodyParser extracts metadata from a (possibly truncated) feed body
type BodyParser interface {
	Parse(body []byte) (domain.Metadata, error)
}

// FeedParser parses bodies as RSS, Atom or JSON feeds using gofeed.
// Truncated or malformed bodies fail and should be handed to a fallback.
type FeedParser struct{}

// Parse implements BodyParser
func (FeedParser) Parse(body []byte) (domain.Metadata, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return domain.DefaultMetadata(), err
	}

	meta := domain.DefaultMetadata()
	if title := htmlutil.StripHTML(strings.TrimSpace(feed.Title)); title != "" {
		meta.Title = title
	}
	meta.Description = htmlutil.StripHTML(strings.TrimSpace(feed.Description))

	if meta.Title == domain.DefaultFeedTitle {
		return meta, errors.New("feed has no title")
	}
	return meta, nil
}

// FallbackParser tries Primary and uses Fallback when Primary fails
type FallbackParser struct {
	Primary  BodyParser
	Fallback BodyParser
}

// Parse implements BodyParser
func (p FallbackParser) Parse(body []byte) (domain.Metadata, error) {
	meta, err := p.Primary.Parse(body)
	if err == nil {
		return meta, nil
	}
	return p.Fallback.Parse(body)
}
