// ABOUTME: Shallow tag scanning for feed titles and descriptions
// ABOUTME: Tolerates malformed XML by never building a document tree

package metadata

import (
	"errors"
	"regexp"

	"feed-discovery-api/core/domain"
	htmlutil "feed-discovery-api/pkg/utils/html"
)

var (
	titlePattern       = regexp.MustCompile(`(?is)<title(?:\s[^>]*)?>(.*?)</title\s*>`)
	descriptionPattern = regexp.MustCompile(`(?is)<description(?:\s[^>]*)?>(.*?)</description\s*>`)
	subtitlePattern    = regexp.MustCompile(`(?is)<subtitle(?:\s[^>]*)?>(.*?)</subtitle\s*>`)
	cdataPattern       = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)\]\]>`)
)

// errNoTitle is returned when a body carries no usable title
var errNoTitle = errors.New("no title found")

// SniffParser extracts metadata with regular expressions
type SniffParser struct{}

// Parse returns the first <title> and the first <description>, falling back
// to <subtitle> for Atom feeds. Missing values take the defaults.
func (SniffParser) Parse(body []byte) (domain.Metadata, error) {
	meta := Sniff(body)
	if meta.Title == domain.DefaultFeedTitle {
		return meta, errNoTitle
	}
	return meta, nil
}

// Sniff is the non-failing form of SniffParser.Parse
func Sniff(body []byte) domain.Metadata {
	meta := domain.DefaultMetadata()
	if len(body) == 0 {
		return meta
	}

	text := string(body)

	if title := firstMatch(titlePattern, text); title != "" {
		meta.Title = title
	}

	if description := firstMatch(descriptionPattern, text); description != "" {
		meta.Description = description
	} else if subtitle := firstMatch(subtitlePattern, text); subtitle != "" {
		meta.Description = subtitle
	}

	return meta
}

func firstMatch(pattern *regexp.Regexp, text string) string {
	m := pattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return clean(m[1])
}

// clean unwraps CDATA sections, decodes entities once and strips markup.
// Escaped markup such as &lt;p&gt; is removed after decoding, but a
// literal "&amp;amp;" keeps one level of escaping.
func clean(value string) string {
	value = cdataPattern.ReplaceAllString(value, "$1")
	value = htmlutil.DecodeEntities(value)
	return htmlutil.StripTags(value)
}
