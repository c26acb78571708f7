// ABOUTME: Feed domain model represents a corpus entry and its scored form
// ABOUTME: Provides validation logic to ensure corpus records are well formed

package domain

import (
	"errors"
	"net/url"
	"strings"
)

// FeedRecord represents a known syndication feed in the reference corpus.
// Records are loaded once at startup and never mutated afterwards.
type FeedRecord struct {
	// URL is the feed's RSS/Atom URL and the unique key within the corpus
	URL string `json:"url" yaml:"url"`

	// Title is the human-readable title of the feed
	Title string `json:"title" yaml:"title"`

	// Description provides a brief description of the feed's content
	Description string `json:"description" yaml:"description"`

	// Category is the topical category the feed is filed under
	Category string `json:"category" yaml:"category"`

	// Tags are free-form topical labels
	Tags []string `json:"tags" yaml:"tags"`

	// Language is a two-letter language code (e.g., "en", "ja")
	Language string `json:"language" yaml:"language"`
}

// Validate checks if the record has valid required fields
func (f FeedRecord) Validate() error {
	if strings.TrimSpace(f.URL) == "" {
		return errors.New("feed URL cannot be empty")
	}

	u, err := url.Parse(f.URL)
	if err != nil || u.Host == "" {
		return errors.New("feed URL is not valid format")
	}

	if strings.TrimSpace(f.Title) == "" {
		return errors.New("feed title cannot be empty")
	}

	return nil
}

// ScoredFeed is a corpus record paired with its relevance for one query.
type ScoredFeed struct {
	FeedRecord

	// Relevance is always within [0, 1]
	Relevance float64
}
