// ABOUTME: Corpus holds the read-only reference set of known feeds
// ABOUTME: Loads JSON or YAML reference files once at startup and enforces unique URLs

package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"feed-discovery-api/core/domain"
	coreerrors "feed-discovery-api/core/errors"
	"gopkg.in/yaml.v3"
)

// Corpus is an immutable, ordered collection of feed records.
// It is safe for concurrent use because nothing mutates it after construction.
type Corpus struct {
	records []domain.FeedRecord
	version string
}

// document is the object form of a corpus file
type document struct {
	Version string              `json:"version" yaml:"version"`
	Feeds   []domain.FeedRecord `json:"feeds" yaml:"feeds"`
}

// New builds a corpus from records, rejecting invalid or duplicate entries.
// The records are copied so later changes by the caller are not observed.
func New(records []domain.FeedRecord, version string) (*Corpus, error) {
	seen := make(map[string]int, len(records))
	owned := make([]domain.FeedRecord, len(records))

	for i, record := range records {
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if first, dup := seen[record.URL]; dup {
			return nil, fmt.Errorf("record %d: duplicate url %q (first seen at record %d)", i, record.URL, first)
		}
		seen[record.URL] = i

		record.Tags = append([]string(nil), record.Tags...)
		owned[i] = record
	}

	return &Corpus{records: owned, version: version}, nil
}

// Load reads a corpus file. Files ending in .yaml or .yml are decoded as YAML,
// anything else as JSON. Both a bare list of records and an object with
// "version" and "feeds" keys are accepted. A non-empty version argument
// overrides the version recorded in the file.
func Load(path, version string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &coreerrors.CorpusError{Path: path, Message: err.Error()}
	}

	doc, err := decode(path, data)
	if err != nil {
		return nil, &coreerrors.CorpusError{Path: path, Message: err.Error()}
	}

	if version == "" {
		version = doc.Version
	}

	c, err := New(doc.Feeds, version)
	if err != nil {
		return nil, &coreerrors.CorpusError{Path: path, Message: err.Error()}
	}
	return c, nil
}

func decode(path string, data []byte) (document, error) {
	var doc document

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var list []domain.FeedRecord
		if err := yaml.Unmarshal(data, &list); err == nil {
			doc.Feeds = list
			return doc, nil
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return doc, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &doc.Feeds); err != nil {
				return doc, fmt.Errorf("decode json: %w", err)
			}
			return doc, nil
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return doc, fmt.Errorf("decode json: %w", err)
		}
	}

	return doc, nil
}

// Len returns the number of records
func (c *Corpus) Len() int {
	return len(c.records)
}

// At returns the record at index i in corpus order.
// The Tags slice is shared with the corpus and must not be modified.
func (c *Corpus) At(i int) domain.FeedRecord {
	return c.records[i]
}

// Version returns the reference file version, possibly empty
func (c *Corpus) Version() string {
	return c.version
}

// Source describes the corpus for response envelopes
func (c *Corpus) Source() string {
	if c.version == "" {
		return "corpus"
	}
	return "corpus:" + c.version
}
