package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"feed-discovery-api/core/domain"
	coreerrors "feed-discovery-api/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew_CopiesRecords(t *testing.T) {
	records := []domain.FeedRecord{
		{URL: "https://a.example/feed", Title: "A", Tags: []string{"go"}},
		{URL: "https://b.example/feed", Title: "B"},
	}

	c, err := New(records, "v1")
	require.NoError(t, err)

	records[0].Title = "mutated"
	records[0].Tags[0] = "mutated"

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "A", c.At(0).Title)
	assert.Equal(t, []string{"go"}, c.At(0).Tags)
	assert.Equal(t, "corpus:v1", c.Source())
}

func TestNew_RejectsDuplicateURL(t *testing.T) {
	_, err := New([]domain.FeedRecord{
		{URL: "https://a.example/feed", Title: "A"},
		{URL: "https://a.example/feed", Title: "A again"},
	}, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate url")
}

func TestNew_RejectsInvalidRecord(t *testing.T) {
	_, err := New([]domain.FeedRecord{{URL: "", Title: "A"}}, "")
	assert.Error(t, err)
}

func TestLoad_JSONArray(t *testing.T) {
	path := writeFile(t, "feeds.json", `[
		{"url": "https://a.example/feed", "title": "A", "description": "d", "category": "tech", "tags": ["ai"], "language": "en"},
		{"url": "https://b.example/feed", "title": "B", "language": "ja"}
	]`)

	c, err := Load(path, "2024-06")
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "tech", c.At(0).Category)
	assert.Equal(t, []string{"ai"}, c.At(0).Tags)
	assert.Equal(t, "ja", c.At(1).Language)
	assert.Equal(t, "2024-06", c.Version())
}

func TestLoad_JSONObjectWithVersion(t *testing.T) {
	path := writeFile(t, "feeds.json", `{"version": "3", "feeds": [{"url": "https://a.example/feed", "title": "A"}]}`)

	c, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, "3", c.Version())
	assert.Equal(t, "corpus:3", c.Source())
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "feeds.yaml", `
version: "7"
feeds:
  - url: https://a.example/feed
    title: A
    category: science
    tags: [space, physics]
    language: en
`)

	c, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []string{"space", "physics"}, c.At(0).Tags)
	assert.Equal(t, "7", c.Version())
}

func TestLoad_YAMLList(t *testing.T) {
	path := writeFile(t, "feeds.yml", `
- url: https://a.example/feed
  title: A
- url: https://b.example/feed
  title: B
`)

	c, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "corpus", c.Source())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"), "")
		assert.True(t, coreerrors.IsCorpus(err))
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeFile(t, "feeds.json", `[{"url":`)
		_, err := Load(path, "")
		assert.True(t, coreerrors.IsCorpus(err))
	})

	t.Run("duplicate url", func(t *testing.T) {
		path := writeFile(t, "feeds.json", `[{"url": "https://a.example/feed", "title": "A"}, {"url": "https://a.example/feed", "title": "B"}]`)
		_, err := Load(path, "")
		assert.True(t, coreerrors.IsCorpus(err))
	})
}

func TestLoad_RepositoryCorpus(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "data", "feeds.json"), "")
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 0)
}
