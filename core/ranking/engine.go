// ABOUTME: Ranking engine applies the relevance scorer across the corpus
// ABOUTME: Filters zero scores, stable-sorts by relevance and truncates to the query limit

package ranking

import (
	"cmp"
	"slices"

	"feed-discovery-api/core/corpus"
	"feed-discovery-api/core/domain"
)

// Engine ranks an injected, read-only corpus
type Engine struct {
	corpus *corpus.Corpus
}

// NewEngine creates a ranking engine over c
func NewEngine(c *corpus.Corpus) *Engine {
	return &Engine{corpus: c}
}

// Rank scores every record, drops those scoring zero, orders the rest by
// descending relevance (ties keep corpus order) and keeps at most q.Limit.
func (e *Engine) Rank(q domain.Query) []domain.ScoredFeed {
	scored := make([]domain.ScoredFeed, 0)

	for i := 0; i < e.corpus.Len(); i++ {
		record := e.corpus.At(i)
		relevance := Score(record, q.Keywords, q.Language)
		if relevance <= 0 {
			continue
		}
		scored = append(scored, domain.ScoredFeed{FeedRecord: record, Relevance: relevance})
	}

	slices.SortStableFunc(scored, func(a, b domain.ScoredFeed) int {
		return cmp.Compare(b.Relevance, a.Relevance)
	})

	if q.Limit >= 0 && len(scored) > q.Limit {
		scored = scored[:q.Limit]
	}

	for i := range scored {
		scored[i].Tags = slices.Clone(scored[i].Tags)
	}
	return scored
}

// Source identifies the ranked corpus
func (e *Engine) Source() string {
	return e.corpus.Source()
}
