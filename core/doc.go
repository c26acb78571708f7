// Package core contains the business logic for the Feed Discovery API.
// It is framework-agnostic and can be used independently of the HTTP
// layer or any infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (FeedRecord, Query, ScoredFeed, ValidationResult)
// - corpus: Loads and holds the read-only reference feed corpus
// - query: Normalizes raw search parameters into a Query
// - ranking: Relevance scoring and ranking over the corpus
// - validation: URL liveness probes and the batch validation orchestrator
// - metadata: Best-effort title/description sniffing from feed bodies
// - discovery: Feed autodiscovery from website pages
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger, metrics)
//
// # Usage Example
//
//	import (
//	    "feed-discovery-api/core/corpus"
//	    "feed-discovery-api/core/query"
//	    "feed-discovery-api/core/ranking"
//	)
//
//	feeds, err := corpus.Load("data/feeds.json", "")
//	if err != nil {
//	    return err
//	}
//
//	q, err := query.NewNormalizer(5, 20).Normalize(query.Params{
//	    Keywords: []interface{}{"tech", "ai"},
//	    Language: "en",
//	})
//	if err != nil {
//	    return err
//	}
//
//	ranked := ranking.NewEngine(feeds).Rank(q)
package core
