// Package api provides the HTTP layer of the feed discovery service.
// It uses the Huma framework on a chi router for OpenAPI documentation
// and a clean handler interface.
//
// # Layout
//
//   - server.go: router, CORS, middleware and Huma setup
//   - handlers/: HTTP request handlers
//   - dto/: request decoding, response envelopes and mappers
//   - middleware/: request logging, request IDs and HTTP metrics
//
// # Endpoints
//
//	POST /feeds            search, or validate when "validate" is true or "mode" is "validate"
//	GET  /feeds/search     search via query parameters
//	POST /feeds/validate   validate candidate feed URLs
//	POST /discover         find feed links on website pages
//	GET  /health           liveness and corpus size
//	GET  /metrics          Prometheus exposition
//
// The OpenAPI spec is served at /openapi.json and interactive docs at /docs.
//
// # Envelopes
//
// Search and validation handlers read the raw request body so that every
// input problem is reported in one response:
//
//	{"error": "invalid_input", "details": ["keywords cannot be empty", "limit must be between 1 and 20"]}
//
// Unexpected failures return {"error": "internal_error"} with status 500;
// the cause is logged, never returned.
//
// # Usage Example
//
//	api, router := api.NewAPIWithMiddleware(api.APIConfig{Logger: logger, Metrics: m})
//	handlers.NewFeedsHandler(deps, normalizer, engine, orchestrator, 50).RegisterRoutes(api)
//	http.ListenAndServe(":8000", router)
package api
