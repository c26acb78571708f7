// ABOUTME: Response DTOs for the feed search, validation and discovery endpoints
// ABOUTME: Field names follow the public JSON envelope

package responses

// SearchFeed is one ranked feed
type SearchFeed struct {
	URL         string  `json:"url" doc:"Feed URL"`
	Title       string  `json:"title" doc:"Feed title"`
	Description string  `json:"description" doc:"Feed description"`
	Category    string  `json:"category" doc:"Feed category"`
	Relevance   float64 `json:"relevance" minimum:"0" maximum:"1" doc:"Relevance score in [0,1]"`
}

// SearchResponse is the search success envelope
type SearchResponse struct {
	Feeds  []SearchFeed `json:"feeds" doc:"Ranked feeds, most relevant first"`
	Total  int          `json:"total" doc:"Number of feeds returned"`
	Source string       `json:"source" doc:"Corpus the ranking was computed against"`
}

// ValidFeed is a live candidate URL with its sniffed metadata
type ValidFeed struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StatusCode  int    `json:"statusCode"`
}

// InvalidFeed is a rejected candidate URL
type InvalidFeed struct {
	URL        string `json:"url"`
	Reason     string `json:"reason"`
	StatusCode int    `json:"statusCode,omitempty"`
}

// ValidationResponse is the validation success envelope
type ValidationResponse struct {
	ValidFeeds   []ValidFeed   `json:"validFeeds"`
	InvalidFeeds []InvalidFeed `json:"invalidFeeds"`
	Total        int           `json:"total"`
	ValidCount   int           `json:"validCount"`
	InvalidCount int           `json:"invalidCount"`
}

// ErrorResponse is the failure envelope
type ErrorResponse struct {
	Error   string   `json:"error" doc:"Machine-readable error code"`
	Details []string `json:"details,omitempty" doc:"Every violated input rule"`
}

// Error codes
const (
	ErrorInvalidInput = "invalid_input"
	ErrorInternal     = "internal_error"
)

// DiscoveryResult is the outcome for one website
type DiscoveryResult struct {
	URL      string `json:"url" doc:"Original URL that was checked"`
	Status   string `json:"status" doc:"Discovery status: 'ok' or 'error'"`
	FeedLink string `json:"feedLink,omitempty" doc:"Discovered feed URL"`
	Error    string `json:"error,omitempty" doc:"Error message if discovery failed"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status     string `json:"status"`
	CorpusSize int    `json:"corpusSize"`
	Source     string `json:"source"`
}
