// ABOUTME: Validation domain models for candidate feed URL checks
// ABOUTME: Defines probe outcomes, extracted metadata and per-URL results

package domain

// DefaultFeedTitle is reported when no title could be extracted
const DefaultFeedTitle = "Unknown Feed"

// Metadata is the minimal display information sniffed from a feed body
type Metadata struct {
	Title       string
	Description string
}

// DefaultMetadata returns the fallback metadata used on any extraction failure
func DefaultMetadata() Metadata {
	return Metadata{Title: DefaultFeedTitle}
}

// ProbeResult is the outcome of a single liveness check
type ProbeResult struct {
	// Valid is true only for a 200 response
	Valid bool

	// StatusCode is zero when no response was received
	StatusCode int

	// ContentType is the response Content-Type header, if any
	ContentType string

	// FeedLike reports whether ContentType looks like a syndication feed
	FeedLike bool

	// Error describes why the probe failed
	Error string
}

// ValidationResult is the per-URL outcome of a validation request.
// Exactly one of the Valid/Invalid variants is meaningful, selected by Valid.
type ValidationResult struct {
	URL   string
	Valid bool

	// Title and Description are set for valid results
	Title       string
	Description string

	// Reason is set for invalid results
	Reason string

	// StatusCode is zero when the URL never produced a response
	StatusCode int
}

// NewValidResult builds the Valid variant
func NewValidResult(url string, meta Metadata, statusCode int) ValidationResult {
	return ValidationResult{
		URL:         url,
		Valid:       true,
		Title:       meta.Title,
		Description: meta.Description,
		StatusCode:  statusCode,
	}
}

// NewInvalidResult builds the Invalid variant
func NewInvalidResult(url, reason string, statusCode int) ValidationResult {
	return ValidationResult{
		URL:        url,
		Reason:     reason,
		StatusCode: statusCode,
	}
}
