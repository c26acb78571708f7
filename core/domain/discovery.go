// ABOUTME: Discovery domain model for website to feed URL lookups
// ABOUTME: One result per submitted site URL

package domain

// Discovery statuses
const (
	DiscoveryOK    = "ok"
	DiscoveryError = "error"
)

// DiscoveryResult is the outcome of looking for a feed on one website
type DiscoveryResult struct {
	URL      string
	Status   string
	FeedLink string
	Error    string
}
