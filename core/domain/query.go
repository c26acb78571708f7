// ABOUTME: Query domain model describes a normalized search request
// ABOUTME: Holds the keyword set, optional language preference and result limit

package domain

const (
	// DefaultLimit is used when the caller does not supply a limit
	DefaultLimit = 5

	// MinLimit is the smallest accepted limit
	MinLimit = 1

	// MaxLimit is the largest accepted limit
	MaxLimit = 20
)

// Supported language preferences
const (
	LanguageEnglish  = "en"
	LanguageJapanese = "ja"
)

// Query is the canonical form of a search request
type Query struct {
	// Keywords are lower-cased and unique, at least one is present
	Keywords []string

	// Language is a soft preference; empty means no preference
	Language string

	// Limit caps the number of ranked results
	Limit int
}
