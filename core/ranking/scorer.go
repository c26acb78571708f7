// ABOUTME: Relevance scorer computes a weighted keyword match score for one corpus record
// ABOUTME: Pure function with fixed additive weights, a soft language penalty and a 1.0 cap

package ranking

import (
	"strings"

	"feed-discovery-api/core/domain"
)

// Field weights in tenths. Summing integers keeps scores exact and
// independent of keyword order.
const (
	titleWeight       = 4
	descriptionWeight = 3
	categoryWeight    = 2
	tagWeight         = 1

	// LanguagePenalty multiplies the score once when the feed language
	// differs from the requested one
	LanguagePenalty = 0.7

	// MaxScore caps the relevance
	MaxScore = 1.0
)

// Score returns the relevance of feed for the given lower-cased keywords and
// optional language preference. The result is always within [0, 1].
func Score(feed domain.FeedRecord, keywords []string, language string) float64 {
	title := strings.ToLower(feed.Title)
	description := strings.ToLower(feed.Description)
	category := strings.ToLower(feed.Category)

	tenths := 0
	for _, keyword := range keywords {
		keyword = strings.ToLower(keyword)
		if keyword == "" {
			continue
		}
		if strings.Contains(title, keyword) {
			tenths += titleWeight
		}
		if strings.Contains(description, keyword) {
			tenths += descriptionWeight
		}
		if strings.Contains(category, keyword) {
			tenths += categoryWeight
		}
		if anyTagContains(feed.Tags, keyword) {
			tenths += tagWeight
		}
	}

	score := float64(tenths) / 10
	if language != "" && !strings.EqualFold(language, feed.Language) {
		score *= LanguagePenalty
	}
	if score > MaxScore {
		score = MaxScore
	}
	return score
}

func anyTagContains(tags []string, keyword string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), keyword) {
			return true
		}
	}
	return false
}
