// ABOUTME: Request normalizer turns loosely typed search parameters into a canonical query
// ABOUTME: Collects every violated rule instead of stopping at the first one

package query

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"feed-discovery-api/core/domain"
	coreerrors "feed-discovery-api/core/errors"
)

// Params is the raw parameter bag supplied by a caller. Values arrive as
// decoded JSON (string, float64, []interface{}) or as query-string text.
type Params struct {
	Keywords interface{}
	Language interface{}
	Limit    interface{}
}

// Normalizer converts Params into a domain.Query
type Normalizer struct {
	defaultLimit int
	maxLimit     int
}

// NewNormalizer creates a normalizer. Non-positive arguments select the
// package defaults; maxLimit never exceeds domain.MaxLimit.
func NewNormalizer(defaultLimit, maxLimit int) *Normalizer {
	if maxLimit < domain.MinLimit || maxLimit > domain.MaxLimit {
		maxLimit = domain.MaxLimit
	}
	if defaultLimit < domain.MinLimit || defaultLimit > maxLimit {
		defaultLimit = domain.DefaultLimit
		if defaultLimit > maxLimit {
			defaultLimit = maxLimit
		}
	}
	return &Normalizer{defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// Normalize validates params and builds a query. On failure the returned
// error is a *errors.InvalidInputError listing every violation.
func (n *Normalizer) Normalize(p Params) (domain.Query, error) {
	violations := &coreerrors.InvalidInputError{}

	keywords := parseKeywords(p.Keywords, violations)
	limit := n.parseLimit(p.Limit, violations)
	language := parseLanguage(p.Language, violations)

	if err := violations.ErrOrNil(); err != nil {
		return domain.Query{}, err
	}

	return domain.Query{
		Keywords: keywords,
		Language: language,
		Limit:    limit,
	}, nil
}

// parseKeywords applies the precedence: sequence, JSON array string,
// comma separated string, whitespace separated string.
func parseKeywords(raw interface{}, violations *coreerrors.InvalidInputError) []string {
	var tokens []string

	switch v := raw.(type) {
	case nil:
		violations.Add("keywords is required")
		return nil
	case []string:
		tokens = v
	case []interface{}:
		var ok bool
		if tokens, ok = stringsOf(v); !ok {
			violations.Add("keywords must contain only strings")
			return nil
		}
	case string:
		var ok bool
		if tokens, ok = splitKeywordString(v); !ok {
			violations.Add("keywords must contain only strings")
			return nil
		}
	default:
		violations.Add("keywords must be an array or a string")
		return nil
	}

	keywords := dedupe(tokens)
	if len(keywords) == 0 {
		violations.Add("keywords cannot be empty")
		return nil
	}
	return keywords
}

// splitKeywordString reports false only for a JSON array holding non-strings
func splitKeywordString(s string) ([]string, bool) {
	trimmed := strings.TrimSpace(s)

	if strings.HasPrefix(trimmed, "[") {
		var arr []interface{}
		if err := json.Unmarshal([]byte(trimmed), &arr); err == nil {
			return stringsOf(arr)
		}
	}

	if strings.Contains(trimmed, ",") {
		return strings.Split(trimmed, ","), true
	}

	return strings.Fields(trimmed), true
}

func stringsOf(values []interface{}) ([]string, bool) {
	out := make([]string, 0, len(values))
	for _, value := range values {
		s, ok := value.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// dedupe trims, lower-cases and removes empty or repeated tokens
func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))

	for _, token := range tokens {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}

func (n *Normalizer) parseLimit(raw interface{}, violations *coreerrors.InvalidInputError) int {
	var limit int

	switch v := raw.(type) {
	case nil:
		return n.defaultLimit
	case int:
		limit = v
	case int64:
		limit = int(v)
	case float64:
		parsed, ok := integral(v)
		if !ok {
			violations.Add("limit must be an integer")
			return 0
		}
		limit = parsed
	case json.Number:
		// 10, 10.0 and 1e1 are all the integer ten
		f, err := v.Float64()
		if err != nil {
			violations.Add("limit must be an integer")
			return 0
		}
		parsed, ok := integral(f)
		if !ok {
			violations.Add("limit must be an integer")
			return 0
		}
		limit = parsed
	case string:
		if strings.TrimSpace(v) == "" {
			return n.defaultLimit
		}
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			violations.Add("limit must be an integer")
			return 0
		}
		limit = parsed
	default:
		violations.Add("limit must be an integer")
		return 0
	}

	if limit < domain.MinLimit || limit > n.maxLimit {
		violations.Add("limit must be between %d and %d", domain.MinLimit, n.maxLimit)
		return 0
	}
	return limit
}

// integral converts f to an int when it has no fractional part. Values far
// outside the int range are reported as ok and rejected by the range check.
func integral(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 {
		return math.MaxInt32, true
	}
	if f < math.MinInt32 {
		return math.MinInt32, true
	}
	return int(f), true
}

func parseLanguage(raw interface{}, violations *coreerrors.InvalidInputError) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		switch v {
		case "":
			return ""
		case domain.LanguageEnglish, domain.LanguageJapanese:
			return v
		}
	}

	violations.Add("language must be '%s' or '%s'", domain.LanguageJapanese, domain.LanguageEnglish)
	return ""
}
