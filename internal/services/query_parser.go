package services

import (
	"regexp"
	"strconv"
	"strings"

	"nagaBack/internal/models"
)

// Stop words dropped from residual keywords. Generic directory nouns are in
// here on purpose: "shop in kohima" should not keyword-match every listing
// whose category mentions "shop".
var stopWords = map[string]struct{}{
	"store": {}, "shop": {}, "place": {}, "centre": {}, "center": {},
	"find": {}, "near": {}, "best": {}, "good": {},
	"a": {}, "the": {}, "in": {}, "at": {}, "of": {}, "for": {},
	"and": {}, "or": {}, "with": {}, "to": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "i": {}, "me": {}, "my": {}, "we": {},
	"our": {}, "some": {}, "any": {}, "where": {}, "which": {},
}

// conditionTable maps raw phrases to normalized condition tags. Matching is
// plain substring over the lowercased query, so "indoor" inside a longer
// word still triggers; that mirrors the production behavior and stays.
// Order is the declaration order; duplicate tags collapse.
var conditionTable = []struct {
	phrase string
	tag    string
}{
	{"non-veg", "non-veg"},
	{"nonveg", "non-veg"},
	{"veg", "veg"},
	{"air condition", "AC"},
	{"ac", "AC"},
	{"wi-fi", "WiFi"},
	{"wifi", "WiFi"},
	{"parking", "parking"},
	{"delivery", "delivery"},
	{"boys", "boys"},
	{"girls", "girls"},
	{"football", "football"},
	{"cricket", "cricket"},
	{"badminton", "badminton"},
	{"futsal", "futsal"},
	{"dental", "dental"},
	{"dentist", "dental"},
	{"skin", "dermatology"},
	{"eye", "eye"},
	{"24 hour", "24 hours"},
	{"24hr", "24 hours"},
	{"24", "24 hours"},
	{"emergency", "emergency"},
	{"food included", "meals included"},
	{"meals", "meals included"},
	{"dine-in", "dine-in"},
	{"dine", "dine-in"},
	{"takeaway", "takeaway"},
	{"indoor", "indoor"},
	{"outdoor", "outdoor"},
}

// Explicit-number price phrases, tried in order before the vague ones.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`under\s*₹?\s*(\d+)`),
	regexp.MustCompile(`below\s*₹?\s*(\d+)`),
	regexp.MustCompile(`less than\s*₹?\s*(\d+)`),
}

// InterpretQuery parses one free-text query into its structured parts:
// detected district, price constraint, condition tags and residual
// keywords. It never fails; everything not detected is simply absent.
func InterpretQuery(raw string) models.SearchQuery {
	q := models.SearchQuery{Raw: raw}

	q.District = detectDistrict(raw)

	clean := raw
	if q.District != "" {
		clean = stripDistrict(raw, q.District)
	}
	q.Clean = strings.TrimSpace(clean)

	lower := strings.ToLower(q.Clean)
	q.Price = detectPrice(lower)
	q.Conditions = detectConditions(lower)
	q.Keywords = extractKeywords(lower)
	return q
}

// detectDistrict returns the first enumerated district whose name occurs in
// the query, compared case-insensitively. Enumeration order breaks ties.
func detectDistrict(query string) string {
	lower := strings.ToLower(query)
	for _, d := range models.Districts {
		if strings.Contains(lower, strings.ToLower(d)) {
			return d
		}
	}
	return ""
}

// stripDistrict removes every occurrence of the district name from the
// query, case-insensitively.
func stripDistrict(query, district string) string {
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(district))
	if err != nil {
		return query
	}
	return re.ReplaceAllString(query, "")
}

// detectPrice applies the fixed price rules in priority order; only the
// first match counts. "cheap pg under 300" therefore caps at 300, not 500.
func detectPrice(lower string) *models.PriceRange {
	for _, re := range pricePatterns {
		if m := re.FindStringSubmatch(lower); m != nil {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				return &models.PriceRange{Max: &v}
			}
		}
	}
	if strings.Contains(lower, "cheap") || strings.Contains(lower, "budget") {
		v := 500.0
		return &models.PriceRange{Max: &v}
	}
	if strings.Contains(lower, "affordable") {
		v := 2000.0
		return &models.PriceRange{Max: &v}
	}
	return nil
}

func detectConditions(lower string) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, entry := range conditionTable {
		if !strings.Contains(lower, entry.phrase) {
			continue
		}
		if _, dup := seen[entry.tag]; dup {
			continue
		}
		seen[entry.tag] = struct{}{}
		tags = append(tags, entry.tag)
	}
	return tags
}

// extractKeywords splits the cleaned query on whitespace and keeps tokens
// longer than two characters that are not stop words. Duplicates are kept;
// matching downstream is existential so they are harmless.
func extractKeywords(lower string) []string {
	var keywords []string
	for _, token := range strings.Fields(lower) {
		if len(token) <= 2 {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}
