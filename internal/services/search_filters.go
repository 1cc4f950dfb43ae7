package services

import (
	"strings"

	"nagaBack/internal/models"
)

// filterByConditions applies the structured constraints from the query to
// the candidate pool. With nothing to filter it is an identity pass, not a
// drop-everything. Order is preserved.
//
// The two checks are deliberately asymmetric: price is existential (any one
// present price value inside the range is enough, and a listing with no
// price data at all is never excluded by price), conditions are conjunctive
// (every requested tag must appear in the serialized attribute bag).
func filterByConditions(candidates []models.Listing, conditions []string, price *models.PriceRange) []models.Listing {
	if len(conditions) == 0 && price == nil {
		return candidates
	}

	filtered := make([]models.Listing, 0, len(candidates))
	for _, listing := range candidates {
		if price != nil && !passesPrice(&listing, price) {
			continue
		}
		if !passesConditions(&listing, conditions) {
			continue
		}
		filtered = append(filtered, listing)
	}
	return filtered
}

func passesPrice(listing *models.Listing, price *models.PriceRange) bool {
	values := listing.PriceValues()
	if len(values) == 0 {
		// Sparse listings stay in: a price cap only applies where price
		// data exists.
		return true
	}
	if price.Max != nil {
		ok := false
		for _, v := range values {
			if v <= *price.Max {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if price.Min != nil {
		ok := false
		for _, v := range values {
			if v >= *price.Min {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func passesConditions(listing *models.Listing, conditions []string) bool {
	if len(conditions) == 0 {
		return true
	}
	blob := listing.AttrsText()
	for _, tag := range conditions {
		if !strings.Contains(blob, strings.ToLower(tag)) {
			return false
		}
	}
	return true
}

// matchKeywords keeps candidates whose text surface contains any of the
// residual keywords. No keywords means pass-through, not zero matches; an
// empty result here is a meaningful signal to the caller, not an error.
func matchKeywords(candidates []models.Listing, keywords []string) []models.Listing {
	if len(keywords) == 0 {
		return candidates
	}

	matched := make([]models.Listing, 0, len(candidates))
	for _, listing := range candidates {
		surface := listing.SearchSurface()
		for _, kw := range keywords {
			if strings.Contains(surface, kw) {
				matched = append(matched, listing)
				break
			}
		}
	}
	return matched
}
