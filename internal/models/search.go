package models

// PriceRange is a price constraint derived from the query text. Either
// bound may be absent.
type PriceRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// SearchQuery is the structured reading of one free-text query. It lives
// for a single search invocation.
type SearchQuery struct {
	Raw        string      `json:"raw"`
	Clean      string      `json:"clean"`
	District   string      `json:"district,omitempty"`
	Price      *PriceRange `json:"price,omitempty"`
	Conditions []string    `json:"conditions,omitempty"`
	Keywords   []string    `json:"keywords,omitempty"`
}

// SearchResponse is what the search endpoint returns to the UI. The
// detected district is reported even when an explicit city filter won, so
// the frontend can show "showing results for Kohima".
type SearchResponse struct {
	Listings         []Listing `json:"listings"`
	DetectedDistrict *string   `json:"detected_city"`
}
