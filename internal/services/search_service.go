package services

import (
	"context"

	"nagaBack/internal/models"
)

// Searcher is the outward face of the pipeline. The HTTP handler and the
// cache decorator both program against it.
type Searcher interface {
	Search(ctx context.Context, rawQuery, cityFilter string) (models.SearchResponse, error)
}

// ListingSource is the read path into the listing store. FetchActive must
// return only active listings, optionally narrowed to one district, and an
// empty pool is a normal outcome rather than an error.
type ListingSource interface {
	FetchActive(ctx context.Context, district string) ([]models.Listing, error)
}

// Ranker is the AI fallback stage.
type Ranker interface {
	Rank(ctx context.Context, candidates []models.Listing, cleanQuery, district string) ([]models.Listing, error)
}

// SearchService runs the four-stage pipeline: interpret the query, load
// candidates, filter on structured conditions, match residual keywords,
// and only then escalate to the AI ranker. Stages run strictly in order;
// each consumes the previous stage's output.
type SearchService struct {
	ListingRepo ListingSource
	Ranker      Ranker
}

// Search executes one query. An explicit city filter always wins over the
// district detected in the query text; the detected district is still
// reported for the UI. The AI ranker runs at most once, and any failure
// there degrades to the condition-filtered pool so the endpoint keeps
// returning something structurally valid.
func (s *SearchService) Search(ctx context.Context, rawQuery, cityFilter string) (models.SearchResponse, error) {
	resp := models.SearchResponse{Listings: []models.Listing{}}

	// Blank search: nothing to do, and no reason to touch the store.
	if rawQuery == "" && cityFilter == "" {
		return resp, nil
	}

	query := InterpretQuery(rawQuery)
	if query.District != "" {
		d := query.District
		resp.DetectedDistrict = &d
	}

	activeDistrict := cityFilter
	if activeDistrict == "" {
		activeDistrict = query.District
	}

	candidates, err := s.ListingRepo.FetchActive(ctx, activeDistrict)
	if err != nil {
		return resp, err
	}
	if len(candidates) == 0 {
		return resp, nil
	}

	filtered := filterByConditions(candidates, query.Conditions, query.Price)
	if len(filtered) == 0 {
		return resp, nil
	}

	matched := matchKeywords(filtered, query.Keywords)
	if len(matched) > 0 {
		resp.Listings = matched
		return resp, nil
	}

	// Zero keyword matches on a non-empty residual query: one shot at the
	// AI ranker. Without a residual query an empty pool is final.
	if query.Clean == "" || s.Ranker == nil {
		resp.Listings = filtered
		return resp, nil
	}

	ranked, err := s.Ranker.Rank(ctx, filtered, query.Clean, activeDistrict)
	if err != nil {
		// Best effort only: a degraded ranking dependency must not turn a
		// working filter pipeline into a hard failure.
		resp.Listings = filtered
		return resp, nil
	}
	resp.Listings = ranked
	return resp, nil
}
