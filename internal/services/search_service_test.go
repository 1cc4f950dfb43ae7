package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nagaBack/internal/models"
)

type fakeListingSource struct {
	listings  []models.Listing
	err       error
	calls     int
	districts []string
}

func (f *fakeListingSource) FetchActive(ctx context.Context, district string) ([]models.Listing, error) {
	f.calls++
	f.districts = append(f.districts, district)
	if f.err != nil {
		return nil, f.err
	}
	if district == "" {
		return f.listings, nil
	}
	var out []models.Listing
	for _, l := range f.listings {
		if l.City == district {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeRanker struct {
	result []models.Listing
	err    error
	calls  int
}

func (f *fakeRanker) Rank(ctx context.Context, candidates []models.Listing, cleanQuery, district string) ([]models.Listing, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func restaurantFixture() models.Listing {
	tags := "momos"
	return models.Listing{
		ID:       uuid.NewString(),
		Name:     "Naga Kitchen",
		Category: "restaurant",
		City:     "Kohima",
		Address:  "Main Town",
		Tags:     &tags,
		Plan:     models.PlanBasic,
		IsActive: true,
	}
}

func pgFixture(name string, rent float64) models.Listing {
	attrs, _ := json.Marshal(map[string]interface{}{
		"price_per_month": rent,
		"amenities":       []string{"wifi"},
	})
	return models.Listing{
		ID:       uuid.NewString(),
		Name:     name,
		Category: "pg",
		City:     "Dimapur",
		Address:  "Circular Road",
		Attrs:    attrs,
		Plan:     models.PlanFree,
		IsActive: true,
	}
}

func TestSearch_BlankQueryShortCircuits(t *testing.T) {
	repo := &fakeListingSource{}
	svc := &SearchService{ListingRepo: repo}

	resp, err := svc.Search(context.Background(), "", "")
	require.NoError(t, err)
	assert.Empty(t, resp.Listings)
	assert.Nil(t, resp.DetectedDistrict)
	assert.Zero(t, repo.calls, "blank search must not touch the store")
}

func TestSearch_KeywordMatchScenario(t *testing.T) {
	repo := &fakeListingSource{listings: []models.Listing{restaurantFixture()}}
	ranker := &fakeRanker{}
	svc := &SearchService{ListingRepo: repo, Ranker: ranker}

	resp, err := svc.Search(context.Background(), "best momos in Kohima", "")
	require.NoError(t, err)

	require.NotNil(t, resp.DetectedDistrict)
	assert.Equal(t, "Kohima", *resp.DetectedDistrict)
	require.Len(t, resp.Listings, 1)
	assert.Equal(t, "Naga Kitchen", resp.Listings[0].Name)
	assert.Zero(t, ranker.calls, "keyword hit must not escalate to the ranker")
	assert.Equal(t, []string{"Kohima"}, repo.districts)
}

func TestSearch_PriceFilterIsBinding(t *testing.T) {
	cheap := pgFixture("Budget PG", 2500)
	dear := pgFixture("Deluxe PG", 4000)
	repo := &fakeListingSource{listings: []models.Listing{cheap, dear}}
	svc := &SearchService{ListingRepo: repo}

	resp, err := svc.Search(context.Background(), "pg under 3000 with wifi", "Dimapur")
	require.NoError(t, err)

	require.Len(t, resp.Listings, 1)
	assert.Equal(t, "Budget PG", resp.Listings[0].Name)
}

func TestSearch_ExplicitCityOverridesDetected(t *testing.T) {
	kohima := restaurantFixture()
	dimapur := restaurantFixture()
	dimapur.City = "Dimapur"
	repo := &fakeListingSource{listings: []models.Listing{kohima, dimapur}}
	svc := &SearchService{ListingRepo: repo}

	resp, err := svc.Search(context.Background(), "momos in Kohima", "Dimapur")
	require.NoError(t, err)

	assert.Equal(t, []string{"Dimapur"}, repo.districts)
	require.NotNil(t, resp.DetectedDistrict)
	assert.Equal(t, "Kohima", *resp.DetectedDistrict, "detection is still reported")
	require.Len(t, resp.Listings, 1)
	assert.Equal(t, "Dimapur", resp.Listings[0].City)
}

func TestSearch_StopWordOnlyQueryReturnsPool(t *testing.T) {
	repo := &fakeListingSource{listings: []models.Listing{restaurantFixture()}}
	ranker := &fakeRanker{}
	svc := &SearchService{ListingRepo: repo, Ranker: ranker}

	resp, err := svc.Search(context.Background(), "best", "Kohima")
	require.NoError(t, err)

	assert.Len(t, resp.Listings, 1, "no signal means the unfiltered pool")
	assert.Zero(t, ranker.calls)
}

func TestSearch_FallbackInvokedOnceOnZeroMatches(t *testing.T) {
	listing := restaurantFixture()
	repo := &fakeListingSource{listings: []models.Listing{listing}}
	ranker := &fakeRanker{result: []models.Listing{listing}}
	svc := &SearchService{ListingRepo: repo, Ranker: ranker}

	resp, err := svc.Search(context.Background(), "sushi Kohima", "")
	require.NoError(t, err)

	assert.Equal(t, 1, ranker.calls)
	require.Len(t, resp.Listings, 1)
	assert.Equal(t, listing.ID, resp.Listings[0].ID)
}

func TestSearch_FallbackFailureDegradesToFilteredPool(t *testing.T) {
	listing := restaurantFixture()
	repo := &fakeListingSource{listings: []models.Listing{listing}}
	ranker := &fakeRanker{err: errors.New("quota exhausted")}
	svc := &SearchService{ListingRepo: repo, Ranker: ranker}

	resp, err := svc.Search(context.Background(), "sushi Kohima", "")
	require.NoError(t, err, "a degraded ranker must not fail the request")

	assert.Equal(t, 1, ranker.calls)
	require.Len(t, resp.Listings, 1, "pre-fallback pool, not empty")
	assert.Equal(t, listing.ID, resp.Listings[0].ID)
}

func TestSearch_FallbackEmptyArrayIsNoResults(t *testing.T) {
	repo := &fakeListingSource{listings: []models.Listing{restaurantFixture()}}
	ranker := &fakeRanker{result: []models.Listing{}}
	svc := &SearchService{ListingRepo: repo, Ranker: ranker}

	resp, err := svc.Search(context.Background(), "sushi Kohima", "")
	require.NoError(t, err)
	assert.Empty(t, resp.Listings)
}

func TestSearch_NoRankerConfigured(t *testing.T) {
	listing := restaurantFixture()
	repo := &fakeListingSource{listings: []models.Listing{listing}}
	svc := &SearchService{ListingRepo: repo}

	resp, err := svc.Search(context.Background(), "sushi Kohima", "")
	require.NoError(t, err)
	require.Len(t, resp.Listings, 1, "no ranker degrades like a ranker failure")
}

func TestSearch_StoreErrorPropagates(t *testing.T) {
	repo := &fakeListingSource{err: errors.New("connection refused")}
	svc := &SearchService{ListingRepo: repo}

	_, err := svc.Search(context.Background(), "momos", "")
	require.Error(t, err)
}

func TestSearch_EmptyPoolIsNotAnError(t *testing.T) {
	repo := &fakeListingSource{}
	svc := &SearchService{ListingRepo: repo}

	resp, err := svc.Search(context.Background(), "momos in Wokha", "")
	require.NoError(t, err)
	assert.Empty(t, resp.Listings)
}
