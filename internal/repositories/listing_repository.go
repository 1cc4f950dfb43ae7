package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"nagaBack/internal/models"
	"nagaBack/utils"
)

// ListingRepository reads the businesses table. The search core only ever
// reads; writes belong to the CRUD API that owns the table.
type ListingRepository struct {
	DB *sql.DB
}

const listingColumns = `id, name, slug, category, city, address, landmark, phone,
       description, tags, amenities, attrs, plan, is_verified, is_active,
       price_min, price_max, created_at, updated_at`

// FetchActive returns every active listing, optionally narrowed to one
// district. An empty pool is a normal result.
func (r *ListingRepository) FetchActive(ctx context.Context, district string) ([]models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM businesses WHERE is_active = 1`
	args := []interface{}{}
	if district != "" {
		query += ` AND city = ?`
		args = append(args, district)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch active listings: %w", err)
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch active listings: %w", err)
	}
	return listings, nil
}

// GetBySlug returns one active listing by its public slug.
func (r *ListingRepository) GetBySlug(ctx context.Context, slug string) (models.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM businesses WHERE slug = ? AND is_active = 1`

	row := r.DB.QueryRowContext(ctx, query, slug)
	listing, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Listing{}, models.ErrNoRecord
		}
		return models.Listing{}, fmt.Errorf("get listing by slug: %w", err)
	}
	return listing, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(row rowScanner) (models.Listing, error) {
	var (
		listing   models.Listing
		slug      sql.NullString
		landmark  sql.NullString
		desc      sql.NullString
		tags      sql.NullString
		amenities sql.NullString
		attrs     sql.NullString
		priceMin  sql.NullFloat64
		priceMax  sql.NullFloat64
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&listing.ID, &listing.Name, &slug, &listing.Category, &listing.City,
		&listing.Address, &landmark, &listing.Phone, &desc, &tags,
		&amenities, &attrs, &listing.Plan, &listing.IsVerified,
		&listing.IsActive, &priceMin, &priceMax, &listing.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return models.Listing{}, err
	}

	listing.Slug = slug.String
	if listing.Slug == "" {
		// Rows created before slugs existed get one on the way out.
		listing.Slug = utils.GenerateSlug(listing.Name, listing.City)
	}
	if landmark.Valid {
		listing.Landmark = &landmark.String
	}
	if desc.Valid {
		listing.Description = &desc.String
	}
	if tags.Valid {
		listing.Tags = &tags.String
	}
	if amenities.Valid {
		listing.Amenities = &amenities.String
	}
	if attrs.Valid && attrs.String != "" {
		listing.Attrs = json.RawMessage(attrs.String)
	}
	if priceMin.Valid {
		listing.PriceMin = &priceMin.Float64
	}
	if priceMax.Valid {
		listing.PriceMax = &priceMax.Float64
	}
	if updatedAt.Valid {
		listing.UpdatedAt = &updatedAt.Time
	}
	return listing, nil
}
