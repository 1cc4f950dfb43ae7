package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Districts is the fixed set of Nagaland districts a listing can belong to.
// Declaration order matters: query-side district detection scans this slice
// front to back and the first hit wins.
var Districts = []string{
	"Kohima", "Dimapur", "Mokokchung", "Wokha", "Mon", "Phek",
	"Tuensang", "Zunheboto", "Peren", "Longleng", "Kiphire",
	"Noklak", "Shamator", "Tseminyü", "Chümoukedima", "Niuland", "Meluri",
}

// Categories a listing can be registered under.
var Categories = []string{
	"restaurant", "cafe", "pg", "rental", "coaching", "school",
	"hospital", "clinic", "turf", "salon", "shop", "hotel",
	"pharmacy", "service", "other",
}

const (
	PlanFree  = "free"
	PlanBasic = "basic"
	PlanPro   = "pro"
)

// Listing is a single business record. The search core treats it as a
// read-only snapshot: it never writes listings back.
type Listing struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Category    string          `json:"category"`
	City        string          `json:"city"`
	Address     string          `json:"address"`
	Landmark    *string         `json:"landmark,omitempty"`
	Phone       string          `json:"phone"`
	Description *string         `json:"description,omitempty"`
	Tags        *string         `json:"tags,omitempty"`
	Amenities   *string         `json:"amenities,omitempty"`
	Attrs       json.RawMessage `json:"attrs,omitempty"`
	Plan        string          `json:"plan"`
	IsVerified  bool            `json:"is_verified"`
	IsActive    bool            `json:"is_active"`
	PriceMin    *float64        `json:"price_min,omitempty"`
	PriceMax    *float64        `json:"price_max,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

// IsKnownDistrict reports whether name is one of the enumerated districts,
// ignoring case. The canonical spelling is returned when it matches.
func IsKnownDistrict(name string) (string, bool) {
	for _, d := range Districts {
		if strings.EqualFold(d, name) {
			return d, true
		}
	}
	return "", false
}

// AttrsText returns the serialized extra-attributes bag lowercased, for
// substring matching. The raw bag is used rather than the typed view so
// keys the typed structs do not know about stay searchable.
func (l *Listing) AttrsText() string {
	if len(l.Attrs) == 0 {
		return ""
	}
	return strings.ToLower(string(l.Attrs))
}

// SearchSurface concatenates every free-text field of the listing into one
// lowercased blob. Absent optional fields are skipped, not rendered.
func (l *Listing) SearchSurface() string {
	parts := []string{l.Name, l.Category, l.Address}
	if l.Landmark != nil {
		parts = append(parts, *l.Landmark)
	}
	if l.Description != nil {
		parts = append(parts, *l.Description)
	}
	if l.Tags != nil {
		parts = append(parts, *l.Tags)
	}
	if l.Amenities != nil {
		parts = append(parts, *l.Amenities)
	}
	if len(l.Attrs) > 0 {
		parts = append(parts, string(l.Attrs))
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// PriceValues returns every numeric price_* value present in the listing's
// extra-attributes bag. The scan runs over the raw bag rather than the
// typed view so price fields a variant struct does not declare still
// count. Listings without price data return nil.
func (l *Listing) PriceValues() []float64 {
	if len(l.Attrs) == 0 {
		return nil
	}
	var g GenericAttrs
	if err := json.Unmarshal(l.Attrs, &g); err != nil {
		return nil
	}
	return g.PriceValues()
}
