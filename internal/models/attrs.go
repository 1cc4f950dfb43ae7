package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ExtraAttrs is the typed view over a listing's category-dependent
// attribute bag. The bag itself stays opaque to the search core except for
// the recognized price fields; unknown keys are ignored, never errored on.
type ExtraAttrs interface {
	// PriceValues lists the numeric price_* fields present in the bag.
	PriceValues() []float64
}

// PGAttrs describes paying-guest accommodation attributes.
type PGAttrs struct {
	PricePerMonth *float64 `json:"price_per_month,omitempty"`
	Gender        string   `json:"gender,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	MealsIncluded *bool    `json:"meals_included,omitempty"`
}

func (a PGAttrs) PriceValues() []float64 {
	return collectPrices(a.PricePerMonth)
}

// HotelAttrs describes hotel attributes.
type HotelAttrs struct {
	PricePerNight *float64 `json:"price_per_night,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
}

func (a HotelAttrs) PriceValues() []float64 {
	return collectPrices(a.PricePerNight)
}

// RentalAttrs describes rental attributes.
type RentalAttrs struct {
	PricePerMonth *float64 `json:"price_per_month,omitempty"`
	PricePerDay   *float64 `json:"price_per_day,omitempty"`
	Deposit       *float64 `json:"deposit,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
}

func (a RentalAttrs) PriceValues() []float64 {
	return collectPrices(a.PricePerMonth, a.PricePerDay)
}

// TurfAttrs describes sports turf attributes.
type TurfAttrs struct {
	PricePerHour *float64 `json:"price_per_hour,omitempty"`
	Sports       []string `json:"sports,omitempty"`
	Setting      string   `json:"setting,omitempty"` // indoor / outdoor
}

func (a TurfAttrs) PriceValues() []float64 {
	return collectPrices(a.PricePerHour)
}

// RestaurantAttrs describes restaurant and cafe attributes.
type RestaurantAttrs struct {
	Cuisine      []string `json:"cuisine,omitempty"`
	FoodType     string   `json:"food_type,omitempty"` // veg / non-veg
	ServiceModes []string `json:"service_modes,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
}

func (a RestaurantAttrs) PriceValues() []float64 { return nil }

// ClinicAttrs describes hospital, clinic and pharmacy attributes.
type ClinicAttrs struct {
	Specialties []string `json:"specialties,omitempty"`
	Emergency   *bool    `json:"emergency,omitempty"`
	OpenHours   string   `json:"open_hours,omitempty"`
}

func (a ClinicAttrs) PriceValues() []float64 { return nil }

// GenericAttrs is the fallback view for categories without a dedicated
// struct and for bags that fail typed decoding. Price fields are found by
// key prefix.
type GenericAttrs map[string]interface{}

func (a GenericAttrs) PriceValues() []float64 {
	var prices []float64
	for key, value := range a {
		if !strings.HasPrefix(key, "price_") {
			continue
		}
		switch v := value.(type) {
		case float64:
			prices = append(prices, v)
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				prices = append(prices, f)
			}
		}
	}
	return prices
}

// ExtraAttrs decodes the raw bag into the variant matching the listing's
// category. Decoding is lenient: malformed or unknown-shaped bags degrade
// to GenericAttrs, an empty bag yields nil.
func (l *Listing) ExtraAttrs() ExtraAttrs {
	if len(l.Attrs) == 0 {
		return nil
	}
	switch l.Category {
	case "pg":
		var a PGAttrs
		if json.Unmarshal(l.Attrs, &a) == nil {
			return a
		}
	case "hotel":
		var a HotelAttrs
		if json.Unmarshal(l.Attrs, &a) == nil {
			return a
		}
	case "rental":
		var a RentalAttrs
		if json.Unmarshal(l.Attrs, &a) == nil {
			return a
		}
	case "turf":
		var a TurfAttrs
		if json.Unmarshal(l.Attrs, &a) == nil {
			return a
		}
	case "restaurant", "cafe":
		var a RestaurantAttrs
		if json.Unmarshal(l.Attrs, &a) == nil {
			return a
		}
	case "hospital", "clinic", "pharmacy":
		var a ClinicAttrs
		if json.Unmarshal(l.Attrs, &a) == nil {
			return a
		}
	}
	var g GenericAttrs
	if json.Unmarshal(l.Attrs, &g) == nil {
		return g
	}
	return nil
}

func collectPrices(values ...*float64) []float64 {
	var prices []float64
	for _, v := range values {
		if v != nil {
			prices = append(prices, *v)
		}
	}
	return prices
}
