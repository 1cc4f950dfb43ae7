package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"nagaBack/internal/models"
	"nagaBack/internal/repositories"
)

// ListingHandler serves public listing reads.
type ListingHandler struct {
	Repo     *repositories.ListingRepository
	ErrorLog *log.Logger
}

// GetBySlug handles GET /listing/:slug.
func (h *ListingHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := getParam(r, "slug")
	if slug == "" {
		http.Error(w, "slug is required", http.StatusBadRequest)
		return
	}

	listing, err := h.Repo.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			http.Error(w, "listing not found", http.StatusNotFound)
			return
		}
		if h.ErrorLog != nil {
			h.ErrorLog.Printf("get listing by slug: %v", err)
		}
		http.Error(w, "failed to load listing", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(listing)
}

// GetCities handles GET /city. The district list is the fixed enumeration
// the UI uses for its dropdown; there is no city table behind it.
func (h *ListingHandler) GetCities(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(models.Districts)
}
