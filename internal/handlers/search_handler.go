package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"nagaBack/internal/services"
)

// SearchHandler exposes the search pipeline over HTTP.
type SearchHandler struct {
	Service  services.Searcher
	ErrorLog *log.Logger
}

// Search handles GET /search?q=...&city=... . The response always has the
// same shape; "no results" is an empty list, never an error status.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		http.Error(w, "service unavailable", http.StatusInternalServerError)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	city := strings.TrimSpace(r.URL.Query().Get("city"))

	response, err := h.Service.Search(r.Context(), query, city)
	if err != nil {
		if h.ErrorLog != nil {
			h.ErrorLog.Printf("search failed: %v", err)
		}
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}
