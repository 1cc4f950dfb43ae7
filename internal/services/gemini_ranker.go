package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"

	"nagaBack/internal/models"
)

const defaultRankTimeout = 10 * time.Second

// ErrNoRankerOutput is returned when the model response contains nothing
// that parses as a JSON array of listing IDs.
var ErrNoRankerOutput = errors.New("ranker returned no usable output")

// Models wrap JSON in prose more often than not; take the widest
// bracketed span, exactly like the production regex did.
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// TextModel is the slice of the langchaingo model surface the ranker
// needs. The Gemini client satisfies it; tests provide a fake.
type TextModel interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// GeminiRanker is the last-resort relevance stage: it hands the filtered
// candidate pool and the cleaned query to a generative model and asks for
// an ordered list of listing IDs.
type GeminiRanker struct {
	Model   TextModel
	Timeout time.Duration
}

// rankedListing is the compact projection sent to the model. Never the
// full record: it bounds payload size and keeps unrelated fields (owner,
// phone, plan) out of the prompt.
type rankedListing struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	City        string          `json:"city"`
	Tags        *string         `json:"tags,omitempty"`
	Description *string         `json:"description,omitempty"`
	PriceMin    *float64        `json:"price_min,omitempty"`
	PriceMax    *float64        `json:"price_max,omitempty"`
	Attrs       json.RawMessage `json:"attrs,omitempty"`
}

// Rank sends one ranking request and maps the returned IDs back onto the
// candidate pool. IDs the model invented or that went stale are dropped
// silently. Any transport or parse failure surfaces as an error; deciding
// what to fall back to is the orchestrator's call.
func (r *GeminiRanker) Rank(ctx context.Context, candidates []models.Listing, cleanQuery, district string) ([]models.Listing, error) {
	if r == nil || r.Model == nil {
		return nil, errors.New("ranker is not configured")
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultRankTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	prompt, err := buildRankPrompt(candidates, cleanQuery, district)
	if err != nil {
		return nil, err
	}

	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}

	resp, err := r.Model.GenerateContent(ctx, content, llms.WithTemperature(0.2))
	if err != nil {
		return nil, fmt.Errorf("generate ranking: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrNoRankerOutput
	}

	ids, err := parseRankedIDs(resp.Choices[0].Content)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.Listing, len(candidates))
	for _, listing := range candidates {
		byID[listing.ID] = listing
	}

	ranked := make([]models.Listing, 0, len(ids))
	for _, id := range ids {
		if listing, ok := byID[id]; ok {
			ranked = append(ranked, listing)
		}
	}
	return ranked, nil
}

func buildRankPrompt(candidates []models.Listing, cleanQuery, district string) (string, error) {
	projections := make([]rankedListing, 0, len(candidates))
	for _, l := range candidates {
		projections = append(projections, rankedListing{
			ID:          l.ID,
			Name:        l.Name,
			Category:    l.Category,
			City:        l.City,
			Tags:        l.Tags,
			Description: l.Description,
			PriceMin:    l.PriceMin,
			PriceMax:    l.PriceMax,
			Attrs:       l.Attrs,
		})
	}

	payload, err := json.Marshal(projections)
	if err != nil {
		return "", fmt.Errorf("marshal candidates: %w", err)
	}

	var b strings.Builder
	b.WriteString("Local search for Nagaland, India.\n")
	b.WriteString(fmt.Sprintf("Query: %q", cleanQuery))
	if district != "" {
		b.WriteString(" in " + district)
	}
	b.WriteString("\nReturn JSON array of matching business IDs. Consider price ranges if mentioned.\n")
	b.WriteString("Return [] if nothing matches.\n")
	b.WriteString("Businesses: ")
	b.Write(payload)
	b.WriteString("\nReturn ONLY: [\"id1\", \"id2\"]")
	return b.String(), nil
}

func parseRankedIDs(text string) ([]string, error) {
	match := jsonArrayPattern.FindString(text)
	if match == "" {
		return nil, ErrNoRankerOutput
	}
	var ids []string
	if err := json.Unmarshal([]byte(match), &ids); err != nil {
		return nil, fmt.Errorf("parse ranked ids: %w", err)
	}
	return ids, nil
}
