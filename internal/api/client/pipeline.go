package client

import (
	"context"

	domain "github.com/Nathalie1962/recenseur-backend/pkg/types"
)

// ScoreResponse is the response of the score endpoint.
type ScoreResponse struct {
	ScoreReno    float64  `json:"score_reno"`
	MatchedTerms []string `json:"matched_terms"`
}

// ScoreText scores a free-text listing description.
func (c *Client) ScoreText(ctx context.Context, texte string) (*ScoreResponse, error) {
	var resp ScoreResponse
	body := map[string]string{"texte": texte}
	if err := c.post(ctx, "/api/v1/score", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExtractResponse is the response of the extract endpoint.
type ExtractResponse struct {
	Listing domain.Listing `json:"listing"`
}

// ExtractFeatures normalizes a raw scraped listing.
func (c *Client) ExtractFeatures(ctx context.Context, raw map[string]any) (*ExtractResponse, error) {
	var resp ExtractResponse
	body := map[string]any{"raw_listing": raw}
	if err := c.post(ctx, "/api/v1/extract", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DedupeResponse is the response of the dedupe endpoint.
type DedupeResponse struct {
	ListingsUnique []domain.Listing `json:"listings_unique"`
}

// Dedupe removes duplicate listings by canonical key.
func (c *Client) Dedupe(ctx context.Context, listings []domain.Listing) (*DedupeResponse, error) {
	var resp DedupeResponse
	body := map[string]any{"listings": listings}
	if err := c.post(ctx, "/api/v1/dedupe", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PersistResponse is the response of the persist endpoint.
type PersistResponse struct {
	StoredCount int `json:"stored_count"`
}

// Persist appends listings to the server-side store.
func (c *Client) Persist(ctx context.Context, listings []domain.Listing) (*PersistResponse, error) {
	var resp PersistResponse
	body := map[string]any{"listings": listings}
	if err := c.post(ctx, "/api/v1/persist", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchResponse is the response of the search endpoint.
type SearchResponse struct {
	RawListings []map[string]any `json:"raw_listings"`
}

// SearchListings fetches raw listings from the configured sources.
func (c *Client) SearchListings(ctx context.Context) (*SearchResponse, error) {
	var resp SearchResponse
	if err := c.post(ctx, "/api/v1/search", map[string]any{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
