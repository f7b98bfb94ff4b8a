package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// SearchHandler handles listing search requests. Scraping of listing
// sources is not implemented yet, so the endpoint returns an empty result
// with the shape collectors expect.
type SearchHandler struct{}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler() *SearchHandler {
	return &SearchHandler{}
}

// SearchInput is the request body for the search endpoint.
type SearchInput struct {
	Body struct{}
}

// SearchOutput is the response body for the search endpoint.
type SearchOutput struct {
	Body struct {
		RawListings []map[string]any `json:"raw_listings" doc:"Raw scraped listings"`
	}
}

// Search returns the raw listings from the configured sources.
func (*SearchHandler) Search(_ context.Context, _ *SearchInput) (*SearchOutput, error) {
	out := &SearchOutput{}
	out.Body.RawListings = []map[string]any{}
	return out, nil
}

// RegisterSearchRoutes registers search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-listings",
		Method:      http.MethodPost,
		Path:        "/api/v1/search",
		Summary:     "Search listing sources",
		Description: "Returns raw listings from the configured sources. No " +
			"sources are wired yet, so the result is always empty.",
		Tags: []string{"search"},
	}, h.Search)
}
