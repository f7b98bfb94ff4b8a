package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Nathalie1962/recenseur-backend/pkg/extract"
	domain "github.com/Nathalie1962/recenseur-backend/pkg/types"
)

// ExtractHandler handles feature extraction requests.
type ExtractHandler struct{}

// NewExtractHandler creates a new ExtractHandler.
func NewExtractHandler() *ExtractHandler {
	return &ExtractHandler{}
}

// ExtractInput is the request body for the extract endpoint.
type ExtractInput struct {
	Body struct {
		RawListing map[string]any `json:"raw_listing" required:"true" doc:"Raw scraped listing fields" example:"{\"titre\":\"Maison à rénover\",\"prix\":100000}"`
	}
}

// ExtractOutput is the response body for the extract endpoint.
type ExtractOutput struct {
	Body struct {
		Listing domain.Listing `json:"listing" doc:"Normalized listing"`
	}
}

// Extract normalizes a raw scraped listing into the canonical listing shape.
// Unknown fields are dropped and missing fields take zero values, so the
// operation never fails.
func (*ExtractHandler) Extract(_ context.Context, input *ExtractInput) (*ExtractOutput, error) {
	out := &ExtractOutput{}
	out.Body.Listing = extract.Features(input.Body.RawListing)
	return out, nil
}

// RegisterExtractRoutes registers extraction endpoints with the Huma API.
func RegisterExtractRoutes(api huma.API, h *ExtractHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "extract-features",
		Method:      http.MethodPost,
		Path:        "/api/v1/extract",
		Summary:     "Normalize a raw scraped listing",
		Description: "Maps raw scraped fields onto the canonical listing shape, " +
			"applying the default property type when none is given.",
		Tags: []string{"extraction"},
	}, h.Extract)
}
