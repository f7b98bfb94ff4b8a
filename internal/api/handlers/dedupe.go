package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Nathalie1962/recenseur-backend/internal/metrics"
	"github.com/Nathalie1962/recenseur-backend/pkg/extract"
	domain "github.com/Nathalie1962/recenseur-backend/pkg/types"
)

// DedupeHandler handles listing deduplication requests.
type DedupeHandler struct{}

// NewDedupeHandler creates a new DedupeHandler.
func NewDedupeHandler() *DedupeHandler {
	return &DedupeHandler{}
}

// DedupeInput is the request body for the dedupe endpoint.
type DedupeInput struct {
	Body struct {
		Listings []domain.Listing `json:"listings" required:"true" doc:"Listings to deduplicate, in scrape order"`
	}
}

// DedupeOutput is the response body for the dedupe endpoint.
type DedupeOutput struct {
	Body struct {
		ListingsUnique []domain.Listing `json:"listings_unique" doc:"First occurrence of each canonical key, input order preserved"`
	}
}

// Dedupe removes listings whose canonical key was already seen earlier in
// the batch. Survivors carry their computed key.
func (*DedupeHandler) Dedupe(_ context.Context, input *DedupeInput) (*DedupeOutput, error) {
	unique := extract.Dedupe(input.Body.Listings)
	if unique == nil {
		unique = []domain.Listing{}
	}

	metrics.DedupeListingsTotal.Add(float64(len(input.Body.Listings)))
	metrics.DedupeUniqueTotal.Add(float64(len(unique)))

	out := &DedupeOutput{}
	out.Body.ListingsUnique = unique
	return out, nil
}

// RegisterDedupeRoutes registers deduplication endpoints with the Huma API.
func RegisterDedupeRoutes(api huma.API, h *DedupeHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "dedupe-listings",
		Method:      http.MethodPost,
		Path:        "/api/v1/dedupe",
		Summary:     "Deduplicate listings by canonical key",
		Description: "Computes the canonical key of each listing and keeps the " +
			"first occurrence of every key, preserving input order.",
		Tags: []string{"deduplication"},
	}, h.Dedupe)
}
