package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Nathalie1962/recenseur-backend/internal/metrics"
	"github.com/Nathalie1962/recenseur-backend/internal/store"
	domain "github.com/Nathalie1962/recenseur-backend/pkg/types"
)

// PersistHandler handles listing persistence requests.
type PersistHandler struct {
	sink store.Sink
}

// NewPersistHandler creates a new PersistHandler.
func NewPersistHandler(s store.Sink) *PersistHandler {
	return &PersistHandler{sink: s}
}

// PersistInput is the request body for the persist endpoint.
type PersistInput struct {
	Body struct {
		Listings []domain.Listing `json:"listings" required:"true" doc:"Listings to append to the store"`
	}
}

// PersistOutput is the response body for the persist endpoint.
type PersistOutput struct {
	Body struct {
		StoredCount int `json:"stored_count" doc:"Number of listings appended"`
	}
}

// Persist appends the given listings to the configured sink. An empty batch
// succeeds with a count of zero.
func (h *PersistHandler) Persist(ctx context.Context, input *PersistInput) (*PersistOutput, error) {
	n, err := h.sink.Append(ctx, input.Body.Listings)
	if err != nil {
		metrics.StoreErrorsTotal.Inc()
		return nil, huma.Error500InternalServerError("persist failed: " + err.Error())
	}
	metrics.StoreAppendedTotal.Add(float64(n))

	out := &PersistOutput{}
	out.Body.StoredCount = n
	return out, nil
}

// RegisterPersistRoutes registers persistence endpoints with the Huma API.
func RegisterPersistRoutes(api huma.API, h *PersistHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "persist-listings",
		Method:      http.MethodPost,
		Path:        "/api/v1/persist",
		Summary:     "Append listings to the store",
		Description: "Appends each listing as one JSON line to the append-only store.",
		Tags:        []string{"persistence"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Persist)
}
