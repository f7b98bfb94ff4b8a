package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Nathalie1962/recenseur-backend/internal/commute"
)

// CommuteHandler handles commute estimation requests.
type CommuteHandler struct {
	estimator *commute.Estimator
}

// NewCommuteHandler creates a new CommuteHandler.
func NewCommuteHandler(est *commute.Estimator) *CommuteHandler {
	return &CommuteHandler{estimator: est}
}

// CommuteInput is the request body for the commute endpoint.
type CommuteInput struct {
	Body struct {
		VilleOuGare        string `json:"ville_ou_gare" minLength:"1" doc:"Departure town or station name" example:"Chartres"`
		GareParisienneHint string `json:"gare_parisienne_hint,omitempty" doc:"Paris terminus to target instead of the default" example:"Paris Montparnasse"`
	}
}

// CommuteOutput is the response body for the commute endpoint.
type CommuteOutput struct {
	Body struct {
		MinutesTrain   *int   `json:"minutes_train" doc:"Estimated rail commute in minutes, null when unknown"`
		GareDepart     string `json:"gare_depart" doc:"Departure station used for the estimate"`
		GareParisienne string `json:"gare_parisienne" doc:"Paris terminus used for the estimate"`
	}
}

// Commute estimates the rail commute from a town or station to a Paris
// terminus. Unknown origins yield a null duration rather than an error.
func (h *CommuteHandler) Commute(ctx context.Context, input *CommuteInput) (*CommuteOutput, error) {
	est := h.estimator.Estimate(ctx, input.Body.VilleOuGare, input.Body.GareParisienneHint)

	out := &CommuteOutput{}
	out.Body.MinutesTrain = est.MinutesTrain
	out.Body.GareDepart = est.GareDepart
	out.Body.GareParisienne = est.GareParisienne
	return out, nil
}

// RegisterCommuteRoutes registers commute endpoints with the Huma API.
func RegisterCommuteRoutes(api huma.API, h *CommuteHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "commute-time",
		Method:      http.MethodPost,
		Path:        "/api/v1/commute",
		Summary:     "Estimate a rail commute to Paris",
		Description: "Queries the journey planner when configured and falls back " +
			"to the static duration table otherwise.",
		Tags: []string{"commute"},
	}, h.Commute)
}
