package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Nathalie1962/recenseur-backend/internal/metrics"
	"github.com/Nathalie1962/recenseur-backend/pkg/scorer"
)

// ScoreHandler handles renovation scoring requests.
type ScoreHandler struct{}

// NewScoreHandler creates a new ScoreHandler.
func NewScoreHandler() *ScoreHandler {
	return &ScoreHandler{}
}

// ScoreInput is the request body for the score endpoint.
type ScoreInput struct {
	Body struct {
		Texte string `json:"texte,omitempty" doc:"Free text of the listing (title plus description)" example:"Maison à rénover, travaux importants à prévoir"`
	}
}

// ScoreOutput is the response body for the score endpoint.
type ScoreOutput struct {
	Body struct {
		ScoreReno    float64  `json:"score_reno" minimum:"0" maximum:"1" doc:"Renovation potential score in [0,1]"`
		MatchedTerms []string `json:"matched_terms" doc:"Rule patterns that matched, in rule order"`
	}
}

// Score computes the renovation score of a free-text listing description.
// Empty text is valid and scores 0.
func (*ScoreHandler) Score(_ context.Context, input *ScoreInput) (*ScoreOutput, error) {
	result := score.Score(input.Body.Texte)

	metrics.ScoringDistribution.Observe(result.Score)

	matched := result.Matched
	if matched == nil {
		matched = []string{}
	}

	out := &ScoreOutput{}
	out.Body.ScoreReno = result.Score
	out.Body.MatchedTerms = matched
	return out, nil
}

// RegisterScoreRoutes registers scoring endpoints with the Huma API.
func RegisterScoreRoutes(api huma.API, h *ScoreHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "score-text",
		Method:      http.MethodPost,
		Path:        "/api/v1/score",
		Summary:     "Score a listing description",
		Description: "Applies the weighted renovation keyword rules to the given " +
			"text and returns the clamped score with the matched terms.",
		Tags: []string{"scoring"},
	}, h.Score)
}
