package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nathalie1962/recenseur-backend/internal/api/handlers"
)

func TestScoreHandler_Score(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        any
		wantStatus  int
		wantScore   float64
		wantMatched int
	}{
		{
			name:        "strong renovation signals clamp to 1",
			body:        map[string]any{"texte": "Maison à rénover avec travaux importants"},
			wantStatus:  http.StatusOK,
			wantScore:   1.0,
			wantMatched: 2,
		},
		{
			name:        "negative signals clamp to 0",
			body:        map[string]any{"texte": "Bien refait à neuf, aucun travaux"},
			wantStatus:  http.StatusOK,
			wantScore:   0.0,
			wantMatched: 2,
		},
		{
			name:        "single medium signal",
			body:        map[string]any{"texte": "appartement à rafraîchir"},
			wantStatus:  http.StatusOK,
			wantScore:   0.2,
			wantMatched: 1,
		},
		{
			name:        "empty text scores zero",
			body:        map[string]any{"texte": ""},
			wantStatus:  http.StatusOK,
			wantScore:   0.0,
			wantMatched: 0,
		},
		{
			name:        "missing text scores zero",
			body:        map[string]any{},
			wantStatus:  http.StatusOK,
			wantScore:   0.0,
			wantMatched: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, api := humatest.New(t)
			handlers.RegisterScoreRoutes(api, handlers.NewScoreHandler())

			resp := api.Post("/api/v1/score", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code)

			var out struct {
				ScoreReno    float64  `json:"score_reno"`
				MatchedTerms []string `json:"matched_terms"`
			}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))

			assert.InDelta(t, tt.wantScore, out.ScoreReno, 1e-9)
			assert.NotNil(t, out.MatchedTerms)
			assert.Len(t, out.MatchedTerms, tt.wantMatched)
		})
	}
}
