package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nathalie1962/recenseur-backend/internal/api/handlers"
	"github.com/Nathalie1962/recenseur-backend/internal/store"
)

func TestHealthHandler_Healthz(t *testing.T) {
	t.Parallel()

	e := echo.New()
	h := handlers.NewHealthHandler(store.NewMemorySink())

	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Healthz(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHealthHandler_Readyz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sinkErr    error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "sink reachable",
			wantStatus: http.StatusOK,
			wantBody:   `"status":"ready"`,
		},
		{
			name:       "sink unreachable",
			sinkErr:    errors.New("no such directory"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"status":"unavailable"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sink := store.NewMemorySink()
			if tt.sinkErr != nil {
				sink.FailWith(tt.sinkErr)
			}

			e := echo.New()
			h := handlers.NewHealthHandler(sink)

			req := httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody)
			rec := httptest.NewRecorder()

			require.NoError(t, h.Readyz(e.NewContext(req, rec)))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
