package navitia_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nathalie1962/recenseur-backend/internal/navitia"
)

func fixedNow() time.Time {
	return time.Date(2026, time.August, 30, 14, 12, 3, 0, time.UTC)
}

func TestJourneysClient_Journeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		handler      http.HandlerFunc
		wantErr      bool
		errContain   string
		wantJourneys []navitia.Journey
	}{
		{
			name: "successful query with candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				user, pass, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, "test-key", user)
				assert.Empty(t, pass)

				assert.Equal(t, "/coverage/fr-idf/journeys", r.URL.Path)
				assert.Equal(t, "Chartres", r.URL.Query().Get("from"))
				assert.Equal(t, "Paris Saint-Lazare", r.URL.Query().Get("to"))
				assert.Equal(t, "departure", r.URL.Query().Get("datetime_represents"))
				assert.Equal(t, "20260830T073000", r.URL.Query().Get("datetime"))
				assert.Equal(t, "3", r.URL.Query().Get("max_nb_journeys"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"journeys": [
						{"duration": 4860},
						{"duration": 4500},
						{"duration": 5100}
					]
				}`))
			},
			wantJourneys: []navitia.Journey{
				{DurationSeconds: 4860},
				{DurationSeconds: 4500},
				{DurationSeconds: 5100},
			},
		},
		{
			name: "empty journeys list",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"journeys": []}`))
			},
			wantJourneys: []navitia.Journey{},
		},
		{
			name: "401 unauthorized response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message": "no token"}`))
			},
			wantErr:    true,
			errContain: "status 401",
		},
		{
			name: "500 server error response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr:    true,
			errContain: "status 500",
		},
		{
			name: "invalid JSON response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte("not valid json"))
			},
			wantErr:    true,
			errContain: "parsing journeys response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := navitia.NewJourneysClient("test-key",
				navitia.WithBaseURL(srv.URL),
				navitia.WithNowFunc(fixedNow),
			)

			journeys, err := client.Journeys(context.Background(), navitia.JourneyRequest{
				From: "Chartres",
				To:   "Paris Saint-Lazare",
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantJourneys, journeys)
		})
	}
}

func TestJourneysClient_Unreachable(t *testing.T) {
	t.Parallel()

	client := navitia.NewJourneysClient("test-key",
		navitia.WithBaseURL("http://127.0.0.1:1"),
		navitia.WithTimeout(time.Second),
	)

	_, err := client.Journeys(context.Background(), navitia.JourneyRequest{
		From: "Chartres",
		To:   "Paris Saint-Lazare",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executing journeys request")
}

func TestJourneysClient_Options(t *testing.T) {
	t.Parallel()

	var gotPath string
	var gotMax string
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMax = r.URL.Query().Get("max_nb_journeys")
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"journeys": []}`))
	}))
	defer srv.Close()

	client := navitia.NewJourneysClient("k",
		navitia.WithBaseURL(srv.URL),
		navitia.WithCoverage("fr-ne"),
		navitia.WithMaxJourneys(5),
		navitia.WithNowFunc(fixedNow),
	)

	_, err := client.Journeys(context.Background(), navitia.JourneyRequest{From: "a", To: "b"})
	require.NoError(t, err)
	assert.Equal(t, "/coverage/fr-ne/journeys", gotPath)
	assert.Equal(t, "5", gotMax)

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("k:"))
	assert.Equal(t, wantAuth, gotAuth)
}
