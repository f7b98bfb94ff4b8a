// Package main implements a mock Navitia API server for local development.
// It serves canned journey durations from a JSON fixture to simulate the
// Navitia journeys endpoint without requiring a real API key.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"
)

type journeysFixture struct {
	// Durations maps an origin station to journey durations in seconds.
	Durations map[string][]int `json:"durations"`
}

type journey struct {
	Duration int `json:"duration"`
}

type journeysResponse struct {
	Journeys []journey `json:"journeys"`
}

func main() {
	port := flag.Int("port", 8090, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/journeys.json", "path to journeys fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "origins", len(fixture.Durations))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/coverage/{coverage}/journeys", journeysHandler(logger, fixture))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Navitia server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*journeysFixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var f journeysFixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &f, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func journeysHandler(logger *slog.Logger, fixture *journeysFixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Navitia authenticates with the key as the Basic Auth username.
		// Require the header to be present without verifying the key.
		if _, _, ok := r.BasicAuth(); !ok {
			logger.Warn("journeys request missing Basic Auth header")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
			json.NewEncoder(w).Encode(map[string]string{
				"error": "authentication required",
			})
			return
		}

		from := r.URL.Query().Get("from")
		maxJourneys := len(fixture.Durations[from])
		if s := r.URL.Query().Get("max_nb_journeys"); s != "" {
			if v, err := strconv.Atoi(s); err == nil && v > 0 && v < maxJourneys {
				maxJourneys = v
			}
		}

		resp := journeysResponse{Journeys: []journey{}}
		for _, d := range fixture.Durations[from][:maxJourneys] {
			resp.Journeys = append(resp.Journeys, journey{Duration: d})
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(resp)
		logger.Info("journeys", "from", from, "to", r.URL.Query().Get("to"), "returned", len(resp.Journeys))
	}
}
