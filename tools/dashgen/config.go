package main

import "errors"

// KnownMetrics is the set of metric names exported by recenseur plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"recenseur_http_request_duration_seconds": true,
	"recenseur_http_requests_total":           true,
	"recenseur_auth_failures_total":           true,

	// Scoring metrics.
	"recenseur_scoring_distribution": true,

	// Deduplication metrics.
	"recenseur_dedupe_listings_total": true,
	"recenseur_dedupe_unique_total":   true,

	// Navitia metrics.
	"recenseur_navitia_calls_total":     true,
	"recenseur_navitia_errors_total":    true,
	"recenseur_commute_fallbacks_total": true,

	// Store metrics.
	"recenseur_store_appended_total": true,
	"recenseur_store_errors_total":   true,

	// Recording rules.
	"recenseur:http_requests:rate5m":   true,
	"recenseur:http_errors:rate5m":     true,
	"recenseur:navitia_calls:rate5m":   true,
	"recenseur:navitia_errors:rate5m":  true,
	"recenseur:store_appended:rate5m":  true,
	"recenseur:store_errors:rate5m":    true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into
// ../../deploy relative to the tool directory.
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks the configuration for obvious mistakes.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output dir must not be empty")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one artifact type must be enabled")
	}
	return nil
}
