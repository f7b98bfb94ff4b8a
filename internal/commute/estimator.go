// Package commute estimates one-way commute durations toward Paris,
// combining an optional live journey planner with a static fallback table.
package commute

import (
	"context"
	"log/slog"

	"github.com/Nathalie1962/recenseur-backend/internal/metrics"
	"github.com/Nathalie1962/recenseur-backend/internal/navitia"
	"github.com/Nathalie1962/recenseur-backend/pkg/logger"
	domain "github.com/Nathalie1962/recenseur-backend/pkg/types"
)

// DefaultDestination is the Paris terminus assumed when the caller gives
// no hint.
const DefaultDestination = "Paris Saint-Lazare"

// Estimator resolves commute estimates with a try-planner-then-fallback
// policy. A nil planner (no credential configured) skips the network call
// entirely and goes straight to the static table.
type Estimator struct {
	planner navitia.JourneyPlanner
	log     *slog.Logger
}

// NewEstimator creates an Estimator. planner may be nil to disable live
// queries; log may be nil to discard planner diagnostics.
func NewEstimator(planner navitia.JourneyPlanner, log *slog.Logger) *Estimator {
	if log == nil {
		log = logger.Nop()
	}
	return &Estimator{planner: planner, log: log}
}

// Estimate returns the commute estimate from origin to destHint (or the
// default Paris terminus when destHint is empty). A planner failure or an
// answer with no usable journey falls back to the static table; an origin
// unknown to both yields nil minutes. Estimate never returns an error:
// the planner is best-effort by contract.
func (e *Estimator) Estimate(ctx context.Context, origin, destHint string) domain.CommuteEstimate {
	dest := destHint
	if dest == "" {
		dest = DefaultDestination
	}

	est := domain.CommuteEstimate{
		GareDepart:     origin,
		GareParisienne: dest,
	}

	if minutes, ok := e.liveMinutes(ctx, origin, dest); ok {
		est.MinutesTrain = &minutes
		return est
	}

	metrics.CommuteFallbacksTotal.Inc()
	if minutes, ok := FallbackMinutes(origin); ok {
		est.MinutesTrain = &minutes
	}
	return est
}

// liveMinutes queries the planner once and picks the shortest journey,
// converted to whole minutes by integer floor division.
func (e *Estimator) liveMinutes(ctx context.Context, origin, dest string) (int, bool) {
	if e.planner == nil {
		return 0, false
	}

	journeys, err := e.planner.Journeys(ctx, navitia.JourneyRequest{
		From: origin,
		To:   dest,
	})
	if err != nil {
		e.log.Warn("journey planner unavailable, using fallback table",
			"origin", origin, "error", err)
		return 0, false
	}

	best := 0
	for _, j := range journeys {
		if j.DurationSeconds <= 0 {
			continue
		}
		if best == 0 || j.DurationSeconds < best {
			best = j.DurationSeconds
		}
	}

	if best == 0 {
		return 0, false
	}
	return best / 60, true
}
