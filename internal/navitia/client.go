// Package navitia provides a Navitia journeys API client abstracted behind
// an interface for testability.
package navitia

import (
	"context"
)

// JourneyRequest defines the parameters for a journey search.
type JourneyRequest struct {
	From string
	To   string
}

// Journey holds one journey candidate returned by the planner.
type Journey struct {
	DurationSeconds int
}

// JourneyPlanner defines the interface for querying a journey-planning
// service.
type JourneyPlanner interface {
	Journeys(ctx context.Context, req JourneyRequest) ([]Journey, error)
}
