package repository

import (
	"context"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
)

// RoutingRepository resolves ordered coordinates into a routed path
type RoutingRepository interface {
	// QueryRoute returns the route visiting coords in order. Every requested
	// coordinate appears as a waypoint with Stop set.
	QueryRoute(ctx context.Context, coords []domain.Coordinate) (*domain.QueriedPath, error)
}
