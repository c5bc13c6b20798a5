package detour

import (
	"errors"
	"fmt"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
)

var (
	// ErrIndexOutOfRange is returned when a stop index does not address a stop of the geometry.
	ErrIndexOutOfRange = errors.New("stop index out of range")

	// ErrInvalidMatrix is returned for distance tables that are not square.
	ErrInvalidMatrix = errors.New("distance matrix must be square")
)

// RouteGeometry answers distance questions about a routed path between
// an ordered list of stops.
type RouteGeometry interface {
	// StopCount returns the number of addressable stops.
	StopCount() int

	// Distance returns the route distance from stop `from` to stop `to`.
	// Only forward distances (from <= to) are defined.
	Distance(from, to int) (float64, error)
}

// DirectDistance returns the total length of the geometry, from its first
// to its last stop.
func DirectDistance(g RouteGeometry) (float64, error) {
	if g == nil || g.StopCount() < 2 {
		return 0, fmt.Errorf("direct distance: %w", ErrIndexOutOfRange)
	}
	return g.Distance(0, g.StopCount()-1)
}

func checkRange(from, to, count int) error {
	if from < 0 || to < 0 || from >= count || to >= count || from > to {
		return fmt.Errorf("%w: %d -> %d (stops: %d)", ErrIndexOutOfRange, from, to, count)
	}
	return nil
}

// MatrixGeometry is a RouteGeometry backed by a distance table where
// table[i][j] is the route distance from stop i to stop j.
type MatrixGeometry struct {
	table [][]float64
}

// NewMatrixGeometry validates the table and wraps it.
func NewMatrixGeometry(table [][]float64) (*MatrixGeometry, error) {
	for i, row := range table {
		if len(row) != len(table) {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidMatrix, i, len(row), len(table))
		}
	}
	return &MatrixGeometry{table: table}, nil
}

func (m *MatrixGeometry) StopCount() int {
	return len(m.table)
}

func (m *MatrixGeometry) Distance(from, to int) (float64, error) {
	if err := checkRange(from, to, len(m.table)); err != nil {
		return 0, err
	}
	return m.table[from][to], nil
}

// PathGeometry is a RouteGeometry backed by an annotated waypoint list.
// Only waypoints flagged as stops are addressable; the geometry waypoints
// between them contribute their leg distances.
type PathGeometry struct {
	// cumulative[k] is the distance from the first waypoint to the k-th stop waypoint.
	cumulative []float64
}

// NewPathGeometry indexes the stop waypoints of path.
func NewPathGeometry(path *domain.QueriedPath) *PathGeometry {
	g := &PathGeometry{}
	if path == nil {
		return g
	}

	var travelled float64
	for i, wp := range path.Waypoints {
		if i > 0 {
			travelled += wp.Dist
		}
		if wp.Stop {
			g.cumulative = append(g.cumulative, travelled)
		}
	}
	return g
}

func (p *PathGeometry) StopCount() int {
	return len(p.cumulative)
}

func (p *PathGeometry) Distance(from, to int) (float64, error) {
	if err := checkRange(from, to, len(p.cumulative)); err != nil {
		return 0, err
	}
	return p.cumulative[to] - p.cumulative[from], nil
}
