package detour

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
)

// ErrZeroDistance is returned for sub-paths whose direct route has no length,
// which would make the relative detour undefined.
var ErrZeroDistance = errors.New("direct sub-path distance is zero")

// SubPath is the direct route between two stops of a line, queried without
// any of the intermediate stops.
type SubPath struct {
	StartIndex int
	EndIndex   int
	Path       RouteGeometry
}

// FilterDegenerate separates sub-paths with a positive direct distance from
// those ComputeDetours would reject. Sub-paths whose distance cannot be
// determined count as degenerate.
func FilterDegenerate(subPaths []SubPath) (usable, degenerate []SubPath) {
	for _, sub := range subPaths {
		direct, err := DirectDistance(sub.Path)
		if err != nil || direct <= 0 {
			degenerate = append(degenerate, sub)
			continue
		}
		usable = append(usable, sub)
	}
	return usable, degenerate
}

// ComputeDetours compares every sub-path with the distance the line itself
// covers between the same two stops and summarises the relative detours.
// An empty sub-path list produces an empty result.
func ComputeDetours(original RouteGeometry, subPaths []SubPath) (*domain.DetourResult, error) {
	if len(subPaths) == 0 {
		return &domain.DetourResult{}, nil
	}
	if original == nil {
		return nil, fmt.Errorf("original route: %w", ErrIndexOutOfRange)
	}

	details := make([]domain.DetailResult, 0, len(subPaths))
	for _, sub := range subPaths {
		direct, err := DirectDistance(sub.Path)
		if err != nil {
			return nil, fmt.Errorf("sub-path %d -> %d: %w", sub.StartIndex, sub.EndIndex, err)
		}
		if direct == 0 {
			return nil, fmt.Errorf("sub-path %d -> %d: %w", sub.StartIndex, sub.EndIndex, ErrZeroDistance)
		}

		along, err := original.Distance(sub.StartIndex, sub.EndIndex)
		if err != nil {
			return nil, fmt.Errorf("original route %d -> %d: %w", sub.StartIndex, sub.EndIndex, err)
		}

		details = append(details, domain.DetailResult{
			Absolute: along - direct,
			Relative: along / direct,
			Source:   sub.StartIndex,
			Target:   sub.EndIndex,
		})
	}

	sort.SliceStable(details, func(i, j int) bool {
		return details[i].Relative < details[j].Relative
	})

	var sum float64
	for _, d := range details {
		sum += d.Relative
	}

	n := len(details)
	smallest := details[0]
	// lower middle element for even counts
	median := details[(n-1)/2]
	biggest := details[n-1]

	return &domain.DetourResult{
		AverageDetour:  sum / float64(n),
		SmallestDetour: &smallest,
		MedianDetour:   &median,
		BiggestDetour:  &biggest,
		Details:        details,
	}, nil
}
