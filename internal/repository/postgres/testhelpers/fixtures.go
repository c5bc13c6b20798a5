package testhelpers

import (
	"fmt"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
)

// SampleLine returns a line with n entries along a straight street.
// Every third entry is a geometry waypoint.
func SampleLine(name string, n int) *domain.Line {
	stops := make([]domain.Stop, n)
	for i := range stops {
		stops[i] = domain.Stop{
			Name:     fmt.Sprintf("%s %d", name, i),
			Lat:      49.7913 + float64(i)*0.002,
			Lng:      9.9534 + float64(i)*0.001,
			RealStop: i%3 != 1,
		}
	}
	return &domain.Line{
		Name:  name,
		Color: "#3366ff",
		Stops: stops,
	}
}
