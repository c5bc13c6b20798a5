package domain

// Waypoint is a vertex of a routed path. Dist and Dur describe the leg that
// ends at this waypoint and are zero for the first one. Stop marks the
// waypoints that correspond to a requested coordinate.
type Waypoint struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Dist float64 `json:"dist"`
	Dur  float64 `json:"dur"`
	Stop bool    `json:"stop"`
}

// QueriedPath is the answer of the routing service for an ordered list of coordinates.
type QueriedPath struct {
	Waypoints []Waypoint `json:"waypoints"`
	Distance  float64    `json:"distance"` // meters
	Duration  float64    `json:"duration"` // seconds
}

// StopWaypoints returns how many waypoints are flagged as stops.
func (p *QueriedPath) StopWaypoints() int {
	n := 0
	for _, wp := range p.Waypoints {
		if wp.Stop {
			n++
		}
	}
	return n
}
