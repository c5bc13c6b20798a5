package osrm

// routeResponse mirrors the subset of the OSRM /route/v1 answer the client reads.
type routeResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message,omitempty"`
	Routes    []route        `json:"routes"`
	Waypoints []snappedPoint `json:"waypoints"`
}

type route struct {
	Distance float64  `json:"distance"`
	Duration float64  `json:"duration"`
	Legs     []leg    `json:"legs"`
	Geometry geometry `json:"geometry"`
}

type leg struct {
	Distance   float64    `json:"distance"`
	Duration   float64    `json:"duration"`
	Annotation annotation `json:"annotation"`
}

// annotation holds one entry per segment between consecutive route nodes.
type annotation struct {
	Distance []float64 `json:"distance"`
	Duration []float64 `json:"duration"`
}

// geometry is a GeoJSON LineString, coordinates as [lng, lat].
type geometry struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

type snappedPoint struct {
	Name     string     `json:"name"`
	Location [2]float64 `json:"location"`
	Distance float64    `json:"distance"`
}
