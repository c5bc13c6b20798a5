package domain

import "time"

// Statistics summarises the stored lines
type Statistics struct {
	Lines               int64     `json:"lines" db:"lines"`
	Entries             int64     `json:"entries" db:"entries"`
	RealStops           int64     `json:"realStops" db:"real_stops"`
	Waypoints           int64     `json:"waypoints" db:"waypoints"`
	AverageStopsPerLine float64   `json:"averageStopsPerLine" db:"-"`
	LongestLine         string    `json:"longestLine,omitempty" db:"-"`
	LastUpdated         time.Time `json:"lastUpdated" db:"-"`
}
