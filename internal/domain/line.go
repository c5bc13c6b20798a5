package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stop is one entry of a line. Entries that are not real stops only shape
// the route; passengers cannot board or alight there.
type Stop struct {
	Name     string  `json:"name" db:"name"`
	Lat      float64 `json:"lat" db:"lat"`
	Lng      float64 `json:"lng" db:"lng"`
	RealStop bool    `json:"realStop" db:"real_stop"`
}

// Coordinate returns the position of the stop.
func (s Stop) Coordinate() Coordinate {
	return Coordinate{Lat: s.Lat, Lng: s.Lng}
}

// Line is a transit line with its canonical stop sequence.
type Line struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	Stops     []Stop    `json:"stops" db:"-"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Coordinates returns the positions of all entries in line order.
func Coordinates(stops []Stop) []Coordinate {
	coords := make([]Coordinate, len(stops))
	for i, s := range stops {
		coords[i] = s.Coordinate()
	}
	return coords
}
