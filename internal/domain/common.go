package domain

// Coordinate is a WGS84 position.
type Coordinate struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

// BoundingBox of a set of coordinates
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// BoundsOf returns the bounding box of coords. The zero box is returned for no coordinates.
func BoundsOf(coords []Coordinate) BoundingBox {
	if len(coords) == 0 {
		return BoundingBox{}
	}
	box := BoundingBox{
		MinLat: coords[0].Lat, MaxLat: coords[0].Lat,
		MinLng: coords[0].Lng, MaxLng: coords[0].Lng,
	}
	for _, c := range coords[1:] {
		box.MinLat = min(box.MinLat, c.Lat)
		box.MaxLat = max(box.MaxLat, c.Lat)
		box.MinLng = min(box.MinLng, c.Lng)
		box.MaxLng = max(box.MaxLng, c.Lng)
	}
	return box
}
