package dto

import "github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"

// StopInput - one entry of a line
type StopInput struct {
	Name     string  `json:"name" validate:"max=200"`
	Lat      float64 `json:"lat" validate:"min=-90,max=90"`
	Lng      float64 `json:"lng" validate:"min=-180,max=180"`
	RealStop bool    `json:"realStop"`
}

// DetourRequest - evaluate or preview an ad-hoc stop sequence
type DetourRequest struct {
	Stops []StopInput `json:"stops" validate:"required,min=2,max=500,dive"`
	// Cap falls back to the configured default when omitted
	Cap *int `json:"cap,omitempty"`
}

// LineRequest - create or replace a line
type LineRequest struct {
	Name  string      `json:"name" validate:"required,min=1,max=200"`
	Color string      `json:"color" validate:"omitempty,hexcolor"`
	Stops []StopInput `json:"stops" validate:"required,min=2,max=500,dive"`
}

// BatchLinesRequest - fetch several lines at once
type BatchLinesRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,max=50,dive,uuid"`
}

// ToStops converts the input into domain stops
func ToStops(in []StopInput) []domain.Stop {
	stops := make([]domain.Stop, len(in))
	for i, s := range in {
		stops[i] = domain.Stop{Name: s.Name, Lat: s.Lat, Lng: s.Lng, RealStop: s.RealStop}
	}
	return stops
}
