package dto

import (
	"time"

	"github.com/fafeitsch/Route-Detour-Analyzer-sub000/internal/domain"
	"github.com/google/uuid"
)

// QueryPairsResponse - the pairs that an evaluation with Cap would query
type QueryPairsResponse struct {
	Cap          int                `json:"cap"`
	RealStops    int                `json:"realStops"`
	MaxUsefulCap int                `json:"maxUsefulCap"`
	Pairs        []domain.QueryPair `json:"pairs"`
}

// LineResponse - a stored line
type LineResponse struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Color     string             `json:"color"`
	Stops     []domain.Stop      `json:"stops,omitempty"`
	RealStops int                `json:"realStops"`
	Bounds    domain.BoundingBox `json:"bounds"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// LineListResponse - a page of lines
type LineListResponse struct {
	Lines []LineResponse `json:"lines"`
	Total int            `json:"total"`
}

// DetourResponse - evaluation together with the stops it refers to
type DetourResponse struct {
	LineID     *uuid.UUID               `json:"lineId,omitempty"`
	Evaluation *domain.DetourEvaluation `json:"evaluation"`
	// Stops named by the smallest, median and biggest detour
	Highlights map[string]DetourHighlight `json:"highlights,omitempty"`
}

// DetourHighlight names the endpoints of a notable detour
type DetourHighlight struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// NewDetourResponse resolves the highlighted detours to stop names
func NewDetourResponse(lineID *uuid.UUID, stops []domain.Stop, evaluation *domain.DetourEvaluation) *DetourResponse {
	resp := &DetourResponse{LineID: lineID, Evaluation: evaluation}
	if evaluation == nil || evaluation.Result.IsEmpty() {
		return resp
	}

	name := func(i int) string {
		if i >= 0 && i < len(stops) {
			return stops[i].Name
		}
		return ""
	}

	resp.Highlights = make(map[string]DetourHighlight, 3)
	for key, d := range map[string]*domain.DetailResult{
		"smallest": evaluation.Result.SmallestDetour,
		"median":   evaluation.Result.MedianDetour,
		"biggest":  evaluation.Result.BiggestDetour,
	} {
		resp.Highlights[key] = DetourHighlight{Source: name(d.Source), Target: name(d.Target)}
	}
	return resp
}

// NewLineResponse converts a domain line
func NewLineResponse(line *domain.Line) LineResponse {
	return LineResponse{
		ID:        line.ID,
		Name:      line.Name,
		Color:     line.Color,
		Stops:     line.Stops,
		RealStops: countRealStops(line.Stops),
		Bounds:    domain.BoundsOf(domain.Coordinates(line.Stops)),
		CreatedAt: line.CreatedAt,
		UpdatedAt: line.UpdatedAt,
	}
}

func countRealStops(stops []domain.Stop) int {
	n := 0
	for _, s := range stops {
		if s.RealStop {
			n++
		}
	}
	return n
}
