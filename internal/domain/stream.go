package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamDetourEvaluate = "stream:detour:evaluate"
	StreamDetourDone     = "stream:detour:done"
)

// DetourEvaluateEvent requests an evaluation, either of a stored line or of
// an inline stop sequence.
type DetourEvaluateEvent struct {
	RequestID uuid.UUID  `json:"request_id"`
	LineID    *uuid.UUID `json:"line_id,omitempty"`
	Stops     []Stop     `json:"stops,omitempty"`
	Cap       int        `json:"cap"`
}

// HasInlineStops reports whether the event carries its own stop sequence.
func (e *DetourEvaluateEvent) HasInlineStops() bool {
	return len(e.Stops) > 0
}

// DetourDoneEvent is published once an evaluation finished or failed.
type DetourDoneEvent struct {
	RequestID  uuid.UUID         `json:"request_id"`
	LineID     *uuid.UUID        `json:"line_id,omitempty"`
	Evaluation *DetourEvaluation `json:"evaluation,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// StreamMessage - message read from a Redis stream
type StreamMessage struct {
	ID   string
	Data string
}
