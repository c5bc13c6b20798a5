package domain

import "time"

// QueryPair is a pair of real stops whose direct route is compared with the line.
type QueryPair struct {
	Source      Stop `json:"source"`
	Target      Stop `json:"target"`
	SourceIndex int  `json:"sourceIndex"`
	TargetIndex int  `json:"targetIndex"`
}

// DetailResult is the detour measured for one query pair.
type DetailResult struct {
	Absolute float64 `json:"absolute"`
	Relative float64 `json:"relative"`
	Source   int     `json:"source"`
	Target   int     `json:"target"`
}

// DetourResult summarises the relative detours of a line.
type DetourResult struct {
	AverageDetour  float64        `json:"averageDetour"`
	SmallestDetour *DetailResult  `json:"smallestDetour,omitempty"`
	MedianDetour   *DetailResult  `json:"medianDetour,omitempty"`
	BiggestDetour  *DetailResult  `json:"biggestDetour,omitempty"`
	Details        []DetailResult `json:"details,omitempty"`
}

// IsEmpty reports whether the result was computed from no pairs.
func (r *DetourResult) IsEmpty() bool {
	return r == nil || r.SmallestDetour == nil
}

// FailedPair is a query pair left out of the aggregate, with the reason.
type FailedPair struct {
	SourceIndex int    `json:"sourceIndex"`
	TargetIndex int    `json:"targetIndex"`
	Reason      string `json:"reason"`
}

// DetourEvaluation is the outcome of evaluating a line with a given cap.
type DetourEvaluation struct {
	Result       *DetourResult `json:"result"`
	Cap          int           `json:"cap"`
	Pairs        int           `json:"pairs"`
	FailedPairs  []FailedPair  `json:"failedPairs,omitempty"`
	SkippedPairs []FailedPair  `json:"skippedPairs,omitempty"`
	EvaluatedAt  time.Time     `json:"evaluatedAt"`
}
