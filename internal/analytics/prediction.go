package analytics

import (
	"time"

	"github.com/terraincognita07/mcycle/internal/models"
)

const (
	DefaultCycleLength = 28
	predictionWindow   = 6
	highConfidenceMin  = 3
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

type Prediction struct {
	PredictedNext  Date       `json:"predicted_next"`
	Confidence     Confidence `json:"confidence"`
	AvgCycleLength int        `json:"avg_cycle_length"`
}

// PredictNextPeriod projects the next start from the most recent cycle
// using the rounded mean of the latest six recorded lengths. It is the
// only place the projection is computed: cycle creation stores its result
// and the summary recomputes it on read.
func PredictNextPeriod(cycles []models.Cycle) *Prediction {
	if len(cycles) == 0 {
		return nil
	}

	sorted := sortCyclesDescending(cycles)
	latest := sorted[0]

	available := 0
	window := make([]int, 0, predictionWindow)
	for _, cycle := range sorted {
		if cycle.CycleLength == nil || *cycle.CycleLength <= 0 {
			continue
		}
		available++
		if len(window) < predictionWindow {
			window = append(window, *cycle.CycleLength)
		}
	}

	averageLength := DefaultCycleLength
	if len(window) > 0 {
		averageLength = int(roundHalfUp(meanInts(window)))
	}

	return &Prediction{
		PredictedNext:  NewDate(addDays(latest.StartDate, averageLength)),
		Confidence:     predictionConfidence(available),
		AvgCycleLength: averageLength,
	}
}

// PredictedNextAsOf returns the projection stored on a cycle at creation:
// the prediction over every cycle that started on or before it.
func PredictedNextAsOf(cycles []models.Cycle, anchor models.Cycle) *time.Time {
	history := make([]models.Cycle, 0, len(cycles)+1)
	for _, cycle := range cycles {
		if cycle.ID != 0 && cycle.ID == anchor.ID {
			continue
		}
		if !DateOnly(cycle.StartDate).After(DateOnly(anchor.StartDate)) {
			history = append(history, cycle)
		}
	}
	history = append(history, anchor)

	prediction := PredictNextPeriod(history)
	if prediction == nil {
		return nil
	}
	predicted := prediction.PredictedNext.Time
	return &predicted
}

func predictionConfidence(available int) Confidence {
	switch {
	case available >= highConfidenceMin:
		return ConfidenceHigh
	case available >= 1:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
