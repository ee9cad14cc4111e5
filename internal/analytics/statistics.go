package analytics

import (
	"math"
	"sort"

	"github.com/terraincognita07/mcycle/internal/models"
)

const (
	minConsistencyScore = 0
	maxConsistencyScore = 100
	consistencyFloor    = 10
)

type Statistics struct {
	AvgCycleLength   *int
	StdDeviation     *float64
	ConsistencyScore *int
}

// CycleLengths returns the recorded lengths ordered by cycle start. The
// earliest cycle has no length and is skipped.
func CycleLengths(cycles []models.Cycle) []int {
	sorted := sortCyclesAscending(cycles)
	lengths := make([]int, 0, len(sorted))
	for _, cycle := range sorted {
		if cycle.CycleLength != nil && *cycle.CycleLength > 0 {
			lengths = append(lengths, *cycle.CycleLength)
		}
	}
	return lengths
}

func ComputeStatistics(lengths []int) Statistics {
	stats := Statistics{}
	if len(lengths) == 0 {
		return stats
	}

	mean := meanInts(lengths)
	average := int(roundHalfUp(mean))
	stats.AvgCycleLength = &average

	if len(lengths) < 2 {
		return stats
	}

	var squared float64
	for _, length := range lengths {
		delta := float64(length) - mean
		squared += delta * delta
	}
	deviation := RoundTo(math.Sqrt(squared/float64(len(lengths))), 1)
	stats.StdDeviation = &deviation

	score := ConsistencyScore(deviation)
	stats.ConsistencyScore = &score
	return stats
}

// ConsistencyScore maps a standard deviation in days onto 0..100, higher
// meaning more regular. Large deviations floor at 10.
func ConsistencyScore(stdDeviation float64) int {
	var score int
	switch {
	case stdDeviation < 2:
		score = 95 + int(roundHalfUp((2-stdDeviation)*2.5))
	case stdDeviation < 4:
		score = 80 + int(roundHalfUp((4-stdDeviation)*7))
	case stdDeviation < 7:
		score = 60 + int(roundHalfUp((7-stdDeviation)*6.67))
	default:
		score = max(consistencyFloor, 60-int(roundHalfUp((stdDeviation-7)*5)))
	}
	return min(maxConsistencyScore, max(minConsistencyScore, score))
}

func ConsistencyLabel(score *int) string {
	if score == nil {
		return "Not enough data"
	}
	switch {
	case *score >= 90:
		return "Very Regular"
	case *score >= 75:
		return "Regular"
	case *score >= 60:
		return "Slightly Irregular"
	default:
		return "Irregular"
	}
}

func BMICategory(bmi *float64) string {
	if bmi == nil || *bmi <= 0 {
		return ""
	}
	switch {
	case *bmi < 18.5:
		return "Underweight"
	case *bmi < 25:
		return "Normal"
	case *bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

func meanInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

func sortCyclesAscending(cycles []models.Cycle) []models.Cycle {
	sorted := make([]models.Cycle, 0, len(cycles))
	sorted = append(sorted, cycles...)
	sort.SliceStable(sorted, func(i, j int) bool {
		left := DateOnly(sorted[i].StartDate)
		right := DateOnly(sorted[j].StartDate)
		if left.Equal(right) {
			return sorted[i].ID < sorted[j].ID
		}
		return left.Before(right)
	})
	return sorted
}

func sortCyclesDescending(cycles []models.Cycle) []models.Cycle {
	sorted := sortCyclesAscending(cycles)
	for left, right := 0, len(sorted)-1; left < right; left, right = left+1, right-1 {
		sorted[left], sorted[right] = sorted[right], sorted[left]
	}
	return sorted
}
