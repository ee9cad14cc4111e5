package analytics

import (
	"sort"

	"github.com/terraincognita07/mcycle/internal/models"
)

// RecentLogLimit caps how many daily logs feed the symptom indicator.
const RecentLogLimit = 90

const Disclaimer = "This information is for educational purposes only and does not constitute medical advice. The PCOS indicators shown are based on self-reported data and simple pattern analysis. They are NOT a diagnosis. Please consult a qualified healthcare professional for proper evaluation and diagnosis."

// SummaryInput is a snapshot of one user's records. Order does not matter.
type SummaryInput struct {
	Cycles        []models.Cycle
	LatestMetrics *models.HealthMetric
	RecentLogs    []models.DailyLog
}

type TrendPoint struct {
	StartDate        Date `json:"start_date"`
	CycleLength      int  `json:"cycle_length"`
	BleedingDuration *int `json:"bleeding_duration"`
}

type CycleAnalysis struct {
	TotalCycles      int            `json:"total_cycles"`
	AvgCycleLength   *int           `json:"avg_cycle_length"`
	StdDeviation     *float64       `json:"std_deviation"`
	ConsistencyScore *int           `json:"consistency_score"`
	CycleTrend       []TrendPoint   `json:"cycle_trend"`
	Prediction       *Prediction    `json:"prediction"`
	FertileWindow    *FertileWindow `json:"fertile_window"`
}

type Summary struct {
	CycleAnalysis  CycleAnalysis        `json:"cycle_analysis"`
	PCOSIndicators PCOSIndicators       `json:"pcos_indicators"`
	LatestMetrics  *models.HealthMetric `json:"latest_metrics"`
	Disclaimer     string               `json:"disclaimer"`
}

// BuildSummary runs statistics, prediction, fertile window and risk
// indicators over the snapshot. Inputs are never mutated.
func BuildSummary(input SummaryInput) Summary {
	return BuildSummaryWithRules(input, DefaultRiskRules())
}

func BuildSummaryWithRules(input SummaryInput, rules []RiskRule) Summary {
	cycles := sortCyclesAscending(input.Cycles)
	lengths := CycleLengths(cycles)
	stats := ComputeStatistics(lengths)
	prediction := PredictNextPeriod(cycles)

	var fertileWindow *FertileWindow
	if prediction != nil {
		base := prediction.PredictedNext.Time
		fertileWindow = EstimateFertileWindow(&base, stats.AvgCycleLength)
	}

	indicators := EvaluateRiskIndicators(RiskInput{
		Cycles:        cycles,
		CycleLengths:  lengths,
		Statistics:    stats,
		LatestMetrics: input.LatestMetrics,
		RecentLogs:    mostRecentLogs(input.RecentLogs, RecentLogLimit),
	}, rules)

	return Summary{
		CycleAnalysis: CycleAnalysis{
			TotalCycles:      len(cycles),
			AvgCycleLength:   stats.AvgCycleLength,
			StdDeviation:     stats.StdDeviation,
			ConsistencyScore: stats.ConsistencyScore,
			CycleTrend:       buildCycleTrend(cycles),
			Prediction:       prediction,
			FertileWindow:    fertileWindow,
		},
		PCOSIndicators: indicators,
		LatestMetrics:  input.LatestMetrics,
		Disclaimer:     Disclaimer,
	}
}

func buildCycleTrend(sortedCycles []models.Cycle) []TrendPoint {
	trend := make([]TrendPoint, 0, len(sortedCycles))
	for _, cycle := range sortedCycles {
		if cycle.CycleLength == nil || *cycle.CycleLength <= 0 {
			continue
		}
		trend = append(trend, TrendPoint{
			StartDate:        NewDate(cycle.StartDate),
			CycleLength:      *cycle.CycleLength,
			BleedingDuration: cycle.BleedingDuration,
		})
	}
	return trend
}

func mostRecentLogs(logs []models.DailyLog, limit int) []models.DailyLog {
	sorted := make([]models.DailyLog, 0, len(logs))
	sorted = append(sorted, logs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		left := DateOnly(sorted[i].LogDate)
		right := DateOnly(sorted[j].LogDate)
		if left.Equal(right) {
			return sorted[i].ID > sorted[j].ID
		}
		return left.After(right)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
