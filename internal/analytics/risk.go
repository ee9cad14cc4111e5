package analytics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/terraincognita07/mcycle/internal/models"
)

// MaxRiskScore is an editorial ceiling and does not grow with the rule set.
const MaxRiskScore = 5

const (
	longCycleDays         = 35
	missedCycleGapDays    = 90
	waistHipRatioLimit    = 0.85
	bmiLimit              = 25.0
	irregularStdDeviation = 4.0
	symptomLevelThreshold = 3
	symptomDaysThreshold  = 3
)

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

const (
	WarningLongCycles   = "long_cycles"
	WarningMissedCycle  = "missed_cycle"
	WarningHighWHR      = "high_whr"
	WarningBMIIrregular = "bmi_irregular"
	WarningHighSymptoms = "high_symptoms"
)

type Warning struct {
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Detail   string   `json:"detail,omitempty"`
}

type PCOSIndicators struct {
	RiskScore int       `json:"risk_score"`
	MaxScore  int       `json:"max_score"`
	Warnings  []Warning `json:"warnings"`
}

// RiskInput is the read-only view every rule evaluates. Cycles are sorted
// by start date ascending and RecentLogs hold at most RecentLogLimit entries.
type RiskInput struct {
	Cycles        []models.Cycle
	CycleLengths  []int
	Statistics    Statistics
	LatestMetrics *models.HealthMetric
	RecentLogs    []models.DailyLog
}

// RiskRule is one independent indicator. Evaluate reports the message and
// optional detail when the rule fires.
type RiskRule struct {
	Type     string
	Severity Severity
	Weight   int
	Evaluate func(input RiskInput) (message string, detail string, triggered bool)
}

func DefaultRiskRules() []RiskRule {
	return []RiskRule{
		{Type: WarningLongCycles, Severity: SeverityWarning, Weight: 1, Evaluate: evaluateLongCycles},
		{Type: WarningMissedCycle, Severity: SeverityWarning, Weight: 1, Evaluate: evaluateMissedCycle},
		{Type: WarningHighWHR, Severity: SeverityInfo, Weight: 1, Evaluate: evaluateWaistHipRatio},
		{Type: WarningBMIIrregular, Severity: SeverityInfo, Weight: 1, Evaluate: evaluateBMIWithIrregularity},
		{Type: WarningHighSymptoms, Severity: SeverityInfo, Weight: 1, Evaluate: evaluateSymptomBurden},
	}
}

func EvaluateRiskIndicators(input RiskInput, rules []RiskRule) PCOSIndicators {
	indicators := PCOSIndicators{MaxScore: MaxRiskScore, Warnings: make([]Warning, 0)}

	score := 0
	for _, rule := range rules {
		if rule.Evaluate == nil {
			continue
		}
		message, detail, triggered := rule.Evaluate(input)
		if !triggered {
			continue
		}
		indicators.Warnings = append(indicators.Warnings, Warning{
			Type:     rule.Type,
			Severity: rule.Severity,
			Message:  message,
			Detail:   detail,
		})
		score += rule.Weight
	}

	indicators.RiskScore = min(MaxRiskScore, max(0, score))
	return indicators
}

func evaluateLongCycles(input RiskInput) (string, string, bool) {
	long := make([]string, 0)
	for _, length := range input.CycleLengths {
		if length > longCycleDays {
			long = append(long, strconv.Itoa(length))
		}
	}
	if len(long) == 0 {
		return "", "", false
	}
	return fmt.Sprintf("%d cycle(s) longer than %d days detected (oligomenorrhea pattern).", len(long), longCycleDays),
		fmt.Sprintf("Affected cycles: %s days", strings.Join(long, ", ")),
		true
}

// evaluateMissedCycle reports only the first oversized gap.
func evaluateMissedCycle(input RiskInput) (string, string, bool) {
	for index := 1; index < len(input.Cycles); index++ {
		gap := DaysBetween(input.Cycles[index-1].StartDate, input.Cycles[index].StartDate)
		if gap > missedCycleGapDays {
			return fmt.Sprintf("Gap of %d days detected between cycles (possible missed period).", gap), "", true
		}
	}
	return "", "", false
}

func evaluateWaistHipRatio(input RiskInput) (string, string, bool) {
	if input.LatestMetrics == nil || input.LatestMetrics.WaistHipRatio == nil {
		return "", "", false
	}
	ratio := *input.LatestMetrics.WaistHipRatio
	if ratio <= waistHipRatioLimit {
		return "", "", false
	}
	return fmt.Sprintf("Waist-to-hip ratio is %s (above %s threshold).", formatNumber(ratio), formatNumber(waistHipRatioLimit)),
		"Elevated WHR can be associated with metabolic risk factors.",
		true
}

func evaluateBMIWithIrregularity(input RiskInput) (string, string, bool) {
	if input.LatestMetrics == nil || input.LatestMetrics.BMI == nil || input.Statistics.StdDeviation == nil {
		return "", "", false
	}
	bmi := *input.LatestMetrics.BMI
	if bmi <= bmiLimit || *input.Statistics.StdDeviation <= irregularStdDeviation {
		return "", "", false
	}
	return fmt.Sprintf("BMI of %s combined with irregular cycles.", formatNumber(bmi)),
		"Weight management may help regulate cycles.",
		true
}

func evaluateSymptomBurden(input RiskInput) (string, string, bool) {
	days := 0
	for _, entry := range input.RecentLogs {
		if levelAtLeast(entry.AcneLevel, symptomLevelThreshold) || levelAtLeast(entry.HairGrowthLevel, symptomLevelThreshold) {
			days++
		}
	}
	if days < symptomDaysThreshold {
		return "", "", false
	}
	return fmt.Sprintf("%d days with elevated acne/hair growth symptoms in past %d days.", days, RecentLogLimit),
		"Persistent symptoms may indicate hormonal imbalance.",
		true
}

func levelAtLeast(level *int, threshold int) bool {
	return level != nil && *level >= threshold
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
