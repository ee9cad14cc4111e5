package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/terraincognita07/mcycle/internal/analytics"
	"github.com/terraincognita07/mcycle/internal/db"
	"github.com/terraincognita07/mcycle/internal/models"
	"github.com/terraincognita07/mcycle/internal/services"
)

// RunSummaryCommand prints the insights summary for one account as a plain
// text report.
func RunSummaryCommand(databaseURL string, dbPath string, email string, out io.Writer) error {
	database, err := db.Open(databaseURL, dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	repositories := db.NewRepositories(database)

	user, err := services.NewAuthService(repositories.Users).FindByEmail(email)
	if err != nil {
		return fmt.Errorf("load user %q: %w", email, err)
	}

	insights := services.NewInsightsService(repositories.Cycles, repositories.Metrics, repositories.DailyLogs)
	summary, err := insights.Summary(user.ID)
	if err != nil {
		return err
	}

	writeSummaryReport(out, user, summary)
	return nil
}

func writeSummaryReport(out io.Writer, user models.User, summary analytics.Summary) {
	analysis := summary.CycleAnalysis

	fmt.Fprintf(out, "mCycle report for %s <%s>\n\n", user.Name, user.Email)
	fmt.Fprintln(out, "Cycle analysis")
	fmt.Fprintf(out, "  Cycles logged:     %d\n", analysis.TotalCycles)
	fmt.Fprintf(out, "  Average length:    %s\n", optionalDays(analysis.AvgCycleLength))
	fmt.Fprintf(out, "  Std deviation:     %s\n", optionalFloat(analysis.StdDeviation, " days"))
	fmt.Fprintf(out, "  Consistency:       %s (%s)\n", optionalInt(analysis.ConsistencyScore), analytics.ConsistencyLabel(analysis.ConsistencyScore))
	if analysis.Prediction != nil {
		fmt.Fprintf(out, "  Next period:       %s (%s confidence)\n", analysis.Prediction.PredictedNext, analysis.Prediction.Confidence)
	} else {
		fmt.Fprintln(out, "  Next period:       -")
	}
	if analysis.FertileWindow != nil {
		fmt.Fprintf(out, "  Fertile window:    %s to %s (ovulation %s)\n",
			analysis.FertileWindow.Start, analysis.FertileWindow.End, analysis.FertileWindow.OvulationDate)
	}
	if len(analysis.CycleTrend) > 0 {
		lengths := make([]string, 0, len(analysis.CycleTrend))
		for _, point := range analysis.CycleTrend {
			lengths = append(lengths, strconv.Itoa(point.CycleLength))
		}
		fmt.Fprintf(out, "  Length trend:      %s\n", strings.Join(lengths, ", "))
	}

	if metrics := summary.LatestMetrics; metrics != nil {
		fmt.Fprintln(out, "\nLatest metrics")
		fmt.Fprintf(out, "  Recorded:          %s\n", analytics.NewDate(metrics.RecordedDate))
		if metrics.BMI != nil {
			fmt.Fprintf(out, "  BMI:               %s (%s)\n", optionalFloat(metrics.BMI, ""), analytics.BMICategory(metrics.BMI))
		}
		if metrics.WaistHipRatio != nil {
			fmt.Fprintf(out, "  Waist-hip ratio:   %s\n", optionalFloat(metrics.WaistHipRatio, ""))
		}
	}

	indicators := summary.PCOSIndicators
	fmt.Fprintf(out, "\nPCOS indicators: %d/%d\n", indicators.RiskScore, indicators.MaxScore)
	if len(indicators.Warnings) == 0 {
		fmt.Fprintln(out, "  No indicators triggered.")
	}
	for _, warning := range indicators.Warnings {
		fmt.Fprintf(out, "  [%s] %s\n", warning.Severity, warning.Message)
		if warning.Detail != "" {
			fmt.Fprintf(out, "      %s\n", warning.Detail)
		}
	}

	fmt.Fprintf(out, "\n%s\n", summary.Disclaimer)
}

func optionalDays(value *int) string {
	if value == nil {
		return "-"
	}
	return fmt.Sprintf("%d days", *value)
}

func optionalInt(value *int) string {
	if value == nil {
		return "-"
	}
	return strconv.Itoa(*value)
}

func optionalFloat(value *float64, unit string) string {
	if value == nil {
		return "-"
	}
	return strconv.FormatFloat(*value, 'f', -1, 64) + unit
}
