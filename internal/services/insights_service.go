package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/mcycle/internal/analytics"
	"github.com/terraincognita07/mcycle/internal/models"
)

var ErrInsightsUnavailable = errors.New("insights unavailable")

type InsightsCycleSource interface {
	ListByUser(userID uint) ([]models.Cycle, error)
}

type InsightsMetricSource interface {
	FindLatest(userID uint) (*models.HealthMetric, error)
}

type InsightsLogSource interface {
	ListLatest(userID uint, limit int) ([]models.DailyLog, error)
}

// SummaryObserver receives every summary built, e.g. for metrics.
type SummaryObserver func(summary analytics.Summary)

type InsightsService struct {
	cycles   InsightsCycleSource
	metrics  InsightsMetricSource
	logs     InsightsLogSource
	observer SummaryObserver
}

func NewInsightsService(cycles InsightsCycleSource, metrics InsightsMetricSource, logs InsightsLogSource) *InsightsService {
	return &InsightsService{cycles: cycles, metrics: metrics, logs: logs}
}

func (service *InsightsService) SetObserver(observer SummaryObserver) {
	service.observer = observer
}

// Summary loads one user's snapshot and runs the analytics engine over it.
// A failed fetch returns no summary at all.
func (service *InsightsService) Summary(userID uint) (analytics.Summary, error) {
	cycles, err := service.cycles.ListByUser(userID)
	if err != nil {
		return analytics.Summary{}, fmt.Errorf("%w: load cycles: %w", ErrInsightsUnavailable, err)
	}
	latest, err := service.metrics.FindLatest(userID)
	if err != nil {
		return analytics.Summary{}, fmt.Errorf("%w: load latest metrics: %w", ErrInsightsUnavailable, err)
	}
	logs, err := service.logs.ListLatest(userID, analytics.RecentLogLimit)
	if err != nil {
		return analytics.Summary{}, fmt.Errorf("%w: load daily logs: %w", ErrInsightsUnavailable, err)
	}

	summary := analytics.BuildSummary(analytics.SummaryInput{
		Cycles:        cycles,
		LatestMetrics: latest,
		RecentLogs:    logs,
	})
	if service.observer != nil {
		service.observer(summary)
	}
	return summary, nil
}
