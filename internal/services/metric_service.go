package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/mcycle/internal/analytics"
	"github.com/terraincognita07/mcycle/internal/models"
)

var (
	ErrRecordedDateRequired = errors.New("recorded_date is required")
	ErrInvalidMeasurement   = errors.New("measurements must not be negative")
)

type HealthMetricRepository interface {
	ListByUser(userID uint) ([]models.HealthMetric, error)
	FindLatest(userID uint) (*models.HealthMetric, error)
	Create(metric *models.HealthMetric) error
}

type MetricInput struct {
	RecordedDate *time.Time
	WeightKg     *float64
	HeightCm     *float64
	WaistCm      *float64
	HipCm        *float64
	WristCm      *float64
}

type MetricService struct {
	metrics HealthMetricRepository
	now     func() time.Time
}

func NewMetricService(metrics HealthMetricRepository) *MetricService {
	return &MetricService{metrics: metrics, now: time.Now}
}

func (service *MetricService) List(userID uint) ([]models.HealthMetric, error) {
	return service.metrics.ListByUser(userID)
}

// Create derives BMI and waist-hip ratio once. They are never recomputed.
func (service *MetricService) Create(userID uint, input MetricInput) (models.HealthMetric, error) {
	if input.RecordedDate == nil || input.RecordedDate.IsZero() {
		return models.HealthMetric{}, ErrRecordedDateRequired
	}
	for _, value := range []*float64{input.WeightKg, input.HeightCm, input.WaistCm, input.HipCm, input.WristCm} {
		if value != nil && *value < 0 {
			return models.HealthMetric{}, ErrInvalidMeasurement
		}
	}

	metric := models.HealthMetric{
		UserID:       userID,
		RecordedDate: analytics.DateOnly(*input.RecordedDate),
		WeightKg:     positiveOrNil(input.WeightKg),
		HeightCm:     positiveOrNil(input.HeightCm),
		WaistCm:      positiveOrNil(input.WaistCm),
		HipCm:        positiveOrNil(input.HipCm),
		WristCm:      positiveOrNil(input.WristCm),
		CreatedAt:    service.now().UTC(),
	}
	metric.BMI = CalculateBMI(metric.WeightKg, metric.HeightCm)
	metric.WaistHipRatio = CalculateWaistHipRatio(metric.WaistCm, metric.HipCm)

	if err := service.metrics.Create(&metric); err != nil {
		return models.HealthMetric{}, fmt.Errorf("create health metric: %w", err)
	}
	return metric, nil
}

// CalculateBMI returns kg/m² rounded to one decimal.
func CalculateBMI(weightKg *float64, heightCm *float64) *float64 {
	if weightKg == nil || heightCm == nil || *weightKg <= 0 || *heightCm <= 0 {
		return nil
	}
	heightM := *heightCm / 100
	bmi := analytics.RoundTo(*weightKg/(heightM*heightM), 1)
	return &bmi
}

func CalculateWaistHipRatio(waistCm *float64, hipCm *float64) *float64 {
	if waistCm == nil || hipCm == nil || *waistCm <= 0 || *hipCm <= 0 {
		return nil
	}
	ratio := analytics.RoundTo(*waistCm / *hipCm, 2)
	return &ratio
}

func positiveOrNil(value *float64) *float64 {
	if value == nil || *value <= 0 {
		return nil
	}
	copied := *value
	return &copied
}
