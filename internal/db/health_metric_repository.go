package db

import (
	"github.com/terraincognita07/mcycle/internal/models"
	"gorm.io/gorm"
)

type HealthMetricRepository struct {
	database *gorm.DB
}

func NewHealthMetricRepository(database *gorm.DB) *HealthMetricRepository {
	return &HealthMetricRepository{database: database}
}

func (repo *HealthMetricRepository) ListByUser(userID uint) ([]models.HealthMetric, error) {
	metrics := make([]models.HealthMetric, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("recorded_date DESC, id DESC").Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

// FindLatest returns nil when the user has no metrics yet.
func (repo *HealthMetricRepository) FindLatest(userID uint) (*models.HealthMetric, error) {
	metric := models.HealthMetric{}
	result := repo.database.
		Where("user_id = ?", userID).
		Order("recorded_date DESC, id DESC").
		Limit(1).
		Find(&metric)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &metric, nil
}

func (repo *HealthMetricRepository) Create(metric *models.HealthMetric) error {
	return repo.database.Create(metric).Error
}
