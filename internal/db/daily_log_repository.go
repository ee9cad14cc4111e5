package db

import (
	"time"

	"github.com/terraincognita07/mcycle/internal/models"
	"gorm.io/gorm"
)

type DailyLogRepository struct {
	database *gorm.DB
}

func NewDailyLogRepository(database *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{database: database}
}

func (repo *DailyLogRepository) ListLatest(userID uint, limit int) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("log_date DESC, id DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListByUserRange returns logs in [from, to) newest first.
func (repo *DailyLogRepository) ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	if err := repo.database.
		Where("user_id = ? AND log_date >= ? AND log_date < ?", userID, from, to).
		Order("log_date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) FindByIDForUser(logID uint, userID uint) (models.DailyLog, error) {
	var entry models.DailyLog
	if err := repo.database.Where("id = ? AND user_id = ?", logID, userID).First(&entry).Error; err != nil {
		return models.DailyLog{}, err
	}
	return entry, nil
}

func (repo *DailyLogRepository) Create(entry *models.DailyLog) error {
	return repo.database.Create(entry).Error
}

func (repo *DailyLogRepository) Save(entry *models.DailyLog) error {
	return repo.database.Save(entry).Error
}
