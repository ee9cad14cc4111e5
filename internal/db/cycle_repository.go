package db

import (
	"time"

	"github.com/terraincognita07/mcycle/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

func (repo *CycleRepository) ListByUser(userID uint) ([]models.Cycle, error) {
	cycles := make([]models.Cycle, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("start_date ASC, id ASC").Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (repo *CycleRepository) ListByUserNewestFirst(userID uint) ([]models.Cycle, error) {
	cycles := make([]models.Cycle, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("start_date DESC, id DESC").Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

// FindPreviousStart returns the latest cycle starting strictly before start.
func (repo *CycleRepository) FindPreviousStart(userID uint, start time.Time) (models.Cycle, bool, error) {
	cycle := models.Cycle{}
	result := repo.database.
		Where("user_id = ? AND start_date < ?", userID, start).
		Order("start_date DESC, id DESC").
		Limit(1).
		Find(&cycle)
	if result.Error != nil {
		return models.Cycle{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Cycle{}, false, nil
	}
	return cycle, true, nil
}

func (repo *CycleRepository) FindByIDForUser(cycleID uint, userID uint) (models.Cycle, error) {
	var cycle models.Cycle
	if err := repo.database.Where("id = ? AND user_id = ?", cycleID, userID).First(&cycle).Error; err != nil {
		return models.Cycle{}, err
	}
	return cycle, nil
}

func (repo *CycleRepository) Create(cycle *models.Cycle) error {
	return repo.database.Create(cycle).Error
}

func (repo *CycleRepository) Save(cycle *models.Cycle) error {
	return repo.database.Save(cycle).Error
}

func (repo *CycleRepository) DeleteForUser(cycleID uint, userID uint) error {
	return repo.database.Where("id = ? AND user_id = ?", cycleID, userID).Delete(&models.Cycle{}).Error
}
