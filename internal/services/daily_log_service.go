package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/terraincognita07/mcycle/internal/analytics"
	"github.com/terraincognita07/mcycle/internal/models"
	"gorm.io/gorm"
)

var (
	ErrLogDateRequired   = errors.New("log_date is required")
	ErrInvalidMood       = errors.New("invalid mood")
	ErrInvalidPainLevel  = errors.New("pain_level must be between 0 and 10")
	ErrInvalidAcneLevel  = errors.New("acne_level must be between 0 and 5")
	ErrInvalidHairGrowth = errors.New("hair_growth_level must be between 0 and 5")
	ErrInvalidExercise   = errors.New("exercise_minutes must not be negative")
	ErrInvalidLogMonth   = errors.New("invalid month or year")
	ErrDailyLogNotFound  = errors.New("daily log not found")
)

type DailyLogRepository interface {
	ListLatest(userID uint, limit int) ([]models.DailyLog, error)
	ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.DailyLog, error)
	FindByIDForUser(logID uint, userID uint) (models.DailyLog, error)
	Create(entry *models.DailyLog) error
	Save(entry *models.DailyLog) error
}

// DailyLogInput is used for both create and partial update. On update a nil
// field keeps the stored value.
type DailyLogInput struct {
	LogDate         *time.Time
	Mood            *string
	PainLevel       *int
	AcneLevel       *int
	HairGrowthLevel *int
	ExerciseMinutes *int
	ExerciseType    *string
	Medication      *string
	Notes           *string
}

type DailyLogService struct {
	logs DailyLogRepository
	now  func() time.Time
}

func NewDailyLogService(logs DailyLogRepository) *DailyLogService {
	return &DailyLogService{logs: logs, now: time.Now}
}

// ListRecent returns the newest analytics.RecentLogLimit entries.
func (service *DailyLogService) ListRecent(userID uint) ([]models.DailyLog, error) {
	return service.logs.ListLatest(userID, analytics.RecentLogLimit)
}

func (service *DailyLogService) ListMonth(userID uint, year int, month int) ([]models.DailyLog, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, ErrInvalidLogMonth
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return service.logs.ListByUserRange(userID, from, from.AddDate(0, 1, 0))
}

func (service *DailyLogService) Create(userID uint, input DailyLogInput) (models.DailyLog, error) {
	if input.LogDate == nil || input.LogDate.IsZero() {
		return models.DailyLog{}, ErrLogDateRequired
	}
	if err := validateDailyLogInput(input); err != nil {
		return models.DailyLog{}, err
	}

	entry := models.DailyLog{
		UserID:    userID,
		LogDate:   analytics.DateOnly(*input.LogDate),
		CreatedAt: service.now().UTC(),
	}
	applyDailyLogInput(&entry, input)

	if err := service.logs.Create(&entry); err != nil {
		return models.DailyLog{}, fmt.Errorf("create daily log: %w", err)
	}
	return entry, nil
}

func (service *DailyLogService) Update(userID uint, logID uint, input DailyLogInput) (models.DailyLog, error) {
	entry, err := service.logs.FindByIDForUser(logID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DailyLog{}, ErrDailyLogNotFound
		}
		return models.DailyLog{}, fmt.Errorf("load daily log: %w", err)
	}
	if err := validateDailyLogInput(input); err != nil {
		return models.DailyLog{}, err
	}

	if input.LogDate != nil && !input.LogDate.IsZero() {
		entry.LogDate = analytics.DateOnly(*input.LogDate)
	}
	applyDailyLogInput(&entry, input)

	if err := service.logs.Save(&entry); err != nil {
		return models.DailyLog{}, fmt.Errorf("update daily log: %w", err)
	}
	return entry, nil
}

func validateDailyLogInput(input DailyLogInput) error {
	if input.Mood != nil {
		mood := strings.ToLower(strings.TrimSpace(*input.Mood))
		if mood != "" && !models.IsValidMood(mood) {
			return ErrInvalidMood
		}
	}
	if !intInRange(input.PainLevel, 0, models.MaxPainLevel) {
		return ErrInvalidPainLevel
	}
	if !intInRange(input.AcneLevel, 0, models.MaxAcneLevel) {
		return ErrInvalidAcneLevel
	}
	if !intInRange(input.HairGrowthLevel, 0, models.MaxHairGrowthLevel) {
		return ErrInvalidHairGrowth
	}
	if input.ExerciseMinutes != nil && *input.ExerciseMinutes < 0 {
		return ErrInvalidExercise
	}
	return nil
}

func applyDailyLogInput(entry *models.DailyLog, input DailyLogInput) {
	if input.Mood != nil {
		mood := strings.ToLower(strings.TrimSpace(*input.Mood))
		entry.Mood = normalizeOptionalText(&mood)
	}
	if input.PainLevel != nil {
		entry.PainLevel = copyInt(input.PainLevel)
	}
	if input.AcneLevel != nil {
		entry.AcneLevel = copyInt(input.AcneLevel)
	}
	if input.HairGrowthLevel != nil {
		entry.HairGrowthLevel = copyInt(input.HairGrowthLevel)
	}
	if input.ExerciseMinutes != nil {
		entry.ExerciseMinutes = copyInt(input.ExerciseMinutes)
	}
	if input.ExerciseType != nil {
		entry.ExerciseType = normalizeOptionalText(input.ExerciseType)
	}
	if input.Medication != nil {
		entry.Medication = normalizeOptionalText(input.Medication)
	}
	if input.Notes != nil {
		entry.Notes = normalizeOptionalText(input.Notes)
	}
}

func intInRange(value *int, minimum int, maximum int) bool {
	return value == nil || (*value >= minimum && *value <= maximum)
}

func copyInt(value *int) *int {
	copied := *value
	return &copied
}
