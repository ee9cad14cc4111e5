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
	ErrStartDateRequired = errors.New("start_date is required")
	ErrInvalidCycleRange = errors.New("end_date must not be before start_date")
	ErrCycleNotFound     = errors.New("cycle not found")
)

type CycleRepository interface {
	ListByUser(userID uint) ([]models.Cycle, error)
	ListByUserNewestFirst(userID uint) ([]models.Cycle, error)
	FindPreviousStart(userID uint, start time.Time) (models.Cycle, bool, error)
	FindByIDForUser(cycleID uint, userID uint) (models.Cycle, error)
	Create(cycle *models.Cycle) error
	Save(cycle *models.Cycle) error
	DeleteForUser(cycleID uint, userID uint) error
}

type CycleInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Notes     *string
}

// CycleUpdate distinguishes an omitted end date from an explicit clear via
// EndDateSet.
type CycleUpdate struct {
	StartDate  *time.Time
	EndDate    *time.Time
	EndDateSet bool
	Notes      *string
}

type CycleService struct {
	cycles CycleRepository
	now    func() time.Time
}

func NewCycleService(cycles CycleRepository) *CycleService {
	return &CycleService{cycles: cycles, now: time.Now}
}

func (service *CycleService) List(userID uint) ([]models.Cycle, error) {
	return service.cycles.ListByUserNewestFirst(userID)
}

func (service *CycleService) Create(userID uint, input CycleInput) (models.Cycle, error) {
	if input.StartDate == nil || input.StartDate.IsZero() {
		return models.Cycle{}, ErrStartDateRequired
	}
	start := analytics.DateOnly(*input.StartDate)
	end, err := normalizeCycleEnd(start, input.EndDate)
	if err != nil {
		return models.Cycle{}, err
	}

	cycle := models.Cycle{
		UserID:           userID,
		StartDate:        start,
		EndDate:          end,
		BleedingDuration: BleedingDuration(start, end),
		Notes:            normalizeOptionalText(input.Notes),
		CreatedAt:        service.now().UTC(),
	}

	previous, found, err := service.cycles.FindPreviousStart(userID, start)
	if err != nil {
		return models.Cycle{}, fmt.Errorf("load previous cycle: %w", err)
	}
	if found {
		length := analytics.DaysBetween(previous.StartDate, start)
		cycle.CycleLength = &length
	}

	history, err := service.cycles.ListByUser(userID)
	if err != nil {
		return models.Cycle{}, fmt.Errorf("load cycle history: %w", err)
	}
	cycle.PredictedNext = analytics.PredictedNextAsOf(history, cycle)

	if err := service.cycles.Create(&cycle); err != nil {
		return models.Cycle{}, fmt.Errorf("create cycle: %w", err)
	}
	return cycle, nil
}

// Update edits dates and notes. CycleLength keeps the value fixed at
// creation; only BleedingDuration follows the new dates.
func (service *CycleService) Update(userID uint, cycleID uint, update CycleUpdate) (models.Cycle, error) {
	cycle, err := service.find(userID, cycleID)
	if err != nil {
		return models.Cycle{}, err
	}

	start := cycle.StartDate
	if update.StartDate != nil && !update.StartDate.IsZero() {
		start = analytics.DateOnly(*update.StartDate)
	}
	end := cycle.EndDate
	if update.EndDateSet {
		end = update.EndDate
	}
	end, err = normalizeCycleEnd(start, end)
	if err != nil {
		return models.Cycle{}, err
	}

	cycle.StartDate = start
	cycle.EndDate = end
	cycle.BleedingDuration = BleedingDuration(start, end)
	if update.Notes != nil {
		cycle.Notes = normalizeOptionalText(update.Notes)
	}

	if err := service.cycles.Save(&cycle); err != nil {
		return models.Cycle{}, fmt.Errorf("update cycle: %w", err)
	}
	return cycle, nil
}

func (service *CycleService) Delete(userID uint, cycleID uint) error {
	if _, err := service.find(userID, cycleID); err != nil {
		return err
	}
	if err := service.cycles.DeleteForUser(cycleID, userID); err != nil {
		return fmt.Errorf("delete cycle: %w", err)
	}
	return nil
}

func (service *CycleService) find(userID uint, cycleID uint) (models.Cycle, error) {
	cycle, err := service.cycles.FindByIDForUser(cycleID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Cycle{}, ErrCycleNotFound
		}
		return models.Cycle{}, fmt.Errorf("load cycle: %w", err)
	}
	return cycle, nil
}

// BleedingDuration counts both the start and end day. It is nil while the
// period is ongoing.
func BleedingDuration(start time.Time, end *time.Time) *int {
	if end == nil || end.IsZero() {
		return nil
	}
	days := analytics.DaysBetween(start, *end) + 1
	return &days
}

func normalizeCycleEnd(start time.Time, end *time.Time) (*time.Time, error) {
	if end == nil || end.IsZero() {
		return nil, nil
	}
	normalized := analytics.DateOnly(*end)
	if normalized.Before(start) {
		return nil, ErrInvalidCycleRange
	}
	return &normalized, nil
}

func normalizeOptionalText(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
