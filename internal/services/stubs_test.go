package services

import (
	"errors"
	"sort"
	"time"

	"github.com/terraincognita07/mcycle/internal/models"
	"gorm.io/gorm"
)

func mustParseDay(raw string) time.Time {
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		panic(err)
	}
	return parsed
}

func dayPtr(raw string) *time.Time {
	parsed := mustParseDay(raw)
	return &parsed
}

func intPtr(value int) *int {
	return &value
}

func floatPtr(value float64) *float64 {
	return &value
}

func stringPtr(value string) *string {
	return &value
}

type stubUserRepo struct {
	users  []models.User
	nextID uint
}

func (repo *stubUserRepo) ExistsByNormalizedEmail(email string) (bool, error) {
	for _, user := range repo.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (repo *stubUserRepo) FindByNormalizedEmail(email string) (models.User, error) {
	for _, user := range repo.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (repo *stubUserRepo) FindByID(userID uint) (models.User, error) {
	for _, user := range repo.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (repo *stubUserRepo) Create(user *models.User) error {
	repo.nextID++
	user.ID = repo.nextID
	repo.users = append(repo.users, *user)
	return nil
}

func (repo *stubUserRepo) Save(user *models.User) error {
	for index := range repo.users {
		if repo.users[index].ID == user.ID {
			repo.users[index] = *user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type stubCycleRepo struct {
	cycles  []models.Cycle
	nextID  uint
	listErr error
}

func (repo *stubCycleRepo) ListByUser(userID uint) ([]models.Cycle, error) {
	if repo.listErr != nil {
		return nil, repo.listErr
	}
	result := make([]models.Cycle, 0)
	for _, cycle := range repo.cycles {
		if cycle.UserID == userID {
			result = append(result, cycle)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartDate.Before(result[j].StartDate)
	})
	return result, nil
}

func (repo *stubCycleRepo) ListByUserNewestFirst(userID uint) ([]models.Cycle, error) {
	result, err := repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	for left, right := 0, len(result)-1; left < right; left, right = left+1, right-1 {
		result[left], result[right] = result[right], result[left]
	}
	return result, nil
}

func (repo *stubCycleRepo) FindPreviousStart(userID uint, start time.Time) (models.Cycle, bool, error) {
	var previous models.Cycle
	found := false
	for _, cycle := range repo.cycles {
		if cycle.UserID != userID || !cycle.StartDate.Before(start) {
			continue
		}
		if !found || cycle.StartDate.After(previous.StartDate) {
			previous = cycle
			found = true
		}
	}
	return previous, found, nil
}

func (repo *stubCycleRepo) FindByIDForUser(cycleID uint, userID uint) (models.Cycle, error) {
	for _, cycle := range repo.cycles {
		if cycle.ID == cycleID && cycle.UserID == userID {
			return cycle, nil
		}
	}
	return models.Cycle{}, gorm.ErrRecordNotFound
}

func (repo *stubCycleRepo) Create(cycle *models.Cycle) error {
	repo.nextID++
	cycle.ID = repo.nextID
	repo.cycles = append(repo.cycles, *cycle)
	return nil
}

func (repo *stubCycleRepo) Save(cycle *models.Cycle) error {
	for index := range repo.cycles {
		if repo.cycles[index].ID == cycle.ID {
			repo.cycles[index] = *cycle
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (repo *stubCycleRepo) DeleteForUser(cycleID uint, userID uint) error {
	for index, cycle := range repo.cycles {
		if cycle.ID == cycleID && cycle.UserID == userID {
			repo.cycles = append(repo.cycles[:index], repo.cycles[index+1:]...)
			return nil
		}
	}
	return nil
}

type stubMetricRepo struct {
	metrics   []models.HealthMetric
	latestErr error
}

func (repo *stubMetricRepo) ListByUser(userID uint) ([]models.HealthMetric, error) {
	result := make([]models.HealthMetric, 0)
	for _, metric := range repo.metrics {
		if metric.UserID == userID {
			result = append(result, metric)
		}
	}
	return result, nil
}

func (repo *stubMetricRepo) FindLatest(userID uint) (*models.HealthMetric, error) {
	if repo.latestErr != nil {
		return nil, repo.latestErr
	}
	var latest *models.HealthMetric
	for index := range repo.metrics {
		metric := repo.metrics[index]
		if metric.UserID != userID {
			continue
		}
		if latest == nil || metric.RecordedDate.After(latest.RecordedDate) {
			latest = &metric
		}
	}
	return latest, nil
}

func (repo *stubMetricRepo) Create(metric *models.HealthMetric) error {
	metric.ID = uint(len(repo.metrics) + 1)
	repo.metrics = append(repo.metrics, *metric)
	return nil
}

type stubLogRepo struct {
	logs      []models.DailyLog
	lastLimit int
	lastFrom  time.Time
	lastTo    time.Time
	listErr   error
}

func (repo *stubLogRepo) ListLatest(userID uint, limit int) ([]models.DailyLog, error) {
	repo.lastLimit = limit
	if repo.listErr != nil {
		return nil, repo.listErr
	}
	result := make([]models.DailyLog, 0)
	for _, entry := range repo.logs {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (repo *stubLogRepo) ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.DailyLog, error) {
	repo.lastFrom = from
	repo.lastTo = to
	result := make([]models.DailyLog, 0)
	for _, entry := range repo.logs {
		if entry.UserID == userID && !entry.LogDate.Before(from) && entry.LogDate.Before(to) {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (repo *stubLogRepo) FindByIDForUser(logID uint, userID uint) (models.DailyLog, error) {
	for _, entry := range repo.logs {
		if entry.ID == logID && entry.UserID == userID {
			return entry, nil
		}
	}
	return models.DailyLog{}, gorm.ErrRecordNotFound
}

func (repo *stubLogRepo) Create(entry *models.DailyLog) error {
	entry.ID = uint(len(repo.logs) + 1)
	repo.logs = append(repo.logs, *entry)
	return nil
}

func (repo *stubLogRepo) Save(entry *models.DailyLog) error {
	for index := range repo.logs {
		if repo.logs[index].ID == entry.ID {
			repo.logs[index] = *entry
			return nil
		}
	}
	return errors.New("missing log")
}
