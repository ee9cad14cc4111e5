package models

import (
	"encoding/json"
	"time"
)

// Calendar-day columns are written as YYYY-MM-DD on the wire.
const dateLayout = "2006-01-02"

func formatOptionalDate(value *time.Time) *string {
	if value == nil || value.IsZero() {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}

func (user User) MarshalJSON() ([]byte, error) {
	type userJSON User
	return json.Marshal(struct {
		userJSON
		DateOfBirth *string `json:"date_of_birth"`
	}{
		userJSON:    userJSON(user),
		DateOfBirth: formatOptionalDate(user.DateOfBirth),
	})
}

func (cycle Cycle) MarshalJSON() ([]byte, error) {
	type cycleJSON Cycle
	return json.Marshal(struct {
		cycleJSON
		StartDate     string  `json:"start_date"`
		EndDate       *string `json:"end_date"`
		PredictedNext *string `json:"predicted_next"`
	}{
		cycleJSON:     cycleJSON(cycle),
		StartDate:     cycle.StartDate.Format(dateLayout),
		EndDate:       formatOptionalDate(cycle.EndDate),
		PredictedNext: formatOptionalDate(cycle.PredictedNext),
	})
}

func (metric HealthMetric) MarshalJSON() ([]byte, error) {
	type metricJSON HealthMetric
	return json.Marshal(struct {
		metricJSON
		RecordedDate string `json:"recorded_date"`
	}{
		metricJSON:   metricJSON(metric),
		RecordedDate: metric.RecordedDate.Format(dateLayout),
	})
}

func (entry DailyLog) MarshalJSON() ([]byte, error) {
	type dailyLogJSON DailyLog
	return json.Marshal(struct {
		dailyLogJSON
		LogDate string `json:"log_date"`
	}{
		dailyLogJSON: dailyLogJSON(entry),
		LogDate:      entry.LogDate.Format(dateLayout),
	})
}
