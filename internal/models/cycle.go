package models

import "time"

// Cycle is one logged period. CycleLength is fixed when the record is
// created, relative to the cycle that preceded it at that moment.
type Cycle struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"not null;index" json:"user_id"`
	StartDate        time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate          *time.Time `gorm:"type:date" json:"end_date"`
	CycleLength      *int       `json:"cycle_length"`
	BleedingDuration *int       `json:"bleeding_duration"`
	PredictedNext    *time.Time `gorm:"type:date" json:"predicted_next"`
	Notes            *string    `json:"notes"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (Cycle) TableName() string {
	return "cycles"
}
