package models

import "time"

// HealthMetric holds body measurements. BMI and WaistHipRatio are derived
// once at creation and never recomputed.
type HealthMetric struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	RecordedDate  time.Time `gorm:"type:date;not null" json:"recorded_date"`
	WeightKg      *float64  `json:"weight_kg"`
	HeightCm      *float64  `json:"height_cm"`
	WaistCm       *float64  `json:"waist_cm"`
	HipCm         *float64  `json:"hip_cm"`
	WristCm       *float64  `json:"wrist_cm"`
	BMI           *float64  `gorm:"column:bmi" json:"bmi"`
	WaistHipRatio *float64  `json:"waist_hip_ratio"`
	CreatedAt     time.Time `json:"created_at"`
}

func (HealthMetric) TableName() string {
	return "health_metrics"
}
