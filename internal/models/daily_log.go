package models

import "time"

const (
	MoodHappy     = "happy"
	MoodCalm      = "calm"
	MoodAnxious   = "anxious"
	MoodSad       = "sad"
	MoodIrritable = "irritable"
)

const (
	MaxPainLevel       = 10
	MaxAcneLevel       = 5
	MaxHairGrowthLevel = 5
)

func IsValidMood(mood string) bool {
	switch mood {
	case MoodHappy, MoodCalm, MoodAnxious, MoodSad, MoodIrritable:
		return true
	default:
		return false
	}
}

type DailyLog struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	LogDate         time.Time `gorm:"type:date;not null" json:"log_date"`
	Mood            *string   `json:"mood"`
	PainLevel       *int      `json:"pain_level"`
	AcneLevel       *int      `json:"acne_level"`
	HairGrowthLevel *int      `json:"hair_growth_level"`
	ExerciseMinutes *int      `json:"exercise_minutes"`
	ExerciseType    *string   `json:"exercise_type"`
	Medication      *string   `json:"medication"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

func (DailyLog) TableName() string {
	return "daily_logs"
}
