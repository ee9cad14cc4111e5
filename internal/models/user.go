package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	DateOfBirth  *time.Time `gorm:"type:date" json:"date_of_birth"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
}
