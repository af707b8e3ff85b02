package models

import "time"

// Salary: Personele yapılan maaş ödemesi kaydı
type Salary struct {
	ID        uint      `gorm:"primaryKey"`
	Amount    float64   `gorm:"not null"`
	Date      time.Time `gorm:"index;not null"`
	UserID    uint      `gorm:"index;not null"`
	User      User
	CreatedAt time.Time
	UpdatedAt time.Time
}
