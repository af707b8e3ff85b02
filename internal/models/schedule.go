package models

import "time"

// Schedule: Personel vardiyası. Aynı personel için çakışan vardiya olamaz.
// Personelin kendi açtığı vardiya admin onayına kadar approve_date=null kalır;
// admin adına oluşturursa oluşturma anında onaylanır.
type Schedule struct {
	ID          uint      `gorm:"primaryKey"`
	StartTime   time.Time `gorm:"index;not null"`
	EndTime     time.Time `gorm:"index;not null"`
	ApproveDate *time.Time
	ShopID      uint `gorm:"index;not null"`
	Shop        Shop
	UserID      uint `gorm:"index;not null"`
	User        User
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
