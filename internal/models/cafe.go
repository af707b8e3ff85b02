package models

import "time"

type Cafe struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null;unique"`
	Phone       string `gorm:"size:20;not null;unique"`
	Email       string `gorm:"size:100;not null;unique"`
	Description string `gorm:"size:500"`
	AddressID   *uint
	Address     *Address
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Shops []Shop
}
