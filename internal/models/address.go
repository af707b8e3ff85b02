package models

import "time"

type Address struct {
	ID              uint   `gorm:"primaryKey"`
	City            string `gorm:"size:50;not null"`
	Street          string `gorm:"size:50;not null"`
	BuildingNumber  uint   `gorm:"not null"`
	ApartmentNumber *uint
	PostalCode      string `gorm:"size:10;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
