package models

import "time"

// Booking: Masa rezervasyonu. Masalar kapasiteye göre otomatik atanır.
type Booking struct {
	ID         uint      `gorm:"primaryKey"`
	StartTime  time.Time `gorm:"index;not null"`
	EndTime    time.Time `gorm:"index;not null"`
	GuestCount uint      `gorm:"not null"`
	UserID     uint      `gorm:"index;not null"`
	User       User
	ShopID     uint `gorm:"index;not null"`
	Shop       Shop
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Tables []BookingTable `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

// BookingTable: Rezervasyona atanan masa
type BookingTable struct {
	ID        uint `gorm:"primaryKey"`
	BookingID uint `gorm:"index;not null"`
	TableID   uint `gorm:"index;not null"`
	Table     Table
	CreatedAt time.Time
}
