package models

import "time"

// Shop: Kafeye bağlı tek bir kahve dükkanı (şube)
type Shop struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;not null;unique"`
	OpenTime    string `gorm:"size:5;not null"` // "08:00"
	CloseTime   string `gorm:"size:5;not null"` // "22:00"
	Phone       string `gorm:"size:20;not null;unique"`
	Email       string `gorm:"size:100;not null;unique"`
	Description string `gorm:"size:500"`
	CafeID      uint   `gorm:"index;not null"`
	Cafe        Cafe
	AddressID   *uint
	Address     *Address
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Tables []Table
}

// Table: Dükkandaki masa, rezervasyon için
type Table struct {
	ID        uint `gorm:"primaryKey"`
	ShopID    uint `gorm:"not null;uniqueIndex:idx_shop_table_number"`
	Shop      Shop
	Number    uint `gorm:"not null;uniqueIndex:idx_shop_table_number"`
	MaxSeats  uint `gorm:"not null"` // masanın kişi kapasitesi
	CreatedAt time.Time
	UpdatedAt time.Time
}
