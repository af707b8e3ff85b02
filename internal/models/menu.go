package models

import "time"

// Menu: Tarih aralığıyla geçerli menü. Güncel menü =
// start_date <= bugün <= end_date olan son kayıt.
type Menu struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null"`
	Description string    `gorm:"size:500"`
	StartDate   time.Time `gorm:"index;not null"`
	EndDate     time.Time `gorm:"index;not null"`
	CafeID      uint      `gorm:"index;not null"`
	Cafe        Cafe
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []MenuProduct `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
}

// MenuProduct: Menü ile ürün arasındaki bağlantı satırı
type MenuProduct struct {
	ID        uint `gorm:"primaryKey"`
	MenuID    uint `gorm:"not null;uniqueIndex:idx_menu_product"`
	ProductID uint `gorm:"not null;uniqueIndex:idx_menu_product"`
	Product   Product
	CreatedAt time.Time
}
