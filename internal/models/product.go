package models

import "time"

type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:100;not null;unique"`
	Price       float64 `gorm:"not null"` // birim satış fiyatı
	Description string  `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Recipe []ProductIngredient `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// ProductIngredient: Ürünün reçetesindeki tek satır
// (bir birim ürün için gereken malzeme miktarı)
type ProductIngredient struct {
	ID           uint `gorm:"primaryKey"`
	ProductID    uint `gorm:"not null;uniqueIndex:idx_product_ingredient"`
	IngredientID uint `gorm:"not null;uniqueIndex:idx_product_ingredient"`
	Ingredient   Ingredient
	Amount       float64 `gorm:"not null"` // malzemenin birim tipinde miktar
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
