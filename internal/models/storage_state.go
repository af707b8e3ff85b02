package models

import "time"

// StorageState: Dükkan başına malzeme stok durumu.
// (shop, ingredient) ikilisi için tek satır; stok miktarının tek kaynağı.
// Her sipariş ve tedarik bu satırı günceller.
type StorageState struct {
	ID           uint `gorm:"primaryKey"`
	ShopID       uint `gorm:"not null;uniqueIndex:idx_shop_ingredient"`
	Shop         Shop
	IngredientID uint `gorm:"not null;uniqueIndex:idx_shop_ingredient"`
	Ingredient   Ingredient
	Amount       float64 `gorm:"not null"` // mevcut stok miktarı
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
