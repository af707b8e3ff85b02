package models

import "time"

// Supply: Tedarik (teslimat) kaydı. Oluşturulduktan sonra değiştirilmez;
// stok artışı oluşturma anında bir kez uygulanır.
type Supply struct {
	ID          uint      `gorm:"primaryKey"`
	Date        time.Time `gorm:"index;not null"` // teslimat tarihi
	Description string    `gorm:"size:500"`
	ShopID      uint      `gorm:"index;not null"`
	Shop        Shop
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []SuppliedIngredient `gorm:"foreignKey:SupplyID;constraint:OnDelete:CASCADE"`
}

// SuppliedIngredient: Tedarikteki tek malzeme satırı
type SuppliedIngredient struct {
	ID           uint `gorm:"primaryKey"`
	SupplyID     uint `gorm:"index;not null"`
	IngredientID uint `gorm:"index;not null"`
	Ingredient   Ingredient
	Amount       uint `gorm:"not null"` // pozitif adet
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
