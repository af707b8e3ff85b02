package models

import "time"

type Ingredient struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"size:100;not null;unique"`
	UnitTypeID *uint
	UnitType   *UnitType
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UnitType: Ölçü birimi (gram, ml, adet vs.)
type UnitType struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:20;not null;unique"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
