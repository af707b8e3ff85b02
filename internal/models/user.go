package models

import "time"

type UserRole string

const (
	RoleClient  UserRole = "client"
	RoleAdmin   UserRole = "admin"
	RoleBarista UserRole = "barista"
	RoleCashier UserRole = "cashier"
)

// IsEmployee: admin, barista ve kasiyer personel sayılır
func (r UserRole) IsEmployee() bool {
	return r == RoleAdmin || r == RoleBarista || r == RoleCashier
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	ID           uint     `gorm:"primaryKey"`
	Name         string   `gorm:"size:100;not null"`
	Email        string   `gorm:"size:100;uniqueIndex;not null"`
	Phone        string   `gorm:"size:20"` // Opsiyonel telefon
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:20;not null"`

	// Personel alanları (client için boş)
	AccountNumber string `gorm:"size:26"` // maaş ödemesi için hesap numarası
	CafeID        *uint
	Cafe          *Cafe

	CreatedAt time.Time
	UpdatedAt time.Time
}
