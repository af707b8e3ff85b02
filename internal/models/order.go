package models

import "time"

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"  // online sipariş, personel bekliyor
	OrderStatusAccepted OrderStatus = "accepted" // personel üstlendi / kasada alındı
)

type PaymentType string

const (
	PaymentTypeCash   PaymentType = "cash"
	PaymentTypeCard   PaymentType = "card"
	PaymentTypeOnline PaymentType = "online"
)

type Order struct {
	ID     uint    `gorm:"primaryKey"`
	Number string  `gorm:"size:36;uniqueIndex;not null"` // sipariş referans numarası
	Amount float64 `gorm:"not null"`                     // ürün fiyatlarının toplamı

	// Online siparişte client, kasada alınan siparişte employee dolu.
	// Bekleyen siparişi üstlenen personel employee alanına yazılır.
	ClientID   *uint
	Client     *User
	EmployeeID *uint
	Employee   *User `gorm:"foreignKey:EmployeeID"`

	ShopID      uint `gorm:"index;not null"`
	Shop        Shop
	Status      OrderStatus `gorm:"size:20;index;not null"`
	PaymentType PaymentType `gorm:"size:20;not null"`
	CreatedAt   time.Time   `gorm:"index"`
	UpdatedAt   time.Time

	Products []OrderProduct `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderProduct: Sipariş ile ürün arasındaki bağlantı satırı
// (her üründen bir adet)
type OrderProduct struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"index;not null"`
	ProductID uint `gorm:"index;not null"`
	Product   Product
	UnitPrice float64 `gorm:"not null"` // sipariş anındaki fiyat
	CreatedAt time.Time
}
