package orders

import (
	"errors"
	"sort"
	"time"

	"kafe-backend/internal/models"
	"kafe-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmptyOrder       = errors.New("sipariş en az bir ürün içermeli")
	ErrNoCurrentMenu    = errors.New("şu an geçerli bir menü yok")
	ErrProductNotOnMenu = errors.New("seçilen ürünlerden bazıları güncel menüde değil")
	ErrShopNotFound     = errors.New("dükkan bulunamadı")
)

type CreateOrderInput struct {
	ShopID      uint
	ProductIDs  []uint
	PaymentType models.PaymentType

	// Kanal: online siparişte ClientID, kasa siparişinde EmployeeID dolu
	ClientID   *uint
	EmployeeID *uint
}

// orderAmount: Sipariş tutarı, seçilen farklı ürünlerin birim fiyat toplamı.
// Her üründen bir adet desteklenir.
func orderAmount(products []models.Product) float64 {
	total := 0.0
	for _, p := range products {
		total += p.Price
	}
	return total
}

// dedupe: Ürün listesini sıralı ve tekrarsız hale getirir
func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Create: Siparişi tek transaction içinde doğrular ve uygular.
//
// Reçetelerden malzeme başına toplam ihtiyaç çıkarılır, ilgili stok
// satırları FOR UPDATE ile kilitlenir ve HER malzeme için kalan miktarın
// negatif olmaması şartı aranır; satırı olmayan malzeme stoksuz sayılır.
// Tüm denetimler geçmeden hiçbir yazma yapılmaz, reddedilen siparişten
// geriye kayıt kalmaz.
func Create(db *gorm.DB, in CreateOrderInput) (*models.Order, error) {
	productIDs := dedupe(in.ProductIDs)
	if len(productIDs) == 0 {
		return nil, ErrEmptyOrder
	}

	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var shop models.Shop
		if err := tx.First(&shop, in.ShopID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShopNotFound
			}
			return err
		}

		// Güncel menü ve ürünlerin menü üyeliği
		today := time.Now()
		var menu models.Menu
		err := tx.Where("start_date <= ? AND end_date >= ?", today, today).
			Order("id DESC").
			First(&menu).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoCurrentMenu
		}
		if err != nil {
			return err
		}

		var onMenu int64
		if err := tx.Model(&models.MenuProduct{}).
			Where("menu_id = ? AND product_id IN ?", menu.ID, productIDs).
			Count(&onMenu).Error; err != nil {
			return err
		}
		if onMenu != int64(len(productIDs)) {
			return ErrProductNotOnMenu
		}

		var products []models.Product
		if err := tx.Preload("Recipe").
			Where("id IN ?", productIDs).
			Find(&products).Error; err != nil {
			return err
		}
		if len(products) != len(productIDs) {
			return ErrProductNotOnMenu
		}

		// Malzeme başına toplam ihtiyaç ve kilitli stok okuması
		required := storage.Requirements(products)
		ingredientIDs := make([]uint, 0, len(required))
		for id := range required {
			ingredientIDs = append(ingredientIDs, id)
		}
		sort.Slice(ingredientIDs, func(i, j int) bool { return ingredientIDs[i] < ingredientIDs[j] })

		levels := make(map[uint]float64, len(required))
		for _, ingID := range ingredientIDs {
			amount, found, err := storage.LockLevel(tx, in.ShopID, ingID)
			if err != nil {
				return err
			}
			if found {
				levels[ingID] = amount
			}
		}

		if ingID, ok := storage.CheckSufficiency(levels, required); !ok {
			var ing models.Ingredient
			if err := tx.First(&ing, ingID).Error; err != nil {
				return err
			}
			return &storage.InsufficientStockError{IngredientName: ing.Name}
		}

		status := models.OrderStatusPending
		if in.EmployeeID != nil {
			// Kasada alınan sipariş direkt üstlenilmiş sayılır
			status = models.OrderStatusAccepted
		}

		order = models.Order{
			Number:      uuid.NewString(),
			Amount:      orderAmount(products),
			ClientID:    in.ClientID,
			EmployeeID:  in.EmployeeID,
			ShopID:      in.ShopID,
			Status:      status,
			PaymentType: in.PaymentType,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, p := range products {
			op := models.OrderProduct{
				OrderID:   order.ID,
				ProductID: p.ID,
				UnitPrice: p.Price,
			}
			if err := tx.Create(&op).Error; err != nil {
				return err
			}
		}

		// Tüm denetimler geçti, stok düşümü
		for _, ingID := range ingredientIDs {
			if err := storage.ApplyDelta(tx, in.ShopID, ingID, -required[ingID]); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}
