package storage

import (
	"errors"
	"fmt"
	"sort"

	"kafe-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InsufficientStockError: Sipariş için stok yetmediğinde döner,
// yetersiz kalan ilk malzemenin adını taşır.
type InsufficientStockError struct {
	IngredientName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Bu ürünler için yeterli malzeme yok (%s)", e.IngredientName)
}

// Requirements: Sipariş edilen ürünlerin reçetelerinden malzeme başına
// toplam ihtiyacı çıkarır. Her üründen bir adet hazırlanır; aynı malzeme
// birden çok üründe geçiyorsa miktarlar toplanır.
func Requirements(products []models.Product) map[uint]float64 {
	required := make(map[uint]float64)
	for _, p := range products {
		for _, line := range p.Recipe {
			required[line.IngredientID] += line.Amount
		}
	}
	return required
}

// CheckSufficiency: Her malzeme için mevcut - gereken >= 0 olmalı.
// Satırı olmayan malzemenin stoğu sıfır sayılır. Deterministik sonuç için
// malzemeler id sırasıyla denetlenir; ilk yetersiz malzemenin id'si döner.
func CheckSufficiency(levels map[uint]float64, required map[uint]float64) (uint, bool) {
	ids := make([]uint, 0, len(required))
	for id := range required {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if levels[id]-required[id] < 0 {
			return id, false
		}
	}
	return 0, true
}

// LockLevel: (shop, ingredient) stok satırını FOR UPDATE ile kilitleyip
// mevcut miktarı okur. Satır yoksa found=false döner; eşzamanlı siparişler
// aynı satırı beklesin diye kilit transaction boyunca tutulur.
func LockLevel(tx *gorm.DB, shopID, ingredientID uint) (amount float64, found bool, err error) {
	var state models.StorageState
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("shop_id = ? AND ingredient_id = ?", shopID, ingredientID).
		First(&state).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return state.Amount, true, nil
}

// resolveDelta: Satırın durumuna ve farkın işaretine göre yapılacak işlemi
// seçer. Satır yokken negatif fark hatadır; pozitif fark yeni satır açar,
// mevcut satırda fark miktara eklenir.
func resolveDelta(current float64, found bool, delta float64) (next float64, create bool, err error) {
	if !found {
		if delta < 0 {
			return 0, false, errors.New("stok satırı yok, negatif fark uygulanamaz")
		}
		return delta, true, nil
	}
	return current + delta, false, nil
}

// ApplyDelta: Stok satırına pozitif (tedarik) veya negatif (sipariş) fark
// uygular. Satır yoksa ve fark pozitifse satır açılır; negatif fark için
// satırın önceden doğrulanmış olması gerekir.
func ApplyDelta(tx *gorm.DB, shopID, ingredientID uint, delta float64) error {
	var state models.StorageState
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("shop_id = ? AND ingredient_id = ?", shopID, ingredientID).
		First(&state).Error
	found := true
	if errors.Is(err, gorm.ErrRecordNotFound) {
		found = false
	} else if err != nil {
		return err
	}

	next, create, err := resolveDelta(state.Amount, found, delta)
	if err != nil {
		return fmt.Errorf("%w (shop=%d, ingredient=%d)", err, shopID, ingredientID)
	}

	if create {
		state = models.StorageState{
			ShopID:       shopID,
			IngredientID: ingredientID,
			Amount:       next,
		}
		return tx.Create(&state).Error
	}

	return tx.Model(&state).Update("amount", next).Error
}
