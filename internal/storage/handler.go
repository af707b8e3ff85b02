package storage

import (
	"fmt"

	"kafe-backend/internal/database"
	"kafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type StorageStateResponse struct {
	ID             uint    `json:"id"`
	ShopID         uint    `json:"shop_id"`
	ShopName       string  `json:"shop_name"`
	IngredientID   uint    `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Unit           string  `json:"unit"`
	Amount         float64 `json:"amount"`
	UpdatedAt      string  `json:"updated_at"`
}

// GET /api/storage?shop_id=1
// Dükkan bazlı stok durumu (personel)
func ListStorageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.StorageState{}).
			Preload("Shop").
			Preload("Ingredient").
			Preload("Ingredient.UnitType")

		if sidStr := c.Query("shop_id"); sidStr != "" {
			var sid uint
			if _, err := fmt.Sscan(sidStr, &sid); err != nil || sid == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "shop_id geçersiz")
			}
			dbq = dbq.Where("shop_id = ?", sid)
		}

		var states []models.StorageState
		if err := dbq.Order("shop_id ASC, ingredient_id ASC").Find(&states).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok durumu alınamadı")
		}

		resp := make([]StorageStateResponse, 0, len(states))
		for _, s := range states {
			unit := ""
			if s.Ingredient.UnitType != nil {
				unit = s.Ingredient.UnitType.Name
			}
			resp = append(resp, StorageStateResponse{
				ID:             s.ID,
				ShopID:         s.ShopID,
				ShopName:       s.Shop.Name,
				IngredientID:   s.IngredientID,
				IngredientName: s.Ingredient.Name,
				Unit:           unit,
				Amount:         s.Amount,
				UpdatedAt:      s.UpdatedAt.Format("2006-01-02 15:04:05"),
			})
		}

		return c.JSON(resp)
	}
}
