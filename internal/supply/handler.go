package supply

import (
	"fmt"
	"time"

	"kafe-backend/internal/audit"
	"kafe-backend/internal/auth"
	"kafe-backend/internal/database"
	"kafe-backend/internal/models"
	"kafe-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type SupplyLineRequest struct {
	IngredientID uint `json:"ingredient_id"`
	Amount       uint `json:"amount"`
}

type CreateSupplyRequest struct {
	ShopID      uint                `json:"shop_id"`
	Date        string              `json:"date"` // "2025-12-09", boşsa bugün
	Description string              `json:"description"`
	Items       []SupplyLineRequest `json:"items"`
}

type SupplyLineResponse struct {
	IngredientID   uint   `json:"ingredient_id"`
	IngredientName string `json:"ingredient_name"`
	Amount         uint   `json:"amount"`
}

type SupplyResponse struct {
	ID          uint                 `json:"id"`
	ShopID      uint                 `json:"shop_id"`
	ShopName    string               `json:"shop_name"`
	Date        string               `json:"date"`
	Description string               `json:"description"`
	Items       []SupplyLineResponse `json:"items"`
	CreatedAt   string               `json:"created_at"`
}

func toSupplyResponse(s *models.Supply) SupplyResponse {
	items := make([]SupplyLineResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SupplyLineResponse{
			IngredientID:   it.IngredientID,
			IngredientName: it.Ingredient.Name,
			Amount:         it.Amount,
		})
	}
	return SupplyResponse{
		ID:          s.ID,
		ShopID:      s.ShopID,
		ShopName:    s.Shop.Name,
		Date:        s.Date.Format("2006-01-02"),
		Description: s.Description,
		Items:       items,
		CreatedAt:   s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/supplies
// Tedarik girişi (personel).
// Tedarik kaydını ve satırlarını oluşturur, her satırın miktarını stok
// satırına ekler; satır yoksa açılır. Tedarik stok azaltmaz, üst sınır yok.
func CreateSupplyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSupplyRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.ShopID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "shop_id zorunlu")
		}
		if len(body.Items) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "En az bir malzeme satırı gerekli")
		}
		for _, it := range body.Items {
			if it.IngredientID == 0 || it.Amount == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Her satırda ingredient_id ve pozitif amount zorunlu")
			}
		}

		var shop models.Shop
		if err := database.DB.First(&shop, body.ShopID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Dükkan bulunamadı (ID: %d)", body.ShopID))
		}

		date := time.Now()
		if body.Date != "" {
			d, err := time.Parse("2006-01-02", body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
			}
			date = d
		}

		// Malzemelerin varlığını önden doğrula
		ingredientIDs := make([]uint, 0, len(body.Items))
		for _, it := range body.Items {
			ingredientIDs = append(ingredientIDs, it.IngredientID)
		}
		var ingredientCount int64
		database.DB.Model(&models.Ingredient{}).Where("id IN ?", ingredientIDs).Count(&ingredientCount)
		if ingredientCount != int64(len(body.Items)) {
			return fiber.NewError(fiber.StatusBadRequest, "Tanımsız veya tekrarlı malzeme satırı var")
		}

		// Transaction başlat - kayıt ve stok artışı atomik
		tx := database.DB.Begin()
		if tx.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşlem başlatılamadı")
		}

		sup := models.Supply{
			Date:        date,
			Description: body.Description,
			ShopID:      body.ShopID,
		}
		if err := tx.Create(&sup).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Tedarik kaydı oluşturulamadı")
		}

		for _, it := range body.Items {
			line := models.SuppliedIngredient{
				SupplyID:     sup.ID,
				IngredientID: it.IngredientID,
				Amount:       it.Amount,
			}
			if err := tx.Create(&line).Error; err != nil {
				tx.Rollback()
				return fiber.NewError(fiber.StatusInternalServerError, "Tedarik satırı oluşturulamadı")
			}

			if err := storage.ApplyDelta(tx, body.ShopID, it.IngredientID, float64(it.Amount)); err != nil {
				tx.Rollback()
				return fiber.NewError(fiber.StatusInternalServerError, "Stok güncellenemedi")
			}
		}

		if err := tx.Commit().Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşlem tamamlanamadı")
		}

		userID, _, err := auth.CurrentUser(c)
		if err == nil {
			var user models.User
			if err := database.DB.First(&user, userID).Error; err == nil {
				_ = audit.WriteLog(audit.LogOptions{
					ShopID:      &sup.ShopID,
					UserID:      userID,
					UserName:    user.Name,
					EntityType:  "supply",
					EntityID:    sup.ID,
					Action:      models.AuditActionCreate,
					Description: fmt.Sprintf("Tedarik girişi: %s, %d satır", shop.Name, len(body.Items)),
					After:       sup,
				})
			}
		}

		var full models.Supply
		if err := database.DB.Preload("Shop").Preload("Items.Ingredient").First(&full, sup.ID).Error; err != nil {
			return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": sup.ID})
		}
		return c.Status(fiber.StatusCreated).JSON(toSupplyResponse(&full))
	}
}

// GET /api/supplies?shop_id=1&start_date=2025-12-01&end_date=2025-12-31
func ListSuppliesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Preload("Shop").Preload("Items.Ingredient")

		if sidStr := c.Query("shop_id"); sidStr != "" {
			var sid uint
			if _, err := fmt.Sscan(sidStr, &sid); err != nil || sid == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "shop_id geçersiz")
			}
			dbq = dbq.Where("shop_id = ?", sid)
		}

		if startStr := c.Query("start_date"); startStr != "" {
			d, err := time.Parse("2006-01-02", startStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "start_date formatı 'YYYY-MM-DD' olmalı")
			}
			dbq = dbq.Where("date >= ?", d)
		}
		if endStr := c.Query("end_date"); endStr != "" {
			d, err := time.Parse("2006-01-02", endStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "end_date formatı 'YYYY-MM-DD' olmalı")
			}
			dbq = dbq.Where("date <= ?", d)
		}

		var supplies []models.Supply
		if err := dbq.Order("date DESC").Find(&supplies).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tedarik listesi alınamadı")
		}

		resp := make([]SupplyResponse, 0, len(supplies))
		for i := range supplies {
			resp = append(resp, toSupplyResponse(&supplies[i]))
		}
		return c.JSON(resp)
	}
}
