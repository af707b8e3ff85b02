package catalog

import (
	"errors"
	"time"

	"kafe-backend/internal/database"
	"kafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MenuRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"` // "2026-01-01"
	EndDate     string `json:"end_date"`
	CafeID      *uint  `json:"cafe_id"`
	ProductIDs  []uint `json:"product_ids"`
}

type MenuResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	CafeID      uint              `json:"cafe_id"`
	Products    []ProductResponse `json:"products"`
}

func toMenuResponse(m *models.Menu) MenuResponse {
	products := make([]ProductResponse, 0, len(m.Products))
	for i := range m.Products {
		products = append(products, toProductResponse(&m.Products[i].Product))
	}
	return MenuResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		StartDate:   m.StartDate.Format("2006-01-02"),
		EndDate:     m.EndDate.Format("2006-01-02"),
		CafeID:      m.CafeID,
		Products:    products,
	}
}

// POST /api/admin/menus
func CreateMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body MenuRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim zorunlu")
		}

		start, err := time.Parse("2006-01-02", body.StartDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "start_date formatı 'YYYY-MM-DD' olmalı")
		}
		end, err := time.Parse("2006-01-02", body.EndDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "end_date formatı 'YYYY-MM-DD' olmalı")
		}
		if end.Before(start) {
			return fiber.NewError(fiber.StatusBadRequest, "end_date start_date'ten önce olamaz")
		}

		var cafeID uint
		if body.CafeID != nil {
			var cafe models.Cafe
			if err := database.DB.First(&cafe, *body.CafeID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Kafe bulunamadı")
			}
			cafeID = cafe.ID
		} else {
			var cafe models.Cafe
			if err := database.DB.Order("id ASC").First(&cafe).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Kayıtlı kafe yok, önce kafe oluştur")
			}
			cafeID = cafe.ID
		}

		if len(body.ProductIDs) > 0 {
			var count int64
			database.DB.Model(&models.Product{}).Where("id IN ?", body.ProductIDs).Count(&count)
			if count != int64(len(body.ProductIDs)) {
				return fiber.NewError(fiber.StatusBadRequest, "Tanımsız veya tekrarlı ürün var")
			}
		}

		tx := database.DB.Begin()
		if tx.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşlem başlatılamadı")
		}

		menu := models.Menu{
			Name:        body.Name,
			Description: body.Description,
			StartDate:   start,
			EndDate:     end,
			CafeID:      cafeID,
		}
		if err := tx.Create(&menu).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Menü oluşturulamadı")
		}

		for _, pid := range body.ProductIDs {
			mp := models.MenuProduct{MenuID: menu.ID, ProductID: pid}
			if err := tx.Create(&mp).Error; err != nil {
				tx.Rollback()
				return fiber.NewError(fiber.StatusInternalServerError, "Menü ürünü eklenemedi")
			}
		}

		if err := tx.Commit().Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşlem tamamlanamadı")
		}

		var full models.Menu
		if err := database.DB.Preload("Products.Product.Recipe.Ingredient.UnitType").First(&full, menu.ID).Error; err != nil {
			return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": menu.ID})
		}
		return c.Status(fiber.StatusCreated).JSON(toMenuResponse(&full))
	}
}

// GET /api/menus
func ListMenusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var menus []models.Menu
		if err := database.DB.Preload("Products.Product.Recipe.Ingredient.UnitType").
			Order("start_date DESC, end_date DESC").
			Find(&menus).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menüler alınamadı")
		}

		resp := make([]MenuResponse, 0, len(menus))
		for i := range menus {
			resp = append(resp, toMenuResponse(&menus[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/menu
// Herkese açık güncel menü
func CurrentMenuHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		today := time.Now()

		var menu models.Menu
		err := database.DB.Preload("Products.Product.Recipe.Ingredient.UnitType").
			Where("start_date <= ? AND end_date >= ?", today, today).
			Order("id DESC").
			First(&menu).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Şu an geçerli bir menü yok")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Menü alınamadı")
		}

		return c.JSON(toMenuResponse(&menu))
	}
}
