package catalog

import (
	"fmt"

	"kafe-backend/internal/database"
	"kafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ShopRequest struct {
	Name        string          `json:"name"`
	OpenTime    string          `json:"open_time"`  // "08:00"
	CloseTime   string          `json:"close_time"` // "22:00"
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Description string          `json:"description"`
	CafeID      *uint           `json:"cafe_id"`
	Address     *AddressRequest `json:"address"`
}

// POST /api/admin/shops
// cafe_id verilmezse varsayılan (ilk) kafe bir kez çözülür ve kaydedilir;
// sonradan değişen bir bağ yoktur.
func CreateShopHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ShopRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Name == "" || body.Phone == "" || body.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, telefon ve email zorunlu")
		}
		if body.OpenTime == "" || body.CloseTime == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Açılış ve kapanış saati zorunlu")
		}

		var cafeID uint
		if body.CafeID != nil {
			var cafe models.Cafe
			if err := database.DB.First(&cafe, *body.CafeID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Kafe bulunamadı (ID: %d)", *body.CafeID))
			}
			cafeID = cafe.ID
		} else {
			var cafe models.Cafe
			if err := database.DB.Order("id ASC").First(&cafe).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Kayıtlı kafe yok, önce kafe oluştur")
			}
			cafeID = cafe.ID
		}

		shop := models.Shop{
			Name:        body.Name,
			OpenTime:    body.OpenTime,
			CloseTime:   body.CloseTime,
			Phone:       body.Phone,
			Email:       body.Email,
			Description: body.Description,
			CafeID:      cafeID,
		}

		if body.Address != nil {
			addr := models.Address{
				City:            body.Address.City,
				Street:          body.Address.Street,
				BuildingNumber:  body.Address.BuildingNumber,
				ApartmentNumber: body.Address.ApartmentNumber,
				PostalCode:      body.Address.PostalCode,
			}
			if err := database.DB.Create(&addr).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Adres oluşturulamadı")
			}
			shop.AddressID = &addr.ID
		}

		if err := database.DB.Create(&shop).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dükkan oluşturulamadı (isim/telefon/email benzersiz olmalı)")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": shop.ID, "name": shop.Name, "cafe_id": shop.CafeID})
	}
}

// GET /api/shops
// Herkese açık dükkan listesi
func ListShopsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var shops []models.Shop
		if err := database.DB.Preload("Address").Order("name ASC").Find(&shops).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dükkanlar alınamadı")
		}

		resp := make([]fiber.Map, 0, len(shops))
		for _, s := range shops {
			m := fiber.Map{
				"id":          s.ID,
				"name":        s.Name,
				"open_time":   s.OpenTime,
				"close_time":  s.CloseTime,
				"phone":       s.Phone,
				"email":       s.Email,
				"description": s.Description,
				"cafe_id":     s.CafeID,
			}
			if s.Address != nil {
				m["address"] = fiber.Map{
					"city":            s.Address.City,
					"street":          s.Address.Street,
					"building_number": s.Address.BuildingNumber,
					"postal_code":     s.Address.PostalCode,
				}
			}
			resp = append(resp, m)
		}
		return c.JSON(resp)
	}
}

// PUT /api/admin/shops/:id
func UpdateShopHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz dükkan ID")
		}

		var shop models.Shop
		if err := database.DB.First(&shop, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dükkan bulunamadı")
		}

		var body ShopRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Name != "" {
			shop.Name = body.Name
		}
		if body.OpenTime != "" {
			shop.OpenTime = body.OpenTime
		}
		if body.CloseTime != "" {
			shop.CloseTime = body.CloseTime
		}
		if body.Phone != "" {
			shop.Phone = body.Phone
		}
		if body.Email != "" {
			shop.Email = body.Email
		}
		if body.Description != "" {
			shop.Description = body.Description
		}

		if err := database.DB.Save(&shop).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dükkan güncellenemedi")
		}

		return c.JSON(fiber.Map{"id": shop.ID, "name": shop.Name})
	}
}

// DELETE /api/admin/shops/:id
func DeleteShopHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz dükkan ID")
		}

		var shop models.Shop
		if err := database.DB.First(&shop, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dükkan bulunamadı")
		}

		var orderCount int64
		database.DB.Model(&models.Order{}).Where("shop_id = ?", shop.ID).Count(&orderCount)
		if orderCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Siparişi olan dükkan silinemez")
		}

		if err := database.DB.Delete(&shop).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dükkan silinemedi")
		}

		return c.JSON(fiber.Map{"message": "Dükkan silindi"})
	}
}

type TableRequest struct {
	ShopID   uint `json:"shop_id"`
	Number   uint `json:"number"`
	MaxSeats uint `json:"max_seats"`
}

// POST /api/admin/tables
func CreateTableHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body TableRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.ShopID == 0 || body.Number == 0 || body.MaxSeats == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "shop_id, number ve max_seats zorunlu")
		}

		var shop models.Shop
		if err := database.DB.First(&shop, body.ShopID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Dükkan bulunamadı (ID: %d)", body.ShopID))
		}

		table := models.Table{
			ShopID:   body.ShopID,
			Number:   body.Number,
			MaxSeats: body.MaxSeats,
		}
		if err := database.DB.Create(&table).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Masa oluşturulamadı (dükkan içinde numara benzersiz olmalı)")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":        table.ID,
			"shop_id":   table.ShopID,
			"number":    table.Number,
			"max_seats": table.MaxSeats,
		})
	}
}

// GET /api/tables?shop_id=1
func ListTablesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Table{})

		if sidStr := c.Query("shop_id"); sidStr != "" {
			var sid uint
			if _, err := fmt.Sscan(sidStr, &sid); err != nil || sid == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "shop_id geçersiz")
			}
			dbq = dbq.Where("shop_id = ?", sid)
		}

		var tables []models.Table
		if err := dbq.Order("shop_id ASC, number ASC").Find(&tables).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Masalar alınamadı")
		}

		resp := make([]fiber.Map, 0, len(tables))
		for _, t := range tables {
			resp = append(resp, fiber.Map{
				"id":        t.ID,
				"shop_id":   t.ShopID,
				"number":    t.Number,
				"max_seats": t.MaxSeats,
			})
		}
		return c.JSON(resp)
	}
}
