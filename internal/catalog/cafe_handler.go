package catalog

import (
	"kafe-backend/internal/database"
	"kafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AddressRequest struct {
	City            string `json:"city"`
	Street          string `json:"street"`
	BuildingNumber  uint   `json:"building_number"`
	ApartmentNumber *uint  `json:"apartment_number"`
	PostalCode      string `json:"postal_code"`
}

type CafeRequest struct {
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Description string          `json:"description"`
	Address     *AddressRequest `json:"address"`
}

// POST /api/admin/cafes
func CreateCafeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CafeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Name == "" || body.Phone == "" || body.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, telefon ve email zorunlu")
		}

		cafe := models.Cafe{
			Name:        body.Name,
			Phone:       body.Phone,
			Email:       body.Email,
			Description: body.Description,
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
			cafe.AddressID = &addr.ID
		}

		if err := database.DB.Create(&cafe).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Kafe oluşturulamadı (isim/telefon/email benzersiz olmalı)")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": cafe.ID, "name": cafe.Name})
	}
}

// GET /api/cafes
// Herkese açık kafe bilgisi
func ListCafesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cafes []models.Cafe
		if err := database.DB.Preload("Address").Order("id ASC").Find(&cafes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kafeler alınamadı")
		}

		resp := make([]fiber.Map, 0, len(cafes))
		for _, cf := range cafes {
			m := fiber.Map{
				"id":          cf.ID,
				"name":        cf.Name,
				"phone":       cf.Phone,
				"email":       cf.Email,
				"description": cf.Description,
			}
			if cf.Address != nil {
				m["address"] = fiber.Map{
					"city":             cf.Address.City,
					"street":           cf.Address.Street,
					"building_number":  cf.Address.BuildingNumber,
					"apartment_number": cf.Address.ApartmentNumber,
					"postal_code":      cf.Address.PostalCode,
				}
			}
			resp = append(resp, m)
		}
		return c.JSON(resp)
	}
}

// PUT /api/admin/cafes/:id
func UpdateCafeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz kafe ID")
		}

		var cafe models.Cafe
		if err := database.DB.First(&cafe, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Kafe bulunamadı")
		}

		var body CafeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Name != "" {
			cafe.Name = body.Name
		}
		if body.Phone != "" {
			cafe.Phone = body.Phone
		}
		if body.Email != "" {
			cafe.Email = body.Email
		}
		if body.Description != "" {
			cafe.Description = body.Description
		}

		if err := database.DB.Save(&cafe).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kafe güncellenemedi")
		}

		return c.JSON(fiber.Map{"id": cafe.ID, "name": cafe.Name})
	}
}
