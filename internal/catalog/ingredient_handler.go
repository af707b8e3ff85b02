package catalog

import (
	"kafe-backend/internal/database"
	"kafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UnitTypeRequest struct {
	Name string `json:"name"`
}

// POST /api/admin/unit-types
func CreateUnitTypeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UnitTypeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim zorunlu")
		}

		ut := models.UnitType{Name: body.Name}
		if err := database.DB.Create(&ut).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Birim tipi oluşturulamadı (isim benzersiz olmalı)")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": ut.ID, "name": ut.Name})
	}
}

// GET /api/unit-types
func ListUnitTypesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var unitTypes []models.UnitType
		if err := database.DB.Order("name ASC").Find(&unitTypes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Birim tipleri alınamadı")
		}

		resp := make([]fiber.Map, 0, len(unitTypes))
		for _, ut := range unitTypes {
			resp = append(resp, fiber.Map{"id": ut.ID, "name": ut.Name})
		}
		return c.JSON(resp)
	}
}

type IngredientRequest struct {
	Name       string `json:"name"`
	UnitTypeID *uint  `json:"unit_type_id"`
}

// POST /api/admin/ingredients
func CreateIngredientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body IngredientRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim zorunlu")
		}

		if body.UnitTypeID != nil {
			var ut models.UnitType
			if err := database.DB.First(&ut, *body.UnitTypeID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Birim tipi bulunamadı")
			}
		}

		ing := models.Ingredient{Name: body.Name, UnitTypeID: body.UnitTypeID}
		if err := database.DB.Create(&ing).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Malzeme oluşturulamadı (isim benzersiz olmalı)")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": ing.ID, "name": ing.Name})
	}
}

// GET /api/ingredients
func ListIngredientsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var ingredients []models.Ingredient
		if err := database.DB.Preload("UnitType").Order("name ASC").Find(&ingredients).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Malzemeler alınamadı")
		}

		resp := make([]fiber.Map, 0, len(ingredients))
		for _, ing := range ingredients {
			unit := ""
			if ing.UnitType != nil {
				unit = ing.UnitType.Name
			}
			resp = append(resp, fiber.Map{"id": ing.ID, "name": ing.Name, "unit": unit})
		}
		return c.JSON(resp)
	}
}

// DELETE /api/admin/ingredients/:id
func DeleteIngredientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz malzeme ID")
		}

		var ing models.Ingredient
		if err := database.DB.First(&ing, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Malzeme bulunamadı")
		}

		// Reçetede veya stokta kullanılan malzeme silinemez
		var recipeCount int64
		database.DB.Model(&models.ProductIngredient{}).Where("ingredient_id = ?", ing.ID).Count(&recipeCount)
		if recipeCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Reçetede kullanılan malzeme silinemez")
		}
		var storageCount int64
		database.DB.Model(&models.StorageState{}).Where("ingredient_id = ?", ing.ID).Count(&storageCount)
		if storageCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Stok kaydı olan malzeme silinemez")
		}

		if err := database.DB.Delete(&ing).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Malzeme silinemedi")
		}

		return c.JSON(fiber.Map{"message": "Malzeme silindi"})
	}
}
