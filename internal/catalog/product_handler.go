package catalog

import (
	"kafe-backend/internal/database"
	"kafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type RecipeLineRequest struct {
	IngredientID uint    `json:"ingredient_id"`
	Amount       float64 `json:"amount"`
}

type ProductRequest struct {
	Name        string              `json:"name"`
	Price       float64             `json:"price"`
	Description string              `json:"description"`
	Recipe      []RecipeLineRequest `json:"recipe"`
}

type RecipeLineResponse struct {
	IngredientID   uint    `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Amount         float64 `json:"amount"`
	Unit           string  `json:"unit"`
}

type ProductResponse struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Price       float64              `json:"price"`
	Description string               `json:"description"`
	Recipe      []RecipeLineResponse `json:"recipe"`
}

func toProductResponse(p *models.Product) ProductResponse {
	recipe := make([]RecipeLineResponse, 0, len(p.Recipe))
	for _, line := range p.Recipe {
		unit := ""
		if line.Ingredient.UnitType != nil {
			unit = line.Ingredient.UnitType.Name
		}
		recipe = append(recipe, RecipeLineResponse{
			IngredientID:   line.IngredientID,
			IngredientName: line.Ingredient.Name,
			Amount:         line.Amount,
			Unit:           unit,
		})
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Recipe:      recipe,
	}
}

func validateRecipe(recipe []RecipeLineRequest) error {
	seen := make(map[uint]bool, len(recipe))
	for _, line := range recipe {
		if line.IngredientID == 0 || line.Amount < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Her reçete satırında ingredient_id ve negatif olmayan amount zorunlu")
		}
		if seen[line.IngredientID] {
			return fiber.NewError(fiber.StatusBadRequest, "Reçetede tekrarlı malzeme var")
		}
		seen[line.IngredientID] = true

		var ing models.Ingredient
		if err := database.DB.First(&ing, line.IngredientID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Reçetedeki malzeme bulunamadı")
		}
	}
	return nil
}

// POST /api/admin/products
// Ürün ve reçetesi birlikte oluşturulur
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Name == "" || body.Price <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "İsim zorunlu, fiyat pozitif olmalı")
		}
		if err := validateRecipe(body.Recipe); err != nil {
			return err
		}

		tx := database.DB.Begin()
		if tx.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşlem başlatılamadı")
		}

		product := models.Product{
			Name:        body.Name,
			Price:       body.Price,
			Description: body.Description,
		}
		if err := tx.Create(&product).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusBadRequest, "Ürün oluşturulamadı (isim benzersiz olmalı)")
		}

		for _, line := range body.Recipe {
			pi := models.ProductIngredient{
				ProductID:    product.ID,
				IngredientID: line.IngredientID,
				Amount:       line.Amount,
			}
			if err := tx.Create(&pi).Error; err != nil {
				tx.Rollback()
				return fiber.NewError(fiber.StatusInternalServerError, "Reçete satırı oluşturulamadı")
			}
		}

		if err := tx.Commit().Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşlem tamamlanamadı")
		}

		var full models.Product
		if err := database.DB.Preload("Recipe.Ingredient.UnitType").First(&full, product.ID).Error; err != nil {
			return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": product.ID})
		}
		return c.Status(fiber.StatusCreated).JSON(toProductResponse(&full))
	}
}

// GET /api/products
// Ürünler reçeteleriyle birlikte
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Preload("Recipe.Ingredient.UnitType").
			Order("name ASC").
			Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler alınamadı")
		}

		resp := make([]ProductResponse, 0, len(products))
		for i := range products {
			resp = append(resp, toProductResponse(&products[i]))
		}
		return c.JSON(resp)
	}
}

// PUT /api/admin/products/:id
// Reçete komple değiştirilir
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün ID")
		}

		var product models.Product
		if err := database.DB.First(&product, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validateRecipe(body.Recipe); err != nil {
			return err
		}

		if body.Name != "" {
			product.Name = body.Name
		}
		if body.Price > 0 {
			product.Price = body.Price
		}
		if body.Description != "" {
			product.Description = body.Description
		}

		tx := database.DB.Begin()
		if tx.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşlem başlatılamadı")
		}

		if err := tx.Save(&product).Error; err != nil {
			tx.Rollback()
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}

		if body.Recipe != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductIngredient{}).Error; err != nil {
				tx.Rollback()
				return fiber.NewError(fiber.StatusInternalServerError, "Eski reçete silinemedi")
			}
			for _, line := range body.Recipe {
				pi := models.ProductIngredient{
					ProductID:    product.ID,
					IngredientID: line.IngredientID,
					Amount:       line.Amount,
				}
				if err := tx.Create(&pi).Error; err != nil {
					tx.Rollback()
					return fiber.NewError(fiber.StatusInternalServerError, "Reçete satırı oluşturulamadı")
				}
			}
		}

		if err := tx.Commit().Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşlem tamamlanamadı")
		}

		var full models.Product
		if err := database.DB.Preload("Recipe.Ingredient.UnitType").First(&full, product.ID).Error; err != nil {
			return c.JSON(fiber.Map{"id": product.ID})
		}
		return c.JSON(toProductResponse(&full))
	}
}

// DELETE /api/admin/products/:id
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün ID")
		}

		var product models.Product
		if err := database.DB.First(&product, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var orderCount int64
		database.DB.Model(&models.OrderProduct{}).Where("product_id = ?", product.ID).Count(&orderCount)
		if orderCount > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Siparişlerde geçen ürün silinemez")
		}

		if err := database.DB.Select("Recipe").Delete(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}

		return c.JSON(fiber.Map{"message": "Ürün silindi"})
	}
}
