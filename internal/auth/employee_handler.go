package auth

import (
	"strings"

	"kafe-backend/internal/database"
	"kafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type CreateEmployeeRequest struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Password      string          `json:"password"`
	Role          models.UserRole `json:"role"` // admin / barista / cashier
	AccountNumber string          `json:"account_number"`
	CafeID        *uint           `json:"cafe_id"`
}

// POST /api/auth/register-admin
// İlk admin kaydı (bootstrap).
// Sistemde zaten admin varsa reddedilir.
func RegisterFirstAdminHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Email == "" || body.Password == "" || body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email ve şifre zorunlu")
		}

		var count int64
		database.DB.Model(&models.User{}).
			Where("role = ?", models.RoleAdmin).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusForbidden, "Zaten bir admin var")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user := models.User{
			Name:          body.Name,
			Email:         body.Email,
			Phone:         body.Phone,
			PasswordHash:  string(hash),
			Role:          models.RoleAdmin,
			AccountNumber: body.AccountNumber,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kullanıcı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		})
	}
}

// POST /api/admin/employees
// Admin yeni personel açar
func CreateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Email == "" || body.Password == "" || body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email ve şifre zorunlu")
		}
		if !body.Role.IsEmployee() {
			return fiber.NewError(fiber.StatusBadRequest, "Rol admin, barista veya cashier olmalı")
		}

		// Kafe verilmediyse varsayılan (ilk) kafeye bağla
		cafeID := body.CafeID
		if cafeID == nil {
			var cafe models.Cafe
			if err := database.DB.Order("id ASC").First(&cafe).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Kayıtlı kafe yok, önce kafe oluştur")
			}
			cafeID = &cafe.ID
		}

		var count int64
		database.DB.Model(&models.User{}).Where("email = ?", body.Email).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bu email zaten kullanımda")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user := models.User{
			Name:          body.Name,
			Email:         body.Email,
			Phone:         body.Phone,
			PasswordHash:  string(hash),
			Role:          body.Role,
			AccountNumber: body.AccountNumber,
			CafeID:        cafeID,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Personel oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":      user.ID,
			"email":   user.Email,
			"role":    user.Role,
			"cafe_id": user.CafeID,
		})
	}
}

// GET /api/admin/employees
func ListEmployeesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.
			Where("role IN ?", []models.UserRole{models.RoleAdmin, models.RoleBarista, models.RoleCashier}).
			Order("name ASC").
			Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Personel listesi alınamadı")
		}

		resp := make([]fiber.Map, 0, len(users))
		for _, u := range users {
			resp = append(resp, fiber.Map{
				"id":             u.ID,
				"name":           u.Name,
				"email":          u.Email,
				"phone":          u.Phone,
				"role":           u.Role,
				"account_number": u.AccountNumber,
				"cafe_id":        u.CafeID,
			})
		}
		return c.JSON(resp)
	}
}
