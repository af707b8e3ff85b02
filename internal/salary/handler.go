package salary

import (
	"fmt"
	"time"

	"kafe-backend/internal/auth"
	"kafe-backend/internal/database"
	"kafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateSalaryRequest struct {
	UserID uint    `json:"user_id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"` // "2025-12-01", boşsa bugün
}

type SalaryResponse struct {
	ID       uint    `json:"id"`
	UserID   uint    `json:"user_id"`
	UserName string  `json:"user_name"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

// POST /api/admin/salaries
// Maaş ödemesi kaydı (admin)
func CreateSalaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSalaryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.UserID == 0 || body.Amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "user_id zorunlu, amount pozitif olmalı")
		}

		var user models.User
		if err := database.DB.First(&user, body.UserID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Personel bulunamadı")
		}
		if !user.Role.IsEmployee() {
			return fiber.NewError(fiber.StatusBadRequest, "Maaş sadece personele kaydedilebilir")
		}

		date := time.Now()
		if body.Date != "" {
			d, err := time.Parse("2006-01-02", body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
			}
			date = d
		}

		s := models.Salary{
			UserID: body.UserID,
			Amount: body.Amount,
			Date:   date,
		}
		if err := database.DB.Create(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Maaş kaydı oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(SalaryResponse{
			ID:       s.ID,
			UserID:   s.UserID,
			UserName: user.Name,
			Amount:   s.Amount,
			Date:     s.Date.Format("2006-01-02"),
		})
	}
}

// GET /api/salaries?user_id=&start_date=&end_date=
// Admin herkesi, personel kendi maaş geçmişini görür
func ListSalariesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		dbq := database.DB.Preload("User").Order("date DESC")

		if role.IsAdmin() {
			if uidStr := c.Query("user_id"); uidStr != "" {
				var uid uint
				if _, err := fmt.Sscan(uidStr, &uid); err == nil && uid > 0 {
					dbq = dbq.Where("user_id = ?", uid)
				}
			}
		} else {
			dbq = dbq.Where("user_id = ?", userID)
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

		var salaries []models.Salary
		if err := dbq.Find(&salaries).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Maaş kayıtları alınamadı")
		}

		resp := make([]SalaryResponse, 0, len(salaries))
		for _, s := range salaries {
			resp = append(resp, SalaryResponse{
				ID:       s.ID,
				UserID:   s.UserID,
				UserName: s.User.Name,
				Amount:   s.Amount,
				Date:     s.Date.Format("2006-01-02"),
			})
		}
		return c.JSON(resp)
	}
}
