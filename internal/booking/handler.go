package booking

import (
	"errors"
	"fmt"
	"time"

	"kafe-backend/internal/audit"
	"kafe-backend/internal/auth"
	"kafe-backend/internal/database"
	"kafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateTimeLayout = "2006-01-02 15:04"

type CreateBookingRequest struct {
	ShopID     uint   `json:"shop_id"`
	StartTime  string `json:"start_time"` // "2026-01-05 18:00"
	EndTime    string `json:"end_time"`
	GuestCount uint   `json:"guest_count"`
}

type BookingTableResponse struct {
	TableID  uint `json:"table_id"`
	Number   uint `json:"number"`
	MaxSeats uint `json:"max_seats"`
}

type BookingResponse struct {
	ID         uint                   `json:"id"`
	ShopID     uint                   `json:"shop_id"`
	UserID     uint                   `json:"user_id"`
	StartTime  string                 `json:"start_time"`
	EndTime    string                 `json:"end_time"`
	GuestCount uint                   `json:"guest_count"`
	Tables     []BookingTableResponse `json:"tables"`
	CreatedAt  string                 `json:"created_at"`
}

func toBookingResponse(b *models.Booking) BookingResponse {
	tables := make([]BookingTableResponse, 0, len(b.Tables))
	for _, bt := range b.Tables {
		tables = append(tables, BookingTableResponse{
			TableID:  bt.TableID,
			Number:   bt.Table.Number,
			MaxSeats: bt.Table.MaxSeats,
		})
	}
	return BookingResponse{
		ID:         b.ID,
		ShopID:     b.ShopID,
		UserID:     b.UserID,
		StartTime:  b.StartTime.Format(dateTimeLayout),
		EndTime:    b.EndTime.Format(dateTimeLayout),
		GuestCount: b.GuestCount,
		Tables:     tables,
		CreatedAt:  b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// POST /api/bookings
// Önerilen aralıkla kesişen rezervasyonlardaki masalar aday dışı bırakılır,
// kalanlardan küçükten büyüğe kapasite doldurulur. Masa seçimi ve kayıt
// tek transaction içinde yapılır.
func CreateBookingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBookingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.ShopID == 0 || body.GuestCount == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "shop_id ve guest_count zorunlu")
		}

		start, err := time.Parse(dateTimeLayout, body.StartTime)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "start_time formatı 'YYYY-MM-DD HH:MM' olmalı")
		}
		end, err := time.Parse(dateTimeLayout, body.EndTime)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "end_time formatı 'YYYY-MM-DD HH:MM' olmalı")
		}
		if !start.Before(end) {
			return fiber.NewError(fiber.StatusBadRequest, "start_time end_time'dan önce olmalı")
		}

		userID, _, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var shop models.Shop
		if err := database.DB.First(&shop, body.ShopID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Dükkan bulunamadı (ID: %d)", body.ShopID))
		}

		var created models.Booking
		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			// Aralıkla kesişen rezervasyonların masaları aday değil.
			// Kesişme testi: mevcut.start < önerilen.end && önerilen.start < mevcut.end
			busy := tx.Table("booking_tables bt").
				Select("bt.table_id").
				Joins("JOIN bookings b ON b.id = bt.booking_id").
				Where("b.shop_id = ? AND b.start_time < ? AND b.end_time > ?", body.ShopID, end, start)

			var candidates []models.Table
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("shop_id = ?", body.ShopID).
				Where("id NOT IN (?)", busy).
				Find(&candidates).Error; err != nil {
				return err
			}

			assigned, err := AssignTables(candidates, body.GuestCount)
			if err != nil {
				return err
			}

			created = models.Booking{
				StartTime:  start,
				EndTime:    end,
				GuestCount: body.GuestCount,
				UserID:     userID,
				ShopID:     body.ShopID,
			}
			if err := tx.Create(&created).Error; err != nil {
				return err
			}

			for _, t := range assigned {
				bt := models.BookingTable{BookingID: created.ID, TableID: t.ID}
				if err := tx.Create(&bt).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if txErr != nil {
			if errors.Is(txErr, ErrInsufficientCapacity) {
				return fiber.NewError(fiber.StatusBadRequest, "Bu saatler için yeterli boş masa yok")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Rezervasyon oluşturulamadı")
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				ShopID:      &created.ShopID,
				UserID:      userID,
				UserName:    user.Name,
				EntityType:  "booking",
				EntityID:    created.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Rezervasyon: %s, %d kişi", shop.Name, created.GuestCount),
				After:       created,
			})
		}

		var full models.Booking
		if err := database.DB.Preload("Tables.Table").First(&full, created.ID).Error; err != nil {
			return c.Status(fiber.StatusCreated).JSON(toBookingResponse(&created))
		}
		return c.Status(fiber.StatusCreated).JSON(toBookingResponse(&full))
	}
}

// GET /api/bookings
// Client kendi rezervasyonlarını, personel hepsini görür
func ListBookingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		dbq := database.DB.Preload("Tables.Table").Order("start_time DESC")
		if !role.IsEmployee() {
			dbq = dbq.Where("user_id = ?", userID)
		}

		var bookings []models.Booking
		if err := dbq.Find(&bookings).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rezervasyonlar alınamadı")
		}

		resp := make([]BookingResponse, 0, len(bookings))
		for i := range bookings {
			resp = append(resp, toBookingResponse(&bookings[i]))
		}
		return c.JSON(resp)
	}
}

// DELETE /api/bookings/:id
// İptal. Client sadece kendi rezervasyonunu silebilir.
func CancelBookingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz rezervasyon ID")
		}

		userID, role, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var b models.Booking
		if err := database.DB.First(&b, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Rezervasyon bulunamadı")
		}

		if !role.IsEmployee() && b.UserID != userID {
			return fiber.NewError(fiber.StatusForbidden, "Bu rezervasyon size ait değil")
		}

		if err := database.DB.Select("Tables").Delete(&b).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rezervasyon silinemedi")
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				ShopID:      &b.ShopID,
				UserID:      userID,
				UserName:    user.Name,
				EntityType:  "booking",
				EntityID:    b.ID,
				Action:      models.AuditActionDelete,
				Description: "Rezervasyon iptal edildi",
				Before:      b,
			})
		}

		return c.JSON(fiber.Map{"message": "Rezervasyon iptal edildi"})
	}
}
