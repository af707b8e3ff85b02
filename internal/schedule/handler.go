package schedule

import (
	"fmt"
	"time"

	"kafe-backend/internal/audit"
	"kafe-backend/internal/auth"
	"kafe-backend/internal/database"
	"kafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const dateTimeLayout = "2006-01-02 15:04"

type CreateScheduleRequest struct {
	ShopID    uint   `json:"shop_id"`
	StartTime string `json:"start_time"` // "2026-01-05 09:00"
	EndTime   string `json:"end_time"`
	UserID    *uint  `json:"user_id"` // sadece admin başkası adına açabilir
}

type ScheduleResponse struct {
	ID          uint    `json:"id"`
	ShopID      uint    `json:"shop_id"`
	ShopName    string  `json:"shop_name"`
	UserID      uint    `json:"user_id"`
	UserName    string  `json:"user_name"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	ApproveDate *string `json:"approve_date"`
}

func toScheduleResponse(s *models.Schedule) ScheduleResponse {
	var approve *string
	if s.ApproveDate != nil {
		v := s.ApproveDate.Format("2006-01-02")
		approve = &v
	}
	return ScheduleResponse{
		ID:          s.ID,
		ShopID:      s.ShopID,
		ShopName:    s.Shop.Name,
		UserID:      s.UserID,
		UserName:    s.User.Name,
		StartTime:   s.StartTime.Format(dateTimeLayout),
		EndTime:     s.EndTime.Format(dateTimeLayout),
		ApproveDate: approve,
	}
}

// POST /api/schedules
// Vardiya talebi (personel).
// Aynı personelin kesişen vardiyası varsa reddedilir. Personelin kendi
// açtığı vardiya onay bekler; admin'in açtığı (kendisi veya user_id ile
// başkası için) oluşturma anında onaylanır.
func CreateScheduleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateScheduleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.ShopID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "shop_id zorunlu")
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

		actorID, role, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		// Vardiya sahibi
		targetID := actorID
		if body.UserID != nil && *body.UserID != actorID {
			if !role.IsAdmin() {
				return fiber.NewError(fiber.StatusForbidden, "Başkası adına vardiya sadece admin açabilir")
			}
			var target models.User
			if err := database.DB.First(&target, *body.UserID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Personel bulunamadı")
			}
			if !target.Role.IsEmployee() {
				return fiber.NewError(fiber.StatusBadRequest, "Vardiya sadece personele açılabilir")
			}
			targetID = *body.UserID
		}

		var shop models.Shop
		if err := database.DB.First(&shop, body.ShopID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Dükkan bulunamadı (ID: %d)", body.ShopID))
		}

		conflict, err := hasConflict(database.DB, targetID, start, end)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Vardiya kontrolü yapılamadı")
		}
		if conflict {
			if targetID == actorID {
				return fiber.NewError(fiber.StatusBadRequest, "Vardiya çakışması var")
			}
			return fiber.NewError(fiber.StatusBadRequest, "Personel bu saatlerde dolu")
		}

		sch := models.Schedule{
			StartTime: start,
			EndTime:   end,
			ShopID:    body.ShopID,
			UserID:    targetID,
		}
		// Admin'in açtığı vardiya direkt onaylı
		if role.IsAdmin() {
			now := time.Now()
			sch.ApproveDate = &now
		}

		if err := database.DB.Create(&sch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Vardiya oluşturulamadı")
		}

		var actor models.User
		if err := database.DB.First(&actor, actorID).Error; err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				ShopID:      &sch.ShopID,
				UserID:      actorID,
				UserName:    actor.Name,
				EntityType:  "schedule",
				EntityID:    sch.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Vardiya: %s - %s", body.StartTime, body.EndTime),
				After:       sch,
			})
		}

		var full models.Schedule
		if err := database.DB.Preload("Shop").Preload("User").First(&full, sch.ID).Error; err != nil {
			return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": sch.ID})
		}
		return c.Status(fiber.StatusCreated).JSON(toScheduleResponse(&full))
	}
}

// GET /api/schedules?shop_id=&user_id=&start_date=&end_date=
// Admin tüm vardiyaları, diğer personel sadece kendi onaylı vardiyalarını görür
func ListSchedulesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		dbq := database.DB.Preload("Shop").Preload("User").Order("start_time DESC")

		if role.IsAdmin() {
			if sidStr := c.Query("shop_id"); sidStr != "" {
				var sid uint
				if _, err := fmt.Sscan(sidStr, &sid); err == nil && sid > 0 {
					dbq = dbq.Where("shop_id = ?", sid)
				}
			}
			if uidStr := c.Query("user_id"); uidStr != "" {
				var uid uint
				if _, err := fmt.Sscan(uidStr, &uid); err == nil && uid > 0 {
					dbq = dbq.Where("user_id = ?", uid)
				}
			}
		} else {
			dbq = dbq.Where("user_id = ? AND approve_date IS NOT NULL", userID)
		}

		if startStr := c.Query("start_date"); startStr != "" {
			d, err := time.Parse("2006-01-02", startStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "start_date formatı 'YYYY-MM-DD' olmalı")
			}
			dbq = dbq.Where("start_time >= ?", d)
		}
		if endStr := c.Query("end_date"); endStr != "" {
			d, err := time.Parse("2006-01-02", endStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "end_date formatı 'YYYY-MM-DD' olmalı")
			}
			dbq = dbq.Where("end_time < ?", d.AddDate(0, 0, 1))
		}

		var schedules []models.Schedule
		if err := dbq.Find(&schedules).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Vardiyalar alınamadı")
		}

		resp := make([]ScheduleResponse, 0, len(schedules))
		for i := range schedules {
			resp = append(resp, toScheduleResponse(&schedules[i]))
		}
		return c.JSON(resp)
	}
}

// POST /api/schedules/:id/approve
// Admin onayı
func ApproveScheduleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz vardiya ID")
		}

		var sch models.Schedule
		if err := database.DB.First(&sch, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Vardiya bulunamadı")
		}

		if sch.ApproveDate != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Vardiya zaten onaylı")
		}

		before := sch
		now := time.Now()
		sch.ApproveDate = &now
		if err := database.DB.Save(&sch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Vardiya güncellenemedi")
		}

		actorID, _, err := auth.CurrentUser(c)
		if err == nil {
			var actor models.User
			if err := database.DB.First(&actor, actorID).Error; err == nil {
				_ = audit.WriteLog(audit.LogOptions{
					ShopID:      &sch.ShopID,
					UserID:      actorID,
					UserName:    actor.Name,
					EntityType:  "schedule",
					EntityID:    sch.ID,
					Action:      models.AuditActionApprove,
					Description: "Vardiya onaylandı",
					Before:      before,
					After:       sch,
				})
			}
		}

		var full models.Schedule
		if err := database.DB.Preload("Shop").Preload("User").First(&full, sch.ID).Error; err != nil {
			return c.JSON(fiber.Map{"id": sch.ID})
		}
		return c.JSON(toScheduleResponse(&full))
	}
}

// DELETE /api/schedules/:id
// İptal. Personel kendi vardiyasını, admin her vardiyayı silebilir.
func CancelScheduleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz vardiya ID")
		}

		actorID, role, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var sch models.Schedule
		if err := database.DB.First(&sch, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Vardiya bulunamadı")
		}

		if !role.IsAdmin() && sch.UserID != actorID {
			return fiber.NewError(fiber.StatusForbidden, "Bu vardiya size ait değil")
		}

		if err := database.DB.Delete(&sch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Vardiya silinemedi")
		}

		var actor models.User
		if err := database.DB.First(&actor, actorID).Error; err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				ShopID:      &sch.ShopID,
				UserID:      actorID,
				UserName:    actor.Name,
				EntityType:  "schedule",
				EntityID:    sch.ID,
				Action:      models.AuditActionDelete,
				Description: "Vardiya iptal edildi",
				Before:      sch,
			})
		}

		return c.JSON(fiber.Map{"message": "Vardiya iptal edildi"})
	}
}
