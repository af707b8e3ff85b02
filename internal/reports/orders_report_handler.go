package reports

import (
	"fmt"
	"time"

	"kafe-backend/internal/database"
	"kafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrderReportRow struct {
	ID          uint               `json:"id"`
	Number      string             `json:"number"`
	ShopName    string             `json:"shop_name"`
	Amount      float64            `json:"amount"`
	Status      models.OrderStatus `json:"status"`
	PaymentType models.PaymentType `json:"payment_type"`
	Channel     string             `json:"channel"` // "online" / "counter"
	CreatedAt   string             `json:"created_at"`
}

type OrderReportResponse struct {
	Orders      []OrderReportRow `json:"orders"`
	TotalCount  int              `json:"total_count"`
	TotalAmount float64          `json:"total_amount"`
}

// filteredOrdersQuery: shop / status / payment_type / tarih aralığı filtreleri
func filteredOrdersQuery(c *fiber.Ctx) (*gorm.DB, error) {
	dbq := database.DB.Model(&models.Order{}).Preload("Shop")

	if sidStr := c.Query("shop_id"); sidStr != "" {
		var sid uint
		if _, err := fmt.Sscan(sidStr, &sid); err != nil || sid == 0 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "shop_id geçersiz")
		}
		dbq = dbq.Where("shop_id = ?", sid)
	}

	if status := c.Query("status"); status != "" {
		dbq = dbq.Where("status = ?", status)
	}
	if pt := c.Query("payment_type"); pt != "" {
		dbq = dbq.Where("payment_type = ?", pt)
	}

	if startStr := c.Query("start_date"); startStr != "" {
		d, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "start_date formatı 'YYYY-MM-DD' olmalı")
		}
		dbq = dbq.Where("created_at >= ?", d)
	}
	if endStr := c.Query("end_date"); endStr != "" {
		d, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "end_date formatı 'YYYY-MM-DD' olmalı")
		}
		dbq = dbq.Where("created_at < ?", d.AddDate(0, 0, 1))
	}

	return dbq, nil
}

func toReportRow(o *models.Order) OrderReportRow {
	channel := "counter"
	if o.ClientID != nil {
		channel = "online"
	}
	return OrderReportRow{
		ID:          o.ID,
		Number:      o.Number,
		ShopName:    o.Shop.Name,
		Amount:      o.Amount,
		Status:      o.Status,
		PaymentType: o.PaymentType,
		Channel:     channel,
		CreatedAt:   o.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// GET /api/reports/orders?shop_id=&status=&payment_type=&start_date=&end_date=
func OrdersReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq, err := filteredOrdersQuery(c)
		if err != nil {
			return err
		}

		var orders []models.Order
		if err := dbq.Order("created_at DESC").Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı")
		}

		rows := make([]OrderReportRow, 0, len(orders))
		total := 0.0
		for i := range orders {
			rows = append(rows, toReportRow(&orders[i]))
			total += orders[i].Amount
		}

		return c.JSON(OrderReportResponse{
			Orders:      rows,
			TotalCount:  len(rows),
			TotalAmount: total,
		})
	}
}
