package reports

import (
	"fmt"
	"time"

	"kafe-backend/internal/logger"
	"kafe-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// GET /api/reports/orders/export
// Sipariş raporunu Excel olarak indirir.
// Filtreler OrdersReportHandler ile aynı.
func OrdersExportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq, err := filteredOrdersQuery(c)
		if err != nil {
			return err
		}

		var orders []models.Order
		if err := dbq.Order("created_at DESC").Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Rapor oluşturulamadı")
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Siparişler"
		f.SetSheetName(f.GetSheetName(0), sheet)

		headers := []string{"Sipariş No", "Dükkan", "Kanal", "Durum", "Ödeme", "Tutar", "Tarih"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			_ = f.SetCellValue(sheet, cell, h)
		}

		total := 0.0
		for i := range orders {
			row := toReportRow(&orders[i])
			values := []any{row.Number, row.ShopName, row.Channel, string(row.Status), string(row.PaymentType), row.Amount, row.CreatedAt}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
				_ = f.SetCellValue(sheet, cell, v)
			}
			total += orders[i].Amount
		}

		// Toplam satırı
		totalRow := len(orders) + 2
		cell, _ := excelize.CoordinatesToCellName(5, totalRow)
		_ = f.SetCellValue(sheet, cell, "Toplam")
		cell, _ = excelize.CoordinatesToCellName(6, totalRow)
		_ = f.SetCellValue(sheet, cell, total)

		_ = f.SetColWidth(sheet, "A", "A", 38)
		_ = f.SetColWidth(sheet, "B", "G", 16)

		buf, err := f.WriteToBuffer()
		if err != nil {
			logger.Get().Error("Excel raporu yazılamadı", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		filename := fmt.Sprintf("siparis-raporu-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
		return c.Send(buf.Bytes())
	}
}
