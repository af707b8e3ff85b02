package orders

import (
	"errors"
	"fmt"

	"kafe-backend/internal/audit"
	"kafe-backend/internal/auth"
	"kafe-backend/internal/database"
	"kafe-backend/internal/metrics"
	"kafe-backend/internal/models"
	"kafe-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type CreateOrderRequest struct {
	ShopID      uint               `json:"shop_id"`
	ProductIDs  []uint             `json:"product_ids"`
	PaymentType models.PaymentType `json:"payment_type"`
}

type OrderProductResponse struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderResponse struct {
	ID          uint                   `json:"id"`
	Number      string                 `json:"number"`
	Amount      float64                `json:"amount"`
	ShopID      uint                   `json:"shop_id"`
	Status      models.OrderStatus     `json:"status"`
	PaymentType models.PaymentType     `json:"payment_type"`
	ClientID    *uint                  `json:"client_id"`
	EmployeeID  *uint                  `json:"employee_id"`
	CreatedAt   string                 `json:"created_at"`
	Products    []OrderProductResponse `json:"products"`
}

func toOrderResponse(o *models.Order) OrderResponse {
	products := make([]OrderProductResponse, 0, len(o.Products))
	for _, op := range o.Products {
		products = append(products, OrderProductResponse{
			ProductID: op.ProductID,
			Name:      op.Product.Name,
			UnitPrice: op.UnitPrice,
		})
	}
	return OrderResponse{
		ID:          o.ID,
		Number:      o.Number,
		Amount:      o.Amount,
		ShopID:      o.ShopID,
		Status:      o.Status,
		PaymentType: o.PaymentType,
		ClientID:    o.ClientID,
		EmployeeID:  o.EmployeeID,
		CreatedAt:   o.CreatedAt.Format("2006-01-02 15:04:05"),
		Products:    products,
	}
}

// POST /api/orders
// Online sipariş (client) veya kasa siparişi (personel)
func CreateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.ShopID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "shop_id zorunlu")
		}
		switch body.PaymentType {
		case models.PaymentTypeCash, models.PaymentTypeCard, models.PaymentTypeOnline:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "payment_type cash, card veya online olmalı")
		}

		userID, role, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		in := CreateOrderInput{
			ShopID:      body.ShopID,
			ProductIDs:  body.ProductIDs,
			PaymentType: body.PaymentType,
		}
		channel := "online"
		if role.IsEmployee() {
			in.EmployeeID = &userID
			channel = "counter"
		} else {
			in.ClientID = &userID
		}

		order, err := Create(database.DB, in)
		if err != nil {
			var insufficient *storage.InsufficientStockError
			switch {
			case errors.As(err, &insufficient):
				metrics.OrdersRejectedTotal.Inc()
				return fiber.NewError(fiber.StatusBadRequest, insufficient.Error())
			case errors.Is(err, ErrEmptyOrder),
				errors.Is(err, ErrNoCurrentMenu),
				errors.Is(err, ErrProductNotOnMenu),
				errors.Is(err, ErrShopNotFound):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Sipariş oluşturulamadı")
			}
		}

		metrics.OrdersCreatedTotal.WithLabelValues(channel).Inc()

		var user models.User
		if err := database.DB.First(&user, userID).Error; err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				ShopID:      &order.ShopID,
				UserID:      userID,
				UserName:    user.Name,
				EntityType:  "order",
				EntityID:    order.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Sipariş oluşturuldu: %s (%.2f)", order.Number, order.Amount),
				After:       order,
			})
		}

		// Ürün adlarıyla tam cevap için tekrar yükle
		var full models.Order
		if err := database.DB.Preload("Products.Product").First(&full, order.ID).Error; err != nil {
			return c.Status(fiber.StatusCreated).JSON(toOrderResponse(order))
		}
		return c.Status(fiber.StatusCreated).JSON(toOrderResponse(&full))
	}
}

// GET /api/orders
// Kasa siparişleri (client'sız), sadece personel
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var orderList []models.Order
		if err := database.DB.Preload("Products.Product").
			Where("client_id IS NULL").
			Order("created_at DESC").
			Find(&orderList).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler alınamadı")
		}

		resp := make([]OrderResponse, 0, len(orderList))
		for i := range orderList {
			resp = append(resp, toOrderResponse(&orderList[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/online-orders
// Personel hepsini, client kendininkini görür
func ListOnlineOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		dbq := database.DB.Preload("Products.Product").Order("created_at DESC")
		if role.IsEmployee() {
			dbq = dbq.Where("client_id IS NOT NULL")
		} else {
			dbq = dbq.Where("client_id = ?", userID)
		}

		var orderList []models.Order
		if err := dbq.Find(&orderList).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Siparişler alınamadı")
		}

		resp := make([]OrderResponse, 0, len(orderList))
		for i := range orderList {
			resp = append(resp, toOrderResponse(&orderList[i]))
		}
		return c.JSON(resp)
	}
}

// POST /api/orders/:id/accept
// Personel bekleyen siparişi üstlenir
func AcceptOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş ID")
		}

		userID, _, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var order models.Order
		if err := database.DB.First(&order, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
		}

		if order.Status != models.OrderStatusPending {
			return fiber.NewError(fiber.StatusBadRequest, "Sadece bekleyen siparişler üstlenilebilir")
		}

		before := order
		order.Status = models.OrderStatusAccepted
		order.EmployeeID = &userID
		if err := database.DB.Save(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş güncellenemedi")
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				ShopID:      &order.ShopID,
				UserID:      userID,
				UserName:    user.Name,
				EntityType:  "order",
				EntityID:    order.ID,
				Action:      models.AuditActionUpdate,
				Description: fmt.Sprintf("Sipariş üstlenildi: %s", order.Number),
				Before:      before,
				After:       order,
			})
		}

		return c.JSON(toOrderResponse(&order))
	}
}

// DELETE /api/orders/:id
// İptal, sipariş silinir.
// Client sadece kendi bekleyen siparişini iptal edebilir.
func CancelOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz sipariş ID")
		}

		userID, role, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var order models.Order
		if err := database.DB.First(&order, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Sipariş bulunamadı")
		}

		if !role.IsEmployee() {
			if order.ClientID == nil || *order.ClientID != userID {
				return fiber.NewError(fiber.StatusForbidden, "Bu sipariş size ait değil")
			}
			if order.Status != models.OrderStatusPending {
				return fiber.NewError(fiber.StatusBadRequest, "Sadece bekleyen siparişler iptal edilebilir")
			}
		}

		if err := database.DB.Select("Products").Delete(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sipariş silinemedi")
		}

		var user models.User
		if err := database.DB.First(&user, userID).Error; err == nil {
			_ = audit.WriteLog(audit.LogOptions{
				ShopID:      &order.ShopID,
				UserID:      userID,
				UserName:    user.Name,
				EntityType:  "order",
				EntityID:    order.ID,
				Action:      models.AuditActionDelete,
				Description: fmt.Sprintf("Sipariş iptal edildi: %s", order.Number),
				Before:      order,
			})
		}

		return c.JSON(fiber.Map{"message": "Sipariş iptal edildi"})
	}
}
