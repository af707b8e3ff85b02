package main

import (
	"log"
	"strings"

	"kafe-backend/internal/audit"
	"kafe-backend/internal/auth"
	"kafe-backend/internal/booking"
	"kafe-backend/internal/catalog"
	"kafe-backend/internal/config"
	"kafe-backend/internal/database"
	"kafe-backend/internal/logger"
	"kafe-backend/internal/metrics"
	"kafe-backend/internal/models"
	"kafe-backend/internal/orders"
	"kafe-backend/internal/reports"
	"kafe-backend/internal/salary"
	"kafe-backend/internal/schedule"
	"kafe-backend/internal/storage"
	"kafe-backend/internal/supply"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg); err != nil {
		log.Fatalf("Logger başlatılamadı: %v", err)
	}
	defer logger.Sync()

	database.Init(cfg)
	metrics.Init()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logger.Get().Error("Beklenmeyen hata", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Use(metrics.Middleware())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Public
	api.Post("/auth/register", auth.RegisterHandler(cfg))
	api.Post("/auth/register-admin", auth.RegisterFirstAdminHandler())
	api.Post("/auth/login", auth.LoginHandler(cfg))
	api.Get("/cafes", catalog.ListCafesHandler())
	api.Get("/shops", catalog.ListShopsHandler())
	api.Get("/menu", catalog.CurrentMenuHandler())

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	// Kafe & dükkan yönetimi
	adminRoutes.Post("/cafes", catalog.CreateCafeHandler())
	adminRoutes.Put("/cafes/:id", catalog.UpdateCafeHandler())
	adminRoutes.Post("/shops", catalog.CreateShopHandler())
	adminRoutes.Put("/shops/:id", catalog.UpdateShopHandler())
	adminRoutes.Delete("/shops/:id", catalog.DeleteShopHandler())
	adminRoutes.Post("/tables", catalog.CreateTableHandler())

	// Katalog yönetimi
	adminRoutes.Post("/unit-types", catalog.CreateUnitTypeHandler())
	adminRoutes.Post("/ingredients", catalog.CreateIngredientHandler())
	adminRoutes.Delete("/ingredients/:id", catalog.DeleteIngredientHandler())
	adminRoutes.Post("/products", catalog.CreateProductHandler())
	adminRoutes.Put("/products/:id", catalog.UpdateProductHandler())
	adminRoutes.Delete("/products/:id", catalog.DeleteProductHandler())
	adminRoutes.Post("/menus", catalog.CreateMenuHandler())

	// Personel & maaş yönetimi
	adminRoutes.Post("/employees", auth.CreateEmployeeHandler())
	adminRoutes.Get("/employees", auth.ListEmployeesHandler())
	adminRoutes.Post("/salaries", salary.CreateSalaryHandler())

	// Ortak (auth gerektiren) route'lar

	// Sipariş akışı
	protected.Post("/orders", orders.CreateOrderHandler())
	protected.Get("/online-orders", orders.ListOnlineOrdersHandler())
	protected.Delete("/orders/:id", orders.CancelOrderHandler())

	// Rezervasyon
	protected.Post("/bookings", booking.CreateBookingHandler())
	protected.Get("/bookings", booking.ListBookingsHandler())
	protected.Delete("/bookings/:id", booking.CancelBookingHandler())

	// Maaş geçmişi (personel kendininkini görür)
	protected.Get("/salaries", salary.ListSalariesHandler())

	// Personel route'ları
	employeeRoutes := protected.Group("")
	employeeRoutes.Use(auth.RequireEmployee())

	employeeRoutes.Get("/orders", orders.ListOrdersHandler())
	employeeRoutes.Post("/orders/:id/accept", orders.AcceptOrderHandler())

	employeeRoutes.Get("/products", catalog.ListProductsHandler())
	employeeRoutes.Get("/menus", catalog.ListMenusHandler())
	employeeRoutes.Get("/ingredients", catalog.ListIngredientsHandler())
	employeeRoutes.Get("/unit-types", catalog.ListUnitTypesHandler())
	employeeRoutes.Get("/tables", catalog.ListTablesHandler())

	// Stok & tedarik
	employeeRoutes.Get("/storage", storage.ListStorageHandler())
	employeeRoutes.Post("/supplies", supply.CreateSupplyHandler())
	employeeRoutes.Get("/supplies", supply.ListSuppliesHandler())

	// Vardiyalar
	employeeRoutes.Post("/schedules", schedule.CreateScheduleHandler())
	employeeRoutes.Get("/schedules", schedule.ListSchedulesHandler())
	employeeRoutes.Delete("/schedules/:id", schedule.CancelScheduleHandler())

	// Admin onayı ve raporlar
	adminRoutes.Post("/schedules/:id/approve", schedule.ApproveScheduleHandler())
	adminRoutes.Get("/reports/orders", reports.OrdersReportHandler())
	adminRoutes.Get("/reports/orders/export", reports.OrdersExportHandler())
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	logger.Get().Info("Server çalışıyor", zap.String("port", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.Get().Fatal("Server başlatılamadı", zap.Error(err))
	}
}
