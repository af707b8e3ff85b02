package database

import (
	"kafe-backend/internal/config"
	"kafe-backend/internal/logger"
	"kafe-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Get().Fatal("Veritabanına bağlanılamadı", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.Address{},
		&models.Cafe{},
		&models.Shop{},
		&models.Table{},
		&models.User{},
		&models.UnitType{},
		&models.Ingredient{},
		&models.Product{},
		&models.ProductIngredient{},
		&models.Menu{},
		&models.MenuProduct{},
		&models.StorageState{},
		&models.Supply{},
		&models.SuppliedIngredient{},
		&models.Order{},
		&models.OrderProduct{},
		&models.Booking{},
		&models.BookingTable{},
		&models.Schedule{},
		&models.Salary{},
		&models.AuditLog{},
	)
	if err != nil {
		logger.Get().Fatal("AutoMigrate hatası", zap.Error(err))
	}

	logger.Get().Info("Veritabanı bağlantısı başarılı, migration tamamlandı")
}
