package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sharpcut.app/configs/configslog"
	"sharpcut.app/models"
)

func MigrateProductsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating product lookup & products tables...")
	err := db.AutoMigrate(
		&models.ProductBrand{},
		&models.ProductType{},
		&models.Product{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate product tables", zap.Error(err))
		return err
	}
	return nil
}
