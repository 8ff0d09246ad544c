package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sharpcut.app/configs/configslog"
	"sharpcut.app/models"
)

func MigrateUsersTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating app_users, clients & barbers tables...")
	err := db.AutoMigrate(&models.AppUser{}, &models.Client{}, &models.Barber{})
	if err != nil {
		configslog.Log.Error("Failed to migrate user tables", zap.Error(err))
		return err
	}
	return nil
}
