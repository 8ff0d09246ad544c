package migrations

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sharpcut.app/configs/configslog"
	"sharpcut.app/models"
)

func MigrateAppointmentsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating appointment lookup & appointments tables...")
	err := db.AutoMigrate(
		&models.AppointmentStatus{},
		&models.AppointmentType{},
		&models.Appointment{},
	)
	if err != nil {
		configslog.Log.Error("Failed to migrate appointment tables", zap.Error(err))
		return err
	}
	return nil
}
