package seeders

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sharpcut.app/configs/configslog"
	"sharpcut.app/models"
)

// SeedAppointmentStatuses creates the fixed status rows the transition
// operations resolve by name. Idempotent.
func SeedAppointmentStatuses(db *gorm.DB) error {
	statuses := []string{
		models.StatusNameScheduled,
		models.StatusNameCompleted,
		models.StatusNameCanceled,
	}

	for _, name := range statuses {
		var existing models.AppointmentStatus
		result := db.Where("name = ?", name).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("status seed lookup failed", zap.String("name", name), zap.Error(result.Error))
			return result.Error
		}
		if err := db.Create(&models.AppointmentStatus{Name: name}).Error; err != nil {
			configslog.Log.Error("status seed insert failed", zap.String("name", name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("appointment status %q seeded", name)
	}
	return nil
}
