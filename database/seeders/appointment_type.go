package seeders

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sharpcut.app/configs/configslog"
	"sharpcut.app/models"
)

// SeedAppointmentTypes creates the default service categories. Idempotent.
func SeedAppointmentTypes(db *gorm.DB) error {
	types := []models.AppointmentType{
		{Name: "Haircut", DurationMinutes: 30, Price: 25.00},
		{Name: "Beard Trim", DurationMinutes: 20, Price: 15.00},
		{Name: "Hot Towel Shave", DurationMinutes: 40, Price: 30.00},
		{Name: "Cut & Shave", DurationMinutes: 60, Price: 45.00},
	}

	for _, t := range types {
		var existing models.AppointmentType
		result := db.Where("name = ?", t.Name).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("type seed lookup failed", zap.String("name", t.Name), zap.Error(result.Error))
			return result.Error
		}
		if err := db.Create(&t).Error; err != nil {
			configslog.Log.Error("type seed insert failed", zap.String("name", t.Name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("appointment type %q seeded", t.Name)
	}
	return nil
}
