package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sharpcut.app/configs/configslog"
	"sharpcut.app/database/migrations"
	"sharpcut.app/database/seeders"
)

// Initialize runs migrations and seeders inside one transaction, in
// dependency order.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("neither migrate nor seed requested, nothing to do")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("database transaction could not be started", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("database initialization panicked", zap.Any("panic_info", r))
		}
	}()

	if migrate {
		if err := RunMigrationsInOrder(tx); err != nil {
			tx.Rollback()
			configslog.Log.Fatal("migration failed", zap.Error(err))
			return
		}
	}

	if seed {
		if err := RunSeeders(tx); err != nil {
			tx.Rollback()
			configslog.Log.Fatal("seeding failed", zap.Error(err))
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Fatal("commit failed", zap.Error(err))
		return
	}
	configslog.SLog.Info("database initialization finished")
}

// RunMigrationsInOrder migrates users first, then the tables referencing
// them.
func RunMigrationsInOrder(db *gorm.DB) error {
	if err := migrations.MigrateUsersTables(db); err != nil {
		return err
	}
	if err := migrations.MigrateAppointmentsTables(db); err != nil {
		return err
	}
	if err := migrations.MigrateProductsTables(db); err != nil {
		return err
	}
	configslog.SLog.Info("all migrations completed")
	return nil
}

// RunSeeders fills the lookup tables. Every seeder is idempotent.
func RunSeeders(db *gorm.DB) error {
	if err := seeders.SeedAppointmentStatuses(db); err != nil {
		return err
	}
	if err := seeders.SeedAppointmentTypes(db); err != nil {
		return err
	}
	if err := seeders.SeedShopLookups(db); err != nil {
		return err
	}
	configslog.SLog.Info("all seeders completed")
	return nil
}
