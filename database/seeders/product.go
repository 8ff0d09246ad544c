package seeders

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sharpcut.app/configs/configslog"
	"sharpcut.app/models"
)

// SeedShopLookups creates the brand and product-type lookup rows the shop
// filters on. Idempotent.
func SeedShopLookups(db *gorm.DB) error {
	brands := []string{"SharpCut", "Uppercut Deluxe", "American Crew", "Proraso"}
	for _, name := range brands {
		var existing models.ProductBrand
		result := db.Where("name = ?", name).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("brand seed lookup failed", zap.String("name", name), zap.Error(result.Error))
			return result.Error
		}
		if err := db.Create(&models.ProductBrand{Name: name}).Error; err != nil {
			configslog.Log.Error("brand seed insert failed", zap.String("name", name), zap.Error(err))
			return err
		}
	}

	types := []string{"Pomade", "Shampoo", "Beard Oil", "Razor", "Accessories"}
	for _, name := range types {
		var existing models.ProductType
		result := db.Where("name = ?", name).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("product type seed lookup failed", zap.String("name", name), zap.Error(result.Error))
			return result.Error
		}
		if err := db.Create(&models.ProductType{Name: name}).Error; err != nil {
			configslog.Log.Error("product type seed insert failed", zap.String("name", name), zap.Error(err))
			return err
		}
	}
	return nil
}
