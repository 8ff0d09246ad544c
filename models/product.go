package models

// ProductBrand is a read-only lookup for shop filtering.
type ProductBrand struct {
	BaseModel
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

// ProductType is a read-only lookup for shop filtering.
type ProductType struct {
	BaseModel
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

// Product is a shop catalogue entry.
type Product struct {
	BaseModel
	Name           string  `gorm:"type:varchar(200);not null;index" json:"name"`
	Description    string  `gorm:"type:text" json:"description"`
	Price          float64 `gorm:"type:numeric(12,2);not null" json:"price"`
	PictureURL     string  `gorm:"type:varchar(500)" json:"pictureUrl"`
	ProductBrandID uint    `gorm:"index;not null" json:"productBrandId"`
	ProductTypeID  uint    `gorm:"index;not null" json:"productTypeId"`

	ProductBrand ProductBrand `gorm:"foreignKey:ProductBrandID" json:"productBrand"`
	ProductType  ProductType  `gorm:"foreignKey:ProductTypeID" json:"productType"`
}
