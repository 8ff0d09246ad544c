package dto

import "sharpcut.app/models"

// ProductDto is the API-facing shape of a catalogue entry with brand/type
// names flattened.
type ProductDto struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PictureURL  string  `json:"pictureUrl"`
	Brand       string  `json:"productBrand"`
	Type        string  `json:"productType"`
}

// MapProduct flattens a loaded product into its transfer object.
func MapProduct(p models.Product) ProductDto {
	return ProductDto{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		PictureURL:  p.PictureURL,
		Brand:       p.ProductBrand.Name,
		Type:        p.ProductType.Name,
	}
}

// MapProducts maps a result set, empty slice for no rows.
func MapProducts(products []models.Product) []ProductDto {
	dtos := make([]ProductDto, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, MapProduct(p))
	}
	return dtos
}
