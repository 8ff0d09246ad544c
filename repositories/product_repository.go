package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sharpcut.app/configs/configsdatabase"
	"sharpcut.app/configs/configslog"
	"sharpcut.app/models"
	"sharpcut.app/pkg/queryparams"
)

// IProductRepository is the read surface of the shop catalogue.
type IProductRepository interface {
	FindPaginated(ctx context.Context, params queryparams.ShopParams) ([]models.Product, int64, error)
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []uint) ([]models.Product, error)
	ListBrands(ctx context.Context) ([]models.ProductBrand, error)
	ListTypes(ctx context.Context) ([]models.ProductType, error)
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository() IProductRepository {
	return &ProductRepository{db: configsdatabase.GetDB()}
}

func NewProductRepositoryWithDB(db *gorm.DB) IProductRepository {
	return &ProductRepository{db: db}
}

// FindPaginated composes the brand/type/search filters, counts the filtered
// set and returns one page with relations preloaded.
func (r *ProductRepository) FindPaginated(ctx context.Context, params queryparams.ShopParams) ([]models.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if params.BrandID != 0 {
		query = query.Where("product_brand_id = ?", params.BrandID)
	}
	if params.TypeID != 0 {
		query = query.Where("product_type_id = ?", params.TypeID)
	}
	if params.Search != "" {
		query = query.Where("lower(name) LIKE lower(?)", "%"+params.Search+"%")
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("ProductRepository.FindPaginated: count error", zap.Error(err))
		return nil, 0, err
	}

	var products []models.Product
	if totalCount == 0 {
		return products, 0, nil
	}

	switch params.Sort {
	case queryparams.SortByPriceAsc:
		query = query.Order("price asc")
	case queryparams.SortByPriceDesc:
		query = query.Order("price desc")
	default:
		query = query.Order("name asc")
	}

	err := query.
		Preload("ProductBrand").
		Preload("ProductType").
		Limit(params.PageSize).
		Offset(params.CalculateOffset()).
		Find(&products).Error
	if err != nil {
		configslog.Log.Error("ProductRepository.FindPaginated: db error", zap.Error(err))
		return nil, totalCount, err
	}
	return products, totalCount, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("ProductBrand").
		Preload("ProductType").
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ProductRepository.FindByID: db error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &product, nil
}

// FindByIDs loads the products referenced by a basket for server-side price
// verification.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Product, error) {
	var products []models.Product
	if len(ids) == 0 {
		return products, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *ProductRepository) ListBrands(ctx context.Context) ([]models.ProductBrand, error) {
	var brands []models.ProductBrand
	err := r.db.WithContext(ctx).Order("name asc").Find(&brands).Error
	return brands, err
}

func (r *ProductRepository) ListTypes(ctx context.Context) ([]models.ProductType, error) {
	var types []models.ProductType
	err := r.db.WithContext(ctx).Order("name asc").Find(&types).Error
	return types, err
}

var _ IProductRepository = (*ProductRepository)(nil)
