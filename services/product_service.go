package services

import (
	"context"
	"errors"

	"sharpcut.app/dto"
	"sharpcut.app/models"
	"sharpcut.app/pkg/queryparams"
	"sharpcut.app/repositories"
)

type ProductServiceError string

func (e ProductServiceError) Error() string { return string(e) }

const ErrProductNotFound ProductServiceError = "product not found"

// IProductService serves the shop catalogue.
type IProductService interface {
	GetProducts(ctx context.Context, params queryparams.ShopParams) (*queryparams.PaginatedResult, error)
	GetProductByID(ctx context.Context, id uint) (*dto.ProductDto, error)
	GetBrands(ctx context.Context) ([]models.ProductBrand, error)
	GetTypes(ctx context.Context) ([]models.ProductType, error)
}

type ProductService struct {
	repo repositories.IProductRepository
}

func NewProductService() IProductService {
	return &ProductService{repo: repositories.NewProductRepository()}
}

// GetProducts returns one catalogue page for the given filter/sort set.
func (s *ProductService) GetProducts(ctx context.Context, params queryparams.ShopParams) (*queryparams.PaginatedResult, error) {
	params.Validate()

	products, totalCount, err := s.repo.FindPaginated(ctx, params)
	if err != nil {
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: dto.MapProducts(products),
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.PageNumber,
			PerPage:     params.PageSize,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PageSize),
		},
	}, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*dto.ProductDto, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	mapped := dto.MapProduct(*product)
	return &mapped, nil
}

func (s *ProductService) GetBrands(ctx context.Context) ([]models.ProductBrand, error) {
	return s.repo.ListBrands(ctx)
}

func (s *ProductService) GetTypes(ctx context.Context) ([]models.ProductType, error) {
	return s.repo.ListTypes(ctx)
}

var _ IProductService = (*ProductService)(nil)
