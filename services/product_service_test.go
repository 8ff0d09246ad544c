package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharpcut.app/dto"
	"sharpcut.app/pkg/queryparams"
)

func TestGetProducts_PaginationMeta(t *testing.T) {
	repo := newFakeProductRepo(product(1, 10), product(2, 20), product(3, 30))
	repo.total = 25
	svc := &ProductService{repo: repo}

	result, err := svc.GetProducts(context.Background(), queryparams.ShopParams{
		PageNumber: 2,
		PageSize:   6,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Meta.CurrentPage)
	assert.Equal(t, 6, result.Meta.PerPage)
	assert.Equal(t, int64(25), result.Meta.TotalItems)
	assert.Equal(t, 5, result.Meta.TotalPages)

	dtos, ok := result.Data.([]dto.ProductDto)
	require.True(t, ok)
	assert.Len(t, dtos, 3)
}

func TestGetProducts_ClampsBadParams(t *testing.T) {
	svc := &ProductService{repo: newFakeProductRepo()}

	result, err := svc.GetProducts(context.Background(), queryparams.ShopParams{
		PageNumber: -1,
		PageSize:   9999,
		Sort:       "nonsense",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Meta.CurrentPage)
	assert.Equal(t, queryparams.MaxPerPage, result.Meta.PerPage)
}

func TestGetProductByID_NotFound(t *testing.T) {
	svc := &ProductService{repo: newFakeProductRepo()}

	_, err := svc.GetProductByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
