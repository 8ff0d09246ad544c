package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"sharpcut.app/models"
	"sharpcut.app/repositories"
)

type BasketServiceError string

func (e BasketServiceError) Error() string { return string(e) }

const (
	ErrBasketNotFound     BasketServiceError = "basket not found"
	ErrBasketInvalidInput BasketServiceError = "invalid basket data"
)

// IBasketService manages the client-owned shopping basket document.
type IBasketService interface {
	GetBasket(ctx context.Context, id string) (*models.CustomerBasket, error)
	UpdateBasket(ctx context.Context, basket models.CustomerBasket) (*models.CustomerBasket, error)
	DeleteBasket(ctx context.Context, id string) error
}

type BasketService struct {
	repo repositories.IBasketRepository
}

func NewBasketService() IBasketService {
	return &BasketService{repo: repositories.NewBasketRepository()}
}

func (s *BasketService) GetBasket(ctx context.Context, id string) (*models.CustomerBasket, error) {
	basket, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBasketNotFound
		}
		return nil, err
	}
	return basket, nil
}

// UpdateBasket upserts the whole basket document. Missing ids get a fresh
// UUID so a first add-to-basket creates the aggregate.
func (s *BasketService) UpdateBasket(ctx context.Context, basket models.CustomerBasket) (*models.CustomerBasket, error) {
	if err := validateBasket(basket); err != nil {
		return nil, err
	}
	if basket.ID == "" {
		basket.ID = uuid.NewString()
	}
	if basket.Items == nil {
		basket.Items = []models.BasketItem{}
	}
	if err := s.repo.Save(ctx, &basket); err != nil {
		return nil, err
	}
	return &basket, nil
}

func (s *BasketService) DeleteBasket(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBasketNotFound
		}
		return err
	}
	return nil
}

func validateBasket(basket models.CustomerBasket) error {
	for _, item := range basket.Items {
		if item.ProductID == 0 {
			return fmt.Errorf("%w: item without product reference", ErrBasketInvalidInput)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item quantity must be positive", ErrBasketInvalidInput)
		}
	}
	return nil
}

var _ IBasketService = (*BasketService)(nil)
