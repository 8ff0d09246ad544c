package services

import (
	"context"
	"errors"
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"go.uber.org/zap"

	"sharpcut.app/configs/configslog"
	"sharpcut.app/models"
	"sharpcut.app/repositories"
)

type PaymentServiceError string

func (e PaymentServiceError) Error() string { return string(e) }

const (
	ErrPaymentBasketNotFound PaymentServiceError = "basket not found"
	ErrPaymentBasketEmpty    PaymentServiceError = "basket has no items"
)

// IPaymentService creates or refreshes the payment intent backing a basket
// checkout.
type IPaymentService interface {
	CreateOrUpdatePaymentIntent(ctx context.Context, basketID string) (*models.CustomerBasket, error)
}

// stripeIntents is the slice of the Stripe API the service needs; tests
// substitute a fake.
type stripeIntents interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Update(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type stripeIntentClient struct{}

func (stripeIntentClient) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.New(params)
}

func (stripeIntentClient) Update(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.Update(id, params)
}

type PaymentService struct {
	baskets  repositories.IBasketRepository
	products repositories.IProductRepository
	intents  stripeIntents
}

func NewPaymentService() IPaymentService {
	return &PaymentService{
		baskets:  repositories.NewBasketRepository(),
		products: repositories.NewProductRepository(),
		intents:  stripeIntentClient{},
	}
}

// CreateOrUpdatePaymentIntent computes the amount server-side from current
// catalogue prices plus delivery, never trusting the prices stored on the
// basket document, then creates or updates the Stripe intent and saves the
// intent id and client secret back onto the basket.
func (s *PaymentService) CreateOrUpdatePaymentIntent(ctx context.Context, basketID string) (*models.CustomerBasket, error) {
	basket, err := s.baskets.Get(ctx, basketID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPaymentBasketNotFound
		}
		return nil, err
	}
	if len(basket.Items) == 0 {
		return nil, ErrPaymentBasketEmpty
	}

	amount, err := s.basketAmount(ctx, basket)
	if err != nil {
		return nil, err
	}

	if basket.PaymentIntentID == "" {
		intent, err := s.intents.New(&stripe.PaymentIntentParams{
			Amount:             stripe.Int64(amount),
			Currency:           stripe.String(string(stripe.CurrencyUSD)),
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		})
		if err != nil {
			configslog.Log.Error("payment intent creation failed", zap.String("basketID", basketID), zap.Error(err))
			return nil, err
		}
		basket.PaymentIntentID = intent.ID
		basket.ClientSecret = intent.ClientSecret
	} else {
		if _, err := s.intents.Update(basket.PaymentIntentID, &stripe.PaymentIntentParams{
			Amount: stripe.Int64(amount),
		}); err != nil {
			configslog.Log.Error("payment intent update failed",
				zap.String("basketID", basketID), zap.String("intentID", basket.PaymentIntentID), zap.Error(err))
			return nil, err
		}
	}

	if err := s.baskets.Save(ctx, basket); err != nil {
		return nil, err
	}
	return basket, nil
}

// basketAmount returns the charge in the smallest currency unit.
func (s *PaymentService) basketAmount(ctx context.Context, basket *models.CustomerBasket) (int64, error) {
	ids := make([]uint, 0, len(basket.Items))
	for _, item := range basket.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return 0, err
	}
	prices := make(map[uint]float64, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}

	var amount int64
	for i, item := range basket.Items {
		price, ok := prices[item.ProductID]
		if !ok {
			return 0, ErrProductNotFound
		}
		// Keep the basket document honest for the summary view.
		basket.Items[i].Price = price
		amount += int64(math.Round(price*100)) * int64(item.Quantity)
	}
	amount += int64(math.Round(basket.DeliveryPrice * 100))
	return amount, nil
}

var _ IPaymentService = (*PaymentService)(nil)
