package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"

	"sharpcut.app/models"
	"sharpcut.app/pkg/queryparams"
	"sharpcut.app/repositories"
)

type fakeProductRepo struct {
	products map[uint]models.Product
	total    int64
}

func newFakeProductRepo(products ...models.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: map[uint]models.Product{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) FindPaginated(_ context.Context, params queryparams.ShopParams) ([]models.Product, int64, error) {
	var all []models.Product
	for _, p := range f.products {
		all = append(all, p)
	}
	total := f.total
	if total == 0 {
		total = int64(len(all))
	}
	return all, total, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProductRepo) FindByIDs(_ context.Context, ids []uint) ([]models.Product, error) {
	var result []models.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) ListBrands(_ context.Context) ([]models.ProductBrand, error) {
	return nil, nil
}

func (f *fakeProductRepo) ListTypes(_ context.Context) ([]models.ProductType, error) {
	return nil, nil
}

type fakeIntents struct {
	created *stripe.PaymentIntentParams
	updated *stripe.PaymentIntentParams
	fail    error
}

func (f *fakeIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.created = params
	return &stripe.PaymentIntent{ID: "pi_test", ClientSecret: "secret_test"}, nil
}

func (f *fakeIntents) Update(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.updated = params
	return &stripe.PaymentIntent{ID: id, ClientSecret: "secret_test"}, nil
}

func product(id uint, price float64) models.Product {
	return models.Product{BaseModel: models.BaseModel{ID: id}, Name: "p", Price: price}
}

func TestCreatePaymentIntent_AmountFromServerPrices(t *testing.T) {
	baskets := newFakeBasketRepo()
	baskets.baskets["b1"] = models.CustomerBasket{
		ID:            "b1",
		DeliveryPrice: 5,
		Items: []models.BasketItem{
			// Stale client-side price: the server price must win.
			{ProductID: 1, Quantity: 2, Price: 0.01},
			{ProductID: 2, Quantity: 1, Price: 0.01},
		},
	}
	intents := &fakeIntents{}
	svc := &PaymentService{
		baskets:  baskets,
		products: newFakeProductRepo(product(1, 10.50), product(2, 3.25)),
		intents:  intents,
	}

	basket, err := svc.CreateOrUpdatePaymentIntent(context.Background(), "b1")
	require.NoError(t, err)
	require.NotNil(t, intents.created)

	// 2*10.50 + 3.25 + 5.00 delivery = 29.25 -> 2925 cents
	assert.Equal(t, int64(2925), *intents.created.Amount)
	assert.Equal(t, "pi_test", basket.PaymentIntentID)
	assert.Equal(t, "secret_test", basket.ClientSecret)
	assert.Equal(t, 10.50, basket.Items[0].Price, "basket prices refreshed from catalogue")

	// The enriched basket must have been saved back.
	stored, err := baskets.Get(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "pi_test", stored.PaymentIntentID)
}

func TestCreatePaymentIntent_UpdatesExistingIntent(t *testing.T) {
	baskets := newFakeBasketRepo()
	baskets.baskets["b1"] = models.CustomerBasket{
		ID:              "b1",
		PaymentIntentID: "pi_existing",
		ClientSecret:    "secret_existing",
		Items:           []models.BasketItem{{ProductID: 1, Quantity: 1}},
	}
	intents := &fakeIntents{}
	svc := &PaymentService{
		baskets:  baskets,
		products: newFakeProductRepo(product(1, 10)),
		intents:  intents,
	}

	basket, err := svc.CreateOrUpdatePaymentIntent(context.Background(), "b1")
	require.NoError(t, err)
	assert.Nil(t, intents.created)
	require.NotNil(t, intents.updated)
	assert.Equal(t, int64(1000), *intents.updated.Amount)
	assert.Equal(t, "pi_existing", basket.PaymentIntentID)
}

func TestCreatePaymentIntent_Failures(t *testing.T) {
	svc := &PaymentService{
		baskets:  newFakeBasketRepo(),
		products: newFakeProductRepo(),
		intents:  &fakeIntents{},
	}
	_, err := svc.CreateOrUpdatePaymentIntent(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPaymentBasketNotFound)

	baskets := newFakeBasketRepo()
	baskets.baskets["empty"] = models.CustomerBasket{ID: "empty"}
	svc.baskets = baskets
	_, err = svc.CreateOrUpdatePaymentIntent(context.Background(), "empty")
	assert.ErrorIs(t, err, ErrPaymentBasketEmpty)

	baskets.baskets["b1"] = models.CustomerBasket{
		ID:    "b1",
		Items: []models.BasketItem{{ProductID: 99, Quantity: 1}},
	}
	_, err = svc.CreateOrUpdatePaymentIntent(context.Background(), "b1")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
