package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharpcut.app/models"
)

type fakeStepper struct {
	advanced int
}

func (s *fakeStepper) Next() { s.advanced++ }

func TestCreatePaymentIntent_SuccessAdvancesStepper(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/payments/b1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.CustomerBasket{
			ID:              "b1",
			PaymentIntentID: "pi_test",
			ClientSecret:    "secret_test",
		})
	}))
	t.Cleanup(srv.Close)

	stepper := &fakeStepper{}
	var notices []string
	review := NewCheckoutReview(NewAPIClient(srv.URL, "token"), stepper, func(msg string) {
		notices = append(notices, msg)
	}, "b1")

	basket, err := review.CreatePaymentIntent()
	require.NoError(t, err)
	assert.Equal(t, "secret_test", basket.ClientSecret)
	assert.Equal(t, 1, stepper.advanced)
	assert.Empty(t, notices)
}

func TestCreatePaymentIntent_ErrorSurfacedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Your card was declined."})
	}))
	t.Cleanup(srv.Close)

	stepper := &fakeStepper{}
	var notices []string
	review := NewCheckoutReview(NewAPIClient(srv.URL, "token"), stepper, func(msg string) {
		notices = append(notices, msg)
	}, "b1")

	_, err := review.CreatePaymentIntent()
	require.Error(t, err)
	assert.Equal(t, 0, stepper.advanced, "stepper must not advance on failure")
	require.Len(t, notices, 1)
	assert.Equal(t, "Your card was declined.", notices[0])
}

func TestBasketSummary_EmitsIntentsOnly(t *testing.T) {
	var added []models.BasketItem
	var removed []RemoveIntent
	summary := NewBasketSummary(
		func(item models.BasketItem) { added = append(added, item) },
		func(intent RemoveIntent) { removed = append(removed, intent) },
	)

	summary.AddBasketItem(models.BasketItem{ProductID: 1, Quantity: 2})
	summary.RemoveBasketItem(1, 0)
	summary.RemoveBasketItem(2, 3)

	require.Len(t, added, 1)
	assert.Equal(t, uint(1), added[0].ProductID)

	require.Len(t, removed, 2)
	assert.Equal(t, RemoveIntent{ProductID: 1, Quantity: 1}, removed[0], "quantity defaults to 1")
	assert.Equal(t, RemoveIntent{ProductID: 2, Quantity: 3}, removed[1])
}
