package client

import "sharpcut.app/models"

// Stepper advances a multi-step checkout wizard.
type Stepper interface {
	Next()
}

// CheckoutReview is the review step of the checkout wizard. Creating the
// payment intent advances the stepper on success; on failure the error
// message is surfaced verbatim through the notify callback. No retry, no
// idempotency key, a single round trip per click.
type CheckoutReview struct {
	api      *APIClient
	stepper  Stepper
	notify   func(message string)
	basketID string
}

func NewCheckoutReview(api *APIClient, stepper Stepper, notify func(string), basketID string) *CheckoutReview {
	return &CheckoutReview{
		api:      api,
		stepper:  stepper,
		notify:   notify,
		basketID: basketID,
	}
}

// CreatePaymentIntent asks the server to create or refresh the intent for
// the basket and advances the wizard when that worked.
func (r *CheckoutReview) CreatePaymentIntent() (*models.CustomerBasket, error) {
	var basket models.CustomerBasket
	err := r.api.post("/api/payments/"+r.basketID, nil, &basket)
	if err != nil {
		if r.notify != nil {
			r.notify(err.Error())
		}
		return nil, err
	}
	if r.stepper != nil {
		r.stepper.Next()
	}
	return &basket, nil
}
