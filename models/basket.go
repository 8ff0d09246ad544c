package models

// BasketItem is a quantity/product pairing inside a customer basket.
type BasketItem struct {
	ProductID  uint    `json:"productId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	PictureURL string  `json:"pictureUrl"`
	Brand      string  `json:"brand"`
	Type       string  `json:"type"`
}

// CustomerBasket lives in Redis as a JSON document, not in Postgres.
// The id is generated by the client and carried in a cookie/local storage.
type CustomerBasket struct {
	ID              string       `json:"id"`
	Items           []BasketItem `json:"items"`
	DeliveryPrice   float64      `json:"deliveryPrice"`
	PaymentIntentID string       `json:"paymentIntentId,omitempty"`
	ClientSecret    string       `json:"clientSecret,omitempty"`
}
