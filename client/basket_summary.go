package client

import "sharpcut.app/models"

// RemoveIntent is the payload of a remove-item event.
type RemoveIntent struct {
	ProductID uint
	Quantity  int
}

// BasketSummary is a presentation container over basket contents. It never
// mutates the basket itself; add/remove are emitted upward as intents and
// the owner decides what to do with them.
type BasketSummary struct {
	IsBasket bool

	onAdd    func(models.BasketItem)
	onRemove func(RemoveIntent)
}

func NewBasketSummary(onAdd func(models.BasketItem), onRemove func(RemoveIntent)) *BasketSummary {
	return &BasketSummary{
		IsBasket: true,
		onAdd:    onAdd,
		onRemove: onRemove,
	}
}

// AddBasketItem emits an add intent.
func (s *BasketSummary) AddBasketItem(item models.BasketItem) {
	if s.onAdd != nil {
		s.onAdd(item)
	}
}

// RemoveBasketItem emits a remove intent; quantity defaults to 1.
func (s *BasketSummary) RemoveBasketItem(productID uint, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}
	if s.onRemove != nil {
		s.onRemove(RemoveIntent{ProductID: productID, Quantity: quantity})
	}
}
