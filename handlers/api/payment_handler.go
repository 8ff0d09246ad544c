package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sharpcut.app/configs/configslog"
	"sharpcut.app/services"
)

// PaymentHandler triggers payment-intent creation for a basket checkout.
type PaymentHandler struct {
	service services.IPaymentService
}

func NewPaymentHandler(service services.IPaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreateOrUpdatePaymentIntent handles POST /api/payments/:basketId. Stripe
// errors are surfaced verbatim so the checkout UI can show them.
func (h *PaymentHandler) CreateOrUpdatePaymentIntent(c *fiber.Ctx) error {
	basketID := c.Params("basketId")
	if basketID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "basket id is required"})
	}

	basket, err := h.service.CreateOrUpdatePaymentIntent(c.UserContext(), basketID)
	if err != nil {
		if errors.Is(err, services.ErrPaymentBasketNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("CreateOrUpdatePaymentIntent failed", zap.String("basketID", basketID), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(basket)
}
