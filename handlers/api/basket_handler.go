package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sharpcut.app/configs/configslog"
	"sharpcut.app/models"
	"sharpcut.app/services"
)

// BasketHandler serves the basket document endpoints.
type BasketHandler struct {
	service services.IBasketService
}

func NewBasketHandler(service services.IBasketService) *BasketHandler {
	return &BasketHandler{service: service}
}

// GetBasket handles GET /api/basket?id=...
func (h *BasketHandler) GetBasket(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "basket id is required"})
	}

	basket, err := h.service.GetBasket(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, services.ErrBasketNotFound) {
			// A missing basket is a fresh, empty one from the client's view.
			return c.JSON(models.CustomerBasket{ID: id, Items: []models.BasketItem{}})
		}
		configslog.Log.Error("GetBasket failed", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "basket could not be loaded"})
	}
	return c.JSON(basket)
}

// UpdateBasket handles POST /api/basket (full document upsert).
func (h *BasketHandler) UpdateBasket(c *fiber.Ctx) error {
	var basket models.CustomerBasket
	if err := c.BodyParser(&basket); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	saved, err := h.service.UpdateBasket(c.UserContext(), basket)
	if err != nil {
		if errors.Is(err, services.ErrBasketInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("UpdateBasket failed", zap.String("id", basket.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "basket could not be saved"})
	}
	return c.JSON(saved)
}

// DeleteBasket handles DELETE /api/basket?id=...
func (h *BasketHandler) DeleteBasket(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "basket id is required"})
	}

	if err := h.service.DeleteBasket(c.UserContext(), id); err != nil {
		if errors.Is(err, services.ErrBasketNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("DeleteBasket failed", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "basket could not be deleted"})
	}
	return c.SendStatus(fiber.StatusOK)
}
