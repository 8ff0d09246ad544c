package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sharpcut.app/configs/configslog"
	"sharpcut.app/pkg/queryparams"
	"sharpcut.app/services"
)

// ProductHandler serves the shop catalogue endpoints.
type ProductHandler struct {
	service services.IProductService
}

func NewProductHandler(service services.IProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// GetProducts handles GET /api/products.
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	var params queryparams.ShopParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query parameters"})
	}

	result, err := h.service.GetProducts(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("GetProducts failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "products could not be listed"})
	}
	return c.JSON(result)
}

// GetProduct handles GET /api/products/:id.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	product, err := h.service.GetProductByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("GetProduct failed", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "product could not be loaded"})
	}
	return c.JSON(product)
}

// GetBrands handles GET /api/products/brands.
func (h *ProductHandler) GetBrands(c *fiber.Ctx) error {
	brands, err := h.service.GetBrands(c.UserContext())
	if err != nil {
		configslog.Log.Error("GetBrands failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "brands could not be listed"})
	}
	return c.JSON(brands)
}

// GetTypes handles GET /api/products/types.
func (h *ProductHandler) GetTypes(c *fiber.Ctx) error {
	types, err := h.service.GetTypes(c.UserContext())
	if err != nil {
		configslog.Log.Error("GetTypes failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "types could not be listed"})
	}
	return c.JSON(types)
}
