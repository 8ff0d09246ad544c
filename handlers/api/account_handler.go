package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sharpcut.app/configs/configslog"
	"sharpcut.app/services"
)

// AccountHandler serves registration and login.
type AccountHandler struct {
	service services.IAccountService
}

func NewAccountHandler(service services.IAccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Register handles POST /api/account/register.
func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.Register(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, services.ErrAccountEmailTaken) ||
			errors.Is(err, services.ErrAccountInvalidInput) ||
			errors.Is(err, services.ErrAccountPasswordTooShort) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Register failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "registration failed"})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/account/login.
func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAccountInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "login failed"})
	}
	return c.JSON(result)
}
