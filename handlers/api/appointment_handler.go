package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sharpcut.app/configs/configslog"
	"sharpcut.app/dto"
	"sharpcut.app/pkg/queryparams"
	"sharpcut.app/services"
)

// AppointmentHandler maps the REST surface onto the appointment service.
type AppointmentHandler struct {
	service services.IAppointmentService
}

func NewAppointmentHandler(service services.IAppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func parseFilter(c *fiber.Ctx) (queryparams.AppointmentParams, error) {
	return queryparams.ParseAppointmentParams(
		c.Query("dateFrom"),
		c.Query("dateTo"),
		c.Query("barberIds"),
		c.Query("clientId"),
	)
}

// ListAppointments handles GET /api/appointments.
func (h *AppointmentHandler) ListAppointments(c *fiber.Ctx) error {
	params, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	appointments, err := h.service.ListAppointments(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("ListAppointments failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "appointments could not be listed"})
	}
	return c.JSON(appointments)
}

// GetTakenSlots handles GET /api/appointments/taken-slots.
func (h *AppointmentHandler) GetTakenSlots(c *fiber.Ctx) error {
	params, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slots, err := h.service.GetTakenSlots(c.UserContext(), params)
	if err != nil {
		configslog.Log.Error("GetTakenSlots failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "taken slots could not be listed"})
	}
	return c.JSON(slots)
}

// GetAppointment handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid appointment id"})
	}

	appointment, err := h.service.GetAppointmentByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("GetAppointment failed", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "appointment could not be loaded"})
	}
	return c.JSON(appointment)
}

// CreateAppointment handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointment(c *fiber.Ctx) error {
	var input dto.AppointmentDto
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	created, err := h.service.CreateAppointment(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, services.ErrApptInvalidInput) || errors.Is(err, services.ErrAppointmentCreationFailed) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("CreateAppointment failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "appointment could not be created"})
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/appointments/%d", created.ID))
	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateAppointment handles PUT /api/appointments/:id (full replace).
func (h *AppointmentHandler) UpdateAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid appointment id"})
	}

	var input dto.AppointmentDto
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	updated, err := h.service.UpdateAppointment(c.UserContext(), uint(id), input)
	if err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) || errors.Is(err, services.ErrApptInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("UpdateAppointment failed", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "appointment could not be updated"})
	}
	return c.JSON(updated)
}

// CompleteAppointment handles PUT /api/appointments/:id/complete.
func (h *AppointmentHandler) CompleteAppointment(c *fiber.Ctx) error {
	return h.transition(c, h.service.CompleteAppointment)
}

// CancelAppointment handles PUT /api/appointments/:id/cancel.
func (h *AppointmentHandler) CancelAppointment(c *fiber.Ctx) error {
	return h.transition(c, h.service.CancelAppointment)
}

func (h *AppointmentHandler) transition(c *fiber.Ctx, op func(ctx context.Context, id uint) error) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid appointment id"})
	}

	if err := op(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("appointment transition failed", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "appointment status could not be changed"})
	}
	return c.SendStatus(fiber.StatusOK)
}

// DeleteAppointment handles DELETE /api/appointments/:id. Not-found answers
// 404 here, unlike the 400 of the other mutations.
func (h *AppointmentHandler) DeleteAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid appointment id"})
	}

	if err := h.service.DeleteAppointment(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, services.ErrAppointmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("DeleteAppointment failed", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "appointment could not be deleted"})
	}
	return c.JSON(fiber.Map{"deleted": true})
}
