package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"sharpcut.app/configs/configslog"
	"sharpcut.app/dto"
	"sharpcut.app/models"
	"sharpcut.app/pkg/queryparams"
	"sharpcut.app/repositories"
)

// AppointmentServiceError is a typed service error.
type AppointmentServiceError string

func (e AppointmentServiceError) Error() string { return string(e) }

const (
	ErrAppointmentNotFound       AppointmentServiceError = "appointment not found"
	ErrAppointmentCreationFailed AppointmentServiceError = "appointment could not be created"
	ErrAppointmentUpdateFailed   AppointmentServiceError = "appointment could not be updated"
	ErrAppointmentDeletionFailed AppointmentServiceError = "appointment could not be deleted"
	ErrApptInvalidInput          AppointmentServiceError = "invalid appointment data"
	ErrApptStatusUnknown         AppointmentServiceError = "appointment status is not defined"
)

// IAppointmentService is the query/command surface of the scheduling
// subsystem.
type IAppointmentService interface {
	ListAppointments(ctx context.Context, params queryparams.AppointmentParams) ([]dto.AppointmentDto, error)
	GetTakenSlots(ctx context.Context, params queryparams.AppointmentParams) ([]dto.CalendarSlotDto, error)
	GetAppointmentByID(ctx context.Context, id uint) (*dto.AppointmentDto, error)
	CreateAppointment(ctx context.Context, input dto.AppointmentDto) (*dto.AppointmentDto, error)
	UpdateAppointment(ctx context.Context, id uint, input dto.AppointmentDto) (*dto.AppointmentDto, error)
	CompleteAppointment(ctx context.Context, id uint) error
	CancelAppointment(ctx context.Context, id uint) error
	DeleteAppointment(ctx context.Context, id uint) error
}

// AppointmentService implements IAppointmentService.
type AppointmentService struct {
	repo     repositories.IAppointmentRepository
	lookups  repositories.ILookupRepository
	notifier IAppointmentNotifier
}

// NewAppointmentService wires the service with its production dependencies.
func NewAppointmentService(notifier IAppointmentNotifier) IAppointmentService {
	return &AppointmentService{
		repo:     repositories.NewAppointmentRepository(),
		lookups:  repositories.NewLookupRepository(),
		notifier: notifier,
	}
}

// ValidateAppointment checks the invariants of an incoming representation.
func ValidateAppointment(input dto.AppointmentDto) error {
	if input.StartsAt.IsZero() || input.EndsAt.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrApptInvalidInput)
	}
	if !input.StartsAt.Before(input.EndsAt) {
		return fmt.Errorf("%w: start must be before end", ErrApptInvalidInput)
	}
	if input.AppointmentTypeID == 0 || input.AppointmentStatusID == 0 {
		return fmt.Errorf("%w: type and status references are required", ErrApptInvalidInput)
	}
	if input.ClientID == 0 || input.BarberID == 0 {
		return fmt.Errorf("%w: client and barber references are required", ErrApptInvalidInput)
	}
	return nil
}

// ListAppointments returns the appointments starting inside the range,
// restricted to the barber set and (inclusively) to the client, ascending by
// start. No rows is an empty result, never an error.
func (s *AppointmentService) ListAppointments(ctx context.Context, params queryparams.AppointmentParams) ([]dto.AppointmentDto, error) {
	appointments, err := s.repo.FindInRange(ctx, params)
	if err != nil {
		return nil, err
	}
	return dto.MapAppointments(appointments), nil
}

// GetTakenSlots returns the occupancy projection for the same range/barber
// filter. The client filter is exclusive here: a client asks for everyone
// else's bookings to compute their own availability.
func (s *AppointmentService) GetTakenSlots(ctx context.Context, params queryparams.AppointmentParams) ([]dto.CalendarSlotDto, error) {
	appointments, err := s.repo.FindSlotsInRange(ctx, params)
	if err != nil {
		return nil, err
	}
	slots := make([]dto.CalendarSlotDto, 0, len(appointments))
	for _, appt := range appointments {
		slots = append(slots, dto.CalendarSlotDto{DateFrom: appt.StartsAt, DateTo: appt.EndsAt})
	}
	return slots, nil
}

// GetAppointmentByID loads one appointment with related entities attached.
// The eager fetch policy matches ListAppointments; see DESIGN.md.
func (s *AppointmentService) GetAppointmentByID(ctx context.Context, id uint) (*dto.AppointmentDto, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	mapped := dto.MapAppointment(*appointment)
	return &mapped, nil
}

// CreateAppointment persists the booking, reloads it with client and barber
// identities attached and fires the scheduled notification. The notification
// is post-commit and can never fail the request.
func (s *AppointmentService) CreateAppointment(ctx context.Context, input dto.AppointmentDto) (*dto.AppointmentDto, error) {
	if err := ValidateAppointment(input); err != nil {
		return nil, err
	}

	appointment := input.ToModel()
	appointment.ID = 0
	if err := s.repo.Create(ctx, &appointment); err != nil {
		configslog.Log.Error("CreateAppointment: insert failed", zap.Error(err))
		return nil, ErrAppointmentCreationFailed
	}

	reloaded, err := s.repo.FindByID(ctx, appointment.ID)
	if err != nil {
		configslog.Log.Error("CreateAppointment: reload failed", zap.Uint("id", appointment.ID), zap.Error(err))
		return nil, ErrAppointmentCreationFailed
	}

	if s.notifier != nil {
		go s.notifier.AppointmentScheduled(*reloaded)
	}

	configslog.SLog.Infof("appointment created: id=%d barber=%d client=%d", reloaded.ID, reloaded.BarberID, reloaded.ClientID)
	mapped := dto.MapAppointment(*reloaded)
	return &mapped, nil
}

// UpdateAppointment overwrites all mutable fields of an existing row. Full
// replace semantics, no transition validation beyond existence.
func (s *AppointmentService) UpdateAppointment(ctx context.Context, id uint, input dto.AppointmentDto) (*dto.AppointmentDto, error) {
	if err := ValidateAppointment(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	existing.StartsAt = input.StartsAt
	existing.EndsAt = input.EndsAt
	existing.AppointmentTypeID = input.AppointmentTypeID
	existing.AppointmentStatusID = input.AppointmentStatusID
	existing.ClientID = input.ClientID
	existing.BarberID = input.BarberID
	// Drop stale preloaded relations so GORM does not re-save them.
	existing.AppointmentType = models.AppointmentType{}
	existing.AppointmentStatus = models.AppointmentStatus{}
	existing.Client = models.Client{}
	existing.Barber = models.Barber{}

	if err := s.repo.Save(ctx, existing); err != nil {
		configslog.Log.Error("UpdateAppointment: save failed", zap.Uint("id", id), zap.Error(err))
		return nil, ErrAppointmentUpdateFailed
	}

	mapped := dto.MapAppointment(*existing)
	return &mapped, nil
}

// CompleteAppointment marks the appointment Completed.
func (s *AppointmentService) CompleteAppointment(ctx context.Context, id uint) error {
	return s.transition(ctx, id, models.StatusNameCompleted)
}

// CancelAppointment marks the appointment Canceled.
func (s *AppointmentService) CancelAppointment(ctx context.Context, id uint) error {
	return s.transition(ctx, id, models.StatusNameCanceled)
}

// transition resolves the target status row by its fixed name and assigns
// it. Any current status is allowed to move to any other; only existence of
// the appointment and of the status row is checked.
func (s *AppointmentService) transition(ctx context.Context, id uint, statusName string) error {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		return err
	}

	status, err := s.lookups.FindStatusByName(ctx, statusName)
	if err != nil {
		configslog.Log.Error("transition: status lookup failed", zap.String("status", statusName), zap.Error(err))
		return ErrApptStatusUnknown
	}

	appointment.AppointmentStatusID = status.ID
	appointment.AppointmentStatus = models.AppointmentStatus{}
	if err := s.repo.Save(ctx, appointment); err != nil {
		configslog.Log.Error("transition: save failed", zap.Uint("id", id), zap.String("status", statusName), zap.Error(err))
		return ErrAppointmentUpdateFailed
	}

	configslog.SLog.Infof("appointment %d moved to %s", id, statusName)
	return nil
}

// DeleteAppointment removes the row. Absent rows surface as not-found so the
// handler can answer 404.
func (s *AppointmentService) DeleteAppointment(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAppointmentNotFound
		}
		configslog.Log.Error("DeleteAppointment: delete failed", zap.Uint("id", id), zap.Error(err))
		return ErrAppointmentDeletionFailed
	}
	configslog.SLog.Infof("appointment deleted: id=%d", id)
	return nil
}

var _ IAppointmentService = (*AppointmentService)(nil)
