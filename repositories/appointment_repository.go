package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sharpcut.app/configs/configsdatabase"
	"sharpcut.app/configs/configslog"
	"sharpcut.app/models"
	"sharpcut.app/pkg/queryparams"
)

// IAppointmentRepository is the persistence surface of the appointment
// aggregate.
type IAppointmentRepository interface {
	FindInRange(ctx context.Context, params queryparams.AppointmentParams) ([]models.Appointment, error)
	FindSlotsInRange(ctx context.Context, params queryparams.AppointmentParams) ([]models.Appointment, error)
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) error
	Save(ctx context.Context, appointment *models.Appointment) error
	Delete(ctx context.Context, id uint) error
}

// AppointmentRepository implements IAppointmentRepository over GORM.
type AppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository builds a repository on the shared connection.
func NewAppointmentRepository() IAppointmentRepository {
	return &AppointmentRepository{db: configsdatabase.GetDB()}
}

// NewAppointmentRepositoryWithDB builds a repository on an explicit
// connection (transactions, tests).
func NewAppointmentRepositoryWithDB(db *gorm.DB) IAppointmentRepository {
	return &AppointmentRepository{db: db}
}

// rangeQuery composes the shared date-range and barber-set filter. The
// client-id filter polarity differs between callers and is applied there.
func (r *AppointmentRepository) rangeQuery(ctx context.Context, params queryparams.AppointmentParams) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("starts_at >= ? AND starts_at <= ?", params.DateFrom, params.DateTo)
	if len(params.BarberIDs) > 0 {
		query = query.Where("barber_id IN ?", params.BarberIDs)
	}
	return query
}

// FindInRange returns appointments whose start falls inside the range, with
// related entities eagerly attached, ascending by start. The client filter is
// inclusive.
func (r *AppointmentRepository) FindInRange(ctx context.Context, params queryparams.AppointmentParams) ([]models.Appointment, error) {
	query := r.rangeQuery(ctx, params)
	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}

	var appointments []models.Appointment
	err := query.
		Preload("AppointmentType").
		Preload("AppointmentStatus").
		Preload("Client.AppUser").
		Preload("Barber.AppUser").
		Order("starts_at asc").
		Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindInRange: db error", zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

// FindSlotsInRange returns the occupancy rows for the taken-slots
// projection. The client filter is exclusive: everyone except that client.
// No relations are loaded, only the time columns matter to the caller.
func (r *AppointmentRepository) FindSlotsInRange(ctx context.Context, params queryparams.AppointmentParams) ([]models.Appointment, error) {
	query := r.rangeQuery(ctx, params)
	if params.ClientID != nil {
		query = query.Where("client_id <> ?", *params.ClientID)
	}

	var appointments []models.Appointment
	err := query.
		Select("id", "starts_at", "ends_at").
		Order("starts_at asc").
		Find(&appointments).Error
	if err != nil {
		configslog.Log.Error("AppointmentRepository.FindSlotsInRange: db error", zap.Error(err))
		return nil, err
	}
	return appointments, nil
}

// FindByID loads one appointment with its related entities attached.
func (r *AppointmentRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var appointment models.Appointment
	err := r.db.WithContext(ctx).
		Preload("AppointmentType").
		Preload("AppointmentStatus").
		Preload("Client.AppUser").
		Preload("Barber.AppUser").
		First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("AppointmentRepository.FindByID: db error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &appointment, nil
}

// Create inserts the appointment. Zero affected rows is surfaced as an error
// so the service can fail the request flatly.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil {
		return errors.New("appointment is nil")
	}
	result := r.db.WithContext(ctx).Create(appointment)
	if result.Error != nil {
		configslog.Log.Error("AppointmentRepository.Create: db error", zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("no rows affected on insert")
	}
	return nil
}

// Save persists all fields of an existing appointment.
func (r *AppointmentRepository) Save(ctx context.Context, appointment *models.Appointment) error {
	if appointment == nil || appointment.ID == 0 {
		return errors.New("appointment to save is not valid")
	}
	return r.db.WithContext(ctx).Save(appointment).Error
}

// Delete removes the row. Hard delete, per the delete contract: a subsequent
// FindByID must see nothing.
func (r *AppointmentRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrNotFound
	}
	result := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if result.Error != nil {
		configslog.Log.Error("AppointmentRepository.Delete: db error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IAppointmentRepository = (*AppointmentRepository)(nil)
