package repositories

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sharpcut.app/configs/configsdatabase"
	"sharpcut.app/configs/configslog"
	"sharpcut.app/models"
)

// ILookupRepository serves the read-only reference tables of the scheduling
// subsystem.
type ILookupRepository interface {
	FindStatusByName(ctx context.Context, name string) (*models.AppointmentStatus, error)
	ListStatuses(ctx context.Context) ([]models.AppointmentStatus, error)
	ListTypes(ctx context.Context) ([]models.AppointmentType, error)
}

type LookupRepository struct {
	db *gorm.DB
}

func NewLookupRepository() ILookupRepository {
	return &LookupRepository{db: configsdatabase.GetDB()}
}

func NewLookupRepositoryWithDB(db *gorm.DB) ILookupRepository {
	return &LookupRepository{db: db}
}

// FindStatusByName resolves a status row by its fixed name, used by the
// Complete/Cancel transitions.
func (r *LookupRepository) FindStatusByName(ctx context.Context, name string) (*models.AppointmentStatus, error) {
	var status models.AppointmentStatus
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&status).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("LookupRepository.FindStatusByName: db error", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return &status, nil
}

func (r *LookupRepository) ListStatuses(ctx context.Context) ([]models.AppointmentStatus, error) {
	var statuses []models.AppointmentStatus
	err := r.db.WithContext(ctx).Order("id asc").Find(&statuses).Error
	return statuses, err
}

func (r *LookupRepository) ListTypes(ctx context.Context) ([]models.AppointmentType, error) {
	var types []models.AppointmentType
	err := r.db.WithContext(ctx).Order("name asc").Find(&types).Error
	return types, err
}

var _ ILookupRepository = (*LookupRepository)(nil)
