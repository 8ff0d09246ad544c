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

// IUserRepository handles identities and their client wrappers.
type IUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.AppUser, error)
	FindByID(ctx context.Context, id uint) (*models.AppUser, error)
	CreateWithClient(ctx context.Context, user *models.AppUser) (*models.Client, error)
	FindClientByUserID(ctx context.Context, userID uint) (*models.Client, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository() IUserRepository {
	return &UserRepository{db: configsdatabase.GetDB()}
}

func NewUserRepositoryWithDB(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.AppUser, error) {
	var user models.AppUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByEmail: db error", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.AppUser, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var user models.AppUser
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByID: db error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

// CreateWithClient registers the identity and its client wrapper in one
// transaction, so a user can never exist without a bookable client row.
func (r *UserRepository) CreateWithClient(ctx context.Context, user *models.AppUser) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		client = models.Client{AppUserID: user.ID}
		return tx.Create(&client).Error
	})
	if err != nil {
		configslog.Log.Error("UserRepository.CreateWithClient: db error", zap.Error(err))
		return nil, err
	}
	client.AppUser = *user
	return &client, nil
}

func (r *UserRepository) FindClientByUserID(ctx context.Context, userID uint) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).Preload("AppUser").Where("app_user_id = ?", userID).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindClientByUserID: db error", zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return &client, nil
}

var _ IUserRepository = (*UserRepository)(nil)
