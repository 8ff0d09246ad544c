package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"sharpcut.app/configs"
	"sharpcut.app/configs/configslog"
	"sharpcut.app/models"
	"sharpcut.app/pkg/token"
	"sharpcut.app/repositories"
)

type AccountServiceError string

func (e AccountServiceError) Error() string { return string(e) }

const (
	ErrAccountInvalidCredentials AccountServiceError = "invalid email or password"
	ErrAccountEmailTaken         AccountServiceError = "email is already registered"
	ErrAccountInvalidInput       AccountServiceError = "invalid account data"
	ErrAccountPasswordTooShort   AccountServiceError = "password must be at least 6 characters"
)

// RegisterInput is the registration payload.
type RegisterInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// AuthResult carries the issued token and the identity it was issued for.
type AuthResult struct {
	Token    string `json:"token"`
	UserID   uint   `json:"userId"`
	ClientID uint   `json:"clientId,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// IAccountService registers users and issues API tokens.
type IAccountService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

type AccountService struct {
	users repositories.IUserRepository
}

func NewAccountService() IAccountService {
	return &AccountService{users: repositories.NewUserRepository()}
}

// Register creates the identity plus its client wrapper and returns a token.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || input.FirstName == "" {
		return nil, fmt.Errorf("%w: first name and email are required", ErrAccountInvalidInput)
	}
	if len(input.Password) < 6 {
		return nil, ErrAccountPasswordTooShort
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, ErrAccountEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Register: password hashing failed", zap.Error(err))
		return nil, err
	}

	user := models.AppUser{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: string(hash),
	}
	client, err := s.users.CreateWithClient(ctx, &user)
	if err != nil {
		return nil, err
	}

	configslog.SLog.Infof("user registered: id=%d email=%s", user.ID, user.Email)
	return s.issue(user, client.ID)
}

// Login verifies the credentials and returns a token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAccountInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrAccountInvalidCredentials
	}

	var clientID uint
	if client, err := s.users.FindClientByUserID(ctx, user.ID); err == nil {
		clientID = client.ID
	}
	return s.issue(*user, clientID)
}

func (s *AccountService) issue(user models.AppUser, clientID uint) (*AuthResult, error) {
	signed, err := token.Generate(configs.JWTSecret(), user.ID, user.Email, user.FullName(), configs.JWTLifetime())
	if err != nil {
		configslog.Log.Error("token signing failed", zap.Uint("userID", user.ID), zap.Error(err))
		return nil, err
	}
	return &AuthResult{
		Token:    signed,
		UserID:   user.ID,
		ClientID: clientID,
		Name:     user.FullName(),
		Email:    user.Email,
	}, nil
}

var _ IAccountService = (*AccountService)(nil)
