package service

import (
	"context"

	"go-event-booking/internal/model"
	"go-event-booking/internal/repository"
	apperrors "go-event-booking/pkg/app_errors"
	"go-event-booking/pkg/password"
	"go-event-booking/pkg/token"
)

type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
}

type AuthServiceImpl struct {
	userRepo  repository.UserRepository
	jwtSecret string
}

func NewAuthService(userRepository repository.UserRepository, jwtSecret string) AuthService {
	return &AuthServiceImpl{
		userRepo:  userRepository,
		jwtSecret: jwtSecret,
	}
}

// Register stores a new user with a bcrypt hash of the password. The unique
// index on email turns a racing duplicate into ErrDuplicateEmail.
func (s *AuthServiceImpl) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
	}

	return s.userRepo.Create(ctx, user)
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password produce the same error so callers cannot enumerate users.
func (s *AuthServiceImpl) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Compare(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	signed, err := token.Generate(s.jwtSecret, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Token: signed, User: user}, nil
}
