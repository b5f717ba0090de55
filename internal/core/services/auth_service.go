package services

import (
	"context"
	"errors"
	"log"

	"mnp-portal/internal/adapters/persistence/models"
	"mnp-portal/internal/adapters/persistence/repositories"
	"mnp-portal/internal/config"
	"mnp-portal/internal/core/domain"
	"mnp-portal/internal/pkg/jwt"
	"mnp-portal/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register registers a new user and returns a session token
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (string, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrUserAlreadyExists
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := jwt.GenerateToken(user.ID, s.cfg.JWT.Secret)
	if err != nil {
		return "", err
	}

	log.Printf("User registered: %s", user.Email)

	return token, nil
}

// Login authenticates a user and returns a fresh session token.
// Previously issued tokens stay valid until their own expiry.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	if !password.Verify(input.Password, user.Password) {
		return "", domain.ErrInvalidCredentials
	}

	return jwt.GenerateToken(user.ID, s.cfg.JWT.Secret)
}

// ResolveUser resolves a validated token subject to a live user record
func (s *AuthService) ResolveUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
