package service

import (
	"context"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/printhaus/shopapi/internal/config"
	"github.com/printhaus/shopapi/internal/domain"
	"github.com/printhaus/shopapi/internal/repository"
	"github.com/printhaus/shopapi/pkg/errors"
)

// LoginResult is the successful login response.
type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type authService struct {
	repos  *repository.Repositories
	cfg    config.AuthConfig
	logger *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(repos *repository.Repositories, cfg config.AuthConfig, logger *zap.Logger) *authService {
	return &authService{
		repos:  repos,
		cfg:    cfg,
		logger: logger,
	}
}

// Login verifies credentials and issues a signed token. Unknown email and bad
// password are reported identically so the endpoint does not leak which
// accounts exist.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repos.User.GetByEmail(ctx, email)
	if err != nil {
		return nil, &errors.ErrUnauthorized{Message: "invalid email or password"}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Warn("Failed login attempt", zap.String("email", email))
		return nil, &errors.ErrUnauthorized{Message: "invalid email or password"}
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}

func (s *authService) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.Hex(),
		"role": user.Role,
		"exp":  time.Now().Add(s.cfg.TokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}

// ChangePassword verifies the current password and stores a new hash.
func (s *authService) ChangePassword(ctx context.Context, user *domain.User, current, next string) error {
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return &errors.ErrUnauthorized{Message: "current password is incorrect"}
	}
	if len(next) < 8 {
		return &errors.ErrValidation{Message: "password must be at least 8 characters"}
	}

	hash, err := HashPassword(next)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	if err := s.repos.User.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info("Password changed", zap.String("email", user.Email))
	return nil
}

// ChangeEmail verifies the password and moves the account to a new address.
func (s *authService) ChangeEmail(ctx context.Context, user *domain.User, password, newEmail string) error {
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return &errors.ErrUnauthorized{Message: "password is incorrect"}
	}
	if newEmail == "" {
		return &errors.ErrValidation{Message: "email is required"}
	}
	if _, err := s.repos.User.GetByEmail(ctx, newEmail); err == nil {
		return &errors.ErrValidation{Message: "email is already in use"}
	}

	old := user.Email
	user.Email = newEmail
	if err := s.repos.User.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info("Email changed", zap.String("from", old), zap.String("to", newEmail))
	return nil
}

// HashPassword hashes a password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
