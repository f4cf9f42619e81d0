package service

import (
	"context"
	"errors"
	"time"

	"github.com/recetario/recetario-go/internal/crypto"
	"github.com/recetario/recetario-go/internal/model"
	"github.com/recetario/recetario-go/internal/repository"
)

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUsernameRequired    = errors.New("username is required")
	ErrPasswordRequired    = errors.New("password is required")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrRefreshTokenMissing = errors.New("refresh token is required")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// AuthService handles registration, login and token refresh.
type AuthService struct {
	repo          *repository.UserRepository
	jwtSecret     string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewAuthService creates a new AuthService. Access and refresh tokens are
// signed with distinct secrets.
func NewAuthService(repo *repository.UserRepository, jwtSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		repo:          repo,
		jwtSecret:     jwtSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// Register creates a new user account. No tokens are issued at
// registration; the client logs in afterwards.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.UserResponse, error) {
	if req.Username == "" {
		return model.UserResponse{}, ErrUsernameRequired
	}
	if req.Password == "" {
		return model.UserResponse{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return model.UserResponse{}, ErrUsernameTaken
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

// Login authenticates a user and returns an access/refresh token pair.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.TokenPairResponse, error) {
	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.TokenPairResponse{}, ErrInvalidCredentials
		}
		return model.TokenPairResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.TokenPairResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, s.jwtSecret, s.accessTTL)
	if err != nil {
		return model.TokenPairResponse{}, err
	}

	refreshToken, err := crypto.GenerateToken(user.ID, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return model.TokenPairResponse{}, err
	}

	return model.TokenPairResponse{
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh verifies a refresh token and issues a new access token carrying
// the same user identity. The refresh token itself is not rotated; it stays
// valid until its natural expiry.
func (s *AuthService) Refresh(req model.RefreshRequest) (model.AccessTokenResponse, error) {
	if req.RefreshToken == "" {
		return model.AccessTokenResponse{}, ErrRefreshTokenMissing
	}

	claims, err := crypto.ValidateToken(req.RefreshToken, s.refreshSecret)
	if err != nil {
		return model.AccessTokenResponse{}, ErrInvalidRefreshToken
	}

	token, err := crypto.GenerateToken(claims.UserID, s.jwtSecret, s.accessTTL)
	if err != nil {
		return model.AccessTokenResponse{}, err
	}

	return model.AccessTokenResponse{Token: token}, nil
}
