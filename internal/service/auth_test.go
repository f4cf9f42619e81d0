package service

import (
	"context"
	"testing"
	"time"

	"github.com/recetario/recetario-go/internal/crypto"
	"github.com/recetario/recetario-go/internal/model"
	"github.com/recetario/recetario-go/internal/repository"
)

func newTestAuthService() *AuthService {
	return NewAuthService(
		repository.NewUserRepository(nil),
		"test-access-secret",
		"test-refresh-secret",
		time.Hour,
		7*24*time.Hour,
	)
}

func TestRegister_EmptyUsername(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "",
		Password: "password123",
	})

	if err != ErrUsernameRequired {
		t.Errorf("expected ErrUsernameRequired, got %v", err)
	}
}

func TestRegister_EmptyPassword(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "ana",
		Password: "",
	})

	if err != ErrPasswordRequired {
		t.Errorf("expected ErrPasswordRequired, got %v", err)
	}
}

func TestRefresh_EmptyToken(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Refresh(model.RefreshRequest{RefreshToken: ""})

	if err != ErrRefreshTokenMissing {
		t.Errorf("expected ErrRefreshTokenMissing, got %v", err)
	}
}

func TestRefresh_InvalidToken(t *testing.T) {
	svc := newTestAuthService()

	_, err := svc.Refresh(model.RefreshRequest{RefreshToken: "garbage"})

	if err != ErrInvalidRefreshToken {
		t.Errorf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRefresh_AccessTokenRejected(t *testing.T) {
	svc := newTestAuthService()

	// An access token must not be usable as a refresh token: the secrets
	// are distinct.
	accessToken, err := crypto.GenerateToken(7, "test-access-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	_, err = svc.Refresh(model.RefreshRequest{RefreshToken: accessToken})
	if err != ErrInvalidRefreshToken {
		t.Errorf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRefresh_IssuesAccessTokenForSameUser(t *testing.T) {
	svc := newTestAuthService()
	userID := int64(7)

	refreshToken, err := crypto.GenerateToken(userID, "test-refresh-secret", 7*24*time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	resp, err := svc.Refresh(model.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		t.Fatalf("Refresh() unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("Refresh() returned empty access token")
	}

	claims, err := crypto.ValidateToken(resp.Token, "test-access-secret")
	if err != nil {
		t.Fatalf("issued access token failed validation: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("access token UserID = %d, want %d", claims.UserID, userID)
	}
}

func TestRefresh_ExpiredRefreshToken(t *testing.T) {
	svc := newTestAuthService()

	expired, err := crypto.GenerateToken(7, "test-refresh-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	_, err = svc.Refresh(model.RefreshRequest{RefreshToken: expired})
	if err != ErrInvalidRefreshToken {
		t.Errorf("expected ErrInvalidRefreshToken, got %v", err)
	}
}
