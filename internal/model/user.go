package model

import "time"

// User represents a user account in the database.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest carries the refresh token presented to obtain a new access token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UserResponse represents user data safe for API responses (no password hash).
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// TokenPairResponse represents a successful login: a short-lived access token
// plus a long-lived refresh token.
type TokenPairResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// AccessTokenResponse represents a refreshed access token.
type AccessTokenResponse struct {
	Token string `json:"token"`
}
