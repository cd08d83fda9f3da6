package models

import (
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID         int        `json:"id"`
	Username   string     `json:"username"`
	Password   string     `json:"password,omitempty"`
	FullName   string     `json:"full_name"`
	Address    string     `json:"address"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email,omitempty"`
	Role       string     `json:"role"`
	ItemsCount int        `json:"items_count,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// Caller is the authenticated identity attached to a request, or nil
// when the request carries no valid session.
type Caller struct {
	ID   int    `json:"id"`
	Role string `json:"role"`
}

type Claims struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Session struct {
	UserID       int       `json:"user_id"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileUpdateRequest enumerates exactly the fields a user may change on
// their own account. Role and username are deliberately absent.
type ProfileUpdateRequest struct {
	FullName        string `json:"full_name"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
}

type RoleUpdateRequest struct {
	Role string `json:"role"`
}
