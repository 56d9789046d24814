package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserEntity represents the user table entity
type UserEntity struct {
	ID        uint64     `db:"id" json:"id"`
	Number    string     `db:"number" json:"number"`
	Name      string     `db:"name" json:"name"`
	Role      string     `db:"role" json:"role"`
	Address   string     `db:"address" json:"address,omitempty"`
	Verified  bool       `db:"verified" json:"verified"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID     uint64
	Number string
}

// SessionClaims are the JWT claims carried by a session token.
type SessionClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest starts (or re-enters) the OTP login flow for a number
type LoginRequest struct {
	Number string `json:"number" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=customer collector admin"`
}

// SendOTPRequest asks for an OTP to be (re)sent to a registered number
type SendOTPRequest struct {
	Number string `json:"number" validate:"required"`
}

// VerifyOTPRequest carries only the code; the number is resolved from it
type VerifyOTPRequest struct {
	OTP string `json:"otp" validate:"required,len=4,numeric"`
}

// UserSummary is the user shape returned by the auth and profile flows
type UserSummary struct {
	ID       uint64 `json:"id"`
	Number   string `json:"number"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Address  string `json:"address,omitempty"`
	Verified bool   `json:"verified"`
	Token    string `json:"token,omitempty"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

type SendOTPResponse struct {
	Message string `json:"message"`
}

type VerifyOTPResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// EditProfileRequest updates the caller's profile; empty fields are kept
type EditProfileRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type UpdateAddressRequest struct {
	Address string `json:"address" validate:"required"`
}
