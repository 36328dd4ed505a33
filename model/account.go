package model

import "time"

// AccountEntity represents the account table entity.
type AccountEntity struct {
	ID                uint64     `db:"id" json:"id"`
	Email             string     `db:"email" json:"email"`
	PasswordHash      string     `db:"password_hash" json:"-"`
	Subscription      string     `db:"subscription" json:"subscription"`
	Token             *string    `db:"token" json:"-"`
	VerificationToken *string    `db:"verification_token" json:"-"`
	Verify            bool       `db:"verify" json:"verify"`
	AvatarURL         *string    `db:"avatar_url" json:"avatar_url,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// AccountFilter for querying accounts
type AccountFilter struct {
	ID    uint64
	Email string
}

// RegisterRequest for account registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest for account login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResendVerificationRequest for re-sending the verification email
type ResendVerificationRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AccountResponse is the public projection of an account. Password and
// tokens are never part of it.
type AccountResponse struct {
	Email        string `json:"email"`
	Subscription string `json:"subscription"`
}

type RegisterResponse struct {
	Message string          `json:"message"`
	User    AccountResponse `json:"user"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}

// MessageResponse is a plain message body.
type MessageResponse struct {
	Message string `json:"message"`
}
