package dto

import "github.com/skillmarket/skillmarket-api/internal/models"

// SignUpRequest describes the payload for registering a new account.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Role     string `json:"role" validate:"omitempty,oneof=student instructor admin"`
}

// SignInRequest describes the credentials payload for signing in.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignInResponse carries the authenticated profile and its bearer token.
type SignInResponse struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}
