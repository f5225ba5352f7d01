package handler

import "github.com/rentwise/property-system/internal/core/domain"

// ADMIN is deliberately absent from the oneof set: admin accounts are
// provisioned out-of-band. The service enforces this again.
type registerRequest struct {
	Name        string `json:"name"         validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required"`
	Role        string `json:"role"         validate:"required,oneof=OWNER TENANT"`
	DocumentURL string `json:"document_url"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
