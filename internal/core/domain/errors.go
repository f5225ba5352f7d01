package domain

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that login failures never reveal whether an account
	// exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidInput = errors.New("invalid registration details")

	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")

	ErrWeakPassword   = errors.New("password does not meet the minimum length")
	ErrRoleNotAllowed = errors.New("role not allowed")

	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token has been revoked")

	ErrForbidden = errors.New("access forbidden")
)
