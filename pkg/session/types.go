package session

import (
	"context"
	"errors"
)

// Role determines which routes a session may access. The values mirror
// the server's role enum.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleOwner  Role = "OWNER"
	RoleTenant Role = "TENANT"
)

// User is the client-side projection of an account. It never carries
// credentials.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Credentials is the {user, token} pair returned by the auth API and
// persisted to durable storage between runs.
type Credentials struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// RegisterPayload carries the fields of a registration request.
// ADMIN is rejected before the request leaves the client; the server
// enforces the same rule.
type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// API is the capability set the store needs from an auth backend.
// Implementations: the HTTP gateway and the in-memory Fixture. The
// store never knows which one it holds.
type API interface {
	Login(ctx context.Context, email, password string) (*Credentials, error)
	Register(ctx context.Context, payload RegisterPayload) (*Credentials, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*User, error)
}

// Storage is the durable client-side record of the current session.
// Load returns (nil, nil) when nothing has been stored.
type Storage interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Clear() error
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrRoleNotAllowed     = errors.New("role not allowed")
)
