package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Fixture is an in-memory API implementation for local development and
// tests. It mirrors the server's observable behaviour: duplicate emails
// are rejected, login failures are undifferentiated, and logout
// invalidates the token.
type Fixture struct {
	mu     sync.Mutex
	users  map[string]fixtureUser // keyed by lowercased email
	tokens map[string]string      // token → email
	nextID int
}

type fixtureUser struct {
	user     User
	password string
}

func NewFixture() *Fixture {
	return &Fixture{
		users:  make(map[string]fixtureUser),
		tokens: make(map[string]string),
	}
}

// AddUser seeds an account without going through Register, so fixtures
// can hold ADMIN users too.
func (f *Fixture) AddUser(name, email, password string, role Role) *User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addLocked(name, email, password, role)
}

func (f *Fixture) addLocked(name, email, password string, role Role) *User {
	f.nextID++
	user := User{
		ID:    fmt.Sprintf("user-%d", f.nextID),
		Name:  name,
		Email: strings.ToLower(strings.TrimSpace(email)),
		Role:  role,
	}
	f.users[user.Email] = fixtureUser{user: user, password: password}
	return &user
}

func (f *Fixture) Login(_ context.Context, email, password string) (*Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fu, ok := f.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok || fu.password != password {
		return nil, ErrInvalidCredentials
	}
	return f.issueLocked(fu.user), nil
}

func (f *Fixture) Register(_ context.Context, payload RegisterPayload) (*Credentials, error) {
	if payload.Role == RoleAdmin || (payload.Role != RoleOwner && payload.Role != RoleTenant) {
		return nil, ErrRoleNotAllowed
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if _, exists := f.users[email]; exists {
		return nil, ErrUserExists
	}
	user := f.addLocked(payload.Name, email, payload.Password, payload.Role)
	return f.issueLocked(*user), nil
}

func (f *Fixture) Logout(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, token)
	return nil
}

func (f *Fixture) CurrentUser(_ context.Context, token string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	email, ok := f.tokens[token]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	fu := f.users[email]
	user := fu.user
	return &user, nil
}

func (f *Fixture) issueLocked(user User) *Credentials {
	token := fmt.Sprintf("fixture-token-%s-%d", user.ID, len(f.tokens)+1)
	f.tokens[token] = user.Email
	u := user
	return &Credentials{User: &u, Token: token}
}
