package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

type stubAuthRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = copy.Email
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) CountByRole(_ context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type stubRevoker struct {
	revoked map[string]time.Duration
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (r *stubRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	r.revoked[jti] = ttl
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := r.revoked[jti]
	return ok, nil
}

func newTestService() (*AuthService, *stubAuthRepo, *stubRevoker) {
	repo := newStubAuthRepo()
	revoker := newStubRevoker()
	return NewAuthService(repo, revoker, "secret", time.Hour, 8), repo, revoker
}

func registerInput(email string, role domain.Role) ports.RegisterInput {
	return ports.RegisterInput{Name: "Test User", Email: email, Password: "longenough", Role: role}
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _, _ := newTestService()

	token, user, err := svc.Register(context.Background(), registerInput("Alice@Example.com", domain.RoleTenant))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.PasswordHash == "longenough" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longenough")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleTenant {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_AdminForbidden(t *testing.T) {
	svc, _, _ := newTestService()

	if _, _, err := svc.Register(context.Background(), registerInput("a@example.com", domain.RoleAdmin)); err != domain.ErrRoleNotAllowed {
		t.Fatalf("expected ErrRoleNotAllowed, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), registerInput("a@example.com", "SUPERUSER")); err != domain.ErrRoleNotAllowed {
		t.Fatalf("expected ErrRoleNotAllowed for unknown role, got %v", err)
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	svc, _, _ := newTestService()

	input := registerInput("a@example.com", domain.RoleOwner)
	input.Password = "short"
	if _, _, err := svc.Register(context.Background(), input); err != domain.ErrWeakPassword {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, _, _ := newTestService()

	input := registerInput("", domain.RoleTenant)
	if _, _, err := svc.Register(context.Background(), input); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, repo, _ := newTestService()

	if _, _, err := svc.Register(context.Background(), registerInput("bob@example.com", domain.RoleOwner)); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	before := repo.users["bob@example.com"].PasswordHash

	if _, _, err := svc.Register(context.Background(), registerInput("bob@example.com", domain.RoleTenant)); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if repo.users["bob@example.com"].PasswordHash != before {
		t.Fatalf("existing record was altered by failed register")
	}
	if repo.users["bob@example.com"].Role != domain.RoleOwner {
		t.Fatalf("existing role was altered by failed register")
	}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	svc, _, _ := newTestService()

	if _, _, err := svc.Register(context.Background(), registerInput("carol@example.com", domain.RoleOwner)); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "longenough")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Role != domain.RoleOwner {
		t.Fatalf("expected role %s, got %s", domain.RoleOwner, user.Role)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != string(domain.RoleOwner) {
		t.Fatalf("expected role claim %s, got %v", domain.RoleOwner, claims["role"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatalf("expected jti claim")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("expected exp claim: %v", err)
	}
	if remaining := time.Until(exp.Time); remaining <= 0 || remaining > time.Hour {
		t.Fatalf("unexpected token lifetime: %v", remaining)
	}
}

func TestAuthService_Login_NoEnumeration(t *testing.T) {
	svc, _, _ := newTestService()

	if _, _, err := svc.Register(context.Background(), registerInput("dave@example.com", domain.RoleTenant)); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpassword")
	_, _, noUser := svc.Login(context.Background(), "ghost@example.com", "badpassword")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if noUser != wrongPass {
		t.Fatalf("login errors differ: %v vs %v", wrongPass, noUser)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, _, revoker := newTestService()

	token, _, err := svc.Register(context.Background(), registerInput("erin@example.com", domain.RoleTenant))
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(revoker.revoked) != 1 {
		t.Fatalf("expected one revoked jti, got %d", len(revoker.revoked))
	}
	for jti, ttl := range revoker.revoked {
		if jti == "" {
			t.Fatalf("empty jti revoked")
		}
		if ttl <= 0 || ttl > time.Hour {
			t.Fatalf("unexpected revocation ttl: %v", ttl)
		}
	}

	// Second logout with the same token revokes the same jti again.
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("repeat logout failed: %v", err)
	}
}

func TestAuthService_Logout_InvalidToken(t *testing.T) {
	svc, _, revoker := newTestService()

	if err := svc.Logout(context.Background(), "not-a-token"); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
	if len(revoker.revoked) != 0 {
		t.Fatalf("nothing should have been revoked")
	}
}
