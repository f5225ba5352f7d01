package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rentwise/property-system/pkg/session"
)

func TestClient_Login_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Fatalf("login must not carry a bearer token")
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Fatalf("expected request id header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-1","user":{"id":"u1","name":"Alice","email":"a@example.com","role":"OWNER"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, zerolog.Nop())
	creds, err := c.Login(context.Background(), "a@example.com", "longenough")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if creds.Token != "tok-1" || creds.User == nil || creds.User.Role != session.RoleOwner {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestClient_AttachesBearerFromTokenSource(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, zerolog.Nop())
	c.SetTokenSource(func() string { return "tok-xyz" })

	var out []any
	if err := c.Get(context.Background(), "/api/maintenance", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if gotAuth != "Bearer tok-xyz" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestClient_NoToken_SendsUnauthenticated(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, zerolog.Nop())
	c.SetTokenSource(func() string { return "" })

	var out map[string]any
	if err := c.Get(context.Background(), "/api/maintenance", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no authorization header, got %q", gotAuth)
	}
}

func TestClient_ErrorMessagePriority(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"message field wins", `{"message":"from message","error":"from error"}`, "from message"},
		{"error field next", `{"error":"from error"}`, "from error"},
		{"generic fallback", `not json at all`, fallbackMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := New(srv.URL, zerolog.Nop())
			err := c.Get(context.Background(), "/api/payments", nil)

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected APIError, got %v", err)
			}
			if apiErr.Message != tc.want {
				t.Fatalf("expected message %q, got %q", tc.want, apiErr.Message)
			}
			if apiErr.Status != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", apiErr.Status)
			}
		})
	}
}

func TestClient_UnauthorizedHook_FiresOncePerResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid token"}`))
	}))
	defer srv.Close()

	calls := 0
	c := New(srv.URL, zerolog.Nop())
	c.SetOnUnauthorized(func() { calls++ })

	if err := c.Get(context.Background(), "/api/dashboard", nil); err == nil {
		t.Fatalf("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected exactly one hook call, got %d", calls)
	}
}

func TestClient_UnauthorizedHook_SkippedForAuthAttempts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid credentials"}`))
	}))
	defer srv.Close()

	calls := 0
	c := New(srv.URL, zerolog.Nop())
	c.SetOnUnauthorized(func() { calls++ })

	if _, err := c.Login(context.Background(), "a@example.com", "bad"); err == nil {
		t.Fatalf("expected login error")
	}
	if err := c.Logout(context.Background(), "stale-token"); err == nil {
		t.Fatalf("expected logout error")
	}
	if calls != 0 {
		t.Fatalf("auth attempts must not trigger the hook, got %d calls", calls)
	}
}

func TestClient_TransportErrorNormalized(t *testing.T) {
	// Point at a server that is not listening.
	c := New("http://127.0.0.1:1", zerolog.Nop())

	err := c.Ping(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message == "" {
		t.Fatalf("expected transport error text in message")
	}
	if apiErr.Status != 0 {
		t.Fatalf("transport errors carry no HTTP status, got %d", apiErr.Status)
	}
}

func TestClient_BacksSessionStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/login":
			_, _ = w.Write([]byte(`{"token":"tok-2","user":{"id":"u2","name":"Bob","email":"b@example.com","role":"TENANT"}}`))
		case "/api/auth/logout":
			_, _ = w.Write([]byte(`{"message":"logged out"}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, zerolog.Nop())
	store := session.NewStore(c, session.NewFileStorage(t.TempDir()), zerolog.Nop())
	c.SetTokenSource(store.Token)

	store.Hydrate()
	snap, err := store.Login(context.Background(), "b@example.com", "longenough")
	if err != nil {
		t.Fatalf("login through gateway failed: %v", err)
	}
	if !snap.Authenticated || snap.Token != "tok-2" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	snap = store.Logout(context.Background())
	if snap.Authenticated {
		t.Fatalf("expected logged out")
	}
}
