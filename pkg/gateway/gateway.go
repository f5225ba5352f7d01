// Package gateway is the HTTP client for the RentWise API. It
// decorates every outbound request with the bearer token, normalizes
// all failures into APIError, and forces a logout when the server
// rejects a token.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rentwise/property-system/pkg/session"
)

// Requests that have not completed within this window fail with a
// transport-level APIError; the gateway never retries.
const defaultTimeout = 15 * time.Second

const fallbackMessage = "something went wrong, please try again"

// APIError is the single failure shape all callers see, regardless of
// whether the failure was produced by the server or the transport.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

// Client talks to the RentWise API. It implements session.API so it can
// back a session.Store directly.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	log            zerolog.Logger
	tokenSource    func() string
	onUnauthorized func()
}

func New(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        log,
	}
}

// SetTokenSource installs the function consulted for the bearer token
// before each request. A nil source or empty token sends the request
// unauthenticated.
func (c *Client) SetTokenSource(fn func() string) {
	c.tokenSource = fn
}

// SetOnUnauthorized installs the hook invoked when a non-auth request
// comes back 401, meaning the held token is no longer valid. Wire the
// session store's Logout here.
func (c *Client) SetOnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// --- session.API ---

type authResponse struct {
	Token string        `json:"token"`
	User  *session.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*session.Credentials, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &resp, true); err != nil {
		return nil, err
	}
	return &session.Credentials{User: resp.User, Token: resp.Token}, nil
}

func (c *Client) Register(ctx context.Context, payload session.RegisterPayload) (*session.Credentials, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", payload, &resp, true); err != nil {
		return nil, err
	}
	return &session.Credentials{User: resp.User, Token: resp.Token}, nil
}

// Logout revokes the token server-side. Counted as an auth attempt so a
// rejected token cannot re-trigger the unauthorized hook from inside a
// logout.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil, true)
}

func (c *Client) CurrentUser(ctx context.Context, token string) (*session.User, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &resp, false); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Ping checks API connectivity via the unauthenticated test endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/auth/test", "", nil, nil, true)
}

// --- Generic resource calls ---

// Get performs an authenticated GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out, false)
}

// Post performs an authenticated POST and decodes the JSON response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, "", body, out, false)
}

// do runs one request/response cycle. token overrides the token source
// when non-empty. authAttempt marks login/registration/logout calls,
// whose 401s mean bad credentials rather than an expired session and
// must not trigger the unauthorized hook.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any, authAttempt bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: fallbackMessage, Details: err.Error()}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Message: fallbackMessage, Details: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if token == "" && c.tokenSource != nil {
		token = c.tokenSource()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := c.responseError(resp)
		if resp.StatusCode == http.StatusUnauthorized && !authAttempt && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &APIError{Message: fallbackMessage, Status: resp.StatusCode, Details: err.Error()}
		}
	}
	return nil
}

func (c *Client) transportError(err error) *APIError {
	msg := err.Error()
	if msg == "" {
		msg = fallbackMessage
	}
	c.log.Warn().Err(err).Msg("request failed in transport")
	return &APIError{Message: msg}
}

// responseError normalizes a failure response. The message falls back
// through the server's "message" field, its "error" field, then the
// generic string.
func (c *Client) responseError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Code    string `json:"code"`
	}
	_ = json.Unmarshal(raw, &body)

	msg := body.Message
	if msg == "" {
		msg = body.Error
	}
	if msg == "" {
		msg = fallbackMessage
	}

	return &APIError{
		Message: msg,
		Status:  resp.StatusCode,
		Code:    body.Code,
		Details: string(raw),
	}
}
