// Package identity is a typed client for the hosted auth provider
// (GoTrue-style REST API). It covers the four operations this service
// delegates: sign-up, password sign-in, session refresh and the
// service-role user delete used for signup rollback.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Provider rejection outcomes, distinguishable from transport faults so
// the service layer can map them to its own error taxonomy.
var (
	// ErrInvalidGrant is returned when the provider rejects the
	// presented credentials or refresh token.
	ErrInvalidGrant = errors.New("identity: credentials rejected by provider")
	// ErrUserNotFound is returned by AdminDeleteUser when the user is
	// already absent.
	ErrUserNotFound = errors.New("identity: user not found")
)

// IsInvalidGrant reports whether err is (or wraps) ErrInvalidGrant.
func IsInvalidGrant(err error) bool {
	return errors.Is(err, ErrInvalidGrant)
}

// IsUserNotFound reports whether err is (or wraps) ErrUserNotFound.
func IsUserNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// User is the provider's account record.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Session is a token pair issued by the provider.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResult is the outcome of a sign-up or sign-in call. Either field
// may be nil: sign-up without auto-confirm yields a user but no
// session.
type AuthResult struct {
	User    *User
	Session *Session
}

// API is the provider surface the services depend on.
type API interface {
	SignUp(ctx context.Context, email, password string) (*AuthResult, error)
	SignInWithPassword(ctx context.Context, email, password string) (*AuthResult, error)
	RefreshSession(ctx context.Context, refreshToken string) (*AuthResult, error)
	AdminDeleteUser(ctx context.Context, userID uuid.UUID) error
}

// Client talks JSON over HTTP to the provider using the service-role
// key, which bypasses row-level security. Construct it once in the
// composition root and inject it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	serviceKey string
}

var _ API = (*Client)(nil)

// NewClient creates a provider client for the given base URL and
// service-role key.
func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:    baseURL,
		serviceKey: serviceKey,
	}
}

// authPayload covers both response shapes the provider uses: a session
// with a nested user, or a bare user object when no session is issued.
type authPayload struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`

	ID    string `json:"id"`
	Email string `json:"email"`
}

func (p *authPayload) toResult() (*AuthResult, error) {
	result := &AuthResult{}

	if p.AccessToken != "" {
		result.Session = &Session{
			AccessToken:  p.AccessToken,
			TokenType:    p.TokenType,
			ExpiresIn:    p.ExpiresIn,
			RefreshToken: p.RefreshToken,
		}
	}

	switch {
	case p.User != nil:
		result.User = p.User
	case p.ID != "":
		id, err := uuid.Parse(p.ID)
		if err != nil {
			return nil, fmt.Errorf("identity: malformed user id %q: %w", p.ID, err)
		}
		result.User = &User{ID: id, Email: p.Email}
	}

	return result, nil
}

// SignUp creates a provider user with email and password.
func (c *Client) SignUp(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	var payload authPayload
	if err := c.doJSON(ctx, http.MethodPost, "/auth/v1/signup", body, &payload); err != nil {
		return nil, err
	}
	return payload.toResult()
}

// SignInWithPassword authenticates with the password grant.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	var payload authPayload
	if err := c.doJSON(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", body, &payload); err != nil {
		return nil, err
	}
	return payload.toResult()
}

// RefreshSession exchanges a refresh token for a new token pair.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*AuthResult, error) {
	body := map[string]string{"refresh_token": refreshToken}

	var payload authPayload
	if err := c.doJSON(ctx, http.MethodPost, "/auth/v1/token?grant_type=refresh_token", body, &payload); err != nil {
		return nil, err
	}
	return payload.toResult()
}

// AdminDeleteUser removes a provider user by id. Requires the
// service-role key. Returns ErrUserNotFound if the user is already
// absent.
func (c *Client) AdminDeleteUser(ctx context.Context, userID uuid.UUID) error {
	path := "/auth/v1/admin/users/" + userID.String()
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// doJSON executes one JSON request against the provider.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("identity: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("identity: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.errorFromResponse(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("identity: failed to decode response: %w", err)
		}
	}
	return nil
}

// providerError is the provider's error body; older and newer API
// versions use different field names.
type providerError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e *providerError) text() string {
	for _, s := range []string{e.ErrorDescription, e.Msg, e.Message, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	respBody, _ := io.ReadAll(resp.Body)

	var perr providerError
	_ = json.Unmarshal(respBody, &perr)

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrUserNotFound, perr.text())
	}

	// Auth-grant rejections come back as 400/401/403/422 depending on
	// the provider version.
	isGrantCall := resp.Request != nil && resp.Request.Method == http.MethodPost
	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusUnprocessableEntity:
		if isGrantCall {
			return fmt.Errorf("%w: %s", ErrInvalidGrant, perr.text())
		}
	}

	return fmt.Errorf("identity: provider returned status %d: %s", resp.StatusCode, perr.text())
}
