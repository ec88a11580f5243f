package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/authshell/internal/client/models"
)

// Service endpoints, relative to the API base URL.
const (
	endpointLogin    = "/auth/login"
	endpointRegister = "/auth/register"
	endpointLogout   = "/auth/logout"
	endpointRefresh  = "/auth/refresh"
	endpointProfile  = "/user/profile"
)

// envelope is the uniform response shape of every identity endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// HTTPClient implements Client over HTTP/JSON.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient constructs a client for the given base URL (e.g.
// "http://127.0.0.1:8080/api"). A zero timeout disables the client-side
// request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do sends one request and decodes the envelope. fallback is the message
// used when the service rejects the request without supplying one.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body any, fallback string) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Message: fmt.Sprintf("encode request: %v", err), Err: err}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &TransportError{Message: fmt.Sprintf("build request: %v", err), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &TransportError{Message: fmt.Sprintf("decode response: %v", err), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fallback
		}
		return nil, &ServiceError{Message: msg}
	}

	return env.Data, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.LoginCredentials) (models.AuthPayload, error) {
	data, err := c.do(ctx, http.MethodPost, endpointLogin, "", creds, "Login failed")
	if err != nil {
		return models.AuthPayload{}, err
	}

	var payload models.AuthPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return models.AuthPayload{}, &TransportError{Message: fmt.Sprintf("decode auth payload: %v", err), Err: err}
	}
	return payload, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.RegisterData) (models.AuthPayload, error) {
	data, err := c.do(ctx, http.MethodPost, endpointRegister, "", reg, "Registration failed")
	if err != nil {
		return models.AuthPayload{}, err
	}

	var payload models.AuthPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return models.AuthPayload{}, &TransportError{Message: fmt.Sprintf("decode auth payload: %v", err), Err: err}
	}
	return payload, nil
}

func (c *HTTPClient) Profile(ctx context.Context, token string) (models.User, error) {
	data, err := c.do(ctx, http.MethodGet, endpointProfile, token, nil, "Failed to fetch profile")
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return models.User{}, &TransportError{Message: fmt.Sprintf("decode user: %v", err), Err: err}
	}
	return user, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, patch models.ProfilePatch) (models.User, error) {
	data, err := c.do(ctx, http.MethodPut, endpointProfile, token, patch, "Profile update failed")
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return models.User{}, &TransportError{Message: fmt.Sprintf("decode user: %v", err), Err: err}
	}
	return user, nil
}

func (c *HTTPClient) Logout(ctx context.Context, token string) error {
	_, err := c.do(ctx, http.MethodPost, endpointLogout, token, nil, "Logout failed")
	return err
}

func (c *HTTPClient) Refresh(ctx context.Context, refreshToken string) (string, error) {
	body := map[string]string{"refreshToken": refreshToken}
	data, err := c.do(ctx, http.MethodPost, endpointRefresh, "", body, "Token refresh failed")
	if err != nil {
		return "", err
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", &TransportError{Message: fmt.Sprintf("decode token: %v", err), Err: err}
	}
	return out.Token, nil
}
