// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-service/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig holds the connection settings for the HTTP auth client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpAuthClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPAuthClient constructs an HTTP/REST implementation of [AuthClient].
// It normalises and validates cfg.BaseURL and configures the underlying
// resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL cannot be parsed as a valid URL.
func NewHTTPAuthClient(cfg HTTPClientConfig) (AuthClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid auth client base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpAuthClient{client: cli}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [AuthClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpAuthClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [AuthClient]. It returns the session token currently held
// by the client, or an empty string if none has been set.
func (h *httpAuthClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [AuthClient]. It POSTs the credentials to
// POST /api/user/register and returns the server's confirmation message.
// Returns [ErrConflict] (wrapped) on HTTP 409.
func (h *httpAuthClient) Register(ctx context.Context, credentials models.Credentials) (models.Message, error) {
	var message models.Message

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&message).
		Post("/api/user/register")
	if err != nil {
		return models.Message{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	return message, nil
}

// Login implements [AuthClient]. It POSTs the credentials to
// POST /api/user/login. On success the session token is extracted from the
// Authorization response header and stored via SetToken. Returns
// [ErrUnauthorized] (wrapped) on bad credentials.
func (h *httpAuthClient) Login(ctx context.Context, credentials models.Credentials) (models.Message, error) {
	var message models.Message

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&message).
		Post("/api/user/login")
	if err != nil {
		return models.Message{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Message{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return message, nil
}

// Logout implements [AuthClient]. It sends DELETE /api/user/logout with the
// stored session token and clears the token on success.
func (h *httpAuthClient) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/user/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

// Profile implements [AuthClient]. It sends GET /api/user/profile with the
// stored session token and returns the profile payload.
func (h *httpAuthClient) Profile(ctx context.Context) (models.Message, error) {
	var profile models.Message

	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/api/user/profile")
	if err != nil {
		return models.Message{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	return profile, nil
}

// RequestPasswordReset implements [AuthClient]. It POSTs the email to
// POST /api/user/password/reset and returns the issued reset token. Returns
// [ErrForbidden] (wrapped) when the email is not registered.
func (h *httpAuthClient) RequestPasswordReset(ctx context.Context, email string) (models.ResetResponse, error) {
	var reset models.ResetResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ResetRequest{Email: email}).
		SetResult(&reset).
		Post("/api/user/password/reset")
	if err != nil {
		return models.ResetResponse{}, fmt.Errorf("password reset request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ResetResponse{}, err
	}

	return reset, nil
}

// UpdatePassword implements [AuthClient]. It PUTs the reset token and the new
// password to PUT /api/user/password. Returns [ErrForbidden] (wrapped) on an
// invalid reset token.
func (h *httpAuthClient) UpdatePassword(ctx context.Context, update models.PasswordUpdate) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/api/user/password")
	if err != nil {
		return fmt.Errorf("password update request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAuthClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(header string) (string, error) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", fmt.Errorf("malformed Authorization header: %q", header)
	}
	return parts[1], nil
}
