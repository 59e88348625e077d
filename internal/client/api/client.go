// Package api is the HTTP client for the trade_desk backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrInvalidCredentials maps any 401 from the login endpoint.
	ErrInvalidCredentials = errors.New("Credenciales inválidas")
	// ErrServer maps any other non-2xx login response.
	ErrServer = errors.New("Error en el servidor. Intenta nuevamente.")
	// ErrUnauthorized reports a rejected bearer token on a protected call.
	ErrUnauthorized = errors.New("sesión expirada o inválida")
)

// Client talks to the backend REST API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL (e.g. http://localhost:8080/api).
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Login exchanges credentials for a token. A 401 becomes
// ErrInvalidCredentials; any other failure becomes ErrServer.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", ErrServer
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "", ErrInvalidCredentials
	case resp.StatusCode != http.StatusOK:
		return "", ErrServer
	}

	var parsed struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || parsed.Token == "" {
		return "", ErrServer
	}
	return parsed.Token, nil
}

// OperationInput carries the fields of a new operation.
type OperationInput struct {
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Operation is the backend's response projection.
type Operation struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	CreatedAt string  `json:"createdAt"`
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CreateOperation posts a new operation using the bearer token.
func (c *Client) CreateOperation(ctx context.Context, token string, input OperationInput) (Operation, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return Operation{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/operations", bytes.NewReader(payload))
	if err != nil {
		return Operation{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return Operation{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		var op Operation
		if err := json.NewDecoder(resp.Body).Decode(&op); err != nil {
			return Operation{}, err
		}
		return op, nil
	case http.StatusUnauthorized:
		return Operation{}, ErrUnauthorized
	default:
		var body apiError
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
			return Operation{}, errors.New(body.Message)
		}
		return Operation{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}
