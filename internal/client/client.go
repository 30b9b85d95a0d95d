// Package client is the game-side companion to the account service: an
// HTTP client for the player API, a local mirror of the player's own
// record, and the outcome reporter that keeps the two reconciled.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Record mirrors the player record as the API serializes it
type Record struct {
	ID          string     `json:"id"`
	Handle      string     `json:"handle"`
	Email       string     `json:"email,omitempty"`
	Level       int        `json:"level"`
	Experience  int        `json:"experience"`
	Score       int        `json:"score"`
	Wins        int        `json:"wins"`
	Losses      int        `json:"losses"`
	WinRate     int        `json:"win_rate"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// LeaderboardEntry mirrors one public leaderboard row
type LeaderboardEntry struct {
	Rank    int    `json:"rank"`
	Handle  string `json:"handle"`
	Level   int    `json:"level"`
	Score   int    `json:"score"`
	Wins    int    `json:"wins"`
	Losses  int    `json:"losses"`
	WinRate int    `json:"win_rate"`
}

// Update is a partial record update; nil fields are left unchanged
type Update struct {
	Email       *string `json:"email,omitempty"`
	Level       *int    `json:"level,omitempty"`
	Experience  *int    `json:"experience,omitempty"`
	Score       *int    `json:"score,omitempty"`
	Wins        *int    `json:"wins,omitempty"`
	Losses      *int    `json:"losses,omitempty"`
	NewPassword *string `json:"new_password,omitempty"`
}

// APIError is a non-2xx response from the service
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// envelope is the wire shape of every response
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client is an HTTP client for the player API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewWithHTTPClient creates a client with a caller-supplied http.Client
// (for testing)
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	c := New(baseURL)
	c.httpClient = httpClient
	return c
}

// do performs an HTTP request and decodes the envelope into result
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &env); err != nil {
			if resp.StatusCode >= 400 {
				return &APIError{Status: resp.StatusCode, Message: string(respBody)}
			}
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	if resp.StatusCode >= 400 || (len(respBody) > 0 && !env.Success) {
		message := env.Message
		if message == "" {
			message = string(respBody)
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if result != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, result); err != nil {
			return fmt.Errorf("failed to parse response data: %w", err)
		}
	}

	return nil
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, handle, password, email string) (*Record, error) {
	req := map[string]string{"handle": handle, "password": password}
	if email != "" {
		req["email"] = email
	}

	var record Record
	if err := c.do(ctx, http.MethodPost, "/api/v1/player/register", req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Login verifies the credential and returns the current record
func (c *Client) Login(ctx context.Context, handle, password string) (*Record, error) {
	req := map[string]string{"handle": handle, "password": password}

	var record Record
	if err := c.do(ctx, http.MethodPost, "/api/v1/player/login", req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Fetch retrieves the record for the given handle
func (c *Client) Fetch(ctx context.Context, handle, password string) (*Record, error) {
	q := url.Values{}
	q.Set("handle", handle)
	q.Set("credential", password)

	var record Record
	if err := c.do(ctx, http.MethodGet, "/api/v1/player?"+q.Encode(), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateRecord applies a partial update to the record for handle
func (c *Client) UpdateRecord(ctx context.Context, handle, password string, update Update) (*Record, error) {
	req := struct {
		Handle   string `json:"handle"`
		Password string `json:"password"`
		Update
	}{Handle: handle, Password: password, Update: update}

	var record Record
	if err := c.do(ctx, http.MethodPut, "/api/v1/player", req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes the account for handle
func (c *Client) Delete(ctx context.Context, handle, password string) error {
	req := map[string]string{"handle": handle, "password": password}
	return c.do(ctx, http.MethodDelete, "/api/v1/player", req, nil)
}

// Leaderboard fetches the top records; limit 0 uses the server default
func (c *Client) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	path := "/api/v1/leaderboard"
	if limit > 0 {
		path += fmt.Sprintf("?limit=%d", limit)
	}

	var data struct {
		Entries []LeaderboardEntry `json:"entries"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}
	return data.Entries, nil
}

// Health checks service liveness
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode, Message: "service unhealthy"}
	}
	return nil
}
