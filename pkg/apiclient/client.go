// Package apiclient is a typed Go client for the goaltrack HTTP API. It plays
// the role of the front-end service layer: one HTTP call per user action,
// bearer token attached after login or registration.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client

	// Token is sent as "Authorization: Bearer <token>" when non-empty.
	Token string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Goal struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type authData struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// envelope mirrors the server's response envelope.
type envelope[T any] struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// APIError is returned for any non-success response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Register creates an account and stores the issued token on the client.
func (c *Client) Register(ctx context.Context, username, email, password string) (*User, error) {
	var out envelope[authData]
	err := c.do(ctx, http.MethodPost, "/api/auth/register",
		map[string]string{"username": username, "email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	c.Token = out.Data.Token
	return &out.Data.User, nil
}

// Login authenticates and stores the issued token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var out envelope[authData]
	err := c.do(ctx, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	c.Token = out.Data.Token
	return &out.Data.User, nil
}

func (c *Client) Profile(ctx context.Context) (*User, error) {
	var out envelope[User]
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) ListGoals(ctx context.Context) ([]Goal, error) {
	var out envelope[[]Goal]
	if err := c.do(ctx, http.MethodGet, "/api/goals", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) CreateGoal(ctx context.Context, text string) (*Goal, error) {
	var out envelope[Goal]
	if err := c.do(ctx, http.MethodPost, "/api/goals", map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateGoal(ctx context.Context, id, text string) (*Goal, error) {
	var out envelope[Goal]
	if err := c.do(ctx, http.MethodPut, "/api/goals/"+id, map[string]string{"text": text}, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// DeleteGoal removes a goal and returns the acknowledged id.
func (c *Client) DeleteGoal(ctx context.Context, id string) (string, error) {
	var out envelope[struct {
		ID string `json:"id"`
	}]
	if err := c.do(ctx, http.MethodDelete, "/api/goals/"+id, nil, &out); err != nil {
		return "", err
	}
	return out.Data.ID, nil
}

// Protected calls the diagnostic echo route and returns the resolved user id.
func (c *Client) Protected(ctx context.Context) (string, error) {
	var out envelope[struct {
		UserID string `json:"user_id"`
	}]
	if err := c.do(ctx, http.MethodGet, "/api/protected", nil, &out); err != nil {
		return "", err
	}
	return out.Data.UserID, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var buf *bytes.Buffer
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewBuffer(b)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var e envelope[json.RawMessage]
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &APIError{Status: resp.StatusCode, Message: e.Message}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
