// Package api is a thin HTTP client for the Cookenu backend. It mirrors the
// server's JSON envelopes and keeps the session token for authed calls.
package api

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

// User is the public view of a user returned by the server.
type User struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

// Recipe is the public view of a recipe returned by the server.
type Recipe struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatorID   string    `json:"creator_id"`
}

// APIError is a non-2xx response from the server, carrying the status code
// and the server's human-readable message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Client talks to the backend over HTTP/JSON. A zero token means the client
// is anonymous; Signup and Login store the token they receive so subsequent
// calls are authenticated.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Token returns the current session token, empty when logged out.
func (c *Client) Token() string { return c.token }

// SetToken replaces the session token. An empty value logs the client out.
func (c *Client) SetToken(token string) { c.token = token }

// do performs a request and decodes the JSON response into out (when out is
// non-nil). Non-2xx responses become an *APIError with the server message.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &envelope)
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// Signup creates an account and stores the returned session token.
func (c *Client) Signup(ctx context.Context, nickname, email, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/user/signup", map[string]string{
		"nickname": nickname,
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return err
	}
	c.token = out.Token
	return nil
}

// Login authenticates and stores the returned session token.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/user/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return err
	}
	c.token = out.Token
	return nil
}

// Profile returns the calling user's account.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/user/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// ListUsers returns all users, or only those matching term when it is
// non-empty.
func (c *Client) ListUsers(ctx context.Context, term string) ([]User, error) {
	var out struct {
		Users []User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/user/all"+searchQuery(term), nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// DeleteUser removes a user account and everything it created.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/user/"+url.PathEscape(id), nil, nil)
}

// CreateRecipe publishes a recipe owned by the calling user.
func (c *Client) CreateRecipe(ctx context.Context, title, description string) (*Recipe, error) {
	var out struct {
		Recipe Recipe `json:"recipe"`
	}
	err := c.do(ctx, http.MethodPost, "/recipe", map[string]string{
		"title":       title,
		"description": description,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Recipe, nil
}

// EditRecipe updates the given fields of a recipe; empty fields keep their
// current value.
func (c *Client) EditRecipe(ctx context.Context, id, title, description string) (*Recipe, error) {
	var out struct {
		Recipe Recipe `json:"recipe"`
	}
	err := c.do(ctx, http.MethodPut, "/recipe/"+url.PathEscape(id), map[string]string{
		"title":       title,
		"description": description,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Recipe, nil
}

// DeleteRecipe removes a recipe.
func (c *Client) DeleteRecipe(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/recipe/"+url.PathEscape(id), nil, nil)
}

// ListRecipes returns all recipes, or only those matching term when it is
// non-empty.
func (c *Client) ListRecipes(ctx context.Context, term string) ([]Recipe, error) {
	var out struct {
		Recipes []Recipe `json:"recipes"`
	}
	if err := c.do(ctx, http.MethodGet, "/recipe/all"+searchQuery(term), nil, &out); err != nil {
		return nil, err
	}
	return out.Recipes, nil
}

// MyRecipes returns the recipes created by the calling user.
func (c *Client) MyRecipes(ctx context.Context) ([]Recipe, error) {
	var out struct {
		Recipes []Recipe `json:"recipes"`
	}
	if err := c.do(ctx, http.MethodGet, "/recipe/mine", nil, &out); err != nil {
		return nil, err
	}
	return out.Recipes, nil
}

func searchQuery(term string) string {
	if term == "" {
		return ""
	}
	return "?search=" + url.QueryEscape(term)
}
