// Package client is a typed client for the listing API. It owns the
// admin session: restored from disk on construction, persisted on
// login/register, cleared on logout.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nadeemahmad9/real-estate/models"
)

// APIError is a non-2xx response surfaced with the server's message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	store   *FileStore
	session Session
}

// New builds a client and restores any persisted session. A corrupt or
// partial session on disk silently resets to anonymous.
func New(baseURL string, store *FileStore) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		store:   store,
	}
	if store != nil {
		c.session = store.Restore()
	}
	return c
}

func (c *Client) Session() Session {
	return c.session
}

// ListOptions are the optional list filters; unset fields are not sent.
type ListOptions struct {
	City            string
	PropertyType    string
	TransactionType string
	Featured        *bool
	MinPrice        *float64
	MaxPrice        *float64
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.City != "" {
		q.Set("city", o.City)
	}
	if o.PropertyType != "" {
		q.Set("propertyType", o.PropertyType)
	}
	if o.TransactionType != "" {
		q.Set("transactionType", o.TransactionType)
	}
	if o.Featured != nil {
		q.Set("featured", strconv.FormatBool(*o.Featured))
	}
	if o.MinPrice != nil {
		q.Set("minPrice", strconv.FormatFloat(*o.MinPrice, 'f', -1, 64))
	}
	if o.MaxPrice != nil {
		q.Set("maxPrice", strconv.FormatFloat(*o.MaxPrice, 'f', -1, 64))
	}
	return q
}

func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var resp models.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", models.LoginRequest{
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return Session{}, err
	}

	return c.beginSession(resp.Token, SessionUser{
		ID:    resp.Admin.ID,
		Name:  resp.Admin.Name,
		Email: resp.Admin.Email,
	})
}

func (c *Client) Register(ctx context.Context, name, email, password string) (Session, error) {
	var resp models.RegisterResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/register", models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, &resp)
	if err != nil {
		return Session{}, err
	}

	return c.beginSession(resp.Token, SessionUser{
		ID:    resp.User.ID,
		Name:  resp.User.Name,
		Email: resp.User.Email,
	})
}

func (c *Client) beginSession(token string, user SessionUser) (Session, error) {
	session := Session{Token: token, User: &user}
	c.session = session
	if c.store != nil {
		if err := c.store.Save(session); err != nil {
			return session, err
		}
	}
	return session, nil
}

// Logout drops the session locally. Tokens cannot be revoked server-side;
// they simply age out.
func (c *Client) Logout() {
	c.session = Session{}
	if c.store != nil {
		c.store.Clear()
	}
}

func (c *Client) ListProperties(ctx context.Context, opts ListOptions) ([]models.Property, error) {
	path := "/api/properties"
	if q := opts.query().Encode(); q != "" {
		path += "?" + q
	}
	var properties []models.Property
	if err := c.do(ctx, http.MethodGet, path, nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (c *Client) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	if err := c.do(ctx, http.MethodGet, "/api/properties/"+id, nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

type propertyEnvelope struct {
	Message  string          `json:"message"`
	Property models.Property `json:"property"`
}

func (c *Client) CreateProperty(ctx context.Context, p models.Property) (*models.Property, error) {
	var resp propertyEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/properties", p, &resp); err != nil {
		return nil, err
	}
	return &resp.Property, nil
}

func (c *Client) UpdateProperty(ctx context.Context, id string, p models.Property) (*models.Property, error) {
	var resp propertyEnvelope
	if err := c.do(ctx, http.MethodPut, "/api/properties/"+id, p, &resp); err != nil {
		return nil, err
	}
	return &resp.Property, nil
}

func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/properties/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("client: marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Message string `json:"message"`
		}
		message := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
			message = payload.Message
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}
