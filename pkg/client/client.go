// Package client is a typed HTTP client for the Reciclame API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout = 10 * time.Second
	maxAttempts    = 2
)

var ErrNotLoggedIn = errors.New("no user logged in")

// APIError is a non-2xx reply. Message carries the envelope error text when present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api responded with status %d", e.Status)
	}
	return fmt.Sprintf("api responded with status %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do sends one request and decodes the envelope data into out. A transport error or
// a 5xx reply is retried once.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return err
		}
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		env, status, err := c.send(ctx, method, path, payload)
		if err != nil {
			lastErr = err
			continue
		}
		if status >= http.StatusInternalServerError {
			lastErr = &APIError{Status: status, Message: env.Error}
			continue
		}
		if status >= http.StatusBadRequest {
			return &APIError{Status: status, Message: env.Error}
		}

		if out == nil || len(env.Data) == 0 {
			return nil
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("error while decoding %s %s response. %w", method, path, err)
		}
		return nil
	}

	return lastErr
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte) (envelope, int, error) {
	var env envelope

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return env, 0, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return env, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return env, 0, err
	}
	// non-envelope bodies (proxies, plain errors) leave env empty
	_ = json.Unmarshal(raw, &env)

	return env, resp.StatusCode, nil
}

// Health reports whether the API answers its health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

type loginRequest struct {
	Cpf      string `json:"cpf"`
	Password string `json:"password"`
}

type loginResponse struct {
	User *User `json:"user"`
}

// Login authenticates and stores the user in the session.
func (c *Client) Login(ctx context.Context, session *Session, cpf, password string) (*User, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{cpf, password}, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, errors.New("login response without user")
	}

	if err := session.Save(resp.User); err != nil {
		return nil, err
	}

	return resp.User, nil
}

func (c *Client) Logout(session *Session) error {
	return session.Clear()
}

// ColetasResiduos returns the collection summaries of the person with the given cpf.
func (c *Client) ColetasResiduos(ctx context.Context, cpf string) ([]ColetaResumo, error) {
	rows := make([]ColetaResumo, 0)
	path := "/api/coletas/coletas-residuos/" + url.PathEscape(cpf)
	if err := c.do(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}
