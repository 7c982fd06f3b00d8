package webclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"strings"
	"time"
)

// ErrAuthenticationFailed is returned after a 401/403; stored credentials are
// already cleared when the caller sees it.
var ErrAuthenticationFailed = errors.New("Authentication failed. Please log in again.")

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// Result is a successful API answer. Data is nil for non-JSON bodies.
type Result struct {
	Status int
	Data   map[string]any
	Raw    json.RawMessage
}

// Message returns data.message or fallback.
func (r *Result) Message(fallback string) string {
	if r != nil && r.Data != nil {
		if msg, ok := r.Data["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return fallback
}

// Client calls the AutoHub API with the stored bearer token attached.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      CredentialStore

	// OnAuthFailure runs after credentials are cleared because of a 401/403.
	OnAuthFailure func()
}

func NewClient(baseURL string, store CredentialStore) *Client {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		store:      store,
	}
}

// WithHTTPClient replaces the transport, used by tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

func (c *Client) Store() CredentialStore { return c.store }

// CurrentUser returns the cached user, or nil when logged out.
func (c *Client) CurrentUser() *User {
	token, user, err := c.store.Load()
	if err != nil || token == "" {
		return nil
	}
	return user
}

// LoggedIn reports whether both a token and a user are stored.
func (c *Client) LoggedIn() bool {
	return c.CurrentUser() != nil
}

// FetchAuthenticated sends body as JSON to path.
func (c *Client) FetchAuthenticated(ctx context.Context, method, path string, body any) (*Result, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token, _, err := c.store.Load(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[Client] API Fetch Error: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		log.Printf("[Client] Authentication error (%d). Clearing stored token.", resp.StatusCode)
		if err := c.store.Clear(); err != nil {
			log.Printf("[Client] clear credentials: %v", err)
		}
		if c.OnAuthFailure != nil {
			c.OnAuthFailure()
		}
		return nil, ErrAuthenticationFailed
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		if !ok {
			return nil, &APIError{Status: resp.StatusCode}
		}
		return &Result{Status: resp.StatusCode}, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, err
		}
	}

	if !ok {
		apiErr := &APIError{Status: resp.StatusCode}
		if msg, isString := data["message"].(string); isString {
			apiErr.Message = msg
		}
		return nil, apiErr
	}

	return &Result{Status: resp.StatusCode, Data: data, Raw: raw}, nil
}

// TestDrive is one entry of GET /my-test-drives.
type TestDrive struct {
	ID            uint      `json:"id"`
	CarModel      string    `json:"carModel"`
	PreferredDate string    `json:"preferredDate"`
	PreferredTime string    `json:"preferredTime"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MyTestDrives fetches the logged in user's test drives, newest first.
func (c *Client) MyTestDrives(ctx context.Context) ([]TestDrive, error) {
	result, err := c.FetchAuthenticated(ctx, http.MethodGet, "/my-test-drives", nil)
	if err != nil {
		return nil, err
	}
	drives := []TestDrive{}
	if len(result.Raw) > 0 {
		if err := json.Unmarshal(result.Raw, &drives); err != nil {
			return nil, fmt.Errorf("decode test drives: %w", err)
		}
	}
	return drives, nil
}

// Logout forgets the stored credentials. There is no server side session.
func (c *Client) Logout() error {
	return c.store.Clear()
}
