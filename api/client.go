// Package api is the typed client for the PropVista backend REST API.
// Every operation is a single request: no retries, no caching, transport
// default timeouts.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Adheeb11/PropVista/models"
)

// Error is a non-2xx backend response, decoded from its {"error": ...}
// body when present. Callers surface Message as inline form text.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// Client talks to the backend API rooted at baseURL (e.g.
// "http://localhost:8000/api").
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and returns the resulting user record.
func (c *Client) Register(ctx context.Context, firstName, lastName, email, password string) (*models.User, error) {
	var user models.User
	body := registerRequest{FirstName: firstName, LastName: lastName, Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/register/", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates credentials and returns the user record.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/login/", loginRequest{Email: email, Password: password}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListProperties fetches every listing.
func (c *Client) ListProperties(ctx context.Context) ([]models.Property, error) {
	var props []models.Property
	if err := c.do(ctx, http.MethodGet, "/properties/", nil, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// ListOwnerProperties fetches the listings owned by the given user.
func (c *Client) ListOwnerProperties(ctx context.Context, ownerID int) ([]models.Property, error) {
	var props []models.Property
	path := "/properties/?owner=" + strconv.Itoa(ownerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &props); err != nil {
		return nil, err
	}
	return props, nil
}

// GetProperty fetches a single listing by id.
func (c *Client) GetProperty(ctx context.Context, id int) (*models.Property, error) {
	var prop models.Property
	path := fmt.Sprintf("/properties/%d/", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &prop); err != nil {
		return nil, err
	}
	return &prop, nil
}

// CreateProperty persists a new listing draft; the backend assigns identity.
func (c *Client) CreateProperty(ctx context.Context, draft models.PropertyDraft) (*models.Property, error) {
	var prop models.Property
	if err := c.do(ctx, http.MethodPost, "/properties/", draft, &prop); err != nil {
		return nil, err
	}
	return &prop, nil
}

// UpdateProperty replaces the listing's fields with the draft's.
func (c *Client) UpdateProperty(ctx context.Context, id int, draft models.PropertyDraft) (*models.Property, error) {
	var prop models.Property
	path := fmt.Sprintf("/properties/%d/", id)
	if err := c.do(ctx, http.MethodPut, path, draft, &prop); err != nil {
		return nil, err
	}
	return &prop, nil
}

// DeleteProperty removes the listing.
func (c *Client) DeleteProperty(ctx context.Context, id int) error {
	path := fmt.Sprintf("/properties/%d/", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// SendContactMessage delivers an enquiry about a listing.
func (c *Client) SendContactMessage(ctx context.Context, msg models.ContactMessage) error {
	return c.do(ctx, http.MethodPost, "/contact-messages/", msg, nil)
}

// do runs one request and decodes the response into out when out is
// non-nil. Non-2xx responses come back as *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apiErr
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
	}
	return apiErr
}
