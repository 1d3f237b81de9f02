// Package backend is a thin client for the catalog REST backend. All
// persistence, validation and business rules live behind it; this package only
// shapes requests, decodes responses and surfaces the backend's error messages.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/rajservice12693/alankar/internal/model"
)

// Client calls the catalog backend over HTTP. The zero HTTPClient falls back
// to http.DefaultClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

// Error is a failed backend call. Message holds the backend's own error text
// when its payload supplied one, else a generic fallback.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
}

// genericMessage is shown when the backend's error payload has no usable text.
const genericMessage = "request failed"

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// do sends the request and converts any non-expected status into an *Error.
func (c *Client) do(req *http.Request, want int) (*http.Response, error) {
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling backend: %w", err)
	}
	if resp.StatusCode != want {
		defer resp.Body.Close()
		return nil, &Error{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	return resp, nil
}

// errorMessage extracts the backend's error text from a failed response body.
func errorMessage(body io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return genericMessage
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.do(req, http.StatusOK)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, want int) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req, want)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

type loginRequest struct {
	EmailID  string `json:"emailId"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserName string `json:"userName"`
}

// Login authenticates against POST /login and returns the user name the
// backend reports on success.
func (c *Client) Login(ctx context.Context, emailID, password string) (string, error) {
	body, err := json.Marshal(loginRequest{EmailID: emailID, Password: password})
	if err != nil {
		return "", fmt.Errorf("encoding login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req, http.StatusOK)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}
	return lr.UserName, nil
}

// Items returns the full item list from GET /items.
func (c *Client) Items(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := c.getJSON(ctx, "/items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Categories returns all categories (with their embedded materials) from
// GET /categories.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var wrapper struct {
		Data []model.Category `json:"data"`
	}
	if err := c.getJSON(ctx, "/categories", &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Data, nil
}

// Materials returns the standalone material list from GET /materials.
func (c *Client) Materials(ctx context.Context) ([]model.Material, error) {
	var wrapper struct {
		Data []model.Material `json:"data"`
	}
	if err := c.getJSON(ctx, "/materials", &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Data, nil
}

// AddCategory creates a category via POST /addcategory. A 201 is the sole
// success signal.
func (c *Client) AddCategory(ctx context.Context, name string) error {
	return c.postJSON(ctx, "/addcategory", map[string]string{"categoryName": name}, http.StatusCreated)
}

// AddMaterial creates a material under a category via POST /addMaterials.
func (c *Client) AddMaterial(ctx context.Context, name, categoryID string) error {
	payload := map[string]string{"materialName": name, "categoryId": categoryID}
	return c.postJSON(ctx, "/addMaterials", payload, http.StatusCreated)
}

// ItemPayload is the JSON blob part of a saveItems upload.
type ItemPayload struct {
	ItemName    string  `json:"itemName"`
	CategoryID  string  `json:"categoryId"`
	MaterialID  string  `json:"materialId"`
	Purity      string  `json:"purity"`
	Weight      float64 `json:"weight"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// ImageFile is one uploaded image forwarded to the backend.
type ImageFile struct {
	Name   string
	Reader io.Reader
}

// SaveItem uploads a new item via POST /saveItems as multipart form data:
// a "payload" field holding the item JSON plus one "images" part per file.
func (c *Client) SaveItem(ctx context.Context, payload ItemPayload, images []ImageFile) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	blob, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding item payload: %w", err)
	}
	if err := mw.WriteField("payload", string(blob)); err != nil {
		return fmt.Errorf("writing payload field: %w", err)
	}

	for _, img := range images {
		part, err := mw.CreateFormFile("images", img.Name)
		if err != nil {
			return fmt.Errorf("creating image part: %w", err)
		}
		if _, err := io.Copy(part, img.Reader); err != nil {
			return fmt.Errorf("copying image %s: %w", img.Name, err)
		}
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("finishing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/saveItems", &buf)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.do(req, http.StatusCreated)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// DeleteItem removes an item via DELETE /item?itemId=.
func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	u := c.BaseURL + "/item?itemId=" + url.QueryEscape(itemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.do(req, http.StatusOK)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// DashboardCount returns the aggregate counts from GET /dashboardCount.
func (c *Client) DashboardCount(ctx context.Context) (*model.DashboardCount, error) {
	var counts model.DashboardCount
	if err := c.getJSON(ctx, "/dashboardCount", &counts); err != nil {
		return nil, err
	}
	return &counts, nil
}
