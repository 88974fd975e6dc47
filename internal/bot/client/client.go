package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// APIClient talks to the order backend over its JSON API. The bot holds no
// database connection of its own.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError carries the backend's status code so flows can distinguish
// "not registered" from "backend down".
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out interface{}) error {
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
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
}

func (c *APIClient) RegisterUser(ctx context.Context, req *RegisterUserRequest) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/users/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *APIClient) GetUser(ctx context.Context, telegramID int64) (*User, error) {
	var user User
	path := "/api/users/" + strconv.FormatInt(telegramID, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *APIClient) ListCities(ctx context.Context) ([]City, error) {
	var resp struct {
		Cities []City `json:"cities"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/cities", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Cities, nil
}

func (c *APIClient) ListLocations(ctx context.Context, cityID int64) ([]Location, error) {
	var resp struct {
		Locations []Location `json:"locations"`
	}
	path := fmt.Sprintf("/api/cities/%d/locations", cityID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Locations, nil
}

func (c *APIClient) ListCategories(ctx context.Context) ([]Category, error) {
	var resp struct {
		Categories []Category `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

func (c *APIClient) ListMenu(ctx context.Context, locationID, categoryID int64) ([]MenuProduct, error) {
	var resp struct {
		Products []MenuProduct `json:"products"`
	}
	path := fmt.Sprintf("/api/menu?location_id=%d&category_id=%d", locationID, categoryID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (c *APIClient) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *APIClient) GetOrder(ctx context.Context, orderID int64) (*Order, error) {
	var order Order
	path := "/api/orders/" + strconv.FormatInt(orderID, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *APIClient) ListUserOrders(ctx context.Context, telegramID int64, limit int) ([]Order, error) {
	var resp struct {
		Orders []Order `json:"orders"`
	}
	path := fmt.Sprintf("/api/users/%d/orders?limit=%d", telegramID, limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// SubmitReceipt uploads a receipt image as multipart form data.
func (c *APIClient) SubmitReceipt(ctx context.Context, orderID int64, image []byte, declaredAmount float64) (*Receipt, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("receipt", "receipt.jpg")
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(image); err != nil {
		return nil, err
	}
	if declaredAmount > 0 {
		if err := writer.WriteField("declared_amount", strconv.FormatFloat(declaredAmount, 'f', 2, 64)); err != nil {
			return nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/api/orders/%d/receipt", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, decodeAPIError(resp)
	}

	var receipt Receipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (c *APIClient) UpdateOrderStatus(ctx context.Context, orderID int64, req *UpdateStatusRequest) error {
	path := fmt.Sprintf("/api/orders/%d/status", orderID)
	return c.do(ctx, http.MethodPost, path, req, nil)
}

func (c *APIClient) StartSession(ctx context.Context, req *StartSessionRequest) (int64, error) {
	var resp struct {
		SessionID int64 `json:"session_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/analytics/sessions", req, &resp); err != nil {
		return 0, err
	}
	return resp.SessionID, nil
}

func (c *APIClient) EndSession(ctx context.Context, sessionID int64) error {
	path := fmt.Sprintf("/api/analytics/sessions/%d/end", sessionID)
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

func (c *APIClient) LogInteraction(ctx context.Context, req *InteractionRequest) error {
	return c.do(ctx, http.MethodPost, "/api/analytics/interactions", req, nil)
}

func (c *APIClient) LogSupportMessage(ctx context.Context, req *SupportMessageRequest) error {
	return c.do(ctx, http.MethodPost, "/api/support/messages", req, nil)
}
