package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/logger"
	"go.uber.org/zap"
)

const (
	validateReceiptPath = "/webhook/validate-receipt"
	notifyManagerPath   = "/webhook/notify-manager"
)

// Client triggers n8n workflows over their webhook endpoints. Every call is
// a fire-and-forget trigger with a bounded timeout; the verdict comes back
// later through the inbound callback endpoint.
type Client struct {
	baseURL       string
	webhookSecret string
	httpClient    *http.Client
}

func NewClient(baseURL, webhookSecret string, timeout time.Duration) *Client {
	return &Client{
		baseURL:       baseURL,
		webhookSecret: webhookSecret,
		httpClient:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) TriggerReceiptValidation(ctx context.Context, req domain.ReceiptValidationRequest) error {
	return c.trigger(ctx, validateReceiptPath, req)
}

func (c *Client) NotifyManager(ctx context.Context, n domain.ManagerNotification) error {
	return c.trigger(ctx, notifyManagerPath, n)
}

func (c *Client) trigger(ctx context.Context, path string, payload interface{}) error {
	if c.baseURL == "" {
		logger.L().Warn("n8n url not configured, skipping webhook trigger", zap.String("path", path))
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.webhookSecret != "" {
		req.Header.Set("X-Webhook-Secret", c.webhookSecret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("trigger webhook %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook %s returned status %d", path, resp.StatusCode)
	}

	return nil
}
