package domain

import "context"

// OrderEvent is the observability record published on order creation and on
// every status change. Never read back by the ledger.
type OrderEvent struct {
	OrderID    int64       `json:"order_id"`
	OrderCode  string      `json:"order_code"`
	TelegramID int64       `json:"telegram_id"`
	Status     OrderStatus `json:"status"`
	Amount     float64     `json:"amount"`
	Currency   string      `json:"currency"`
}

// EventPublisher delivers order events fire-and-forget.
type EventPublisher interface {
	PublishOrder(event OrderEvent) error
}

// ReceiptValidationRequest is the outbound trigger payload for the external
// AI validation workflow.
type ReceiptValidationRequest struct {
	OrderID         int64   `json:"order_id"`
	ReceiptImageURL string  `json:"receipt_image_url"`
	ExpectedAmount  float64 `json:"expected_amount"`
	OrderCode       string  `json:"order_code"`
}

// ManagerNotification is the outbound payload for the manager-channel
// notification workflow.
type ManagerNotification struct {
	OrderID          int64              `json:"order_id"`
	OrderCode        string             `json:"order_code"`
	UserName         string             `json:"user_name"`
	TotalAmount      float64            `json:"total_amount"`
	LocationName     string             `json:"location_name"`
	Items            []NotificationItem `json:"items"`
	ReceiptValidated bool               `json:"receipt_validated"`
}

type NotificationItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// WorkflowGateway triggers the external n8n workflows. Calls have a bounded
// timeout; failures must never fail the operation that triggered them
// (store-then-notify).
type WorkflowGateway interface {
	TriggerReceiptValidation(ctx context.Context, req ReceiptValidationRequest) error
	NotifyManager(ctx context.Context, n ManagerNotification) error
}

// ReceiptStore persists uploaded images and returns a serveable reference.
type ReceiptStore interface {
	SaveReceipt(orderID int64, data []byte) (string, error)
	SaveImage(prefix, filename string, data []byte) (string, error)
}
