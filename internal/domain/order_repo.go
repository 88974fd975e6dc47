package domain

import (
	"context"
	"time"
)

// OrderStatusPatch carries the optional side-effect columns written together
// with a status transition.
type OrderStatusPatch struct {
	ConfirmedByUserID  *int64
	ConfirmedAt        *time.Time
	CancellationReason string
	CompletedAt        *time.Time
	ReceiptValidatedAt *time.Time
	ValidationVerdict  string
}

type OrderRepository interface {
	// CreateOrder persists the order and its items in one transaction and
	// populates ID and timestamps. A duplicate order_code surfaces as
	// ErrCodeSpaceExhausted-compatible conflict for the caller to retry.
	CreateOrder(ctx context.Context, order *Order) error

	GetOrderByID(ctx context.Context, orderID int64) (*Order, error)
	GetOrderByCode(ctx context.Context, code string) (*Order, error)
	ListUserOrders(ctx context.Context, userID int64, limit int) ([]*Order, error)
	ListOrders(ctx context.Context, filters OrderFilters, limit, offset int) ([]*Order, int64, error)

	// UpdateStatusFrom applies "UPDATE ... SET status = to WHERE id = ? AND
	// status = from". The conditional write is the serialization point for
	// racing manager actions: when the row exists but is no longer in `from`,
	// ErrStatusConflict is returned and nothing is written.
	UpdateStatusFrom(ctx context.Context, orderID int64, from, to OrderStatus, patch OrderStatusPatch) error

	// SetStatus writes the status unconditionally. Reserved for the
	// explicitly-named manual override path.
	SetStatus(ctx context.Context, orderID int64, status OrderStatus, patch OrderStatusPatch) error

	// AttachReceipt stores the uploaded image reference, the user-declared
	// amount and the content hash on the order row.
	AttachReceipt(ctx context.Context, orderID int64, imageURL string, amount float64, imageHash string) error

	// RecordVerdict stamps receipt_validated_at and the raw verdict payload
	// without touching status. Only the first delivery writes: rows with
	// receipt_validated_at already set are left alone.
	RecordVerdict(ctx context.Context, orderID int64, validatedAt time.Time, verdict string) error

	// ReserveReceiptHash inserts the hash row. A unique violation is
	// translated to *DuplicateReceiptError with the owning order resolved.
	ReserveReceiptHash(ctx context.Context, imageHash string, orderID int64) error
	// ReleaseReceiptHash drops a reservation again when the upload it was
	// made for could not be completed.
	ReleaseReceiptHash(ctx context.Context, imageHash string) error
	GetReceiptHash(ctx context.Context, imageHash string) (*ReceiptHashEntry, error)

	// FindAwaitingValidation returns pending orders that have a receipt
	// recorded but no verdict yet, older than the given age. Used by the
	// background re-trigger sweep.
	FindAwaitingValidation(ctx context.Context, olderThan time.Duration) ([]*Order, error)
}
