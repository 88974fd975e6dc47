package domain

import "time"

type OrderStatus string

const (
	StatusDraft     OrderStatus = "draft"
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusConfirmed OrderStatus = "confirmed"
	StatusCancelled OrderStatus = "cancelled"
	StatusCompleted OrderStatus = "completed"
)

// OrderCodeLength is the length of the public pickup code a customer
// presents at the location.
const OrderCodeLength = 6

// ValidStatus reports whether s is a known order status value.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusDraft, StatusPending, StatusPaid, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// transitions is the forward-only lifecycle table. Cancellation is reachable
// from every non-terminal state; nothing leaves a terminal state.
var transitions = map[OrderStatus][]OrderStatus{
	StatusDraft:     {StatusPending, StatusCancelled},
	StatusPending:   {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether the strict status-update path may move an
// order from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID         int64
	UserID     int64
	LocationID int64

	OrderCode   string
	TotalAmount float64
	Currency    string
	Status      OrderStatus

	ReceiptImageURL    string
	ReceiptAmount      float64
	ReceiptHash        string
	ReceiptValidatedAt *time.Time
	ValidationVerdict  string // raw verdict payload from the validation workflow, JSON

	ConfirmedByUserID  *int64
	ConfirmedAt        *time.Time
	CancellationReason string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time

	Items    []OrderItem
	User     *User
	Location *Location
}

type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64

	Quantity        int
	UnitPrice       float64
	SelectedOptions map[string]string
	OptionsPrice    float64
	TotalPrice      float64

	CreatedAt time.Time
}

// LineTotal computes the price an item row must carry:
// quantity * unit price plus the options surcharge.
func (i OrderItem) LineTotal() float64 {
	return float64(i.Quantity)*i.UnitPrice + i.OptionsPrice
}

// ReceiptHashEntry reserves one receipt image digest for exactly one order.
type ReceiptHashEntry struct {
	ID        int64
	ImageHash string
	OrderID   int64
	CreatedAt time.Time
}

// ValidationVerdict is the accept/reject judgment delivered by the external
// receipt-validation workflow. Delivery is at-least-once.
type ValidationVerdict struct {
	OrderID int64
	Valid   bool
	Reason  string
	Raw     string
}

type OrderFilters struct {
	Status OrderStatus
	UserID int64
}
