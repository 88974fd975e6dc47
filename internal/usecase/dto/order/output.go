package orderdto

import (
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
)

type OrderOutput struct {
	ID          int64
	OrderCode   string
	Status      domain.OrderStatus
	TotalAmount float64
	Currency    string
	CreatedAt   time.Time
}

func ToOrderOutput(o *domain.Order) *OrderOutput {
	return &OrderOutput{
		ID:          o.ID,
		OrderCode:   o.OrderCode,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		Currency:    o.Currency,
		CreatedAt:   o.CreatedAt,
	}
}

// ReceiptOutput is returned to the uploader so it can show the stored
// reference and, on the bot side, relay validation context.
type ReceiptOutput struct {
	OrderID         int64
	OrderCode       string
	ReceiptImageURL string
	TotalAmount     float64
}
