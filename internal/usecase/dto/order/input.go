package orderdto

import "github.com/AiBusiness-KZ/PizzaMat/internal/domain"

type CreateOrderItemInput struct {
	ProductID       int64
	Quantity        int
	UnitPrice       float64
	SelectedOptions map[string]string
	OptionsPrice    float64
}

type CreateOrderInput struct {
	TelegramID  int64
	LocationID  int64
	Items       []CreateOrderItemInput
	TotalAmount float64
	Currency    string
}

type SubmitReceiptInput struct {
	OrderID        int64
	Image          []byte
	DeclaredAmount float64
}

type UpdateStatusInput struct {
	OrderID            int64
	NewStatus          domain.OrderStatus
	CancellationReason string
	// ActorUserID identifies the confirming staff member, when the actor is
	// a known user.
	ActorUserID *int64
}
