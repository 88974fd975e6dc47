package usecase

import (
	"context"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/metrics"
	"github.com/AiBusiness-KZ/PizzaMat/internal/logger"
	orderdto "github.com/AiBusiness-KZ/PizzaMat/internal/usecase/dto/order"
	"go.uber.org/zap"
)

type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error)

	GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error)
	ListUserOrders(ctx context.Context, telegramID int64, limit int) ([]*domain.Order, error)
	ListOrders(ctx context.Context, filters domain.OrderFilters, limit, offset int) ([]*domain.Order, int64, error)

	SubmitReceipt(ctx context.Context, input *orderdto.SubmitReceiptInput) (*orderdto.ReceiptOutput, error)
	ApplyVerdict(ctx context.Context, verdict domain.ValidationVerdict) error

	// UpdateStatus is the strict, transition-checked path.
	UpdateStatus(ctx context.Context, input *orderdto.UpdateStatusInput) error
	// OverrideStatus bypasses the transition table. Admin escape hatch only;
	// still rejects unknown status values.
	OverrideStatus(ctx context.Context, input *orderdto.UpdateStatusInput) error

	// RetriggerStalledValidations re-fires the validation workflow for
	// orders whose receipt was recorded but whose verdict never arrived.
	RetriggerStalledValidations(ctx context.Context) error
}

type DefaultOrderUsecase struct {
	OrderRepo   domain.OrderRepository
	UserRepo    domain.UserRepository
	CatalogRepo domain.CatalogRepository
	Receipts    domain.ReceiptStore
	Workflow    domain.WorkflowGateway
	Publisher   domain.EventPublisher
	Metrics     *metrics.OrderMetrics
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	userRepo domain.UserRepository,
	catalogRepo domain.CatalogRepository,
	receipts domain.ReceiptStore,
	workflow domain.WorkflowGateway,
	publisher domain.EventPublisher,
	orderMetrics *metrics.OrderMetrics,
) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		OrderRepo:   orderRepo,
		UserRepo:    userRepo,
		CatalogRepo: catalogRepo,
		Receipts:    receipts,
		Workflow:    workflow,
		Publisher:   publisher,
		Metrics:     orderMetrics,
	}
}

// publishEvent ships the order event off the request path. A failed
// publish is logged and dropped; order processing never blocks on the
// event stream.
func (uc *DefaultOrderUsecase) publishEvent(order *domain.Order, telegramID int64) {
	if uc.Publisher == nil {
		return
	}

	go func(event domain.OrderEvent) {
		if err := uc.Publisher.PublishOrder(event); err != nil {
			logger.L().Warn("failed to publish order event",
				zap.Int64("order_id", event.OrderID),
				zap.String("status", string(event.Status)),
				zap.Error(err))
		}
	}(domain.OrderEvent{
		OrderID:    order.ID,
		OrderCode:  order.OrderCode,
		TelegramID: telegramID,
		Status:     order.Status,
		Amount:     order.TotalAmount,
		Currency:   order.Currency,
	})
}
