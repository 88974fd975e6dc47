package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/logger"
	orderdto "github.com/AiBusiness-KZ/PizzaMat/internal/usecase/dto/order"
	"go.uber.org/zap"
)

// UpdateStatus moves an order along the lifecycle table. The transition is
// checked against the table first and then applied as a conditional write,
// so a racing actor loses with ErrStatusConflict instead of silently
// overwriting.
func (uc *DefaultOrderUsecase) UpdateStatus(ctx context.Context, input *orderdto.UpdateStatusInput) error {
	if !domain.ValidStatus(input.NewStatus) {
		return domain.ErrInvalidStatus
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, input.OrderID)
	if err != nil {
		return err
	}

	if !domain.CanTransition(order.Status, input.NewStatus) {
		return domain.ErrStatusConflict
	}

	patch := statusPatch(input)
	if err := uc.OrderRepo.UpdateStatusFrom(ctx, order.ID, order.Status, input.NewStatus, patch); err != nil {
		if errors.Is(err, domain.ErrStatusConflict) && uc.Metrics != nil {
			uc.Metrics.OrderErrorsTotal.WithLabelValues("update_status", "conflict").Inc()
		}
		return err
	}

	uc.recordTransition(order, input.NewStatus)
	return nil
}

// OverrideStatus writes the status unconditionally. This is the admin escape
// hatch for fixing stuck orders; it still refuses unknown status values and
// is logged distinctly so overrides stay auditable.
func (uc *DefaultOrderUsecase) OverrideStatus(ctx context.Context, input *orderdto.UpdateStatusInput) error {
	if !domain.ValidStatus(input.NewStatus) {
		return domain.ErrInvalidStatus
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, input.OrderID)
	if err != nil {
		return err
	}

	patch := statusPatch(input)
	if err := uc.OrderRepo.SetStatus(ctx, order.ID, input.NewStatus, patch); err != nil {
		return err
	}

	logger.L().Warn("order status overridden",
		zap.Int64("order_id", order.ID),
		zap.String("from", string(order.Status)),
		zap.String("to", string(input.NewStatus)))

	uc.recordTransition(order, input.NewStatus)
	return nil
}

// ApplyVerdict applies the external validation verdict. Delivery is
// at-least-once, so every write here is guarded: a valid verdict advances
// pending orders to paid via the conditional update, and a redelivery finds
// the order already advanced and becomes a no-op.
func (uc *DefaultOrderUsecase) ApplyVerdict(ctx context.Context, verdict domain.ValidationVerdict) error {
	order, err := uc.OrderRepo.GetOrderByID(ctx, verdict.OrderID)
	if err != nil {
		return err
	}

	now := time.Now()

	if !verdict.Valid {
		// Invalid verdict leaves the order pending so the customer can
		// upload a corrected receipt. First delivery wins the verdict
		// columns, redeliveries are ignored by the repository guard.
		if err := uc.OrderRepo.RecordVerdict(ctx, order.ID, now, verdict.Raw); err != nil {
			return err
		}
		if uc.Metrics != nil {
			uc.Metrics.ReceiptVerdictsTotal.WithLabelValues("invalid").Inc()
		}
		logger.L().Info("receipt rejected by validation",
			zap.Int64("order_id", order.ID),
			zap.String("reason", verdict.Reason))
		return nil
	}

	patch := domain.OrderStatusPatch{
		ReceiptValidatedAt: &now,
		ValidationVerdict:  verdict.Raw,
	}
	err = uc.OrderRepo.UpdateStatusFrom(ctx, order.ID, domain.StatusPending, domain.StatusPaid, patch)
	if errors.Is(err, domain.ErrStatusConflict) {
		current, readErr := uc.OrderRepo.GetOrderByID(ctx, order.ID)
		if readErr != nil {
			return readErr
		}
		if current.Status != domain.StatusPending {
			// Redelivered verdict, or the order was cancelled while the
			// verdict was in flight. Nothing further to do.
			logger.L().Info("verdict arrived for already-settled order",
				zap.Int64("order_id", order.ID),
				zap.String("status", string(current.Status)))
			return nil
		}
		return err
	}
	if err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.ReceiptVerdictsTotal.WithLabelValues("valid").Inc()
	}
	uc.recordTransition(order, domain.StatusPaid)

	uc.notifyManager(ctx, order)
	return nil
}

// notifyManager fires the manager-channel workflow after a receipt passes
// validation. Store-then-notify: a failed notification is logged, the paid
// status stands.
func (uc *DefaultOrderUsecase) notifyManager(ctx context.Context, order *domain.Order) {
	if uc.Workflow == nil {
		return
	}

	items := make([]domain.NotificationItem, 0, len(order.Items))
	for _, item := range order.Items {
		name := "product #" + strconv.FormatInt(item.ProductID, 10)
		if product, err := uc.CatalogRepo.GetProduct(ctx, item.ProductID); err == nil {
			name = product.Name
		}
		items = append(items, domain.NotificationItem{Name: name, Quantity: item.Quantity})
	}

	n := domain.ManagerNotification{
		OrderID:          order.ID,
		OrderCode:        order.OrderCode,
		TotalAmount:      order.TotalAmount,
		Items:            items,
		ReceiptValidated: true,
	}
	if order.User != nil {
		n.UserName = order.User.FullName
	}
	if order.Location != nil {
		n.LocationName = order.Location.Name
	}

	if err := uc.Workflow.NotifyManager(ctx, n); err != nil {
		logger.L().Warn("manager notification failed",
			zap.Int64("order_id", order.ID),
			zap.Error(err))
	}
}

func (uc *DefaultOrderUsecase) recordTransition(order *domain.Order, to domain.OrderStatus) {
	if uc.Metrics != nil {
		uc.Metrics.OrderStatusChangesTotal.
			WithLabelValues(string(order.Status), string(to)).Inc()
	}

	logger.L().Info("order status changed",
		zap.Int64("order_id", order.ID),
		zap.String("order_code", order.OrderCode),
		zap.String("from", string(order.Status)),
		zap.String("to", string(to)))

	telegramID := int64(0)
	if order.User != nil {
		telegramID = order.User.TelegramID
	}

	updated := *order
	updated.Status = to
	uc.publishEvent(&updated, telegramID)
}

// statusPatch derives the side-effect columns a transition carries.
func statusPatch(input *orderdto.UpdateStatusInput) domain.OrderStatusPatch {
	now := time.Now()
	patch := domain.OrderStatusPatch{}

	switch input.NewStatus {
	case domain.StatusConfirmed:
		patch.ConfirmedAt = &now
		patch.ConfirmedByUserID = input.ActorUserID
	case domain.StatusCancelled:
		patch.CancellationReason = input.CancellationReason
	case domain.StatusCompleted:
		patch.CompletedAt = &now
	}

	return patch
}
