package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/logger"
	orderdto "github.com/AiBusiness-KZ/PizzaMat/internal/usecase/dto/order"
	"go.uber.org/zap"
)

// SubmitReceipt takes an uploaded payment receipt image, reserves its content
// digest against replay, stores the file and fires the external validation
// workflow. The workflow trigger is store-then-notify: a failed trigger is
// logged and left to the background re-trigger sweep, never surfaced to the
// uploader.
func (uc *DefaultOrderUsecase) SubmitReceipt(ctx context.Context, input *orderdto.SubmitReceiptInput) (*orderdto.ReceiptOutput, error) {
	if len(input.Image) == 0 {
		return nil, &domain.ValidationError{Field: "image", Reason: "empty upload"}
	}
	if input.DeclaredAmount < 0 {
		return nil, &domain.ValidationError{Field: "declared_amount", Reason: "must not be negative"}
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.StatusPending {
		return nil, domain.ErrStatusConflict
	}

	sum := sha256.Sum256(input.Image)
	imageHash := hex.EncodeToString(sum[:])

	// Check-and-reserve: the unique index on image_hash is the arbiter, so
	// two concurrent uploads of the same image cannot both pass.
	if err := uc.OrderRepo.ReserveReceiptHash(ctx, imageHash, order.ID); err != nil {
		var dup *domain.DuplicateReceiptError
		if errors.As(err, &dup) {
			if uc.Metrics != nil {
				uc.Metrics.ReceiptsDuplicateTotal.Inc()
			}
			logger.L().Warn("duplicate receipt rejected",
				zap.Int64("order_id", order.ID),
				zap.Int64("owning_order_id", dup.OrderID),
				zap.String("image_hash", imageHash))
		}
		return nil, err
	}

	imageURL, err := uc.Receipts.SaveReceipt(order.ID, input.Image)
	if err != nil {
		uc.releaseReservation(ctx, imageHash, order.ID)
		return nil, err
	}

	if err := uc.OrderRepo.AttachReceipt(ctx, order.ID, imageURL, input.DeclaredAmount, imageHash); err != nil {
		uc.releaseReservation(ctx, imageHash, order.ID)
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.ReceiptsUploadedTotal.WithLabelValues(order.Currency).Inc()
	}

	logger.L().Info("receipt stored",
		zap.Int64("order_id", order.ID),
		zap.String("order_code", order.OrderCode),
		zap.Float64("declared_amount", input.DeclaredAmount))

	uc.triggerValidation(ctx, order, imageURL)

	return &orderdto.ReceiptOutput{
		OrderID:         order.ID,
		OrderCode:       order.OrderCode,
		ReceiptImageURL: imageURL,
		TotalAmount:     order.TotalAmount,
	}, nil
}

// releaseReservation undoes the hash reservation when the upload failed after
// it; otherwise the user's own image would stay burned as a duplicate.
func (uc *DefaultOrderUsecase) releaseReservation(ctx context.Context, imageHash string, orderID int64) {
	if err := uc.OrderRepo.ReleaseReceiptHash(ctx, imageHash); err != nil {
		logger.L().Error("failed to release receipt hash reservation",
			zap.Int64("order_id", orderID),
			zap.String("image_hash", imageHash),
			zap.Error(err))
	}
}

func (uc *DefaultOrderUsecase) triggerValidation(ctx context.Context, order *domain.Order, imageURL string) {
	if uc.Workflow == nil {
		return
	}

	start := time.Now()
	err := uc.Workflow.TriggerReceiptValidation(ctx, domain.ReceiptValidationRequest{
		OrderID:         order.ID,
		ReceiptImageURL: imageURL,
		ExpectedAmount:  order.TotalAmount,
		OrderCode:       order.OrderCode,
	})

	if uc.Metrics != nil {
		success := "true"
		if err != nil {
			success = "false"
		}
		uc.Metrics.ValidationTriggerDuration.
			WithLabelValues(success).Observe(time.Since(start).Seconds())
	}

	if err != nil {
		logger.L().Warn("receipt validation trigger failed, sweep will retry",
			zap.Int64("order_id", order.ID),
			zap.Error(err))
	}
}

// RetriggerStalledValidations re-fires the validation workflow for orders
// whose receipt was stored but whose verdict never came back. Runs from the
// background sweeper.
func (uc *DefaultOrderUsecase) RetriggerStalledValidations(ctx context.Context) error {
	stalled, err := uc.OrderRepo.FindAwaitingValidation(ctx, validationStallAge)
	if err != nil {
		return err
	}

	for _, order := range stalled {
		logger.L().Info("re-triggering stalled receipt validation",
			zap.Int64("order_id", order.ID),
			zap.Time("updated_at", order.UpdatedAt))
		uc.triggerValidation(ctx, order, order.ReceiptImageURL)
	}

	return nil
}

// validationStallAge is how long a receipt may wait for a verdict before the
// sweep considers its trigger lost.
const validationStallAge = 10 * time.Minute
