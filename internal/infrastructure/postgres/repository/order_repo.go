package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres/mappers"
	"github.com/AiBusiness-KZ/PizzaMat/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.WithContext(ctx).Create(orderModel).Error; err != nil {
		return err
	}

	order.ID = orderModel.ID
	order.CreatedAt = orderModel.CreatedAt
	order.UpdatedAt = orderModel.UpdatedAt
	for i := range orderModel.Items {
		order.Items[i].ID = orderModel.Items[i].ID
		order.Items[i].OrderID = orderModel.ID
	}

	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	var m models.OrderModel
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Preload("User").
		Preload("Location").
		Preload("Location.City").
		First(&m, "id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&m), nil
}

func (r *DefaultOrderRepository) GetOrderByCode(ctx context.Context, code string) (*domain.Order, error) {
	var m models.OrderModel
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Preload("User").
		Preload("Location").
		First(&m, "order_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&m), nil
}

func (r *DefaultOrderRepository) ListUserOrders(ctx context.Context, userID int64, limit int) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	q := r.DB.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}

	return orders, nil
}

func (r *DefaultOrderRepository) ListOrders(ctx context.Context, filters domain.OrderFilters, limit, offset int) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	baseQuery := r.DB.WithContext(ctx).Model(&models.OrderModel{})
	if filters.Status != "" {
		baseQuery = baseQuery.Where("status = ?", filters.Status)
	}
	if filters.UserID != 0 {
		baseQuery = baseQuery.Where("user_id = ?", filters.UserID)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	err := baseQuery.
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}

	return orders, total, nil
}

// statusPatchColumns builds the side-effect column set written together with
// a status change.
func statusPatchColumns(status domain.OrderStatus, patch domain.OrderStatusPatch) map[string]interface{} {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if patch.ConfirmedByUserID != nil {
		updates["confirmed_by_user_id"] = *patch.ConfirmedByUserID
	}
	if patch.ConfirmedAt != nil {
		updates["confirmed_at"] = *patch.ConfirmedAt
	}
	if patch.CancellationReason != "" {
		updates["cancellation_reason"] = patch.CancellationReason
	}
	if patch.CompletedAt != nil {
		updates["completed_at"] = *patch.CompletedAt
	}
	if patch.ReceiptValidatedAt != nil {
		updates["receipt_validated_at"] = *patch.ReceiptValidatedAt
	}
	if patch.ValidationVerdict != "" {
		updates["validation_verdict"] = patch.ValidationVerdict
	}
	return updates
}

func (r *DefaultOrderRepository) UpdateStatusFrom(ctx context.Context, orderID int64, from, to domain.OrderStatus, patch domain.OrderStatusPatch) error {
	res := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(statusPatchColumns(to, patch))
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		// Distinguish a lost race from a missing order.
		var count int64
		if err := r.DB.WithContext(ctx).Model(&models.OrderModel{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrOrderNotFound
		}
		return domain.ErrStatusConflict
	}

	return nil
}

func (r *DefaultOrderRepository) SetStatus(ctx context.Context, orderID int64, status domain.OrderStatus, patch domain.OrderStatusPatch) error {
	res := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(statusPatchColumns(status, patch))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// AttachReceipt records the uploaded image and clears any verdict from a
// previous receipt, so the new upload gets a fresh validation slot and the
// stalled-validation sweep picks it up again.
func (r *DefaultOrderRepository) AttachReceipt(ctx context.Context, orderID int64, imageURL string, amount float64, imageHash string) error {
	res := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"receipt_image_url":    imageURL,
			"receipt_amount":       amount,
			"receipt_hash":         imageHash,
			"receipt_validated_at": nil,
			"validation_verdict":   nil,
			"updated_at":           time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// RecordVerdict writes the verdict only when none is recorded yet, so
// re-delivered callbacks cannot overwrite the first verdict.
func (r *DefaultOrderRepository) RecordVerdict(ctx context.Context, orderID int64, validatedAt time.Time, verdict string) error {
	return r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ? AND receipt_validated_at IS NULL", orderID).
		Updates(map[string]interface{}{
			"receipt_validated_at": validatedAt,
			"validation_verdict":   verdict,
			"updated_at":           time.Now(),
		}).Error
}

// ReserveReceiptHash is the atomic check-and-reserve of the dedup guard. The
// unique constraint on receipts_hash.image_hash is the serialization point:
// of two simultaneous uploads of identical bytes, exactly one insert wins.
func (r *DefaultOrderRepository) ReserveReceiptHash(ctx context.Context, imageHash string, orderID int64) error {
	m := models.ReceiptHashModel{
		ImageHash: imageHash,
		OrderID:   orderID,
	}

	err := r.DB.WithContext(ctx).Create(&m).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	existing, lookupErr := r.GetReceiptHash(ctx, imageHash)
	if lookupErr != nil {
		return fmt.Errorf("duplicate receipt hash, owner lookup failed: %w", lookupErr)
	}

	return &domain.DuplicateReceiptError{ImageHash: imageHash, OrderID: existing.OrderID}
}

func (r *DefaultOrderRepository) ReleaseReceiptHash(ctx context.Context, imageHash string) error {
	return r.DB.WithContext(ctx).
		Where("image_hash = ?", imageHash).
		Delete(&models.ReceiptHashModel{}).Error
}

func (r *DefaultOrderRepository) GetReceiptHash(ctx context.Context, imageHash string) (*domain.ReceiptHashEntry, error) {
	var m models.ReceiptHashModel
	err := r.DB.WithContext(ctx).First(&m, "image_hash = ?", imageHash).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}

	return mappers.ToDomainReceiptHash(&m), nil
}

func (r *DefaultOrderRepository) FindAwaitingValidation(ctx context.Context, olderThan time.Duration) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.WithContext(ctx).
		Where("status = ?", domain.StatusPending).
		Where("receipt_hash <> ''").
		Where("receipt_validated_at IS NULL").
		Where("updated_at < ?", time.Now().Add(-olderThan)).
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}

	return orders, nil
}
