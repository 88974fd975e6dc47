package usecase

import (
	"context"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
)

func (uc *DefaultOrderUsecase) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(ctx, orderID)
}

func (uc *DefaultOrderUsecase) ListUserOrders(ctx context.Context, telegramID int64, limit int) ([]*domain.Order, error) {
	user, err := uc.UserRepo.GetUserByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return uc.OrderRepo.ListUserOrders(ctx, user.ID, limit)
}

func (uc *DefaultOrderUsecase) ListOrders(ctx context.Context, filters domain.OrderFilters, limit, offset int) ([]*domain.Order, int64, error) {
	if filters.Status != "" && !domain.ValidStatus(filters.Status) {
		return nil, 0, domain.ErrInvalidStatus
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.OrderRepo.ListOrders(ctx, filters, limit, offset)
}
