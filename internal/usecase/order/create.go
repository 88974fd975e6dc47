package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/AiBusiness-KZ/PizzaMat/internal/logger"
	orderdto "github.com/AiBusiness-KZ/PizzaMat/internal/usecase/dto/order"
	nanoid "github.com/jaevor/go-nanoid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// codeGenMaxAttempts bounds the retry loop on order-code collisions.
	// Exhausting it means the 6-digit space is effectively saturated and
	// the operation must fail loudly instead of spinning.
	codeGenMaxAttempts = 5

	defaultCurrency = "UAH"

	// amountTolerance absorbs float representation noise when comparing the
	// client-declared total against the server-side sum.
	amountTolerance = 0.005
)

var newOrderCode = mustCodeGenerator()

func mustCodeGenerator() func() string {
	gen, err := nanoid.CustomASCII("0123456789", domain.OrderCodeLength)
	if err != nil {
		panic("order code generator: " + err.Error())
	}
	return gen
}

func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.OrderOutput, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	user, err := uc.UserRepo.GetUserByTelegramID(ctx, input.TelegramID)
	if err != nil {
		return nil, err
	}

	location, err := uc.CatalogRepo.GetLocation(ctx, input.LocationID)
	if err != nil {
		return nil, err
	}
	if !location.IsActive {
		return nil, domain.ErrLocationNotFound
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	var total float64
	for _, in := range input.Items {
		item := domain.OrderItem{
			ProductID:       in.ProductID,
			Quantity:        in.Quantity,
			UnitPrice:       in.UnitPrice,
			SelectedOptions: in.SelectedOptions,
			OptionsPrice:    in.OptionsPrice,
		}
		item.TotalPrice = item.LineTotal()
		total += item.TotalPrice
		items = append(items, item)
	}

	if math.Abs(total-input.TotalAmount) > amountTolerance {
		return nil, &domain.ValidationError{
			Field:  "total_amount",
			Reason: fmt.Sprintf("declared %.2f does not match computed %.2f", input.TotalAmount, total),
		}
	}

	currency := input.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	order := &domain.Order{
		UserID:      user.ID,
		LocationID:  location.ID,
		TotalAmount: total,
		Currency:    currency,
		Status:      domain.StatusPending,
		Items:       items,
	}

	// The order_code unique index is the arbiter: generation retries on a
	// collision with a fresh code, bounded by codeGenMaxAttempts.
	for attempt := 0; ; attempt++ {
		order.OrderCode = newOrderCode()

		err = uc.OrderRepo.CreateOrder(ctx, order)
		if err == nil {
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		if uc.Metrics != nil {
			uc.Metrics.OrderCodeRetriesTotal.Inc()
		}
		if attempt+1 >= codeGenMaxAttempts {
			logger.L().Error("order code generation exhausted",
				zap.Int64("telegram_id", input.TelegramID),
				zap.Int("attempts", codeGenMaxAttempts))
			return nil, domain.ErrCodeSpaceExhausted
		}
	}

	if uc.Metrics != nil {
		uc.Metrics.OrdersCreatedTotal.
			WithLabelValues(strconv.FormatInt(location.ID, 10), currency).Inc()
		uc.Metrics.OrdersCreatedAmountTotal.
			WithLabelValues(currency).Add(total)
	}

	logger.L().Info("order created",
		zap.Int64("order_id", order.ID),
		zap.String("order_code", order.OrderCode),
		zap.Int64("telegram_id", input.TelegramID),
		zap.Float64("total_amount", total))

	uc.publishEvent(order, input.TelegramID)

	return orderdto.ToOrderOutput(order), nil
}

func validateCreateInput(input *orderdto.CreateOrderInput) error {
	if input.TelegramID <= 0 {
		return &domain.ValidationError{Field: "telegram_id", Reason: "must be positive"}
	}
	if input.LocationID <= 0 {
		return &domain.ValidationError{Field: "location_id", Reason: "must be positive"}
	}
	if len(input.Items) == 0 {
		return &domain.ValidationError{Field: "items", Reason: "order must contain at least one item"}
	}
	for i, item := range input.Items {
		if item.ProductID <= 0 {
			return &domain.ValidationError{Field: fmt.Sprintf("items[%d].product_id", i), Reason: "must be positive"}
		}
		if item.Quantity <= 0 {
			return &domain.ValidationError{Field: fmt.Sprintf("items[%d].quantity", i), Reason: "must be positive"}
		}
		if item.UnitPrice < 0 {
			return &domain.ValidationError{Field: fmt.Sprintf("items[%d].unit_price", i), Reason: "must not be negative"}
		}
		if item.OptionsPrice < 0 {
			return &domain.ValidationError{Field: fmt.Sprintf("items[%d].options_price", i), Reason: "must not be negative"}
		}
	}
	return nil
}
