package usecase

import (
	"context"
	"testing"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	orderdto "github.com/AiBusiness-KZ/PizzaMat/internal/usecase/dto/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newTestUsecase(orderRepo *MockOrderRepository, userRepo *MockUserRepository, catalogRepo *MockCatalogRepository, receipts *MockReceiptStore, workflow *MockWorkflowGateway) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		OrderRepo:   orderRepo,
		UserRepo:    userRepo,
		CatalogRepo: catalogRepo,
		Receipts:    receipts,
		Workflow:    workflow,
	}
}

func validCreateInput() *orderdto.CreateOrderInput {
	return &orderdto.CreateOrderInput{
		TelegramID:  111222333,
		LocationID:  1,
		TotalAmount: 430,
		Items: []orderdto.CreateOrderItemInput{
			{ProductID: 10, Quantity: 2, UnitPrice: 190},
			{ProductID: 11, Quantity: 1, UnitPrice: 50},
		},
	}
}

func TestCreateOrder_Success(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	catalogRepo := new(MockCatalogRepository)
	uc := newTestUsecase(orderRepo, userRepo, catalogRepo, nil, nil)

	userRepo.On("GetUserByTelegramID", mock.Anything, int64(111222333)).
		Return(&domain.User{ID: 7, TelegramID: 111222333}, nil)
	catalogRepo.On("GetLocation", mock.Anything, int64(1)).
		Return(&domain.Location{ID: 1, IsActive: true}, nil)
	orderRepo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Return(nil).Run(func(args mock.Arguments) {
		order := args.Get(1).(*domain.Order)
		order.ID = 42
	})

	out, err := uc.CreateOrder(context.Background(), validCreateInput())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), out.ID)
	assert.Len(t, out.OrderCode, domain.OrderCodeLength)
	assert.Equal(t, domain.StatusPending, out.Status)
	assert.InDelta(t, 430.0, out.TotalAmount, 0.001)
	assert.Equal(t, "UAH", out.Currency)
	orderRepo.AssertExpectations(t)
}

func TestCreateOrder_ServerSideTotals(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	catalogRepo := new(MockCatalogRepository)
	uc := newTestUsecase(orderRepo, userRepo, catalogRepo, nil, nil)

	userRepo.On("GetUserByTelegramID", mock.Anything, mock.Anything).
		Return(&domain.User{ID: 7}, nil)
	catalogRepo.On("GetLocation", mock.Anything, mock.Anything).
		Return(&domain.Location{ID: 1, IsActive: true}, nil)

	var captured *domain.Order
	orderRepo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Return(nil).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*domain.Order)
	})

	input := &orderdto.CreateOrderInput{
		TelegramID:  1,
		LocationID:  1,
		TotalAmount: 475,
		Items: []orderdto.CreateOrderItemInput{
			{ProductID: 10, Quantity: 3, UnitPrice: 150, OptionsPrice: 25},
		},
	}
	_, err := uc.CreateOrder(context.Background(), input)

	assert.NoError(t, err)
	assert.InDelta(t, 475.0, captured.Items[0].TotalPrice, 0.001)
}

func TestCreateOrder_DeclaredAmountMismatch(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	catalogRepo := new(MockCatalogRepository)
	uc := newTestUsecase(orderRepo, userRepo, catalogRepo, nil, nil)

	userRepo.On("GetUserByTelegramID", mock.Anything, mock.Anything).
		Return(&domain.User{ID: 7}, nil)
	catalogRepo.On("GetLocation", mock.Anything, mock.Anything).
		Return(&domain.Location{ID: 1, IsActive: true}, nil)

	input := validCreateInput()
	input.TotalAmount = 999

	_, err := uc.CreateOrder(context.Background(), input)

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "total_amount", validationErr.Field)
	orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}

func TestCreateOrder_UnknownUser(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	catalogRepo := new(MockCatalogRepository)
	uc := newTestUsecase(orderRepo, userRepo, catalogRepo, nil, nil)

	userRepo.On("GetUserByTelegramID", mock.Anything, mock.Anything).
		Return(nil, domain.ErrUserNotFound)

	_, err := uc.CreateOrder(context.Background(), validCreateInput())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCreateOrder_InactiveLocation(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	catalogRepo := new(MockCatalogRepository)
	uc := newTestUsecase(orderRepo, userRepo, catalogRepo, nil, nil)

	userRepo.On("GetUserByTelegramID", mock.Anything, mock.Anything).
		Return(&domain.User{ID: 7}, nil)
	catalogRepo.On("GetLocation", mock.Anything, mock.Anything).
		Return(&domain.Location{ID: 1, IsActive: false}, nil)

	_, err := uc.CreateOrder(context.Background(), validCreateInput())
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	uc := newTestUsecase(new(MockOrderRepository), new(MockUserRepository), new(MockCatalogRepository), nil, nil)

	input := validCreateInput()
	input.Items = nil

	_, err := uc.CreateOrder(context.Background(), input)
	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCreateOrder_CodeCollisionRetries(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	catalogRepo := new(MockCatalogRepository)
	uc := newTestUsecase(orderRepo, userRepo, catalogRepo, nil, nil)

	userRepo.On("GetUserByTelegramID", mock.Anything, mock.Anything).
		Return(&domain.User{ID: 7}, nil)
	catalogRepo.On("GetLocation", mock.Anything, mock.Anything).
		Return(&domain.Location{ID: 1, IsActive: true}, nil)

	// Two collisions, then success with a fresh code each time.
	codes := map[string]bool{}
	calls := 0
	orderRepo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Return(gorm.ErrDuplicatedKey).Twice().Run(func(args mock.Arguments) {
		calls++
		codes[args.Get(1).(*domain.Order).OrderCode] = true
	})
	orderRepo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Return(nil).Once().Run(func(args mock.Arguments) {
		calls++
		codes[args.Get(1).(*domain.Order).OrderCode] = true
	})

	out, err := uc.CreateOrder(context.Background(), validCreateInput())

	assert.NoError(t, err)
	assert.NotEmpty(t, out.OrderCode)
	assert.Equal(t, 3, calls)
}

func TestCreateOrder_CodeSpaceExhausted(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	catalogRepo := new(MockCatalogRepository)
	uc := newTestUsecase(orderRepo, userRepo, catalogRepo, nil, nil)

	userRepo.On("GetUserByTelegramID", mock.Anything, mock.Anything).
		Return(&domain.User{ID: 7}, nil)
	catalogRepo.On("GetLocation", mock.Anything, mock.Anything).
		Return(&domain.Location{ID: 1, IsActive: true}, nil)
	orderRepo.On("CreateOrder", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Return(gorm.ErrDuplicatedKey)

	_, err := uc.CreateOrder(context.Background(), validCreateInput())

	assert.ErrorIs(t, err, domain.ErrCodeSpaceExhausted)
	orderRepo.AssertNumberOfCalls(t, "CreateOrder", codeGenMaxAttempts)
}

func TestNewOrderCode_DigitsOnly(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := newOrderCode()
		assert.Len(t, code, domain.OrderCodeLength)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}
