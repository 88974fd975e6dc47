package usecase

import (
	"context"
	"testing"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	orderdto "github.com/AiBusiness-KZ/PizzaMat/internal/usecase/dto/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateStatus_AllowedTransition(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	uc := newTestUsecase(orderRepo, new(MockUserRepository), new(MockCatalogRepository), nil, nil)

	order := pendingOrder()
	orderRepo.On("GetOrderByID", mock.Anything, int64(42)).Return(order, nil)
	orderRepo.On("UpdateStatusFrom", mock.Anything, int64(42), domain.StatusPending, domain.StatusCancelled,
		mock.MatchedBy(func(p domain.OrderStatusPatch) bool {
			return p.CancellationReason == "customer changed mind"
		})).Return(nil)

	err := uc.UpdateStatus(context.Background(), &orderdto.UpdateStatusInput{
		OrderID:            42,
		NewStatus:          domain.StatusCancelled,
		CancellationReason: "customer changed mind",
	})

	assert.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestUpdateStatus_ForbiddenTransition(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	uc := newTestUsecase(orderRepo, new(MockUserRepository), new(MockCatalogRepository), nil, nil)

	orderRepo.On("GetOrderByID", mock.Anything, int64(42)).Return(pendingOrder(), nil)

	// pending cannot jump straight to confirmed.
	err := uc.UpdateStatus(context.Background(), &orderdto.UpdateStatusInput{
		OrderID:   42,
		NewStatus: domain.StatusConfirmed,
	})

	assert.ErrorIs(t, err, domain.ErrStatusConflict)
	orderRepo.AssertNotCalled(t, "UpdateStatusFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	uc := newTestUsecase(new(MockOrderRepository), new(MockUserRepository), new(MockCatalogRepository), nil, nil)

	err := uc.UpdateStatus(context.Background(), &orderdto.UpdateStatusInput{
		OrderID:   42,
		NewStatus: domain.OrderStatus("delivered"),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestUpdateStatus_LostRace(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	uc := newTestUsecase(orderRepo, new(MockUserRepository), new(MockCatalogRepository), nil, nil)

	paid := pendingOrder()
	paid.Status = domain.StatusPaid
	orderRepo.On("GetOrderByID", mock.Anything, int64(42)).Return(paid, nil)
	orderRepo.On("UpdateStatusFrom", mock.Anything, int64(42), domain.StatusPaid, domain.StatusConfirmed, mock.Anything).
		Return(domain.ErrStatusConflict)

	err := uc.UpdateStatus(context.Background(), &orderdto.UpdateStatusInput{
		OrderID:   42,
		NewStatus: domain.StatusConfirmed,
	})

	assert.ErrorIs(t, err, domain.ErrStatusConflict)
}

func TestOverrideStatus_BypassesTransitionTable(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	uc := newTestUsecase(orderRepo, new(MockUserRepository), new(MockCatalogRepository), nil, nil)

	completed := pendingOrder()
	completed.Status = domain.StatusCompleted
	orderRepo.On("GetOrderByID", mock.Anything, int64(42)).Return(completed, nil)
	orderRepo.On("SetStatus", mock.Anything, int64(42), domain.StatusPending, mock.Anything).Return(nil)

	// completed -> pending is forbidden on the strict path but fine here.
	err := uc.OverrideStatus(context.Background(), &orderdto.UpdateStatusInput{
		OrderID:   42,
		NewStatus: domain.StatusPending,
	})

	assert.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestOverrideStatus_StillRejectsUnknownStatus(t *testing.T) {
	uc := newTestUsecase(new(MockOrderRepository), new(MockUserRepository), new(MockCatalogRepository), nil, nil)

	err := uc.OverrideStatus(context.Background(), &orderdto.UpdateStatusInput{
		OrderID:   42,
		NewStatus: domain.OrderStatus("yolo"),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestApplyVerdict_ValidAdvancesToPaid(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	catalogRepo := new(MockCatalogRepository)
	workflow := new(MockWorkflowGateway)
	uc := newTestUsecase(orderRepo, new(MockUserRepository), catalogRepo, nil, workflow)

	order := pendingOrder()
	order.Items = []domain.OrderItem{{ProductID: 10, Quantity: 2}}
	order.User = &domain.User{TelegramID: 111, FullName: "Іван Петренко"}

	orderRepo.On("GetOrderByID", mock.Anything, int64(42)).Return(order, nil)
	orderRepo.On("UpdateStatusFrom", mock.Anything, int64(42), domain.StatusPending, domain.StatusPaid,
		mock.MatchedBy(func(p domain.OrderStatusPatch) bool {
			return p.ReceiptValidatedAt != nil && p.ValidationVerdict != ""
		})).Return(nil)
	catalogRepo.On("GetProduct", mock.Anything, int64(10)).
		Return(&domain.Product{ID: 10, Name: "Маргарита"}, nil)
	workflow.On("NotifyManager", mock.Anything, mock.MatchedBy(func(n domain.ManagerNotification) bool {
		return n.OrderID == 42 && n.ReceiptValidated && len(n.Items) == 1 && n.Items[0].Name == "Маргарита"
	})).Return(nil)

	err := uc.ApplyVerdict(context.Background(), domain.ValidationVerdict{
		OrderID: 42,
		Valid:   true,
		Raw:     `{"valid":true}`,
	})

	assert.NoError(t, err)
	workflow.AssertExpectations(t)
}

func TestApplyVerdict_RedeliveryIsNoop(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	workflow := new(MockWorkflowGateway)
	uc := newTestUsecase(orderRepo, new(MockUserRepository), new(MockCatalogRepository), nil, workflow)

	order := pendingOrder()
	alreadyPaid := pendingOrder()
	alreadyPaid.Status = domain.StatusPaid

	orderRepo.On("GetOrderByID", mock.Anything, int64(42)).Return(order, nil).Once()
	orderRepo.On("UpdateStatusFrom", mock.Anything, int64(42), domain.StatusPending, domain.StatusPaid, mock.Anything).
		Return(domain.ErrStatusConflict)
	orderRepo.On("GetOrderByID", mock.Anything, int64(42)).Return(alreadyPaid, nil).Once()

	err := uc.ApplyVerdict(context.Background(), domain.ValidationVerdict{
		OrderID: 42,
		Valid:   true,
		Raw:     `{"valid":true}`,
	})

	assert.NoError(t, err)
	workflow.AssertNotCalled(t, "NotifyManager", mock.Anything, mock.Anything)
}

func TestApplyVerdict_InvalidKeepsOrderPending(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	workflow := new(MockWorkflowGateway)
	uc := newTestUsecase(orderRepo, new(MockUserRepository), new(MockCatalogRepository), nil, workflow)

	orderRepo.On("GetOrderByID", mock.Anything, int64(42)).Return(pendingOrder(), nil)
	orderRepo.On("RecordVerdict", mock.Anything, int64(42), mock.Anything, `{"valid":false}`).Return(nil)

	err := uc.ApplyVerdict(context.Background(), domain.ValidationVerdict{
		OrderID: 42,
		Valid:   false,
		Reason:  "amount mismatch",
		Raw:     `{"valid":false}`,
	})

	assert.NoError(t, err)
	orderRepo.AssertNotCalled(t, "UpdateStatusFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	workflow.AssertNotCalled(t, "NotifyManager", mock.Anything, mock.Anything)
}

func TestApplyVerdict_UnknownOrder(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	uc := newTestUsecase(orderRepo, new(MockUserRepository), new(MockCatalogRepository), nil, nil)

	orderRepo.On("GetOrderByID", mock.Anything, int64(999)).Return(nil, domain.ErrOrderNotFound)

	err := uc.ApplyVerdict(context.Background(), domain.ValidationVerdict{OrderID: 999, Valid: true})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}
