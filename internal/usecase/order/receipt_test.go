package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	orderdto "github.com/AiBusiness-KZ/PizzaMat/internal/usecase/dto/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func pendingOrder() *domain.Order {
	return &domain.Order{
		ID:          42,
		OrderCode:   "123456",
		Status:      domain.StatusPending,
		TotalAmount: 430,
		Currency:    "UAH",
	}
}

func TestSubmitReceipt_Success(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	receipts := new(MockReceiptStore)
	workflow := new(MockWorkflowGateway)
	uc := newTestUsecase(orderRepo, new(MockUserRepository), new(MockCatalogRepository), receipts, workflow)

	image := []byte("fake-jpeg-bytes")
	sum := sha256.Sum256(image)
	wantHash := hex.EncodeToString(sum[:])

	orderRepo.On("GetOrderByID", mock.Anything, int64(42)).Return(pendingOrder(), nil)
	orderRepo.On("ReserveReceiptHash", mock.Anything, wantHash, int64(42)).Return(nil)
	receipts.On("SaveReceipt", int64(42), image).Return("/uploads/receipt_order_42.jpg", nil)
	orderRepo.On("AttachReceipt", mock.Anything, int64(42), "/uploads/receipt_order_42.jpg", 430.0, wantHash).Return(nil)
	workflow.On("TriggerReceiptValidation", mock.Anything, mock.MatchedBy(func(req domain.ReceiptValidationRequest) bool {
		return req.OrderID == 42 && req.OrderCode == "123456"
	})).Return(nil)

	out, err := uc.SubmitReceipt(context.Background(), &orderdto.SubmitReceiptInput{
		OrderID:        42,
		Image:          image,
		DeclaredAmount: 430,
	})

	assert.NoError(t, err)
	assert.Equal(t, "/uploads/receipt_order_42.jpg", out.ReceiptImageURL)
	workflow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestSubmitReceipt_DuplicateRejected(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	receipts := new(MockReceiptStore)
	uc := newTestUsecase(orderRepo, new(MockUserRepository), new(MockCatalogRepository), receipts, nil)

	orderRepo.On("GetOrderByID", mock.Anything, int64(42)).Return(pendingOrder(), nil)
	orderRepo.On("ReserveReceiptHash", mock.Anything, mock.Anything, int64(42)).
		Return(&domain.DuplicateReceiptError{ImageHash: "abc", OrderID: 7})

	_, err := uc.SubmitReceipt(context.Background(), &orderdto.SubmitReceiptInput{
		OrderID: 42,
		Image:   []byte("already-used"),
	})

	var dup *domain.DuplicateReceiptError
	assert.ErrorAs(t, err, &dup)
	assert.Equal(t, int64(7), dup.OrderID)
	receipts.AssertNotCalled(t, "SaveReceipt", mock.Anything, mock.Anything)
}

func TestSubmitReceipt_StoreFailureReleasesReservation(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	receipts := new(MockReceiptStore)
	uc := newTestUsecase(orderRepo, new(MockUserRepository), new(MockCatalogRepository), receipts, nil)

	image := []byte("payment-proof")
	sum := sha256.Sum256(image)
	wantHash := hex.EncodeToString(sum[:])

	orderRepo.On("GetOrderByID", mock.Anything, int64(42)).Return(pendingOrder(), nil)
	orderRepo.On("ReserveReceiptHash", mock.Anything, wantHash, int64(42)).Return(nil)
	receipts.On("SaveReceipt", int64(42), image).Return("", errors.New("disk full"))
	orderRepo.On("ReleaseReceiptHash", mock.Anything, wantHash).Return(nil)

	_, err := uc.SubmitReceipt(context.Background(), &orderdto.SubmitReceiptInput{
		OrderID: 42,
		Image:   image,
	})

	assert.Error(t, err)
	// The hash must not stay burned; a retry with the same image has to pass.
	orderRepo.AssertCalled(t, "ReleaseReceiptHash", mock.Anything, wantHash)
}

func TestSubmitReceipt_AttachFailureReleasesReservation(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	receipts := new(MockReceiptStore)
	uc := newTestUsecase(orderRepo, new(MockUserRepository), new(MockCatalogRepository), receipts, nil)

	image := []byte("payment-proof")
	sum := sha256.Sum256(image)
	wantHash := hex.EncodeToString(sum[:])

	orderRepo.On("GetOrderByID", mock.Anything, int64(42)).Return(pendingOrder(), nil)
	orderRepo.On("ReserveReceiptHash", mock.Anything, wantHash, int64(42)).Return(nil)
	receipts.On("SaveReceipt", int64(42), image).Return("/uploads/r.jpg", nil)
	orderRepo.On("AttachReceipt", mock.Anything, int64(42), "/uploads/r.jpg", 0.0, wantHash).
		Return(errors.New("connection reset"))
	orderRepo.On("ReleaseReceiptHash", mock.Anything, wantHash).Return(nil)

	_, err := uc.SubmitReceipt(context.Background(), &orderdto.SubmitReceiptInput{
		OrderID: 42,
		Image:   image,
	})

	assert.Error(t, err)
	orderRepo.AssertCalled(t, "ReleaseReceiptHash", mock.Anything, wantHash)
}

func TestSubmitReceipt_TriggerFailureDoesNotFailUpload(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	receipts := new(MockReceiptStore)
	workflow := new(MockWorkflowGateway)
	uc := newTestUsecase(orderRepo, new(MockUserRepository), new(MockCatalogRepository), receipts, workflow)

	orderRepo.On("GetOrderByID", mock.Anything, int64(42)).Return(pendingOrder(), nil)
	orderRepo.On("ReserveReceiptHash", mock.Anything, mock.Anything, int64(42)).Return(nil)
	receipts.On("SaveReceipt", int64(42), mock.Anything).Return("/uploads/r.jpg", nil)
	orderRepo.On("AttachReceipt", mock.Anything, int64(42), mock.Anything, mock.Anything, mock.Anything).Return(nil)
	workflow.On("TriggerReceiptValidation", mock.Anything, mock.Anything).
		Return(errors.New("n8n unreachable"))

	out, err := uc.SubmitReceipt(context.Background(), &orderdto.SubmitReceiptInput{
		OrderID: 42,
		Image:   []byte("some image"),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), out.OrderID)
}

func TestSubmitReceipt_WrongStatus(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	uc := newTestUsecase(orderRepo, new(MockUserRepository), new(MockCatalogRepository), nil, nil)

	paid := pendingOrder()
	paid.Status = domain.StatusPaid
	orderRepo.On("GetOrderByID", mock.Anything, int64(42)).Return(paid, nil)

	_, err := uc.SubmitReceipt(context.Background(), &orderdto.SubmitReceiptInput{
		OrderID: 42,
		Image:   []byte("late receipt"),
	})

	assert.ErrorIs(t, err, domain.ErrStatusConflict)
	orderRepo.AssertNotCalled(t, "ReserveReceiptHash", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitReceipt_EmptyImage(t *testing.T) {
	uc := newTestUsecase(new(MockOrderRepository), new(MockUserRepository), new(MockCatalogRepository), nil, nil)

	_, err := uc.SubmitReceipt(context.Background(), &orderdto.SubmitReceiptInput{OrderID: 42})

	var validationErr *domain.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestRetriggerStalledValidations(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	workflow := new(MockWorkflowGateway)
	uc := newTestUsecase(orderRepo, new(MockUserRepository), new(MockCatalogRepository), nil, workflow)

	stalled := pendingOrder()
	stalled.ReceiptImageURL = "/uploads/r.jpg"
	orderRepo.On("FindAwaitingValidation", mock.Anything, validationStallAge).
		Return([]*domain.Order{stalled}, nil)
	workflow.On("TriggerReceiptValidation", mock.Anything, mock.MatchedBy(func(req domain.ReceiptValidationRequest) bool {
		return req.OrderID == stalled.ID && req.ReceiptImageURL == "/uploads/r.jpg"
	})).Return(nil)

	err := uc.RetriggerStalledValidations(context.Background())

	assert.NoError(t, err)
	workflow.AssertExpectations(t)
}
