package usecase

import (
	"context"
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrderByCode(ctx context.Context, code string) (*domain.Order, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListUserOrders(ctx context.Context, userID int64, limit int) ([]*domain.Order, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, filters domain.OrderFilters, limit, offset int) ([]*domain.Order, int64, error) {
	args := m.Called(ctx, filters, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) UpdateStatusFrom(ctx context.Context, orderID int64, from, to domain.OrderStatus, patch domain.OrderStatusPatch) error {
	args := m.Called(ctx, orderID, from, to, patch)
	return args.Error(0)
}

func (m *MockOrderRepository) SetStatus(ctx context.Context, orderID int64, status domain.OrderStatus, patch domain.OrderStatusPatch) error {
	args := m.Called(ctx, orderID, status, patch)
	return args.Error(0)
}

func (m *MockOrderRepository) AttachReceipt(ctx context.Context, orderID int64, imageURL string, amount float64, imageHash string) error {
	args := m.Called(ctx, orderID, imageURL, amount, imageHash)
	return args.Error(0)
}

func (m *MockOrderRepository) RecordVerdict(ctx context.Context, orderID int64, validatedAt time.Time, verdict string) error {
	args := m.Called(ctx, orderID, validatedAt, verdict)
	return args.Error(0)
}

func (m *MockOrderRepository) ReserveReceiptHash(ctx context.Context, imageHash string, orderID int64) error {
	args := m.Called(ctx, imageHash, orderID)
	return args.Error(0)
}

func (m *MockOrderRepository) ReleaseReceiptHash(ctx context.Context, imageHash string) error {
	args := m.Called(ctx, imageHash)
	return args.Error(0)
}

func (m *MockOrderRepository) GetReceiptHash(ctx context.Context, imageHash string) (*domain.ReceiptHashEntry, error) {
	args := m.Called(ctx, imageHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReceiptHashEntry), args.Error(1)
}

func (m *MockOrderRepository) FindAwaitingValidation(ctx context.Context, olderThan time.Duration) ([]*domain.Order, error) {
	args := m.Called(ctx, olderThan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	args := m.Called(ctx, telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context, onlyActive bool) ([]*domain.Category, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context, categoryID int64, onlyActive bool) ([]*domain.Product, error) {
	args := m.Called(ctx, categoryID, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) ListPricedProducts(ctx context.Context, locationID, categoryID int64) ([]*domain.PricedProduct, error) {
	args := m.Called(ctx, locationID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PricedProduct), args.Error(1)
}

func (m *MockCatalogRepository) ListCities(ctx context.Context, onlyActive bool) ([]*domain.City, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.City), args.Error(1)
}

func (m *MockCatalogRepository) ListLocations(ctx context.Context, cityID int64, onlyActive bool) ([]*domain.Location, error) {
	args := m.Called(ctx, cityID, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Location), args.Error(1)
}

func (m *MockCatalogRepository) GetLocation(ctx context.Context, locationID int64) (*domain.Location, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockCatalogRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeactivateCategory(ctx context.Context, categoryID int64) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func (m *MockCatalogRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateProduct(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeactivateProduct(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockCatalogRepository) CreateCity(ctx context.Context, c *domain.City) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCatalogRepository) CreateLocation(ctx context.Context, l *domain.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateLocation(ctx context.Context, l *domain.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeactivateLocation(ctx context.Context, locationID int64) error {
	args := m.Called(ctx, locationID)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpsertLocationProduct(ctx context.Context, lp *domain.LocationProduct) error {
	args := m.Called(ctx, lp)
	return args.Error(0)
}

type MockReceiptStore struct {
	mock.Mock
}

func (m *MockReceiptStore) SaveReceipt(orderID int64, data []byte) (string, error) {
	args := m.Called(orderID, data)
	return args.String(0), args.Error(1)
}

func (m *MockReceiptStore) SaveImage(prefix, filename string, data []byte) (string, error) {
	args := m.Called(prefix, filename, data)
	return args.String(0), args.Error(1)
}

type MockWorkflowGateway struct {
	mock.Mock
}

func (m *MockWorkflowGateway) TriggerReceiptValidation(ctx context.Context, req domain.ReceiptValidationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockWorkflowGateway) NotifyManager(ctx context.Context, n domain.ManagerNotification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
