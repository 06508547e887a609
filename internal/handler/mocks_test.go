package handler

import (
	"context"
	"io"

	"stylekart/internal/model"
	"stylekart/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockCatalogService) Update(ctx context.Context, id string, input model.ProductInput) (*model.Product, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockCatalogService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockIdentityService is a mock implementation of service.IdentityService.
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) Signup(ctx context.Context, input service.SignupInput) (*model.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockIdentityService) Login(ctx context.Context, email, password string, role model.Role) (*model.User, bool, error) {
	args := m.Called(ctx, email, password, role)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.Bool(1), args.Error(2)
}

func (m *MockIdentityService) AddToWishlist(ctx context.Context, email, productID string) ([]model.WishlistEntry, error) {
	args := m.Called(ctx, email, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WishlistEntry), args.Error(1)
}

func (m *MockIdentityService) RemoveFromWishlist(ctx context.Context, email, productID string) ([]model.WishlistEntry, error) {
	args := m.Called(ctx, email, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WishlistEntry), args.Error(1)
}

func (m *MockIdentityService) GetWishlist(ctx context.Context, email string) []model.WishlistEntry {
	args := m.Called(ctx, email)
	return args.Get(0).([]model.WishlistEntry)
}

func (m *MockIdentityService) AddToCart(ctx context.Context, email, productID string, quantity int) ([]model.CartEntry, error) {
	args := m.Called(ctx, email, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartEntry), args.Error(1)
}

func (m *MockIdentityService) RemoveFromCart(ctx context.Context, email, productID string) ([]model.CartEntry, error) {
	args := m.Called(ctx, email, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CartEntry), args.Error(1)
}

func (m *MockIdentityService) GetCart(ctx context.Context, email string) []model.CartEntry {
	args := m.Called(ctx, email)
	return args.Get(0).([]model.CartEntry)
}

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id, status string) (*model.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

// stubStore is an image store returning a fixed source URL.
type stubStore struct {
	source string
	err    error
}

func (s *stubStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.source, nil
}
