package console

import (
	"context"

	"restaurant-order/internal/account"
	"restaurant-order/internal/cart"
	"restaurant-order/internal/menu"
	"restaurant-order/internal/metrics"
	"restaurant-order/internal/order"
	"restaurant-order/internal/report"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, params account.RegisterParams) (*account.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountService) Login(ctx context.Context, email, password string) (*account.Account, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) Browse(ctx context.Context, category *string) ([]*menu.MenuItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.MenuItem), args.Error(1)
}

func (m *MockMenuService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockMenuService) Get(ctx context.Context, id uint) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuService) All(ctx context.Context) ([]*menu.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.MenuItem), args.Error(1)
}

func (m *MockMenuService) AddItem(ctx context.Context, params menu.AddItemParams) (*menu.MenuItem, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuService) UpdatePrice(ctx context.Context, id uint, price decimal.Decimal) error {
	return m.Called(ctx, id, price).Error(0)
}

func (m *MockMenuService) SetAvailability(ctx context.Context, id uint, available bool) error {
	return m.Called(ctx, id, available).Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) PlaceOrder(ctx context.Context, accountID uint, lines []cart.LineRequest) (*order.Receipt, error) {
	args := m.Called(ctx, accountID, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Receipt), args.Error(1)
}

func (m *MockOrderService) History(ctx context.Context, accountID uint) ([]*order.Order, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) Detail(ctx context.Context, accountID, orderID uint, isAdmin bool) (*order.Order, error) {
	args := m.Called(ctx, accountID, orderID, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) All(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) Stats() metrics.CheckoutSnapshot {
	return m.Called().Get(0).(metrics.CheckoutSnapshot)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Analytics(ctx context.Context) (*report.Analytics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Analytics), args.Error(1)
}

func (m *MockReportService) ExportMenu(ctx context.Context, path string) (int, error) {
	args := m.Called(ctx, path)
	return args.Int(0), args.Error(1)
}

func (m *MockReportService) ExportOrders(ctx context.Context, path string) (int, error) {
	args := m.Called(ctx, path)
	return args.Int(0), args.Error(1)
}
