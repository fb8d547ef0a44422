package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"withus/internal/core/application/usecases/commands"
	"withus/internal/core/domain/model/item"
	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/order"
	"withus/internal/core/domain/model/review"
	"withus/internal/core/domain/model/user"
	"withus/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mocks are shared across the handler tests because the unit of work
// interfaces are shared between handlers.

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, i *item.Item) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}
func (m *MockItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}
func (m *MockItemRepository) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReviewRepository) ExistsForUserAndItem(
	ctx context.Context, userID, itemID kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Bool(0), args.Error(1)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}
func (m *MockOrderUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockReviewUoW struct{ mock.Mock }

func (m *MockReviewUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReviewUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReviewUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReviewUoW) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}
func (m *MockReviewUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ReviewUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) OrderPlaced(
	ctx context.Context, o *order.Order, u *user.User, i *item.Item,
) error {
	args := m.Called(ctx, o, u, i)
	return args.Error(0)
}
func (m *MockNotifier) OrderStatusChanged(ctx context.Context, o *order.Order, u *user.User) error {
	args := m.Called(ctx, o, u)
	return args.Error(0)
}
func (m *MockNotifier) PasswordReset(ctx context.Context, u *user.User, resetLink string) error {
	args := m.Called(ctx, u, resetLink)
	return args.Error(0)
}
func (m *MockNotifier) StockAlert(ctx context.Context, lines []ports.StockAlertLine) error {
	args := m.Called(ctx, lines)
	return args.Error(0)
}

type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) IssueSessionToken(u *user.User) (string, error) {
	args := m.Called(u)
	return args.String(0), args.Error(1)
}
func (m *MockTokenService) VerifySessionToken(token string) (ports.SessionClaims, error) {
	args := m.Called(token)
	return args.Get(0).(ports.SessionClaims), args.Error(1)
}
func (m *MockTokenService) IssuePasswordResetToken(u *user.User) (string, error) {
	args := m.Called(u)
	return args.String(0), args.Error(1)
}
func (m *MockTokenService) VerifyPasswordResetToken(token string) (kernel.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)
	return args.String(0), args.Error(1)
}
func (m *MockPasswordHasher) Verify(plain, digest string) bool {
	args := m.Called(plain, digest)
	return args.Bool(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testItem(t *testing.T, price float64, stock int) *item.Item {
	t.Helper()
	i, err := item.NewItem(kernel.NewUUID(), "Mug", "Ceramic mug", "", price, "kitchen", stock)
	require.NoError(t, err)
	return i
}

func testUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Alice", "alice@example.com", "digest", role)
	require.NoError(t, err)
	return u
}

func testOrder(t *testing.T, userID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), userID, kernel.NewUUID(),
		order.Delivery, 2, 9.5, "12 High St", nil, "010-1234-5678",
	)
	require.NoError(t, err)
	return o
}
