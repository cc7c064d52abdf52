package handler

import (
	"context"
	"io"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"ubjewellers/internal/adapter/api"
	"ubjewellers/internal/domain/entity"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = api.NewValidator()
	return e
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context, f entity.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, f)
	p, _ := args.Get(0).([]*entity.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepo) AdjustStock(ctx context.Context, adj []entity.StockAdjustment) ([]string, error) {
	args := m.Called(ctx, adj)
	skipped, _ := args.Get(0).([]string)
	return skipped, args.Error(1)
}

func (m *mockProductRepo) RenameCategory(ctx context.Context, oldName, newName string) (int64, error) {
	args := m.Called(ctx, oldName, newName)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) AddReview(ctx context.Context, productID string, r entity.Review) error {
	return m.Called(ctx, productID, r).Error(0)
}

func (m *mockProductRepo) SetReviewLikes(ctx context.Context, productID string, r entity.Review) error {
	return m.Called(ctx, productID, r).Error(0)
}

type mockPaymentProvider struct {
	mock.Mock
}

func (m *mockPaymentProvider) CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	args := m.Called(ctx, amountMinor, currency)
	return args.String(0), args.Error(1)
}

type mockImageHost struct {
	mock.Mock
}

func (m *mockImageHost) Upload(ctx context.Context, data io.Reader, name, contentType string) (string, error) {
	args := m.Called(ctx, data, name, contentType)
	return args.String(0), args.Error(1)
}

type stubUsers struct {
	users map[string]*entity.User
}

func (s *stubUsers) Upsert(_ context.Context, u *entity.User) (*entity.User, error) {
	s.users[u.Email] = u
	return u, nil
}

func (s *stubUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, notFound("User")
}

func (s *stubUsers) List(context.Context) ([]*entity.User, error) {
	out := []*entity.User{}
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUsers) SetShippingAddress(context.Context, string, *entity.Address) error {
	return nil
}

func (s *stubUsers) UpdateRoles(context.Context, string, entity.RoleUpdate) error {
	return nil
}

func (s *stubUsers) Delete(context.Context, string) error {
	return nil
}

func (s *stubUsers) CountCreatedBetween(context.Context, time.Time, time.Time) (int64, error) {
	return 0, nil
}
