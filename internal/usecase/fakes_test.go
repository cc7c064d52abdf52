package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/service"
	"ubjewellers/pkg/errors"
)

type memProducts struct {
	mu          sync.Mutex
	items       map[string]*entity.Product
	seq         int
	adjustErr   error
	adjustCalls int
}

func newMemProducts(products ...*entity.Product) *memProducts {
	m := &memProducts{items: map[string]*entity.Product{}}
	for _, p := range products {
		m.items[p.ID] = p
	}
	return m
}

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == "" {
		m.seq++
		p.ID = fmt.Sprintf("p%d", m.seq)
	}
	m.items[p.ID] = p
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) List(_ context.Context, f entity.ProductFilter) ([]*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*entity.Product{}
	for _, p := range m.items {
		if f.Matches(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	entity.SortProducts(out, f.Sort)
	return out, nil
}

func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[p.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return errors.NotFound("Product", nil)
	}
	delete(m.items, id)
	return nil
}

func (m *memProducts) AdjustStock(_ context.Context, adjustments []entity.StockAdjustment) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.adjustCalls++
	if m.adjustErr != nil {
		return nil, m.adjustErr
	}
	var skipped []string
	for _, a := range adjustments {
		if _, ok := m.items[a.ProductID]; !ok {
			if a.Quantity > 0 {
				return nil, errors.NotFound("Product", nil)
			}
			skipped = append(skipped, a.ProductID)
		}
	}
	for _, a := range adjustments {
		p, ok := m.items[a.ProductID]
		if !ok {
			continue
		}
		p.Sold += a.Quantity
		p.Stock -= a.Quantity
	}
	return skipped, nil
}

func (m *memProducts) RenameCategory(_ context.Context, oldName, newName string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, p := range m.items {
		if strings.EqualFold(p.Category, oldName) {
			p.Category = newName
			n++
		}
	}
	return n, nil
}

func (m *memProducts) AddReview(_ context.Context, productID string, r entity.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[productID]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	p.Reviews = append(p.Reviews, r)
	return nil
}

func (m *memProducts) SetReviewLikes(_ context.Context, productID string, r entity.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[productID]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	if i, ok := p.ReviewByID(r.ID); ok {
		p.Reviews[i].LikeCount = r.LikeCount
		p.Reviews[i].LikedBy = r.LikedBy
	}
	return nil
}

func (m *memProducts) stock(id string) (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.items[id]
	return p.Stock, p.Sold
}

type memOrders struct {
	mu        sync.Mutex
	items     map[string]*entity.Order
	seq       int
	createErr error
	deleteErr error
	summaries map[time.Time]entity.SalesSummary
	monthly   []entity.MonthlySalesRecord
}

func newMemOrders() *memOrders {
	return &memOrders{items: map[string]*entity.Order{}, summaries: map[time.Time]entity.SalesSummary{}}
}

func (m *memOrders) Create(_ context.Context, o *entity.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if o.ID == "" {
		m.seq++
		o.ID = fmt.Sprintf("o%d", m.seq)
	}
	cp := *o
	m.items[o.ID] = &cp
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.items[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	cp := *o
	return &cp, nil
}

func (m *memOrders) ListByEmail(_ context.Context, email string) ([]*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*entity.Order{}
	for _, o := range m.items {
		if o.Email == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrders) ListAll(_ context.Context) ([]*entity.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*entity.Order{}
	for _, o := range m.items {
		out = append(out, o)
	}
	return out, nil
}

func (m *memOrders) UpdateStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.items[id]
	if !ok {
		return errors.NotFound("Order", nil)
	}
	o.OrderStatus = status
	return nil
}

func (m *memOrders) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.items[id]; !ok {
		return errors.NotFound("Order", nil)
	}
	delete(m.items, id)
	return nil
}

// Summarize answers from canned per-window summaries keyed by window start.
func (m *memOrders) Summarize(_ context.Context, from, _ time.Time) (entity.SalesSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.summaries[from], nil
}

func (m *memOrders) MonthlyTotals(_ context.Context, _, _ time.Time, _ *time.Location) ([]entity.MonthlySalesRecord, error) {
	return m.monthly, nil
}

type memUsers struct {
	mu     sync.Mutex
	items  map[string]*entity.User
	counts map[time.Time]int64
}

func newMemUsers(users ...*entity.User) *memUsers {
	m := &memUsers{items: map[string]*entity.User{}, counts: map[time.Time]int64{}}
	for _, u := range users {
		m.items[u.Email] = u
	}
	return m
}

func (m *memUsers) Upsert(_ context.Context, u *entity.User) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.items[u.Email]
	if !ok {
		cp := *u
		cp.CreatedAt = time.Now()
		cp.UpdatedAt = cp.CreatedAt
		m.items[u.Email] = &cp
		out := cp
		return &out, nil
	}
	existing.Name = u.Name
	existing.PhotoURL = u.PhotoURL
	existing.UpdatedAt = time.Now()
	out := *existing
	return &out, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.items[email]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	cp := *u
	return &cp, nil
}

func (m *memUsers) List(_ context.Context) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*entity.User{}
	for _, u := range m.items {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUsers) SetShippingAddress(_ context.Context, email string, a *entity.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.items[email]
	if !ok {
		return errors.NotFound("User", nil)
	}
	u.ShippingAddress = a
	return nil
}

func (m *memUsers) UpdateRoles(_ context.Context, email string, roles entity.RoleUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.items[email]
	if !ok {
		return errors.NotFound("User", nil)
	}
	if roles.IsAdmin != nil {
		u.IsAdmin = *roles.IsAdmin
	}
	if roles.IsSeller != nil {
		u.IsSeller = *roles.IsSeller
	}
	return nil
}

func (m *memUsers) Delete(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[email]; !ok {
		return errors.NotFound("User", nil)
	}
	delete(m.items, email)
	return nil
}

func (m *memUsers) CountCreatedBetween(_ context.Context, from, _ time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[from], nil
}

type memCarts struct {
	mu       sync.Mutex
	items    map[string]*entity.CartItem
	seq      int
	clearErr error
}

func newMemCarts() *memCarts {
	return &memCarts{items: map[string]*entity.CartItem{}}
}

func (m *memCarts) Add(_ context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.items {
		if existing.Email == item.Email && existing.ProductID == item.ProductID {
			existing.Quantity += item.Quantity
			cp := *existing
			return &cp, nil
		}
	}
	m.seq++
	item.ID = fmt.Sprintf("c%d", m.seq)
	cp := *item
	m.items[item.ID] = &cp
	return item, nil
}

func (m *memCarts) GetByID(_ context.Context, id string) (*entity.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, errors.NotFound("Cart item", nil)
	}
	cp := *item
	return &cp, nil
}

func (m *memCarts) ListByEmail(_ context.Context, email string) ([]*entity.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*entity.CartItem{}
	for _, item := range m.items {
		if item.Email == email {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *memCarts) UpdateQuantity(_ context.Context, id string, q int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return errors.NotFound("Cart item", nil)
	}
	item.Quantity = q
	return nil
}

func (m *memCarts) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return errors.NotFound("Cart item", nil)
	}
	delete(m.items, id)
	return nil
}

func (m *memCarts) ClearByEmail(_ context.Context, email string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clearErr != nil {
		return 0, m.clearErr
	}
	var n int64
	for id, item := range m.items {
		if item.Email == email {
			delete(m.items, id)
			n++
		}
	}
	return n, nil
}

func (m *memCarts) DeleteByProduct(_ context.Context, productID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, item := range m.items {
		if item.ProductID == productID {
			delete(m.items, id)
			n++
		}
	}
	return n, nil
}

type memWishlist struct {
	mu    sync.Mutex
	items []*entity.WishlistItem
}

func (m *memWishlist) Add(_ context.Context, email, productID string) (*entity.WishlistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if item.Email == email && item.ProductID == productID {
			return item, nil
		}
	}
	item := &entity.WishlistItem{ID: fmt.Sprintf("w%d", len(m.items)+1), Email: email, ProductID: productID, AddedAt: time.Now()}
	m.items = append(m.items, item)
	return item, nil
}

func (m *memWishlist) ListByEmail(_ context.Context, email string) ([]*entity.WishlistItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*entity.WishlistItem{}
	for _, item := range m.items {
		if item.Email == email {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *memWishlist) Remove(_ context.Context, email, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if item.Email == email && item.ProductID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Wishlist item", nil)
}

func (m *memWishlist) DeleteByProduct(_ context.Context, productID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.items[:0]
	var n int64
	for _, item := range m.items {
		if item.ProductID == productID {
			n++
			continue
		}
		kept = append(kept, item)
	}
	m.items = kept
	return n, nil
}

type memReviews struct {
	mu    sync.Mutex
	items map[string]*entity.Review
}

func newMemReviews() *memReviews {
	return &memReviews{items: map[string]*entity.Review{}}
}

func (m *memReviews) Create(_ context.Context, r *entity.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.items[r.ID] = &cp
	return nil
}

func (m *memReviews) GetByID(_ context.Context, id string) (*entity.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.items[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	cp := *r
	return &cp, nil
}

func (m *memReviews) List(_ context.Context) ([]*entity.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*entity.Review{}
	for _, r := range m.items {
		out = append(out, r)
	}
	return out, nil
}

func (m *memReviews) ListByProduct(_ context.Context, productID string) ([]*entity.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*entity.Review{}
	for _, r := range m.items {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReviews) Like(_ context.Context, id, email string) (*entity.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.items[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	if r.LikedByUser(email) {
		return nil, errors.Conflict("You have already liked this review")
	}
	r.LikeCount++
	r.LikedBy = append(r.LikedBy, email)
	cp := *r
	return &cp, nil
}

func (m *memReviews) DeleteByProduct(_ context.Context, productID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, r := range m.items {
		if r.ProductID == productID {
			delete(m.items, id)
			n++
		}
	}
	return n, nil
}

type memCategories struct {
	mu    sync.Mutex
	items map[string]*entity.Category
	seq   int
}

func newMemCategories(categories ...*entity.Category) *memCategories {
	m := &memCategories{items: map[string]*entity.Category{}}
	for _, c := range categories {
		m.items[c.ID] = c
	}
	return m
}

func (m *memCategories) Create(_ context.Context, c *entity.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	c.ID = fmt.Sprintf("cat%d", m.seq)
	cp := *c
	m.items[c.ID] = &cp
	return nil
}

func (m *memCategories) GetByID(_ context.Context, id string) (*entity.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.items[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	cp := *c
	return &cp, nil
}

func (m *memCategories) List(_ context.Context) ([]*entity.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*entity.Category{}
	for _, c := range m.items {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memCategories) Update(_ context.Context, c *entity.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.items[c.ID] = &cp
	return nil
}

func (m *memCategories) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

type mockPaymentProvider struct {
	mock.Mock
}

func (m *mockPaymentProvider) CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	args := m.Called(ctx, amountMinor, currency)
	return args.String(0), args.Error(1)
}

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) Sign(claims service.TokenClaims, ttl time.Duration) (string, error) {
	args := m.Called(claims, ttl)
	return args.String(0), args.Error(1)
}

type mockTokenVerifier struct {
	mock.Mock
}

func (m *mockTokenVerifier) Verify(ctx context.Context, token string) (*service.TokenClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenClaims), args.Error(1)
}

type mockImageHost struct {
	mock.Mock
}

func (m *mockImageHost) Upload(ctx context.Context, data io.Reader, name, contentType string) (string, error) {
	args := m.Called(ctx, data, name, contentType)
	return args.String(0), args.Error(1)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []entity.DashboardEvent
}

func (n *recordingNotifier) Publish(e entity.DashboardEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.events))
	for _, e := range n.events {
		out = append(out, e.Type)
	}
	return out
}
