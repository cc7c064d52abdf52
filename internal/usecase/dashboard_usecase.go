package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"ubjewellers/internal/domain/analytics"
	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
)

const incomeMonths = 6

type DashboardConfig struct {
	Location         *time.Location
	IncomeOrder      string
	SalesSlots       int
	TopCategoryLimit int
}

type DashboardUseCase struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	cfg         DashboardConfig
}

func NewDashboardUseCase(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	cfg DashboardConfig,
) *DashboardUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.SalesSlots <= 0 {
		cfg.SalesSlots = analytics.DefaultSalesSlots
	}
	if cfg.TopCategoryLimit <= 0 {
		cfg.TopCategoryLimit = analytics.DefaultTopCategoryLimit
	}
	return &DashboardUseCase{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		cfg:         cfg,
	}
}

// ComputeStats compares the month to date with the whole previous month.
func (uc *DashboardUseCase) ComputeStats(ctx context.Context, now time.Time) (*entity.DashboardStats, error) {
	current, previous := analytics.CurrentAndPrevious(now, uc.cfg.Location)

	var (
		curSales, prevSales         entity.SalesSummary
		curCustomers, prevCustomers int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		curSales, err = uc.orderRepo.Summarize(gctx, current.From, current.To)
		return err
	})
	g.Go(func() error {
		var err error
		prevSales, err = uc.orderRepo.Summarize(gctx, previous.From, previous.To)
		return err
	})
	g.Go(func() error {
		var err error
		curCustomers, err = uc.userRepo.CountCreatedBetween(gctx, current.From, current.To)
		return err
	})
	g.Go(func() error {
		var err error
		prevCustomers, err = uc.userRepo.CountCreatedBetween(gctx, previous.From, previous.To)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	curSales = sanitizeSummary(curSales)
	prevSales = sanitizeSummary(prevSales)

	return &entity.DashboardStats{
		CurrentMonthData:     entity.MonthSummary{SalesSummary: curSales, MonthName: current.MonthName(), Year: current.Year()},
		LastMonthData:        entity.MonthSummary{SalesSummary: prevSales, MonthName: previous.MonthName(), Year: previous.Year()},
		CurrentMonthCustomer: curCustomers,
		LastMonthCustomer:    prevCustomers,
		SalesChange:          analytics.Compare(curSales.TotalSells, prevSales.TotalSells),
		OrdersChange:         analytics.Compare(float64(curSales.TotalOrders), float64(prevSales.TotalOrders)),
		AverageOrderChange:   analytics.Compare(curSales.AverageOrderValue, prevSales.AverageOrderValue),
		NewCustomersChange:   analytics.Compare(float64(curCustomers), float64(prevCustomers)),
	}, nil
}

// ComputeIncomeStats summarizes each of the trailing six months, the current
// one included.
func (uc *DashboardUseCase) ComputeIncomeStats(ctx context.Context, now time.Time) ([]entity.IncomeStat, error) {
	windows := analytics.TrailingMonths(now, incomeMonths, uc.cfg.Location)
	stats := make([]entity.IncomeStat, len(windows))

	g, gctx := errgroup.WithContext(ctx)
	for i, w := range windows {
		g.Go(func() error {
			summary, err := uc.orderRepo.Summarize(gctx, w.From, w.To)
			if err != nil {
				return err
			}
			stats[i] = analytics.IncomeStat(w, sanitizeSummary(summary))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return analytics.OrderIncomeStats(stats, uc.cfg.IncomeOrder), nil
}

// SalesSeries returns this year's monthly totals laid onto the fixed chart series.
func (uc *DashboardUseCase) SalesSeries(ctx context.Context, now time.Time) ([]entity.MonthlySales, error) {
	ytd := analytics.YearToDate(now, uc.cfg.Location)
	records, err := uc.orderRepo.MonthlyTotals(ctx, ytd.From, ytd.To, uc.cfg.Location)
	if err != nil {
		return nil, err
	}
	return analytics.FormatMonthlySales(records, uc.cfg.SalesSlots), nil
}

func (uc *DashboardUseCase) TopCategories(ctx context.Context, limit int) ([]entity.TopCategory, error) {
	if limit <= 0 {
		limit = uc.cfg.TopCategoryLimit
	}
	products, err := uc.productRepo.List(ctx, entity.ProductFilter{})
	if err != nil {
		return nil, err
	}
	return analytics.TopSellingCategories(products, limit), nil
}

// SellerStats totals a seller's listings. Revenue is sold units times the
// current price.
func (uc *DashboardUseCase) SellerStats(ctx context.Context, sellerEmail string) (*entity.SellerStats, error) {
	products, err := uc.productRepo.List(ctx, entity.ProductFilter{SellerEmail: sellerEmail})
	if err != nil {
		return nil, err
	}

	stats := &entity.SellerStats{ProductCount: len(products), TopProducts: []entity.ProductSales{}}
	revenue := decimal.Zero
	sales := make([]entity.ProductSales, 0, len(products))

	for _, p := range products {
		stats.TotalStock += p.Stock
		stats.TotalSold += p.Sold

		r := p.Price.Decimal().Mul(decimal.NewFromInt(int64(p.Sold)))
		revenue = revenue.Add(r)
		sales = append(sales, entity.ProductSales{
			ProductID: p.ID,
			Name:      p.Name,
			Sold:      p.Sold,
			Revenue:   r.Round(2).InexactFloat64(),
		})
	}

	sort.SliceStable(sales, func(i, j int) bool { return sales[i].Sold > sales[j].Sold })
	if len(sales) > 5 {
		sales = sales[:5]
	}
	stats.TopProducts = append(stats.TopProducts, sales...)
	stats.Revenue = revenue.StringFixed(2)

	return stats, nil
}

func sanitizeSummary(s entity.SalesSummary) entity.SalesSummary {
	s.TotalSells = analytics.Finite(s.TotalSells)
	s.AverageOrderValue = analytics.Finite(s.AverageOrderValue)
	if s.TotalOrders == 0 {
		s.AverageOrderValue = 0
	}
	return s
}
