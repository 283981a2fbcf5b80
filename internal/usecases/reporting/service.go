package reporting

import (
	"sort"
	"time"

	"github.com/qu18354531302/product-analytics-api/infrastructure/repository"
	"github.com/qu18354531302/product-analytics-api/internal/domain"
	"github.com/qu18354531302/product-analytics-api/pkg/utils"
)

const (
	// DefaultTopLimit is the inventory top-N size when no limit is given.
	DefaultTopLimit = 15
	// DefaultMinPriceDiff is the price-change report threshold.
	DefaultMinPriceDiff = 200.0
)

// Reporter exposes every read-side report of the dashboard.
type Reporter interface {
	ListProducts() ([]*domain.Product, error)
	InventoryTop(date time.Time, limit uint64) ([]domain.InventoryRankItem, error)
	InventorySummary(date time.Time) (*domain.InventorySummary, error)
	InventoryDistribution(date time.Time, limit uint64) ([]domain.InventorySlice, error)
	Summary(startDate, endDate time.Time) (*domain.Summary, error)
	SalesPriceTrend(startDate, endDate time.Time) ([]domain.SalesPricePoint, error)
	RatioTrend(startDate, endDate time.Time) ([]domain.RatioPoint, error)
	RatioStats(startDate, endDate time.Time) (*domain.RatioStats, error)
	PriceChanges(startDate, endDate time.Time, minPriceDiff float64) ([]*domain.PriceAdjustment, error)
	PriceTrends(startDate, endDate time.Time, productName string) ([]*domain.PriceTrendPoint, error)
}

type Service struct {
	productRepo repository.ProductRepository
	metricRepo  repository.MetricRepository
	priceRepo   repository.PriceAdjustmentRepository
}

func NewService(
	productRepo repository.ProductRepository,
	metricRepo repository.MetricRepository,
	priceRepo repository.PriceAdjustmentRepository,
) Reporter {
	return &Service{
		productRepo: productRepo,
		metricRepo:  metricRepo,
		priceRepo:   priceRepo,
	}
}

func (s *Service) ListProducts() ([]*domain.Product, error) {
	products, err := s.productRepo.ListAll()
	if err != nil {
		return nil, domain.NewDataAccessError("listing products", err)
	}
	return products, nil
}

// InventoryTop ranks the date's qualifying inventory. Percentages are
// shares of the total over ALL qualifying rows, so the full distribution
// always sums to 100 regardless of the limit.
func (s *Service) InventoryTop(date time.Time, limit uint64) ([]domain.InventoryRankItem, error) {
	total, _, err := s.metricRepo.InventoryTotals(date)
	if err != nil {
		return nil, domain.NewDataAccessError("loading inventory totals", err)
	}

	levels, err := s.metricRepo.InventoryLevels(date, limit)
	if err != nil {
		return nil, domain.NewDataAccessError("loading inventory levels", err)
	}

	items := make([]domain.InventoryRankItem, 0, len(levels))
	for i, level := range levels {
		items = append(items, domain.InventoryRankItem{
			ProductName:    level.ProductName,
			InventoryLevel: level.InventoryLevel,
			Percentage:     sharePercentage(level.InventoryLevel, total),
			Rank:           i + 1,
		})
	}

	return items, nil
}

func (s *Service) InventorySummary(date time.Time) (*domain.InventorySummary, error) {
	total, count, err := s.metricRepo.InventoryTotals(date)
	if err != nil {
		return nil, domain.NewDataAccessError("loading inventory totals", err)
	}

	top, err := s.metricRepo.InventoryLevels(date, DefaultTopLimit)
	if err != nil {
		return nil, domain.NewDataAccessError("loading top inventory levels", err)
	}

	var topTotal float64
	for _, level := range top {
		topTotal += level.InventoryLevel
	}

	return &domain.InventorySummary{
		TotalInventory:  total,
		Top15Total:      topTotal,
		Top15Percentage: sharePercentage(topTotal, total),
		ProductCount:    count,
	}, nil
}

func (s *Service) InventoryDistribution(date time.Time, limit uint64) ([]domain.InventorySlice, error) {
	total, _, err := s.metricRepo.InventoryTotals(date)
	if err != nil {
		return nil, domain.NewDataAccessError("loading inventory totals", err)
	}

	levels, err := s.metricRepo.InventoryLevels(date, limit)
	if err != nil {
		return nil, domain.NewDataAccessError("loading inventory levels", err)
	}

	slices := make([]domain.InventorySlice, 0, len(levels))
	for _, level := range levels {
		slices = append(slices, domain.InventorySlice{
			ProductName:    level.ProductName,
			InventoryLevel: level.InventoryLevel,
			Percentage:     sharePercentage(level.InventoryLevel, total),
		})
	}

	return slices, nil
}

// Summary sums qualifying sales and production independently over the
// range and computes the aggregate ratio once from the totals.
func (s *Service) Summary(startDate, endDate time.Time) (*domain.Summary, error) {
	totals, err := s.metricRepo.RangeTotals(startDate, endDate)
	if err != nil {
		return nil, domain.NewDataAccessError("loading range totals", err)
	}

	return &domain.Summary{
		TotalProducts:          totals.TotalProducts,
		Days:                   utils.DaysInclusive(startDate, endDate),
		TotalSales:             totals.TotalSales,
		TotalProduction:        totals.TotalProduction,
		SalesToProductionRatio: domain.SalesToProductionRatio(totals.TotalSales, totals.TotalProduction),
	}, nil
}

func (s *Service) SalesPriceTrend(startDate, endDate time.Time) ([]domain.SalesPricePoint, error) {
	points, err := s.metricRepo.SalesPriceTrend(startDate, endDate)
	if err != nil {
		return nil, domain.NewDataAccessError("loading sales-price trend", err)
	}

	for i := range points {
		if points[i].TotalSales > 0 {
			points[i].AvgPrice = points[i].TotalAmount / points[i].TotalSales
		}
	}

	return points, nil
}

// RatioTrend merges the per-day sales and production series over the
// union of their dates. A date present on only one side keeps the other
// side at 0, which also pins that day's ratio to 0 when production is
// missing.
func (s *Service) RatioTrend(startDate, endDate time.Time) ([]domain.RatioPoint, error) {
	salesByDate, productionByDate, err := s.dailyVolumes(startDate, endDate)
	if err != nil {
		return nil, err
	}

	dates := unionDates(salesByDate, productionByDate)

	points := make([]domain.RatioPoint, 0, len(dates))
	for _, date := range dates {
		sales := salesByDate[date]
		production := productionByDate[date]
		points = append(points, domain.RatioPoint{
			RecordDate:      date,
			DailySales:      sales,
			DailyProduction: production,
			Ratio:           domain.SalesToProductionRatio(sales, production),
		})
	}

	return points, nil
}

// RatioStats derives the range statistics from the same per-day series
// the trend uses. The average is the ratio of totals, not the mean of the
// daily ratios; min/max come from the per-day series.
func (s *Service) RatioStats(startDate, endDate time.Time) (*domain.RatioStats, error) {
	points, err := s.RatioTrend(startDate, endDate)
	if err != nil {
		return nil, err
	}

	var totalSales, totalProduction float64
	for _, p := range points {
		totalSales += p.DailySales
		totalProduction += p.DailyProduction
	}

	stats := domain.ComputeRatioStats(points, totalSales, totalProduction)
	return &stats, nil
}

func (s *Service) PriceChanges(startDate, endDate time.Time, minPriceDiff float64) ([]*domain.PriceAdjustment, error) {
	// Strict mode: adjustment sheets always carry a category, so rows
	// without one are data defects rather than core products.
	changes, err := s.priceRepo.ListChanges(startDate, endDate, minPriceDiff, domain.FilterStrict)
	if err != nil {
		return nil, domain.NewDataAccessError("loading price changes", err)
	}
	return changes, nil
}

func (s *Service) PriceTrends(startDate, endDate time.Time, productName string) ([]*domain.PriceTrendPoint, error) {
	trends, err := s.priceRepo.ListTrends(startDate, endDate, productName, domain.FilterStrict)
	if err != nil {
		return nil, domain.NewDataAccessError("loading price trends", err)
	}
	return trends, nil
}

func (s *Service) dailyVolumes(startDate, endDate time.Time) (map[string]float64, map[string]float64, error) {
	sales, err := s.metricRepo.DailySales(startDate, endDate)
	if err != nil {
		return nil, nil, domain.NewDataAccessError("loading daily sales", err)
	}

	production, err := s.metricRepo.DailyProduction(startDate, endDate)
	if err != nil {
		return nil, nil, domain.NewDataAccessError("loading daily production", err)
	}

	salesByDate := make(map[string]float64, len(sales))
	for _, v := range sales {
		salesByDate[v.RecordDate] = v.Volume
	}

	productionByDate := make(map[string]float64, len(production))
	for _, v := range production {
		productionByDate[v.RecordDate] = v.Volume
	}

	return salesByDate, productionByDate, nil
}

func unionDates(a, b map[string]float64) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	dates := make([]string, 0, len(a)+len(b))

	for date := range a {
		if _, ok := seen[date]; !ok {
			seen[date] = struct{}{}
			dates = append(dates, date)
		}
	}
	for date := range b {
		if _, ok := seen[date]; !ok {
			seen[date] = struct{}{}
			dates = append(dates, date)
		}
	}

	sort.Strings(dates)
	return dates
}

func sharePercentage(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(part * 100 / total)
}
