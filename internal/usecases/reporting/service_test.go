package reporting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/qu18354531302/product-analytics-api/infrastructure/repository/mocks"
	"github.com/qu18354531302/product-analytics-api/internal/domain"
)

func newTestService(t *testing.T) (*Service, *mocks.MockProductRepository, *mocks.MockMetricRepository, *mocks.MockPriceAdjustmentRepository) {
	ctrl := gomock.NewController(t)

	productRepo := mocks.NewMockProductRepository(ctrl)
	metricRepo := mocks.NewMockMetricRepository(ctrl)
	priceRepo := mocks.NewMockPriceAdjustmentRepository(ctrl)

	svc := &Service{
		productRepo: productRepo,
		metricRepo:  metricRepo,
		priceRepo:   priceRepo,
	}

	return svc, productRepo, metricRepo, priceRepo
}

func TestService_InventoryTop(t *testing.T) {
	svc, _, metricRepo, _ := newTestService(t)

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	metricRepo.EXPECT().
		InventoryTotals(date).
		Return(1000.0, 40, nil)

	metricRepo.EXPECT().
		InventoryLevels(date, uint64(2)).
		Return([]domain.ProductInventory{
			{ProductName: "香肠", InventoryLevel: 600},
			{ProductName: "火腿", InventoryLevel: 250},
		}, nil)

	items, err := svc.InventoryTop(date, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "香肠", items[0].ProductName)
	assert.Equal(t, 1, items[0].Rank)
	assert.Equal(t, 60.0, items[0].Percentage)

	assert.Equal(t, "火腿", items[1].ProductName)
	assert.Equal(t, 2, items[1].Rank)
	assert.Equal(t, 25.0, items[1].Percentage)
}

func TestService_InventoryTop_ZeroTotal(t *testing.T) {
	svc, _, metricRepo, _ := newTestService(t)

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	metricRepo.EXPECT().InventoryTotals(date).Return(0.0, 0, nil)
	metricRepo.EXPECT().InventoryLevels(date, uint64(15)).Return([]domain.ProductInventory{}, nil)

	items, err := svc.InventoryTop(date, 15)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestService_InventorySummary(t *testing.T) {
	svc, _, metricRepo, _ := newTestService(t)

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	metricRepo.EXPECT().
		InventoryTotals(date).
		Return(2000.0, 60, nil)

	metricRepo.EXPECT().
		InventoryLevels(date, uint64(DefaultTopLimit)).
		Return([]domain.ProductInventory{
			{ProductName: "香肠", InventoryLevel: 900},
			{ProductName: "火腿", InventoryLevel: 600},
		}, nil)

	summary, err := svc.InventorySummary(date)
	require.NoError(t, err)

	assert.Equal(t, 2000.0, summary.TotalInventory)
	assert.Equal(t, 1500.0, summary.Top15Total)
	assert.Equal(t, 75.0, summary.Top15Percentage)
	assert.Equal(t, 60, summary.ProductCount)
}

func TestService_Summary(t *testing.T) {
	svc, _, metricRepo, _ := newTestService(t)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	metricRepo.EXPECT().
		RangeTotals(start, end).
		Return(&domain.RangeTotals{
			TotalSales:      12500.5,
			TotalProduction: 13200.8,
			TotalProducts:   42,
		}, nil)

	summary, err := svc.Summary(start, end)
	require.NoError(t, err)

	assert.Equal(t, 42, summary.TotalProducts)
	assert.Equal(t, 30, summary.Days)
	assert.Equal(t, 12500.5, summary.TotalSales)
	assert.Equal(t, 13200.8, summary.TotalProduction)
	assert.InDelta(t, 94.7, summary.SalesToProductionRatio, 0.01)
}

func TestService_Summary_RepoError(t *testing.T) {
	svc, _, metricRepo, _ := newTestService(t)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	metricRepo.EXPECT().
		RangeTotals(start, end).
		Return(nil, errors.New("connection refused"))

	summary, err := svc.Summary(start, end)
	assert.Nil(t, summary)

	var dataErr *domain.DataAccessError
	require.ErrorAs(t, err, &dataErr)
}

func TestService_SalesPriceTrend(t *testing.T) {
	svc, _, metricRepo, _ := newTestService(t)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	metricRepo.EXPECT().
		SalesPriceTrend(start, end).
		Return([]domain.SalesPricePoint{
			{RecordDate: "2025-06-01", TotalSales: 100, TotalAmount: 1250},
			{RecordDate: "2025-06-02", TotalSales: 0, TotalAmount: 0},
		}, nil)

	points, err := svc.SalesPriceTrend(start, end)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, 12.5, points[0].AvgPrice)
	assert.Equal(t, 0.0, points[1].AvgPrice)
}

func TestService_RatioTrend(t *testing.T) {
	svc, _, metricRepo, _ := newTestService(t)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	metricRepo.EXPECT().
		DailySales(start, end).
		Return([]domain.DailyVolume{
			{RecordDate: "2025-06-01", Volume: 80},
			{RecordDate: "2025-06-03", Volume: 50},
		}, nil)

	metricRepo.EXPECT().
		DailyProduction(start, end).
		Return([]domain.DailyVolume{
			{RecordDate: "2025-06-01", Volume: 100},
			{RecordDate: "2025-06-02", Volume: 40},
		}, nil)

	points, err := svc.RatioTrend(start, end)
	require.NoError(t, err)
	require.Len(t, points, 3)

	// Dates come from the union of both series, sorted ascending.
	assert.Equal(t, "2025-06-01", points[0].RecordDate)
	assert.Equal(t, 80.0, points[0].Ratio)

	assert.Equal(t, "2025-06-02", points[1].RecordDate)
	assert.Equal(t, 0.0, points[1].DailySales)
	assert.Equal(t, 0.0, points[1].Ratio)

	assert.Equal(t, "2025-06-03", points[2].RecordDate)
	assert.Equal(t, 0.0, points[2].DailyProduction)
	assert.Equal(t, 0.0, points[2].Ratio)
}

func TestService_RatioStats(t *testing.T) {
	svc, _, metricRepo, _ := newTestService(t)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	metricRepo.EXPECT().
		DailySales(start, end).
		Return([]domain.DailyVolume{
			{RecordDate: "2025-06-01", Volume: 50},
			{RecordDate: "2025-06-02", Volume: 600},
		}, nil)

	metricRepo.EXPECT().
		DailyProduction(start, end).
		Return([]domain.DailyVolume{
			{RecordDate: "2025-06-01", Volume: 100},
			{RecordDate: "2025-06-02", Volume: 100},
		}, nil)

	stats, err := svc.RatioStats(start, end)
	require.NoError(t, err)

	// Average is the ratio of the totals, not the mean of daily ratios.
	assert.Equal(t, 325.0, stats.AvgRatio)
	assert.Equal(t, 50.0, stats.MinRatio)
	// Day two clips at the cap.
	assert.Equal(t, 500.0, stats.MaxRatio)
	assert.Equal(t, 2, stats.TotalDays)
	assert.Equal(t, 650.0, stats.TotalSales)
	assert.Equal(t, 200.0, stats.TotalProduction)
}

func TestService_PriceChanges_UsesStrictMode(t *testing.T) {
	svc, _, _, priceRepo := newTestService(t)

	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	expected := []*domain.PriceAdjustment{
		{ProductName: "香肠", CurrentPrice: 10500, PriceDifference: 500},
	}

	priceRepo.EXPECT().
		ListChanges(start, end, 200.0, domain.FilterStrict).
		Return(expected, nil)

	changes, err := svc.PriceChanges(start, end, 200.0)
	require.NoError(t, err)
	assert.Equal(t, expected, changes)
}

func TestService_PriceTrends(t *testing.T) {
	svc, _, _, priceRepo := newTestService(t)

	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	expected := []*domain.PriceTrendPoint{
		{AdjustmentDate: "2025-05-10", ProductName: "香肠", CurrentPrice: 10500},
	}

	priceRepo.EXPECT().
		ListTrends(start, end, "香肠", domain.FilterStrict).
		Return(expected, nil)

	trends, err := svc.PriceTrends(start, end, "香肠")
	require.NoError(t, err)
	assert.Equal(t, expected, trends)
}

func TestService_ListProducts(t *testing.T) {
	svc, productRepo, _, _ := newTestService(t)

	category := "产成品"
	expected := []*domain.Product{
		{ID: 1, Name: "香肠", Category: &category},
	}

	productRepo.EXPECT().ListAll().Return(expected, nil)

	products, err := svc.ListProducts()
	require.NoError(t, err)
	assert.Equal(t, expected, products)
}
