package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/qu18354531302/product-analytics-api/infrastructure/repository/mocks"
	"github.com/qu18354531302/product-analytics-api/internal/domain"
	"github.com/qu18354531302/product-analytics-api/internal/usecases/reporting"
	"github.com/qu18354531302/product-analytics-api/pkg/apiErrors"
	"github.com/qu18354531302/product-analytics-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func newReporter(t *testing.T) (reporting.Reporter, *mocks.MockMetricRepository) {
	ctrl := gomock.NewController(t)

	productRepo := mocks.NewMockProductRepository(ctrl)
	metricRepo := mocks.NewMockMetricRepository(ctrl)
	priceRepo := mocks.NewMockPriceAdjustmentRepository(ctrl)

	return reporting.NewService(productRepo, metricRepo, priceRepo), metricRepo
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var body apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestInventoryTop_MissingDate(t *testing.T) {
	reporter, _ := newReporter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/top", nil)
	rec := httptest.NewRecorder()

	InventoryTop(reporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing date parameter", decodeError(t, rec).Error)
}

func TestInventoryTop_InvalidDate(t *testing.T) {
	reporter, _ := newReporter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/top?date=junk", nil)
	rec := httptest.NewRecorder()

	InventoryTop(reporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error, "Invalid date parameter")
}

func TestInventoryTop_OK(t *testing.T) {
	reporter, metricRepo := newReporter(t)

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	metricRepo.EXPECT().InventoryTotals(date).Return(1000.0, 2, nil)
	metricRepo.EXPECT().
		InventoryLevels(date, uint64(2)).
		Return([]domain.ProductInventory{
			{ProductName: "香肠", InventoryLevel: 700},
			{ProductName: "火腿", InventoryLevel: 300},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory/top?date=2025-06-01&limit=2", nil)
	rec := httptest.NewRecorder()

	InventoryTop(reporter).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var items []domain.InventoryRankItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	require.Len(t, items, 2)
	assert.Equal(t, 70.0, items[0].Percentage)
	assert.Equal(t, 30.0, items[1].Percentage)
}

func TestSummary_MissingEndDate(t *testing.T) {
	reporter, _ := newReporter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/summary?start_date=2025-06-01", nil)
	rec := httptest.NewRecorder()

	Summary(reporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing end_date parameter", decodeError(t, rec).Error)
}

func TestSummary_InvertedRange(t *testing.T) {
	reporter, _ := newReporter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/summary?start_date=2025-06-30&end_date=2025-06-01", nil)
	rec := httptest.NewRecorder()

	Summary(reporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummary_DataAccessFailure(t *testing.T) {
	reporter, metricRepo := newReporter(t)

	metricRepo.EXPECT().
		RangeTotals(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/api/summary?start_date=2025-06-01&end_date=2025-06-30", nil)
	rec := httptest.NewRecorder()

	Summary(reporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "Data access failed", body.Error)
	assert.NotEmpty(t, body.Details)
}

func TestUploadPriceAdjustments_MissingFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/upload/price-adjustments", nil)
	rec := httptest.NewRecorder()

	UploadPriceAdjustments(nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPriceChanges_InvalidMinPriceDiff(t *testing.T) {
	reporter, _ := newReporter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/price-changes?start_date=2025-06-01&end_date=2025-06-30&min_price_diff=junk", nil)
	rec := httptest.NewRecorder()

	PriceChanges(reporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
