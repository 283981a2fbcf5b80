package ingesting

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/qu18354531302/product-analytics-api/infrastructure/repository"
	"github.com/qu18354531302/product-analytics-api/internal/config"
	"github.com/qu18354531302/product-analytics-api/internal/domain"
	"github.com/qu18354531302/product-analytics-api/pkg/log"
	"github.com/qu18354531302/product-analytics-api/pkg/utils"
)

// BatchValidationError rejects a daily-metric upload whose row error rate
// crossed the configured threshold. Nothing is persisted in that case.
type BatchValidationError struct {
	TotalRows int
	ErrorRows int
	Errors    []string
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("too many invalid rows: %d of %d failed validation", e.ErrorRows, e.TotalRows)
}

// Ingestor handles the two spreadsheet upload flows.
type Ingestor interface {
	IngestPriceAdjustments(ctx context.Context, file io.Reader) (*domain.IngestResult, error)
	IngestDailyMetrics(ctx context.Context, file io.Reader) (*domain.MetricUploadResult, error)
}

type Service struct {
	productRepo repository.ProductRepository
	priceRepo   repository.PriceAdjustmentRepository
	metricRepo  repository.MetricRepository
	cfg         config.Ingestion
}

func NewService(
	productRepo repository.ProductRepository,
	priceRepo repository.PriceAdjustmentRepository,
	metricRepo repository.MetricRepository,
	cfg config.Ingestion,
) Ingestor {
	return &Service{
		productRepo: productRepo,
		priceRepo:   priceRepo,
		metricRepo:  metricRepo,
		cfg:         cfg,
	}
}

// IngestPriceAdjustments processes every sheet of an adjustment workbook.
// Sheet-level failures are collected, never fatal: one bad sheet must not
// discard the others. Only an unreadable workbook aborts the request.
func (s *Service) IngestPriceAdjustments(ctx context.Context, file io.Reader) (*domain.IngestResult, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, domain.NewValidationError("unable to read workbook: %v", err)
	}
	defer workbook.Close()

	batchID, _ := utils.GenerateID()
	logger := log.ForContext(ctx).WithField("batch_id", batchID)

	result := &domain.IngestResult{}
	// Product IDs resolved once per batch so the same name across sheets
	// and templates never creates duplicate products.
	productIDs := make(map[string]int64)

	for _, sheetName := range workbook.GetSheetList() {
		meta, err := parseSheetName(sheetName, s.cfg.PriceSheetYear)
		if err != nil {
			logger.WithError(err).Warn("skipping sheet with unrecognized name")
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		rows, err := workbook.GetRows(sheetName)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("sheet %q: reading rows: %v", sheetName, err))
			continue
		}

		adjustments := parseSheetRows(rows, meta)

		resolved := make([]*domain.PriceAdjustment, 0, len(adjustments))
		for _, adj := range adjustments {
			productID, err := s.resolveProduct(productIDs, adj.ProductName, adj.Category)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("sheet %q: product %q: %v", sheetName, adj.ProductName, err))
				continue
			}
			adj.ProductID = productID
			resolved = append(resolved, adj)
		}

		if len(resolved) == 0 {
			continue
		}

		if err := s.priceRepo.InsertBatch(ctx, resolved); err != nil {
			logger.WithError(err).WithField("sheet", sheetName).Error("persisting adjustment sheet failed")
			result.Errors = append(result.Errors, fmt.Sprintf("sheet %q: persisting adjustments: %v", sheetName, err))
			continue
		}

		result.ProcessedRecords += len(resolved)
	}

	logger.WithFields(log.Fields{
		"processed_records": result.ProcessedRecords,
		"sheet_errors":      len(result.Errors),
	}).Info("price adjustment ingestion finished")

	return result, nil
}

func (s *Service) resolveProduct(cache map[string]int64, name string, category *string) (int64, error) {
	if id, ok := cache[name]; ok {
		return id, nil
	}

	id, found, err := s.productRepo.FindIDByName(name)
	if err != nil {
		return 0, err
	}
	if !found {
		id, err = s.productRepo.Create(name, category)
		if err != nil {
			return 0, err
		}
	}

	cache[name] = id
	return id, nil
}

// metricColumns maps upload header names to DailyMetric fields.
var metricColumns = []string{
	"product_id",
	"record_date",
	"production_volume",
	"sales_volume",
	"inventory_level",
	"average_price",
	"sales_amount",
}

// IngestDailyMetrics bulk-loads daily metrics from the first sheet of the
// uploaded workbook. Rows failing validation are skipped and reported; the
// whole batch is rejected only when the error share exceeds the configured
// rate, so a handful of typos never blocks a day's upload.
func (s *Service) IngestDailyMetrics(ctx context.Context, file io.Reader) (*domain.MetricUploadResult, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, domain.NewValidationError("unable to read workbook: %v", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.NewValidationError("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, domain.NewValidationError("unable to read sheet %q: %v", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, domain.NewValidationError("sheet %q has no data rows", sheets[0])
	}

	columns := mapHeaderColumns(rows[0])
	if _, ok := columns["product_id"]; !ok {
		return nil, domain.NewValidationError("missing required column product_id")
	}
	if _, ok := columns["record_date"]; !ok {
		return nil, domain.NewValidationError("missing required column record_date")
	}

	batchID, _ := utils.GenerateID()
	logger := log.ForContext(ctx).WithField("batch_id", batchID)

	result := &domain.MetricUploadResult{}
	metrics := make([]domain.DailyMetric, 0, len(rows)-1)

	for i := 1; i < len(rows); i++ {
		metric, err := parseMetricRow(rows[i], columns)
		if err != nil {
			result.SkippedRows++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		metrics = append(metrics, *metric)
	}

	totalRows := len(rows) - 1
	if float64(result.SkippedRows) > s.cfg.UploadMaxErrorRate*float64(totalRows) {
		logger.WithFields(log.Fields{
			"total_rows": totalRows,
			"error_rows": result.SkippedRows,
		}).Warn("rejecting daily metric upload, error rate too high")
		return nil, &BatchValidationError{
			TotalRows: totalRows,
			ErrorRows: result.SkippedRows,
			Errors:    result.Errors,
		}
	}

	if len(metrics) > 0 {
		if err := s.metricRepo.InsertBatch(ctx, metrics); err != nil {
			return nil, domain.NewDataAccessError("persisting daily metrics", err)
		}
	}

	result.ProcessedRows = len(metrics)

	logger.WithFields(log.Fields{
		"processed_rows": result.ProcessedRows,
		"skipped_rows":   result.SkippedRows,
	}).Info("daily metric upload finished")

	return result, nil
}

func mapHeaderColumns(header []string) map[string]int {
	columns := make(map[string]int, len(metricColumns))
	for idx, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		for _, known := range metricColumns {
			if name == known {
				columns[known] = idx
				break
			}
		}
	}
	return columns
}

func parseMetricRow(row []string, columns map[string]int) (*domain.DailyMetric, error) {
	rawID := strings.TrimSpace(cellAt(row, columns["product_id"]))
	productID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || productID <= 0 {
		return nil, fmt.Errorf("invalid product_id %q", rawID)
	}

	rawDate := strings.TrimSpace(cellAt(row, columns["record_date"]))
	recordDate, err := parseRecordDate(rawDate)
	if err != nil {
		return nil, fmt.Errorf("invalid record_date %q", rawDate)
	}

	metric := &domain.DailyMetric{
		ProductID:  productID,
		RecordDate: recordDate,
	}

	numericFields := map[string]**float64{
		"production_volume": &metric.ProductionVolume,
		"sales_volume":      &metric.SalesVolume,
		"inventory_level":   &metric.InventoryLevel,
		"average_price":     &metric.AveragePrice,
		"sales_amount":      &metric.SalesAmount,
	}

	for name, target := range numericFields {
		idx, ok := columns[name]
		if !ok {
			continue
		}
		raw := strings.TrimSpace(cellAt(row, idx))
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", name, raw)
		}
		if value < 0 {
			return nil, fmt.Errorf("negative %s %q", name, raw)
		}
		*target = &value
	}

	return metric, nil
}

// parseRecordDate accepts the date formats spreadsheets commonly carry and
// normalizes to YYYY-MM-DD.
func parseRecordDate(raw string) (string, error) {
	for _, layout := range []string{time.DateOnly, "2006/1/2"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(time.DateOnly), nil
		}
	}
	return "", fmt.Errorf("unparseable date")
}
