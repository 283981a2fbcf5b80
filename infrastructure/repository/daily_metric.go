package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/qu18354531302/product-analytics-api/infrastructure/database/postgres"
	"github.com/qu18354531302/product-analytics-api/internal/domain"
)

const (
	dailyMetricsTable = "daily_metrics dm"
	productsJoin      = "products p ON dm.product_id = p.product_id"
	recordDateText    = "to_char(dm.record_date, 'YYYY-MM-DD')"
)

// metricProductCols binds the product filter to the joined row shape used
// by every metric query.
var metricProductCols = domain.FilterColumns{
	Name:     "p.product_name",
	Category: "p.category",
}

type MetricRepository interface {
	InventoryLevels(date time.Time, limit uint64) ([]domain.ProductInventory, error)
	InventoryTotals(date time.Time) (float64, int, error)
	RangeTotals(startDate, endDate time.Time) (*domain.RangeTotals, error)
	DailySales(startDate, endDate time.Time) ([]domain.DailyVolume, error)
	DailyProduction(startDate, endDate time.Time) ([]domain.DailyVolume, error)
	SalesPriceTrend(startDate, endDate time.Time) ([]domain.SalesPricePoint, error)
	InsertBatch(ctx context.Context, metrics []domain.DailyMetric) error
}

type metricRepository struct {
	conn *postgres.Connection
}

func NewMetricRepository(conn *postgres.Connection) MetricRepository {
	return &metricRepository{
		conn: conn,
	}
}

// qualifyingInventory restricts to rows whose inventory level is present
// and positive and whose product passes the relaxed filter.
func qualifyingInventory(date time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select().
		From(dailyMetricsTable).
		Join(productsJoin).
		Where(squirrel.Eq{"dm.record_date": date.Format(time.DateOnly)}).
		Where("dm.inventory_level IS NOT NULL AND dm.inventory_level > 0").
		Where(metricProductCols.Clause(domain.FilterRelaxed)).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *metricRepository) InventoryLevels(date time.Time, limit uint64) ([]domain.ProductInventory, error) {
	qb := qualifyingInventory(date).
		Columns("p.product_name", "dm.inventory_level").
		OrderBy("dm.inventory_level DESC")
	if limit > 0 {
		qb = qb.Limit(limit)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying inventory levels: %w", err)
	}
	defer rows.Close()

	levels := make([]domain.ProductInventory, 0)
	for rows.Next() {
		var item domain.ProductInventory
		if err := rows.Scan(&item.ProductName, &item.InventoryLevel); err != nil {
			return nil, fmt.Errorf("scanning inventory row: %w", err)
		}
		levels = append(levels, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating inventory rows: %w", err)
	}

	return levels, nil
}

func (r *metricRepository) InventoryTotals(date time.Time) (float64, int, error) {
	query, args, err := qualifyingInventory(date).
		Columns("COALESCE(SUM(dm.inventory_level), 0)", "COUNT(DISTINCT p.product_id)").
		ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("building query: %w", err)
	}

	var total float64
	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&total, &count); err != nil {
		return 0, 0, fmt.Errorf("querying inventory totals: %w", err)
	}

	return total, count, nil
}

// RangeTotals sums qualifying sales and production independently over the
// range. The sums do not require date alignment between the two sides;
// only the per-day trend unions dates.
func (r *metricRepository) RangeTotals(startDate, endDate time.Time) (*domain.RangeTotals, error) {
	totals := &domain.RangeTotals{}

	sales, err := r.totalVolume(startDate, endDate, "dm.sales_volume")
	if err != nil {
		return nil, err
	}
	totals.TotalSales = sales

	production, err := r.totalVolume(startDate, endDate, "dm.production_volume")
	if err != nil {
		return nil, err
	}
	totals.TotalProduction = production

	query, args, err := squirrel.
		Select("COUNT(DISTINCT p.product_id)").
		From(dailyMetricsTable).
		Join(productsJoin).
		Where(r.dateRange(startDate, endDate)).
		Where(metricProductCols.Clause(domain.FilterRelaxed)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&totals.TotalProducts); err != nil {
		return nil, fmt.Errorf("counting qualifying products: %w", err)
	}

	return totals, nil
}

// totalVolume sums one volume column over the range. The CASE zeroes the
// contribution of products failing the name rule while the surrounding
// WHERE drops non-qualifying rows before the join-level aggregation.
func (r *metricRepository) totalVolume(startDate, endDate time.Time, column string) (float64, error) {
	sumExpr := fmt.Sprintf(
		"COALESCE(SUM(CASE WHEN %s THEN %s ELSE 0 END), 0)",
		metricProductCols.NameClause(), column,
	)

	query, args, err := squirrel.
		Select(sumExpr).
		From(dailyMetricsTable).
		Join(productsJoin).
		Where(r.dateRange(startDate, endDate)).
		Where(fmt.Sprintf("%s IS NOT NULL AND %s > 0", column, column)).
		Where(metricProductCols.Clause(domain.FilterRelaxed)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing %s: %w", column, err)
	}

	return total, nil
}

func (r *metricRepository) DailySales(startDate, endDate time.Time) ([]domain.DailyVolume, error) {
	return r.dailyVolume(startDate, endDate, "dm.sales_volume")
}

func (r *metricRepository) DailyProduction(startDate, endDate time.Time) ([]domain.DailyVolume, error) {
	return r.dailyVolume(startDate, endDate, "dm.production_volume")
}

func (r *metricRepository) dailyVolume(startDate, endDate time.Time, column string) ([]domain.DailyVolume, error) {
	sumExpr := fmt.Sprintf(
		"COALESCE(SUM(CASE WHEN %s THEN %s ELSE 0 END), 0)",
		metricProductCols.NameClause(), column,
	)

	query, args, err := squirrel.
		Select(recordDateText, sumExpr).
		From(dailyMetricsTable).
		Join(productsJoin).
		Where(r.dateRange(startDate, endDate)).
		Where(fmt.Sprintf("%s IS NOT NULL AND %s > 0", column, column)).
		Where(metricProductCols.Clause(domain.FilterRelaxed)).
		GroupBy("dm.record_date").
		OrderBy("dm.record_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying daily %s: %w", column, err)
	}
	defer rows.Close()

	volumes := make([]domain.DailyVolume, 0)
	for rows.Next() {
		var v domain.DailyVolume
		if err := rows.Scan(&v.RecordDate, &v.Volume); err != nil {
			return nil, fmt.Errorf("scanning daily volume: %w", err)
		}
		volumes = append(volumes, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily volume rows: %w", err)
	}

	return volumes, nil
}

func (r *metricRepository) SalesPriceTrend(startDate, endDate time.Time) ([]domain.SalesPricePoint, error) {
	query, args, err := squirrel.
		Select(
			recordDateText,
			"COALESCE(SUM(dm.sales_volume), 0)",
			"COALESCE(SUM(dm.sales_amount), 0)",
		).
		From(dailyMetricsTable).
		Join(productsJoin).
		Where(r.dateRange(startDate, endDate)).
		Where("dm.sales_volume IS NOT NULL AND dm.sales_volume > 0").
		Where(metricProductCols.Clause(domain.FilterRelaxed)).
		GroupBy("dm.record_date").
		OrderBy("dm.record_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sales-price trend: %w", err)
	}
	defer rows.Close()

	points := make([]domain.SalesPricePoint, 0)
	for rows.Next() {
		var p domain.SalesPricePoint
		if err := rows.Scan(&p.RecordDate, &p.TotalSales, &p.TotalAmount); err != nil {
			return nil, fmt.Errorf("scanning trend row: %w", err)
		}
		points = append(points, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trend rows: %w", err)
	}

	return points, nil
}

// InsertBatch persists one upload of daily metrics in a single
// transaction. Re-uploading a (product, date) pair overwrites the day.
func (r *metricRepository) InsertBatch(ctx context.Context, metrics []domain.DailyMetric) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO daily_metrics
				(product_id, record_date, production_volume, sales_volume, inventory_level, average_price, sales_amount)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (product_id, record_date) DO UPDATE SET
				production_volume = EXCLUDED.production_volume,
				sales_volume = EXCLUDED.sales_volume,
				inventory_level = EXCLUDED.inventory_level,
				average_price = EXCLUDED.average_price,
				sales_amount = EXCLUDED.sales_amount
		`)
		if err != nil {
			return fmt.Errorf("preparing metric insert: %w", err)
		}
		defer stmt.Close()

		for _, m := range metrics {
			_, err := stmt.ExecContext(ctx,
				m.ProductID,
				m.RecordDate,
				m.ProductionVolume,
				m.SalesVolume,
				m.InventoryLevel,
				m.AveragePrice,
				m.SalesAmount,
			)
			if err != nil {
				return fmt.Errorf("inserting metric for product %d on %s: %w", m.ProductID, m.RecordDate, err)
			}
		}

		return nil
	})
}

func (r *metricRepository) dateRange(startDate, endDate time.Time) squirrel.Sqlizer {
	return squirrel.And{
		squirrel.GtOrEq{"dm.record_date": startDate.Format(time.DateOnly)},
		squirrel.LtOrEq{"dm.record_date": endDate.Format(time.DateOnly)},
	}
}
