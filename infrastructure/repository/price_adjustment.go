package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/qu18354531302/product-analytics-api/infrastructure/database/postgres"
	"github.com/qu18354531302/product-analytics-api/internal/domain"
)

const (
	priceAdjustmentsTable = "price_adjustments pa"
	adjustmentDateText    = "to_char(pa.adjustment_date, 'YYYY-MM-DD')"
)

// adjustmentCols binds the product filter to the denormalized
// price-adjustment row shape. No join with products is needed.
var adjustmentCols = domain.FilterColumns{
	Name:     "pa.product_name",
	Category: "pa.category",
}

type PriceAdjustmentRepository interface {
	ListChanges(startDate, endDate time.Time, minPriceDiff float64, mode domain.FilterMode) ([]*domain.PriceAdjustment, error)
	ListTrends(startDate, endDate time.Time, productName string, mode domain.FilterMode) ([]*domain.PriceTrendPoint, error)
	InsertBatch(ctx context.Context, adjustments []*domain.PriceAdjustment) error
}

type priceAdjustmentRepository struct {
	conn *postgres.Connection
}

func NewPriceAdjustmentRepository(conn *postgres.Connection) PriceAdjustmentRepository {
	return &priceAdjustmentRepository{
		conn: conn,
	}
}

func (r *priceAdjustmentRepository) ListChanges(
	startDate, endDate time.Time,
	minPriceDiff float64,
	mode domain.FilterMode,
) ([]*domain.PriceAdjustment, error) {
	query, args, err := squirrel.
		Select(
			adjustmentDateText,
			"pa.product_id",
			"pa.product_name",
			"pa.specification",
			"pa.adjustment_count",
			"pa.previous_price",
			"pa.current_price",
			"pa.price_difference",
			"pa.category",
		).
		From(priceAdjustmentsTable).
		Where(r.dateRange(startDate, endDate)).
		Where(squirrel.Expr("ABS(pa.price_difference) >= ?", minPriceDiff)).
		Where(adjustmentCols.Clause(mode)).
		OrderBy("pa.adjustment_date DESC", "ABS(pa.price_difference) DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying price changes: %w", err)
	}
	defer rows.Close()

	adjustments := make([]*domain.PriceAdjustment, 0)
	for rows.Next() {
		adjustment := &domain.PriceAdjustment{}
		err := rows.Scan(
			&adjustment.AdjustmentDate,
			&adjustment.ProductID,
			&adjustment.ProductName,
			&adjustment.Specification,
			&adjustment.AdjustmentCount,
			&adjustment.PreviousPrice,
			&adjustment.CurrentPrice,
			&adjustment.PriceDifference,
			&adjustment.Category,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning price change: %w", err)
		}
		adjustments = append(adjustments, adjustment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating price change rows: %w", err)
	}

	return adjustments, nil
}

func (r *priceAdjustmentRepository) ListTrends(
	startDate, endDate time.Time,
	productName string,
	mode domain.FilterMode,
) ([]*domain.PriceTrendPoint, error) {
	qb := squirrel.
		Select(
			adjustmentDateText,
			"pa.product_name",
			"pa.current_price",
			"pa.price_difference",
		).
		From(priceAdjustmentsTable).
		Where(r.dateRange(startDate, endDate)).
		Where(adjustmentCols.Clause(mode)).
		OrderBy("pa.adjustment_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	if productName != "" {
		qb = qb.Where(squirrel.Eq{"pa.product_name": productName})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying price trends: %w", err)
	}
	defer rows.Close()

	points := make([]*domain.PriceTrendPoint, 0)
	for rows.Next() {
		point := &domain.PriceTrendPoint{}
		err := rows.Scan(
			&point.AdjustmentDate,
			&point.ProductName,
			&point.CurrentPrice,
			&point.PriceDifference,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning price trend point: %w", err)
		}
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating price trend rows: %w", err)
	}

	return points, nil
}

// InsertBatch persists one sheet's adjustments in a single transaction.
// Duplicate rows across separate uploads are expected, there is no
// cross-run dedup key.
func (r *priceAdjustmentRepository) InsertBatch(ctx context.Context, adjustments []*domain.PriceAdjustment) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO price_adjustments
				(adjustment_date, product_id, product_name, specification, adjustment_count,
				 previous_price, current_price, price_difference, category)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`)
		if err != nil {
			return fmt.Errorf("preparing adjustment insert: %w", err)
		}
		defer stmt.Close()

		for _, a := range adjustments {
			_, err := stmt.ExecContext(ctx,
				a.AdjustmentDate,
				a.ProductID,
				a.ProductName,
				a.Specification,
				a.AdjustmentCount,
				a.PreviousPrice,
				a.CurrentPrice,
				a.PriceDifference,
				a.Category,
			)
			if err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("inserting adjustment for %s: %w", a.ProductName, err)
			}
		}

		return nil
	})
}

func (r *priceAdjustmentRepository) dateRange(startDate, endDate time.Time) squirrel.Sqlizer {
	return squirrel.And{
		squirrel.GtOrEq{"pa.adjustment_date": startDate.Format(time.DateOnly)},
		squirrel.LtOrEq{"pa.adjustment_date": endDate.Format(time.DateOnly)},
	}
}
