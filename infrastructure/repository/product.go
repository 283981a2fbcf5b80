package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/qu18354531302/product-analytics-api/infrastructure/database/postgres"
	"github.com/qu18354531302/product-analytics-api/internal/domain"
)

const (
	productsTable = "products p"
)

type ProductRepository interface {
	ListAll() ([]*domain.Product, error)
	FindIDByName(name string) (int64, bool, error)
	Create(name string, category *string) (int64, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) ListAll() ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.product_id, p.product_name, p.category").
		From(productsTable).
		OrderBy("p.product_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Category); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) FindIDByName(name string) (int64, bool, error) {
	query, args, err := squirrel.
		Select("p.product_id").
		From(productsTable).
		Where(squirrel.Eq{"p.product_name": name}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("building query: %w", err)
	}

	var id int64
	err = r.conn.QueryRow(query, args...).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("finding product by name: %w", err)
	}

	return id, true, nil
}

func (r *productRepository) Create(name string, category *string) (int64, error) {
	query, args, err := squirrel.
		Insert("products").
		Columns("product_name", "category").
		Values(name, category).
		Suffix("RETURNING product_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building query: %w", err)
	}

	var id int64
	err = r.conn.QueryRow(query, args...).Scan(&id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("creating product: %w", err)
	}

	return id, nil
}
