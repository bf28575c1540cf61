package report

import (
	"context"
	"database/sql"

	"restaurant-order/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	PopularItems(ctx context.Context, limit int) ([]PopularItem, error)
	CategorySales(ctx context.Context) ([]CategorySale, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(final_amount), 0) FROM orders
	`).Scan(&total)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to sum revenue",
			zap.String("layer", "repository"),
			zap.Error(err),
		)
		return decimal.Zero, err
	}
	return total, nil
}

// PopularItems ranks items by units ordered. Ties keep storage order.
func (r *repository) PopularItems(ctx context.Context, limit int) ([]PopularItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "PopularItems"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT m.id, m.name, SUM(ol.quantity) AS total_quantity
		FROM order_lines ol
		JOIN menu_items m ON m.id = ol.menu_item_id
		GROUP BY m.id, m.name
		ORDER BY total_quantity DESC
		LIMIT $1
	`, limit)
	if err != nil {
		log.Error("failed to query popular items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []PopularItem
	for rows.Next() {
		var p PopularItem
		if err := rows.Scan(&p.ItemID, &p.Name, &p.Quantity); err != nil {
			log.Error("failed to scan popular item", zap.Error(err))
			return nil, err
		}
		items = append(items, p)
	}

	return items, rows.Err()
}

func (r *repository) CategorySales(ctx context.Context) ([]CategorySale, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CategorySales"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT m.category, SUM(ol.subtotal) AS revenue
		FROM order_lines ol
		JOIN menu_items m ON m.id = ol.menu_item_id
		GROUP BY m.category
		ORDER BY revenue DESC
	`)
	if err != nil {
		log.Error("failed to query category sales", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sales []CategorySale
	for rows.Next() {
		var c CategorySale
		if err := rows.Scan(&c.Category, &c.Revenue); err != nil {
			log.Error("failed to scan category sale", zap.Error(err))
			return nil, err
		}
		sales = append(sales, c)
	}

	return sales, rows.Err()
}
