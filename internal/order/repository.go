package order

import (
	"context"
	"database/sql"
	"errors"

	"restaurant-order/internal/db"
	"restaurant-order/internal/logger"
	"restaurant-order/internal/menu"

	"go.uber.org/zap"
)

// Store is the set of writes and reads available inside one checkout
// transaction.
type Store interface {
	GetMenuItemForCheckout(ctx context.Context, itemID uint) (*menu.MenuItem, error)
	InsertOrder(ctx context.Context, o *Order) error
	InsertOrderLine(ctx context.Context, l *OrderLine) error
}

type Repository interface {
	// WithinTx commits only if fn returns nil.
	WithinTx(ctx context.Context, fn func(Store) error) error

	GetOrdersByAccount(ctx context.Context, accountID uint) ([]*Order, error)
	GetAllOrders(ctx context.Context) ([]*Order, error)
	GetOrderDetail(ctx context.Context, orderID uint) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithinTx(ctx context.Context, fn func(Store) error) error {
	return db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		return fn(&txStore{tx: tx})
	})
}

type txStore struct {
	tx *sql.Tx
}

// GetMenuItemForCheckout share-locks the row so the price and availability
// read here hold until commit.
func (s *txStore) GetMenuItemForCheckout(ctx context.Context, itemID uint) (*menu.MenuItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetMenuItemForCheckout"),
		zap.Uint("item_id", itemID),
	)

	var it menu.MenuItem
	err := s.tx.QueryRowContext(ctx, `
		SELECT id, name, category, price, available, created_at
		FROM menu_items
		WHERE id = $1
		FOR SHARE
	`, itemID).Scan(&it.ID, &it.Name, &it.Category, &it.Price, &it.Available, &it.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Warn("menu item not found")
		return nil, menu.ErrItemNotFound
	}
	if err != nil {
		log.Error("failed to query menu item for checkout", zap.Error(err))
		return nil, err
	}

	return &it, nil
}

func (s *txStore) InsertOrder(ctx context.Context, o *Order) error {
	return s.tx.QueryRowContext(ctx, `
		INSERT INTO orders (account_id, subtotal, tax_amount, final_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, order_date
	`, o.AccountID, o.Subtotal, o.Tax, o.Final, o.Status).Scan(&o.ID, &o.OrderDate)
}

func (s *txStore) InsertOrderLine(ctx context.Context, l *OrderLine) error {
	return s.tx.QueryRowContext(ctx, `
		INSERT INTO order_lines (order_id, menu_item_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, l.OrderID, l.MenuItemID, l.Quantity, l.UnitPrice, l.Subtotal).Scan(&l.ID)
}

const selectOrderSummary = `
	SELECT
		o.id,
		o.account_id,
		o.order_date,
		o.subtotal,
		o.tax_amount,
		o.final_amount,
		o.status,
		COALESCE(string_agg(m.name || ' x' || ol.quantity, ', ' ORDER BY ol.id), '') AS items
	FROM orders o
	LEFT JOIN order_lines ol ON ol.order_id = o.id
	LEFT JOIN menu_items m ON m.id = ol.menu_item_id
`

func (r *repository) GetOrdersByAccount(ctx context.Context, accountID uint) ([]*Order, error) {
	return r.listOrders(ctx, selectOrderSummary+`
		WHERE o.account_id = $1
		GROUP BY o.id
		ORDER BY o.order_date DESC, o.id DESC
	`, accountID)
}

func (r *repository) GetAllOrders(ctx context.Context) ([]*Order, error) {
	return r.listOrders(ctx, selectOrderSummary+`
		GROUP BY o.id
		ORDER BY o.order_date DESC, o.id DESC
	`)
}

func (r *repository) listOrders(ctx context.Context, query string, args ...any) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "repository"))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID,
			&o.AccountID,
			&o.OrderDate,
			&o.Subtotal,
			&o.Tax,
			&o.Final,
			&o.Status,
			&o.ItemSummary,
		); err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}

	return orders, nil
}

func (r *repository) GetOrderDetail(ctx context.Context, orderID uint) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, account_id, order_date, subtotal, tax_amount, final_amount, status
		FROM orders WHERE id = $1
	`, orderID).Scan(&o.ID, &o.AccountID, &o.OrderDate, &o.Subtotal, &o.Tax, &o.Final, &o.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT ol.id, ol.order_id, ol.menu_item_id, m.name, ol.quantity, ol.unit_price, ol.subtotal
		FROM order_lines ol
		JOIN menu_items m ON m.id = ol.menu_item_id
		WHERE ol.order_id = $1
		ORDER BY ol.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var l OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.MenuItemID, &l.ItemName, &l.Quantity, &l.UnitPrice, &l.Subtotal); err != nil {
			return nil, err
		}
		o.Lines = append(o.Lines, l)
	}

	return &o, rows.Err()
}
