package menu

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"restaurant-order/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	ListAvailable(ctx context.Context, category *string) ([]*MenuItem, error)
	ListAll(ctx context.Context) ([]*MenuItem, error)
	GetByID(ctx context.Context, id uint) (*MenuItem, error)
	GetCategories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, params AddItemParams) (*MenuItem, error)
	UpdatePrice(ctx context.Context, id uint, price decimal.Decimal) error
	SetAvailability(ctx context.Context, id uint, available bool) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const selectItem = `
	SELECT id, name, category, price, available, created_at
	FROM menu_items
`

func (r *repository) ListAvailable(ctx context.Context, category *string) ([]*MenuItem, error) {
	query := selectItem + " WHERE available = TRUE"
	args := []any{}

	if category != nil {
		query += " AND category = $1"
		args = append(args, *category)
	}
	query += " ORDER BY id"

	return r.query(ctx, query, args...)
}

func (r *repository) ListAll(ctx context.Context) ([]*MenuItem, error) {
	return r.query(ctx, selectItem+" ORDER BY id")
}

func (r *repository) query(ctx context.Context, query string, args ...any) ([]*MenuItem, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "repository"))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query menu items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []*MenuItem
	for rows.Next() {
		var it MenuItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Price, &it.Available, &it.CreatedAt); err != nil {
			log.Error("failed to scan menu item", zap.Error(err))
			return nil, err
		}
		items = append(items, &it)
	}

	return items, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uint) (*MenuItem, error) {
	var it MenuItem
	err := r.db.QueryRowContext(ctx, selectItem+" WHERE id = $1", id).
		Scan(&it.ID, &it.Name, &it.Category, &it.Price, &it.Available, &it.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *repository) GetCategories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT category
		FROM menu_items
		ORDER BY category
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *repository) Create(ctx context.Context, params AddItemParams) (*MenuItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
	)

	it := MenuItem{
		Name:      params.Name,
		Category:  params.Category,
		Price:     params.Price,
		Available: params.Available,
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO menu_items (name, category, price, available)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, params.Name, params.Category, params.Price, params.Available).
		Scan(&it.ID, &it.CreatedAt)
	if err != nil {
		log.Error("db: failed to insert menu item", zap.String("name", params.Name), zap.Error(err))
		return nil, err
	}

	return &it, nil
}

func (r *repository) UpdatePrice(ctx context.Context, id uint, price decimal.Decimal) error {
	return r.update(ctx, `UPDATE menu_items SET price = $1 WHERE id = $2`, price, id)
}

func (r *repository) SetAvailability(ctx context.Context, id uint, available bool) error {
	return r.update(ctx, `UPDATE menu_items SET available = $1 WHERE id = $2`, available, id)
}

func (r *repository) update(ctx context.Context, query string, value any, id uint) error {
	res, err := r.db.ExecContext(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("update menu item %d: %w", id, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}
