package account

import (
	"context"
	"database/sql"
	"errors"

	"restaurant-order/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, a *Account) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Account) (*Account, error) {
	log := logger.FromCtx(ctx)

	created := *a
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO accounts (name, email, password_hash, phone) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		a.Name, a.Email, a.PasswordHash, a.Phone,
	).Scan(&created.ID, &created.CreatedAt)

	if err != nil {
		if isEmailViolation(err) {
			log.Warn("db: duplicate email", zap.String("email", a.Email))
			return nil, ErrEmailExists
		}
		log.Error("db: failed to insert account",
			zap.String("email", a.Email),
			zap.Error(err),
		)
		return nil, err
	}

	return &created, nil
}

// FindByEmail matches the email exactly, case included.
func (r *repository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var a Account
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, phone, created_at FROM accounts WHERE email = $1",
		email,
	).Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Phone, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func isEmailViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == pgUniqueViolation &&
		(pqErr.Constraint == "" || pqErr.Constraint == emailConstraint)
}
