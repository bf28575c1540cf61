package db

import (
	"context"
	"database/sql"
	"fmt"

	"restaurant-order/internal/logger"

	"go.uber.org/zap"
)

// WithTx runs fn inside a single transaction. The transaction commits only
// when fn returns nil; any error or panic rolls back every write made
// through tx.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "db"))

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("failed to rollback transaction", zap.Error(rbErr))
		} else {
			log.Debug("transaction rolled back")
		}
		if p := recover(); p != nil {
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	err = tx.Commit()
	committed = true
	if err != nil {
		log.Error("failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
