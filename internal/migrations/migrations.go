package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"restaurant-order/internal/db"
	"restaurant-order/internal/logger"

	"go.uber.org/zap"
)

//go:embed sql/*.sql
var embedded embed.FS

type Migration struct {
	Version string
	Up      string
	Down    string
}

type Migrator struct {
	db         *sql.DB
	migrations []Migration
}

// New returns a migrator over the migrations compiled into the binary.
func New(conn *sql.DB) (*Migrator, error) {
	return NewFromFS(conn, embedded, "sql")
}

func NewFromFS(conn *sql.DB, fsys fs.FS, dir string) (*Migrator, error) {
	migrations, err := Load(fsys, dir)
	if err != nil {
		return nil, err
	}
	return &Migrator{db: conn, migrations: migrations}, nil
}

// Load reads every *.sql file in dir, ordered by file name.
func Load(fsys fs.FS, dir string) ([]Migration, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}
	sort.Strings(files)

	migrations := make([]Migration, 0, len(files))
	for _, file := range files {
		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		migrations = append(migrations, Migration{
			Version: path.Base(file),
			Up:      extractMigrationPart(string(content), "Up"),
			Down:    extractMigrationPart(string(content), "Down"),
		})
	}
	return migrations, nil
}

// EnsureSchema brings the database up to the latest migration. Safe to run
// on every start.
func EnsureSchema(ctx context.Context, conn *sql.DB) error {
	m, err := New(conn)
	if err != nil {
		return err
	}
	_, err = m.Up(ctx)
	return err
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}
	return nil
}

// Up applies pending migrations in order and returns their versions.
func (m *Migrator) Up(ctx context.Context) ([]string, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "migrations"))

	if err := m.ensureVersionTable(ctx); err != nil {
		return nil, err
	}

	var applied []string
	for _, mig := range m.migrations {
		var exists bool
		err := m.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`,
			mig.Version,
		).Scan(&exists)
		if err != nil {
			return applied, fmt.Errorf("failed to check migration status: %w", err)
		}
		if exists {
			log.Debug("skipping applied migration", zap.String("version", mig.Version))
			continue
		}

		log.Info("applying migration", zap.String("version", mig.Version))

		err = db.WithTx(ctx, m.db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, mig.Up); err != nil {
				return fmt.Errorf("migration failed (%s): %w", mig.Version, err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO schema_migrations (version) VALUES ($1)`, mig.Version,
			); err != nil {
				return fmt.Errorf("failed to record migration version: %w", err)
			}
			return nil
		})
		if err != nil {
			return applied, err
		}
		applied = append(applied, mig.Version)
	}

	return applied, nil
}

// Down rolls back the most recently applied migration. It returns an empty
// version when nothing is applied.
func (m *Migrator) Down(ctx context.Context) (string, error) {
	log := logger.FromCtx(ctx).With(zap.String("layer", "migrations"))

	if err := m.ensureVersionTable(ctx); err != nil {
		return "", err
	}

	var lastVersion string
	err := m.db.QueryRowContext(ctx,
		`SELECT version FROM schema_migrations ORDER BY applied_at DESC, version DESC LIMIT 1`,
	).Scan(&lastVersion)
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("no migrations to roll back")
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get last applied migration: %w", err)
	}

	var target *Migration
	for i := range m.migrations {
		if m.migrations[i].Version == lastVersion {
			target = &m.migrations[i]
			break
		}
	}
	if target == nil {
		return "", fmt.Errorf("migration file not found for version: %s", lastVersion)
	}

	log.Info("rolling back migration", zap.String("version", lastVersion))

	err = db.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, target.Down); err != nil {
			return fmt.Errorf("rollback failed (%s): %w", lastVersion, err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM schema_migrations WHERE version = $1`, lastVersion,
		); err != nil {
			return fmt.Errorf("failed to remove migration record: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return lastVersion, nil
}

// Status lists applied versions in application order.
func (m *Migrator) Status(ctx context.Context) ([]string, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return nil, err
	}

	rows, err := m.db.QueryContext(ctx,
		`SELECT version FROM schema_migrations ORDER BY applied_at, version`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

func extractMigrationPart(content string, section string) string {
	lines := strings.Split(content, "\n")
	var part strings.Builder
	var inPart bool

	for _, line := range lines {
		if strings.Contains(line, "-- +migrate "+section) {
			inPart = true
			continue
		}
		if inPart && strings.HasPrefix(line, "-- +migrate") {
			break
		}
		if inPart {
			part.WriteString(line + "\n")
		}
	}
	return part.String()
}
