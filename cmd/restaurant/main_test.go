package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"restaurant-order/internal/config"
	"restaurant-order/internal/console"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeps(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	cfg := &config.Config{ExportDir: t.TempDir(), LoginAttempts: 3}
	deps := newDeps(database, cfg)

	assert.NotNil(t, deps.Accounts)
	assert.NotNil(t, deps.Menus)
	assert.NotNil(t, deps.Orders)
	assert.NotNil(t, deps.Reports)
	assert.Same(t, cfg, deps.Config)

	t.Run("BrowseReachesStorage", func(t *testing.T) {
		mock.ExpectQuery(`SELECT DISTINCT category FROM menu_items`).
			WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("Starters"))
		mock.ExpectQuery(`FROM menu_items WHERE available = TRUE ORDER BY id`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "price", "available", "created_at"}))

		var out bytes.Buffer
		app := console.New(deps, strings.NewReader("3\n2\n0\n"), &out)
		require.NoError(t, app.Run(context.Background()))

		assert.Contains(t, out.String(), "No items available.")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
