package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	"restaurant-order/internal/account"
	"restaurant-order/internal/config"
	"restaurant-order/internal/console"
	"restaurant-order/internal/db"
	"restaurant-order/internal/logger"
	"restaurant-order/internal/menu"
	"restaurant-order/internal/migrations"
	"restaurant-order/internal/order"
	"restaurant-order/internal/report"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv, cfg.LogOutput)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := migrations.EnsureSchema(ctx, database); err != nil {
		logger.L().Error("schema setup failed", zap.Error(err))
		log.Fatalf("failed to prepare database schema: %v", err)
	}

	app := console.New(newDeps(database, cfg), os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("console stopped: %v", err)
	}
}

func newDeps(database *sql.DB, cfg *config.Config) console.Deps {
	menuRepo := menu.NewRepository(database)
	orderRepo := order.NewRepository(database)

	return console.Deps{
		Accounts: account.NewService(account.NewRepository(database)),
		Menus:    menu.NewService(menuRepo),
		Orders:   order.NewService(orderRepo),
		Reports:  report.NewService(report.NewRepository(database), menuRepo, orderRepo),
		Config:   cfg,
	}
}
