package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"restaurant-order/internal/config"
	"restaurant-order/internal/db"
	"restaurant-order/internal/logger"
	"restaurant-order/internal/migrations"
)

type migrator interface {
	Up(ctx context.Context) ([]string, error)
	Down(ctx context.Context) (string, error)
	Status(ctx context.Context) ([]string, error)
}

func main() {
	mode := flag.String("mode", "up", "migration mode: up, down or status")
	flag.Parse()

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv, cfg.LogOutput)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	m, err := migrations.New(database)
	if err != nil {
		log.Fatalf("failed to load migrations: %v", err)
	}

	if err := run(context.Background(), m, *mode, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, m migrator, mode string, out io.Writer) error {
	switch mode {
	case "up":
		applied, err := m.Up(ctx)
		for _, v := range applied {
			fmt.Fprintf(out, "🚀 Applied migration: %s\n", v)
		}
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			fmt.Fprintln(out, "⏭ Schema is up to date.")
			return nil
		}
		fmt.Fprintln(out, "✅ All new migrations applied successfully.")
		return nil

	case "down":
		version, err := m.Down(ctx)
		if err != nil {
			return err
		}
		if version == "" {
			fmt.Fprintln(out, "⚠️  No migrations to roll back.")
			return nil
		}
		fmt.Fprintf(out, "🧹 Rolled back migration: %s\n", version)
		return nil

	case "status":
		versions, err := m.Status(ctx)
		if err != nil {
			return err
		}
		if len(versions) == 0 {
			fmt.Fprintln(out, "No migrations applied.")
			return nil
		}
		for _, v := range versions {
			fmt.Fprintf(out, "applied  %s\n", v)
		}
		return nil

	default:
		return fmt.Errorf("unknown mode: %s (use 'up', 'down' or 'status')", mode)
	}
}
