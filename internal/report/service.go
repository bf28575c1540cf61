package report

import (
	"context"
	"fmt"
	"io"
	"os"

	"restaurant-order/internal/logger"
	"restaurant-order/internal/menu"
	"restaurant-order/internal/order"

	"go.uber.org/zap"
)

type Service interface {
	Analytics(ctx context.Context) (*Analytics, error)

	// ExportMenu and ExportOrders overwrite path and return the number of
	// data rows written.
	ExportMenu(ctx context.Context, path string) (int, error)
	ExportOrders(ctx context.Context, path string) (int, error)
}

type service struct {
	repo   Repository
	menus  menu.Repository
	orders order.Repository
}

func NewService(repo Repository, menus menu.Repository, orders order.Repository) Service {
	return &service{
		repo:   repo,
		menus:  menus,
		orders: orders,
	}
}

func (s *service) Analytics(ctx context.Context) (*Analytics, error) {
	total, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}

	popular, err := s.repo.PopularItems(ctx, PopularLimit)
	if err != nil {
		return nil, fmt.Errorf("popular items: %w", err)
	}

	categories, err := s.repo.CategorySales(ctx)
	if err != nil {
		return nil, fmt.Errorf("category sales: %w", err)
	}

	return &Analytics{
		TotalRevenue:  total,
		PopularItems:  popular,
		CategorySales: categories,
	}, nil
}

func (s *service) ExportMenu(ctx context.Context, path string) (int, error) {
	items, err := s.menus.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	err = writeFile(ctx, path, func(w io.Writer) error {
		return WriteMenuCSV(w, items)
	})
	if err != nil {
		return 0, err
	}

	return len(items), nil
}

func (s *service) ExportOrders(ctx context.Context, path string) (int, error) {
	orders, err := s.orders.GetAllOrders(ctx)
	if err != nil {
		return 0, err
	}

	err = writeFile(ctx, path, func(w io.Writer) error {
		return WriteOrdersCSV(w, orders)
	})
	if err != nil {
		return 0, err
	}

	return len(orders), nil
}

func writeFile(ctx context.Context, path string, write func(io.Writer) error) (err error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("path", path),
	)

	if path == "" {
		return ErrExportPathRequired
	}

	f, err := os.Create(path)
	if err != nil {
		log.Error("failed to create export file", zap.Error(err))
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := write(f); err != nil {
		log.Error("failed to write export file", zap.Error(err))
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.Info("export written")
	return nil
}
