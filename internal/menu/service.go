package menu

import (
	"context"
	"strings"

	"restaurant-order/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// NUMERIC(10,2) upper bound.
var maxPrice = decimal.RequireFromString("99999999.99")

// Service defines menu browsing and admin maintenance.
type Service interface {
	Browse(ctx context.Context, category *string) ([]*MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id uint) (*MenuItem, error)
	All(ctx context.Context) ([]*MenuItem, error)
	AddItem(ctx context.Context, params AddItemParams) (*MenuItem, error)
	UpdatePrice(ctx context.Context, id uint, price decimal.Decimal) error
	SetAvailability(ctx context.Context, id uint, available bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Browse lists orderable items, optionally limited to one category.
func (s *service) Browse(ctx context.Context, category *string) ([]*MenuItem, error) {
	items, err := s.repo.ListAvailable(ctx, category)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*MenuItem{}
	}
	return items, nil
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.GetCategories(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) All(ctx context.Context) ([]*MenuItem, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) AddItem(ctx context.Context, params AddItemParams) (*MenuItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddItem"),
		zap.String("name", params.Name),
	)

	params.Name = strings.TrimSpace(params.Name)
	params.Category = strings.TrimSpace(params.Category)

	if params.Name == "" {
		return nil, ErrNameRequired
	}
	if err := validatePrice(params.Price); err != nil {
		return nil, err
	}
	params.Price = params.Price.Round(2)

	item, err := s.repo.Create(ctx, params)
	if err != nil {
		log.Error("failed to add menu item", zap.Error(err))
		return nil, err
	}

	log.Info("menu item added", zap.Uint("item_id", item.ID))
	return item, nil
}

func (s *service) UpdatePrice(ctx context.Context, id uint, price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	if err := s.repo.UpdatePrice(ctx, id, price.Round(2)); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("menu item price updated",
		zap.Uint("item_id", id),
		zap.String("price", price.StringFixed(2)),
	)
	return nil
}

func (s *service) SetAvailability(ctx context.Context, id uint, available bool) error {
	if err := s.repo.SetAvailability(ctx, id, available); err != nil {
		return err
	}

	logger.FromCtx(ctx).Info("menu item availability changed",
		zap.Uint("item_id", id),
		zap.Bool("available", available),
	)
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrInvalidPrice
	}
	if price.GreaterThan(maxPrice) {
		return ErrPriceTooLarge
	}
	return nil
}
