package order

import (
	"context"
	"errors"

	"restaurant-order/internal/cart"
	"restaurant-order/internal/logger"
	"restaurant-order/internal/menu"
	"restaurant-order/internal/metrics"
	"restaurant-order/internal/pricing"

	"go.uber.org/zap"
)

type Service interface {
	PlaceOrder(ctx context.Context, accountID uint, lines []cart.LineRequest) (*Receipt, error)
	History(ctx context.Context, accountID uint) ([]*Order, error)
	Detail(ctx context.Context, accountID, orderID uint, isAdmin bool) (*Order, error)
	All(ctx context.Context) ([]*Order, error)
	Stats() metrics.CheckoutSnapshot
}

type service struct {
	repo    Repository
	metrics *metrics.Checkout
}

func NewService(repo Repository) Service {
	return &service{
		repo:    repo,
		metrics: &metrics.Checkout{},
	}
}

// PlaceOrder re-reads every item, prices the order from current menu
// prices and writes the order with its lines in one transaction. Nothing
// is written when any item is missing or unavailable.
func (s *service) PlaceOrder(
	ctx context.Context,
	accountID uint,
	lines []cart.LineRequest,
) (*Receipt, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
		zap.Uint("account_id", accountID),
		zap.Int("line_count", len(lines)),
	)

	if accountID == 0 {
		return nil, ErrUnauthorized
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	for _, l := range lines {
		if l.Quantity <= 0 || l.Quantity > cart.MaxQuantity {
			return nil, ErrInvalidQuantity
		}
	}

	log.Info("place order started")
	timer := metrics.StartTimer()

	var receipt *Receipt
	err := s.repo.WithinTx(ctx, func(store Store) error {
		priced := make([]pricing.Line, 0, len(lines))
		orderLines := make([]OrderLine, 0, len(lines))

		// 1. Re-validate items with fresh prices
		for i, l := range lines {
			logItem := log.With(
				zap.Int("index", i),
				zap.Uint("item_id", l.ItemID),
				zap.Int("quantity", l.Quantity),
			)

			item, err := store.GetMenuItemForCheckout(ctx, l.ItemID)
			if errors.Is(err, menu.ErrItemNotFound) {
				logItem.Warn("item not found")
				return &ItemUnavailableError{ItemID: l.ItemID}
			}
			if err != nil {
				return err
			}
			if !item.Available {
				logItem.Warn("item not available")
				return &ItemUnavailableError{ItemID: l.ItemID}
			}

			pl := pricing.Line{UnitPrice: item.Price, Quantity: l.Quantity}
			priced = append(priced, pl)
			orderLines = append(orderLines, OrderLine{
				MenuItemID: item.ID,
				ItemName:   item.Name,
				Quantity:   l.Quantity,
				UnitPrice:  item.Price,
				Subtotal:   pl.Subtotal(),
			})
		}

		// 2. Price
		quote, err := pricing.Compute(priced)
		if err != nil {
			return err
		}

		// 3. Persist header, then lines
		o := &Order{
			AccountID: accountID,
			Subtotal:  quote.Subtotal,
			Tax:       quote.Tax,
			Final:     quote.Final,
			Status:    StatusPending,
		}
		if err := store.InsertOrder(ctx, o); err != nil {
			log.Error("failed to insert order", zap.Error(err))
			return err
		}

		for i := range orderLines {
			orderLines[i].OrderID = o.ID
			if err := store.InsertOrderLine(ctx, &orderLines[i]); err != nil {
				log.Error("failed to insert order line",
					zap.Int("index", i),
					zap.Uint("item_id", orderLines[i].MenuItemID),
					zap.Error(err),
				)
				return err
			}
		}

		receipt = &Receipt{
			OrderID:  o.ID,
			PlacedAt: o.OrderDate,
			Subtotal: quote.Subtotal,
			Tax:      quote.Tax,
			Final:    quote.Final,
			Lines:    orderLines,
		}
		return nil
	})

	s.metrics.Observe(timer, err)

	if err != nil {
		if errors.Is(err, ErrItemUnavailable) {
			return nil, err
		}
		log.Error("place order failed", zap.Error(err), zap.Duration("duration", timer.Duration()))
		return nil, errors.Join(ErrTransactionFailed, err)
	}

	log.Info("order placed",
		zap.Uint("order_id", receipt.OrderID),
		zap.String("subtotal", receipt.Subtotal.StringFixed(2)),
		zap.String("tax", receipt.Tax.StringFixed(2)),
		zap.String("final", receipt.Final.StringFixed(2)),
		zap.Duration("duration", timer.Duration()),
	)

	return receipt, nil
}

// History lists the account's orders, newest first.
func (s *service) History(ctx context.Context, accountID uint) ([]*Order, error) {
	if accountID == 0 {
		return nil, ErrUnauthorized
	}
	return s.repo.GetOrdersByAccount(ctx, accountID)
}

// Detail returns one order with its lines. Non-admins only see their own.
func (s *service) Detail(ctx context.Context, accountID, orderID uint, isAdmin bool) (*Order, error) {
	o, err := s.repo.GetOrderDetail(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && o.AccountID != accountID {
		return nil, ErrForbidden
	}

	return o, nil
}

func (s *service) All(ctx context.Context) ([]*Order, error) {
	return s.repo.GetAllOrders(ctx)
}

func (s *service) Stats() metrics.CheckoutSnapshot {
	return s.metrics.Snapshot()
}
