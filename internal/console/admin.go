package console

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"restaurant-order/internal/logger"
	"restaurant-order/internal/menu"
	"restaurant-order/internal/report"
	"restaurant-order/internal/utils"

	"go.uber.org/zap"
)

// canAdmin gates the admin panel. With no admin list configured the panel
// is open to everyone.
func (a *App) canAdmin() bool {
	if len(a.cfg.AdminEmails) == 0 {
		return true
	}
	return a.session.LoggedIn() && a.cfg.IsAdmin(a.session.Account.Email)
}

func (a *App) adminPanel(ctx context.Context) error {
	if !a.canAdmin() {
		logger.FromCtx(ctx).Warn("admin panel denied",
			zap.String("layer", "console"),
			zap.Uint("account_id", a.session.AccountID()),
		)
		a.fail("Admin access required!")
		return nil
	}

	a.header("ADMIN PANEL")

	fmt.Fprintln(a.out, "1. Add Menu Item")
	fmt.Fprintln(a.out, "2. View All Orders")
	fmt.Fprintln(a.out, "3. Export Menu to CSV")
	fmt.Fprintln(a.out, "4. Export Orders to CSV")
	fmt.Fprintln(a.out, "5. View Analytics")
	fmt.Fprintln(a.out, "6. Update Item Price")
	fmt.Fprintln(a.out, "7. Toggle Item Availability")
	fmt.Fprintln(a.out, "0. Back to Main Menu")

	choice, err := a.readLine("\nEnter choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return a.addMenuItem(ctx)
	case "2":
		return a.viewAllOrders(ctx)
	case "3":
		return a.exportMenu(ctx)
	case "4":
		return a.exportOrders(ctx)
	case "5":
		return a.viewAnalytics(ctx)
	case "6":
		return a.updateItemPrice(ctx)
	case "7":
		return a.toggleAvailability(ctx)
	}
	return nil
}

func (a *App) addMenuItem(ctx context.Context) error {
	a.header("ADD MENU ITEM")

	name, err := a.readLine("Item name: ")
	if err != nil {
		return err
	}
	category, err := a.readLine("Category: ")
	if err != nil {
		return err
	}
	raw, err := a.readLine("Price: ")
	if err != nil {
		return err
	}
	price, err := utils.ParsePrice(raw)
	if err != nil {
		a.fail("Invalid price!")
		return nil
	}
	raw, err = a.readLine("Available? (yes/no) [yes]: ")
	if err != nil {
		return err
	}

	item, err := a.menus.AddItem(ctx, menu.AddItemParams{
		Name:      name,
		Category:  category,
		Price:     price,
		Available: utils.ParseYesNo(raw, true),
	})
	if err != nil {
		a.fail("Failed to add item: %v", err)
		return nil
	}

	a.ok("Menu item added successfully!")
	fmt.Fprintf(a.out, "Item ID: %d\n", item.ID)
	return nil
}

func (a *App) viewAllOrders(ctx context.Context) error {
	a.header("ALL ORDERS")

	orders, err := a.orders.All(ctx)
	if err != nil {
		a.fail("Could not load orders.")
		return nil
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders found.")
		return nil
	}

	for _, o := range orders {
		fmt.Fprintf(a.out, "\nOrder ID: %d  User ID: %d\n", o.ID, o.AccountID)
		fmt.Fprintf(a.out, "Date: %s\n", o.OrderDate.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(a.out, "Items: %s\n", o.ItemSummary)
		fmt.Fprintf(a.out, "Total: %s  Status: %s\n", utils.FormatMoney(o.Final), o.Status)
		a.rule()
	}

	return a.orderDetailPrompt(ctx, true)
}

func (a *App) exportMenu(ctx context.Context) error {
	a.header("EXPORT MENU")

	path := filepath.Join(a.cfg.ExportDir, report.MenuExportFile)
	n, err := a.reports.ExportMenu(ctx, path)
	if err != nil {
		a.fail("Export failed: %v", err)
		return nil
	}

	a.ok("Menu exported to %s (%d items)", path, n)
	return nil
}

func (a *App) exportOrders(ctx context.Context) error {
	a.header("EXPORT ORDERS")

	path := filepath.Join(a.cfg.ExportDir, report.OrdersExportFile)
	n, err := a.reports.ExportOrders(ctx, path)
	if err != nil {
		a.fail("Export failed: %v", err)
		return nil
	}

	a.ok("Orders exported to %s (%d orders)", path, n)
	return nil
}

func (a *App) viewAnalytics(ctx context.Context) error {
	a.header("ANALYTICS")

	stats, err := a.reports.Analytics(ctx)
	if err != nil {
		a.fail("Could not load analytics.")
		return nil
	}

	fmt.Fprintf(a.out, "Total Revenue: %s\n\n", utils.FormatMoney(stats.TotalRevenue))

	fmt.Fprintf(a.out, "Top %d Popular Items:\n", report.PopularLimit)
	a.rule()
	for _, p := range stats.PopularItems {
		fmt.Fprintf(a.out, "%-40s Orders: %d\n", utils.Truncate(p.Name, 40), p.Quantity)
	}

	fmt.Fprintln(a.out, "\nCategory-wise Sales:")
	a.rule()
	for _, c := range stats.CategorySales {
		fmt.Fprintf(a.out, "%-40s %s\n", utils.Truncate(c.Category, 40), utils.FormatMoney(c.Revenue))
	}

	checkout := a.orders.Stats()
	fmt.Fprintln(a.out, "\nCheckouts this session:")
	a.rule()
	fmt.Fprintf(a.out, "Placed: %d  Failed: %d  Avg time: %s\n",
		checkout.Placed, checkout.Failed, checkout.AvgDuration)
	return nil
}

// promptItem lists every menu item, unavailable ones included, and asks
// for one by id.
func (a *App) promptItem(ctx context.Context) (*menu.MenuItem, error) {
	items, err := a.menus.All(ctx)
	if err != nil {
		a.fail("Could not load the menu.")
		return nil, nil
	}
	for _, it := range items {
		state := "Available"
		if !it.Available {
			state = "Unavailable"
		}
		fmt.Fprintf(a.out, "%-5d %-30s %12s  %s\n",
			it.ID, utils.Truncate(it.Name, 30), utils.FormatMoney(it.Price), state)
	}
	a.rule()

	raw, err := a.readLine("Item ID: ")
	if err != nil {
		return nil, err
	}
	id, err := utils.ToUint(raw)
	if err != nil {
		a.fail("Invalid input!")
		return nil, nil
	}

	item, err := a.menus.Get(ctx, id)
	if errors.Is(err, menu.ErrItemNotFound) {
		a.fail("Item not found!")
		return nil, nil
	}
	if err != nil {
		a.fail("Could not load the item.")
		return nil, nil
	}
	return item, nil
}

func (a *App) updateItemPrice(ctx context.Context) error {
	a.header("UPDATE ITEM PRICE")

	item, err := a.promptItem(ctx)
	if err != nil || item == nil {
		return err
	}

	fmt.Fprintf(a.out, "Current price of %s: %s\n", item.Name, utils.FormatMoney(item.Price))
	raw, err := a.readLine("New price: ")
	if err != nil {
		return err
	}
	price, err := utils.ParsePrice(raw)
	if err != nil {
		a.fail("Invalid price!")
		return nil
	}

	if err := a.menus.UpdatePrice(ctx, item.ID, price); err != nil {
		a.fail("Failed to update price: %v", err)
		return nil
	}

	a.ok("Price of %s updated to %s", item.Name, utils.FormatMoney(price))
	return nil
}

func (a *App) toggleAvailability(ctx context.Context) error {
	a.header("TOGGLE ITEM AVAILABILITY")

	item, err := a.promptItem(ctx)
	if err != nil || item == nil {
		return err
	}

	next := !item.Available
	if err := a.menus.SetAvailability(ctx, item.ID, next); err != nil {
		a.fail("Failed to update availability: %v", err)
		return nil
	}

	state := "unavailable"
	if next {
		state = "available"
	}
	a.ok("%s is now %s", item.Name, state)
	return nil
}
