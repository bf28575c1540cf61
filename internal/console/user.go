package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"restaurant-order/internal/account"
	"restaurant-order/internal/cart"
	"restaurant-order/internal/logger"
	"restaurant-order/internal/menu"
	"restaurant-order/internal/order"
	"restaurant-order/internal/utils"

	"go.uber.org/zap"
)

func (a *App) register(ctx context.Context) error {
	a.header("USER REGISTRATION")

	name, err := a.readLine("Enter your name: ")
	if err != nil {
		return err
	}
	email, err := a.readLine("Enter your email: ")
	if err != nil {
		return err
	}
	password, err := a.readLine("Enter password: ")
	if err != nil {
		return err
	}
	phone, err := a.readLine("Enter phone number: ")
	if err != nil {
		return err
	}

	acc, err := a.accounts.Register(ctx, account.RegisterParams{
		Name:     name,
		Email:    email,
		Password: password,
		Phone:    phone,
	})
	switch {
	case errors.Is(err, account.ErrEmailExists):
		a.fail("Email already registered!")
		return nil
	case errors.Is(err, account.ErrNameRequired),
		errors.Is(err, account.ErrEmailRequired),
		errors.Is(err, account.ErrPasswordRequired):
		a.fail("%v", err)
		return nil
	case err != nil:
		a.fail("Registration failed. Please try again.")
		return nil
	}

	a.ok("Registration successful!")
	fmt.Fprintf(a.out, "Your User ID: %d\n", acc.ID)
	return nil
}

func (a *App) login(ctx context.Context) error {
	a.header("USER LOGIN")

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "console"),
		zap.String("method", "login"),
	)

	if a.loginLimiter.Tokens() < 1 {
		log.Warn("login throttled")
		a.fail("Too many failed attempts. Try again later.")
		return nil
	}

	email, err := a.readLine("Enter email: ")
	if err != nil {
		return err
	}
	password, err := a.readLine("Enter password: ")
	if err != nil {
		return err
	}

	acc, err := a.accounts.Login(ctx, email, password)
	if err != nil {
		// Spend one token per failed attempt; the gate above reads the balance.
		_ = a.loginLimiter.Allow()
		if errors.Is(err, account.ErrInvalidCredentials) {
			a.fail("Invalid email or password!")
		} else {
			a.fail("Login failed. Please try again.")
		}
		return nil
	}

	a.session.Account = acc
	log.Info("logged in", zap.Uint("account_id", acc.ID))
	a.ok("Welcome, %s!", acc.Name)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if a.session.LoggedIn() {
		logger.FromCtx(ctx).Info("logged out",
			zap.String("layer", "console"),
			zap.Uint("account_id", a.session.AccountID()),
		)
	}
	a.session.Logout()
	a.ok("Logged out successfully!")
	return nil
}

func (a *App) browseMenu(ctx context.Context) error {
	a.header("RESTAURANT MENU")

	categories, err := a.menus.Categories(ctx)
	if err != nil {
		a.fail("Could not load categories.")
		return nil
	}

	fmt.Fprintln(a.out, "Select Category:")
	for i, c := range categories {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, c)
	}
	fmt.Fprintf(a.out, "%d. All Items\n", len(categories)+1)
	fmt.Fprintln(a.out, "0. Back to Main Menu")

	choice, err := a.readLine("\nEnter choice: ")
	if err != nil {
		return err
	}
	if choice == "0" {
		return nil
	}

	// Anything other than a category number lists every item.
	var category *string
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(categories) {
		category = utils.StrPtr(categories[n-1])
	}

	items, err := a.menus.Browse(ctx, category)
	if err != nil {
		a.fail("Could not load the menu.")
		return nil
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "\nNo items available.")
		return nil
	}

	fmt.Fprintln(a.out)
	a.rule()
	fmt.Fprintf(a.out, "%-6s %-30s %-15s %-10s\n", "ID", "Item Name", "Category", "Price")
	a.rule()
	for _, it := range items {
		fmt.Fprintf(a.out, "%-6d %-30s %-15s %s\n",
			it.ID, utils.Truncate(it.Name, 30), utils.Truncate(it.Category, 15), utils.FormatMoney(it.Price))
	}
	a.rule()
	return nil
}

func (a *App) addToCart(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	a.header("ADD TO CART")

	items, err := a.menus.Browse(ctx, nil)
	if err != nil {
		a.fail("Could not load the menu.")
		return nil
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No items available.")
		return nil
	}

	fmt.Fprintf(a.out, "%-6s %-35s %-10s\n", "ID", "Item Name", "Price")
	a.rule()
	for _, it := range items {
		fmt.Fprintf(a.out, "%-6d %-35s %s\n", it.ID, utils.Truncate(it.Name, 35), utils.FormatMoney(it.Price))
	}
	a.rule()

	raw, err := a.readLine("\nEnter item ID (0 to cancel): ")
	if err != nil {
		return err
	}
	if raw == "0" {
		return nil
	}
	itemID, err := utils.ToUint(raw)
	if err != nil {
		a.fail("Invalid input!")
		return nil
	}

	raw, err = a.readLine("Enter quantity: ")
	if err != nil {
		return err
	}
	qty, err := utils.ParsePositiveInt(raw)
	if err != nil {
		a.fail("Invalid quantity!")
		return nil
	}

	item, err := a.menus.Get(ctx, itemID)
	if errors.Is(err, menu.ErrItemNotFound) {
		a.fail("Item not found!")
		return nil
	}
	if err != nil {
		a.fail("Could not load the item.")
		return nil
	}
	if !item.Available {
		a.fail("%s is not available right now.", item.Name)
		return nil
	}

	if err := a.session.Cart.Add(cart.Item{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: qty,
	}); err != nil {
		a.fail("%v", err)
		return nil
	}

	a.ok("Added %d x %s to cart", qty, item.Name)
	return nil
}

func (a *App) viewCart() error {
	a.header("YOUR CART")

	c := a.session.Cart
	if c.IsEmpty() {
		fmt.Fprintln(a.out, "Your cart is empty!")
		return nil
	}

	fmt.Fprintf(a.out, "%-35s %-6s %-12s %-12s\n", "Item Name", "Qty", "Price", "Subtotal")
	a.rule()
	for _, it := range c.Items() {
		fmt.Fprintf(a.out, "%-35s %-6d %-12s %-12s\n",
			utils.Truncate(it.Name, 35), it.Quantity, utils.FormatMoney(it.Price), utils.FormatMoney(it.Subtotal()))
	}

	quote, err := c.Quote()
	if err != nil {
		a.fail("%v", err)
		return nil
	}

	a.rule()
	fmt.Fprintf(a.out, "%-55s %s\n", "Subtotal:", utils.FormatMoney(quote.Subtotal))
	fmt.Fprintf(a.out, "%-55s %s\n", "Tax (5%):", utils.FormatMoney(quote.Tax))
	fmt.Fprintf(a.out, "%-55s %s\n", "Grand Total:", utils.FormatMoney(quote.Final))
	a.rule()
	return nil
}

func (a *App) modifyCart() error {
	c := a.session.Cart
	if c.IsEmpty() {
		a.fail("Your cart is empty!")
		return nil
	}

	a.header("MODIFY CART")

	fmt.Fprintln(a.out, "Your Cart Items:")
	for i, it := range c.Items() {
		fmt.Fprintf(a.out, "%d. %s - Qty: %d - %s\n", i+1, it.Name, it.Quantity, utils.FormatMoney(it.Price))
	}

	fmt.Fprintln(a.out, "\n1. Remove Item")
	fmt.Fprintln(a.out, "2. Update Quantity")
	fmt.Fprintln(a.out, "3. Clear Cart")
	fmt.Fprintln(a.out, "0. Back")

	choice, err := a.readLine("\nEnter choice: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		raw, err := a.readLine("Enter item number to remove: ")
		if err != nil {
			return err
		}
		pos, err := strconv.Atoi(raw)
		if err != nil {
			a.fail("Invalid input!")
			return nil
		}
		removed, err := c.Remove(pos)
		if err != nil {
			a.fail("Invalid item number!")
			return nil
		}
		a.ok("Removed %s from cart", removed.Name)

	case "2":
		raw, err := a.readLine("Enter item number: ")
		if err != nil {
			return err
		}
		pos, err := strconv.Atoi(raw)
		if err != nil {
			a.fail("Invalid input!")
			return nil
		}
		if pos < 1 || pos > c.Len() {
			a.fail("Invalid item number!")
			return nil
		}
		raw, err = a.readLine("Enter new quantity: ")
		if err != nil {
			return err
		}
		qty, err := utils.ParsePositiveInt(raw)
		if err != nil {
			a.fail("Invalid quantity!")
			return nil
		}
		if err := c.UpdateQuantity(pos, qty); err != nil {
			a.fail("%v", err)
			return nil
		}
		a.ok("Updated quantity to %d", qty)

	case "3":
		confirm, err := a.readLine("Clear entire cart? (yes/no): ")
		if err != nil {
			return err
		}
		if utils.ParseYesNo(confirm, false) {
			c.Clear()
			a.ok("Cart cleared!")
		}
	}

	return nil
}

func (a *App) placeOrder(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	c := a.session.Cart
	if c.IsEmpty() {
		a.fail("Your cart is empty!")
		return nil
	}

	a.header("CONFIRM ORDER")

	preview, err := c.Quote()
	if err != nil {
		a.fail("%v", err)
		return nil
	}
	fmt.Fprintf(a.out, "Items in cart: %d\n", c.Len())
	fmt.Fprintf(a.out, "Total amount: %s\n", utils.FormatMoney(preview.Final))
	fmt.Fprintf(a.out, "\nDelivery to: %s\n", a.session.Account.Name)

	confirm, err := a.readLine("\nConfirm order? (yes/no): ")
	if err != nil {
		return err
	}
	if !utils.ParseYesNo(confirm, false) {
		fmt.Fprintln(a.out, "\nOrder cancelled.")
		return nil
	}

	receipt, err := a.orders.PlaceOrder(ctx, a.session.AccountID(), c.Requests())
	if err != nil {
		var unavailable *order.ItemUnavailableError
		if errors.As(err, &unavailable) {
			a.fail("Item %d is no longer available. Your cart was kept.", unavailable.ItemID)
			return nil
		}
		a.fail("Failed to place order. Please try again.")
		return nil
	}

	c.Clear()

	bar := "======================================================================"
	fmt.Fprintf(a.out, "\n%s\nORDER PLACED SUCCESSFULLY!\n%s\n", bar, bar)
	fmt.Fprintf(a.out, "Order ID: %d (%s)\n", receipt.OrderID, utils.ReceiptNumber(receipt.OrderID, receipt.PlacedAt))
	for _, l := range receipt.Lines {
		fmt.Fprintf(a.out, "  %-35s x%-4d %s\n", utils.Truncate(l.ItemName, 35), l.Quantity, utils.FormatMoney(l.Subtotal))
	}
	fmt.Fprintf(a.out, "Subtotal: %s\n", utils.FormatMoney(receipt.Subtotal))
	fmt.Fprintf(a.out, "Tax (5%%): %s\n", utils.FormatMoney(receipt.Tax))
	fmt.Fprintf(a.out, "Total: %s\n", utils.FormatMoney(receipt.Final))
	fmt.Fprintln(a.out, "Payment Mode: Cash on Delivery")
	fmt.Fprintf(a.out, "\nThank you for your order, %s!\n%s\n", a.session.Account.Name, bar)
	return nil
}

func (a *App) orderHistory(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}

	a.header("ORDER HISTORY")

	orders, err := a.orders.History(ctx, a.session.AccountID())
	if err != nil {
		a.fail("Could not load your orders.")
		return nil
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders found.")
		return nil
	}

	for _, o := range orders {
		a.printOrderSummary(o)
	}

	return a.orderDetailPrompt(ctx, false)
}

func (a *App) printOrderSummary(o *order.Order) {
	fmt.Fprintf(a.out, "\nOrder ID: %d\n", o.ID)
	fmt.Fprintf(a.out, "Date: %s\n", o.OrderDate.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(a.out, "Items: %s\n", o.ItemSummary)
	fmt.Fprintf(a.out, "Total: %s\n", utils.FormatMoney(o.Final))
	fmt.Fprintf(a.out, "Status: %s\n", o.Status)
	a.rule()
}

func (a *App) orderDetailPrompt(ctx context.Context, isAdmin bool) error {
	raw, err := a.readLine("\nEnter order ID for details (0 to go back): ")
	if err != nil {
		return err
	}
	if raw == "0" || raw == "" {
		return nil
	}
	orderID, err := utils.ToUint(raw)
	if err != nil {
		a.fail("Invalid input!")
		return nil
	}

	o, err := a.orders.Detail(ctx, a.session.AccountID(), orderID, isAdmin)
	switch {
	case errors.Is(err, order.ErrOrderNotFound), errors.Is(err, order.ErrForbidden):
		a.fail("Order not found!")
		return nil
	case err != nil:
		a.fail("Could not load the order.")
		return nil
	}

	a.header(fmt.Sprintf("ORDER #%d", o.ID))
	fmt.Fprintf(a.out, "Date: %s\n", o.OrderDate.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(a.out, "Status: %s\n\n", o.Status)
	fmt.Fprintf(a.out, "%-35s %-6s %-12s %-12s\n", "Item Name", "Qty", "Price", "Subtotal")
	a.rule()
	for _, l := range o.Lines {
		fmt.Fprintf(a.out, "%-35s %-6d %-12s %-12s\n",
			utils.Truncate(l.ItemName, 35), l.Quantity, utils.FormatMoney(l.UnitPrice), utils.FormatMoney(l.Subtotal))
	}
	a.rule()
	fmt.Fprintf(a.out, "%-55s %s\n", "Subtotal:", utils.FormatMoney(o.Subtotal))
	fmt.Fprintf(a.out, "%-55s %s\n", "Tax (5%):", utils.FormatMoney(o.Tax))
	fmt.Fprintf(a.out, "%-55s %s\n", "Grand Total:", utils.FormatMoney(o.Final))
	return nil
}
