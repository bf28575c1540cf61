package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"restaurant-order/internal/account"
	"restaurant-order/internal/config"
	"restaurant-order/internal/logger"
	"restaurant-order/internal/menu"
	"restaurant-order/internal/order"
	"restaurant-order/internal/report"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// One failed-login token is returned per interval.
const loginRefill = time.Minute

type Deps struct {
	Accounts account.Service
	Menus    menu.Service
	Orders   order.Service
	Reports  report.Service
	Config   *config.Config
}

// App is the numbered-menu front end. It serves a single session and is
// not safe for concurrent use.
type App struct {
	accounts account.Service
	menus    menu.Service
	orders   order.Service
	reports  report.Service
	cfg      *config.Config

	in  *bufio.Reader
	out io.Writer

	session      *Session
	loginLimiter *rate.Limiter
}

func New(deps Deps, in io.Reader, out io.Writer) *App {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{ExportDir: ".", LoginAttempts: 5}
	}

	attempts := cfg.LoginAttempts
	if attempts <= 0 {
		attempts = 1
	}

	return &App{
		accounts:     deps.Accounts,
		menus:        deps.Menus,
		orders:       deps.Orders,
		reports:      deps.Reports,
		cfg:          cfg,
		in:           bufio.NewReader(in),
		out:          out,
		session:      NewSession(),
		loginLimiter: rate.NewLimiter(rate.Every(loginRefill), attempts),
	}
}

func (a *App) Session() *Session {
	return a.session
}

// Run drives the main menu until the user exits, input ends or ctx is
// cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = logger.WithSessionID(ctx, a.session.ID.String())
	log := logger.FromCtx(ctx).With(zap.String("layer", "console"))

	log.Info("session started")
	defer log.Info("session ended")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		a.mainMenu()

		choice, err := a.readLine("\nEnter your choice: ")
		if errors.Is(err, io.EOF) {
			a.goodbye()
			return nil
		}
		if errors.Is(err, errInputTooLong) {
			log.Warn("input rejected", zap.Error(err))
			a.fail("Input too long!")
			continue
		}
		if err != nil {
			return err
		}

		if choice == "0" {
			a.goodbye()
			return nil
		}

		if err := a.dispatch(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				a.goodbye()
				return nil
			}
			if errors.Is(err, errInputTooLong) {
				log.Warn("input rejected", zap.String("choice", choice), zap.Error(err))
				a.fail("Input too long!")
				continue
			}
			log.Error("console handler failed", zap.String("choice", choice), zap.Error(err))
			return err
		}
	}
}

func (a *App) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return a.register(ctx)
	case "2":
		return a.login(ctx)
	case "3":
		return a.browseMenu(ctx)
	case "4":
		return a.addToCart(ctx)
	case "5":
		return a.viewCart()
	case "6":
		return a.modifyCart()
	case "7":
		return a.placeOrder(ctx)
	case "8":
		return a.orderHistory(ctx)
	case "9":
		return a.adminPanel(ctx)
	case "10":
		return a.logout(ctx)
	default:
		a.fail("Invalid choice!")
		return nil
	}
}

func (a *App) mainMenu() {
	a.header("RESTAURANT FOOD ORDERING SYSTEM")

	if a.session.LoggedIn() {
		fmt.Fprintf(a.out, "Logged in as: %s (%s)\n", a.session.Account.Name, a.session.Account.Email)
		fmt.Fprintf(a.out, "Cart items: %d\n\n", a.session.Cart.Len())
	} else {
		fmt.Fprint(a.out, "Not logged in\n\n")
	}

	fmt.Fprintln(a.out, "1.  Register")
	fmt.Fprintln(a.out, "2.  Login")
	fmt.Fprintln(a.out, "3.  Browse Menu")
	fmt.Fprintln(a.out, "4.  Add to Cart")
	fmt.Fprintln(a.out, "5.  View Cart")
	fmt.Fprintln(a.out, "6.  Modify Cart")
	fmt.Fprintln(a.out, "7.  Place Order")
	fmt.Fprintln(a.out, "8.  Order History")
	fmt.Fprintln(a.out, "9.  Admin Panel")
	fmt.Fprintln(a.out, "10. Logout")
	fmt.Fprintln(a.out, "0.  Exit")
}

func (a *App) goodbye() {
	fmt.Fprintln(a.out, "\nThank you for using our system!")
	fmt.Fprintln(a.out, "Goodbye!")
}

func (a *App) requireLogin() bool {
	if a.session.LoggedIn() {
		return true
	}
	a.fail("Please login first!")
	return false
}
