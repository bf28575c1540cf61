package console

import (
	"restaurant-order/internal/account"
	"restaurant-order/internal/cart"

	"github.com/google/uuid"
)

// Session is the state of one console run: who is logged in and what
// they have in the cart.
type Session struct {
	ID      uuid.UUID
	Account *account.Account
	Cart    *cart.Cart
}

func NewSession() *Session {
	return &Session{
		ID:   uuid.New(),
		Cart: cart.New(),
	}
}

func (s *Session) LoggedIn() bool {
	return s.Account != nil
}

func (s *Session) AccountID() uint {
	if s.Account == nil {
		return 0
	}
	return s.Account.ID
}

// Logout forgets the account and empties the cart.
func (s *Session) Logout() {
	s.Account = nil
	s.Cart.Clear()
}
