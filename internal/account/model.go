package account

import "time"

type Account struct {
	ID           uint
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	CreatedAt    time.Time
}

type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Phone    string
}
