package account

import (
	"context"
	"errors"
	"strings"

	"restaurant-order/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, params RegisterParams) (*Account, error)
	Login(ctx context.Context, email, password string) (*Account, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (*Account, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
	)

	name := strings.TrimSpace(params.Name)
	email := strings.TrimSpace(params.Email)
	switch {
	case name == "":
		return nil, ErrNameRequired
	case email == "":
		return nil, ErrEmailRequired
	case params.Password == "":
		return nil, ErrPasswordRequired
	}

	hashed, err := HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	a, err := s.repo.Create(ctx, &Account{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Phone:        strings.TrimSpace(params.Phone),
	})
	if err != nil {
		log.Error("failed to create account", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	log.Info("register service completed",
		zap.Uint("account_id", a.ID),
		zap.String("email", email),
	)

	return a, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*Account, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	a, err := s.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			log.Info("email not found")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPasswordHash(password, a.PasswordHash) {
		log.Info("password not match", zap.Uint("account_id", a.ID))
		return nil, ErrInvalidCredentials
	}

	return a, nil
}
