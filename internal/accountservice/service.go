// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-atm/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	Get(ctx context.Context, number string) (domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Create creates an account with the given number, PIN and holder name.
// The balance always starts at zero.
func (s *Service) Create(ctx context.Context, number, pin, name string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	account, err := s.repo.Create(ctx, domain.CreateAccountParams{
		Number: number,
		PIN:    pin,
		Name:   name,
	})
	if err != nil {
		l.Info().Err(err).Str("account", number).Send()
		return account, err
	}

	return account, nil
}

// Get returns the account for the given account number.
func (s *Service) Get(ctx context.Context, number string) (domain.Account, error) {
	account, err := s.repo.Get(ctx, number)
	if err != nil {
		return account, err
	}

	return account, nil
}
