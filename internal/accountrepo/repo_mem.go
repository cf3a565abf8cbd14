// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/pkg/errorspkg"
)

// RepoMem facilitates account repository layer logic with an in-memory map.
// The store is created empty at process start and discarded at exit; there
// is no cross-run persistence.
type RepoMem struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

// NewRepoMem returns account RepoMem with an empty store.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		accounts: make(map[string]domain.Account),
	}
}

// Create creates the account with a zero balance and then returns it.
func (r *RepoMem) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var a domain.Account

	if _, ok := r.accounts[arg.Number]; ok {
		return a, domain.ErrDuplicateAccount
	}

	a = domain.Account{
		Number:    arg.Number,
		PIN:       arg.PIN,
		Name:      arg.Name,
		Balance:   "0",
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}

	r.accounts[arg.Number] = a

	return a, nil
}

// Get returns the account with the given number.
func (r *RepoMem) Get(ctx context.Context, number string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[number]
	if !ok {
		return a, domain.ErrAccountNotFound
	}

	return a, nil
}

// AddBalance applies the signed amount to the account's balance and returns
// the changed account. Callers pre-validate that the result cannot go
// negative; the repo itself does not re-check the sign or magnitude.
func (r *RepoMem) AddBalance(ctx context.Context, amount string, number string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[number]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	balance, err := decimal.NewFromString(a.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, errorspkg.ErrInternal
	}

	delta, err := decimal.NewFromString(amount)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, errorspkg.ErrInternal
	}

	a.Balance = balance.Add(delta).String()
	r.accounts[number] = a

	return a, nil
}

// SetPin overwrites the stored PIN and returns the changed account.
func (r *RepoMem) SetPin(ctx context.Context, number, pin string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[number]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	a.PIN = pin
	r.accounts[number] = a

	return a, nil
}
