// Package sessionservice manages the PIN verification protocol that gates
// entry into an authenticated session.
package sessionservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-atm/internal/domain"
)

// DefaultMaxAttempts is the login attempt budget used when none is configured.
const DefaultMaxAttempts = 3

// AccountService provides the account lookup interface needed by the session
// service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package sessionservice
type AccountService interface {
	Get(ctx context.Context, number string) (domain.Account, error)
}

// Service facilitates the bounded-retry login state machine.
type Service struct {
	accountService AccountService
	maxAttempts    int
}

// New returns session service struct to manage login attempts.
func New(as AccountService, maxAttempts int) *Service {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return &Service{
		accountService: as,
		maxAttempts:    maxAttempts,
	}
}

type state int

const (
	stateIdle state = iota
	stateRetrying
	stateAuthenticated
)

// Attempt tracks one login against a single account. Every Begin call arms a
// fresh Attempt with the full budget; no lockout survives it.
type Attempt struct {
	account      domain.Account
	state        state
	attemptsLeft int
}

// Begin verifies that the account exists and arms the attempt counter.
func (s *Service) Begin(ctx context.Context, accountNumber string) (*Attempt, error) {
	account, err := s.accountService.Get(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	return &Attempt{
		account:      account,
		state:        stateRetrying,
		attemptsLeft: s.maxAttempts,
	}, nil
}

// AttemptsLeft returns the number of submissions remaining.
func (a *Attempt) AttemptsLeft() int {
	return a.attemptsLeft
}

// Submit checks one candidate PIN. On a match it returns the session handle
// and the machine stops accepting submissions. On a mismatch it returns
// domain.ErrIncorrectPin while attempts remain and domain.ErrTooManyAttempts
// once the budget is spent; an exhausted Attempt never grants a session.
func (a *Attempt) Submit(ctx context.Context, pin string) (domain.Session, error) {
	l := zerolog.Ctx(ctx)

	var sess domain.Session

	if a.state != stateRetrying {
		return sess, domain.ErrTooManyAttempts
	}

	if pin == a.account.PIN {
		a.state = stateAuthenticated

		sess = domain.Session{
			ID:            uuid.New(),
			AccountNumber: a.account.Number,
			Name:          a.account.Name,
			CreatedAt:     time.Now().Truncate(time.Second).UTC(),
		}

		return sess, nil
	}

	a.attemptsLeft--
	if a.attemptsLeft == 0 {
		a.state = stateIdle
		l.Warn().Str("account", a.account.Number).Msg("login attempts exhausted")

		return sess, domain.ErrTooManyAttempts
	}

	l.Info().Str("account", a.account.Number).Int("attempts_left", a.attemptsLeft).Msg("incorrect PIN")

	return sess, domain.ErrIncorrectPin
}
