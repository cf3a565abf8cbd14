// Package transactionservice manages business logic layer of transactions.
package transactionservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/pkg/errorspkg"
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	Get(ctx context.Context, number string) (domain.Account, error)
	AddBalance(ctx context.Context, amount string, number string) (domain.Account, error)
	SetPin(ctx context.Context, number, pin string) (domain.Account, error)
}

// Emitter durably appends receipts for completed monetary transactions.
type Emitter interface {
	Emit(ctx context.Context, receipt domain.Receipt) error
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo    Repo
	emitter Emitter
}

// New returns transaction service struct to manage transaction bussines logic.
func New(tr Repo, re Emitter) *Service {
	return &Service{
		repo:    tr,
		emitter: re,
	}
}

// Balance returns the current balance of the session's account.
func (s *Service) Balance(ctx context.Context, sess domain.Session) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	account, err := s.repo.Get(ctx, sess.AccountNumber)
	if err != nil {
		return decimal.Zero, err
	}

	balance, err := decimal.NewFromString(account.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return decimal.Zero, errorspkg.ErrInternal
	}

	return balance, nil
}

func validAmount(amount string) (decimal.Decimal, error) {
	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	return amountDecimal, nil
}

// Deposit adds the amount to the session's account and emits one receipt
// with the post-mutation balance.
func (s *Service) Deposit(ctx context.Context, sess domain.Session, amount string) (domain.TransactionResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.TransactionResult

	amountDecimal, err := validAmount(amount)
	if err != nil {
		l.Info().Err(err).Str("amount", amount).Send()
		return result, err
	}

	account, err := s.repo.AddBalance(ctx, amountDecimal.String(), sess.AccountNumber)
	if err != nil {
		return result, err
	}

	return s.emitReceipt(ctx, account, domain.TransactionDeposit, amountDecimal)
}

// Withdraw removes the amount from the session's account and emits one
// receipt with the post-mutation balance. The balance is left unchanged if
// the amount exceeds it.
func (s *Service) Withdraw(ctx context.Context, sess domain.Session, amount string) (domain.TransactionResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.TransactionResult

	amountDecimal, err := validAmount(amount)
	if err != nil {
		l.Info().Err(err).Str("amount", amount).Send()
		return result, err
	}

	account, err := s.repo.Get(ctx, sess.AccountNumber)
	if err != nil {
		return result, err
	}

	currentBalance, err := decimal.NewFromString(account.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	if currentBalance.LessThan(amountDecimal) {
		return result, domain.ErrInsufficientBalance
	}

	account, err = s.repo.AddBalance(ctx, amountDecimal.Neg().String(), sess.AccountNumber)
	if err != nil {
		return result, err
	}

	return s.emitReceipt(ctx, account, domain.TransactionWithdrawal, amountDecimal)
}

// ChangePin verifies the current PIN and the confirmation before storing the
// new PIN. PIN changes move no money, so no receipt is emitted.
func (s *Service) ChangePin(ctx context.Context, sess domain.Session, oldPin, newPin, confirmPin string) error {
	account, err := s.repo.Get(ctx, sess.AccountNumber)
	if err != nil {
		return err
	}

	if oldPin != account.PIN {
		return domain.ErrIncorrectPin
	}

	if newPin != confirmPin {
		return domain.ErrPinMismatch
	}

	if _, err := s.repo.SetPin(ctx, sess.AccountNumber, newPin); err != nil {
		return err
	}

	return nil
}

// emitReceipt runs after the balance mutation has been committed. A failed
// append leaves the mutation in place: the receipt is only logged as lost,
// there is no rollback.
func (s *Service) emitReceipt(ctx context.Context, account domain.Account, transactionType string, amount decimal.Decimal) (domain.TransactionResult, error) {
	l := zerolog.Ctx(ctx)

	newBalance, err := decimal.NewFromString(account.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.TransactionResult{}, errorspkg.ErrInternal
	}

	receipt := domain.Receipt{
		Client:     account.Name,
		Type:       transactionType,
		Amount:     amount,
		NewBalance: newBalance,
		CreatedAt:  time.Now(),
	}

	if err := s.emitter.Emit(ctx, receipt); err != nil {
		l.Warn().Err(err).Str("client", account.Name).Msg("receipt not recorded")
	}

	return domain.TransactionResult{Account: account, Receipt: receipt}, nil
}
