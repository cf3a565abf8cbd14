package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates a non-numeric or non-positive amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Transaction type labels printed on receipts.
const (
	TransactionDeposit    = "Deposit"
	TransactionWithdrawal = "Withdrawal"
)

// Receipt is the record of one completed monetary transaction.
type Receipt struct {
	Client     string          `json:"client"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	NewBalance decimal.Decimal `json:"new_balance"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TransactionResult is the outcome of a completed monetary transaction.
type TransactionResult struct {
	Account Account `json:"account"`
	Receipt Receipt `json:"receipt"`
}
