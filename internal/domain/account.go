// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccount indicates that an account with the given number already exists.
	ErrDuplicateAccount = errors.New("account number already exists")
)

// Account holds one customer's ledger entry.
type Account struct {
	Number    string    `json:"number"`
	PIN       string    `json:"pin"`
	Name      string    `json:"name"`
	Balance   string    `json:"balance"` // must never go negative
	CreatedAt time.Time `json:"created_at"`
}

// CreateAccountParams is the input data to create an account.
type CreateAccountParams struct {
	Number string `json:"number"`
	PIN    string `json:"pin"`
	Name   string `json:"name"`
}
