package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrIncorrectPin indicates a PIN mismatch during login or PIN change.
	ErrIncorrectPin = errors.New("incorrect PIN")
	// ErrTooManyAttempts indicates that the login attempt budget is spent.
	ErrTooManyAttempts = errors.New("too many failed attempts")
	// ErrPinMismatch indicates that the new PIN and its confirmation do not agree.
	ErrPinMismatch = errors.New("PINs do not match")
)

// Session is the capability granted after successful PIN verification.
// Balance-mutating and PIN-changing operations require one.
type Session struct {
	ID            uuid.UUID `json:"id"`
	AccountNumber string    `json:"account_number"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"created_at"`
}
