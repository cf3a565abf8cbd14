// Package terminaldelivery manages the interactive terminal delivery layer.
package terminaldelivery

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/internal/receiptrepo"
	"github.com/go-petr/pet-atm/internal/sessionservice"
	"github.com/go-petr/pet-atm/pkg/currencypkg"
)

// AccountService provides the account service layer interface needed by the
// terminal delivery layer.
type AccountService interface {
	Create(ctx context.Context, number, pin, name string) (domain.Account, error)
}

// SessionService provides the login state machine interface needed by the
// terminal delivery layer.
type SessionService interface {
	Begin(ctx context.Context, accountNumber string) (*sessionservice.Attempt, error)
}

// TransactionService provides the transaction service layer interface needed
// by the terminal delivery layer.
type TransactionService interface {
	Balance(ctx context.Context, sess domain.Session) (decimal.Decimal, error)
	Deposit(ctx context.Context, sess domain.Session, amount string) (domain.TransactionResult, error)
	Withdraw(ctx context.Context, sess domain.Session, amount string) (domain.TransactionResult, error)
	ChangePin(ctx context.Context, sess domain.Session, oldPin, newPin, confirmPin string) error
}

// Handler runs the interactive ATM menus. Format rules the core does not
// enforce (numeric account numbers, 4-digit PINs) are validated here.
type Handler struct {
	accountService     AccountService
	sessionService     SessionService
	transactionService TransactionService
	symbol             string
	validate           *validator.Validate
	in                 *bufio.Scanner
	out                io.Writer
}

// NewHandler returns terminal handler reading from in and writing to out.
func NewHandler(as AccountService, ss SessionService, ts TransactionService, symbol string, in io.Reader, out io.Writer) *Handler {
	return &Handler{
		accountService:     as,
		sessionService:     ss,
		transactionService: ts,
		symbol:             symbol,
		validate:           validator.New(),
		in:                 bufio.NewScanner(in),
		out:                out,
	}
}

// Run drives the main menu until the user exits or input ends.
func (h *Handler) Run(ctx context.Context) error {
	fmt.Fprintln(h.out, "===== WELCOME TO UNIVERSAL ATM =====")

	for {
		fmt.Fprintln(h.out, "\n1. Create New Account")
		fmt.Fprintln(h.out, "2. Login to Existing Account")
		fmt.Fprintln(h.out, "3. Exit")

		option, ok := h.prompt("Choose an option (1-3): ")
		if !ok {
			return h.in.Err()
		}

		switch option {
		case "1":
			h.createAccount(ctx)
		case "2":
			h.login(ctx)
		case "3":
			fmt.Fprintln(h.out, "Thank you for using Universal ATM. Goodbye!")
			return nil
		default:
			fmt.Fprintln(h.out, "⚠️ Invalid choice. Try again.")
		}
	}
}

func (h *Handler) prompt(label string) (string, bool) {
	fmt.Fprint(h.out, label)

	if !h.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(h.in.Text()), true
}

func (h *Handler) createAccount(ctx context.Context) {
	fmt.Fprintln(h.out, "\n=== CREATE NEW ACCOUNT ===")

	number, ok := h.prompt("Enter a new account number: ")
	if !ok {
		return
	}

	if err := h.validate.Var(number, "required,numeric"); err != nil {
		fmt.Fprintln(h.out, "⚠️ Account number must be numeric.")
		return
	}

	pin, ok := h.prompt("Set a 4-digit PIN: ")
	if !ok {
		return
	}

	if err := h.validate.Var(pin, "required,len=4,numeric"); err != nil {
		fmt.Fprintln(h.out, "⚠️ PIN must be exactly 4 digits.")
		return
	}

	name, ok := h.prompt("Enter your name: ")
	if !ok {
		return
	}

	if name == "" {
		fmt.Fprintln(h.out, "⚠️ Name must not be empty.")
		return
	}

	account, err := h.accountService.Create(ctx, number, pin, name)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateAccount) {
			fmt.Fprintln(h.out, "⚠️ Account number already exists!")
			return
		}

		fmt.Fprintln(h.out, "⚠️ Could not create the account. Please try again.")

		return
	}

	fmt.Fprintf(h.out, "\n✅ Account created successfully for %s!\n", account.Name)
	fmt.Fprintf(h.out, "Your account number is %s. Please remember your PIN.\n", account.Number)
}

func (h *Handler) login(ctx context.Context) {
	number, ok := h.prompt("Enter your account number: ")
	if !ok {
		return
	}

	attempt, err := h.sessionService.Begin(ctx, number)
	if err != nil {
		fmt.Fprintln(h.out, "⚠️ Account not found! Please create an account first.")
		return
	}

	for {
		pin, ok := h.prompt("Enter your PIN: ")
		if !ok {
			return
		}

		sess, err := attempt.Submit(ctx, pin)
		if err != nil {
			if errors.Is(err, domain.ErrIncorrectPin) {
				fmt.Fprintln(h.out, "❌ Incorrect PIN! Try again.")
				continue
			}

			fmt.Fprintln(h.out, "⚠️ Too many failed attempts. Returning to main menu.")

			return
		}

		fmt.Fprintf(h.out, "\n✅ Welcome, %s!\n", sess.Name)
		h.sessionMenu(ctx, sess)

		return
	}
}

func (h *Handler) sessionMenu(ctx context.Context, sess domain.Session) {
	for {
		fmt.Fprintf(h.out, "\n===== ATM MENU (%s) =====\n", sess.Name)
		fmt.Fprintln(h.out, "1. Check Balance")
		fmt.Fprintln(h.out, "2. Deposit Money")
		fmt.Fprintln(h.out, "3. Withdraw Money")
		fmt.Fprintln(h.out, "4. Change PIN")
		fmt.Fprintln(h.out, "5. Logout")

		choice, ok := h.prompt("Enter your choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			h.checkBalance(ctx, sess)
		case "2":
			h.deposit(ctx, sess)
		case "3":
			h.withdraw(ctx, sess)
		case "4":
			h.changePin(ctx, sess)
		case "5":
			fmt.Fprintln(h.out, "Logging out...")
			return
		default:
			fmt.Fprintln(h.out, "⚠️ Invalid option. Please try again.")
		}
	}
}

func (h *Handler) checkBalance(ctx context.Context, sess domain.Session) {
	balance, err := h.transactionService.Balance(ctx, sess)
	if err != nil {
		fmt.Fprintln(h.out, "⚠️ Could not read the balance. Please try again.")
		return
	}

	fmt.Fprintf(h.out, "\n%s, your current balance is %s\n", sess.Name, currencypkg.Format(h.symbol, balance))
}

func (h *Handler) deposit(ctx context.Context, sess domain.Session) {
	amount, ok := h.prompt("Enter amount to deposit: " + h.symbol)
	if !ok {
		return
	}

	result, err := h.transactionService.Deposit(ctx, sess, amount)
	if err != nil {
		h.printTransactionError(ctx, err)
		return
	}

	fmt.Fprintf(h.out, "✅ %s deposited successfully! New balance: %s\n",
		currencypkg.Format(h.symbol, result.Receipt.Amount),
		currencypkg.Format(h.symbol, result.Receipt.NewBalance))
	fmt.Fprint(h.out, receiptrepo.Format(result.Receipt, h.symbol))
}

func (h *Handler) withdraw(ctx context.Context, sess domain.Session) {
	amount, ok := h.prompt("Enter amount to withdraw: " + h.symbol)
	if !ok {
		return
	}

	result, err := h.transactionService.Withdraw(ctx, sess, amount)
	if err != nil {
		h.printTransactionError(ctx, err)
		return
	}

	fmt.Fprintf(h.out, "✅ %s withdrawn successfully! New balance: %s\n",
		currencypkg.Format(h.symbol, result.Receipt.Amount),
		currencypkg.Format(h.symbol, result.Receipt.NewBalance))
	fmt.Fprint(h.out, receiptrepo.Format(result.Receipt, h.symbol))
}

func (h *Handler) changePin(ctx context.Context, sess domain.Session) {
	oldPin, ok := h.prompt("Enter your current PIN: ")
	if !ok {
		return
	}

	newPin, ok := h.prompt("Enter your new 4-digit PIN: ")
	if !ok {
		return
	}

	if err := h.validate.Var(newPin, "required,len=4,numeric"); err != nil {
		fmt.Fprintln(h.out, "⚠️ PIN must be exactly 4 digits.")
		return
	}

	confirmPin, ok := h.prompt("Confirm your new PIN: ")
	if !ok {
		return
	}

	err := h.transactionService.ChangePin(ctx, sess, oldPin, newPin, confirmPin)

	switch {
	case err == nil:
		fmt.Fprintln(h.out, "✅ PIN changed successfully!")
	case errors.Is(err, domain.ErrIncorrectPin):
		fmt.Fprintln(h.out, "❌ Incorrect current PIN!")
	case errors.Is(err, domain.ErrPinMismatch):
		fmt.Fprintln(h.out, "⚠️ PINs do not match!")
	default:
		fmt.Fprintln(h.out, "⚠️ Could not change the PIN. Please try again.")
	}
}

func (h *Handler) printTransactionError(ctx context.Context, err error) {
	l := zerolog.Ctx(ctx)

	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		fmt.Fprintln(h.out, "⚠️ Invalid amount. Please enter a positive number.")
	case errors.Is(err, domain.ErrInsufficientBalance):
		fmt.Fprintln(h.out, "❌ Insufficient balance!")
	default:
		l.Error().Err(err).Send()
		fmt.Fprintln(h.out, "⚠️ Transaction failed. Please try again.")
	}
}
