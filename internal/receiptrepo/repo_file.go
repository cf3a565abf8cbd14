// Package receiptrepo manages repository layer of receipts.
package receiptrepo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/pkg/currencypkg"
)

const timeLayout = "2006-01-02 15:04:05"

// RepoFile appends receipts to one plain text log per customer under dir.
type RepoFile struct {
	dir    string
	symbol string
}

// NewRepoFile returns receipt RepoFile writing under dir with the given
// currency symbol, creating dir if needed.
func NewRepoFile(dir, symbol string) (*RepoFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &RepoFile{
		dir:    dir,
		symbol: symbol,
	}, nil
}

// Format renders the fixed receipt block.
func Format(receipt domain.Receipt, symbol string) string {
	var sb strings.Builder

	sb.WriteString("\n--- ATM RECEIPT ---\n")
	fmt.Fprintf(&sb, "Client: %s\n", receipt.Client)
	fmt.Fprintf(&sb, "Date & Time: %s\n", receipt.CreatedAt.Format(timeLayout))
	fmt.Fprintf(&sb, "Transaction Type: %s\n", receipt.Type)
	fmt.Fprintf(&sb, "Amount: %s\n", currencypkg.Format(symbol, receipt.Amount))
	fmt.Fprintf(&sb, "New Balance: %s\n", currencypkg.Format(symbol, receipt.NewBalance))
	sb.WriteString("--------------------\n")

	return sb.String()
}

// FileName returns the receipt log name for the client: the display name
// lower-cased with spaces replaced by underscores. Two clients sharing a
// display name share one log.
func FileName(client string) string {
	return strings.ReplaceAll(strings.ToLower(client), " ", "_") + "_receipts.txt"
}

// Emit appends the formatted receipt block to the client's log and syncs it
// to disk before returning.
func (r *RepoFile) Emit(ctx context.Context, receipt domain.Receipt) error {
	l := zerolog.Ctx(ctx)

	path := filepath.Join(r.dir, FileName(receipt.Client))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l.Error().Err(err).Str("path", path).Send()
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(Format(receipt, r.symbol)); err != nil {
		l.Error().Err(err).Str("path", path).Send()
		return err
	}

	return f.Sync()
}
