// Package ledger is the coin-balance subsystem.
//
// Balances never go negative: a debit is a single check-and-decrement in the
// store, and insufficient funds is a false result rather than an error.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oggyb/matchbot/internal/repository"
)

var (
	// ErrUserNotFound is returned by Credit for an unknown user.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidAmount is returned for amounts <= 0.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Store is the atomic balance storage the ledger runs on.
type Store interface {
	Credit(ctx context.Context, userID, amount int64) (int64, error)
	Debit(ctx context.Context, userID, amount int64) (bool, error)
	Balance(ctx context.Context, userID int64) (int64, error)
	GrantOnce(ctx context.Context, userID, amount int64) (bool, error)
}

// Ledger validates amounts and logs every balance mutation.
type Ledger struct {
	store Store
	log   *slog.Logger
}

// New creates a Ledger on top of store.
func New(store Store, log *slog.Logger) *Ledger {
	if log == nil {
		log = slog.Default()
	}
	return &Ledger{store: store, log: log}
}

// Credit adds amount to userID's balance and returns the new balance.
func (l *Ledger) Credit(ctx context.Context, userID, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	balance, err := l.store.Credit(ctx, userID, amount)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, fmt.Errorf("credit %d: %w", userID, ErrUserNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("credit %d: %w", userID, err)
	}
	l.log.Info("coins credited", "user", userID, "amount", amount, "balance", balance)
	return balance, nil
}

// Debit subtracts amount iff the balance covers it. A false result means
// insufficient funds and nothing was written.
func (l *Ledger) Debit(ctx context.Context, userID, amount int64) (bool, error) {
	if amount <= 0 {
		return false, ErrInvalidAmount
	}
	ok, err := l.store.Debit(ctx, userID, amount)
	if err != nil {
		return false, fmt.Errorf("debit %d: %w", userID, err)
	}
	if ok {
		l.log.Info("coins debited", "user", userID, "amount", amount)
	} else {
		l.log.Debug("debit refused", "user", userID, "amount", amount)
	}
	return ok, nil
}

// Balance returns the balance, 0 for unknown users.
func (l *Ledger) Balance(ctx context.Context, userID int64) (int64, error) {
	b, err := l.store.Balance(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("balance %d: %w", userID, err)
	}
	return b, nil
}

// Covers reports whether userID can currently afford amount, along with the
// balance it checked. It is an advisory check; Debit stays authoritative.
func (l *Ledger) Covers(ctx context.Context, userID, amount int64) (int64, bool, error) {
	b, err := l.Balance(ctx, userID)
	if err != nil {
		return 0, false, err
	}
	return b, b >= amount, nil
}

// GrantBonus credits the one-time registration bonus. Returns false when the
// bonus was already granted.
func (l *Ledger) GrantBonus(ctx context.Context, userID, amount int64) (bool, error) {
	if amount <= 0 {
		return false, ErrInvalidAmount
	}
	granted, err := l.store.GrantOnce(ctx, userID, amount)
	if err != nil {
		return false, fmt.Errorf("grant bonus %d: %w", userID, err)
	}
	if granted {
		l.log.Info("registration bonus granted", "user", userID, "amount", amount)
	}
	return granted, nil
}
