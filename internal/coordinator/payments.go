package coordinator

import (
	"context"
	"fmt"
	"strings"

	"github.com/oggyb/matchbot/internal/db"
)

// Package is a purchasable coin bundle.
type Package struct {
	ID         string
	Coins      int64
	PriceCents int64
}

var catalog = []Package{
	{ID: "coins_100", Coins: 100, PriceCents: 499},
	{ID: "coins_250", Coins: 250, PriceCents: 999},
	{ID: "coins_500", Coins: 500, PriceCents: 1799},
	{ID: "coins_1000", Coins: 1000, PriceCents: 2999},
	{ID: "coins_2500", Coins: 2500, PriceCents: 6999},
}

// Packages returns the coin catalog, cheapest first.
func Packages() []Package {
	out := make([]Package, len(catalog))
	copy(out, catalog)
	return out
}

// LookupPackage finds a package by id.
func LookupPackage(id string) (Package, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Package{}, false
}

// SubmitPayment files a pending purchase request with the buyer's evidence
// (receipt photo or transaction reference) and notifies the admin.
func (c *Coordinator) SubmitPayment(ctx context.Context, userID int64, packageID, evidenceRef string) (db.Payment, error) {
	pkg, ok := LookupPackage(packageID)
	if !ok {
		return db.Payment{}, fmt.Errorf("%w: %q", ErrUnknownPackage, packageID)
	}
	if _, err := c.requireProfile(ctx, userID); err != nil {
		return db.Payment{}, err
	}

	p, err := c.payments.Create(ctx, db.Payment{
		UserID:      userID,
		PackageName: pkg.ID,
		Coins:       pkg.Coins,
		PriceCents:  pkg.PriceCents,
		EvidenceRef: evidenceRef,
	})
	if err != nil {
		return db.Payment{}, fmt.Errorf("create payment: %w", err)
	}
	c.log.Info("payment submitted", "payment", p.ID, "user", userID, "package", pkg.ID)
	c.notify(ctx, Outbound{
		To:       c.settings.AdminID,
		From:     userID,
		Kind:     KindPayment,
		Text:     fmt.Sprintf("payment #%d: %s (%d coins, %d cents)", p.ID, pkg.ID, pkg.Coins, pkg.PriceCents),
		MediaRef: evidenceRef,
		Ref:      p.ID,
	})
	return p, nil
}

// ListPendingPayments returns pending requests, newest first.
func (c *Coordinator) ListPendingPayments(ctx context.Context, limit int) ([]db.Payment, error) {
	return c.payments.ListPending(ctx, limit)
}

// ApprovePayment credits the requester, then marks the request approved.
//
// Behavior:
//   - Credit and transition commit together; a failed credit leaves the
//     request pending so a retry is possible.
//   - A request that is not pending yields repository.ErrInvalidTransition
//     and no credit.
func (c *Coordinator) ApprovePayment(ctx context.Context, paymentID uint64, reviewerID int64) (db.Payment, int64, error) {
	p, balance, err := c.payments.Approve(ctx, paymentID, reviewerID)
	if err != nil {
		return db.Payment{}, 0, fmt.Errorf("approve payment %d: %w", paymentID, err)
	}
	c.log.Info("payment approved", "payment", p.ID, "user", p.UserID, "coins", p.Coins, "balance", balance, "reviewer", reviewerID)
	c.notify(ctx, Outbound{
		To:   p.UserID,
		Kind: KindPayment,
		Text: fmt.Sprintf("payment #%d approved: +%d coins, balance %d", p.ID, p.Coins, balance),
	})
	return p, balance, nil
}

// RejectPayment marks a pending request rejected. No coins move.
func (c *Coordinator) RejectPayment(ctx context.Context, paymentID uint64, reviewerID int64, notes string) (db.Payment, error) {
	p, err := c.payments.Reject(ctx, paymentID, reviewerID, notes)
	if err != nil {
		return db.Payment{}, fmt.Errorf("reject payment %d: %w", paymentID, err)
	}
	c.log.Info("payment rejected", "payment", p.ID, "user", p.UserID, "reviewer", reviewerID)
	c.notify(ctx, Outbound{
		To:   p.UserID,
		Kind: KindPayment,
		Text: fmt.Sprintf("payment #%d rejected: %s", p.ID, notes),
	})
	return p, nil
}

// AdminCredit grants coins outside the payment flow and tells the user.
// An empty reason gets a generic one.
func (c *Coordinator) AdminCredit(ctx context.Context, userID, amount int64, reason string) (int64, error) {
	balance, err := c.ledger.Credit(ctx, userID, amount)
	if err != nil {
		return 0, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "added by admin"
	}
	c.log.Info("admin credit", "user", userID, "amount", amount, "balance", balance)
	c.notify(ctx, Outbound{
		To:   userID,
		Kind: KindPayment,
		Text: fmt.Sprintf("%d coins credited (%s). Balance: %d.", amount, reason, balance),
	})
	return balance, nil
}
