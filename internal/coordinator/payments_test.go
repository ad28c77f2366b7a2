package coordinator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/matchbot/internal/coordinator"
	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/repository"
)

func TestPackagesCatalog(t *testing.T) {
	pkgs := coordinator.Packages()
	require.Len(t, pkgs, 5)
	assert.Equal(t, int64(100), pkgs[0].Coins)
	assert.Equal(t, int64(499), pkgs[0].PriceCents)

	pkgs[0].Coins = 1
	p, ok := coordinator.LookupPackage("coins_100")
	require.True(t, ok)
	assert.Equal(t, int64(100), p.Coins, "catalog is not shared")

	_, ok = coordinator.LookupPackage("coins_7")
	assert.False(t, ok)
}

func TestPaymentApprovalCreditsExactlyOnce(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.add(t, 1, db.GenderMale, 4)

	_, err := h.c.SubmitPayment(ctx, 1, "coins_9", "r")
	assert.ErrorIs(t, err, coordinator.ErrUnknownPackage)

	p, err := h.c.SubmitPayment(ctx, 1, "coins_250", "receipt-1")
	require.NoError(t, err)
	assert.Equal(t, db.PaymentPending, p.Status)
	assert.Equal(t, int64(250), p.Coins)
	assert.Equal(t, []string{coordinator.KindPayment}, h.transport.kinds(testSettings.AdminID))

	pending, err := h.c.ListPendingPayments(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	approved, balance, err := h.c.ApprovePayment(ctx, p.ID, testSettings.AdminID)
	require.NoError(t, err)
	assert.Equal(t, db.PaymentApproved, approved.Status)
	assert.Equal(t, int64(254), balance)

	_, _, err = h.c.ApprovePayment(ctx, p.ID, testSettings.AdminID)
	assert.ErrorIs(t, err, repository.ErrInvalidTransition)

	b, err := h.c.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(254), b)
	assert.Equal(t, []string{coordinator.KindPayment}, h.transport.kinds(1))
}

func TestPaymentReject(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.add(t, 1, db.GenderMale, 0)

	p, err := h.c.SubmitPayment(ctx, 1, "coins_100", "receipt")
	require.NoError(t, err)

	rejected, err := h.c.RejectPayment(ctx, p.ID, testSettings.AdminID, "unreadable")
	require.NoError(t, err)
	assert.Equal(t, db.PaymentRejected, rejected.Status)

	_, _, err = h.c.ApprovePayment(ctx, p.ID, testSettings.AdminID)
	assert.ErrorIs(t, err, repository.ErrInvalidTransition)

	b, err := h.c.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, b)

	_, err = h.c.SubmitPayment(ctx, 404, "coins_100", "receipt")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
