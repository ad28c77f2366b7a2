package ledger_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/db/dbtest"
	"github.com/oggyb/matchbot/internal/ledger"
	"github.com/oggyb/matchbot/internal/logger"
	"github.com/oggyb/matchbot/internal/repository"
)

func newLedger(t *testing.T, balances map[int64]int64) *ledger.Ledger {
	t.Helper()
	gdb := dbtest.Open(t)
	for id, coins := range balances {
		p := dbtest.Profile(id, db.GenderMale)
		p.Coins = coins
		dbtest.Insert(t, gdb, p)
	}
	return ledger.New(repository.NewLedgerRepository(gdb), logger.Discard())
}

func TestCreditRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t, map[int64]int64{1: 0})

	_, err := l.Credit(ctx, 1, 0)
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	_, err = l.Credit(ctx, 2, 5)
	assert.ErrorIs(t, err, ledger.ErrUserNotFound)
	_, err = l.Debit(ctx, 1, -1)
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

	balance, err := l.Credit(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), balance)
}

func TestBalanceUnknownUserIsZero(t *testing.T) {
	l := newLedger(t, nil)

	b, err := l.Balance(context.Background(), 12345)
	require.NoError(t, err)
	assert.Zero(t, b)
}

func TestDebitSequence(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t, map[int64]int64{1: 5})

	for _, want := range []int64{3, 1} {
		ok, err := l.Debit(ctx, 1, 2)
		require.NoError(t, err)
		assert.True(t, ok)
		b, err := l.Balance(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, want, b)
	}

	ok, err := l.Debit(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	balance, covers, err := l.Covers(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, covers)
	assert.Equal(t, int64(1), balance)

	_, covers, err = l.Covers(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, covers)

	b, err := l.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), b)
}

func TestConcurrentDebitsBoundedByBalance(t *testing.T) {
	ctx := context.Background()
	const (
		balance = 25
		amount  = 4
	)
	l := newLedger(t, map[int64]int64{1: balance})

	var (
		wg sync.WaitGroup
		ok atomic.Int64
	)
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if success, err := l.Debit(ctx, 1, amount); err == nil && success {
				ok.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(balance/amount), ok.Load())
	b, err := l.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(balance%amount), b)
}

func TestGrantBonusOnce(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t, map[int64]int64{1: 0})

	granted, err := l.GrantBonus(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, granted)
	granted, err = l.GrantBonus(ctx, 1, 10)
	require.NoError(t, err)
	assert.False(t, granted)

	b, err := l.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), b)
}
