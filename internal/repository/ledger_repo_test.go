package repository_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/db/dbtest"
	"github.com/oggyb/matchbot/internal/repository"
)

func withCoins(t *testing.T, gdb *gorm.DB, id int64, coins int64) {
	t.Helper()
	p := dbtest.Profile(id, db.GenderMale)
	p.Coins = coins
	dbtest.Insert(t, gdb, p)
}

func TestLedgerCreditAndBalance(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t)
	withCoins(t, gdb, 1, 5)
	repo := repository.NewLedgerRepository(gdb)

	balance, err := repo.Credit(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), balance)

	_, err = repo.Credit(ctx, 2, 10)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	balance, err = repo.Balance(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestLedgerDebitGuardsFunds(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t)
	withCoins(t, gdb, 1, 3)
	repo := repository.NewLedgerRepository(gdb)

	ok, err := repo.Debit(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Debit(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	balance, err := repo.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), balance)

	ok, err = repo.Debit(ctx, 404, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLedgerConcurrentDebitsNeverOverspend(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t)
	withCoins(t, gdb, 1, 10)
	repo := repository.NewLedgerRepository(gdb)

	var (
		wg        sync.WaitGroup
		successes atomic.Int64
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.Debit(ctx, 1, 3)
			if err == nil && ok {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(3), successes.Load())
	balance, err := repo.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), balance)
}

func TestLedgerGrantOnce(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t)
	withCoins(t, gdb, 1, 0)
	repo := repository.NewLedgerRepository(gdb)

	granted, err := repo.GrantOnce(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, granted)

	granted, err = repo.GrantOnce(ctx, 1, 10)
	require.NoError(t, err)
	assert.False(t, granted)

	balance, err := repo.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance)
}
