package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/oggyb/matchbot/internal/db"
)

// LedgerRepository stores coin balances on the profiles row.
//
// Every mutation is a single conditional UPDATE, so the database performs the
// check and the write as one step. No read-compute-write cycle is exposed.
type LedgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new repository bound to the given DB connection.
func NewLedgerRepository(database *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: database}
}

// Credit adds amount to the balance and returns the new balance.
// Returns ErrNotFound when the profile does not exist.
func (r *LedgerRepository) Credit(ctx context.Context, userID, amount int64) (int64, error) {
	var balance int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		balance, err = credit(tx, userID, amount)
		return err
	})
	return balance, err
}

// Debit subtracts amount iff the balance covers it.
//
// Behavior:
//   - UPDATE ... SET coins = coins - amount WHERE id = ? AND coins >= amount.
//   - Returns false, nil when funds are insufficient or the profile is missing;
//     nothing is written in that case.
func (r *LedgerRepository) Debit(ctx context.Context, userID, amount int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.Profile{}).
		Where("id = ? AND coins >= ?", userID, amount).
		UpdateColumn("coins", gorm.Expr("coins - ?", amount))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Balance returns the current balance. Unknown users read as 0.
func (r *LedgerRepository) Balance(ctx context.Context, userID int64) (int64, error) {
	var balances []int64
	err := r.db.WithContext(ctx).
		Model(&db.Profile{}).
		Where("id = ?", userID).
		Pluck("coins", &balances).Error
	if err != nil {
		return 0, err
	}
	if len(balances) == 0 {
		return 0, nil
	}
	return balances[0], nil
}

// GrantOnce credits amount and sets bonus_granted in the same conditional
// UPDATE, so the registration bonus can only ever land once per profile.
// Returns false, nil when the bonus was already granted.
func (r *LedgerRepository) GrantOnce(ctx context.Context, userID, amount int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.Profile{}).
		Where("id = ? AND bonus_granted = ?", userID, false).
		UpdateColumns(map[string]any{
			"coins":         gorm.Expr("coins + ?", amount),
			"bonus_granted": true,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// credit runs inside an existing transaction so callers such as payment
// approval can make the credit and their own write commit together.
func credit(tx *gorm.DB, userID, amount int64) (int64, error) {
	res := tx.Model(&db.Profile{}).
		Where("id = ?", userID).
		UpdateColumn("coins", gorm.Expr("coins + ?", amount))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotFound
	}

	var balance int64
	if err := tx.Model(&db.Profile{}).Select("coins").Where("id = ?", userID).Row().Scan(&balance); err != nil {
		return 0, err
	}
	return balance, nil
}
