package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/matchbot/internal/db"
)

// PaymentRepository stores coin purchase requests and their review outcome.
type PaymentRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPaymentRepository creates a new repository bound to the given DB connection.
func NewPaymentRepository(database *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: database, now: func() time.Time { return time.Now().UTC() }}
}

// Create stores a pending request and returns it with its id.
func (r *PaymentRepository) Create(ctx context.Context, p db.Payment) (db.Payment, error) {
	p.ID = 0
	p.Status = db.PaymentPending
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&p).Error; err != nil {
		return db.Payment{}, err
	}
	return p, nil
}

// Get loads a payment request by id.
func (r *PaymentRepository) Get(ctx context.Context, id uint64) (db.Payment, error) {
	var p db.Payment
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return db.Payment{}, notFound(err)
	}
	return p, nil
}

// ListPending returns pending requests, newest first.
func (r *PaymentRepository) ListPending(ctx context.Context, limit int) ([]db.Payment, error) {
	var payments []db.Payment
	q := r.db.WithContext(ctx).
		Where("status = ?", db.PaymentPending).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Approve credits the requester and marks the request approved, in one
// transaction.
//
// Behavior:
//   - The ledger credit is applied first, then the status flips
//     pending -> approved with a conditional UPDATE.
//   - If the credit fails, the status is untouched and a retry stays possible.
//   - If the request is no longer pending (approved twice, rejected, or a
//     concurrent reviewer won), the transaction rolls back, including the
//     credit, and ErrInvalidTransition is returned.
//
// Returns the approved payment and the requester's new balance.
func (r *PaymentRepository) Approve(ctx context.Context, id uint64, reviewerID int64) (db.Payment, int64, error) {
	var (
		p       db.Payment
		balance int64
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return notFound(err)
		}
		if p.Status != db.PaymentPending {
			return fmt.Errorf("%w: payment %d is %s", ErrInvalidTransition, p.ID, p.Status)
		}

		var err error
		balance, err = credit(tx, p.UserID, p.Coins)
		if err != nil {
			return fmt.Errorf("credit payment %d: %w", p.ID, err)
		}

		now := r.now()
		res := tx.Model(&db.Payment{}).
			Where("id = ? AND status = ?", p.ID, db.PaymentPending).
			Updates(map[string]any{
				"status":       db.PaymentApproved,
				"reviewer_id":  reviewerID,
				"processed_at": now,
				"notes":        "payment verified and approved",
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: payment %d changed concurrently", ErrInvalidTransition, p.ID)
		}

		p.Status = db.PaymentApproved
		p.ReviewerID = &reviewerID
		p.ProcessedAt = &now
		return nil
	})
	if err != nil {
		return db.Payment{}, 0, err
	}
	return p, balance, nil
}

// Reject marks a pending request rejected. No ledger change happens.
func (r *PaymentRepository) Reject(ctx context.Context, id uint64, reviewerID int64, notes string) (db.Payment, error) {
	now := r.now()
	res := r.db.WithContext(ctx).
		Model(&db.Payment{}).
		Where("id = ? AND status = ?", id, db.PaymentPending).
		Updates(map[string]any{
			"status":       db.PaymentRejected,
			"reviewer_id":  reviewerID,
			"processed_at": now,
			"notes":        notes,
		})
	if res.Error != nil {
		return db.Payment{}, res.Error
	}

	p, err := r.Get(ctx, id)
	if err != nil {
		return db.Payment{}, err
	}
	if res.RowsAffected == 0 {
		return db.Payment{}, fmt.Errorf("%w: payment %d is %s", ErrInvalidTransition, p.ID, p.Status)
	}
	return p, nil
}
