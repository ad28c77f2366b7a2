package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/matchbot/internal/db"
)

// ComplaintStatusPending is the status of a freshly filed complaint.
const ComplaintStatusPending = "pending"

// ComplaintRepository stores user reports.
type ComplaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository creates a new repository bound to the given DB connection.
func NewComplaintRepository(database *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: database}
}

// Create stores a pending complaint.
func (r *ComplaintRepository) Create(ctx context.Context, c db.Complaint) (db.Complaint, error) {
	c.ID = 0
	c.Status = ComplaintStatusPending
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&c).Error; err != nil {
		return db.Complaint{}, err
	}
	return c, nil
}

// ListByUser returns complaints filed by userID, newest first.
func (r *ComplaintRepository) ListByUser(ctx context.Context, userID int64) ([]db.Complaint, error) {
	var out []db.Complaint
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}
