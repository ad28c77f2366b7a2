package repository

import (
	"context"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/matchbot/internal/db"
)

// MessageRepository is the append-only message log.
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new repository bound to the given DB connection.
func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{db: database}
}

// Append records a message and returns it with its id.
func (r *MessageRepository) Append(ctx context.Context, m db.Message) (db.Message, error) {
	m.ID = 0
	if m.Kind == "" {
		m.Kind = db.MessageKindText
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return db.Message{}, err
	}
	return m, nil
}

// MarkDelivered stores the delivery outcome and the amount charged.
func (r *MessageRepository) MarkDelivered(ctx context.Context, id uint64, charged int64) error {
	return r.db.WithContext(ctx).
		Model(&db.Message{}).
		Where("id = ?", id).
		Updates(map[string]any{"delivered": true, "charged": charged}).Error
}

// Conversation returns the latest limit messages exchanged between a and b,
// oldest first. A non-positive limit returns the whole history.
func (r *MessageRepository) Conversation(ctx context.Context, a, b int64, limit int) ([]db.Message, error) {
	var msgs []db.Message
	q := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)", a, b, b, a).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&msgs).Error; err != nil {
		return nil, err
	}
	slices.Reverse(msgs)
	return msgs, nil
}
