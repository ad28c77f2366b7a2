package coordinator

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/oggyb/matchbot/internal/db"
)

const (
	minComplaintLen = 10
	maxComplaintLen = 500
)

// ComplaintTypes are the accepted complaint categories.
var ComplaintTypes = []string{"fake_profile", "harassment", "spam", "inappropriate", "other"}

// DeleteAccount cancels the session and hard-deletes the profile with every
// relation. Returns false when there was nothing to delete. Cached counters
// of everyone the user shared a like with are dropped too.
func (c *Coordinator) DeleteAccount(ctx context.Context, userID int64) (bool, error) {
	c.sessions.Cancel(userID)
	others, err := c.relations.Counterparts(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("counterparts of %d: %w", userID, err)
	}
	deleted, err := c.profiles.Delete(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("delete profile %d: %w", userID, err)
	}
	if deleted {
		c.invalidate(ctx, append(others, userID)...)
		c.log.Info("account deleted", "user", userID, "counterparts", len(others))
	}
	return deleted, nil
}

// ComplaintRequest is a user report, optionally about another user.
type ComplaintRequest struct {
	UserID         int64
	ReportedUserID *int64
	Type           string
	Text           string
}

// FileComplaint validates and stores a complaint, then notifies the admin.
func (c *Coordinator) FileComplaint(ctx context.Context, req ComplaintRequest) (db.Complaint, error) {
	text := strings.TrimSpace(req.Text)
	n := utf8.RuneCountInString(text)
	if n < minComplaintLen || n > maxComplaintLen {
		return db.Complaint{}, fmt.Errorf("%w: text must be %d-%d characters", ErrInvalidComplaint, minComplaintLen, maxComplaintLen)
	}
	if !slices.Contains(ComplaintTypes, req.Type) {
		return db.Complaint{}, fmt.Errorf("%w: unknown type %q", ErrInvalidComplaint, req.Type)
	}
	if req.ReportedUserID != nil && *req.ReportedUserID == req.UserID {
		return db.Complaint{}, ErrSelfAction
	}

	complaint, err := c.complaints.Create(ctx, db.Complaint{
		UserID:         req.UserID,
		ReportedUserID: req.ReportedUserID,
		Type:           req.Type,
		Text:           text,
	})
	if err != nil {
		return db.Complaint{}, fmt.Errorf("create complaint: %w", err)
	}
	c.log.Info("complaint filed", "complaint", complaint.ID, "user", req.UserID, "type", req.Type)

	about := "general"
	if req.ReportedUserID != nil {
		about = fmt.Sprintf("user %d", *req.ReportedUserID)
	}
	c.notify(ctx, Outbound{
		To:   c.settings.AdminID,
		From: req.UserID,
		Kind: KindComplaint,
		Text: fmt.Sprintf("complaint #%d (%s, %s): %s", complaint.ID, req.Type, about, text),
		Ref:  complaint.ID,
	})
	return complaint, nil
}
