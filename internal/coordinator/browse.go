package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/repository"
	"github.com/oggyb/matchbot/internal/session"
)

// BrowseResult is the candidate under the cursor of a session.
type BrowseResult struct {
	Candidate db.Profile
	SessionID uuid.UUID
	Remaining int
	// Position is the 1-based index of Candidate in the snapshot.
	Position int
	Total    int
}

// Browse starts a fresh discovery session for userID.
// Returns session.ErrNoCandidates when nobody matches.
func (c *Coordinator) Browse(ctx context.Context, userID int64) (BrowseResult, error) {
	p, err := c.requireProfile(ctx, userID)
	if err != nil {
		return BrowseResult{}, err
	}
	if !p.Discoverable() {
		return BrowseResult{}, ErrIncompleteProfile
	}

	s, err := c.sessions.Begin(ctx, userID)
	if err != nil {
		return BrowseResult{}, err
	}
	c.log.Debug("browse started", "user", userID, "session", s.ID, "candidates", len(s.Candidates))
	return browseResult(s), nil
}

// Resume returns the candidate under userID's cursor without refetching.
// ok is false when the user is not browsing.
func (c *Coordinator) Resume(userID int64) (BrowseResult, bool) {
	s, ok := c.sessions.Snapshot(userID)
	if !ok || s.State != session.StateBrowsing {
		return BrowseResult{}, false
	}
	return browseResult(s), true
}

func browseResult(s session.Session) BrowseResult {
	cur, _ := s.Current()
	return BrowseResult{
		Candidate: cur,
		SessionID: s.ID,
		Remaining: s.Remaining(),
		Position:  s.Cursor + 1,
		Total:     len(s.Candidates),
	}
}

// StepResult is where the session landed after an action.
type StepResult struct {
	// Next is nil when the action did not advance, or the session ran dry.
	Next      *db.Profile
	SessionID uuid.UUID
	Refetched bool
	// Depleted means the refetch came back empty (or is cooling down).
	Depleted bool
}

// advanceFrom advances userID's session iff targetID is the current
// candidate. Actions on a profile outside the session (from the likers list,
// a stale button) never move the cursor.
func (c *Coordinator) advanceFrom(ctx context.Context, userID, targetID int64) (StepResult, error) {
	cur, err := c.sessions.Current(userID)
	switch {
	case errors.Is(err, session.ErrNoSession), errors.Is(err, session.ErrDepleted):
		return StepResult{}, nil
	case err != nil:
		return StepResult{}, err
	case cur.ID != targetID:
		return StepResult{}, nil
	}

	step, err := c.sessions.Advance(ctx, userID)
	switch {
	case errors.Is(err, session.ErrDepleted), errors.Is(err, session.ErrCoolingDown):
		return StepResult{Depleted: true}, nil
	case err != nil:
		return StepResult{}, fmt.Errorf("advance session: %w", err)
	}
	next := step.Candidate
	return StepResult{Next: &next, SessionID: step.SessionID, Refetched: step.Refetched}, nil
}

// isCurrent reports whether targetID is the candidate under userID's cursor.
func (c *Coordinator) isCurrent(userID, targetID int64) bool {
	cur, err := c.sessions.Current(userID)
	return err == nil && cur.ID == targetID
}

// LikeResult reports a like and the resulting session step.
type LikeResult struct {
	StepResult
	// AlreadyLiked is the benign duplicate outcome.
	AlreadyLiked bool
	// Mutual is set when the target already liked the user back.
	Mutual bool
	// Blocked means a block exists between the pair; nothing was written.
	Blocked bool
	// Unavailable means the current candidate was deleted after the session
	// snapshot was taken; the session moved past it.
	Unavailable bool
}

// Like writes the like edge, then advances the session.
//
// Behavior:
//   - A duplicate like reports AlreadyLiked, not an error.
//   - A block in either direction reports Blocked: no edge, no notice.
//   - The liked user's counters are invalidated and they get a notice.
//   - A current candidate that no longer exists is skipped.
//   - When the session advance fails, the like is already stored; retrying
//     the action is safe because the write is idempotent.
func (c *Coordinator) Like(ctx context.Context, userID, targetID int64) (LikeResult, error) {
	if userID == targetID {
		return LikeResult{}, ErrSelfAction
	}
	if _, err := c.requireProfile(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) && c.isCurrent(userID, targetID) {
			step, err := c.advanceFrom(ctx, userID, targetID)
			return LikeResult{StepResult: step, Unavailable: true}, err
		}
		return LikeResult{}, err
	}

	blocked, err := c.relations.Blocked(ctx, userID, targetID)
	if err != nil {
		return LikeResult{}, fmt.Errorf("block check: %w", err)
	}
	if blocked {
		c.log.Debug("like across block ignored", "user", userID, "target", targetID)
		step, err := c.advanceFrom(ctx, userID, targetID)
		return LikeResult{StepResult: step, Blocked: true}, err
	}

	created, err := c.relations.AddLike(ctx, userID, targetID)
	if err != nil {
		return LikeResult{}, fmt.Errorf("add like: %w", err)
	}
	res := LikeResult{AlreadyLiked: !created}

	res.Mutual, err = c.relations.HasLiked(ctx, targetID, userID)
	if err != nil {
		return res, fmt.Errorf("mutual check: %w", err)
	}

	if created {
		c.invalidate(ctx, userID, targetID)
		kind := KindLike
		if res.Mutual {
			kind = KindMatch
			c.notify(ctx, Outbound{To: userID, From: targetID, Kind: KindMatch})
		}
		c.notify(ctx, Outbound{To: targetID, From: userID, Kind: kind})
		c.log.Info("like stored", "user", userID, "target", targetID, "mutual", res.Mutual)
	}

	step, err := c.advanceFrom(ctx, userID, targetID)
	if err != nil {
		return res, err
	}
	res.StepResult = step
	return res, nil
}

// Skip advances the session without any persistent write.
func (c *Coordinator) Skip(ctx context.Context, userID, targetID int64) (StepResult, error) {
	return c.advanceFrom(ctx, userID, targetID)
}

// BlockResult reports a block.
type BlockResult struct {
	AlreadyBlocked bool
	// Unavailable means the current candidate no longer exists; nothing was
	// written.
	Unavailable bool
}

// Block writes the block edge. The session is not advanced.
func (c *Coordinator) Block(ctx context.Context, userID, targetID int64) (BlockResult, error) {
	if userID == targetID {
		return BlockResult{}, ErrSelfAction
	}
	if _, err := c.requireProfile(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) && c.isCurrent(userID, targetID) {
			return BlockResult{Unavailable: true}, nil
		}
		return BlockResult{}, err
	}
	created, err := c.relations.AddBlock(ctx, userID, targetID)
	if err != nil {
		return BlockResult{}, fmt.Errorf("add block: %w", err)
	}
	if created {
		c.invalidate(ctx, userID, targetID)
		c.log.Info("block stored", "user", userID, "target", targetID)
	}
	return BlockResult{AlreadyBlocked: !created}, nil
}

// CancelSession clears the user's session. Always succeeds.
func (c *Coordinator) CancelSession(userID int64) {
	c.sessions.Cancel(userID)
}
