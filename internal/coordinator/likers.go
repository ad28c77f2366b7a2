package coordinator

import (
	"context"
	"fmt"

	"github.com/oggyb/matchbot/internal/cache"
	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/repository"
)

// LikersPage returns the free "who liked me" preview, one page at a time.
func (c *Coordinator) LikersPage(ctx context.Context, userID int64, token *string) ([]repository.Liker, *string, error) {
	likers, next, err := c.relations.LikersPage(ctx, userID, token, c.settings.LikersPreview)
	if err != nil {
		return nil, nil, fmt.Errorf("likers page: %w", err)
	}
	return likers, next, nil
}

// ViewStatus is the outcome of ViewAllLikers.
type ViewStatus int

const (
	// Viewed means charged and the full list returned.
	Viewed ViewStatus = iota
	// ViewInsufficientFunds means nothing was charged or disclosed.
	ViewInsufficientFunds
	// NoLikers means there was nothing to show and nothing was charged.
	NoLikers
	// NotCharged means the debit failed after the balance check passed; the
	// list is withheld.
	NotCharged
)

func (s ViewStatus) String() string {
	switch s {
	case Viewed:
		return "viewed"
	case ViewInsufficientFunds:
		return "insufficient_funds"
	case NoLikers:
		return "no_likers"
	case NotCharged:
		return "not_charged"
	default:
		return fmt.Sprintf("view_status(%d)", int(s))
	}
}

// ViewResult carries the premium likers list.
type ViewResult struct {
	Status  ViewStatus
	Likers  []repository.Liker
	Balance int64
	Cost    int64
}

// ViewAllLikers is the premium full list of people who liked userID.
//
// Effect order: balance check, debit, then disclosure. A failed debit
// withholds the list. If loading the list fails after the debit, the
// charge is refunded before the error is returned.
func (c *Coordinator) ViewAllLikers(ctx context.Context, userID int64) (ViewResult, error) {
	cost := c.settings.ViewAllLikersCost

	balance, covered, err := c.ledger.Covers(ctx, userID, cost)
	if err != nil {
		return ViewResult{}, err
	}
	res := ViewResult{Balance: balance, Cost: cost}
	if !covered {
		res.Status = ViewInsufficientFunds
		return res, nil
	}

	count, err := c.relations.CountLikesReceived(ctx, userID)
	if err != nil {
		return ViewResult{}, fmt.Errorf("count likers: %w", err)
	}
	if count == 0 {
		res.Status = NoLikers
		return res, nil
	}

	ok, err := c.ledger.Debit(ctx, userID, cost)
	if err != nil {
		return ViewResult{}, err
	}
	if !ok {
		res.Status = NotCharged
		return res, nil
	}

	likers, err := c.relations.Likers(ctx, userID)
	if err != nil {
		if _, rerr := c.ledger.Credit(ctx, userID, cost); rerr != nil {
			c.log.Error("likers refund failed", "user", userID, "amount", cost, "err", rerr)
		}
		return ViewResult{}, fmt.Errorf("load likers: %w", err)
	}

	res.Status = Viewed
	res.Likers = likers
	res.Balance -= cost
	if b, err := c.ledger.Balance(ctx, userID); err == nil {
		res.Balance = b
	}
	return res, nil
}

// Matches returns the mutual matches of userID.
func (c *Coordinator) Matches(ctx context.Context, userID int64) ([]db.Profile, error) {
	matches, err := c.relations.MutualMatches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("matches: %w", err)
	}
	return matches, nil
}

// Counts is the pair of counters shown on a profile.
type Counts struct {
	LikesReceived int64
	Matches       int64
}

// Counts returns likes received and mutual matches, cache first.
//
// Cache-first strategy:
//  1. Attempts to read each counter from Redis.
//  2. On a miss or a cache error, falls back to the DB.
//  3. On DB fetch, writes the counter back with the configured TTL.
func (c *Coordinator) Counts(ctx context.Context, userID int64) (Counts, error) {
	likes, err := c.cachedCount(ctx, cache.LikesReceived, userID, c.relations.CountLikesReceived)
	if err != nil {
		return Counts{}, err
	}
	matches, err := c.cachedCount(ctx, cache.Matches, userID, c.relations.CountMatches)
	if err != nil {
		return Counts{}, err
	}
	return Counts{LikesReceived: likes, Matches: matches}, nil
}

func (c *Coordinator) cachedCount(
	ctx context.Context,
	counter cache.Counter,
	userID int64,
	load func(context.Context, int64) (int64, error),
) (int64, error) {
	if c.counters != nil {
		n, ok, err := c.counters.GetCount(ctx, counter, userID)
		if err != nil {
			c.log.Warn("counter cache read failed", "counter", counter, "user", userID, "err", err)
		} else if ok {
			return n, nil
		}
	}

	n, err := load(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", counter, err)
	}
	if c.counters != nil {
		if err := c.counters.SetCount(ctx, counter, userID, n); err != nil {
			c.log.Warn("counter cache write failed", "counter", counter, "user", userID, "err", err)
		}
	}
	return n, nil
}

// Balance returns userID's coin balance (0 for unknown users).
func (c *Coordinator) Balance(ctx context.Context, userID int64) (int64, error) {
	return c.ledger.Balance(ctx, userID)
}
