// Package coordinator turns user actions into ledger operations,
// relationship writes and session advances, in a fixed order.
//
// Paid actions never charge without delivering value and never deliver
// value without a confirmed charge.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oggyb/matchbot/internal/cache"
	"github.com/oggyb/matchbot/internal/config"
	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/ledger"
	"github.com/oggyb/matchbot/internal/repository"
	"github.com/oggyb/matchbot/internal/session"
)

var (
	// ErrIncompleteProfile is returned when the acting user is not eligible
	// for discovery yet (inactive, no gender, no photo or no bio).
	ErrIncompleteProfile = errors.New("profile incomplete")
	// ErrSelfAction is returned for likes, blocks and messages aimed at oneself.
	ErrSelfAction = errors.New("cannot target yourself")
	// ErrBlocked is returned when messaging across a block.
	ErrBlocked = errors.New("users blocked")
	// ErrEmptyMessage is returned for a message with neither text nor media.
	ErrEmptyMessage = errors.New("empty message")
	// ErrUnknownPackage is returned for a coin package id not in the catalog.
	ErrUnknownPackage = errors.New("unknown coin package")
	// ErrInvalidComplaint is returned for complaints outside the length bounds
	// or without a type.
	ErrInvalidComplaint = errors.New("invalid complaint")
)

// Notice kinds carried to the transport.
const (
	KindMessage   = "message"
	KindLike      = "like"
	KindMatch     = "match"
	KindPayment   = "payment"
	KindComplaint = "complaint"
)

// Outbound is one unit handed to the chat transport.
type Outbound struct {
	To   int64
	From int64
	// Kind is a Kind* constant; for KindMessage MessageKind says text/photo/voice.
	Kind        string
	MessageKind string
	Text        string
	MediaRef    string
	// Ref is the id of the payment or complaint a notice is about.
	Ref uint64
}

// Transport delivers outbound units to users.
type Transport interface {
	Deliver(ctx context.Context, out Outbound) error
}

// Counters caches per-user counts. A nil Counters disables caching.
type Counters interface {
	GetCount(ctx context.Context, counter cache.Counter, userID int64) (int64, bool, error)
	SetCount(ctx context.Context, counter cache.Counter, userID, count int64) error
	Invalidate(ctx context.Context, userIDs ...int64) error
}

// Settings are the coordinator's economic and presentation knobs.
type Settings struct {
	MessageCost       int64
	ViewAllLikersCost int64
	LikersPreview     int
	ConversationLimit int
	// AdminID receives payment and complaint notices. Zero disables them.
	AdminID int64
}

// SettingsFromConfig extracts Settings from the app config.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		MessageCost:       cfg.Coins.MessageCost,
		ViewAllLikersCost: cfg.Coins.ViewAllLikersCost,
		LikersPreview:     cfg.Discovery.LikersPreview,
		ConversationLimit: cfg.Discovery.ConversationLimit,
		AdminID:           cfg.Bot.AdminID,
	}
}

// Deps are the collaborators of a Coordinator.
type Deps struct {
	Profiles   *repository.ProfileRepository
	Relations  *repository.RelationshipRepository
	Messages   *repository.MessageRepository
	Payments   *repository.PaymentRepository
	Complaints *repository.ComplaintRepository
	Ledger     *ledger.Ledger
	Sessions   *session.Engine
	Transport  Transport
	Counters   Counters
	Logger     *slog.Logger
}

// Coordinator executes user actions.
type Coordinator struct {
	profiles   *repository.ProfileRepository
	relations  *repository.RelationshipRepository
	messages   *repository.MessageRepository
	payments   *repository.PaymentRepository
	complaints *repository.ComplaintRepository
	ledger     *ledger.Ledger
	sessions   *session.Engine
	transport  Transport
	counters   Counters
	settings   Settings
	log        *slog.Logger
}

// New creates a Coordinator.
func New(d Deps, s Settings) *Coordinator {
	if s.LikersPreview <= 0 {
		s.LikersPreview = 5
	}
	if s.ConversationLimit <= 0 {
		s.ConversationLimit = 20
	}
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Coordinator{
		profiles:   d.Profiles,
		relations:  d.Relations,
		messages:   d.Messages,
		payments:   d.Payments,
		complaints: d.Complaints,
		ledger:     d.Ledger,
		sessions:   d.Sessions,
		transport:  d.Transport,
		counters:   d.Counters,
		settings:   s,
		log:        log,
	}
}

// Settings returns the active settings.
func (c *Coordinator) Settings() Settings { return c.settings }

// CandidateSource is the session engine's refetch query: it looks up the
// user's gender and runs the candidate-matching query.
func CandidateSource(profiles *repository.ProfileRepository, relations *repository.RelationshipRepository) session.Source {
	return session.SourceFunc(func(ctx context.Context, userID int64) ([]db.Profile, error) {
		p, err := profiles.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		return relations.Candidates(ctx, userID, p.Gender)
	})
}

// notify delivers a notice. Notices are best effort.
func (c *Coordinator) notify(ctx context.Context, out Outbound) {
	if c.transport == nil || out.To == 0 {
		return
	}
	if err := c.transport.Deliver(ctx, out); err != nil {
		c.log.Warn("notice not delivered", "to", out.To, "kind", out.Kind, "err", err)
	}
}

func (c *Coordinator) invalidate(ctx context.Context, userIDs ...int64) {
	if c.counters == nil {
		return
	}
	if err := c.counters.Invalidate(ctx, userIDs...); err != nil {
		c.log.Warn("counter invalidation failed", "users", userIDs, "err", err)
	}
}

// requireProfile loads a profile, wrapping a miss with the id.
func (c *Coordinator) requireProfile(ctx context.Context, id int64) (db.Profile, error) {
	p, err := c.profiles.Get(ctx, id)
	if err != nil {
		return db.Profile{}, fmt.Errorf("profile %d: %w", id, err)
	}
	return p, nil
}
