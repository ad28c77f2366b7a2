// Package session owns per-user browsing sessions: the shuffled candidate
// snapshot, the cursor, exhaustion handling and the refetch policy.
//
// State machine per user:
//
//	None -> Browsing -> Exhausted -> (Refetching -> Browsing | Depleted)
//
// Exhausted and Refetching are only held while an Advance call is running;
// between calls a user is None, Browsing or Depleted.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oggyb/matchbot/internal/db"
)

type State int

const (
	StateNone State = iota
	StateBrowsing
	StateExhausted
	StateRefetching
	StateDepleted
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateBrowsing:
		return "browsing"
	case StateExhausted:
		return "exhausted"
	case StateRefetching:
		return "refetching"
	case StateDepleted:
		return "depleted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrNoSession is returned when advancing or reading a user with no
	// session. It is distinct from a missing profile so callers can decide to
	// start a fresh session instead of failing.
	ErrNoSession = errors.New("no active session")
	// ErrNoCandidates is returned when a session would start empty.
	ErrNoCandidates = errors.New("no matching candidates")
	// ErrDepleted is returned when a refetch came back empty.
	ErrDepleted = errors.New("no more candidates")
	// ErrCoolingDown is returned when a retry after depletion comes before
	// the configured cooldown elapsed.
	ErrCoolingDown = errors.New("candidate refetch cooling down")
)

// Source runs the candidate-matching query for a user.
type Source interface {
	Candidates(ctx context.Context, userID int64) ([]db.Profile, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, userID int64) ([]db.Profile, error)

func (f SourceFunc) Candidates(ctx context.Context, userID int64) ([]db.Profile, error) {
	return f(ctx, userID)
}

// Session is a read-only copy of one user's browsing state.
type Session struct {
	// ID changes on every new snapshot (start or refetch).
	ID         uuid.UUID
	UserID     int64
	Candidates []db.Profile
	Cursor     int
	FetchedAt  time.Time
	State      State
}

// Current returns the candidate under the cursor.
func (s Session) Current() (db.Profile, bool) {
	if s.State != StateBrowsing || s.Cursor >= len(s.Candidates) {
		return db.Profile{}, false
	}
	return s.Candidates[s.Cursor], true
}

// Remaining is the number of candidates after the current one.
func (s Session) Remaining() int {
	if s.Cursor >= len(s.Candidates) {
		return 0
	}
	return len(s.Candidates) - s.Cursor - 1
}

// Step is the outcome of a successful Advance.
type Step struct {
	Candidate db.Profile
	SessionID uuid.UUID
	// Refetched is set when the list was exhausted and replaced.
	Refetched bool
}

type Option func(*Engine)

// WithCooldown sets how long a depleted user must wait before Advance may
// refetch again. Zero disables the cooldown.
func WithCooldown(d time.Duration) Option { return func(e *Engine) { e.cooldown = d } }

// WithShuffle replaces the shuffle applied to every fetched batch.
func WithShuffle(f func([]db.Profile)) Option { return func(e *Engine) { e.shuffle = f } }

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option { return func(e *Engine) { e.now = now } }

func WithLogger(l *slog.Logger) Option { return func(e *Engine) { e.log = l } }

// Engine is the per-user session store.
//
// The map lock is only held to look up or insert an entry; every session
// mutation runs under that user's own entry lock, so unrelated users never
// wait on each other, including while a refetch query is in flight.
type Engine struct {
	source   Source
	cooldown time.Duration
	shuffle  func([]db.Profile)
	now      func() time.Time
	log      *slog.Logger

	mu      sync.Mutex
	entries map[int64]*entry
}

type entry struct {
	mu sync.Mutex
	// removed is set once the entry left the map; holders must look it up again.
	removed bool

	id         uuid.UUID
	candidates []db.Profile
	cursor     int
	fetchedAt  time.Time
	state      State
	depletedAt time.Time
}

// New creates an Engine that refetches from source.
func New(source Source, opts ...Option) *Engine {
	e := &Engine{
		source:  source,
		shuffle: shuffle,
		now:     time.Now,
		log:     slog.Default(),
		entries: make(map[int64]*entry),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func shuffle(ps []db.Profile) {
	rand.Shuffle(len(ps), func(i, j int) { ps[i], ps[j] = ps[j], ps[i] })
}

// lock returns userID's entry locked, creating it when create is set.
// Returns nil when there is no entry and create is false.
func (e *Engine) lock(userID int64, create bool) *entry {
	for {
		e.mu.Lock()
		en, ok := e.entries[userID]
		if !ok {
			if !create {
				e.mu.Unlock()
				return nil
			}
			en = &entry{}
			e.entries[userID] = en
		}
		e.mu.Unlock()

		en.mu.Lock()
		if !en.removed {
			return en
		}
		en.mu.Unlock()
	}
}

// remove drops a locked entry from the map.
func (e *Engine) remove(userID int64, en *entry) {
	e.mu.Lock()
	if e.entries[userID] == en {
		delete(e.entries, userID)
	}
	e.mu.Unlock()
	en.removed = true
}

// load replaces the entry's list with a freshly shuffled copy of batch.
func (e *Engine) load(en *entry, batch []db.Profile) {
	list := make([]db.Profile, len(batch))
	copy(list, batch)
	e.shuffle(list)

	en.id = uuid.New()
	en.candidates = list
	en.cursor = 0
	en.fetchedAt = e.now()
	en.state = StateBrowsing
	en.depletedAt = time.Time{}
}

// Start replaces userID's session with a shuffled snapshot of candidates.
// An empty list never enters a session: ErrNoCandidates is returned and any
// existing session is left as it was.
func (e *Engine) Start(userID int64, candidates []db.Profile) (Session, error) {
	if len(candidates) == 0 {
		return Session{}, ErrNoCandidates
	}
	en := e.lock(userID, true)
	defer en.mu.Unlock()

	e.load(en, candidates)
	e.log.Debug("session started", "user", userID, "session", en.id, "candidates", len(en.candidates))
	return en.snapshot(userID), nil
}

// Begin runs the candidate query and starts a session from its result.
func (e *Engine) Begin(ctx context.Context, userID int64) (Session, error) {
	batch, err := e.source.Candidates(ctx, userID)
	if err != nil {
		return Session{}, fmt.Errorf("fetch candidates: %w", err)
	}
	return e.Start(userID, batch)
}

// Current returns the candidate under the cursor.
func (e *Engine) Current(userID int64) (db.Profile, error) {
	en := e.lock(userID, false)
	if en == nil {
		return db.Profile{}, ErrNoSession
	}
	defer en.mu.Unlock()

	switch en.state {
	case StateBrowsing:
		return en.candidates[en.cursor], nil
	case StateDepleted:
		return db.Profile{}, ErrDepleted
	default:
		return db.Profile{}, ErrNoSession
	}
}

// Advance moves the cursor forward.
//
// Behavior:
//   - cursor+1 within the list: returns that candidate.
//   - past the end: the session is Exhausted and exactly one refetch runs.
//     A non-empty batch is shuffled, replaces the list wholesale and its
//     first candidate is returned with Refetched set. An empty batch leaves
//     the user Depleted and returns ErrDepleted.
//   - Depleted users retry the refetch, subject to the cooldown.
//   - A failed refetch query restores the session as it was before the call.
func (e *Engine) Advance(ctx context.Context, userID int64) (Step, error) {
	en := e.lock(userID, false)
	if en == nil {
		return Step{}, ErrNoSession
	}
	defer en.mu.Unlock()

	switch en.state {
	case StateBrowsing:
		if en.cursor+1 < len(en.candidates) {
			en.cursor++
			return Step{Candidate: en.candidates[en.cursor], SessionID: en.id}, nil
		}
		en.state = StateExhausted
		return e.refetch(ctx, userID, en, StateBrowsing)

	case StateDepleted:
		if e.cooldown > 0 {
			if wait := en.depletedAt.Add(e.cooldown).Sub(e.now()); wait > 0 {
				return Step{}, fmt.Errorf("%w: retry in %s", ErrCoolingDown, wait.Round(time.Second))
			}
		}
		return e.refetch(ctx, userID, en, StateDepleted)

	default:
		return Step{}, ErrNoSession
	}
}

// refetch runs the single refetch attempt for an exhausted or depleted entry.
// prev is the state to restore when the query fails.
func (e *Engine) refetch(ctx context.Context, userID int64, en *entry, prev State) (Step, error) {
	en.state = StateRefetching
	batch, err := e.source.Candidates(ctx, userID)
	if err != nil {
		en.state = prev
		e.log.Warn("candidate refetch failed", "user", userID, "err", err)
		return Step{}, fmt.Errorf("refetch candidates: %w", err)
	}

	if len(batch) == 0 {
		en.state = StateDepleted
		en.depletedAt = e.now()
		en.candidates = nil
		en.cursor = 0
		e.log.Debug("session depleted", "user", userID)
		return Step{}, ErrDepleted
	}

	e.load(en, batch)
	e.log.Debug("session refetched", "user", userID, "session", en.id, "candidates", len(en.candidates))
	return Step{Candidate: en.candidates[0], SessionID: en.id, Refetched: true}, nil
}

// Cancel clears userID's session. Cancelling a user without a session is a
// no-op.
func (e *Engine) Cancel(userID int64) {
	en := e.lock(userID, false)
	if en == nil {
		return
	}
	defer en.mu.Unlock()
	e.remove(userID, en)
	e.log.Debug("session cancelled", "user", userID)
}

// Snapshot returns a copy of userID's session.
func (e *Engine) Snapshot(userID int64) (Session, bool) {
	en := e.lock(userID, false)
	if en == nil {
		return Session{}, false
	}
	defer en.mu.Unlock()
	return en.snapshot(userID), true
}

func (en *entry) snapshot(userID int64) Session {
	list := make([]db.Profile, len(en.candidates))
	copy(list, en.candidates)
	return Session{
		ID:         en.id,
		UserID:     userID,
		Candidates: list,
		Cursor:     en.cursor,
		FetchedAt:  en.fetchedAt,
		State:      en.state,
	}
}
