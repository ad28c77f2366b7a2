package coordinator_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/oggyb/matchbot/internal/cache"
	"github.com/oggyb/matchbot/internal/coordinator"
	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/db/dbtest"
	"github.com/oggyb/matchbot/internal/ledger"
	"github.com/oggyb/matchbot/internal/logger"
	"github.com/oggyb/matchbot/internal/repository"
	"github.com/oggyb/matchbot/internal/session"
)

// recorder is a Transport that records deliveries and can be told to fail.
type recorder struct {
	mu   sync.Mutex
	sent []coordinator.Outbound
	fail bool
}

func (r *recorder) Deliver(_ context.Context, out coordinator.Outbound) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("recipient unreachable")
	}
	r.sent = append(r.sent, out)
	return nil
}

func (r *recorder) setFail(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = v
}

func (r *recorder) kinds(to int64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, o := range r.sent {
		if o.To == to {
			out = append(out, o.Kind)
		}
	}
	return out
}

// byID orders candidates deterministically in place of the random shuffle.
func byID(ps []db.Profile) {
	slices.SortFunc(ps, func(a, b db.Profile) int { return int(a.ID - b.ID) })
}

type harness struct {
	db        *gorm.DB
	redis     *miniredis.Miniredis
	transport *recorder
	sessions  *session.Engine
	c         *coordinator.Coordinator
}

var testSettings = coordinator.Settings{
	MessageCost:       2,
	ViewAllLikersCost: 10,
	LikersPreview:     2,
	AdminID:           900,
}

func newHarness(t *testing.T, opts ...func(*coordinator.Deps)) *harness {
	t.Helper()
	gdb := dbtest.Open(t)
	mr := miniredis.RunT(t)
	rc := cache.New(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)
	t.Cleanup(func() { _ = rc.Close() })

	profiles := repository.NewProfileRepository(gdb)
	relations := repository.NewRelationshipRepository(gdb)
	engine := session.New(
		coordinator.CandidateSource(profiles, relations),
		session.WithShuffle(byID),
		session.WithLogger(logger.Discard()),
	)
	tr := &recorder{}

	deps := coordinator.Deps{
		Profiles:   profiles,
		Relations:  relations,
		Messages:   repository.NewMessageRepository(gdb),
		Payments:   repository.NewPaymentRepository(gdb),
		Complaints: repository.NewComplaintRepository(gdb),
		Ledger:     ledger.New(repository.NewLedgerRepository(gdb), logger.Discard()),
		Sessions:   engine,
		Transport:  tr,
		Counters:   rc,
		Logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(&deps)
	}
	return &harness{
		db:        gdb,
		redis:     mr,
		transport: tr,
		sessions:  engine,
		c:         coordinator.New(deps, testSettings),
	}
}

func (h *harness) add(t *testing.T, id int64, gender string, coins int64) {
	t.Helper()
	p := dbtest.Profile(id, gender)
	p.Coins = coins
	dbtest.Insert(t, h.db, p)
}

// racingStore reports a healthy balance but loses every debit, the way a
// concurrent spend between check and debit would.
type racingStore struct {
	balance int64
}

func (s *racingStore) Credit(_ context.Context, _, amount int64) (int64, error) {
	s.balance += amount
	return s.balance, nil
}
func (s *racingStore) Debit(context.Context, int64, int64) (bool, error) { return false, nil }
func (s *racingStore) Balance(context.Context, int64) (int64, error)     { return s.balance, nil }
func (s *racingStore) GrantOnce(context.Context, int64, int64) (bool, error) {
	return false, nil
}

func stateOf(e *session.Engine, userID int64) session.State {
	s, _ := e.Snapshot(userID)
	return s.State
}
