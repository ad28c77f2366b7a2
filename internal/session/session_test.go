package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/logger"
	"github.com/oggyb/matchbot/internal/session"
)

// fakeSource returns queued batches in order and counts calls.
type fakeSource struct {
	mu      sync.Mutex
	batches [][]db.Profile
	err     error
	calls   int
}

func (f *fakeSource) Candidates(context.Context, int64) ([]db.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.batches) == 0 {
		return nil, nil
	}
	b := f.batches[0]
	f.batches = f.batches[1:]
	return b, nil
}

func (f *fakeSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func profiles(ids ...int64) []db.Profile {
	out := make([]db.Profile, 0, len(ids))
	for _, id := range ids {
		out = append(out, db.Profile{ID: id})
	}
	return out
}

func noShuffle([]db.Profile) {}

func newEngine(src session.Source, opts ...session.Option) *session.Engine {
	opts = append([]session.Option{session.WithShuffle(noShuffle), session.WithLogger(logger.Discard())}, opts...)
	return session.New(src, opts...)
}

func TestStartRejectsEmpty(t *testing.T) {
	e := newEngine(&fakeSource{})

	_, err := e.Start(1, nil)
	assert.ErrorIs(t, err, session.ErrNoCandidates)
	_, ok := e.Snapshot(1)
	assert.False(t, ok)
}

func TestStartCopiesAndShuffles(t *testing.T) {
	reversed := func(ps []db.Profile) {
		for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
			ps[i], ps[j] = ps[j], ps[i]
		}
	}
	e := session.New(&fakeSource{}, session.WithShuffle(reversed), session.WithLogger(logger.Discard()))

	input := profiles(1, 2, 3)
	s, err := e.Start(9, input)
	require.NoError(t, err)

	assert.Equal(t, int64(1), input[0].ID, "caller slice untouched")
	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, int64(3), cur.ID)
	assert.Equal(t, 0, s.Cursor)
	assert.Equal(t, 2, s.Remaining())
	assert.Equal(t, session.StateBrowsing, s.State)
	assert.NotEqual(t, uuid.Nil, s.ID)
}

func TestAdvanceWalksThenRefetchesExactlyOnce(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{batches: [][]db.Profile{profiles(7, 8)}}
	e := newEngine(src)

	first, err := e.Start(1, profiles(10, 11, 12))
	require.NoError(t, err)

	for _, want := range []int64{11, 12} {
		step, err := e.Advance(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, want, step.Candidate.ID)
		assert.False(t, step.Refetched)
		assert.Equal(t, first.ID, step.SessionID)
	}
	assert.Zero(t, src.Calls())

	step, err := e.Advance(ctx, 1)
	require.NoError(t, err)
	assert.True(t, step.Refetched)
	assert.Equal(t, int64(7), step.Candidate.ID)
	assert.NotEqual(t, first.ID, step.SessionID)
	assert.Equal(t, 1, src.Calls())

	cur, err := e.Current(1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cur.ID)
}

func TestAdvanceDepletesOnEmptyRefetch(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{}
	e := newEngine(src)

	_, err := e.Start(1, profiles(10))
	require.NoError(t, err)

	_, err = e.Advance(ctx, 1)
	assert.ErrorIs(t, err, session.ErrDepleted)
	assert.Equal(t, 1, src.Calls(), "one refetch, no retry loop")
	assert.Equal(t, session.StateDepleted, stateOf(e, 1))

	_, err = e.Current(1)
	assert.ErrorIs(t, err, session.ErrDepleted)

	// without a cooldown the caller may retry right away
	src.batches = [][]db.Profile{profiles(20)}
	step, err := e.Advance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(20), step.Candidate.ID)
	assert.Equal(t, 2, src.Calls())
}

func TestAdvanceCooldownAfterDepletion(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	src := &fakeSource{}
	e := newEngine(src,
		session.WithCooldown(time.Minute),
		session.WithClock(func() time.Time { return now }),
	)

	_, err := e.Start(1, profiles(10))
	require.NoError(t, err)
	_, err = e.Advance(ctx, 1)
	require.ErrorIs(t, err, session.ErrDepleted)

	now = now.Add(30 * time.Second)
	_, err = e.Advance(ctx, 1)
	assert.ErrorIs(t, err, session.ErrCoolingDown)
	assert.Equal(t, 1, src.Calls())

	now = now.Add(31 * time.Second)
	src.batches = [][]db.Profile{profiles(5)}
	step, err := e.Advance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), step.Candidate.ID)
}

func TestRefetchFailureLeavesSessionUnchanged(t *testing.T) {
	ctx := context.Background()
	src := &fakeSource{err: errors.New("db down")}
	e := newEngine(src)

	before, err := e.Start(1, profiles(10))
	require.NoError(t, err)

	_, err = e.Advance(ctx, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, session.ErrDepleted)

	after, ok := e.Snapshot(1)
	require.True(t, ok)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, session.StateBrowsing, after.State)
	assert.Equal(t, 0, after.Cursor)
}

func TestAdvanceWithoutSession(t *testing.T) {
	e := newEngine(&fakeSource{})

	_, err := e.Advance(context.Background(), 1)
	assert.ErrorIs(t, err, session.ErrNoSession)
	_, err = e.Current(1)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestCancelIsIdempotent(t *testing.T) {
	e := newEngine(&fakeSource{})

	e.Cancel(1)
	_, err := e.Start(1, profiles(10))
	require.NoError(t, err)

	e.Cancel(1)
	e.Cancel(1)
	_, ok := e.Snapshot(1)
	assert.False(t, ok)
}

func TestBeginUsesSource(t *testing.T) {
	ctx := context.Background()
	e := newEngine(&fakeSource{batches: [][]db.Profile{profiles(4, 5)}})

	s, err := e.Begin(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, s.Candidates, 2)

	_, err = newEngine(&fakeSource{}).Begin(ctx, 1)
	assert.ErrorIs(t, err, session.ErrNoCandidates)
}

// blockingSource parks user 1's query until release is closed.
type blockingSource struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingSource) Candidates(_ context.Context, userID int64) ([]db.Profile, error) {
	if userID == 1 {
		close(b.entered)
		<-b.release
	}
	return profiles(100), nil
}

func TestUsersDoNotBlockEachOther(t *testing.T) {
	ctx := context.Background()
	src := &blockingSource{entered: make(chan struct{}), release: make(chan struct{})}
	e := newEngine(src)

	_, err := e.Start(1, profiles(10))
	require.NoError(t, err)
	_, err = e.Start(2, profiles(20, 21))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := e.Advance(ctx, 1) // exhausts and parks in the refetch
		done <- err
	}()
	<-src.entered

	step, err := e.Advance(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(21), step.Candidate.ID)
	assert.Equal(t, session.StateBrowsing, stateOf(e, 2))

	close(src.release)
	require.NoError(t, <-done)
}

func TestConcurrentAdvancesAreSerialized(t *testing.T) {
	ctx := context.Background()
	e := newEngine(&fakeSource{})

	ids := make([]int64, 50)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	_, err := e.Start(1, profiles(ids...))
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[int64]int{}
	)
	for i := 0; i < 49; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			step, err := e.Advance(ctx, 1)
			if err != nil {
				return
			}
			mu.Lock()
			seen[step.Candidate.ID]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 49)
	for id, n := range seen {
		assert.Equal(t, 1, n, "candidate %d returned twice", id)
	}
	s, ok := e.Snapshot(1)
	require.True(t, ok)
	assert.Equal(t, 49, s.Cursor)
}

func stateOf(e *session.Engine, userID int64) session.State {
	s, _ := e.Snapshot(userID)
	return s.State
}
