package registration_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/db/dbtest"
	"github.com/oggyb/matchbot/internal/ledger"
	"github.com/oggyb/matchbot/internal/logger"
	"github.com/oggyb/matchbot/internal/registration"
	"github.com/oggyb/matchbot/internal/repository"
	"github.com/oggyb/matchbot/internal/session"
)

func ptr[T any](v T) *T { return &v }

var rules = registration.Rules{
	MinAge:        18,
	MaxAge:        100,
	MinPhotos:     2,
	MaxPhotos:     3,
	FinalizeDelay: time.Hour,
	Bonus:         10,
}

func newService(t *testing.T, r registration.Rules) (*registration.Service, *gorm.DB, *session.Engine) {
	t.Helper()
	gdb := dbtest.Open(t)
	profiles := repository.NewProfileRepository(gdb)
	engine := session.New(session.SourceFunc(func(context.Context, int64) ([]db.Profile, error) { return nil, nil }),
		session.WithLogger(logger.Discard()))
	l := ledger.New(repository.NewLedgerRepository(gdb), logger.Discard())
	return registration.New(profiles, l, engine, r, logger.Discard()), gdb, engine
}

func load(t *testing.T, gdb *gorm.DB, id int64) db.Profile {
	t.Helper()
	p, err := repository.NewProfileRepository(gdb).Get(context.Background(), id)
	require.NoError(t, err)
	return p
}

func TestRegisterIsInsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t, rules)

	created, err := svc.Register(ctx, 1, "abebe", "Abebe", "")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.Register(ctx, 1, "abebe", "Abebe", "")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestValidate(t *testing.T) {
	svc, _, _ := newService(t, rules)

	cases := []struct {
		name string
		u    repository.ProfileUpdate
		ok   bool
	}{
		{"age too low", repository.ProfileUpdate{Age: ptr(17)}, false},
		{"age at max", repository.ProfileUpdate{Age: ptr(100)}, true},
		{"gender other", repository.ProfileUpdate{Gender: ptr("robot")}, false},
		{"gender mixed case", repository.ProfileUpdate{Gender: ptr(" Female ")}, true},
		{"language unknown", repository.ProfileUpdate{Language: ptr("klingon")}, false},
		{"language", repository.ProfileUpdate{Language: ptr("Amharic")}, true},
		{"short name", repository.ProfileUpdate{FirstName: ptr("A")}, false},
		{"latitude", repository.ProfileUpdate{Latitude: ptr(91.0)}, false},
		{"longitude", repository.ProfileUpdate{Longitude: ptr(38.7)}, true},
		{"religion blank", repository.ProfileUpdate{Religion: ptr("  ")}, false},
		{"religion typed", repository.ProfileUpdate{Religion: ptr("Catholic")}, true},
		{"phone", repository.ProfileUpdate{Phone: ptr("+251 911-000000")}, true},
		{"phone letters", repository.ProfileUpdate{Phone: ptr("call me")}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := tc.u
			err := svc.Validate(&u)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, registration.ErrInvalidField)
			}
		})
	}

	u := repository.ProfileUpdate{Gender: ptr(" Female "), Language: ptr("Amharic")}
	require.NoError(t, svc.Validate(&u))
	assert.Equal(t, db.GenderFemale, *u.Gender)
	assert.Equal(t, "amharic", *u.Language)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc, gdb, _ := newService(t, rules)
	_, err := svc.Register(ctx, 1, "u", "User", "")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProfile(ctx, 1, repository.ProfileUpdate{Age: ptr(30), Bio: ptr("  hi there  ")}))
	p := load(t, gdb, 1)
	assert.Equal(t, 30, p.Age)
	assert.Equal(t, "hi there", p.Bio)

	err = svc.UpdateProfile(ctx, 1, repository.ProfileUpdate{Age: ptr(5)})
	assert.ErrorIs(t, err, registration.ErrInvalidField)
	err = svc.UpdateProfile(ctx, 2, repository.ProfileUpdate{Age: ptr(20)})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAddPhotoFinalizesAtMinimum(t *testing.T) {
	ctx := context.Background()
	svc, gdb, _ := newService(t, rules)
	_, err := svc.Register(ctx, 1, "u", "User", "")
	require.NoError(t, err)

	var calls atomic.Int32
	svc.OnFinalize = func(f registration.Finalized) {
		calls.Add(1)
		assert.False(t, f.ByTimer)
		assert.True(t, f.BonusGranted)
	}

	res, err := svc.AddPhoto(ctx, 1, "a")
	require.NoError(t, err)
	assert.Equal(t, registration.PhotoResult{Count: 1}, res)

	_, err = svc.AddPhoto(ctx, 1, "a")
	assert.ErrorIs(t, err, registration.ErrDuplicatePhoto)

	res, err = svc.AddPhoto(ctx, 1, "b")
	require.NoError(t, err)
	assert.True(t, res.Finalized)
	assert.Equal(t, int32(1), calls.Load())
	assert.Zero(t, svc.Pending(1))

	p := load(t, gdb, 1)
	assert.True(t, p.Registered)
	assert.Equal(t, []string{"a", "b"}, p.PhotoRefs())
	assert.Equal(t, int64(10), p.Coins)

	_, err = svc.AddPhoto(ctx, 1, "c")
	assert.ErrorIs(t, err, registration.ErrAlreadyRegistered)
}

func TestDelayedFinalizeFiresWithOnePhoto(t *testing.T) {
	ctx := context.Background()
	r := rules
	r.FinalizeDelay = 20 * time.Millisecond
	svc, gdb, _ := newService(t, r)
	_, err := svc.Register(ctx, 1, "u", "User", "")
	require.NoError(t, err)

	done := make(chan registration.Finalized, 1)
	svc.OnFinalize = func(f registration.Finalized) { done <- f }

	_, err = svc.AddPhoto(ctx, 1, "only")
	require.NoError(t, err)

	select {
	case f := <-done:
		assert.True(t, f.ByTimer)
		assert.Equal(t, []string{"only"}, f.Photos)
	case <-time.After(2 * time.Second):
		t.Fatal("delayed finalize never fired")
	}
	assert.True(t, load(t, gdb, 1).Registered)
}

func TestFinalizeExactlyOnceUnderRace(t *testing.T) {
	ctx := context.Background()
	svc, gdb, _ := newService(t, rules)
	_, err := svc.Register(ctx, 1, "u", "User", "")
	require.NoError(t, err)
	_, err = svc.AddPhoto(ctx, 1, "a")
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		finalized atomic.Int32
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok, err := svc.Finalize(ctx, 1); err == nil && ok {
				finalized.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), finalized.Load())
	assert.Equal(t, int64(10), load(t, gdb, 1).Coins, "bonus granted once")

	_, ok, err := svc.Finalize(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFinalizeClearsSession(t *testing.T) {
	ctx := context.Background()
	svc, _, engine := newService(t, rules)
	_, err := svc.Register(ctx, 1, "u", "User", "")
	require.NoError(t, err)
	_, err = engine.Start(1, []db.Profile{{ID: 2}})
	require.NoError(t, err)

	_, err = svc.AddPhoto(ctx, 1, "a")
	require.NoError(t, err)
	_, ok, err := svc.Finalize(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, session.StateNone, stateOf(engine, 1))
}

func TestCancelStopsTimer(t *testing.T) {
	ctx := context.Background()
	r := rules
	r.FinalizeDelay = 20 * time.Millisecond
	svc, gdb, _ := newService(t, r)
	_, err := svc.Register(ctx, 1, "u", "User", "")
	require.NoError(t, err)

	var calls atomic.Int32
	svc.OnFinalize = func(registration.Finalized) { calls.Add(1) }

	_, err = svc.AddPhoto(ctx, 1, "a")
	require.NoError(t, err)
	svc.Cancel(1)
	svc.Cancel(1)

	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, calls.Load())
	assert.False(t, load(t, gdb, 1).Registered)
}

func TestReplacePhotos(t *testing.T) {
	ctx := context.Background()
	svc, gdb, _ := newService(t, rules)
	_, err := svc.Register(ctx, 1, "u", "User", "")
	require.NoError(t, err)

	require.NoError(t, svc.ReplacePhotos(ctx, 1, []string{"x", "x", " ", "y"}))
	assert.Equal(t, []string{"x", "y"}, load(t, gdb, 1).PhotoRefs())

	err = svc.ReplacePhotos(ctx, 1, []string{"1", "2", "3", "4"})
	assert.ErrorIs(t, err, registration.ErrTooManyPhotos)
}

func TestAddPhotoUnknownProfile(t *testing.T) {
	svc, _, _ := newService(t, rules)

	_, err := svc.AddPhoto(context.Background(), 9, "a")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func stateOf(e *session.Engine, userID int64) session.State {
	s, _ := e.Snapshot(userID)
	return s.State
}
