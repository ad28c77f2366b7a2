package coordinator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/matchbot/internal/coordinator"
	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/db/dbtest"
	"github.com/oggyb/matchbot/internal/ledger"
	"github.com/oggyb/matchbot/internal/repository"
	"github.com/oggyb/matchbot/internal/session"
)

func TestBrowseRequiresEligibleProfile(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	_, err := h.c.Browse(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	p := dbtest.Profile(1, db.GenderMale)
	p.Bio = ""
	dbtest.Insert(t, h.db, p)
	_, err = h.c.Browse(ctx, 1)
	assert.ErrorIs(t, err, coordinator.ErrIncompleteProfile)
}

func TestBrowseWithEmptyPool(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.add(t, 1, db.GenderMale, 0)
	h.add(t, 2, db.GenderMale, 0)

	_, err := h.c.Browse(ctx, 1)
	assert.ErrorIs(t, err, session.ErrNoCandidates)
	assert.Equal(t, session.StateNone, stateOf(h.sessions, 1))
}

func TestBrowseCandidatesRespectSelection(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.add(t, 1, db.GenderMale, 0)
	h.add(t, 2, db.GenderMale, 0)
	for _, id := range []int64{10, 11, 12, 13} {
		h.add(t, id, db.GenderFemale, 0)
	}
	dbtest.Block(t, h.db, [2]int64{1, 12})
	dbtest.Like(t, h.db, [2]int64{1, 13})

	res, err := h.c.Browse(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.Candidate.ID)
	assert.Equal(t, 1, res.Remaining)

	s, ok := h.sessions.Snapshot(1)
	require.True(t, ok)
	for _, p := range s.Candidates {
		assert.NotEqual(t, int64(1), p.ID)
		assert.Equal(t, db.GenderFemale, p.Gender)
		assert.NotContains(t, []int64{12, 13}, p.ID)
	}
}

// Pool [A,B,C]: like A, skip B, skip C. The refetch must drop A and may
// bring back B and C.
func TestLikeSkipExhaustRefetch(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.add(t, 1, db.GenderMale, 0)
	const a, b, c = 10, 11, 12
	for _, id := range []int64{a, b, c} {
		h.add(t, id, db.GenderFemale, 0)
	}

	res, err := h.c.Browse(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(a), res.Candidate.ID)

	liked, err := h.c.Like(ctx, 1, a)
	require.NoError(t, err)
	assert.False(t, liked.AlreadyLiked)
	require.NotNil(t, liked.Next)
	assert.Equal(t, int64(b), liked.Next.ID)

	step, err := h.c.Skip(ctx, 1, b)
	require.NoError(t, err)
	require.NotNil(t, step.Next)
	assert.Equal(t, int64(c), step.Next.ID)

	step, err = h.c.Skip(ctx, 1, c)
	require.NoError(t, err)
	assert.True(t, step.Refetched)
	require.NotNil(t, step.Next)
	assert.Equal(t, int64(b), step.Next.ID)

	s, ok := h.sessions.Snapshot(1)
	require.True(t, ok)
	assert.ElementsMatch(t, []int64{b, c}, []int64{s.Candidates[0].ID, s.Candidates[1].ID})
	assert.Len(t, s.Candidates, 2)
}

func TestLikeOnLastCandidateDepletes(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.add(t, 1, db.GenderMale, 0)
	h.add(t, 10, db.GenderFemale, 0)

	_, err := h.c.Browse(ctx, 1)
	require.NoError(t, err)

	res, err := h.c.Like(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, res.Depleted)
	assert.Nil(t, res.Next)
	assert.Equal(t, session.StateDepleted, stateOf(h.sessions, 1))
}

func TestLikeIsIdempotentAndReportsMutual(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.add(t, 1, db.GenderMale, 0)
	h.add(t, 2, db.GenderFemale, 0)

	res, err := h.c.Like(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, res.Mutual)
	assert.Nil(t, res.Next, "no session, no advance")

	res, err = h.c.Like(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, res.Mutual)
	assert.False(t, res.AlreadyLiked)

	res, err = h.c.Like(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, res.AlreadyLiked)

	assert.Equal(t, []string{coordinator.KindLike, coordinator.KindMatch}, h.transport.kinds(1))
	assert.Equal(t, []string{coordinator.KindMatch}, h.transport.kinds(2))

	_, err = h.c.Like(ctx, 1, 1)
	assert.ErrorIs(t, err, coordinator.ErrSelfAction)
	_, err = h.c.Like(ctx, 1, 404)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLikeAcrossBlockIsSilent(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.add(t, 1, db.GenderMale, 0)
	h.add(t, 2, db.GenderFemale, 0)
	h.add(t, 3, db.GenderFemale, 0)

	_, err := h.c.Browse(ctx, 1)
	require.NoError(t, err)
	dbtest.Block(t, h.db, [2]int64{2, 1})

	res, err := h.c.Like(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, res.Blocked)
	assert.False(t, res.Mutual)
	require.NotNil(t, res.Next)
	assert.Equal(t, int64(3), res.Next.ID)

	assert.Empty(t, h.transport.kinds(2))
	assert.Empty(t, h.transport.kinds(1))
	var edges int64
	require.NoError(t, h.db.Model(&db.Like{}).Count(&edges).Error)
	assert.Zero(t, edges)
}

func TestActionsOnVanishedCandidate(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.add(t, 1, db.GenderMale, 0)
	h.add(t, 2, db.GenderFemale, 0)
	h.add(t, 3, db.GenderFemale, 0)

	res, err := h.c.Browse(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Candidate.ID)
	_, err = repository.NewProfileRepository(h.db).Delete(ctx, 2)
	require.NoError(t, err)

	blocked, err := h.c.Block(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, blocked.Unavailable)

	liked, err := h.c.Like(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, liked.Unavailable)
	require.NotNil(t, liked.Next)
	assert.Equal(t, int64(3), liked.Next.ID)
	assert.Empty(t, h.transport.kinds(2))

	// outside the session a missing target is still an error
	_, err = h.c.Like(ctx, 1, 2)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = h.c.Block(ctx, 1, 2)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBlockDoesNotAdvanceAndHidesMatch(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.add(t, 1, db.GenderMale, 0)
	h.add(t, 2, db.GenderFemale, 0)
	h.add(t, 3, db.GenderFemale, 0)
	dbtest.Like(t, h.db, [2]int64{1, 2}, [2]int64{2, 1})

	res, err := h.c.Browse(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(3), res.Candidate.ID)

	blocked, err := h.c.Block(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, blocked.AlreadyBlocked)
	blocked, err = h.c.Block(ctx, 2, 1)
	require.NoError(t, err)
	assert.True(t, blocked.AlreadyBlocked)

	cur, err := h.sessions.Current(1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cur.ID)

	matches, err := h.c.Matches(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, matches)

	var edges int64
	require.NoError(t, h.db.Model(&db.Like{}).Count(&edges).Error)
	assert.Equal(t, int64(2), edges)
}

func TestSkipOutsideSessionIsNoop(t *testing.T) {
	h := newHarness(t)

	step, err := h.c.Skip(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Nil(t, step.Next)
}

func TestCountsAreCachedAndInvalidated(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.add(t, 1, db.GenderMale, 0)
	h.add(t, 2, db.GenderFemale, 0)
	h.add(t, 3, db.GenderFemale, 0)
	dbtest.Like(t, h.db, [2]int64{2, 1})

	counts, err := h.c.Counts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, coordinator.Counts{LikesReceived: 1}, counts)
	v, err := h.redis.Get("likes:count:1")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	// raw insert bypasses invalidation: the cached value is served
	dbtest.Like(t, h.db, [2]int64{3, 1})
	counts, err = h.c.Counts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.LikesReceived)

	// a like through the coordinator invalidates both sides
	_, err = h.c.Like(ctx, 1, 2)
	require.NoError(t, err)
	counts, err = h.c.Counts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, coordinator.Counts{LikesReceived: 2, Matches: 1}, counts)
}

func TestCountsWithoutCache(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, func(d *coordinator.Deps) { d.Counters = nil })
	h.add(t, 1, db.GenderMale, 0)
	h.add(t, 2, db.GenderFemale, 0)
	dbtest.Like(t, h.db, [2]int64{2, 1})

	counts, err := h.c.Counts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.LikesReceived)
}

func TestDeleteAccountCancelsSession(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.add(t, 1, db.GenderMale, 0)
	h.add(t, 2, db.GenderFemale, 0)

	_, err := h.c.Browse(ctx, 1)
	require.NoError(t, err)

	deleted, err := h.c.DeleteAccount(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, session.StateNone, stateOf(h.sessions, 1))

	deleted, err = h.c.DeleteAccount(ctx, 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteAccountInvalidatesCounterparts(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.add(t, 1, db.GenderMale, 0)
	h.add(t, 2, db.GenderFemale, 0)
	dbtest.Like(t, h.db, [2]int64{1, 2}, [2]int64{2, 1})

	counts, err := h.c.Counts(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, coordinator.Counts{LikesReceived: 1, Matches: 1}, counts)

	deleted, err := h.c.DeleteAccount(ctx, 1)
	require.NoError(t, err)
	require.True(t, deleted)

	counts, err = h.c.Counts(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, coordinator.Counts{}, counts)
}

func TestFileComplaint(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.add(t, 1, db.GenderMale, 0)
	other := int64(2)

	_, err := h.c.FileComplaint(ctx, coordinator.ComplaintRequest{UserID: 1, Type: "spam", Text: "short"})
	assert.ErrorIs(t, err, coordinator.ErrInvalidComplaint)
	_, err = h.c.FileComplaint(ctx, coordinator.ComplaintRequest{UserID: 1, Type: "weird", Text: "this is long enough"})
	assert.ErrorIs(t, err, coordinator.ErrInvalidComplaint)

	c, err := h.c.FileComplaint(ctx, coordinator.ComplaintRequest{
		UserID: 1, ReportedUserID: &other, Type: "spam", Text: "  keeps sending links  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "keeps sending links", c.Text)
	assert.Equal(t, []string{coordinator.KindComplaint}, h.transport.kinds(testSettings.AdminID))
}

func TestCandidateSourceUnknownUser(t *testing.T) {
	gdb := dbtest.Open(t)
	src := coordinator.CandidateSource(repository.NewProfileRepository(gdb), repository.NewRelationshipRepository(gdb))

	_, err := src.Candidates(context.Background(), 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAdminCredit(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.add(t, 1, db.GenderMale, 3)

	b, err := h.c.AdminCredit(ctx, 1, 7, "contest prize")
	require.NoError(t, err)
	assert.Equal(t, int64(10), b)
	assert.Equal(t, []string{coordinator.KindPayment}, h.transport.kinds(1))

	_, err = h.c.AdminCredit(ctx, 2, 7, "")
	assert.ErrorIs(t, err, ledger.ErrUserNotFound)
	_, err = h.c.AdminCredit(ctx, 1, 0, "")
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	assert.Len(t, h.transport.kinds(1), 1)
}
