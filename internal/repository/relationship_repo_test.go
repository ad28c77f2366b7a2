package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/db/dbtest"
	"github.com/oggyb/matchbot/internal/repository"
)

func ids(profiles []db.Profile) []int64 {
	out := make([]int64, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.ID)
	}
	return out
}

func likerIDs(likers []repository.Liker) []int64 {
	out := make([]int64, 0, len(likers))
	for _, l := range likers {
		out = append(out, l.Profile.ID)
	}
	return out
}

// likeAt inserts a like with an explicit timestamp so ordering is deterministic.
func likeAt(t *testing.T, gdb *gorm.DB, liker, liked int64, at time.Time) {
	t.Helper()
	err := gdb.Omit(clause.Associations).Create(&db.Like{LikerID: liker, LikedID: liked, CreatedAt: at}).Error
	require.NoError(t, err)
}

func TestAddLikeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t)
	dbtest.Insert(t, gdb, dbtest.Profile(1, db.GenderMale), dbtest.Profile(2, db.GenderFemale))
	repo := repository.NewRelationshipRepository(gdb)

	created, err := repo.AddLike(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.AddLike(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, created)

	var count int64
	require.NoError(t, gdb.Model(&db.Like{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	liked, err := repo.HasLiked(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, liked)
	liked, err = repo.HasLiked(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestAddBlockIsIdempotentAndSymmetric(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t)
	dbtest.Insert(t, gdb, dbtest.Profile(1, db.GenderMale), dbtest.Profile(2, db.GenderFemale))
	repo := repository.NewRelationshipRepository(gdb)

	created, err := repo.AddBlock(ctx, 2, 1)
	require.NoError(t, err)
	assert.True(t, created)
	created, err = repo.AddBlock(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, created)

	blocked, err := repo.Blocked(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, blocked)
}

func TestCounterparts(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t)
	dbtest.Insert(t, gdb,
		dbtest.Profile(1, db.GenderMale),
		dbtest.Profile(2, db.GenderFemale),
		dbtest.Profile(3, db.GenderFemale),
		dbtest.Profile(4, db.GenderFemale),
	)
	dbtest.Like(t, gdb, [2]int64{1, 2}, [2]int64{2, 1}, [2]int64{3, 1}, [2]int64{4, 2})
	repo := repository.NewRelationshipRepository(gdb)

	others, err := repo.Counterparts(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{2, 3}, others)

	others, err = repo.Counterparts(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestCandidatesSelectionPredicate(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t)

	noBio := dbtest.Profile(14, db.GenderFemale)
	noBio.Bio = ""
	noPhoto := dbtest.Profile(15, db.GenderFemale)
	noPhoto.Photos = nil

	dbtest.Insert(t, gdb,
		dbtest.Profile(1, db.GenderMale),    // asking user
		dbtest.Profile(2, db.GenderMale),    // same gender
		dbtest.Profile(10, db.GenderFemale), // eligible
		dbtest.Profile(11, db.GenderFemale), // eligible
		dbtest.Profile(12, db.GenderFemale), // blocked by user
		dbtest.Profile(13, db.GenderFemale), // blocked the user
		noBio,
		noPhoto,
		dbtest.Profile(16, db.GenderFemale), // already liked
		dbtest.Profile(17, db.GenderFemale), // inactive
	)
	require.NoError(t, gdb.Model(&db.Profile{}).Where("id = ?", 17).Update("active", false).Error)
	dbtest.Block(t, gdb, [2]int64{1, 12}, [2]int64{13, 1})
	dbtest.Like(t, gdb, [2]int64{1, 16}, [2]int64{11, 1})

	repo := repository.NewRelationshipRepository(gdb)
	got, err := repo.Candidates(ctx, 1, db.GenderMale)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{10, 11}, ids(got))
	for _, p := range got {
		assert.True(t, p.Discoverable())
	}

	_, err = repo.Candidates(ctx, 1, "")
	assert.ErrorIs(t, err, repository.ErrNoGender)
}

func TestLikersFiltersBlocksAndInactive(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t)
	dbtest.Insert(t, gdb,
		dbtest.Profile(1, db.GenderFemale),
		dbtest.Profile(2, db.GenderMale),
		dbtest.Profile(3, db.GenderMale),
		dbtest.Profile(4, db.GenderMale),
		dbtest.Profile(5, db.GenderMale),
	)
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	likeAt(t, gdb, 2, 1, base)
	likeAt(t, gdb, 3, 1, base.Add(time.Minute))
	likeAt(t, gdb, 4, 1, base.Add(2*time.Minute))
	likeAt(t, gdb, 5, 1, base.Add(3*time.Minute))
	dbtest.Block(t, gdb, [2]int64{1, 4})
	require.NoError(t, gdb.Model(&db.Profile{}).Where("id = ?", 5).Update("active", false).Error)

	repo := repository.NewRelationshipRepository(gdb)
	likers, err := repo.Likers(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2}, likerIDs(likers))
	assert.True(t, likers[0].LikedAt.Equal(base.Add(time.Minute)))

	count, err := repo.CountLikesReceived(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestLikersPagination(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t)
	dbtest.Insert(t, gdb, dbtest.Profile(1, db.GenderFemale))
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := int64(2); i <= 6; i++ {
		dbtest.Insert(t, gdb, dbtest.Profile(i, db.GenderMale))
		likeAt(t, gdb, i, 1, base.Add(time.Duration(i)*time.Second))
	}
	repo := repository.NewRelationshipRepository(gdb)

	page, next, err := repo.LikersPage(ctx, 1, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{6, 5}, likerIDs(page))
	require.NotNil(t, next)

	page, next, err = repo.LikersPage(ctx, 1, next, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 3}, likerIDs(page))
	require.NotNil(t, next)

	page, next, err = repo.LikersPage(ctx, 1, next, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, likerIDs(page))
	assert.Nil(t, next)

	bad := "!!"
	_, _, err = repo.LikersPage(ctx, 1, &bad, 2)
	assert.Error(t, err)
}

func TestMutualMatchesAndBlockAfterwards(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t)
	dbtest.Insert(t, gdb, dbtest.Profile(1, db.GenderMale), dbtest.Profile(2, db.GenderFemale), dbtest.Profile(3, db.GenderFemale))
	repo := repository.NewRelationshipRepository(gdb)

	_, err := repo.AddLike(ctx, 1, 2)
	require.NoError(t, err)
	_, err = repo.AddLike(ctx, 1, 3)
	require.NoError(t, err)

	matches, err := repo.MutualMatches(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, matches)

	_, err = repo.AddLike(ctx, 2, 1)
	require.NoError(t, err)

	matches, err = repo.MutualMatches(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(matches))
	matches, err = repo.MutualMatches(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(matches))

	n, err := repo.CountMatches(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.AddBlock(ctx, 2, 1)
	require.NoError(t, err)

	for _, u := range []int64{1, 2} {
		matches, err = repo.MutualMatches(ctx, u)
		require.NoError(t, err)
		assert.Empty(t, matches)
	}

	var edges int64
	require.NoError(t, gdb.Model(&db.Like{}).Count(&edges).Error)
	assert.Equal(t, int64(3), edges, "block leaves like edges in place")
}

func TestOppositeGender(t *testing.T) {
	g, err := repository.OppositeGender(" Male ")
	require.NoError(t, err)
	assert.Equal(t, db.GenderFemale, g)

	g, err = repository.OppositeGender("female")
	require.NoError(t, err)
	assert.Equal(t, db.GenderMale, g)

	_, err = repository.OppositeGender("other")
	assert.ErrorIs(t, err, repository.ErrNoGender)
}
