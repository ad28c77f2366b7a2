package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/db/dbtest"
	"github.com/oggyb/matchbot/internal/repository"
)

func ptr[T any](v T) *T { return &v }

func TestProfileCreateIsInsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProfileRepository(dbtest.Open(t))

	created, err := repo.Create(ctx, db.Profile{ID: 7, Username: "first"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Create(ctx, db.Profile{ID: 7, Username: "second"})
	require.NoError(t, err)
	assert.False(t, created)

	p, err := repo.Get(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "first", p.Username)
	assert.Equal(t, "english", p.Language)
	assert.True(t, p.Active)
}

func TestProfileGetMissing(t *testing.T) {
	repo := repository.NewProfileRepository(dbtest.Open(t))

	_, err := repo.Get(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProfileUpdateWritesOnlyMaskedFields(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t)
	dbtest.Insert(t, gdb, dbtest.Profile(1, db.GenderMale))
	repo := repository.NewProfileRepository(gdb)

	err := repo.Update(ctx, 1, repository.ProfileUpdate{
		Age:  ptr(31),
		City: ptr("Addis Ababa"),
	})
	require.NoError(t, err)

	p, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 31, p.Age)
	assert.Equal(t, "Addis Ababa", p.City)
	assert.Equal(t, "hello", p.Bio, "unmasked field untouched")

	// same values again: unchanged rows are still a success
	require.NoError(t, repo.Update(ctx, 1, repository.ProfileUpdate{Age: ptr(31)}))

	err = repo.Update(ctx, 99, repository.ProfileUpdate{Age: ptr(20)})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.True(t, repository.ProfileUpdate{}.IsEmpty())
	require.NoError(t, repo.Update(ctx, 99, repository.ProfileUpdate{}))
}

func TestProfileSetPhotosReplacesInOrder(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t)
	dbtest.Insert(t, gdb, dbtest.Profile(1, db.GenderFemale))
	repo := repository.NewProfileRepository(gdb)

	require.NoError(t, repo.SetPhotos(ctx, 1, []string{"c", "a", "b"}))

	p, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, p.PhotoRefs())

	assert.ErrorIs(t, repo.SetPhotos(ctx, 2, []string{"x"}), repository.ErrNotFound)
}

func TestProfileDeleteCascades(t *testing.T) {
	ctx := context.Background()
	gdb := dbtest.Open(t)
	dbtest.Insert(t, gdb, dbtest.Profile(1, db.GenderMale), dbtest.Profile(2, db.GenderFemale))
	dbtest.Like(t, gdb, [2]int64{1, 2}, [2]int64{2, 1})
	dbtest.Block(t, gdb, [2]int64{2, 1})
	_, err := repository.NewMessageRepository(gdb).Append(ctx, db.Message{SenderID: 1, RecipientID: 2, Content: "hi"})
	require.NoError(t, err)
	_, err = repository.NewPaymentRepository(gdb).Create(ctx, db.Payment{UserID: 1, PackageName: "p", Coins: 100, PriceCents: 499})
	require.NoError(t, err)

	repo := repository.NewProfileRepository(gdb)
	deleted, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	for _, model := range []any{&db.Like{}, &db.Block{}, &db.Message{}, &db.Payment{}} {
		var count int64
		require.NoError(t, gdb.Model(model).Count(&count).Error)
		assert.Zero(t, count, "%T rows left", model)
	}
	var photos int64
	require.NoError(t, gdb.Model(&db.Photo{}).Where("profile_id = ?", 1).Count(&photos).Error)
	assert.Zero(t, photos)

	ok, err := repo.Exists(ctx, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	deleted, err = repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}
