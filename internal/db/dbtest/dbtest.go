// Package dbtest opens isolated in-memory SQLite databases for tests.
package dbtest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/oggyb/matchbot/internal/db"
)

// Open returns a migrated in-memory database private to t.
//
// A single connection is used so concurrent test goroutines serialize on the
// driver instead of tripping SQLite's shared-cache table locks.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return gdb
}

// Profile builds a discoverable profile with one photo.
func Profile(id int64, gender string) db.Profile {
	return db.Profile{
		ID:        id,
		FirstName: fmt.Sprintf("user%d", id),
		Language:  "english",
		Age:       25,
		Gender:    gender,
		Bio:       "hello",
		Active:    true,
		Photos:    []db.Photo{{Position: 0, Ref: fmt.Sprintf("photo-%d", id)}},
	}
}

// Insert stores profiles with their photos.
func Insert(t *testing.T, gdb *gorm.DB, profiles ...db.Profile) {
	t.Helper()
	for i := range profiles {
		if err := gdb.Create(&profiles[i]).Error; err != nil {
			t.Fatalf("failed to insert profile %d: %v", profiles[i].ID, err)
		}
	}
}

// Like inserts raw like edges liker -> liked.
func Like(t *testing.T, gdb *gorm.DB, pairs ...[2]int64) {
	t.Helper()
	for _, p := range pairs {
		err := gdb.Omit(clause.Associations).Create(&db.Like{LikerID: p[0], LikedID: p[1]}).Error
		if err != nil {
			t.Fatalf("failed to insert like %v: %v", p, err)
		}
	}
}

// Block inserts raw block edges blocker -> blocked.
func Block(t *testing.T, gdb *gorm.DB, pairs ...[2]int64) {
	t.Helper()
	for _, p := range pairs {
		err := gdb.Omit(clause.Associations).Create(&db.Block{BlockerID: p[0], BlockedID: p[1]}).Error
		if err != nil {
			t.Fatalf("failed to insert block %v: %v", p, err)
		}
	}
}
