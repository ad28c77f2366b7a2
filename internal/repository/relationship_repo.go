package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/utils/pagination"
)

// notBlockedSQL excludes a pair when a block exists in either direction
// between the asking user (bound twice) and the profile column.
const notBlockedSQL = `
	NOT EXISTS (
		SELECT 1 FROM blocks b
		WHERE (b.blocker_id = ? AND b.blocked_id = %[1]s)
		   OR (b.blocker_id = %[1]s AND b.blocked_id = ?)
	)`

func notBlocked(column string) string {
	return fmt.Sprintf(notBlockedSQL, column)
}

// Liker is a profile that liked the asking user, with the time of the like.
type Liker struct {
	Profile db.Profile
	LikedAt time.Time
}

// RelationshipRepository owns like/block edges and the read views derived
// from them: candidate matching, who-liked-me, mutual matches and counts.
type RelationshipRepository struct {
	db *gorm.DB
}

// NewRelationshipRepository creates a new repository bound to the given DB connection.
func NewRelationshipRepository(database *gorm.DB) *RelationshipRepository {
	return &RelationshipRepository{db: database}
}

// AddLike writes the edge liker -> liked.
//
// Behavior:
//   - Returns true when the edge was created.
//   - Returns false, nil when the edge already existed (benign duplicate).
//
// Example:
//
//	repo.AddLike(ctx, 1, 2) // user 1 liked user 2
func (r *RelationshipRepository) AddLike(ctx context.Context, likerID, likedID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&db.Like{LikerID: likerID, LikedID: likedID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AddBlock writes the edge blocker -> blocked with the same idempotent
// semantics as AddLike. Existing likes are not touched.
func (r *RelationshipRepository) AddBlock(ctx context.Context, blockerID, blockedID int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&db.Block{BlockerID: blockerID, BlockedID: blockedID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// HasLiked checks whether liker has liked liked.
func (r *RelationshipRepository) HasLiked(ctx context.Context, likerID, likedID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("liker_id = ? AND liked_id = ?", likerID, likedID).
		Count(&count).Error
	return count > 0, err
}

// Blocked reports whether a block exists between a and b in either direction.
func (r *RelationshipRepository) Blocked(ctx context.Context, a, b int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Block{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, err
}

// Counterparts returns every user on the other end of a like edge with
// userID, in either direction.
func (r *RelationshipRepository) Counterparts(ctx context.Context, userID int64) ([]int64, error) {
	var liked, likers []int64
	if err := r.db.WithContext(ctx).Model(&db.Like{}).Where("liker_id = ?", userID).Pluck("liked_id", &liked).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&db.Like{}).Where("liked_id = ?", userID).Pluck("liker_id", &likers).Error; err != nil {
		return nil, err
	}
	seen := make(map[int64]bool, len(liked)+len(likers))
	out := make([]int64, 0, len(liked)+len(likers))
	for _, id := range append(liked, likers...) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out, nil
}

// OppositeGender returns the gender discovery matches against.
func OppositeGender(gender string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case db.GenderMale:
		return db.GenderFemale, nil
	case db.GenderFemale:
		return db.GenderMale, nil
	default:
		return "", ErrNoGender
	}
}

// Candidates runs the candidate-matching query for userID.
//
// Behavior:
//   - gender = opposite(gender), id <> userID, active.
//   - At least one photo and a non-empty bio.
//   - Excludes profiles blocked in either direction.
//   - Excludes profiles userID already liked. Skips leave no trace, so
//     skipped profiles come back on the next fetch.
//   - No ordering is promised; callers shuffle.
func (r *RelationshipRepository) Candidates(ctx context.Context, userID int64, gender string) ([]db.Profile, error) {
	opposite, err := OppositeGender(gender)
	if err != nil {
		return nil, err
	}

	var profiles []db.Profile
	err = r.db.WithContext(ctx).
		Preload("Photos", orderedPhotos).
		Where("profiles.gender = ?", opposite).
		Where("profiles.id <> ?", userID).
		Where("profiles.active = ?", true).
		Where("profiles.bio IS NOT NULL AND profiles.bio <> ''").
		Where("EXISTS (SELECT 1 FROM photos ph WHERE ph.profile_id = profiles.id)").
		Where(notBlocked("profiles.id"), userID, userID).
		Where("NOT EXISTS (SELECT 1 FROM likes l WHERE l.liker_id = ? AND l.liked_id = profiles.id)", userID).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// likerEdges is the shared filter behind the who-liked-me views: likes
// received by userID from active profiles with no block between the pair.
func (r *RelationshipRepository) likerEdges(ctx context.Context, userID int64) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("likes l").
		Joins("JOIN profiles p ON p.id = l.liker_id").
		Where("l.liked_id = ? AND p.active = ?", userID, true).
		Where(notBlocked("l.liker_id"), userID, userID)
}

// Likers returns every profile that liked userID, newest first.
func (r *RelationshipRepository) Likers(ctx context.Context, userID int64) ([]Liker, error) {
	var edges []db.Like
	err := r.likerEdges(ctx, userID).
		Select("l.liker_id, l.liked_id, l.created_at").
		Order("l.created_at DESC, l.liker_id DESC").
		Find(&edges).Error
	if err != nil {
		return nil, err
	}
	return r.attachLikers(ctx, edges)
}

// LikersPage returns one page of Likers using a cursor token.
//
// Behavior:
//   - Ordered by like time DESC, liker id DESC.
//   - Returns a next token only when more rows exist.
//
// Example:
//
//	repo.LikersPage(ctx, 42, nil, 5) // first 5 people who liked user 42
func (r *RelationshipRepository) LikersPage(
	ctx context.Context,
	userID int64,
	paginationToken *string,
	limit int,
) ([]Liker, *string, error) {
	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.likerEdges(ctx, userID).
		Select("l.liker_id, l.liked_id, l.created_at").
		Order("l.created_at DESC, l.liker_id DESC").
		Limit(limit + 1)

	if !cursor.IsZero() {
		ts := time.UnixMilli(cursor.CreatedUnix).UTC()
		query = query.Where(
			"(l.created_at < ? OR (l.created_at = ? AND l.liker_id < ?))",
			ts, ts, cursor.ProfileID,
		)
	}

	var edges []db.Like
	if err := query.Find(&edges).Error; err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(edges) > limit {
		last := edges[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			ProfileID:   last.LikerID,
			CreatedUnix: last.CreatedAt.UnixMilli(),
		})
		nextToken = &token
		edges = edges[:limit]
	}

	likers, err := r.attachLikers(ctx, edges)
	if err != nil {
		return nil, nil, err
	}
	return likers, nextToken, nil
}

// CountLikesReceived counts likes userID received, with the same filtering
// as Likers.
func (r *RelationshipRepository) CountLikesReceived(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := r.likerEdges(ctx, userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RelationshipRepository) mutualQuery(ctx context.Context, userID int64) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&db.Profile{}).
		Joins("JOIN likes theirs ON theirs.liker_id = profiles.id AND theirs.liked_id = ?", userID).
		Joins("JOIN likes mine ON mine.liker_id = ? AND mine.liked_id = profiles.id", userID).
		Where("profiles.active = ?", true).
		Where(notBlocked("profiles.id"), userID, userID)
}

// MutualMatches returns profiles P with Like(userID→P) and Like(P→userID),
// hiding inactive profiles and blocked pairs. The like edges themselves are
// never removed by a block.
func (r *RelationshipRepository) MutualMatches(ctx context.Context, userID int64) ([]db.Profile, error) {
	var profiles []db.Profile
	err := r.mutualQuery(ctx, userID).
		Preload("Photos", orderedPhotos).
		Order("theirs.created_at DESC, profiles.id DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// CountMatches counts MutualMatches for userID.
func (r *RelationshipRepository) CountMatches(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := r.mutualQuery(ctx, userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// attachLikers loads liker profiles for edges, keeping edge order.
func (r *RelationshipRepository) attachLikers(ctx context.Context, edges []db.Like) ([]Liker, error) {
	if len(edges) == 0 {
		return []Liker{}, nil
	}
	ids := make([]int64, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.LikerID)
	}

	var profiles []db.Profile
	err := r.db.WithContext(ctx).
		Preload("Photos", orderedPhotos).
		Where("id IN ?", ids).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]db.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	likers := make([]Liker, 0, len(edges))
	for _, e := range edges {
		p, ok := byID[e.LikerID]
		if !ok {
			continue // deleted between the two queries
		}
		likers = append(likers, Liker{Profile: p, LikedAt: e.CreatedAt})
	}
	return likers, nil
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
