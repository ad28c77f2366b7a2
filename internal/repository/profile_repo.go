package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/matchbot/internal/db"
)

// ProfileUpdate is a typed partial update. Only non-nil fields are written,
// and only the columns enumerated here can ever be touched.
type ProfileUpdate struct {
	FirstName *string
	Phone     *string
	Age       *int
	Gender    *string
	Religion  *string
	City      *string
	Latitude  *float64
	Longitude *float64
	Bio       *string
	Language  *string
	Active    *bool
}

// IsEmpty reports whether the update carries no fields.
func (u ProfileUpdate) IsEmpty() bool { return len(u.columns()) == 0 }

func (u ProfileUpdate) columns() map[string]any {
	cols := map[string]any{}
	if u.FirstName != nil {
		cols["first_name"] = *u.FirstName
	}
	if u.Phone != nil {
		cols["phone"] = *u.Phone
	}
	if u.Age != nil {
		cols["age"] = *u.Age
	}
	if u.Gender != nil {
		cols["gender"] = *u.Gender
	}
	if u.Religion != nil {
		cols["religion"] = *u.Religion
	}
	if u.City != nil {
		cols["city"] = *u.City
	}
	if u.Latitude != nil {
		cols["latitude"] = *u.Latitude
	}
	if u.Longitude != nil {
		cols["longitude"] = *u.Longitude
	}
	if u.Bio != nil {
		cols["bio"] = *u.Bio
	}
	if u.Language != nil {
		cols["language"] = *u.Language
	}
	if u.Active != nil {
		cols["active"] = *u.Active
	}
	return cols
}

// ProfileRepository provides CRUD for profiles and their photos.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new repository bound to the given DB connection.
func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

// Create inserts a profile on first contact. An existing profile is left
// untouched and created is false.
func (r *ProfileRepository) Create(ctx context.Context, p db.Profile) (created bool, err error) {
	p.Photos = nil
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&p)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Get loads a profile with its photos in display order.
func (r *ProfileRepository) Get(ctx context.Context, id int64) (db.Profile, error) {
	var p db.Profile
	err := r.db.WithContext(ctx).
		Preload("Photos", orderedPhotos).
		First(&p, "id = ?", id).Error
	if err != nil {
		return db.Profile{}, notFound(err)
	}
	return p, nil
}

// Update applies a typed partial update.
func (r *ProfileRepository) Update(ctx context.Context, id int64, u ProfileUpdate) error {
	cols := u.columns()
	if len(cols) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&db.Profile{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	return r.requireAffected(ctx, id, res.RowsAffected)
}

// MarkRegistered flags the wizard as finished.
func (r *ProfileRepository) MarkRegistered(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&db.Profile{}).Where("id = ?", id).Update("registered", true)
	if res.Error != nil {
		return res.Error
	}
	return r.requireAffected(ctx, id, res.RowsAffected)
}

// Exists reports whether a profile with the given id is stored.
func (r *ProfileRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db.Profile{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// requireAffected turns a zero-row update into ErrNotFound. MySQL reports
// unchanged rows as unaffected, so zero rows only means missing after a lookup.
func (r *ProfileRepository) requireAffected(ctx context.Context, id int64, affected int64) error {
	if affected > 0 {
		return nil
	}
	ok, err := r.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// SetPhotos replaces the ordered photo list of a profile.
func (r *ProfileRepository) SetPhotos(ctx context.Context, id int64, refs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db.Profile{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		if err := tx.Where("profile_id = ?", id).Delete(&db.Photo{}).Error; err != nil {
			return fmt.Errorf("clear photos: %w", err)
		}
		if len(refs) == 0 {
			return nil
		}
		photos := make([]db.Photo, 0, len(refs))
		for i, ref := range refs {
			photos = append(photos, db.Photo{ProfileID: id, Position: i, Ref: ref})
		}
		return tx.Create(&photos).Error
	})
}

// Delete hard-deletes a profile and every relation that references it.
// Children are removed explicitly so the cascade does not depend on the
// driver enforcing foreign keys.
func (r *ProfileRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			model any
			where string
			args  []any
		}{
			{&db.Like{}, "liker_id = ? OR liked_id = ?", []any{id, id}},
			{&db.Block{}, "blocker_id = ? OR blocked_id = ?", []any{id, id}},
			{&db.Message{}, "sender_id = ? OR recipient_id = ?", []any{id, id}},
			{&db.Payment{}, "user_id = ?", []any{id}},
			{&db.Complaint{}, "user_id = ? OR reported_user_id = ?", []any{id, id}},
			{&db.Photo{}, "profile_id = ?", []any{id}},
		}
		for _, s := range steps {
			if err := tx.Where(s.where, s.args...).Delete(s.model).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&db.Profile{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func orderedPhotos(tx *gorm.DB) *gorm.DB {
	return tx.Order("position ASC")
}
