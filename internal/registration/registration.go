// Package registration runs the profile wizard: typed field updates with
// validation, photo collection and the single finalize transition.
package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/oggyb/matchbot/internal/config"
	"github.com/oggyb/matchbot/internal/db"
	"github.com/oggyb/matchbot/internal/ledger"
	"github.com/oggyb/matchbot/internal/repository"
	"github.com/oggyb/matchbot/internal/session"
)

var (
	// ErrInvalidField wraps every field validation failure.
	ErrInvalidField = errors.New("invalid profile field")
	// ErrDuplicatePhoto is returned when the same photo is sent twice.
	ErrDuplicatePhoto = errors.New("duplicate photo")
	// ErrTooManyPhotos is returned past the photo limit.
	ErrTooManyPhotos = errors.New("too many photos")
	// ErrAlreadyRegistered is returned when collecting wizard photos for a
	// profile that already finished registration.
	ErrAlreadyRegistered = errors.New("already registered")
)

// Languages are the supported profile languages.
var Languages = []string{"english", "amharic", "oromo", "tigrinya"}

// Religions are offered as choices; any other short answer is accepted.
var Religions = []string{"Muslim", "Orthodox", "Protestant", "Jewish", "Hindu", "Buddhist"}

const (
	minNameLen     = 2
	maxNameLen     = 64
	maxBioLen      = 1000
	maxReligionLen = 64
	maxPhoneLen    = 32
)

// Rules are the wizard limits.
type Rules struct {
	MinAge        int
	MaxAge        int
	MinPhotos     int
	MaxPhotos     int
	FinalizeDelay time.Duration
	Bonus         int64
}

// RulesFromConfig extracts Rules from the app config.
func RulesFromConfig(cfg *config.Config) Rules {
	return Rules{
		MinAge:        cfg.Registration.MinAge,
		MaxAge:        cfg.Registration.MaxAge,
		MinPhotos:     cfg.Registration.MinPhotos,
		MaxPhotos:     cfg.Registration.MaxPhotos,
		FinalizeDelay: cfg.Registration.FinalizeDelay,
		Bonus:         cfg.Coins.RegistrationBonus,
	}
}

// Finalized describes a completed registration.
type Finalized struct {
	UserID       int64
	Photos       []string
	BonusGranted bool
	// ByTimer is set when the delayed finalize fired rather than a user action.
	ByTimer bool
}

// pending is one user's in-progress photo collection.
type pending struct {
	photos []string
	timer  *time.Timer
	// done is the authoritative finalize guard; it flips once, under Service.mu.
	done bool
}

// Service runs registrations.
type Service struct {
	profiles *repository.ProfileRepository
	ledger   *ledger.Ledger
	sessions *session.Engine
	rules    Rules
	log      *slog.Logger

	// OnFinalize, when set, is called after every successful finalize.
	OnFinalize func(Finalized)

	mu      sync.Mutex
	pending map[int64]*pending
}

// New creates a registration Service.
func New(
	profiles *repository.ProfileRepository,
	l *ledger.Ledger,
	sessions *session.Engine,
	rules Rules,
	log *slog.Logger,
) *Service {
	if rules.MinPhotos <= 0 {
		rules.MinPhotos = 1
	}
	if rules.MaxPhotos < rules.MinPhotos {
		rules.MaxPhotos = rules.MinPhotos
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		profiles: profiles,
		ledger:   l,
		sessions: sessions,
		rules:    rules,
		log:      log,
		pending:  make(map[int64]*pending),
	}
}

// Register creates the profile on first contact. created is false for a
// returning user.
func (s *Service) Register(ctx context.Context, id int64, username, firstName, lastName string) (bool, error) {
	created, err := s.profiles.Create(ctx, db.Profile{
		ID:        id,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return false, fmt.Errorf("create profile %d: %w", id, err)
	}
	if created {
		s.log.Info("profile created", "user", id, "username", username)
	}
	return created, nil
}

// Validate checks every set field of u against the rules and normalizes
// gender and language to lower case.
func (s *Service) Validate(u *repository.ProfileUpdate) error {
	if u.FirstName != nil {
		name := strings.TrimSpace(*u.FirstName)
		if n := utf8.RuneCountInString(name); n < minNameLen || n > maxNameLen {
			return fmt.Errorf("%w: name must be %d-%d characters", ErrInvalidField, minNameLen, maxNameLen)
		}
		u.FirstName = &name
	}
	if u.Age != nil && (*u.Age < s.rules.MinAge || *u.Age > s.rules.MaxAge) {
		return fmt.Errorf("%w: age must be between %d and %d", ErrInvalidField, s.rules.MinAge, s.rules.MaxAge)
	}
	if u.Gender != nil {
		g := strings.ToLower(strings.TrimSpace(*u.Gender))
		if g != db.GenderMale && g != db.GenderFemale {
			return fmt.Errorf("%w: gender must be male or female", ErrInvalidField)
		}
		u.Gender = &g
	}
	if u.Language != nil {
		l := strings.ToLower(strings.TrimSpace(*u.Language))
		if !slices.Contains(Languages, l) {
			return fmt.Errorf("%w: unsupported language %q", ErrInvalidField, *u.Language)
		}
		u.Language = &l
	}
	if u.Religion != nil {
		r := strings.TrimSpace(*u.Religion)
		if r == "" || utf8.RuneCountInString(r) > maxReligionLen {
			return fmt.Errorf("%w: religion must be 1-%d characters", ErrInvalidField, maxReligionLen)
		}
		u.Religion = &r
	}
	if u.Phone != nil {
		phone := strings.TrimSpace(*u.Phone)
		if phone == "" || len(phone) > maxPhoneLen || strings.Trim(phone, "+0123456789 -()") != "" {
			return fmt.Errorf("%w: invalid phone number", ErrInvalidField)
		}
		u.Phone = &phone
	}
	if u.Latitude != nil && (*u.Latitude < -90 || *u.Latitude > 90) {
		return fmt.Errorf("%w: latitude out of range", ErrInvalidField)
	}
	if u.Longitude != nil && (*u.Longitude < -180 || *u.Longitude > 180) {
		return fmt.Errorf("%w: longitude out of range", ErrInvalidField)
	}
	if u.Bio != nil {
		bio := strings.TrimSpace(*u.Bio)
		if utf8.RuneCountInString(bio) > maxBioLen {
			return fmt.Errorf("%w: bio longer than %d characters", ErrInvalidField, maxBioLen)
		}
		u.Bio = &bio
	}
	return nil
}

// UpdateProfile validates and applies a typed partial update.
func (s *Service) UpdateProfile(ctx context.Context, id int64, u repository.ProfileUpdate) error {
	if err := s.Validate(&u); err != nil {
		return err
	}
	if err := s.profiles.Update(ctx, id, u); err != nil {
		return fmt.Errorf("update profile %d: %w", id, err)
	}
	return nil
}

// ReplacePhotos swaps the photo list of a registered profile.
func (s *Service) ReplacePhotos(ctx context.Context, id int64, refs []string) error {
	clean := make([]string, 0, len(refs))
	for _, r := range refs {
		if r = strings.TrimSpace(r); r != "" && !slices.Contains(clean, r) {
			clean = append(clean, r)
		}
	}
	if len(clean) > s.rules.MaxPhotos {
		return fmt.Errorf("%w: at most %d", ErrTooManyPhotos, s.rules.MaxPhotos)
	}
	return s.profiles.SetPhotos(ctx, id, clean)
}

// PhotoResult reports the state of the collection after AddPhoto.
type PhotoResult struct {
	Count     int
	Finalized bool
}

// AddPhoto collects one wizard photo.
//
// Behavior:
//   - The first photo schedules a delayed finalize (FinalizeDelay).
//   - Reaching MinPhotos finalizes right away and cancels the timer.
//   - Duplicates return ErrDuplicatePhoto and change nothing.
func (s *Service) AddPhoto(ctx context.Context, userID int64, ref string) (PhotoResult, error) {
	s.mu.Lock()
	p, ok := s.pending[userID]
	s.mu.Unlock()

	if !ok {
		prof, err := s.profiles.Get(ctx, userID)
		if err != nil {
			return PhotoResult{}, fmt.Errorf("profile %d: %w", userID, err)
		}
		if prof.Registered {
			return PhotoResult{}, ErrAlreadyRegistered
		}
	}

	s.mu.Lock()
	p, ok = s.pending[userID]
	if ok && p.done {
		s.mu.Unlock()
		return PhotoResult{}, ErrAlreadyRegistered
	}
	if !ok {
		p = &pending{}
		s.pending[userID] = p
	}
	if slices.Contains(p.photos, ref) {
		n := len(p.photos)
		s.mu.Unlock()
		return PhotoResult{Count: n}, ErrDuplicatePhoto
	}
	if len(p.photos) >= s.rules.MaxPhotos {
		s.mu.Unlock()
		return PhotoResult{Count: s.rules.MaxPhotos}, ErrTooManyPhotos
	}
	p.photos = append(p.photos, ref)
	n := len(p.photos)
	if n == 1 && s.rules.FinalizeDelay > 0 && n < s.rules.MinPhotos {
		p.timer = time.AfterFunc(s.rules.FinalizeDelay, func() { s.fire(userID, p) })
	}
	s.mu.Unlock()

	if n < s.rules.MinPhotos {
		return PhotoResult{Count: n}, nil
	}
	_, finalized, err := s.finalize(ctx, userID, p, false)
	return PhotoResult{Count: n, Finalized: finalized}, err
}

// fire is the delayed finalize. It is a no-op when the user finalized first.
func (s *Service) fire(userID int64, p *pending) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, _, err := s.finalize(ctx, userID, p, true); err != nil {
		s.log.Error("delayed finalize failed", "user", userID, "err", err)
	}
}

// Finalize completes the registration now with whatever photos were
// collected. finalized is false when there was nothing pending or another
// caller finalized first.
func (s *Service) Finalize(ctx context.Context, userID int64) (Finalized, bool, error) {
	s.mu.Lock()
	p, ok := s.pending[userID]
	s.mu.Unlock()
	if !ok {
		return Finalized{}, false, nil
	}
	return s.finalize(ctx, userID, p, false)
}

// finalize is the single authoritative transition. The done flag flips
// under the lock, so a timer firing while the user sends the last photo
// finalizes exactly once.
func (s *Service) finalize(ctx context.Context, userID int64, p *pending, byTimer bool) (Finalized, bool, error) {
	s.mu.Lock()
	if p.done || s.pending[userID] != p {
		s.mu.Unlock()
		return Finalized{}, false, nil
	}
	p.done = true
	if p.timer != nil {
		p.timer.Stop()
	}
	photos := slices.Clone(p.photos)
	s.mu.Unlock()

	res, err := s.persist(ctx, userID, photos)
	if err != nil {
		// allow a retry with the photos already collected
		s.mu.Lock()
		p.done = false
		s.mu.Unlock()
		return Finalized{}, false, err
	}
	res.ByTimer = byTimer

	s.mu.Lock()
	if s.pending[userID] == p {
		delete(s.pending, userID)
	}
	s.mu.Unlock()

	s.log.Info("registration finalized", "user", userID, "photos", len(photos), "bonus", res.BonusGranted, "by_timer", byTimer)
	if s.OnFinalize != nil {
		s.OnFinalize(res)
	}
	return res, true, nil
}

func (s *Service) persist(ctx context.Context, userID int64, photos []string) (Finalized, error) {
	if err := s.profiles.SetPhotos(ctx, userID, photos); err != nil {
		return Finalized{}, fmt.Errorf("save photos: %w", err)
	}
	if err := s.profiles.MarkRegistered(ctx, userID); err != nil {
		return Finalized{}, fmt.Errorf("mark registered: %w", err)
	}
	res := Finalized{UserID: userID, Photos: photos}
	if s.rules.Bonus > 0 {
		granted, err := s.ledger.GrantBonus(ctx, userID, s.rules.Bonus)
		if err != nil {
			return Finalized{}, fmt.Errorf("registration bonus: %w", err)
		}
		res.BonusGranted = granted
	}
	s.sessions.Cancel(userID)
	return res, nil
}

// Cancel abandons an in-progress photo collection.
func (s *Service) Cancel(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[userID]
	if !ok {
		return
	}
	if p.timer != nil {
		p.timer.Stop()
	}
	delete(s.pending, userID)
}

// Pending returns how many photos userID has collected so far.
func (s *Service) Pending(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.pending[userID]; ok {
		return len(p.photos)
	}
	return 0
}
