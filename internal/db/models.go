package db

import (
	"time"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Profile is a chat user. ID is the chat platform user id, not auto-generated.
//
// A profile is eligible for discovery iff Active, Gender set, at least one Photo
// and a non-empty Bio. Coins is the ledger balance and is only mutated through
// conditional UPDATEs in repository.LedgerRepository.
type Profile struct {
	ID           int64   `gorm:"primaryKey;autoIncrement:false"`
	Username     string  `gorm:"size:64"`
	FirstName    string  `gorm:"size:128"`
	LastName     string  `gorm:"size:128"`
	Language     string  `gorm:"size:16;not null;default:english"`
	Phone        string  `gorm:"size:32"`
	Age          int     `gorm:"not null;default:0"`
	Gender       string  `gorm:"size:16;index:idx_profiles_discovery,priority:1"`
	Religion     string  `gorm:"size:64"`
	City         string  `gorm:"size:128"`
	Latitude     float64 `gorm:"not null;default:0"`
	Longitude    float64 `gorm:"not null;default:0"`
	Bio          string  `gorm:"type:text"`
	Active       bool    `gorm:"not null;default:true;index:idx_profiles_discovery,priority:2"`
	Coins        int64   `gorm:"not null;default:0"`
	BonusGranted bool    `gorm:"not null;default:false"`
	Registered   bool    `gorm:"not null;default:false"`
	Photos       []Photo `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Discoverable reports whether p satisfies the discovery eligibility rule.
func (p Profile) Discoverable() bool {
	return p.Active && p.Gender != "" && len(p.Photos) > 0 && p.Bio != ""
}

// PhotoRefs returns photo references in display order.
func (p Profile) PhotoRefs() []string {
	refs := make([]string, 0, len(p.Photos))
	for _, ph := range p.Photos {
		refs = append(refs, ph.Ref)
	}
	return refs
}

// Photo is one entry of a profile's ordered photo list.
// Ref is the transport's opaque file reference.
type Photo struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	ProfileID int64  `gorm:"not null;uniqueIndex:idx_photo_profile_position,priority:1"`
	Position  int    `gorm:"not null;uniqueIndex:idx_photo_profile_position,priority:2"`
	Ref       string `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Like is a directed edge liker -> liked.
//
// Composite PK (LikerID, LikedID) makes the edge unique per ordered pair, so
// a repeated like is an idempotent no-op insert.
//
// Indexes:
//   - idx_likes_liked_created(liked_id, created_at DESC, liker_id)
//     serves "who liked me" listings with cursor pagination.
type Like struct {
	LikerID   int64     `gorm:"primaryKey;autoIncrement:false"`
	LikedID   int64     `gorm:"primaryKey;autoIncrement:false;index:idx_likes_liked_created,priority:1"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_likes_liked_created,priority:2,sort:desc"`
	Liker     Profile   `gorm:"foreignKey:LikerID;constraint:OnDelete:CASCADE"`
	Liked     Profile   `gorm:"foreignKey:LikedID;constraint:OnDelete:CASCADE"`
}

// Block is a directed edge blocker -> blocked. It hides the pair from discovery
// and liker/match views in both directions without touching existing likes.
type Block struct {
	BlockerID int64     `gorm:"primaryKey;autoIncrement:false"`
	BlockedID int64     `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	Blocker   Profile   `gorm:"foreignKey:BlockerID;constraint:OnDelete:CASCADE"`
	Blocked   Profile   `gorm:"foreignKey:BlockedID;constraint:OnDelete:CASCADE"`
}

const (
	MessageKindText  = "text"
	MessageKindPhoto = "photo"
	MessageKindVoice = "voice"
)

// Message is an append-only chat message between two profiles.
type Message struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	SenderID    int64     `gorm:"not null;index"`
	RecipientID int64     `gorm:"not null;index"`
	Content     string    `gorm:"type:text"`
	Kind        string    `gorm:"size:20;not null;default:text"`
	MediaRef    string    `gorm:"size:255"`
	Delivered   bool      `gorm:"not null;default:false"`
	Charged     int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	Sender      Profile   `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Recipient   Profile   `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
}

const (
	PaymentPending  = "pending"
	PaymentApproved = "approved"
	PaymentRejected = "rejected"
)

// Payment is a coin purchase request awaiting manual review.
// Status moves pending -> approved or pending -> rejected, nothing else.
type Payment struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"not null;index"`
	PackageName string `gorm:"size:64;not null"`
	Coins       int64  `gorm:"not null"`
	// PriceCents avoids float rounding on money.
	PriceCents  int64      `gorm:"not null"`
	EvidenceRef string     `gorm:"size:255"`
	Status      string     `gorm:"size:16;not null;default:pending;index"`
	ReviewerID  *int64
	Notes       string     `gorm:"size:255"`
	ProcessedAt *time.Time
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
	User        Profile    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Complaint is a user report, optionally against another profile.
type Complaint struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	UserID         int64     `gorm:"not null;index"`
	ReportedUserID *int64    `gorm:"index"`
	Type           string    `gorm:"size:32;not null"`
	Text           string    `gorm:"type:text"`
	Status         string    `gorm:"size:16;not null;default:pending"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	User           Profile   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// All lists every model for AutoMigrate, parents first.
func All() []any {
	return []any{&Profile{}, &Photo{}, &Like{}, &Block{}, &Message{}, &Payment{}, &Complaint{}}
}
