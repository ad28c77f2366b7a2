package db

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seedCities = []string{"Addis Ababa", "Adama", "Bahir Dar", "Hawassa", "Mekelle", "Gondar"}

var seedReligions = []string{"Orthodox", "Muslim", "Protestant", "Catholic", "Other"}

// SeedTestData resets the database and populates it with demo profiles and likes.
//
// Behavior:
//  1. Clears likes, blocks, messages, payments, complaints, photos and profiles.
//  2. Creates 20 discoverable profiles (10 male, 10 female) with two photos each
//     and a starting balance of 20 coins.
//  3. Generates likes between opposite-gender pairs (~40% chance), and every 3rd
//     like is reciprocated so mutual matches exist.
//
// Demo ids start at 1001 so they never collide with real chat user ids.
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := clearAll(db); err != nil {
		return err
	}
	slog.Info("cleared existing data")

	const base = int64(1000)
	for i := int64(1); i <= 20; i++ {
		gender := GenderMale
		if i > 10 {
			gender = GenderFemale
		}
		p := Profile{
			ID:           base + i,
			Username:     fmt.Sprintf("demo%d", i),
			FirstName:    fmt.Sprintf("Demo %d", i),
			Language:     "english",
			Age:          20 + r.Intn(20),
			Gender:       gender,
			Religion:     seedReligions[r.Intn(len(seedReligions))],
			City:         seedCities[r.Intn(len(seedCities))],
			Bio:          fmt.Sprintf("Hi, I'm demo user %d.", i),
			Active:       true,
			Coins:        20,
			BonusGranted: true,
			Registered:   true,
			Photos: []Photo{
				{Position: 0, Ref: fmt.Sprintf("demo-photo-%d-a", i)},
				{Position: 1, Ref: fmt.Sprintf("demo-photo-%d-b", i)},
			},
		}
		if err := db.Create(&p).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
	}
	slog.Info("seeded profiles", "count", 20)

	counter := 0
	for liker := base + 1; liker <= base+20; liker++ {
		for liked := base + 1; liked <= base+20; liked++ {
			if liker == liked || (liker <= base+10) == (liked <= base+10) {
				continue
			}
			if r.Intn(100) >= 40 {
				continue
			}
			edges := []Like{{LikerID: liker, LikedID: liked}}
			if counter%3 == 0 {
				edges = append(edges, Like{LikerID: liked, LikedID: liker})
			}
			if err := db.Omit(clause.Associations).
				Clauses(clause.OnConflict{DoNothing: true}).
				Create(&edges).Error; err != nil {
				return fmt.Errorf("failed to seed like: %w", err)
			}
			counter++
		}
	}
	slog.Info("seeded likes", "count", counter)

	return nil
}

func clearAll(db *gorm.DB) error {
	for _, table := range []string{"complaints", "payments", "messages", "blocks", "likes", "photos", "profiles"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	// Reset auto-increment sequences
	switch db.Dialector.Name() {
	case "mysql":
		for _, table := range []string{"complaints", "payments", "messages", "photos"} {
			db.Exec("ALTER TABLE " + table + " AUTO_INCREMENT = 1")
		}
	case "sqlite":
		db.Exec("DELETE FROM sqlite_sequence WHERE name IN ('complaints','payments','messages','photos')")
	}
	return nil
}
