package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedLocations = []string{
	"Mumbai", "Delhi", "Bengaluru", "Hyderabad", "Chennai",
	"Pune", "Kolkata", "Ahmedabad", "Jaipur", "Lucknow",
}

var seedOccupations = []string{
	"Software Engineer", "Doctor", "Teacher", "Architect",
	"Accountant", "Lawyer", "Designer", "Civil Servant",
}

// SeedDemoData resets the database and populates it with demo profiles
// and interests.
//
// Behavior:
//  1. Clears existing data in `users` and `interests` tables.
//  2. Creates 24 users (half male, half female) with hashed passwords and
//     matrimonial attributes.
//  3. Generates a spread of interests: most pending, roughly a quarter
//     responded (accepted or rejected), including a few mutual pairs.
//
// Compatible with both MySQL and SQLite (AUTO_INCREMENT reset skipped for SQLite).
func SeedDemoData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	if err := db.Exec("DELETE FROM interests").Error; err != nil {
		return fmt.Errorf("failed to clear interests: %w", err)
	}
	if err := db.Exec("DELETE FROM users").Error; err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}

	switch db.Dialector.Name() {
	case "mysql":
		db.Exec("ALTER TABLE interests AUTO_INCREMENT = 1")
		db.Exec("ALTER TABLE users AUTO_INCREMENT = 1")
	case "sqlite":
		db.Exec("DELETE FROM sqlite_sequence WHERE name = 'interests'")
		db.Exec("DELETE FROM sqlite_sequence WHERE name = 'users'")
	}

	log.Println("Cleared existing data")

	// --- Seed Users ---
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	for i := 1; i <= 24; i++ {
		gender := GenderMale
		interestedIn := InterestedInFemale
		if i > 12 {
			gender = GenderFemale
			interestedIn = InterestedInMale
		}
		// sprinkle a few open preferences
		if i%8 == 0 {
			interestedIn = InterestedInBoth
		}

		user := User{
			Name:         fmt.Sprintf("Demo User %d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: string(hash),
			Age:          22 + r.Intn(20),
			Gender:       gender,
			InterestedIn: interestedIn,
			Location:     seedLocations[r.Intn(len(seedLocations))],
			Occupation:   seedOccupations[r.Intn(len(seedOccupations))],
			About:        "Looking forward to meeting someone genuine.",
		}

		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
	}
	log.Println("Seeded 24 users.")

	// --- Seed Interests ---
	created := 0
	for from := uint64(1); from <= 24; from++ {
		for j := 0; j < 5; j++ {
			to := uint64(r.Intn(24) + 1)
			if to == from {
				continue
			}

			status := StatusPending
			switch {
			case created%4 == 1:
				status = StatusAccepted
			case created%7 == 3:
				status = StatusRejected
			}

			interest := Interest{
				FromUserID: from,
				ToUserID:   to,
				Status:     status,
				Message:    "I came across your profile and would love to connect.",
			}

			// duplicates for the same ordered pair are expected here,
			// just skip them
			if err := db.Create(&interest).Error; err != nil {
				continue
			}
			created++
		}
	}
	log.Printf("Seeded %d interests.", created)

	return nil
}
