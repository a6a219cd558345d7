package db

import (
	"time"
)

// Gender / preference values stored on User.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"

	InterestedInMale   = "male"
	InterestedInFemale = "female"
	InterestedInBoth   = "both"
)

// Interest status values. An interest is created pending and transitions
// exactly once to accepted or rejected; both are terminal.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// User table. Demographic and preference fields drive candidate
// eligibility: Gender and InterestedIn are matched symmetrically.
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Age          int    `gorm:"not null;index"`
	Gender       string `gorm:"size:16;not null;index"`
	InterestedIn string `gorm:"size:16;not null;index"`
	Location     string `gorm:"size:128;not null"`
	Occupation   string `gorm:"size:128"`
	About        string `gorm:"size:500"`
	ProfilePhoto string `gorm:"size:255"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index:idx_users_created_at,sort:desc"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Interest represents a directed request-to-connect from one user to another.
//
// Unique index: (from_user_id, to_user_id)
//   - At most one row per ordered pair; the reverse pair is a distinct row
//     and may coexist.
//   - Inserts that hit the index are rejected, never overwritten.
//
// Indexes:
//   - idx_to_status_created(to_user_id, status, created_at DESC)
//     Serves "interests received" lists and pending counts.
//   - idx_from_created(from_user_id, created_at DESC)
//     Serves "interests sent" lists and the candidate-search exclusion set.
//
// Fields:
//   - FromUserID: the sender.
//   - ToUserID: the recipient.
//   - Status: pending | accepted | rejected.
//   - Message: optional note from the sender, at most 200 characters.
type Interest struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	FromUserID uint64 `gorm:"not null;uniqueIndex:idx_interests_from_to,priority:1;index:idx_from_created,priority:1"`
	ToUserID   uint64 `gorm:"not null;uniqueIndex:idx_interests_from_to,priority:2;index:idx_to_status_created,priority:1"`
	Status     string `gorm:"size:16;not null;default:pending;index:idx_to_status_created,priority:2"`
	Message    string `gorm:"size:200"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_to_status_created,priority:3,sort:desc;index:idx_from_created,priority:2,sort:desc"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}
