package user

import (
	"time"

	"github.com/rishtahub/rishtahub/internal/db"
)

// PublicProfile is the profile shape exposed to other users before a
// mutual match. Contact fields are withheld.
type PublicProfile struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	Location     string `json:"location"`
	Occupation   string `json:"occupation"`
	About        string `json:"about,omitempty"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
}

// Profile is the full profile shape, contact field included. Returned to
// the owner and on mutual matches.
type Profile struct {
	PublicProfile
	Email        string    `json:"email"`
	InterestedIn string    `json:"interestedIn"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicProfileFrom projects a user row into its public view.
func PublicProfileFrom(u db.User) PublicProfile {
	return PublicProfile{
		ID:           u.ID,
		Name:         u.Name,
		Age:          u.Age,
		Gender:       u.Gender,
		Location:     u.Location,
		Occupation:   u.Occupation,
		About:        u.About,
		ProfilePhoto: u.ProfilePhoto,
	}
}

// ProfileFrom projects a user row into its full view.
func ProfileFrom(u db.User) Profile {
	return Profile{
		PublicProfile: PublicProfileFrom(u),
		Email:         u.Email,
		InterestedIn:  u.InterestedIn,
		CreatedAt:     u.CreatedAt,
	}
}
