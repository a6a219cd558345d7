package user

import (
	"context"

	"github.com/rishtahub/rishtahub/internal/app"
	"github.com/rishtahub/rishtahub/internal/repository"
)

// UpdateProfileRequest is the typed input for a partial profile update.
// Absent fields stay untouched.
type UpdateProfileRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=2,max=64"`
	Age          *int    `json:"age" binding:"omitempty,gte=18,lte=100"`
	Location     *string `json:"location" binding:"omitempty,min=1,max=128"`
	Occupation   *string `json:"occupation" binding:"omitempty,min=1,max=128"`
	InterestedIn *string `json:"interestedIn" binding:"omitempty,oneof=male female both"`
	About        *string `json:"about" binding:"omitempty,max=500"`
	ProfilePhoto *string `json:"profilePhoto" binding:"omitempty,max=255"`
}

// Service exposes profile reads and updates. Attribute validation for
// profile fields lives here; interest semantics do not.
type Service struct {
	appCtx   *app.AppContext
	userRepo *repository.UserRepository
}

// NewService creates a profile service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:   appCtx,
		userRepo: repository.NewUserRepository(appCtx.DB),
	}
}

// OwnProfile returns the requester's full profile.
func (s *Service) OwnProfile(ctx context.Context, requesterID uint64) (*Profile, error) {
	u, err := s.userRepo.FindByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	p := ProfileFrom(*u)
	return &p, nil
}

// UpdateOwnProfile applies the supplied fields to the requester's profile
// and returns the updated full profile.
func (s *Service) UpdateOwnProfile(ctx context.Context, requesterID uint64, req UpdateProfileRequest) (*Profile, error) {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Age != nil {
		updates["age"] = *req.Age
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Occupation != nil {
		updates["occupation"] = *req.Occupation
	}
	if req.InterestedIn != nil {
		updates["interested_in"] = *req.InterestedIn
	}
	if req.About != nil {
		updates["about"] = *req.About
	}
	if req.ProfilePhoto != nil {
		updates["profile_photo"] = *req.ProfilePhoto
	}

	u, err := s.userRepo.UpdateProfile(ctx, requesterID, updates)
	if err != nil {
		s.appCtx.Logger.Error("profile update failed", "user", requesterID, "err", err)
		return nil, err
	}

	p := ProfileFrom(*u)
	return &p, nil
}

// ViewProfile returns another user's public profile (contact withheld).
func (s *Service) ViewProfile(ctx context.Context, userID uint64) (*PublicProfile, error) {
	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := PublicProfileFrom(*u)
	return &p, nil
}
